package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	calendarHTTP "kwikr-directory/internal/calendar/delivery/http"
	"kwikr-directory/internal/middleware"
)

// setupCalendarDomain registers the calendar JSON API under
// /api/v1/calendar and the dashboard pages under /calendar.
func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := calendarHTTP.New(srv.l, srv.calendarUC, srv.view)

	calendarHTTP.RegisterRoutes(api, h, mw)
	calendarHTTP.RegisterPageRoutes(srv.gin, h, mw)

	srv.l.Infof(ctx, "Calendar domain registered")
	return nil
}
