package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	sessionHTTP "kwikr-directory/internal/session/delivery/http"
)

// setupSessionDomain registers /api/v1/auth/session.
func (srv HTTPServer) setupSessionDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := sessionHTTP.New(srv.l, srv.sessionUC, srv.cookie)
	sessionHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Session domain registered")
	return nil
}
