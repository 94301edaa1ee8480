package http

import (
	"github.com/gin-gonic/gin"

	"kwikr-directory/internal/middleware"
)

// RegisterRoutes maps the JSON calendar API. Every route needs a credential.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	cal := rg.Group("/calendar", mw.Auth())
	{
		cal.GET("/month", h.Month)
		cal.GET("/day", h.Day)
		cal.GET("/today", h.Today)
		cal.GET("/upcoming", h.Upcoming)
		cal.GET("/export.ics", h.Export)

		cal.POST("/appointments", h.CreateAppointment)
		cal.PUT("/appointments/:id", h.UpdateAppointment)
		cal.DELETE("/appointments/:id", h.CancelAppointment)
		cal.POST("/time-blocks", h.CreateTimeBlock)
	}
}

// RegisterPageRoutes maps the server-rendered dashboard and its partials.
// These render a sign-in prompt instead of a JSON 401.
func RegisterPageRoutes(r gin.IRouter, h *handler, mw middleware.Middleware) {
	page := r.Group("/calendar", mw.OptionalAuth())
	{
		page.GET("", h.Page)
		page.GET("/partials/month", h.MonthPartial)
		page.GET("/partials/day", h.DayPartial)
		page.GET("/partials/today", h.TodayPartial)
		page.GET("/partials/upcoming", h.UpcomingPartial)
		page.POST("/appointments", h.AppointmentForm)
	}
}
