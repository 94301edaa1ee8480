package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Starting a session needs no prior credential; ending one is idempotent.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	auth := rg.Group("/auth")
	{
		auth.POST("/session", h.Start)
		auth.DELETE("/session", h.End)
	}
}
