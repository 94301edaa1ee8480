package http

import (
	"github.com/gin-gonic/gin"
)

// processStartReq binds and validates the start session request body.
func (h *handler) processStartReq(c *gin.Context) (startReq, error) {
	var req startReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
