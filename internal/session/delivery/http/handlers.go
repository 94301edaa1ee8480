package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kwikr-directory/pkg/response"
)

// Start godoc
// @Summary     Start a portal session
// @Description Stores the bearer credential issued by the auth service and sets the session cookie.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body startReq true "Credential"
// @Success     200  {object} startResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/session [POST]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStartReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Start(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Start: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, output.SessionID, h.maxAge(), "/", "", h.cookie.Secure, true)
	response.OK(c, h.newStartResp(output))
}

// End godoc
// @Summary     End the portal session
// @Description Forgets the stored credential and clears the session cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/session [DELETE]
func (h *handler) End(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, _ := c.Cookie(h.cookie.Name)
	if sessionID != "" {
		if err := h.uc.End(ctx, sessionID); err != nil {
			h.l.Errorf(ctx, "uc.End: %v", err)
			response.Error(c, h.mapError(err), nil)
			return
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	response.OK(c, nil)
}
