package http

import (
	"strings"
	"time"

	"kwikr-directory/internal/session"
	"kwikr-directory/pkg/response"
)

// --- Request DTOs ---

type startReq struct {
	Token string `json:"token" binding:"required"`
}

func (r startReq) validate() error {
	if strings.TrimSpace(r.Token) == "" {
		return session.ErrEmptyToken
	}
	return nil
}

func (r startReq) toInput() session.StartInput {
	return session.StartInput{Token: r.Token}
}

// --- Response DTOs ---

type startResp struct {
	SessionID string            `json:"session_id"`
	ExpiresAt response.DateTime `json:"expires_at"`
}

func (h *handler) newStartResp(out session.StartOutput) startResp {
	return startResp{
		SessionID: out.SessionID,
		ExpiresAt: response.DateTime(out.ExpiresAt),
	}
}

func (h *handler) maxAge() int {
	return int(h.cookie.TTL / time.Second)
}
