package http

import (
	"time"

	"kwikr-directory/internal/session"
	"kwikr-directory/pkg/log"
)

// CookieConfig describes the portal session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

type handler struct {
	l      log.Logger
	uc     session.UseCase
	cookie CookieConfig
}

// New creates a new HTTP handler for the session domain.
func New(l log.Logger, uc session.UseCase, cookie CookieConfig) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		cookie: cookie,
	}
}
