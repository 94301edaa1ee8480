package middleware

import (
	"kwikr-directory/internal/session"
	"kwikr-directory/pkg/log"
)

// Config holds the middleware settings taken from config.Config.
type Config struct {
	CookieName      string
	RateLimitPerMin int
}

type Middleware struct {
	l          log.Logger
	sessions   session.UseCase
	cookieName string
	limiter    *rateLimiter
}

func New(l log.Logger, sessions session.UseCase, cfg Config) Middleware {
	return Middleware{
		l:          l,
		sessions:   sessions,
		cookieName: cfg.CookieName,
		limiter:    newRateLimiter(cfg.RateLimitPerMin),
	}
}
