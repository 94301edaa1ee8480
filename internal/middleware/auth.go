package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"kwikr-directory/internal/model"
	"kwikr-directory/internal/session"
	"kwikr-directory/pkg/response"
)

// MessageNoSession matches the data service wording so clients treat both
// the same way.
const MessageNoSession = "No session token provided"

// Auth requires a credential: an Authorization bearer header, or a session
// cookie known to the credential store. JSON 401 otherwise.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, err := m.resolve(c)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) {
				m.l.Errorf(c.Request.Context(), "middleware.Auth: %v", err)
			}
			response.SessionExpired(c, MessageNoSession)
			c.Abort()
			return
		}
		SetScope(c, sc)
		c.Next()
	}
}

// OptionalAuth resolves the scope when possible and never aborts. Page
// handlers use it to render a sign-in prompt themselves.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sc, err := m.resolve(c); err == nil {
			SetScope(c, sc)
		}
		c.Next()
	}
}

// resolve prefers the bearer header. A header credential is never paired
// with the cookie's session, so rejecting it cannot clear the stored one.
func (m Middleware) resolve(c *gin.Context) (model.Scope, error) {
	if token := bearerToken(c.GetHeader("Authorization")); token != "" {
		return model.Scope{Token: token}, nil
	}

	sessionID, _ := c.Cookie(m.cookieName)
	return m.sessions.Resolve(c.Request.Context(), sessionID)
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
