package middleware

import (
	"github.com/gin-gonic/gin"

	"kwikr-directory/internal/model"
)

const scopeKey = "kwikr.scope"

// SetScope attaches the caller scope to the gin context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the scope resolved by Auth or OptionalAuth.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
