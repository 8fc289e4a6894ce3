package middleware

import (
	"mis/internal/access"
	"mis/internal/model"
	"mis/internal/session"
	"mis/pkg/apperror"
	"mis/pkg/response"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Auth builds gin middleware on top of the access gate
type Auth struct {
	gate *access.Gate
}

func NewAuth(gate *access.Gate) *Auth {
	return &Auth{gate: gate}
}

// Require aborts with 401/403/404 unless the request's session satisfies req.
// The resolved principal is stored in the gin context.
func (a *Auth) Require(req access.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := session.TokenFromRequest(c.Request)
		user, err := a.gate.Authorize(c.Request.Context(), token, req)
		if err != nil {
			response.Abort(c, err)
			return
		}
		c.Set(principalKey, user)
		c.Next()
	}
}

// RequireSession only needs a valid token whose principal exists
func (a *Auth) RequireSession() gin.HandlerFunc {
	return a.Require(access.Authenticated())
}

// RequireLevel checks the principal's authorization level, e.g. "admin"
func (a *Auth) RequireLevel(level string) gin.HandlerFunc {
	return a.Require(access.Level(level))
}

// RequireCapability checks a capability flag; admins always pass
func (a *Auth) RequireCapability(capability string) gin.HandlerFunc {
	return a.Require(access.Capability(capability))
}

// Principal returns the user resolved by one of the Require middlewares
func Principal(c *gin.Context) (*model.User, error) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, apperror.Unauthorized("authentication required")
	}
	user, ok := v.(*model.User)
	if !ok || user == nil {
		return nil, apperror.Unauthorized("authentication required")
	}
	return user, nil
}

// Actor returns the principal's username, or "" outside a gated route
func Actor(c *gin.Context) string {
	if user, err := Principal(c); err == nil {
		return user.Username
	}
	return ""
}
