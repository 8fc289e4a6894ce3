package middleware

import (
	"net/http"
	"strings"

	"mis/internal/session"

	"github.com/gin-gonic/gin"
)

// TokenChecker reports whether a token verifies
type TokenChecker interface {
	Verify(token string) (*session.Claims, error)
}

// PageGate redirects unauthenticated visitors of /dashboard to /login and
// authenticated visitors of /login to /dashboard. API routes pass through.
func PageGate(tokens TokenChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		isDashboard := path == "/dashboard" || strings.HasPrefix(path, "/dashboard/")
		isLogin := path == "/login"
		if !isDashboard && !isLogin {
			c.Next()
			return
		}

		_, err := tokens.Verify(session.TokenFromRequest(c.Request))
		authenticated := err == nil

		switch {
		case isDashboard && !authenticated:
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		case isLogin && authenticated:
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
		default:
			c.Next()
		}
	}
}
