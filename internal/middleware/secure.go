package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

// Secure applies the standard security headers. HSTS and SSL redirects are
// only enabled in production, where TLS terminates in front of the service.
func Secure(production bool) gin.HandlerFunc {
	sec := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		STSSeconds:         31536000,
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:      !production,
	})
	return func(c *gin.Context) {
		if err := sec.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
		// a redirect issued by Process has already been written
		if status := c.Writer.Status(); status > 300 && status < 399 {
			c.Abort()
		}
	}
}
