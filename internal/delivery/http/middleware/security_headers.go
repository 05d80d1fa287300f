package middleware

import (
	"riseup-backend/pkg/session"

	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds baseline security headers to all responses.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Session responses must never be cached by intermediaries
		if _, err := c.Cookie(session.CookieName); err == nil {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")
		}

		c.Next()
	}
}
