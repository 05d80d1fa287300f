package middleware

import (
	"context"
	"net/http"
	"strings"

	"riseup-backend/internal/delivery/http/response"
	"riseup-backend/internal/domain"
	"riseup-backend/pkg/session"

	"github.com/gin-gonic/gin"
)

// SessionAuth validates the session token and loads the caller. The cookie
// is the primary carrier; a Bearer header works for non-browser clients.
// The role always comes from a fresh DB read, not the token, so role
// changes take effect on the next request instead of the next login.
func SessionAuth(sessions *session.Manager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(session.CookieName)
		if token == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				token = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}

		principal, err := sessions.Validate(c.Request.Context(), token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired session", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), principal.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		// Gin keys for handlers, request context values for usecases.
		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUsername), user.Username)
		c.Set(string(domain.KeyUserRole), user.Role)
		c.Set(string(domain.KeySessionID), principal.SessionID)

		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, domain.KeyUserID, user.ID)
		ctx = context.WithValue(ctx, domain.KeyUsername, user.Username)
		ctx = context.WithValue(ctx, domain.KeyUserRole, user.Role)
		ctx = context.WithValue(ctx, domain.KeySessionID, principal.SessionID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
