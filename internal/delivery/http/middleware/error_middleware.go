package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"riseup-backend/internal/delivery/http/response"
	"riseup-backend/pkg/apperror"
	"riseup-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler drains errors attached to the context and renders the last
// one. AppErrors map to their status code and carry optional field details;
// anything else is logged server-side and hidden behind a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code == http.StatusInternalServerError && appErr.Err != nil {
				logger.Log.Error("request failed",
					slog.String("request_id", c.GetString("RequestID")),
					slog.String("path", c.FullPath()),
					slog.Any("error", appErr.Err),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		logger.Log.Error("unhandled error",
			slog.String("request_id", c.GetString("RequestID")),
			slog.String("path", c.FullPath()),
			slog.Any("error", err),
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
