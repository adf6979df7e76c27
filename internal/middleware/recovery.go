package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/library-api/internal/validation"
)

// Recovery turns a handler panic into a 500 with the usual error body.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, err any) {
		log.ErrorContext(c.Request.Context(), "panic recovered",
			"panic", err,
			"path", c.Request.URL.Path,
			"request_id", RequestIDFrom(c),
		)

		c.Header("Connection", "close")
		c.AbortWithStatusJSON(http.StatusInternalServerError, validation.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		})
	})
}
