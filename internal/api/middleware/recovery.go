package middleware

import (
	"log/slog"
	"net/http"

	"team_task/internal/domain"
	"team_task/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic in a handler into a 500 with the standard error body.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if p := recover(); p != nil {
				logger.WithRequestID(c.Request.Context(), log).Error("panic recovered",
					slog.Any("panic", p),
					slog.String("path", c.Request.URL.Path),
					slog.String("method", c.Request.Method),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": domain.NewAPIError(domain.CodeInternalError, "internal server error"),
				})
			}
		}()

		c.Next()
	}
}
