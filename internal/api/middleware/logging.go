package middleware

import (
	"log/slog"
	"time"

	"team_task/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Logging attaches a request-scoped logger to the request context and logs
// one line per request, with the level chosen by status code.
func Logging(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		raw := c.Request.URL.RawQuery

		reqLogger := logger.WithRequestID(c.Request.Context(), log).With(
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("ip", c.ClientIP()),
		)
		c.Request = c.Request.WithContext(logger.ToContext(c.Request.Context(), reqLogger))

		c.Next()

		statusCode := c.Writer.Status()
		attrs := []any{
			slog.Int("status", statusCode),
			slog.Duration("latency", time.Since(start)),
			slog.Int("body_size", c.Writer.Size()),
		}
		if route := c.FullPath(); route != "" {
			attrs = append(attrs, slog.String("route", route))
		}
		if raw != "" {
			attrs = append(attrs, slog.String("query", raw))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("error", c.Errors.String()))
		}

		switch {
		case statusCode >= 500:
			reqLogger.Error("server error", attrs...)
		case statusCode >= 400:
			reqLogger.Warn("client error", attrs...)
		default:
			reqLogger.Info("request completed", attrs...)
		}
	}
}
