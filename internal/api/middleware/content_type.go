package middleware

import (
	"net/http"

	"team_task/internal/domain"

	"github.com/gin-gonic/gin"
)

// RequireJSON rejects requests that carry a body in anything but application/json.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength != 0 && c.ContentType() != gin.MIMEJSON {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
				"error": domain.NewAPIError(domain.CodeUnsupportedMediaType, "content type must be application/json"),
			})
			return
		}
		c.Next()
	}
}
