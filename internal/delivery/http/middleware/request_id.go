package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-jobboard-backend/internal/delivery/http/response"
)

// RequestID attaches a unique id to every request for log correlation
// and echoes it back in the X-Request-ID header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(response.ContextKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
