// Package response defines the JSON envelope every endpoint answers
// with, success or failure, so clients parse one shape.
package response

import (
	"github.com/gin-gonic/gin"
)

// ContextKey is the gin context key the request-id middleware stores
// the correlation id under; both response helpers echo it back.
const ContextKey = "RequestID"

type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	v, _ := c.Get(ContextKey)
	id, _ := v.(string)
	return id
}
