package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDCtx    = "request_id"
)

// RequestID keeps a client supplied X-Request-ID or generates one, stores it
// in the gin context and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(RequestIDCtx, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
