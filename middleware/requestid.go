package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// ContextRequestID is the gin context key the access logger reads.
const ContextRequestID = "requestId"

// RequestID gives every request a stable X-Request-ID: a client-supplied
// value is propagated, otherwise a fresh UUID is generated. The value is
// echoed in the response header for cross-service correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, id)
		c.Set(ContextRequestID, id)
		c.Next()
	}
}
