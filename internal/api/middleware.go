package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id; callers may supply their own.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key the handlers read the id from.
const requestIDKey = "request_id"

// RequestID tags every request with an id for log correlation and echoes
// it back in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
