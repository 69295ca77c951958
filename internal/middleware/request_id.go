package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextRequestID = "request_id"
	requestIDHeader  = "X-Request-ID"
	// caps client-supplied ids before they reach the logs
	requestIDMaxLen = 64
)

// RequestID reuses X-Request-ID from the client or generates one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.NewString()
		}

		c.Set(ContextRequestID, rid)
		c.Header(requestIDHeader, rid)

		c.Next()
	}
}
