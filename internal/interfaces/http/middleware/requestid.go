package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/tiffin-hq/tiffin/internal/shared/id"
)

const requestIDHeader = "X-Request-ID"

// RequestID ensures every request carries a request ID, generating one when
// the client did not send its own. The ID is echoed on the response so
// clients can correlate log lines.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			generated, err := id.GenerateWithPrefix("req", 12)
			if err == nil {
				requestID = generated
			}
		}

		if requestID != "" {
			c.Request.Header.Set(requestIDHeader, requestID)
			c.Header(requestIDHeader, requestID)
			c.Set("request_id", requestID)
		}

		c.Next()
	}
}
