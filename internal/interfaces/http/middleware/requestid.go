package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tally/internal/shared/constants"
)

// RequestID attaches a request identifier to the context and response,
// reusing the caller's X-Request-ID header when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderXRequestID, requestID)
		c.Next()
	}
}
