package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderXRequestID = "X-Request-ID"

// requestIDMiddleware propagates the inbound X-Request-ID or generates one.
// It is unrelated to the S-PayWay idempotency key.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(HeaderXRequestID, requestID)
		c.Next()
	}
}
