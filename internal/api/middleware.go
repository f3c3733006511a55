package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/verahq/vera-backend/pkg/ratelimiter"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware assigns every request a trace id, reusing the caller's
// X-Request-ID when present. Handlers read it via c.GetString("trace_id").
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("trace_id", requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

// RateLimitMiddleware rejects requests with 429 once the limiter runs dry.
func RateLimitMiddleware(limiter ratelimiter.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
