package middleware

import (
	"fmt"
	"math/rand"
	"time"

	"experio/internal/utils"
	"experio/pkg/cache"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware configures CORS headers
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "Content-Length")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// RequestIDMiddleware adds a request ID to each request
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("%d-%d", time.Now().UnixNano(), rand.Intn(10000))
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// RateLimitMiddleware caps requests per client IP per minute using a redis
// counter. A nil cache disables limiting.
func RateLimitMiddleware(redisCache *cache.RedisCache, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisCache == nil || perMinute <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit_%s_%s", c.FullPath(), c.ClientIP())
		count, err := redisCache.Increment(c.Request.Context(), key)
		if err != nil {
			// Rate limiting is best effort; never block on cache failure.
			c.Next()
			return
		}
		if count == 1 {
			redisCache.SetExpire(c.Request.Context(), key, time.Minute)
		}
		if count > int64(perMinute) {
			utils.TooManyRequestsResponse(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
