package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/smmpanel/panel/internal/infrastructure/ratelimit"
	"github.com/smmpanel/panel/internal/shared/errors"
	"github.com/smmpanel/panel/internal/shared/logger"
	"github.com/smmpanel/panel/internal/shared/utils"
)

// RateLimiter limits requests per client IP within a key prefix.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	prefix  string
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, prefix string, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		prefix:  prefix,
		logger:  logger,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.prefix + ":" + c.ClientIP()

		allowed, err := rl.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			// If Redis is unavailable, allow the request to avoid blocking all traffic
			rl.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
