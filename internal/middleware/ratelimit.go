package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/smotired/bulletinator/internal/config"
	"github.com/smotired/bulletinator/internal/metrics"
	"github.com/smotired/bulletinator/internal/response"
)

// RateLimiter throttles requests per account (or client IP for anonymous
// callers) using fixed redis windows. Redis outages fail open: a board
// that cannot be rate limited is better than one that cannot be used.
type RateLimiter struct {
	client  *redis.Client
	cfg     config.RateLimitConfig
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewRateLimiter creates a new RateLimiter
func NewRateLimiter(client *redis.Client, cfg config.RateLimitConfig, m *metrics.Metrics, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		client:  client,
		cfg:     cfg,
		metrics: m,
		logger:  logger,
	}
}

// Limit returns a middleware enforcing the named rule from the config table.
// Unknown rules and disabled configuration pass everything through.
func (r *RateLimiter) Limit(rule string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.cfg.Enabled || r.client == nil {
			c.Next()
			return
		}
		limit, ok := r.cfg.Rules[rule]
		if !ok || limit.Requests <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", rule, r.callerKey(c))
		ctx := c.Request.Context()

		count, err := r.client.Incr(ctx, key).Result()
		if err != nil {
			r.logger.Warn("Rate limit check failed, allowing request",
				zap.String("rule", rule),
				zap.Error(err),
			)
			c.Next()
			return
		}
		if count == 1 {
			if err := r.client.Expire(ctx, key, limit.Window).Err(); err != nil {
				r.logger.Warn("Rate limit window expiry failed",
					zap.String("rule", rule),
					zap.Error(err),
				)
			}
		}

		if count > int64(limit.Requests) {
			if r.metrics != nil {
				r.metrics.IncrementRateLimitRejected(rule)
			}
			appErr := response.NewTooManyRequests()
			response.SendError(c, http.StatusTooManyRequests, appErr.Code, appErr.Message)
			c.Abort()
			return
		}
		c.Next()
	}
}

// callerKey identifies the caller: account id when authenticated, client IP
// otherwise
func (r *RateLimiter) callerKey(c *gin.Context) string {
	if account := GetAccount(c); account != nil {
		return account.ID.String()
	}
	return c.ClientIP()
}
