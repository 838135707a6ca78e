package middleware

import (
	"fmt"
	"strconv"
	"time"

	"buy-me-a-coffee/config"
	"buy-me-a-coffee/internal/core/ports"
	"buy-me-a-coffee/pkg/apperror"
	"buy-me-a-coffee/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Rate limit groups.
const (
	GroupPage  = "page"
	GroupLinks = "links"
	GroupQR    = "qr"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// RateLimitRules builds the per-group rules from config. Non-positive limits
// disable the group.
func RateLimitRules(cfg config.RateLimitConfig) map[string]RateLimitRule {
	rules := make(map[string]RateLimitRule, 3)
	if cfg.PagePerMinute > 0 {
		rules[GroupPage] = RateLimitRule{Limit: cfg.PagePerMinute, Window: time.Minute}
	}
	if cfg.LinksPerMinute > 0 {
		rules[GroupLinks] = RateLimitRule{Limit: cfg.LinksPerMinute, Window: time.Minute}
	}
	if cfg.QRPerMinute > 0 {
		rules[GroupQR] = RateLimitRule{Limit: cfg.QRPerMinute, Window: time.Minute}
	}
	return rules
}

// RateLimiter limits requests per client IP for one endpoint group. Store
// errors let the request through.
func RateLimiter(store ports.RateLimiter, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", c.ClientIP(), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}
