package redis

import (
	"context"
	"fmt"
	"time"

	"buy-me-a-coffee/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "coffee:ratelimit:"

// RateLimitStore implements ports.RateLimiter with fixed-window counters.
type RateLimitStore struct {
	client goredis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewRateLimitStore creates a new Redis-backed rate limit store.
func NewRateLimitStore(client goredis.UniversalClient) *RateLimitStore {
	return &RateLimitStore{
		client: client,
		prefix: rateLimitPrefix,
		now:    time.Now,
	}
}

// Allow increments the counter for key in the current window and reports
// whether it is still within limit. The window's key expires one second
// after the window closes.
func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	secs := int64(window / time.Second)
	if secs < 1 {
		secs = 1
	}
	windowID := s.now().Unix() / secs
	redisKey := fmt.Sprintf("%s%s:%d", s.prefix, key, windowID)

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis rate limit incr: %w", err)
	}
	if count == 1 {
		ttl := time.Duration(secs)*time.Second + time.Second
		if err := s.client.Expire(ctx, redisKey, ttl).Err(); err != nil {
			return nil, fmt.Errorf("redis rate limit expire: %w", err)
		}
	}

	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	return &ports.RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   (windowID + 1) * secs,
	}, nil
}

var _ ports.RateLimiter = (*RateLimitStore)(nil)
