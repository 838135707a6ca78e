package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"buy-me-a-coffee/config"
	"buy-me-a-coffee/internal/adapter/http/middleware"
	redisStore "buy-me-a-coffee/internal/adapter/storage/redis"
	"buy-me-a-coffee/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(store ports.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	log := zerolog.Nop()

	r.GET("/test", middleware.RateLimiter(store, middleware.GroupLinks, rule, log), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r
}

func newStore(t *testing.T) *redisStore.RateLimitStore {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisStore.NewRateLimitStore(client)
}

func get(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router := setupRateLimitRouter(newStore(t))

	for i := 0; i < 3; i++ {
		w := get(router, "10.0.0.1:5000")
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router := setupRateLimitRouter(newStore(t))

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, get(router, "10.0.0.1:5000").Code)
	}

	w := get(router, "10.0.0.1:5000")
	assert.Equal(t, 429, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_001")
}

func TestRateLimiter_PerClientIP(t *testing.T) {
	router := setupRateLimitRouter(newStore(t))

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, get(router, "10.0.0.1:5000").Code)
	}

	// Another client keeps its own counter.
	assert.Equal(t, 200, get(router, "10.0.0.2:5000").Code)
}

type failingStore struct{}

func (failingStore) Allow(context.Context, string, int64, time.Duration) (*ports.RateLimitResult, error) {
	return nil, errors.New("redis: connection refused")
}

func TestRateLimiter_DegradesOpen(t *testing.T) {
	router := setupRateLimitRouter(failingStore{})

	for i := 0; i < 5; i++ {
		w := get(router, "10.0.0.1:5000")
		assert.Equal(t, 200, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimitRules(t *testing.T) {
	rules := middleware.RateLimitRules(config.RateLimitConfig{PagePerMinute: 60, LinksPerMinute: 120, QRPerMinute: 30})
	assert.Equal(t, int64(60), rules[middleware.GroupPage].Limit)
	assert.Equal(t, int64(120), rules[middleware.GroupLinks].Limit)
	assert.Equal(t, time.Minute, rules[middleware.GroupLinks].Window)
	assert.Equal(t, int64(30), rules[middleware.GroupQR].Limit)

	rules = middleware.RateLimitRules(config.RateLimitConfig{LinksPerMinute: 0, QRPerMinute: 5})
	_, ok := rules[middleware.GroupLinks]
	assert.False(t, ok, "zero limit disables the group")
	assert.Len(t, rules, 1)
}
