package handler

import (
	"html/template"
	"time"

	"buy-me-a-coffee/internal/adapter/http/middleware"
	"buy-me-a-coffee/internal/adapter/http/web"
	"buy-me-a-coffee/internal/adapter/metrics"
	"buy-me-a-coffee/internal/core/ports"
	"buy-me-a-coffee/pkg/apperror"
	"buy-me-a-coffee/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LinkSvc        ports.LinkService
	RateLimiter    ports.RateLimiter // nil = rate limiting disabled
	RateLimitRules map[string]middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	Metrics        *metrics.Metrics // nil = /metrics disabled
	MetricsPath    string
	QRCacheMaxAge  time.Duration
	OpenAPISpec    []byte
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
// The gin mode is left to the caller.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(template.Must(web.Templates()))

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(64 << 10))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.ErrNotFound("route"))
	})

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.Metrics != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(deps.Metrics.Handler()))
	}

	swaggerHandler := NewSwaggerHandler(deps.OpenAPISpec)
	swagger := r.Group("/swagger")
	{
		swagger.GET("", swaggerHandler.UI)
		swagger.GET("/spec", swaggerHandler.Spec)
	}

	// Helper: return rate limiter middleware if a store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := deps.RateLimitRules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	pageHandler := NewPageHandler(deps.LinkSvc, deps.Logger)
	r.GET("/", rl(middleware.GroupPage), pageHandler.Index)

	linkHandler := NewLinkHandler(deps.LinkSvc, deps.QRCacheMaxAge)
	v1 := r.Group("/api/v1")
	{
		v1.GET("/defaults", linkHandler.Defaults)

		links := v1.Group("/links")
		links.GET("", rl(middleware.GroupLinks), linkHandler.GetLink)
		links.POST("", rl(middleware.GroupLinks), linkHandler.CreateLink)
		links.GET("/qr.png", rl(middleware.GroupQR), linkHandler.QRCode)
	}

	return r
}
