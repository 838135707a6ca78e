package ports

import (
	"context"
	"time"

	"buy-me-a-coffee/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// LinkService builds UPI payment links and their QR codes.
type LinkService interface {
	// BuildLink fills absent fields from the payee defaults and builds the link.
	BuildLink(ctx context.Context, req domain.PaymentLinkRequest) (*domain.PaymentLink, error)
	// RenderQR returns a PNG QR code of the link built for req.
	// size <= 0 selects the configured default.
	RenderQR(ctx context.Context, req domain.PaymentLinkRequest, size int) ([]byte, error)
	// Defaults returns the payee defaults the page starts from.
	Defaults() domain.PayeeDefaults
}

// LinkMetrics records link service activity.
type LinkMetrics interface {
	LinkBuilt(fixedAmount bool)
	QRRendered()
}

// RateLimiter counts requests per key in fixed windows.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}
