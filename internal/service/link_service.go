package service

import (
	"context"
	"errors"

	"buy-me-a-coffee/internal/core/domain"
	"buy-me-a-coffee/internal/core/ports"
	"buy-me-a-coffee/internal/core/upi"
	"buy-me-a-coffee/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/skip2/go-qrcode"
)

// QR code edge bounds in pixels.
const (
	MinQRSize     = 128
	MaxQRSize     = 1024
	DefaultQRSize = 256
)

type linkService struct {
	builder *upi.Builder
	qrSize  int
	metrics ports.LinkMetrics
	log     zerolog.Logger
}

// NewLinkService creates the link service. metrics may be nil.
func NewLinkService(builder *upi.Builder, qrSize int, metrics ports.LinkMetrics, log zerolog.Logger) ports.LinkService {
	if qrSize <= 0 {
		qrSize = DefaultQRSize
	}
	return &linkService{
		builder: builder,
		qrSize:  clampQRSize(qrSize),
		metrics: metrics,
		log:     log,
	}
}

// BuildLink completes req from the payee defaults and builds the link.
func (s *linkService) BuildLink(ctx context.Context, req domain.PaymentLinkRequest) (*domain.PaymentLink, error) {
	link, err := s.builder.Build(s.builder.Complete(req))
	if err != nil {
		if errors.Is(err, upi.ErrPayeeAddressRequired) {
			return nil, apperror.ErrPayeeAddressRequired()
		}
		return nil, apperror.InternalError(err)
	}

	if s.metrics != nil {
		s.metrics.LinkBuilt(link.HasFixedAmount())
	}
	s.log.Debug().
		Str("payee", link.PayeeAddress).
		Str("amount", link.Amount).
		Msg("payment link built")

	return link, nil
}

// RenderQR encodes the link for req as a PNG at medium error recovery.
func (s *linkService) RenderQR(ctx context.Context, req domain.PaymentLinkRequest, size int) ([]byte, error) {
	link, err := s.BuildLink(ctx, req)
	if err != nil {
		return nil, err
	}

	if size <= 0 {
		size = s.qrSize
	}
	png, err := qrcode.Encode(link.URI, qrcode.Medium, clampQRSize(size))
	if err != nil {
		s.log.Error().Err(err).Int("uri_len", len(link.URI)).Msg("qr encode failed")
		return nil, apperror.ErrQRCodeFailure(err)
	}

	if s.metrics != nil {
		s.metrics.QRRendered()
	}
	return png, nil
}

// Defaults returns the configured payee defaults.
func (s *linkService) Defaults() domain.PayeeDefaults {
	return s.builder.Defaults()
}

func clampQRSize(size int) int {
	if size < MinQRSize {
		return MinQRSize
	}
	if size > MaxQRSize {
		return MaxQRSize
	}
	return size
}
