package upi

import (
	"buy-me-a-coffee/internal/core/domain"
)

// Builder turns link requests into PaymentLinks. It carries the payee
// defaults loaded at startup and is safe for concurrent use.
type Builder struct {
	defaults domain.PayeeDefaults
}

// NewBuilder creates a Builder with the given defaults.
func NewBuilder(defaults domain.PayeeDefaults) *Builder {
	presets := make([]int, len(defaults.Presets))
	copy(presets, defaults.Presets)
	defaults.Presets = presets
	return &Builder{defaults: defaults}
}

// Defaults returns a copy of the configured defaults.
func (b *Builder) Defaults() domain.PayeeDefaults {
	d := b.defaults
	d.Presets = make([]int, len(b.defaults.Presets))
	copy(d.Presets, b.defaults.Presets)
	return d
}

// NewRequest returns the request a visitor starts from: default payee,
// default note, no amount.
func (b *Builder) NewRequest() domain.PaymentLinkRequest {
	return domain.PaymentLinkRequest{
		PayeeAddress: domain.Some(b.defaults.PayeeAddress),
		PayeeName:    domain.OptionalOf(b.defaults.PayeeName),
		Amount:       domain.None(),
		Note:         domain.OptionalOf(b.defaults.Note),
	}
}

// Complete fills every absent field of req from NewRequest. Fields that are
// present but blank stay blank; a cleared payee address is not replaced.
func (b *Builder) Complete(req domain.PaymentLinkRequest) domain.PaymentLinkRequest {
	base := b.NewRequest()
	return domain.PaymentLinkRequest{
		PayeeAddress: req.PayeeAddress.Or(base.PayeeAddress),
		PayeeName:    req.PayeeName.Or(base.PayeeName),
		Amount:       req.Amount.Or(base.Amount),
		Note:         req.Note.Or(base.Note),
	}
}

// Build builds req exactly as given. Use Complete first to apply defaults.
func (b *Builder) Build(req domain.PaymentLinkRequest) (*domain.PaymentLink, error) {
	uri, err := BuildURI(req)
	if err != nil {
		return nil, err
	}

	link := &domain.PaymentLink{
		URI:          uri,
		PayeeAddress: req.PayeeAddress.String(),
		Currency:     domain.CurrencyINR,
	}
	if req.PayeeName.Present() {
		link.PayeeName = req.PayeeName.String()
	}
	if raw, set := req.Amount.Get(); set {
		link.SanitizedAmount = EchoAmount(raw)
		if am, ok := FormatAmount(raw); ok {
			link.Amount = am
		}
	}
	if req.Note.Present() {
		link.Note = req.Note.String()
	}
	return link, nil
}
