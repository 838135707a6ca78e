package upi

import (
	"errors"
	"net/url"
	"strings"

	"buy-me-a-coffee/internal/core/domain"
)

// Scheme is the prefix every payment link starts with.
const Scheme = "upi://pay?"

// UPI deep-link query keys, in the order they are emitted.
const (
	ParamPayeeAddress = "pa"
	ParamPayeeName    = "pn"
	ParamAmount       = "am"
	ParamCurrency     = "cu"
	ParamNote         = "tn"
)

// ErrPayeeAddressRequired is returned when a request has no usable VPA.
var ErrPayeeAddressRequired = errors.New("payee address is required")

// BuildURI assembles the upi://pay link for req. Keys are always written in
// the order pa, pn, am, cu, tn; optional keys are left out when their value
// is absent or blank, and am is left out unless it is a positive number.
func BuildURI(req domain.PaymentLinkRequest) (string, error) {
	pa := req.PayeeAddress.String()
	if pa == "" {
		return "", ErrPayeeAddressRequired
	}

	q := newQuery()
	q.add(ParamPayeeAddress, pa)
	if req.PayeeName.Present() {
		q.add(ParamPayeeName, req.PayeeName.String())
	}
	if raw, set := req.Amount.Get(); set {
		if am, ok := FormatAmount(raw); ok {
			q.add(ParamAmount, am)
		}
	}
	q.add(ParamCurrency, domain.CurrencyINR)
	if req.Note.Present() {
		q.add(ParamNote, req.Note.String())
	}

	return Scheme + q.String(), nil
}

// query is an insertion-ordered form encoder. url.Values sorts its keys,
// which UPI handlers tolerate but the link format does not promise.
type query struct {
	b strings.Builder
}

func newQuery() *query {
	return &query{}
}

func (q *query) add(key, value string) {
	if q.b.Len() > 0 {
		q.b.WriteByte('&')
	}
	q.b.WriteString(key)
	q.b.WriteByte('=')
	q.b.WriteString(url.QueryEscape(value))
}

func (q *query) String() string {
	return q.b.String()
}
