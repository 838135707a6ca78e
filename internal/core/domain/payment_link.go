package domain

// CurrencyINR is the only currency a UPI collect link carries.
const CurrencyINR = "INR"

// PaymentLinkRequest holds the inputs for a single upi://pay link.
type PaymentLinkRequest struct {
	PayeeAddress Optional // VPA, required
	PayeeName    Optional
	Amount       Optional // raw user input, sanitized by the builder
	Note         Optional
}

// PaymentLink is the result of building a request.
type PaymentLink struct {
	URI             string `json:"uri"`
	PayeeAddress    string `json:"payee_address"`
	PayeeName       string `json:"payee_name,omitempty"`
	Amount          string `json:"amount,omitempty"` // "50.00"; empty means payer chooses
	SanitizedAmount string `json:"sanitized_amount"`
	Note            string `json:"note,omitempty"`
	Currency        string `json:"currency"`
}

// HasFixedAmount reports whether the link pins the amount.
func (l *PaymentLink) HasFixedAmount() bool {
	return l.Amount != ""
}

// PayeeDefaults is the startup configuration the page and API fall back to
// when a field is not supplied at all.
type PayeeDefaults struct {
	PayeeAddress string `json:"payee_address"`
	PayeeName    string `json:"payee_name"`
	Note         string `json:"note"`
	Presets      []int  `json:"presets"`
}
