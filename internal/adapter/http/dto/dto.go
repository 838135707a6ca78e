package dto

import "buy-me-a-coffee/internal/core/domain"

// LinkRequest is the body of POST /api/v1/links and the query of
// GET /api/v1/links, GET /api/v1/links/qr.png and the page. A nil field was
// not sent and takes the payee default; an empty one was cleared on purpose.
type LinkRequest struct {
	PayeeAddress *string `json:"payee_address,omitempty" form:"pa" binding:"omitempty,max=255,vpa"`
	PayeeName    *string `json:"payee_name,omitempty" form:"pn" binding:"omitempty,max=100"`
	Amount       *string `json:"amount,omitempty" form:"am" binding:"omitempty,max=32"`
	Note         *string `json:"note,omitempty" form:"tn" binding:"omitempty,max=100"`
}

// ToDomain converts the request into a domain request.
func (r LinkRequest) ToDomain() domain.PaymentLinkRequest {
	return domain.PaymentLinkRequest{
		PayeeAddress: domain.FromPtr(r.PayeeAddress),
		PayeeName:    domain.FromPtr(r.PayeeName),
		Amount:       domain.FromPtr(r.Amount),
		Note:         domain.FromPtr(r.Note),
	}
}

// QRRequest adds the image size to a LinkRequest.
type QRRequest struct {
	LinkRequest
	Size int `form:"size" binding:"omitempty,min=0,max=4096"`
}

// LinkResponse is the response body for a built link.
type LinkResponse struct {
	URI             string `json:"uri"`
	PayeeAddress    string `json:"payee_address"`
	PayeeName       string `json:"payee_name,omitempty"`
	Amount          string `json:"amount,omitempty"`
	SanitizedAmount string `json:"sanitized_amount"`
	Note            string `json:"note,omitempty"`
	Currency        string `json:"currency"`
	QRCodeURL       string `json:"qr_code_url"`
}

// DefaultsResponse is the response body for GET /api/v1/defaults.
type DefaultsResponse struct {
	PayeeAddress string `json:"payee_address"`
	PayeeName    string `json:"payee_name"`
	Note         string `json:"note"`
	Presets      []int  `json:"presets"`
	Currency     string `json:"currency"`
}
