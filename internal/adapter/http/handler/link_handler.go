package handler

import (
	"errors"
	"io"
	"net/url"
	"time"

	"buy-me-a-coffee/internal/adapter/http/dto"
	"buy-me-a-coffee/internal/core/domain"
	"buy-me-a-coffee/internal/core/ports"
	"buy-me-a-coffee/pkg/apperror"
	"buy-me-a-coffee/pkg/response"

	"github.com/gin-gonic/gin"
)

// QRPath is the route of the QR code endpoint.
const QRPath = "/api/v1/links/qr.png"

// LinkHandler handles the payment link API.
type LinkHandler struct {
	linkSvc  ports.LinkService
	qrMaxAge time.Duration
}

// NewLinkHandler creates a new LinkHandler.
func NewLinkHandler(linkSvc ports.LinkService, qrMaxAge time.Duration) *LinkHandler {
	return &LinkHandler{linkSvc: linkSvc, qrMaxAge: qrMaxAge}
}

// CreateLink handles POST /api/v1/links. An empty body builds the default link.
func (h *LinkHandler) CreateLink(c *gin.Context) {
	var req dto.LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, apperror.Validation(dto.BindErrorMessage(err)))
		return
	}
	dto.SanitizeStruct(&req)

	h.respondLink(c, req)
}

// GetLink handles GET /api/v1/links.
func (h *LinkHandler) GetLink(c *gin.Context) {
	var req dto.LinkRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.Validation(dto.BindErrorMessage(err)))
		return
	}
	dto.SanitizeStruct(&req)

	h.respondLink(c, req)
}

// QRCode handles GET /api/v1/links/qr.png.
func (h *LinkHandler) QRCode(c *gin.Context) {
	var req dto.QRRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.Validation(dto.BindErrorMessage(err)))
		return
	}
	dto.SanitizeStruct(&req)

	img, err := h.linkSvc.RenderQR(c.Request.Context(), req.ToDomain(), req.Size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.PNG(c, img, h.qrMaxAge)
}

// Defaults handles GET /api/v1/defaults.
func (h *LinkHandler) Defaults(c *gin.Context) {
	d := h.linkSvc.Defaults()
	response.OK(c, dto.DefaultsResponse{
		PayeeAddress: d.PayeeAddress,
		PayeeName:    d.PayeeName,
		Note:         d.Note,
		Presets:      d.Presets,
		Currency:     domain.CurrencyINR,
	})
}

func (h *LinkHandler) respondLink(c *gin.Context, req dto.LinkRequest) {
	link, err := h.linkSvc.BuildLink(c.Request.Context(), req.ToDomain())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toLinkResponse(link))
}

func toLinkResponse(link *domain.PaymentLink) dto.LinkResponse {
	return dto.LinkResponse{
		URI:             link.URI,
		PayeeAddress:    link.PayeeAddress,
		PayeeName:       link.PayeeName,
		Amount:          link.Amount,
		SanitizedAmount: link.SanitizedAmount,
		Note:            link.Note,
		Currency:        link.Currency,
		QRCodeURL:       qrCodeURL(link),
	}
}

// qrCodeURL points at the QR endpoint with every field set, so that blank
// fields stay blank instead of picking up defaults again.
func qrCodeURL(link *domain.PaymentLink) string {
	q := url.Values{}
	q.Set("pa", link.PayeeAddress)
	q.Set("pn", link.PayeeName)
	q.Set("am", link.SanitizedAmount)
	q.Set("tn", link.Note)
	return QRPath + "?" + q.Encode()
}
