package handler

import (
	"errors"
	"html/template"
	"net/http"

	"buy-me-a-coffee/internal/adapter/http/dto"
	"buy-me-a-coffee/internal/core/domain"
	"buy-me-a-coffee/internal/core/ports"
	"buy-me-a-coffee/internal/core/upi"
	"buy-me-a-coffee/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PageData is the view model of index.html.
type PageData struct {
	// URI is marked safe because html/template only trusts http(s) and
	// mailto URLs in attributes and would otherwise replace upi:// links.
	URI             template.URL
	QRCodeURL       string
	PayeeAddress    string
	PayeeName       string
	SanitizedAmount string
	Note            string
	Presets         []int
	Error           string
}

// PageHandler renders the coffee page.
type PageHandler struct {
	linkSvc ports.LinkService
	log     zerolog.Logger
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(linkSvc ports.LinkService, log zerolog.Logger) *PageHandler {
	return &PageHandler{linkSvc: linkSvc, log: log}
}

// Index handles GET /. Query parameters pa, pn, am and tn override the
// payee defaults; a parameter sent empty stays empty.
func (h *PageHandler) Index(c *gin.Context) {
	defaults := h.linkSvc.Defaults()

	var req dto.LinkRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		appErr := apperror.Validation(dto.BindErrorMessage(err))
		h.render(c, http.StatusBadRequest, h.fallbackData(defaults, rawRequest(c), appErr))
		return
	}
	dto.SanitizeStruct(&req)

	domainReq := req.ToDomain()
	link, err := h.linkSvc.BuildLink(c.Request.Context(), domainReq)
	if err != nil {
		status := http.StatusInternalServerError
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status = appErr.HTTPStatus
		} else {
			h.log.Error().Err(err).Msg("page link build failed")
		}
		h.render(c, status, h.fallbackData(defaults, domainReq, err))
		return
	}

	h.render(c, http.StatusOK, PageData{
		URI:             template.URL(link.URI),
		QRCodeURL:       qrCodeURL(link),
		PayeeAddress:    link.PayeeAddress,
		PayeeName:       link.PayeeName,
		SanitizedAmount: link.SanitizedAmount,
		Note:            link.Note,
		Presets:         defaults.Presets,
	})
}

func (h *PageHandler) render(c *gin.Context, status int, data PageData) {
	c.HTML(status, "index.html", data)
}

// fallbackData fills the form from the request and defaults when no link
// could be built, so the visitor keeps what they typed.
func (h *PageHandler) fallbackData(d domain.PayeeDefaults, req domain.PaymentLinkRequest, err error) PageData {
	msg := "Something went wrong. Please try again."
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}
	return PageData{
		PayeeAddress:    req.PayeeAddress.Or(domain.Some(d.PayeeAddress)).String(),
		PayeeName:       req.PayeeName.Or(domain.Some(d.PayeeName)).String(),
		SanitizedAmount: upi.EchoAmount(req.Amount.String()),
		Note:            req.Note.Or(domain.Some(d.Note)).String(),
		Presets:         d.Presets,
		Error:           msg,
	}
}

// rawRequest reads pa, pn, am and tn without validation so that a rejected
// form is shown back as typed. A sent parameter is never replaced by a default.
func rawRequest(c *gin.Context) domain.PaymentLinkRequest {
	var raw dto.LinkRequest
	fields := map[string]**string{
		"pa": &raw.PayeeAddress,
		"pn": &raw.PayeeName,
		"am": &raw.Amount,
		"tn": &raw.Note,
	}
	for key, dst := range fields {
		if v, ok := c.GetQuery(key); ok {
			*dst = &v
		}
	}
	dto.SanitizeStruct(&raw)
	return raw.ToDomain()
}
