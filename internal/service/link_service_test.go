package service

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"strings"
	"testing"

	"buy-me-a-coffee/internal/core/domain"
	"buy-me-a-coffee/internal/core/ports/mocks"
	"buy-me-a-coffee/internal/core/upi"
	"buy-me-a-coffee/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type linkTestDeps struct {
	svc     *linkService
	metrics *mocks.MockLinkMetrics
	ctrl    *gomock.Controller
}

func setupLinkService(t *testing.T) *linkTestDeps {
	ctrl := gomock.NewController(t)
	d := &linkTestDeps{
		metrics: mocks.NewMockLinkMetrics(ctrl),
		ctrl:    ctrl,
	}
	builder := upi.NewBuilder(domain.PayeeDefaults{
		PayeeAddress: "coffee@okbank",
		PayeeName:    "Coffee Support",
		Note:         "Thanks for the coffee!",
		Presets:      []int{50, 100, 200, 500},
	})
	d.svc = NewLinkService(builder, 0, d.metrics, zerolog.Nop()).(*linkService)
	return d
}

func imageSize(t *testing.T, img []byte) (int, int) {
	t.Helper()
	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

// ==================== BuildLink Tests ====================

func TestLinkService_BuildLink_Defaults(t *testing.T) {
	d := setupLinkService(t)
	defer d.ctrl.Finish()

	d.metrics.EXPECT().LinkBuilt(false)

	link, err := d.svc.BuildLink(context.Background(), domain.PaymentLinkRequest{})
	require.NoError(t, err)

	assert.Equal(t, "upi://pay?pa=coffee%40okbank&pn=Coffee+Support&cu=INR&tn=Thanks+for+the+coffee%21", link.URI)
	assert.Equal(t, "coffee@okbank", link.PayeeAddress)
	assert.Empty(t, link.Amount)
}

func TestLinkService_BuildLink_WithAmount(t *testing.T) {
	d := setupLinkService(t)
	defer d.ctrl.Finish()

	d.metrics.EXPECT().LinkBuilt(true)

	link, err := d.svc.BuildLink(context.Background(), domain.PaymentLinkRequest{
		PayeeAddress: domain.Some("a@bank"),
		PayeeName:    domain.Some("Coffee"),
		Amount:       domain.Some("50"),
		Note:         domain.Some("Thanks!"),
	})
	require.NoError(t, err)

	assert.Equal(t, "upi://pay?pa=a%40bank&pn=Coffee&am=50.00&cu=INR&tn=Thanks%21", link.URI)
	assert.Equal(t, "50.00", link.Amount)
	assert.Equal(t, "50", link.SanitizedAmount)
}

func TestLinkService_BuildLink_BlankPayee(t *testing.T) {
	d := setupLinkService(t)
	defer d.ctrl.Finish()

	// No metrics call expected.
	link, err := d.svc.BuildLink(context.Background(), domain.PaymentLinkRequest{
		PayeeAddress: domain.Some("  "),
	})

	assert.Nil(t, link)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "UPI_001", appErr.Code)
}

func TestLinkService_BuildLink_NilMetrics(t *testing.T) {
	svc := NewLinkService(upi.NewBuilder(domain.PayeeDefaults{PayeeAddress: "a@bank"}), 0, nil, zerolog.Nop())

	link, err := svc.BuildLink(context.Background(), domain.PaymentLinkRequest{Amount: domain.Some("10")})
	require.NoError(t, err)
	assert.Equal(t, "upi://pay?pa=a%40bank&am=10.00&cu=INR", link.URI)
}

// ==================== RenderQR Tests ====================

func TestLinkService_RenderQR_DefaultSize(t *testing.T) {
	d := setupLinkService(t)
	defer d.ctrl.Finish()

	d.metrics.EXPECT().LinkBuilt(true)
	d.metrics.EXPECT().QRRendered()

	img, err := d.svc.RenderQR(context.Background(), domain.PaymentLinkRequest{Amount: domain.Some("100")}, 0)
	require.NoError(t, err)

	w, h := imageSize(t, img)
	assert.Equal(t, DefaultQRSize, w)
	assert.Equal(t, DefaultQRSize, h)
}

func TestLinkService_RenderQR_ClampsSize(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"too small", 16, MinQRSize},
		{"in range", 300, 300},
		{"too large", 5000, MaxQRSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupLinkService(t)
			defer d.ctrl.Finish()

			d.metrics.EXPECT().LinkBuilt(false)
			d.metrics.EXPECT().QRRendered()

			img, err := d.svc.RenderQR(context.Background(), domain.PaymentLinkRequest{}, tt.size)
			require.NoError(t, err)

			w, _ := imageSize(t, img)
			assert.Equal(t, tt.want, w)
		})
	}
}

func TestLinkService_RenderQR_BlankPayee(t *testing.T) {
	d := setupLinkService(t)
	defer d.ctrl.Finish()

	img, err := d.svc.RenderQR(context.Background(), domain.PaymentLinkRequest{PayeeAddress: domain.Some("")}, 0)

	assert.Nil(t, img)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "UPI_001", appErr.Code)
}

func TestLinkService_RenderQR_ContentTooLong(t *testing.T) {
	d := setupLinkService(t)
	defer d.ctrl.Finish()

	d.metrics.EXPECT().LinkBuilt(false)

	_, err := d.svc.RenderQR(context.Background(), domain.PaymentLinkRequest{
		Note: domain.Some(strings.Repeat("a", 4000)),
	}, 0)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "SYS_003", appErr.Code)
}

// ==================== Defaults Tests ====================

func TestLinkService_Defaults(t *testing.T) {
	d := setupLinkService(t)
	defer d.ctrl.Finish()

	defaults := d.svc.Defaults()
	assert.Equal(t, "coffee@okbank", defaults.PayeeAddress)
	assert.Equal(t, "Coffee Support", defaults.PayeeName)
	assert.Equal(t, []int{50, 100, 200, 500}, defaults.Presets)
}

func TestNewLinkService_ClampsConfiguredSize(t *testing.T) {
	svc := NewLinkService(upi.NewBuilder(domain.PayeeDefaults{}), 10000, nil, zerolog.Nop()).(*linkService)
	assert.Equal(t, MaxQRSize, svc.qrSize)
}
