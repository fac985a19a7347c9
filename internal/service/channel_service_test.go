package service

import (
	"context"
	"testing"

	"shop-payment-reconciler/config"
	"shop-payment-reconciler/internal/core/ports"
	"shop-payment-reconciler/internal/core/ports/mocks"
	"shop-payment-reconciler/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type channelTestDeps struct {
	svc       *ChannelServiceImpl
	shopRepo  *mocks.MockShopRepository
	registrar *mocks.MockChannelRegistrar
	ctrl      *gomock.Controller
}

func setupChannelService(t *testing.T) *channelTestDeps {
	ctrl := gomock.NewController(t)
	d := &channelTestDeps{
		shopRepo:  mocks.NewMockShopRepository(ctrl),
		registrar: mocks.NewMockChannelRegistrar(ctrl),
		ctrl:      ctrl,
	}
	cfg := config.PayheroConfig{APIKey: "key", AccountID: "1432"}
	d.svc = NewChannelService(d.shopRepo, d.registrar, cfg, zerolog.Nop())
	return d
}

func validActivation() ports.ActivationRequest {
	return ports.ActivationRequest{
		CallerID:  "admin",
		ShopID:    "shop123",
		Type:      "Till",
		ShortCode: "174379",
		ShopName:  "My Shop",
	}
}

func TestChannelService_ActivateChannel(t *testing.T) {
	d := setupChannelService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.registrar.EXPECT().RegisterChannel(ctx, ports.ChannelRegistration{
		Type:          "till",
		ShortCode:     "174379",
		AccountNumber: "174379", // falls back to short code
		Name:          "My Shop",
	}).Return("3867", nil)
	d.shopRepo.EXPECT().SetChannel(ctx, "shop123", "3867").Return(nil)

	channelID, err := d.svc.ActivateChannel(ctx, validActivation())
	require.NoError(t, err)
	assert.Equal(t, "3867", channelID)
}

func TestChannelService_TillNumberOverridesAccountNumber(t *testing.T) {
	d := setupChannelService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := validActivation()
	req.TillNumber = "556677"

	d.registrar.EXPECT().RegisterChannel(ctx, ports.ChannelRegistration{
		Type:          "till",
		ShortCode:     "174379",
		AccountNumber: "556677",
		Name:          "My Shop",
	}).Return("3867", nil)
	d.shopRepo.EXPECT().SetChannel(ctx, "shop123", "3867").Return(nil)

	_, err := d.svc.ActivateChannel(ctx, req)
	require.NoError(t, err)
}

func TestChannelService_NonTillTypeMapsToPaybill(t *testing.T) {
	d := setupChannelService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	for _, typ := range []string{"paybill", "PAYBILL", "shortcode", "anything"} {
		req := validActivation()
		req.Type = typ

		d.registrar.EXPECT().RegisterChannel(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, reg ports.ChannelRegistration) (string, error) {
				assert.Equal(t, "paybill", reg.Type)
				return "3867", nil
			})
		d.shopRepo.EXPECT().SetChannel(ctx, "shop123", "3867").Return(nil)

		_, err := d.svc.ActivateChannel(ctx, req)
		require.NoError(t, err)
	}
}

func TestChannelService_UnauthenticatedCallerIssuesNoOutboundCall(t *testing.T) {
	d := setupChannelService(t)
	defer d.ctrl.Finish()

	req := validActivation()
	req.CallerID = ""

	_, err := d.svc.ActivateChannel(context.Background(), req)
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestChannelService_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ports.ActivationRequest)
	}{
		{"missing shop_id", func(r *ports.ActivationRequest) { r.ShopID = "" }},
		{"missing type", func(r *ports.ActivationRequest) { r.Type = "" }},
		{"missing short_code", func(r *ports.ActivationRequest) { r.ShortCode = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupChannelService(t)
			defer d.ctrl.Finish()

			req := validActivation()
			tt.mutate(&req)

			_, err := d.svc.ActivateChannel(context.Background(), req)
			require.Error(t, err)

			appErr, ok := err.(*apperror.AppError)
			require.True(t, ok)
			assert.Equal(t, "CHN_001", appErr.Code)
		})
	}
}

func TestChannelService_MissingCredentialsFailsBeforeOutboundCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	shopRepo := mocks.NewMockShopRepository(ctrl)
	registrar := mocks.NewMockChannelRegistrar(ctrl)
	svc := NewChannelService(shopRepo, registrar, config.PayheroConfig{}, zerolog.Nop())

	_, err := svc.ActivateChannel(context.Background(), validActivation())
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "CHN_002", appErr.Code)
}

func TestChannelService_AggregatorErrorPropagatesMessage(t *testing.T) {
	d := setupChannelService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.registrar.EXPECT().RegisterChannel(ctx, gomock.Any()).
		Return("", assert.AnError)

	_, err := d.svc.ActivateChannel(ctx, validActivation())
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "UPS_001", appErr.Code)
	assert.Contains(t, appErr.Message, assert.AnError.Error())
}

func TestChannelService_EmptyChannelIDIsInternalError(t *testing.T) {
	d := setupChannelService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.registrar.EXPECT().RegisterChannel(ctx, gomock.Any()).Return("", nil)

	_, err := d.svc.ActivateChannel(ctx, validActivation())
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "UPS_002", appErr.Code)
}

func TestChannelService_PersistFailureSurfaces(t *testing.T) {
	d := setupChannelService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.registrar.EXPECT().RegisterChannel(ctx, gomock.Any()).Return("3867", nil)
	d.shopRepo.EXPECT().SetChannel(ctx, "shop123", "3867").Return(assert.AnError)

	_, err := d.svc.ActivateChannel(ctx, validActivation())
	assert.Error(t, err)
}
