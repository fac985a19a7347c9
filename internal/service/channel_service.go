package service

import (
	"context"
	"fmt"
	"strings"

	"shop-payment-reconciler/config"
	"shop-payment-reconciler/internal/core/ports"
	"shop-payment-reconciler/pkg/apperror"

	"github.com/rs/zerolog"
)

// ChannelServiceImpl implements ports.ChannelService.
type ChannelServiceImpl struct {
	shopRepo  ports.ShopRepository
	registrar ports.ChannelRegistrar
	cfg       config.PayheroConfig
	log       zerolog.Logger
}

// NewChannelService creates a new ChannelServiceImpl.
func NewChannelService(
	shopRepo ports.ShopRepository,
	registrar ports.ChannelRegistrar,
	cfg config.PayheroConfig,
	log zerolog.Logger,
) *ChannelServiceImpl {
	return &ChannelServiceImpl{
		shopRepo:  shopRepo,
		registrar: registrar,
		cfg:       cfg,
		log:       log,
	}
}

// ActivateChannel registers a payment channel for the shop with the
// aggregator and persists the returned channel id. Single attempt, no retry.
func (s *ChannelServiceImpl) ActivateChannel(ctx context.Context, req ports.ActivationRequest) (string, error) {
	if req.CallerID == "" {
		return "", apperror.ErrInvalidToken()
	}
	switch {
	case req.ShopID == "":
		return "", apperror.ErrMissingActivationField("shop_id")
	case req.Type == "":
		return "", apperror.ErrMissingActivationField("type")
	case req.ShortCode == "":
		return "", apperror.ErrMissingActivationField("short_code")
	}
	// Misconfiguration is detected before any outbound call.
	if s.cfg.APIKey == "" || s.cfg.AccountID == "" {
		return "", apperror.ErrAggregatorNotConfigured()
	}

	// Anything that is not exactly "till" registers as a paybill.
	channelType := "paybill"
	if strings.ToLower(req.Type) == "till" {
		channelType = "till"
	}

	accountNumber := req.TillNumber
	if accountNumber == "" {
		accountNumber = req.ShortCode
	}

	channelID, err := s.registrar.RegisterChannel(ctx, ports.ChannelRegistration{
		Type:          channelType,
		ShortCode:     req.ShortCode,
		AccountNumber: accountNumber,
		Name:          req.ShopName,
	})
	if err != nil {
		return "", apperror.ErrAggregatorFailure(err.Error(), err)
	}
	if channelID == "" {
		return "", apperror.ErrMissingChannelID()
	}

	if err := s.shopRepo.SetChannel(ctx, req.ShopID, channelID); err != nil {
		return "", apperror.ErrDatabaseError(fmt.Errorf("persist channel id: %w", err))
	}

	s.log.Info().
		Str("shop_id", req.ShopID).
		Str("channel_id", channelID).
		Str("channel_type", channelType).
		Str("caller", req.CallerID).
		Msg("payment channel activated")

	return channelID, nil
}
