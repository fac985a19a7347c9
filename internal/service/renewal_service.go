package service

import (
	"context"
	"fmt"
	"time"

	"shop-payment-reconciler/internal/core/domain"
	"shop-payment-reconciler/internal/core/ports"
	"shop-payment-reconciler/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RenewalServiceImpl implements ports.RenewalService.
type RenewalServiceImpl struct {
	shopRepo    ports.ShopRepository
	historyRepo ports.WalletHistoryRepository
	transactor  ports.DBTransactor
	log         zerolog.Logger
	now         func() time.Time
}

// NewRenewalService creates a new RenewalServiceImpl.
func NewRenewalService(
	shopRepo ports.ShopRepository,
	historyRepo ports.WalletHistoryRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *RenewalServiceImpl {
	return &RenewalServiceImpl{
		shopRepo:    shopRepo,
		historyRepo: historyRepo,
		transactor:  transactor,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// SweepExpired renews every due shop that can afford the renewal price and
// lapses the rest. The whole sweep commits in one transaction: a failure on
// any shop aborts the tick, and the next tick re-derives its work from
// current shop records.
func (s *RenewalServiceImpl) SweepExpired(ctx context.Context) (int, int, error) {
	now := s.now()

	shops, err := s.shopRepo.ListDueForRenewal(ctx, now)
	if err != nil {
		return 0, 0, apperror.ErrDatabaseError(fmt.Errorf("list due shops: %w", err))
	}
	if len(shops) == 0 {
		s.log.Info().Msg("no subscriptions due for renewal")
		return 0, 0, nil
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, 0, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var renewed, lapsed int
	for i := range shops {
		shop := &shops[i]

		if !shop.CanAutoRenew() {
			if err := s.shopRepo.SetPro(ctx, tx, shop.ShopID, false); err != nil {
				return 0, 0, apperror.ErrDatabaseError(fmt.Errorf("lapse shop %s: %w", shop.ShopID, err))
			}
			s.log.Info().
				Str("shop_id", shop.ShopID).
				Str("balance", shop.WalletBalance.String()).
				Msg("insufficient balance, subscription lapsed")
			lapsed++
			continue
		}

		newExpiry := shop.RenewalExpiry(now)
		if err := s.shopRepo.RenewSubscription(ctx, tx, shop.ShopID, newExpiry, domain.RenewalPrice); err != nil {
			return 0, 0, apperror.ErrDatabaseError(fmt.Errorf("renew shop %s: %w", shop.ShopID, err))
		}

		entry := &domain.WalletHistoryEntry{
			ID:          uuid.New(),
			ShopID:      shop.ShopID,
			Amount:      domain.RenewalPrice.Neg(),
			Type:        domain.HistoryTypeSubscription,
			Status:      domain.HistoryStatusPaid,
			Description: "Automatic Pro Renewal",
			DateTime:    now,
		}
		if err := s.historyRepo.Create(ctx, tx, entry); err != nil {
			return 0, 0, apperror.ErrDatabaseError(fmt.Errorf("append renewal history for %s: %w", shop.ShopID, err))
		}

		s.log.Info().
			Str("shop_id", shop.ShopID).
			Time("new_expiry", newExpiry).
			Msg("subscription auto-renewed")
		renewed++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, 0, apperror.ErrDatabaseError(fmt.Errorf("commit sweep tx: %w", err))
	}

	s.log.Info().
		Int("renewed", renewed).
		Int("lapsed", lapsed).
		Msg("renewal sweep complete")

	return renewed, lapsed, nil
}
