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
	"github.com/shopspring/decimal"
)

// aggregatorSuccess is the literal status string the aggregator sends for a
// settled payment. The comparison is exact, including case.
const aggregatorSuccess = "Success"

const dedupTTL = 24 * time.Hour

// ReconciliationServiceImpl implements ports.ReconciliationService.
type ReconciliationServiceImpl struct {
	shopRepo    ports.ShopRepository
	paymentRepo ports.PaymentRequestRepository
	historyRepo ports.WalletHistoryRepository
	dedupCache  ports.DedupCache
	transactor  ports.DBTransactor
	log         zerolog.Logger
	now         func() time.Time
}

// NewReconciliationService creates a new ReconciliationServiceImpl.
func NewReconciliationService(
	shopRepo ports.ShopRepository,
	paymentRepo ports.PaymentRequestRepository,
	historyRepo ports.WalletHistoryRepository,
	dedupCache ports.DedupCache,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *ReconciliationServiceImpl {
	return &ReconciliationServiceImpl{
		shopRepo:    shopRepo,
		paymentRepo: paymentRepo,
		historyRepo: historyRepo,
		dedupCache:  dedupCache,
		transactor:  transactor,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Reconcile records the payment request unconditionally, then applies the
// wallet or subscription effect for successful payments. The payment request
// upsert is idempotent under replay; the economic effect is guarded by the
// prior PAID status and a best-effort dedup cache.
func (s *ReconciliationServiceImpl) Reconcile(ctx context.Context, event ports.CallbackEvent) (ports.ReconcileOutcome, error) {
	if event.ExternalReference == "" {
		// Acknowledged without effect so the aggregator does not retry.
		s.log.Warn().Msg("callback missing external reference, ignoring")
		return ports.OutcomeIgnored, nil
	}

	now := s.now()
	paid := event.Status == aggregatorSuccess

	prior, err := s.paymentRepo.Get(ctx, event.ExternalReference)
	if err != nil {
		return "", apperror.ErrDatabaseError(fmt.Errorf("read prior payment request: %w", err))
	}

	status := domain.PaymentStatusFailed
	if paid {
		status = domain.PaymentStatusPaid
	}
	pr := &domain.PaymentRequest{
		Reference: event.ExternalReference,
		Status:    status,
		Amount:    domain.ParseAmount(event.Amount),
		MpesaCode: event.MpesaCode,
		UpdatedAt: now,
	}
	if err := s.paymentRepo.Upsert(ctx, pr); err != nil {
		return "", apperror.ErrDatabaseError(fmt.Errorf("upsert payment request: %w", err))
	}

	if !paid {
		s.log.Info().
			Str("reference", event.ExternalReference).
			Str("status", event.Status).
			Msg("non-success callback recorded, no wallet effect")
		return ports.OutcomeProcessed, nil
	}

	ref := domain.ParseReference(event.ExternalReference)
	if !ref.HasShop() {
		s.log.Warn().
			Str("reference", event.ExternalReference).
			Msg("reference carries no shop id, skipping wallet effect")
		return ports.OutcomeIgnored, nil
	}

	// A reference already settled as PAID had its effect applied.
	if prior != nil && prior.Status == domain.PaymentStatusPaid {
		s.log.Info().
			Str("reference", event.ExternalReference).
			Msg("duplicate success callback, effect already applied")
		return ports.OutcomeDuplicate, nil
	}

	seen, err := s.dedupCache.Seen(ctx, event.ExternalReference)
	if err != nil {
		s.log.Warn().Err(err).
			Str("reference", event.ExternalReference).
			Msg("dedup cache check failed, falling through to apply")
	}
	if seen {
		return ports.OutcomeDuplicate, nil
	}

	shop, err := s.shopRepo.GetByID(ctx, ref.ShopID)
	if err != nil {
		return "", apperror.ErrDatabaseError(fmt.Errorf("get shop: %w", err))
	}
	if shop == nil {
		s.log.Error().
			Str("shop_id", ref.ShopID).
			Str("reference", event.ExternalReference).
			Msg("callback for unknown shop, skipping wallet effect")
		return ports.OutcomeIgnored, nil
	}

	if err := s.applyEffect(ctx, shop, ref, pr.Amount, now); err != nil {
		return "", err
	}

	if err := s.dedupCache.Mark(ctx, event.ExternalReference, dedupTTL); err != nil {
		s.log.Warn().Err(err).
			Str("reference", event.ExternalReference).
			Msg("dedup cache mark failed")
	}

	s.log.Info().
		Str("reference", event.ExternalReference).
		Str("shop_id", ref.ShopID).
		Str("type", ref.Type).
		Str("amount", pr.Amount.String()).
		Msg("callback reconciled")

	return ports.OutcomeProcessed, nil
}

// applyEffect writes the balance or subscription change and its history entry
// in one transaction.
func (s *ReconciliationServiceImpl) applyEffect(ctx context.Context, shop *domain.Shop, ref domain.Reference, amount decimal.Decimal, now time.Time) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	entry := &domain.WalletHistoryEntry{
		ID:       uuid.New(),
		ShopID:   shop.ShopID,
		DateTime: now,
	}

	switch ref.Type {
	case domain.TypeSubscription:
		newExpiry := shop.NextExpiry(now)
		if err := s.shopRepo.ExtendSubscription(ctx, tx, shop.ShopID, newExpiry, now); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("extend subscription: %w", err))
		}
		entry.Amount = amount
		entry.Type = domain.HistoryTypeSubscription
		entry.Status = domain.HistoryStatusSuccess
		entry.Description = "Pro Monthly Subscription"

	case domain.TypeTopup:
		if err := s.shopRepo.AdjustBalance(ctx, tx, shop.ShopID, amount); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("credit wallet: %w", err))
		}
		entry.Amount = amount
		entry.Type = domain.TypeTopup
		entry.Status = domain.HistoryStatusPaid
		entry.Description = "Wallet Top Up"

	default:
		fee := domain.TransactionFee(amount)
		deduction := fee.Add(domain.SaleMarkup)
		if deduction.IsPositive() {
			if err := s.shopRepo.AdjustBalance(ctx, tx, shop.ShopID, deduction.Neg()); err != nil {
				return apperror.ErrDatabaseError(fmt.Errorf("debit wallet: %w", err))
			}
		}
		entry.Amount = deduction.Neg()
		entry.Type = ref.Type
		entry.Status = domain.HistoryStatusPaid
		entry.Description = fmt.Sprintf("M-Pesa Sale (transaction fee %s + service charge %s)",
			fee.String(), domain.SaleMarkup.String())
	}

	if err := s.historyRepo.Create(ctx, tx, entry); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("append wallet history: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}
