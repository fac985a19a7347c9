package ports

import (
	"context"
	"time"

	"shop-payment-reconciler/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ShopRepository defines persistence operations for shops.
// Methods accepting pgx.Tx run inside transaction blocks so that a balance
// change and its history entry commit together or not at all. Balance
// mutations are issued as atomic increments against the stored value, never
// as read-then-write of a cached balance.
type ShopRepository interface {
	GetByID(ctx context.Context, shopID string) (*domain.Shop, error)
	// ListDueForRenewal returns shops with auto_renew enabled whose
	// subscription expired at or before now.
	ListDueForRenewal(ctx context.Context, now time.Time) ([]domain.Shop, error)
	// AdjustBalance applies a signed delta to the wallet balance.
	AdjustBalance(ctx context.Context, tx pgx.Tx, shopID string, delta decimal.Decimal) error
	// ExtendSubscription marks the shop Pro with the given expiry after a
	// paid subscription callback.
	ExtendSubscription(ctx context.Context, tx pgx.Tx, shopID string, newExpiry, lastSubDate time.Time) error
	// RenewSubscription debits the renewal price and extends the expiry in
	// one statement (automatic renewal).
	RenewSubscription(ctx context.Context, tx pgx.Tx, shopID string, newExpiry time.Time, price decimal.Decimal) error
	// SetPro toggles the Pro flag without touching balance or expiry.
	SetPro(ctx context.Context, tx pgx.Tx, shopID string, isPro bool) error
	// SetChannel records the aggregator channel id and marks the shop active.
	SetChannel(ctx context.Context, shopID string, channelID string) error
}

// PaymentRequestRepository defines persistence for payment requests.
type PaymentRequestRepository interface {
	Get(ctx context.Context, reference string) (*domain.PaymentRequest, error)
	// Upsert merges the request at its reference key. Replaying the same
	// callback produces the same row.
	Upsert(ctx context.Context, pr *domain.PaymentRequest) error
}

// WalletHistoryRepository appends ledger lines. Entries are immutable.
type WalletHistoryRepository interface {
	Create(ctx context.Context, tx pgx.Tx, entry *domain.WalletHistoryEntry) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
