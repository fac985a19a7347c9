package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shop-payment-reconciler/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ShopRepo implements ports.ShopRepository.
type ShopRepo struct {
	pool Pool
}

// NewShopRepo creates a new ShopRepo.
func NewShopRepo(pool Pool) *ShopRepo {
	return &ShopRepo{pool: pool}
}

const shopColumns = `shop_id, wallet_balance, is_pro, pro_expiry, last_sub_date, auto_renew,
	payhero_channel_id, is_active, activation_processed, created_at, updated_at`

func scanShop(row pgx.Row) (*domain.Shop, error) {
	s := &domain.Shop{}
	err := row.Scan(
		&s.ShopID, &s.WalletBalance, &s.IsPro, &s.ProExpiry, &s.LastSubDate,
		&s.AutoRenew, &s.PayheroChannelID, &s.IsActive, &s.ActivationProcessed,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByID fetches a shop by its identifier. Returns nil when no shop exists.
func (r *ShopRepo) GetByID(ctx context.Context, shopID string) (*domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE shop_id = $1`

	s, err := scanShop(r.pool.QueryRow(ctx, query, shopID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop by id: %w", err)
	}
	return s, nil
}

// ListDueForRenewal returns every shop with auto-renew enabled whose Pro
// subscription expired at or before the given instant.
func (r *ShopRepo) ListDueForRenewal(ctx context.Context, now time.Time) ([]domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops
		WHERE auto_renew = TRUE AND pro_expiry IS NOT NULL AND pro_expiry <= $1
		ORDER BY shop_id`

	rows, err := r.pool.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("list shops due for renewal: %w", err)
	}
	defer rows.Close()

	var shops []domain.Shop
	for rows.Next() {
		s, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shop row: %w", err)
		}
		shops = append(shops, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shop rows: %w", err)
	}
	return shops, nil
}

// AdjustBalance applies a signed delta to the wallet balance within a transaction.
// The increment happens in SQL so concurrent callbacks never clobber each other.
func (r *ShopRepo) AdjustBalance(ctx context.Context, tx pgx.Tx, shopID string, delta decimal.Decimal) error {
	query := `UPDATE shops SET wallet_balance = wallet_balance + $1, updated_at = NOW() WHERE shop_id = $2`

	tag, err := tx.Exec(ctx, query, delta, shopID)
	if err != nil {
		return fmt.Errorf("adjust shop balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shop not found: %s", shopID)
	}
	return nil
}

// ExtendSubscription marks the shop Pro with the given expiry after a paid
// subscription.
func (r *ShopRepo) ExtendSubscription(ctx context.Context, tx pgx.Tx, shopID string, newExpiry, lastSubDate time.Time) error {
	query := `UPDATE shops SET is_pro = TRUE, pro_expiry = $1, last_sub_date = $2, updated_at = NOW()
		WHERE shop_id = $3`

	tag, err := tx.Exec(ctx, query, newExpiry, lastSubDate, shopID)
	if err != nil {
		return fmt.Errorf("extend shop subscription: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shop not found: %s", shopID)
	}
	return nil
}

// RenewSubscription debits the renewal price and moves the expiry forward in
// a single statement.
func (r *ShopRepo) RenewSubscription(ctx context.Context, tx pgx.Tx, shopID string, newExpiry time.Time, price decimal.Decimal) error {
	query := `UPDATE shops SET wallet_balance = wallet_balance - $1, pro_expiry = $2, is_pro = TRUE, updated_at = NOW()
		WHERE shop_id = $3`

	tag, err := tx.Exec(ctx, query, price, newExpiry, shopID)
	if err != nil {
		return fmt.Errorf("renew shop subscription: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shop not found: %s", shopID)
	}
	return nil
}

// SetPro toggles the Pro flag without touching balance or expiry.
func (r *ShopRepo) SetPro(ctx context.Context, tx pgx.Tx, shopID string, isPro bool) error {
	query := `UPDATE shops SET is_pro = $1, updated_at = NOW() WHERE shop_id = $2`

	tag, err := tx.Exec(ctx, query, isPro, shopID)
	if err != nil {
		return fmt.Errorf("set shop pro flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shop not found: %s", shopID)
	}
	return nil
}

// SetChannel records the aggregator channel id and activates the shop.
func (r *ShopRepo) SetChannel(ctx context.Context, shopID string, channelID string) error {
	query := `UPDATE shops SET payhero_channel_id = $1, is_active = TRUE, activation_processed = TRUE, updated_at = NOW()
		WHERE shop_id = $2`

	tag, err := r.pool.Exec(ctx, query, channelID, shopID)
	if err != nil {
		return fmt.Errorf("set shop channel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shop not found: %s", shopID)
	}
	return nil
}
