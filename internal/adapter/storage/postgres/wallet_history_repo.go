package postgres

import (
	"context"
	"fmt"

	"shop-payment-reconciler/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WalletHistoryRepo implements ports.WalletHistoryRepository.
type WalletHistoryRepo struct {
	pool Pool
}

// NewWalletHistoryRepo creates a new WalletHistoryRepo.
func NewWalletHistoryRepo(pool Pool) *WalletHistoryRepo {
	return &WalletHistoryRepo{pool: pool}
}

// Create appends a ledger entry within a transaction.
func (r *WalletHistoryRepo) Create(ctx context.Context, tx pgx.Tx, entry *domain.WalletHistoryEntry) error {
	query := `INSERT INTO wallet_history (id, shop_id, amount, type, status, description, date_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		entry.ID, entry.ShopID, entry.Amount, entry.Type,
		entry.Status, entry.Description, entry.DateTime,
	)
	if err != nil {
		return fmt.Errorf("insert wallet history: %w", err)
	}
	return nil
}
