package postgres

import (
	"context"
	"errors"
	"fmt"

	"shop-payment-reconciler/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PaymentRequestRepo implements ports.PaymentRequestRepository.
type PaymentRequestRepo struct {
	pool Pool
}

// NewPaymentRequestRepo creates a new PaymentRequestRepo.
func NewPaymentRequestRepo(pool Pool) *PaymentRequestRepo {
	return &PaymentRequestRepo{pool: pool}
}

// Get fetches a payment request by reference. Returns nil when none exists.
func (r *PaymentRequestRepo) Get(ctx context.Context, reference string) (*domain.PaymentRequest, error) {
	query := `SELECT reference, status, amount, mpesa_code, updated_at
		FROM payment_requests WHERE reference = $1`

	pr := &domain.PaymentRequest{}
	err := r.pool.QueryRow(ctx, query, reference).Scan(
		&pr.Reference, &pr.Status, &pr.Amount, &pr.MpesaCode, &pr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment request: %w", err)
	}
	return pr, nil
}

// Upsert merges the payment request at its reference key. Replaying a
// callback overwrites the row with identical values.
func (r *PaymentRequestRepo) Upsert(ctx context.Context, pr *domain.PaymentRequest) error {
	query := `INSERT INTO payment_requests (reference, status, amount, mpesa_code, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (reference) DO UPDATE
		SET status = EXCLUDED.status, amount = EXCLUDED.amount,
			mpesa_code = EXCLUDED.mpesa_code, updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		pr.Reference, pr.Status, pr.Amount, pr.MpesaCode, pr.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert payment request: %w", err)
	}
	return nil
}
