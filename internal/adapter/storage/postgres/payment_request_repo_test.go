package postgres

import (
	"context"
	"testing"
	"time"

	"shop-payment-reconciler/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPaymentRequest(ref string) *domain.PaymentRequest {
	return &domain.PaymentRequest{
		Reference: ref,
		Status:    domain.PaymentStatusPaid,
		Amount:    domain.ParseAmount("1500"),
		MpesaCode: "SHG31B4K2P",
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestPaymentRequestRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRequestRepo(mock)
	pr := newTestPaymentRequest("SALE|shop123")

	rows := pgxmock.NewRows([]string{"reference", "status", "amount", "mpesa_code", "updated_at"}).
		AddRow(pr.Reference, pr.Status, pr.Amount, pr.MpesaCode, pr.UpdatedAt)

	mock.ExpectQuery("SELECT .+ FROM payment_requests WHERE reference").
		WithArgs(pr.Reference).
		WillReturnRows(rows)

	result, err := repo.Get(context.Background(), pr.Reference)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.PaymentStatusPaid, result.Status)
	assert.True(t, pr.Amount.Equal(result.Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRequestRepo_Get_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRequestRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM payment_requests WHERE reference").
		WithArgs("SALE|nobody").
		WillReturnRows(pgxmock.NewRows([]string{"reference", "status", "amount", "mpesa_code", "updated_at"}))

	result, err := repo.Get(context.Background(), "SALE|nobody")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRequestRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRequestRepo(mock)
	pr := newTestPaymentRequest("TOPUP|shop123")

	mock.ExpectExec("INSERT INTO payment_requests").
		WithArgs(pr.Reference, pr.Status, pr.Amount, pr.MpesaCode, pr.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Upsert(context.Background(), pr)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
