package postgres

import (
	"context"
	"testing"
	"time"

	"shop-payment-reconciler/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShop(shopID string) *domain.Shop {
	expiry := time.Now().UTC().AddDate(0, 0, 10).Truncate(time.Microsecond)
	subDate := time.Now().UTC().Truncate(time.Microsecond)
	channelID := "3867"
	return &domain.Shop{
		ShopID:              shopID,
		WalletBalance:       decimal.NewFromInt(500),
		IsPro:               true,
		ProExpiry:           &expiry,
		LastSubDate:         &subDate,
		AutoRenew:           true,
		PayheroChannelID:    &channelID,
		IsActive:            true,
		ActivationProcessed: true,
		CreatedAt:           time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt:           time.Now().UTC().Truncate(time.Microsecond),
	}
}

func shopColumnNames() []string {
	return []string{"shop_id", "wallet_balance", "is_pro", "pro_expiry", "last_sub_date", "auto_renew",
		"payhero_channel_id", "is_active", "activation_processed", "created_at", "updated_at"}
}

func shopRow(s *domain.Shop) *pgxmock.Rows {
	return pgxmock.NewRows(shopColumnNames()).AddRow(
		s.ShopID, s.WalletBalance, s.IsPro, s.ProExpiry, s.LastSubDate, s.AutoRenew,
		s.PayheroChannelID, s.IsActive, s.ActivationProcessed, s.CreatedAt, s.UpdatedAt,
	)
}

func TestShopRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewShopRepo(mock)
	s := newTestShop("shop123")

	mock.ExpectQuery("SELECT .+ FROM shops WHERE shop_id").
		WithArgs(s.ShopID).
		WillReturnRows(shopRow(s))

	result, err := repo.GetByID(context.Background(), s.ShopID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, s.ShopID, result.ShopID)
	assert.True(t, s.WalletBalance.Equal(result.WalletBalance))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShopRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewShopRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM shops WHERE shop_id").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(shopColumnNames()))

	result, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShopRepo_ListDueForRenewal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewShopRepo(mock)
	now := time.Now().UTC()
	a := newTestShop("shopA")
	b := newTestShop("shopB")

	rows := shopRow(a).AddRow(
		b.ShopID, b.WalletBalance, b.IsPro, b.ProExpiry, b.LastSubDate, b.AutoRenew,
		b.PayheroChannelID, b.IsActive, b.ActivationProcessed, b.CreatedAt, b.UpdatedAt,
	)

	mock.ExpectQuery("SELECT .+ FROM shops").
		WithArgs(now).
		WillReturnRows(rows)

	shops, err := repo.ListDueForRenewal(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, shops, 2)
	assert.Equal(t, "shopA", shops[0].ShopID)
	assert.Equal(t, "shopB", shops[1].ShopID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShopRepo_AdjustBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewShopRepo(mock)
	delta := decimal.NewFromInt(-150)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE shops SET wallet_balance").
		WithArgs(delta, "shop123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.AdjustBalance(context.Background(), tx, "shop123", delta)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShopRepo_AdjustBalance_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewShopRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE shops SET wallet_balance").
		WithArgs(decimal.NewFromInt(10), "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.AdjustBalance(context.Background(), tx, "missing", decimal.NewFromInt(10))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "shop not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShopRepo_ExtendSubscription(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewShopRepo(mock)
	newExpiry := time.Now().UTC().AddDate(0, 0, 30)
	subDate := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE shops SET is_pro = TRUE").
		WithArgs(newExpiry, subDate, "shop123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.ExtendSubscription(context.Background(), tx, "shop123", newExpiry, subDate)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShopRepo_RenewSubscription(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewShopRepo(mock)
	newExpiry := time.Now().UTC().AddDate(0, 0, 30)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE shops SET wallet_balance").
		WithArgs(domain.RenewalPrice, newExpiry, "shop123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.RenewSubscription(context.Background(), tx, "shop123", newExpiry, domain.RenewalPrice)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShopRepo_SetPro(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewShopRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE shops SET is_pro").
		WithArgs(false, "shop123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.SetPro(context.Background(), tx, "shop123", false)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShopRepo_SetChannel(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewShopRepo(mock)

	mock.ExpectExec("UPDATE shops SET payhero_channel_id").
		WithArgs("3867", "shop123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.SetChannel(context.Background(), "shop123", "3867")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
