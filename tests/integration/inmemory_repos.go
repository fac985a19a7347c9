package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"shop-payment-reconciler/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory Shop Repo ---

type inMemoryShopRepo struct {
	mu    sync.RWMutex
	shops map[string]*domain.Shop
}

func newInMemoryShopRepo() *inMemoryShopRepo {
	return &inMemoryShopRepo{shops: make(map[string]*domain.Shop)}
}

func (r *inMemoryShopRepo) put(s *domain.Shop) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shops[s.ShopID] = s
}

func (r *inMemoryShopRepo) get(shopID string) *domain.Shop {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.shops[shopID]
}

func (r *inMemoryShopRepo) GetByID(ctx context.Context, shopID string) (*domain.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.shops[shopID]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *inMemoryShopRepo) ListDueForRenewal(ctx context.Context, now time.Time) ([]domain.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var due []domain.Shop
	for _, s := range r.shops {
		if s.AutoRenew && s.ProExpiry != nil && !s.ProExpiry.After(now) {
			due = append(due, *s)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ShopID < due[j].ShopID })
	return due, nil
}

func (r *inMemoryShopRepo) AdjustBalance(ctx context.Context, tx pgx.Tx, shopID string, delta decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shops[shopID]
	if !ok {
		return fmt.Errorf("shop not found: %s", shopID)
	}
	s.WalletBalance = s.WalletBalance.Add(delta)
	return nil
}

func (r *inMemoryShopRepo) ExtendSubscription(ctx context.Context, tx pgx.Tx, shopID string, newExpiry, lastSubDate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shops[shopID]
	if !ok {
		return fmt.Errorf("shop not found: %s", shopID)
	}
	s.IsPro = true
	s.ProExpiry = &newExpiry
	s.LastSubDate = &lastSubDate
	return nil
}

func (r *inMemoryShopRepo) RenewSubscription(ctx context.Context, tx pgx.Tx, shopID string, newExpiry time.Time, price decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shops[shopID]
	if !ok {
		return fmt.Errorf("shop not found: %s", shopID)
	}
	s.WalletBalance = s.WalletBalance.Sub(price)
	s.ProExpiry = &newExpiry
	s.IsPro = true
	return nil
}

func (r *inMemoryShopRepo) SetPro(ctx context.Context, tx pgx.Tx, shopID string, isPro bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shops[shopID]
	if !ok {
		return fmt.Errorf("shop not found: %s", shopID)
	}
	s.IsPro = isPro
	return nil
}

func (r *inMemoryShopRepo) SetChannel(ctx context.Context, shopID string, channelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shops[shopID]
	if !ok {
		return fmt.Errorf("shop not found: %s", shopID)
	}
	s.PayheroChannelID = &channelID
	s.IsActive = true
	s.ActivationProcessed = true
	return nil
}

// --- In-Memory Payment Request Repo ---

type inMemoryPaymentRequestRepo struct {
	mu       sync.RWMutex
	requests map[string]*domain.PaymentRequest
}

func newInMemoryPaymentRequestRepo() *inMemoryPaymentRequestRepo {
	return &inMemoryPaymentRequestRepo{requests: make(map[string]*domain.PaymentRequest)}
}

func (r *inMemoryPaymentRequestRepo) Get(ctx context.Context, reference string) (*domain.PaymentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pr, ok := r.requests[reference]
	if !ok {
		return nil, nil
	}
	copied := *pr
	return &copied, nil
}

func (r *inMemoryPaymentRequestRepo) Upsert(ctx context.Context, pr *domain.PaymentRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *pr
	r.requests[pr.Reference] = &copied
	return nil
}

// --- In-Memory Wallet History Repo ---

type inMemoryWalletHistoryRepo struct {
	mu      sync.RWMutex
	entries []domain.WalletHistoryEntry
}

func newInMemoryWalletHistoryRepo() *inMemoryWalletHistoryRepo {
	return &inMemoryWalletHistoryRepo{}
}

func (r *inMemoryWalletHistoryRepo) Create(ctx context.Context, tx pgx.Tx, entry *domain.WalletHistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *inMemoryWalletHistoryRepo) forShop(shopID string) []domain.WalletHistoryEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.WalletHistoryEntry
	for _, e := range r.entries {
		if e.ShopID == shopID {
			out = append(out, e)
		}
	}
	return out
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
