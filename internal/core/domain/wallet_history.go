package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Well-known transaction types. The reference type token is otherwise
// free-form and passes through to the history entry unchanged.
const (
	TypeTopup        = "TOPUP"
	TypeSale         = "SALE"
	TypeSubscription = "SUB"

	HistoryTypeSubscription = "SUBSCRIPTION"
)

// History status labels. Informational only, never drive state.
const (
	HistoryStatusPaid    = "PAID"
	HistoryStatusSuccess = "SUCCESS"
)

// WalletHistoryEntry is an append-only ledger line under a shop.
// Positive amounts are credits, negative amounts are debits.
// Entries are immutable once written.
type WalletHistoryEntry struct {
	ID          uuid.UUID       `json:"id"`
	ShopID      string          `json:"shop_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
	DateTime    time.Time       `json:"date_time"`
}
