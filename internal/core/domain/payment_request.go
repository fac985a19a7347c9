package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state reported back to the storefront UI.
// A missing row means the request is still pending.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "PAID"
	PaymentStatusFailed PaymentStatus = "FAILED"
)

// PaymentRequest records the outcome of one payment attempt, keyed by the
// full external reference the aggregator echoes back in its callback.
// It is upserted with merge semantics on every callback, duplicates included.
type PaymentRequest struct {
	Reference string          `json:"reference"`
	Status    PaymentStatus   `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
	MpesaCode string          `json:"mpesa_code"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ParseAmount converts an aggregator-reported amount to a decimal.
// Unparseable input counts as zero, matching the aggregator's own
// loose formatting (numbers sometimes arrive as quoted strings).
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
