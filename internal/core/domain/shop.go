package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Billing constants for the Pro subscription.
var (
	// RenewalPrice is charged by the daily sweep and gates auto-renewal.
	RenewalPrice = decimal.NewFromInt(200)
	// SaleMarkup is the fixed service charge added to the aggregator fee
	// on every non-topup wallet deduction.
	SaleMarkup = decimal.NewFromInt(2)
)

// SubscriptionPeriodDays is the length of one paid Pro period.
const SubscriptionPeriodDays = 30

// Shop is a tenant of the platform. Shops are created externally; this
// service only mutates wallet, subscription and channel-registration state.
type Shop struct {
	ShopID              string          `json:"shop_id"`
	WalletBalance       decimal.Decimal `json:"wallet_balance"`
	IsPro               bool            `json:"is_pro"`
	ProExpiry           *time.Time      `json:"pro_expiry,omitempty"` // nil = never subscribed
	LastSubDate         *time.Time      `json:"last_sub_date,omitempty"`
	AutoRenew           bool            `json:"auto_renew"`
	PayheroChannelID    *string         `json:"payhero_channel_id,omitempty"`
	IsActive            bool            `json:"is_active"`
	ActivationProcessed bool            `json:"activation_processed"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// NextExpiry returns the expiry after a paid subscription extension.
// An unexpired remainder stacks: the new period starts from the current
// expiry when it is still in the future, otherwise from now. Calendar-day
// arithmetic so month and leap-year boundaries roll over correctly.
func (s *Shop) NextExpiry(now time.Time) time.Time {
	base := now
	if s.ProExpiry != nil && s.ProExpiry.After(now) {
		base = *s.ProExpiry
	}
	return base.AddDate(0, 0, SubscriptionPeriodDays)
}

// RenewalExpiry returns the expiry after an automatic renewal. The sweep
// extends from the recorded expiry even when it is already in the past
// (the shop pays for the elapsed period), or from now if never subscribed.
func (s *Shop) RenewalExpiry(now time.Time) time.Time {
	base := now
	if s.ProExpiry != nil {
		base = *s.ProExpiry
	}
	return base.AddDate(0, 0, SubscriptionPeriodDays)
}

// CanAutoRenew reports whether the wallet covers the renewal price.
func (s *Shop) CanAutoRenew() bool {
	return s.WalletBalance.GreaterThanOrEqual(RenewalPrice)
}
