package ports

import (
	"context"
	"time"
)

// CallbackEvent is the normalized payload of an aggregator payment callback
// after transport decoding.
type CallbackEvent struct {
	ExternalReference string
	Status            string
	Amount            string
	MpesaCode         string
}

// ReconciliationService applies aggregator callbacks to shop state.
type ReconciliationService interface {
	// Reconcile records the payment request and, for successful payments,
	// applies the wallet or subscription effect. A missing reference or an
	// unknown shop is reported via the returned outcome, not an error.
	Reconcile(ctx context.Context, event CallbackEvent) (ReconcileOutcome, error)
}

// ReconcileOutcome describes what a callback resolved to.
type ReconcileOutcome string

const (
	OutcomeProcessed ReconcileOutcome = "processed"
	OutcomeIgnored   ReconcileOutcome = "ignored"
	OutcomeDuplicate ReconcileOutcome = "duplicate"
)

// RenewalService runs the daily subscription sweep.
type RenewalService interface {
	// SweepExpired renews or lapses every shop whose Pro subscription has
	// expired, returning counts of each.
	SweepExpired(ctx context.Context) (renewed, lapsed int, err error)
}

// ActivationRequest carries the inputs of a channel activation call.
type ActivationRequest struct {
	CallerID   string
	ShopID     string
	Type       string
	ShortCode  string
	TillNumber string
	ShopName   string
}

// ChannelService activates a shop's payment channel with the aggregator.
type ChannelService interface {
	ActivateChannel(ctx context.Context, req ActivationRequest) (channelID string, err error)
}

// ChannelRegistration is the aggregator-side request to create a channel.
type ChannelRegistration struct {
	Type          string
	ShortCode     string
	AccountNumber string
	Name          string
}

// ChannelRegistrar talks to the payment aggregator's channel API.
type ChannelRegistrar interface {
	RegisterChannel(ctx context.Context, reg ChannelRegistration) (channelID string, err error)
}

// DedupCache is a best-effort marker for callbacks already applied. A cache
// miss is not authoritative; the database remains the source of truth.
type DedupCache interface {
	Seen(ctx context.Context, reference string) (bool, error)
	Mark(ctx context.Context, reference string, ttl time.Duration) error
}

// TokenClaims are the verified contents of an access token.
type TokenClaims struct {
	Subject string
}

// TokenService issues and validates access tokens for the admin API.
type TokenService interface {
	Generate(subject string) (string, error)
	Validate(tokenString string) (*TokenClaims, error)
}
