package domain

import "github.com/shopspring/decimal"

// feeTier maps an inclusive upper bound to the aggregator-charged fee,
// both in currency minor units.
type feeTier struct {
	upTo int64
	fee  int64
}

// Aggregator fee schedule, ordered by upper bound. Amounts exactly at a
// boundary take that tier's fee, not the next.
var feeTiers = []feeTier{
	{49, 0},
	{499, 6},
	{999, 10},
	{1499, 15},
	{2499, 20},
	{3499, 25},
	{4999, 30},
	{7499, 40},
	{9999, 45},
	{14999, 50},
	{19999, 55},
	{34999, 80},
	{49999, 105},
	{149999, 130},
	{249999, 160},
	{349999, 195},
	{549999, 230},
	{749999, 275},
}

// maxFee applies above the last tier bound.
var maxFee = decimal.NewFromInt(320)

// TransactionFee returns the aggregator fee for a transaction amount.
// Pure and total: any amount maps to exactly one tier.
func TransactionFee(amount decimal.Decimal) decimal.Decimal {
	for _, t := range feeTiers {
		if amount.LessThanOrEqual(decimal.NewFromInt(t.upTo)) {
			return decimal.NewFromInt(t.fee)
		}
	}
	return maxFee
}
