// Package pricing holds the pure money and weight rules of the forwarding
// service: volumetric weight, return tariffs, urgency multipliers, storage
// fees and tax totals. Nothing in here reads the clock or touches storage.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativeInput = errors.New("negative measurement")

var (
	hundred = decimal.NewFromInt(100)
	// DefaultTaxRate is the French TVA rate applied to quotes.
	DefaultTaxRate = decimal.RequireFromString("0.20")
)

// RoundMoney rounds to cents. decimal.Round rounds half away from zero,
// which is half-up for the non-negative amounts handled here.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// Cents converts a rounded amount into minor units for payment providers.
func Cents(amount decimal.Decimal) int64 {
	return RoundMoney(amount).Mul(hundred).IntPart()
}

func maxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
