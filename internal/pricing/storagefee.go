package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

type StoragePolicy struct {
	FreeDays  int
	FeePerDay decimal.Decimal
}

func DefaultStoragePolicy() StoragePolicy {
	return StoragePolicy{FreeDays: 3, FeePerDay: decimal.NewFromInt(1)}
}

// Fee is the storage fee accrued at now. Only stored packages with a known
// reception date accrue anything; partial days are not billed.
func (p StoragePolicy) Fee(receivedAt *time.Time, stored bool, now time.Time) decimal.Decimal {
	if !stored || receivedAt == nil {
		return decimal.Zero
	}

	elapsed := now.Sub(*receivedAt)
	if elapsed <= 0 {
		return decimal.Zero
	}

	billable := int64(elapsed/day) - int64(p.FreeDays)
	if billable <= 0 {
		return decimal.Zero
	}
	return RoundMoney(p.FeePerDay.Mul(decimal.NewFromInt(billable)))
}
