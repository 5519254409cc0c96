package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Tier struct {
	UpToKg decimal.Decimal
	Cost   decimal.Decimal
}

// ReturnTariff prices outbound return shipments by chargeable weight. Tiers
// must be sorted by UpToKg; anything heavier than the last tier pays
// OverflowBase plus OverflowPerKg for every kilogram above the last bound.
type ReturnTariff struct {
	Tiers         []Tier
	OverflowBase  decimal.Decimal
	OverflowPerKg decimal.Decimal
}

func DefaultReturnTariff() ReturnTariff {
	return ReturnTariff{
		Tiers: []Tier{
			{UpToKg: decimal.NewFromInt(1), Cost: decimal.RequireFromString("8.50")},
			{UpToKg: decimal.NewFromInt(5), Cost: decimal.RequireFromString("12.50")},
			{UpToKg: decimal.NewFromInt(10), Cost: decimal.RequireFromString("18.50")},
		},
		OverflowBase:  decimal.RequireFromString("25.00"),
		OverflowPerKg: decimal.RequireFromString("2.50"),
	}
}

func (t ReturnTariff) BaseCost(chargeableKg decimal.Decimal) decimal.Decimal {
	for _, tier := range t.Tiers {
		if chargeableKg.LessThanOrEqual(tier.UpToKg) {
			return tier.Cost
		}
	}

	lastBound := decimal.Zero
	if n := len(t.Tiers); n > 0 {
		lastBound = t.Tiers[n-1].UpToKg
	}
	return t.OverflowBase.Add(chargeableKg.Sub(lastBound).Mul(t.OverflowPerKg))
}

type Urgency string

const (
	UrgencyLow      Urgency = "faible"
	UrgencyNormal   Urgency = "normal"
	UrgencyUrgent   Urgency = "urgent"
	UrgencyCritical Urgency = "critique"
)

var urgencyMultipliers = map[Urgency]decimal.Decimal{
	UrgencyLow:      decimal.RequireFromString("0.80"),
	UrgencyNormal:   decimal.RequireFromString("1.00"),
	UrgencyUrgent:   decimal.RequireFromString("1.30"),
	UrgencyCritical: decimal.RequireFromString("1.60"),
}

func ParseUrgency(s string) (Urgency, bool) {
	u := Urgency(strings.ToLower(strings.TrimSpace(s)))
	_, ok := urgencyMultipliers[u]
	return u, ok
}

// UrgencyMultiplier falls back to the normal factor for unknown levels.
func UrgencyMultiplier(level Urgency) decimal.Decimal {
	if m, ok := urgencyMultipliers[level]; ok {
		return m
	}
	return urgencyMultipliers[UrgencyNormal]
}
