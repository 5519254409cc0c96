package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestVolumetricWeight(t *testing.T) {
	tests := []struct {
		name string
		dims Dimensions
		want string
	}{
		{name: "full box", dims: NewDimensions(40, 30, 20), want: "4.80"},
		{name: "missing height", dims: NewDimensions(40, 30, 0), want: "0.00"},
		{name: "no dimensions", dims: Dimensions{}, want: "0.00"},
		{name: "large crate", dims: NewDimensions(100, 50, 50), want: "50.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, VolumetricWeight(tc.dims).StringFixed(2))
		})
	}
}

func TestChargeableWeight_NeverBelowInputs(t *testing.T) {
	weights := []string{"0", "0.5", "4.8", "6", "12.3"}
	dims := []Dimensions{{}, NewDimensions(10, 10, 10), NewDimensions(40, 30, 20), NewDimensions(80, 60, 50)}

	for _, w := range weights {
		for _, dm := range dims {
			vol := VolumetricWeight(dm)
			got := ChargeableWeight(d(w), vol)
			assert.True(t, got.GreaterThanOrEqual(d(w)), "weight %s dims %s", w, dm)
			assert.True(t, got.GreaterThanOrEqual(vol), "weight %s dims %s", w, dm)
		}
	}
}

func TestReturnTariff_BaseCost(t *testing.T) {
	tariff := DefaultReturnTariff()

	tests := []struct {
		kg   string
		want string
	}{
		{"0.2", "8.50"},
		{"1", "8.50"},
		{"1.01", "12.50"},
		{"5", "12.50"},
		{"6", "18.50"},
		{"10", "18.50"},
		{"10.5", "26.25"},
		{"14", "35.00"},
	}

	for _, tc := range tests {
		t.Run(tc.kg, func(t *testing.T) {
			assert.Equal(t, tc.want, tariff.BaseCost(d(tc.kg)).StringFixed(2))
		})
	}
}

func TestReturnTariff_Monotonic(t *testing.T) {
	tariff := DefaultReturnTariff()
	prev := decimal.Zero
	for kg := d("0"); kg.LessThanOrEqual(d("30")); kg = kg.Add(d("0.25")) {
		cost := tariff.BaseCost(kg)
		require.True(t, cost.GreaterThanOrEqual(prev), "cost dropped at %s kg", kg)
		prev = cost
	}
}

func TestUrgencyMultiplier_Ordering(t *testing.T) {
	low := UrgencyMultiplier(UrgencyLow)
	normal := UrgencyMultiplier(UrgencyNormal)
	urgent := UrgencyMultiplier(UrgencyUrgent)
	critical := UrgencyMultiplier(UrgencyCritical)

	assert.True(t, urgent.GreaterThan(normal))
	assert.True(t, normal.GreaterThan(low))
	for _, m := range []decimal.Decimal{low, normal, urgent} {
		assert.True(t, critical.GreaterThan(m))
	}
	assert.Equal(t, "1.00", UrgencyMultiplier("inconnu").StringFixed(2))
}

func TestParseUrgency(t *testing.T) {
	u, ok := ParseUrgency(" Urgent ")
	assert.True(t, ok)
	assert.Equal(t, UrgencyUrgent, u)

	_, ok = ParseUrgency("asap")
	assert.False(t, ok)
}

func TestReturnCost(t *testing.T) {
	tariff := DefaultReturnTariff()

	t.Run("six kilos urgent box", func(t *testing.T) {
		cost, err := ReturnCost(ReturnCostInput{
			WeightKg:   d("6"),
			Dimensions: NewDimensions(40, 30, 20),
			Urgency:    UrgencyUrgent,
		}, tariff)
		require.NoError(t, err)
		assert.Equal(t, "24.05", cost.StringFixed(2))
	})

	t.Run("volumetric weight wins", func(t *testing.T) {
		cost, err := ReturnCost(ReturnCostInput{
			WeightKg:   d("2"),
			Dimensions: NewDimensions(60, 40, 40),
			Urgency:    UrgencyLow,
		}, tariff)
		require.NoError(t, err)
		// 19.2 kg chargeable -> 25 + 9.2*2.5 = 48.00, x0.8
		assert.Equal(t, "38.40", cost.StringFixed(2))
	})

	t.Run("nothing to weigh is free", func(t *testing.T) {
		cost, err := ReturnCost(ReturnCostInput{Urgency: UrgencyCritical}, tariff)
		require.NoError(t, err)
		assert.True(t, cost.IsZero())
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		_, err := ReturnCost(ReturnCostInput{WeightKg: d("-1"), Urgency: UrgencyNormal}, tariff)
		assert.ErrorIs(t, err, ErrNegativeInput)
	})

	t.Run("negative side rejected", func(t *testing.T) {
		_, err := ReturnCost(ReturnCostInput{
			WeightKg:   d("1"),
			Dimensions: NewDimensions(10, -5, 10),
			Urgency:    UrgencyNormal,
		}, tariff)
		assert.ErrorIs(t, err, ErrNegativeInput)
	})
}

func TestStoragePolicy_Fee(t *testing.T) {
	policy := StoragePolicy{FreeDays: 3, FeePerDay: d("1")}
	received := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("stored for 35 days", func(t *testing.T) {
		fee := policy.Fee(&received, true, received.Add(35*24*time.Hour))
		assert.Equal(t, "32.00", fee.StringFixed(2))
	})

	t.Run("within free days", func(t *testing.T) {
		fee := policy.Fee(&received, true, received.Add(72*time.Hour))
		assert.True(t, fee.IsZero())
	})

	t.Run("partial day not billed", func(t *testing.T) {
		fee := policy.Fee(&received, true, received.Add(4*24*time.Hour+23*time.Hour))
		assert.Equal(t, "1.00", fee.StringFixed(2))
	})

	t.Run("not stored", func(t *testing.T) {
		fee := policy.Fee(&received, false, received.Add(90*24*time.Hour))
		assert.True(t, fee.IsZero())
	})

	t.Run("never received", func(t *testing.T) {
		for _, now := range []time.Time{received, received.Add(400 * 24 * time.Hour)} {
			assert.True(t, policy.Fee(nil, true, now).IsZero())
		}
	})

	t.Run("clock behind reception", func(t *testing.T) {
		fee := policy.Fee(&received, true, received.Add(-48*time.Hour))
		assert.True(t, fee.IsZero())
	})

	t.Run("fractional daily rate", func(t *testing.T) {
		p := StoragePolicy{FreeDays: 0, FeePerDay: d("0.333")}
		fee := p.Fee(&received, true, received.Add(3*24*time.Hour))
		assert.Equal(t, "1.00", fee.StringFixed(2))
	})
}

func TestComputeTotals(t *testing.T) {
	t.Run("handling fee plus colissimo", func(t *testing.T) {
		totals := ComputeTotals(d("5.00"), d("12.50"), DefaultTaxRate)
		assert.Equal(t, "17.50", totals.AmountHT.StringFixed(2))
		assert.Equal(t, "3.50", totals.TaxAmount.StringFixed(2))
		assert.Equal(t, "21.00", totals.AmountTTC.StringFixed(2))
	})

	t.Run("no carrier yet", func(t *testing.T) {
		totals := ComputeTotals(d("5.00"), decimal.Zero, DefaultTaxRate)
		assert.Equal(t, "6.00", totals.AmountTTC.StringFixed(2))
	})

	t.Run("ttc equals rounded ht times 1.2", func(t *testing.T) {
		factor := d("1.20")
		for cents := int64(0); cents <= 5000; cents += 7 {
			base := decimal.New(cents, -2)
			totals := ComputeTotals(base, decimal.Zero, DefaultTaxRate)
			require.True(t, totals.AmountTTC.Equal(RoundMoney(totals.AmountHT.Mul(factor))), "base %s", base)
			require.True(t, totals.AmountTTC.Equal(totals.AmountHT.Add(totals.TaxAmount)), "base %s", base)
		}
	})
}

func TestHandlingFee(t *testing.T) {
	assert.Equal(t, "5.00", DefaultHandlingFee().For(d("12")).StringFixed(2))

	perKg := HandlingFee{Flat: d("5"), PerKg: d("0.50"), IncludedKg: d("2")}
	assert.Equal(t, "5.00", perKg.For(d("1.5")).StringFixed(2))
	assert.Equal(t, "7.00", perKg.For(d("6")).StringFixed(2))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, "0.13", RoundMoney(d("0.125")).StringFixed(2))
	assert.Equal(t, "2.00", RoundMoney(d("1.995")).StringFixed(2))
	assert.Equal(t, "24.05", RoundMoney(d("24.049999")).StringFixed(2))
	assert.Equal(t, int64(2405), Cents(d("24.05")))
}

func TestParseDimensions(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want string
	}{
		{in: "40x30x20", ok: true, want: "40x30x20"},
		{in: "40 × 30 × 20 cm", ok: true, want: "40x30x20"},
		{in: "12,5*10*8", ok: true, want: "12.5x10x8"},
		{in: "carton moyen", ok: false},
		{in: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			dims, ok := ParseDimensions(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, dims.String())
			}
		})
	}
}
