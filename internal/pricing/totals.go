package pricing

import "github.com/shopspring/decimal"

type Totals struct {
	AmountHT  decimal.Decimal `json:"amount_ht"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	AmountTTC decimal.Decimal `json:"amount_ttc"`
}

// ComputeTotals adds the carrier price to the handling fee and applies tax.
// TTC is built from the rounded HT and tax so that TTC = HT + tax holds to
// the cent.
func ComputeTotals(base, carrierPrice, taxRate decimal.Decimal) Totals {
	ht := RoundMoney(base.Add(carrierPrice))
	tax := RoundMoney(ht.Mul(taxRate))
	return Totals{
		AmountHT:  ht,
		TaxRate:   taxRate,
		TaxAmount: tax,
		AmountTTC: ht.Add(tax),
	}
}

// HandlingFee is the forward service fee charged on every quote. It is
// deliberately separate from the return tariff.
type HandlingFee struct {
	Flat       decimal.Decimal
	PerKg      decimal.Decimal
	IncludedKg decimal.Decimal
}

func DefaultHandlingFee() HandlingFee {
	return HandlingFee{Flat: decimal.RequireFromString("5.00")}
}

func (h HandlingFee) For(weightKg decimal.Decimal) decimal.Decimal {
	fee := h.Flat
	if h.PerKg.IsPositive() && weightKg.GreaterThan(h.IncludedKg) {
		fee = fee.Add(weightKg.Sub(h.IncludedKg).Mul(h.PerKg))
	}
	return RoundMoney(fee)
}
