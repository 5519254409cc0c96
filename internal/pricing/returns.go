package pricing

import "github.com/shopspring/decimal"

type ReturnCostInput struct {
	WeightKg   decimal.Decimal
	Dimensions Dimensions
	Urgency    Urgency
}

// ReturnCost prices a return shipment. A request with no weight and no
// dimensions costs nothing.
func ReturnCost(in ReturnCostInput, tariff ReturnTariff) (decimal.Decimal, error) {
	if err := ValidateMeasurements(in.WeightKg, in.Dimensions); err != nil {
		return decimal.Zero, err
	}

	chargeable := ChargeableWeight(in.WeightKg, VolumetricWeight(in.Dimensions))
	if chargeable.IsZero() {
		return decimal.Zero, nil
	}

	return RoundMoney(tariff.BaseCost(chargeable).Mul(UrgencyMultiplier(in.Urgency))), nil
}
