package pricing

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var volumetricDivisor = decimal.NewFromInt(5000)

// Dimensions are in centimetres. A zero side means the side is unknown.
type Dimensions struct {
	LengthCm decimal.Decimal `json:"length_cm"`
	WidthCm  decimal.Decimal `json:"width_cm"`
	HeightCm decimal.Decimal `json:"height_cm"`
}

func NewDimensions(length, width, height float64) Dimensions {
	return Dimensions{
		LengthCm: decimal.NewFromFloat(length),
		WidthCm:  decimal.NewFromFloat(width),
		HeightCm: decimal.NewFromFloat(height),
	}
}

func (d Dimensions) complete() bool {
	return d.LengthCm.IsPositive() && d.WidthCm.IsPositive() && d.HeightCm.IsPositive()
}

func (d Dimensions) IsZero() bool {
	return d.LengthCm.IsZero() && d.WidthCm.IsZero() && d.HeightCm.IsZero()
}

func (d Dimensions) Validate() error {
	if d.LengthCm.IsNegative() || d.WidthCm.IsNegative() || d.HeightCm.IsNegative() {
		return ErrNegativeInput
	}
	return nil
}

func (d Dimensions) String() string {
	if d.IsZero() {
		return ""
	}
	return d.LengthCm.String() + "x" + d.WidthCm.String() + "x" + d.HeightCm.String()
}

// VolumetricWeight returns L×W×H/5000 in kilograms, or zero when a side is
// missing.
func VolumetricWeight(d Dimensions) decimal.Decimal {
	if !d.complete() {
		return decimal.Zero
	}
	return d.LengthCm.Mul(d.WidthCm).Mul(d.HeightCm).Div(volumetricDivisor)
}

func ChargeableWeight(actualKg, volumetricKg decimal.Decimal) decimal.Decimal {
	return maxDecimal(actualKg, volumetricKg)
}

// ValidateMeasurements rejects negative inputs before they reach a
// calculator, so a client bug never turns into a zero-cost quote.
func ValidateMeasurements(weightKg decimal.Decimal, d Dimensions) error {
	if weightKg.IsNegative() {
		return ErrNegativeInput
	}
	return d.Validate()
}

var dimensionsPattern = regexp.MustCompile(`^\s*(\d+(?:[.,]\d+)?)\s*[x×*]\s*(\d+(?:[.,]\d+)?)\s*[x×*]\s*(\d+(?:[.,]\d+)?)\s*(?:cm)?\s*$`)

// ParseDimensions reads the free-text "L x W x H" form users type in.
func ParseDimensions(text string) (Dimensions, bool) {
	m := dimensionsPattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return Dimensions{}, false
	}

	values := make([]decimal.Decimal, 3)
	for i := range values {
		v, err := decimal.NewFromString(strings.ReplaceAll(m[i+1], ",", "."))
		if err != nil {
			return Dimensions{}, false
		}
		values[i] = v
	}
	return Dimensions{LengthCm: values[0], WidthCm: values[1], HeightCm: values[2]}, true
}
