package valueobject

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places every business amount carries
const MoneyPlaces int32 = 2

var (
	// Cent is the smallest representable business amount
	Cent = decimal.New(1, -MoneyPlaces)

	// BalanceTolerance is the largest debit/credit difference still treated as balanced
	BalanceTolerance = Cent
)

// RoundMoney rounds half away from zero to two decimal places.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// HasMoneyPrecision reports whether d carries at most two decimal places.
func HasMoneyPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyPlaces))
}

// PercentOf returns rate × base rounded to money precision.
func PercentOf(base, rate decimal.Decimal) decimal.Decimal {
	return RoundMoney(base.Mul(rate))
}

// MaxZero floors d at zero.
func MaxZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Sum adds all values.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// AllocateByWeights splits total across weights in proportion, rounding each
// share to money precision. The last share absorbs the rounding remainder so
// the shares always add up to total.
func AllocateByWeights(total decimal.Decimal, weights []decimal.Decimal) ([]decimal.Decimal, error) {
	if len(weights) == 0 {
		return nil, errors.New("at least one weight is required")
	}
	weightSum := decimal.Zero
	for _, w := range weights {
		if w.IsNegative() {
			return nil, errors.New("weights cannot be negative")
		}
		weightSum = weightSum.Add(w)
	}
	if weightSum.IsZero() {
		return nil, errors.New("weights must not all be zero")
	}

	shares := make([]decimal.Decimal, len(weights))
	allocated := decimal.Zero
	last := len(weights) - 1
	for i := range last {
		shares[i] = RoundMoney(total.Mul(weights[i]).Div(weightSum))
		allocated = allocated.Add(shares[i])
	}
	shares[last] = total.Sub(allocated)
	return shares, nil
}
