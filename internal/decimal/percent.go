// Package decimal holds the fixed point arithmetic used for VAT rates.
// Amounts are rounded to cents with half away from zero rounding.
package decimal

import (
	"github.com/shopspring/decimal"
)

// Places is the number of fractional digits of a rounded amount.
const Places = 2

var (
	// Zero is decimal zero
	Zero = decimal.Zero

	hundred = decimal.NewFromInt(100)
)

// FromString parses decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses decimal from string, panics on error
func MustFromString(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// IsPercentage reports whether d lies within [0, 100]
func IsPercentage(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero) && d.LessThanOrEqual(hundred)
}

// Percent computes amount * (percentage/100), rounded to cents
func Percent(amount, percentage decimal.Decimal) decimal.Decimal {
	if percentage.IsZero() {
		return Zero
	}
	return amount.Mul(percentage).Div(hundred).Round(Places)
}

// Gross adds the VAT of percentage to a net amount
func Gross(net, percentage decimal.Decimal) decimal.Decimal {
	return net.Round(Places).Add(Percent(net, percentage))
}

// Net removes the VAT of percentage from a gross amount: gross * 100 / (100 + percentage)
func Net(gross, percentage decimal.Decimal) decimal.Decimal {
	return gross.Mul(hundred).Div(hundred.Add(percentage)).Round(Places)
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}
