// Package money provides fixed-point currency arithmetic for the advisor
// engine. All monetary quantities flow through decimal.Decimal so that
// multi-decade compounding never accumulates binary floating-point drift;
// rounding to cents happens only at output boundaries.
package money

import (
	"github.com/shopspring/decimal"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// Money is a monetary amount with financial precision.
type Money struct {
	decimal.Decimal
}

// New creates a Money from a float64. Intended for API boundaries and test
// fixtures; internal code should stay in decimal space.
func New(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// FromDecimal wraps an existing decimal.Decimal.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// FromString parses a Money from its string form.
func FromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{decimal.Zero}
}

// Round rounds the amount to cents.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual.
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(twelve)}
}

// Monthly converts an annual amount to monthly.
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(twelve)}
}

// Add adds another amount.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another amount.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by a decimal factor. The factor must be non-zero; ratios with
// potentially-zero denominators go through Ratio instead.
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// GreaterThan reports whether this amount exceeds another.
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// GreaterThanOrEqual reports whether this amount is at least another.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Decimal.GreaterThanOrEqual(other.Decimal)
}

// LessThan reports whether this amount is below another.
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// Equal reports whether this amount equals another.
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// Min returns the smaller of two amounts.
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts.
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Float returns the amount rounded to cents as a float64, for callers that
// serialize results outward.
func (m Money) Float() float64 {
	f, _ := m.Decimal.Round(2).Float64()
	return f
}

// String formats the amount with exactly two decimal places.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the amount as currency.
func (m Money) Format() string {
	return "$" + m.String()
}

// Ratio divides numerator by denominator, guarding the zero denominator before
// the division ever happens. The second return is false when the ratio is not
// available.
func Ratio(numerator, denominator decimal.Decimal) (decimal.Decimal, bool) {
	if denominator.IsZero() {
		return decimal.Zero, false
	}
	return numerator.Div(denominator), true
}

// Percent converts a fraction to a percentage rounded to one decimal place,
// matching how reported rates are displayed.
func Percent(fraction decimal.Decimal) decimal.Decimal {
	return fraction.Mul(hundred).Round(1)
}
