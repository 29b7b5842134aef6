package calculation

import (
	"github.com/shopspring/decimal"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// FutureValue compounds a principal at an annual rate for the given number of
// years: principal * (1+rate)^years. Years at or below zero return the
// principal unchanged.
func FutureValue(principal, rate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return principal
	}
	return principal.Mul(one.Add(rate).Pow(decimal.NewFromInt(int64(years))))
}

// FutureSavings projects savings year by year, applying growth and then adding
// the annual contribution: v = v*(1+rate) + contribution, iterated. The
// recurrence is deliberately iterative rather than closed-form so that every
// consumer of a savings trajectory reproduces the identical sequence of
// intermediate values.
func FutureSavings(principal, annualContribution, rate decimal.Decimal, years int) decimal.Decimal {
	projected := principal
	growth := one.Add(rate)
	for i := 0; i < years; i++ {
		projected = projected.Mul(growth).Add(annualContribution)
	}
	return projected
}

// ProjectedSavings is the closed-form future value of current savings plus a
// stream of monthly contributions compounded monthly. Used by the risk-level
// scenario calculator, which works in months rather than years.
func ProjectedSavings(currentSavings, monthlyContribution, annualReturnRate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return currentSavings
	}
	monthlyRate := annualReturnRate.Div(twelve)
	months := decimal.NewFromInt(int64(years * 12))

	futureSavings := currentSavings.Mul(one.Add(annualReturnRate).Pow(decimal.NewFromInt(int64(years))))

	var contributionFuture decimal.Decimal
	if monthlyRate.IsPositive() {
		growth := one.Add(monthlyRate).Pow(months).Sub(one)
		contributionFuture = monthlyContribution.Mul(growth).Div(monthlyRate)
	} else {
		contributionFuture = monthlyContribution.Mul(months)
	}

	return futureSavings.Add(contributionFuture)
}
