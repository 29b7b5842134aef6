package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/advisor/internal/domain"
)

// normalizeRate converts a rate that may arrive as a whole percentage into a
// fraction: values above 1 are divided by 100, anything else passes through.
// The auto-detection cannot distinguish a legitimate rate of 1.5 (150%) from
// a percentage; it is preserved for compatibility with existing callers.
func normalizeRate(rate decimal.Decimal) decimal.Decimal {
	if rate.GreaterThan(one) {
		return rate.Div(decimal.NewFromInt(100))
	}
	return rate
}

// ComputeWhatIf solves the inverse retirement problem: given a fixed target
// retirement age and a desired annual income, it projects the savings
// trajectory and determines the total monthly contribution that would close
// any income shortfall.
func (e *Engine) ComputeWhatIf(scenario *domain.WhatIfScenario) (*domain.WhatIfResult, error) {
	if scenario.CurrentAge < 0 {
		return nil, fmt.Errorf("current age cannot be negative, got %d", scenario.CurrentAge)
	}
	a := &e.Assumptions

	expectedReturn := normalizeRate(scenario.ExpectedReturnRate)
	inflationRate := normalizeRate(scenario.InflationRate)

	yearsUntilRetirement := scenario.RetirementAge - scenario.CurrentAge
	if yearsUntilRetirement < 0 {
		e.Logger.Warnf("retirement age %d precedes current age %d; treating as immediate retirement",
			scenario.RetirementAge, scenario.CurrentAge)
		yearsUntilRetirement = 0
	}
	retirementDuration := scenario.LifeExpectancy - scenario.RetirementAge

	annualContribution := scenario.MonthlyContribution.Mul(twelve)

	// Year-by-year trajectory, inclusive of both endpoints. The recurrence is
	// the same one FutureSavings applies, so the final point equals
	// FutureSavings(current, annual, rate, years).
	growth := one.Add(expectedReturn)
	projected := scenario.CurrentSavings
	savingsByYear := make([]domain.SavingsPoint, 0, yearsUntilRetirement+1)
	for i := 0; i <= yearsUntilRetirement; i++ {
		savingsByYear = append(savingsByYear, domain.SavingsPoint{
			Age:    scenario.CurrentAge + i,
			Amount: projected.Round(2),
		})
		if i < yearsUntilRetirement {
			projected = projected.Mul(growth).Add(annualContribution)
		}
	}
	totalSavings := projected

	// Inflation is treated as a direct offset to the withdrawal rate rather
	// than compounded separately. A simplification inherited from the
	// product's original behavior; reproduced, not corrected.
	realWithdrawalRate := a.WithdrawalRate.Sub(inflationRate)
	savingsMonthlyIncome := totalSavings.Mul(realWithdrawalRate).Div(twelve)

	governmentMonthlyIncome := decimal.Zero
	if scenario.IncludeCPPOAS {
		governmentMonthlyIncome = a.CPPMonthlyEstimate.Add(a.OASMonthlyEstimate)
	}
	totalMonthlyIncome := savingsMonthlyIncome.Add(governmentMonthlyIncome)

	desiredMonthlyIncome := scenario.DesiredRetirementIncome.Div(twelve)
	incomeGap := desiredMonthlyIncome.Sub(totalMonthlyIncome)

	e.Logger.Debugf("what-if: years=%d totalSavings=%s monthlyIncome=%s desired=%s gap=%s",
		yearsUntilRetirement, totalSavings.StringFixed(2), totalMonthlyIncome.StringFixed(2),
		desiredMonthlyIncome.StringFixed(2), incomeGap.StringFixed(2))

	// Solve for the extra contribution that closes the gap by inverting the
	// annuity future-value formula. With no years left there is no time to
	// act, so the extra is zero rather than a division by zero.
	extraMonthly := decimal.Zero
	if incomeGap.IsPositive() && yearsUntilRetirement > 0 && realWithdrawalRate.IsPositive() {
		additionalSavingsNeeded := incomeGap.Mul(twelve).Div(realWithdrawalRate)
		if expectedReturn.IsPositive() {
			factor := one.Add(expectedReturn).Pow(decimal.NewFromInt(int64(yearsUntilRetirement))).Sub(one).Div(expectedReturn)
			extraMonthly = additionalSavingsNeeded.Div(twelve.Mul(factor))
		} else {
			extraMonthly = additionalSavingsNeeded.Div(twelve.Mul(decimal.NewFromInt(int64(yearsUntilRetirement))))
		}
	}

	return &domain.WhatIfResult{
		RetirementAge:             scenario.RetirementAge,
		TotalSavingsAtRetirement:  totalSavings.Round(2),
		MonthlyRetirementIncome:   totalMonthlyIncome.Round(2),
		SavingsGap:                decimal.Max(decimal.Zero, incomeGap).Round(2),
		MonthlyContributionNeeded: scenario.MonthlyContribution.Add(extraMonthly).Round(2),
		YearsUntilRetirement:      yearsUntilRetirement,
		RetirementDuration:        retirementDuration,
		SavingsByYear:             savingsByYear,
		MonthlyIncomeBreakdown: domain.IncomeBreakdown{
			SavingsIncome:      savingsMonthlyIncome.Round(2),
			GovernmentBenefits: governmentMonthlyIncome.Round(2),
		},
	}, nil
}
