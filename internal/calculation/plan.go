package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/advisor/internal/domain"
)

// candidateProjection holds the projections evaluated for one candidate
// retirement age.
type candidateProjection struct {
	projectedCash        decimal.Decimal
	projectedInvestments decimal.Decimal
	totalAssets          decimal.Decimal
	governmentBenefits   decimal.Decimal // annual, inflation-grown
	requiredSavings      decimal.Decimal
}

// evaluateCandidate projects the profile forward by the given number of years
// and computes the savings threshold a retirement at that point would need.
func (e *Engine) evaluateCandidate(profile *domain.FinancialProfile, annualSavings, lifestyleFactor decimal.Decimal, years int) candidateProjection {
	a := &e.Assumptions

	// Cash only keeps pace with inflation; investments grow at the expected
	// return with the yearly after-tax contribution added.
	projectedCash := FutureValue(profile.CashHoldings, a.InflationRate, years)
	projectedInvestments := FutureSavings(profile.InvestableAssets(), annualSavings, a.ExpectedReturn, years)

	futureCPP := FutureValue(a.CPPAnnualBase, a.InflationRate, years)
	futureOAS := FutureValue(a.OASAnnualBase, a.InflationRate, years)

	annualExpensesFuture := FutureValue(profile.MonthlyExpenses.Mul(twelve), a.InflationRate, years)
	annualIncomeNeeded := annualExpensesFuture.Mul(lifestyleFactor)

	return candidateProjection{
		projectedCash:        projectedCash,
		projectedInvestments: projectedInvestments,
		totalAssets:          projectedCash.Add(projectedInvestments),
		governmentBenefits:   futureCPP.Add(futureOAS),
		requiredSavings:      annualIncomeNeeded.Div(a.WithdrawalRate),
	}
}

// ComputeCurrentPlan runs the retirement feasibility search: it scans candidate
// ages from the current age up to the configured ceiling and returns the
// earliest age at which projected assets cover the savings required to fund
// the desired retirement lifestyle. An infeasible plan is not an error; the
// ceiling age is reported with a positive savings gap.
func (e *Engine) ComputeCurrentPlan(profile *domain.FinancialProfile) (*domain.RetirementPlan, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	a := &e.Assumptions

	// Savings capacity reflects take-home pay: the gross monthly surplus run
	// through the bracket schedule.
	afterTaxMonthlySavings := e.TaxCalc.AfterTaxMonthlyIncome(profile.MonthlySavings())
	annualSavings := afterTaxMonthlySavings.Mul(twelve)
	lifestyleFactor := a.LifestyleFactor(profile.DesiredRetirementLifestyle)

	e.Logger.Debugf("feasibility search: age=%d afterTaxMonthlySavings=%s lifestyleFactor=%s",
		profile.Age, afterTaxMonthlySavings.StringFixed(2), lifestyleFactor)

	found := false
	retirementAge := a.AgeCeiling
	var projection candidateProjection

	for candidate := profile.Age; candidate <= a.AgeCeiling; candidate++ {
		years := candidate - profile.Age
		projection = e.evaluateCandidate(profile, annualSavings, lifestyleFactor, years)
		if projection.totalAssets.GreaterThanOrEqual(projection.requiredSavings) {
			// Earliest feasible age wins; later ages are assumed to stay
			// feasible once the threshold is crossed.
			found = true
			retirementAge = candidate
			break
		}
	}
	if !found {
		// Either the ceiling was reached without feasibility, or the profile
		// is already past the ceiling. Report the shortfall at the clamped
		// age instead of failing.
		retirementAge = a.AgeCeiling
		years := retirementAge - profile.Age
		if years < 0 {
			years = 0
		}
		projection = e.evaluateCandidate(profile, annualSavings, lifestyleFactor, years)
		e.Logger.Warnf("no feasible retirement age up to %d; reporting gap of %s",
			a.AgeCeiling, projection.requiredSavings.Sub(projection.totalAssets).StringFixed(2))
	}

	yearsUntil := retirementAge - profile.Age
	if yearsUntil < 0 {
		yearsUntil = 0
	}
	yearsIn := a.LifeExpectancy - retirementAge
	if yearsIn < 0 {
		yearsIn = 0
	}

	annualGovernmentIncome := projection.governmentBenefits
	annualSavingsIncome := projection.totalAssets.Mul(a.WithdrawalRate)

	savingsGap := decimal.Max(decimal.Zero, projection.requiredSavings.Sub(projection.totalAssets))

	return &domain.RetirementPlan{
		RetirementAge:        retirementAge,
		CurrentAge:           profile.Age,
		YearsUntilRetirement: yearsUntil,
		YearsInRetirement:    yearsIn,

		MonthlyIncome:   profile.MonthlyIncome.Round(2),
		MonthlyExpenses: profile.MonthlyExpenses.Round(2),

		CurrentSavings:      profile.CashHoldings.Add(profile.InvestableAssets()).Round(2),
		MonthlyContribution: afterTaxMonthlySavings.Round(2),
		ProjectedSavings:    projection.totalAssets.Round(2),
		RequiredSavings:     projection.requiredSavings.Round(2),
		SavingsGap:          savingsGap.Round(2),

		RetirementIncome:   annualGovernmentIncome.Add(annualSavingsIncome).Div(twelve).Round(2),
		RetirementExpenses: FutureValue(profile.MonthlyExpenses, a.InflationRate, yearsUntil).Round(2),
		GovernmentBenefits: annualGovernmentIncome.Div(twelve).Round(2),
		SavingsIncome:      annualSavingsIncome.Div(twelve).Round(2),
	}, nil
}
