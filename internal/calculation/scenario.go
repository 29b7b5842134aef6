package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/advisor/internal/domain"
)

var (
	baseSuccessProbability = decimal.NewFromFloat(0.70)
	million                = decimal.NewFromInt(1000000)
)

// riskAdjustments shift the base success probability by risk tolerance.
var riskAdjustments = map[string]decimal.Decimal{
	"conservative": decimal.NewFromFloat(0.1),
	"moderate":     decimal.Zero,
	"aggressive":   decimal.NewFromFloat(-0.1),
}

// ComputeScenario projects a retirement scenario for a chosen risk level:
// conservative, moderate, or aggressive, each mapped to an expected annual
// return by the assumptions.
func (e *Engine) ComputeScenario(profile *domain.FinancialProfile, req *domain.ScenarioRequest) (*domain.ScenarioResult, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	a := &e.Assumptions

	returnRate, ok := a.ScenarioReturnRates[req.RiskLevel]
	if !ok {
		return nil, fmt.Errorf("unknown risk level %q", req.RiskLevel)
	}

	yearsToRetirement := req.RetirementAge - profile.Age
	if yearsToRetirement < 0 {
		yearsToRetirement = 0
	}

	projectedSavings := ProjectedSavings(profile.TotalRetirementSavings(), req.MonthlyContribution, returnRate, yearsToRetirement)

	governmentMonthly := a.CPPAnnualBase.Add(a.OASAnnualBase).Div(twelve)
	monthlyIncome := projectedSavings.Mul(a.WithdrawalRate).Div(twelve).Add(governmentMonthly)

	return &domain.ScenarioResult{
		ProjectedSavings:   projectedSavings.Round(2),
		MonthlyIncome:      monthlyIncome.Round(2),
		AnnualReturnRate:   returnRate.Mul(decimal.NewFromInt(100)),
		RetirementDuration: a.LifeExpectancy - req.RetirementAge,
		SuccessProbability: successProbability(projectedSavings, req.RiskLevel, yearsToRetirement),
	}, nil
}

// successProbability estimates the chance a scenario meets its goals: a base
// probability adjusted for risk tolerance, accumulated savings, and remaining
// time, clamped to [0,1] and reported as a percentage.
func successProbability(projectedSavings decimal.Decimal, riskLevel string, yearsToRetirement int) decimal.Decimal {
	probability := baseSuccessProbability

	if adjustment, ok := riskAdjustments[riskLevel]; ok {
		probability = probability.Add(adjustment)
	}

	savingsFactor := decimal.Min(projectedSavings.Div(million), one)
	probability = probability.Add(savingsFactor.Mul(decimal.NewFromFloat(0.2)))

	timeFactor := decimal.Min(decimal.NewFromInt(int64(yearsToRetirement)).Div(decimal.NewFromInt(30)), one)
	probability = probability.Add(timeFactor.Mul(decimal.NewFromFloat(0.1)))

	probability = decimal.Min(decimal.Max(probability, decimal.Zero), one)
	return probability.Mul(decimal.NewFromInt(100)).Round(1)
}
