package domain

import (
	"github.com/shopspring/decimal"
)

// RetirementPlan is the output of the feasibility search: the earliest age at
// which projected assets cover required retirement income, with the full gap
// analysis and monthly income composition. Computed fresh per request and
// never persisted by the engine.
type RetirementPlan struct {
	RetirementAge        int `json:"retirement_age"`
	CurrentAge           int `json:"current_age"`
	YearsUntilRetirement int `json:"years_until_retirement"`
	YearsInRetirement    int `json:"years_in_retirement"`

	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`

	CurrentSavings      decimal.Decimal `json:"current_savings"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	ProjectedSavings    decimal.Decimal `json:"projected_savings"`
	RequiredSavings     decimal.Decimal `json:"required_savings"`

	// SavingsGap is max(0, required - projected); positive when the ceiling
	// was reached without a feasible age.
	SavingsGap decimal.Decimal `json:"savings_gap"`

	// Monthly figures at retirement. RetirementIncome is the sum of the two
	// components below.
	RetirementIncome   decimal.Decimal `json:"retirement_income"`
	RetirementExpenses decimal.Decimal `json:"retirement_expenses"`
	GovernmentBenefits decimal.Decimal `json:"government_benefits"`
	SavingsIncome      decimal.Decimal `json:"savings_income"`
}

// Feasible reports whether the plan closed without a shortfall.
func (p *RetirementPlan) Feasible() bool {
	return !p.SavingsGap.IsPositive()
}

// WhatIfScenario is the caller-specified input to the what-if solver: a fixed
// retirement age plus explicit savings, contribution, rate, and income
// targets.
type WhatIfScenario struct {
	CurrentAge     int `yaml:"current_age" json:"current_age"`
	RetirementAge  int `yaml:"retirement_age" json:"retirement_age"`
	LifeExpectancy int `yaml:"life_expectancy" json:"life_expectancy"`

	CurrentSavings      decimal.Decimal `yaml:"current_savings" json:"current_savings"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`

	// ExpectedReturnRate and InflationRate accept either fractions (0.06) or
	// whole percentages (6). Values above 1 are treated as percentages and
	// divided by 100. That auto-detection silently misreads a genuine rate of
	// 1.5 (150%); it is kept for compatibility with existing callers.
	ExpectedReturnRate decimal.Decimal `yaml:"expected_return_rate" json:"expected_return_rate"`
	InflationRate      decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`

	// DesiredRetirementIncome is annual.
	DesiredRetirementIncome decimal.Decimal `yaml:"desired_retirement_income" json:"desired_retirement_income"`

	IncludeCPPOAS bool `yaml:"include_cpp_oas" json:"include_cpp_oas"`
}

// SavingsPoint is one entry of a what-if savings trajectory. Age labels the
// point so the trajectory stays independent of the wall clock.
type SavingsPoint struct {
	Age    int             `json:"age"`
	Amount decimal.Decimal `json:"amount"`
}

// IncomeBreakdown splits monthly retirement income by source.
type IncomeBreakdown struct {
	SavingsIncome      decimal.Decimal `json:"savings_income"`
	GovernmentBenefits decimal.Decimal `json:"government_benefits"`
}

// WhatIfResult is the output of the what-if solver.
type WhatIfResult struct {
	RetirementAge            int             `json:"retirement_age"`
	TotalSavingsAtRetirement decimal.Decimal `json:"total_savings_at_retirement"`
	MonthlyRetirementIncome  decimal.Decimal `json:"monthly_retirement_income"`

	// SavingsGap is the monthly shortfall against the desired income,
	// clamped at zero when income already suffices.
	SavingsGap decimal.Decimal `json:"savings_gap"`

	// MonthlyContributionNeeded is the total required contribution: the
	// existing contribution plus whatever extra closes the gap.
	MonthlyContributionNeeded decimal.Decimal `json:"monthly_contribution_needed"`

	YearsUntilRetirement int `json:"years_until_retirement"`
	RetirementDuration   int `json:"retirement_duration"`

	// SavingsByYear covers every year from current age through retirement
	// age inclusive, in chronological order.
	SavingsByYear []SavingsPoint `json:"savings_by_year"`

	MonthlyIncomeBreakdown IncomeBreakdown `json:"monthly_income_breakdown"`
}

// ScenarioRequest parameterizes the risk-level scenario calculator.
type ScenarioRequest struct {
	RetirementAge       int             `yaml:"retirement_age" json:"retirement_age"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	RiskLevel           string          `yaml:"risk_level" json:"risk_level"`
}

// ScenarioResult reports a risk-level scenario outcome.
type ScenarioResult struct {
	ProjectedSavings decimal.Decimal `json:"projected_savings"`
	MonthlyIncome    decimal.Decimal `json:"monthly_income"`

	// AnnualReturnRate is a percentage (7 for 7%).
	AnnualReturnRate decimal.Decimal `json:"annual_return_rate"`

	RetirementDuration int `json:"retirement_duration"`

	// SuccessProbability is a percentage in [0, 100].
	SuccessProbability decimal.Decimal `json:"success_probability"`
}
