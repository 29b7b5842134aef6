package domain

import (
	"github.com/shopspring/decimal"
)

// MetricStatus classifies a metric against its benchmark.
type MetricStatus string

const (
	StatusBelowTarget  MetricStatus = "Below Target"
	StatusOnTrack      MetricStatus = "On Track"
	StatusAboveTarget  MetricStatus = "Above Target"
	StatusNotAvailable MetricStatus = "Not Available"
)

// MetricsReport is a computed snapshot of a user's financial position. Metrics
// whose inputs are missing or whose denominators are zero carry nil values and
// a "Not Available" status; the report is always returned in full.
type MetricsReport struct {
	// Overall financial position.
	NetWorth          decimal.Decimal `json:"net_worth"`
	NetWorthStatus    MetricStatus    `json:"net_worth_status"`
	NetWorthMessage   string          `json:"net_worth_message"`
	NetWorthBenchmark string          `json:"net_worth_benchmark"`

	MonthlyCashFlow *decimal.Decimal `json:"monthly_cash_flow"`

	DebtToIncomeRatio *decimal.Decimal `json:"debt_to_income_ratio"`
	DebtStatus        MetricStatus     `json:"debt_status"`
	DebtMessage       string           `json:"debt_message"`
	DebtBenchmark     string           `json:"debt_benchmark"`

	// Savings.
	EmergencyFundRatio     *decimal.Decimal `json:"emergency_fund_ratio"`
	EmergencyFundStatus    MetricStatus     `json:"emergency_fund_status"`
	EmergencyFundMessage   string           `json:"emergency_fund_message"`
	EmergencyFundBenchmark string           `json:"emergency_fund_benchmark"`

	SavingsRate      *decimal.Decimal `json:"savings_rate"`
	SavingsStatus    MetricStatus     `json:"savings_status"`
	SavingsMessage   string           `json:"savings_message"`
	SavingsBenchmark string           `json:"savings_benchmark"`

	MonthlySavings *decimal.Decimal `json:"monthly_savings"`

	// Investments.
	TotalInvestments         *decimal.Decimal `json:"total_investments"`
	InvestmentGrowth         *decimal.Decimal `json:"investment_growth"`
	InvestmentDiversityScore *int             `json:"investment_diversity_score"`

	// Retirement.
	RetirementSavingsRatio *decimal.Decimal `json:"retirement_savings_ratio"`
	RetirementStatus       MetricStatus     `json:"retirement_status"`
	RetirementMessage      string           `json:"retirement_message"`
	RetirementBenchmark    string           `json:"retirement_benchmark"`

	RetirementReadinessScore *decimal.Decimal `json:"retirement_readiness_score"`
	YearsUntilRetirement     *int             `json:"years_until_retirement"`
}

// ChecklistItem is one entry of a health checklist.
type ChecklistItem struct {
	Title   string `json:"title"`
	Status  string `json:"status"` // "completed" or "pending"
	Current string `json:"current"`
	Target  string `json:"target"`
	Message string `json:"message"`
}

// Completed reports whether the item's goal is met.
func (c ChecklistItem) Completed() bool {
	return c.Status == "completed"
}

// SavingsHealth summarizes savings habits against targets: a 20% savings
// rate, six months of expenses in cash, and debt below 30% of net worth.
type SavingsHealth struct {
	Checklist        map[string]ChecklistItem `json:"checklist"`
	Progress         decimal.Decimal          `json:"progress"` // percent of items completed
	MonthlySavings   decimal.Decimal          `json:"monthly_savings"`
	SavingsRate      decimal.Decimal          `json:"savings_rate"`
	DebtToWorthRatio decimal.Decimal          `json:"debt_to_worth_ratio"`
}

// RetirementHealth summarizes retirement account setup progress.
type RetirementHealth struct {
	Checklist              map[string]ChecklistItem `json:"checklist"`
	Progress               decimal.Decimal          `json:"progress"`
	TotalRetirementSavings decimal.Decimal          `json:"total_retirement_savings"`
}
