package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wealthpath/advisor/internal/domain"
	"github.com/wealthpath/advisor/pkg/money"
)

// checklistProgress is the percentage of checklist items completed.
func checklistProgress(checklist map[string]domain.ChecklistItem) decimal.Decimal {
	if len(checklist) == 0 {
		return decimal.Zero
	}
	completed := 0
	for _, item := range checklist {
		if item.Completed() {
			completed++
		}
	}
	return decimal.NewFromInt(int64(completed)).
		Div(decimal.NewFromInt(int64(len(checklist)))).
		Mul(hundred)
}

// AnalyzeSavingsHealth assesses savings habits against three targets: a
// savings rate of at least 20% of income, an emergency fund covering six
// months of expenses, and debt at or below 30% of net worth. Net worth here
// is liquid: cash plus investments less debt, retirement accounts excluded.
func (e *Engine) AnalyzeSavingsHealth(profile *domain.FinancialProfile) *domain.SavingsHealth {
	monthlySavings := profile.MonthlySavings()

	savingsRate := decimal.Zero
	if ratio, ok := money.Ratio(monthlySavings, profile.MonthlyIncome); ok && profile.MonthlyIncome.IsPositive() {
		savingsRate = ratio.Mul(hundred)
	}

	netWorth := profile.CashHoldings.Add(profile.InvestmentHoldings).Sub(profile.CurrentDebt)
	debtToWorth := hundred
	if netWorth.IsPositive() {
		debtToWorth = profile.CurrentDebt.Div(netWorth).Mul(hundred)
	}

	savingsRateItem := domain.ChecklistItem{
		Title:   "Monthly savings rate",
		Status:  "pending",
		Current: savingsRate.StringFixed(1) + "%",
		Target:  "20% or more of monthly income",
		Message: "Aim to save at least 20% of your monthly income",
	}
	if savingsRate.GreaterThanOrEqual(decimal.NewFromInt(20)) {
		savingsRateItem.Status = "completed"
		savingsRateItem.Message = "Great job maintaining a healthy savings rate!"
	}

	emergencyTarget := profile.MonthlyExpenses.Mul(decimal.NewFromInt(6))
	emergencyItem := domain.ChecklistItem{
		Title:   "Emergency fund",
		Status:  "pending",
		Current: "N/A",
		Target:  "6 months of expenses",
		Message: "Build an emergency fund to cover 6 months of expenses",
	}
	if months, ok := money.Ratio(profile.CashHoldings, profile.MonthlyExpenses); ok {
		emergencyItem.Current = months.StringFixed(1) + " months"
	}
	if profile.CashHoldings.GreaterThanOrEqual(emergencyTarget) {
		emergencyItem.Status = "completed"
		emergencyItem.Message = "You have a solid emergency fund!"
	}

	debtItem := domain.ChecklistItem{
		Title:   "Debt level",
		Status:  "pending",
		Current: debtToWorth.StringFixed(1) + "% of net worth",
		Target:  "30% or less of net worth",
		Message: "Work on reducing debt to below 30% of your net worth",
	}
	if debtToWorth.LessThanOrEqual(decimal.NewFromInt(30)) {
		debtItem.Status = "completed"
		debtItem.Message = "Your debt level is well-managed!"
	}

	checklist := map[string]domain.ChecklistItem{
		"savings_rate":   savingsRateItem,
		"emergency_fund": emergencyItem,
		"debt_level":     debtItem,
	}

	return &domain.SavingsHealth{
		Checklist:        checklist,
		Progress:         checklistProgress(checklist).Round(1),
		MonthlySavings:   monthlySavings.Round(2),
		SavingsRate:      savingsRate.Round(1),
		DebtToWorthRatio: debtToWorth.Round(1),
	}
}

// AnalyzeRetirementHealth checks whether the tax-advantaged retirement
// accounts have been started and reports setup progress.
func (e *Engine) AnalyzeRetirementHealth(profile *domain.FinancialProfile) *domain.RetirementHealth {
	rrspItem := domain.ChecklistItem{
		Title:   "Have you set up your RRSP?",
		Status:  "pending",
		Current: money.FromDecimal(profile.RRSPSavings).Format(),
		Target:  "Started",
		Message: "Consider opening an RRSP to save for retirement tax-efficiently",
	}
	if profile.RRSPSavings.IsPositive() {
		rrspItem.Status = "completed"
		rrspItem.Message = "Great job starting your RRSP!"
	}

	tfsaItem := domain.ChecklistItem{
		Title:   "Have you set up your TFSA?",
		Status:  "pending",
		Current: money.FromDecimal(profile.TFSASavings).Format(),
		Target:  "Started",
		Message: "A TFSA can help your savings grow tax-free",
	}
	if profile.TFSASavings.IsPositive() {
		tfsaItem.Status = "completed"
		tfsaItem.Message = "You're using your TFSA for tax-free growth!"
	}

	checklist := map[string]domain.ChecklistItem{
		"rrsp_setup": rrspItem,
		"tfsa_setup": tfsaItem,
	}

	return &domain.RetirementHealth{
		Checklist:              checklist,
		Progress:               checklistProgress(checklist).Round(1),
		TotalRetirementSavings: profile.RRSPSavings.Add(profile.TFSASavings).Round(2),
	}
}
