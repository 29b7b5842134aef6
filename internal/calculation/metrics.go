package calculation

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wealthpath/advisor/internal/domain"
	"github.com/wealthpath/advisor/pkg/money"
)

// Flat amortization assumed when estimating a monthly debt payment: 5% annual
// rate over a 5-year term.
var (
	debtAnnualRate = decimal.NewFromFloat(0.05)
	debtTermMonths = decimal.NewFromInt(60)
	hundred        = decimal.NewFromInt(100)
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }
func intPtr(i int) *int                             { return &i }

// ComputeMetrics produces the full financial metrics report: overall position,
// savings, investments, and retirement readiness, each compared against its
// benchmark. Metrics whose denominators are zero are reported as unavailable
// instead of failing, so a sparse profile still yields a partial report.
func (e *Engine) ComputeMetrics(profile *domain.FinancialProfile, holdings []domain.Holding) *domain.MetricsReport {
	a := &e.Assumptions
	report := &domain.MetricsReport{}

	annualIncome := profile.MonthlyIncome.Mul(twelve)

	e.computeNetWorth(profile, annualIncome, report)
	e.computeCashFlowAndDebt(profile, report)
	e.computeSavingsMetrics(profile, report)
	e.computeInvestmentMetrics(profile, holdings, report)
	e.computeRetirementMetrics(profile, annualIncome, a, report)

	return report
}

func (e *Engine) computeNetWorth(profile *domain.FinancialProfile, annualIncome decimal.Decimal, report *domain.MetricsReport) {
	netWorth := profile.NetWorth()
	report.NetWorth = netWorth.Round(2)
	report.NetWorthStatus = domain.StatusNotAvailable
	report.NetWorthMessage = "Add your income details to see how your net worth compares to benchmarks."
	report.NetWorthBenchmark = netWorthBenchmark(profile.Age)

	ratio, ok := money.Ratio(netWorth, annualIncome)
	if !ok || !annualIncome.IsPositive() {
		return
	}

	switch {
	case profile.Age <= 35:
		switch {
		case ratio.LessThan(decimal.NewFromFloat(0.5)):
			report.NetWorthStatus = domain.StatusBelowTarget
			report.NetWorthMessage = "Building your net worth takes time. Focus on reducing debt and increasing savings."
		case ratio.LessThanOrEqual(decimal.NewFromFloat(1.5)):
			report.NetWorthStatus = domain.StatusOnTrack
			report.NetWorthMessage = "You're on the right path. Continue building your assets and managing liabilities."
		default:
			report.NetWorthStatus = domain.StatusAboveTarget
			report.NetWorthMessage = "Excellent start! Your net worth is growing robustly."
		}
	case profile.Age <= 50:
		switch {
		case ratio.LessThan(decimal.NewFromInt(2)):
			report.NetWorthStatus = domain.StatusBelowTarget
			report.NetWorthMessage = "Consider strategies to boost your net worth, such as increasing savings and prudent investing."
		case ratio.LessThanOrEqual(decimal.NewFromInt(5)):
			report.NetWorthStatus = domain.StatusOnTrack
			report.NetWorthMessage = "Good progress! Keep focusing on asset growth and long-term investments."
		default:
			report.NetWorthStatus = domain.StatusAboveTarget
			report.NetWorthMessage = "You're ahead of the curve. Consider diversifying investments to sustain growth."
		}
	default:
		switch {
		case ratio.LessThan(decimal.NewFromInt(6)):
			report.NetWorthStatus = domain.StatusBelowTarget
			report.NetWorthMessage = "It's important to enhance your net worth before retirement. Seek advice to optimize your financial plan."
		case ratio.LessThanOrEqual(decimal.NewFromInt(10)):
			report.NetWorthStatus = domain.StatusOnTrack
			report.NetWorthMessage = "You're well-prepared for retirement. Maintain your financial strategies to preserve wealth."
		default:
			report.NetWorthStatus = domain.StatusAboveTarget
			report.NetWorthMessage = "Outstanding! Your strong net worth provides substantial retirement security."
		}
	}
}

func (e *Engine) computeCashFlowAndDebt(profile *domain.FinancialProfile, report *domain.MetricsReport) {
	if profile.MonthlyIncome.IsPositive() && profile.MonthlyExpenses.IsPositive() {
		report.MonthlyCashFlow = decimalPtr(profile.MonthlySavings().Round(2))
	}

	report.DebtStatus = domain.StatusNotAvailable
	report.DebtMessage = "Add your income and debt details to see how your debt load compares to recommendations."
	report.DebtBenchmark = "Below 36% of monthly income"

	monthlyDebtPayment := decimal.Zero
	if profile.CurrentDebt.IsPositive() {
		monthlyRate := debtAnnualRate.Div(twelve)
		// Standard annuity payment: P*r / (1 - (1+r)^-n).
		discount := one.Sub(one.Div(one.Add(monthlyRate).Pow(debtTermMonths)))
		monthlyDebtPayment = profile.CurrentDebt.Mul(monthlyRate).Div(discount)
	}

	ratio, ok := money.Ratio(monthlyDebtPayment, profile.MonthlyIncome)
	if !ok {
		return
	}
	dti := ratio.Mul(hundred).Round(1)
	report.DebtToIncomeRatio = decimalPtr(dti)

	switch {
	case dti.GreaterThan(decimal.NewFromInt(36)):
		report.DebtStatus = domain.StatusBelowTarget
		report.DebtMessage = "High debt levels can strain your finances. Focus on reducing debt to improve financial flexibility."
	case dti.GreaterThanOrEqual(decimal.NewFromInt(20)):
		report.DebtStatus = domain.StatusOnTrack
		report.DebtMessage = "Your debt is manageable. Continue making timely payments to maintain stability."
	default:
		report.DebtStatus = domain.StatusAboveTarget
		report.DebtMessage = "Great job! Low debt enhances your financial freedom and ability to invest."
	}
}

func (e *Engine) computeSavingsMetrics(profile *domain.FinancialProfile, report *domain.MetricsReport) {
	report.EmergencyFundStatus = domain.StatusNotAvailable
	report.EmergencyFundMessage = "Add your expenses and cash balance to see how your emergency fund compares to recommendations."
	report.EmergencyFundBenchmark = "3-6 months of expenses"

	if months, ok := money.Ratio(profile.CashHoldings, profile.MonthlyExpenses); ok {
		covered := months.Round(1)
		report.EmergencyFundRatio = decimalPtr(covered)
		switch {
		case covered.LessThan(decimal.NewFromInt(3)):
			report.EmergencyFundStatus = domain.StatusBelowTarget
			report.EmergencyFundMessage = "Your emergency fund is below the recommended level. Prioritize increasing your savings to cover unexpected expenses."
		case covered.LessThanOrEqual(decimal.NewFromInt(6)):
			report.EmergencyFundStatus = domain.StatusOnTrack
			report.EmergencyFundMessage = "You're well-prepared for unforeseen events. Continue maintaining this safety net."
		default:
			report.EmergencyFundStatus = domain.StatusAboveTarget
			report.EmergencyFundMessage = "Excellent! Consider allocating excess funds to investments for potential growth."
		}
	}

	report.SavingsStatus = domain.StatusNotAvailable
	report.SavingsMessage = "Add your income and expenses to see how your savings rate compares to recommendations."
	report.SavingsBenchmark = "At least 20% of income"

	if !profile.MonthlyIncome.IsPositive() || !profile.MonthlyExpenses.IsPositive() {
		return
	}
	monthlySavings := profile.MonthlySavings()
	report.MonthlySavings = decimalPtr(monthlySavings.Round(2))
	if monthlySavings.IsZero() {
		return
	}

	rate := monthlySavings.Div(profile.MonthlyIncome).Mul(hundred).Round(1)
	report.SavingsRate = decimalPtr(rate)
	switch {
	case rate.LessThan(decimal.NewFromInt(10)):
		report.SavingsStatus = domain.StatusBelowTarget
		report.SavingsMessage = "Increasing your savings rate is crucial. Start with small, consistent contributions to build the habit."
	case rate.LessThan(decimal.NewFromInt(20)):
		report.SavingsStatus = domain.StatusOnTrack
		report.SavingsMessage = "You're on the right track. Aim to gradually increase your savings to reach the recommended level."
	default:
		report.SavingsStatus = domain.StatusAboveTarget
		report.SavingsMessage = "Excellent! A high savings rate positions you well for future financial goals."
	}
}

func (e *Engine) computeInvestmentMetrics(profile *domain.FinancialProfile, holdings []domain.Holding, report *domain.MetricsReport) {
	portfolioValue := decimal.Zero
	for _, holding := range holdings {
		portfolioValue = portfolioValue.Add(holding.BookValue())
	}

	if profile.InvestmentHoldings.IsPositive() || portfolioValue.IsPositive() {
		total := decimal.Max(profile.InvestmentHoldings, portfolioValue)
		report.TotalInvestments = decimalPtr(total.Round(2))
	}

	investorType := strings.ToLower(profile.InvestorType)
	switch {
	case investorType == "":
	case strings.Contains(investorType, "conservative"):
		report.InvestmentGrowth = decimalPtr(decimal.NewFromFloat(4.0))
	case strings.Contains(investorType, "balanced"), strings.Contains(investorType, "moderate"):
		report.InvestmentGrowth = decimalPtr(decimal.NewFromFloat(6.0))
	case strings.Contains(investorType, "growth"), strings.Contains(investorType, "aggressive"):
		report.InvestmentGrowth = decimalPtr(decimal.NewFromFloat(8.0))
	}

	if len(holdings) == 0 {
		return
	}
	unique := make(map[string]struct{}, len(holdings))
	for _, holding := range holdings {
		unique[strings.ToLower(holding.Name)] = struct{}{}
	}
	score := len(unique)
	if score > 10 {
		score = 10
	}
	report.InvestmentDiversityScore = intPtr(score)
}

// retirementTargetRatio is the age-banded savings target as a multiple of
// annual income.
func retirementTargetRatio(age int) decimal.Decimal {
	switch {
	case age < 30:
		return decimal.NewFromInt(1)
	case age < 40:
		return decimal.NewFromInt(3)
	case age < 50:
		return decimal.NewFromInt(6)
	case age < 60:
		return decimal.NewFromInt(8)
	default:
		return decimal.NewFromInt(10)
	}
}

func (e *Engine) computeRetirementMetrics(profile *domain.FinancialProfile, annualIncome decimal.Decimal, a *domain.Assumptions, report *domain.MetricsReport) {
	report.RetirementStatus = domain.StatusNotAvailable
	report.RetirementMessage = "Add your income and retirement account details to see how your retirement savings compare to age-based targets."
	report.RetirementBenchmark = retirementBenchmark(profile.Age)

	totalRetirement := profile.TotalRetirementSavings()

	if ratio, ok := money.Ratio(totalRetirement, annualIncome); ok {
		savingsRatio := ratio.Round(1)
		report.RetirementSavingsRatio = decimalPtr(savingsRatio)

		target := retirementTargetRatio(profile.Age)
		switch {
		case savingsRatio.LessThan(target):
			report.RetirementStatus = domain.StatusBelowTarget
			report.RetirementMessage = "It's important to boost your retirement savings. Consider increasing contributions and reviewing your investment strategy to reach the target of " +
				target.String() + "x annual income by age " + decimal.NewFromInt(int64(profile.Age)).String() + "."
		case savingsRatio.LessThanOrEqual(target.Mul(decimal.NewFromFloat(1.2))):
			report.RetirementStatus = domain.StatusOnTrack
			report.RetirementMessage = "You're on track for a comfortable retirement. Maintain your current savings and investment approach."
		default:
			report.RetirementStatus = domain.StatusAboveTarget
			report.RetirementMessage = "Outstanding! Your diligent saving provides a strong foundation for retirement."
		}

		if profile.Age > 0 {
			// Readiness uses a slightly coarser band table, topping out at 8x.
			readinessTarget := retirementTargetRatio(profile.Age)
			if profile.Age >= 50 {
				readinessTarget = decimal.NewFromInt(8)
			}
			score := decimal.Min(savingsRatio.Div(readinessTarget), one).Mul(decimal.NewFromInt(10))
			report.RetirementReadinessScore = decimalPtr(score.Round(1))
		}
	}

	if profile.Age > 0 {
		report.YearsUntilRetirement = intPtr(a.DefaultRetirementAge - profile.Age)
	}
}

// netWorthBenchmark maps an age band to its expected net worth range.
func netWorthBenchmark(age int) string {
	switch {
	case age <= 0:
		return "Not available"
	case age <= 35:
		return "0.5-1.5x annual salary"
	case age <= 50:
		return "2-5x annual salary"
	default:
		return "6-10x annual salary"
	}
}

// retirementBenchmark maps an age band to its recommended savings multiple.
func retirementBenchmark(age int) string {
	switch {
	case age <= 0:
		return "Not available"
	case age < 30:
		return "1x annual income"
	case age < 40:
		return "3x annual income"
	case age < 50:
		return "6x annual income"
	case age < 60:
		return "8x annual income"
	default:
		return "10x annual income"
	}
}
