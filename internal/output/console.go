package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wealthpath/advisor/internal/domain"
)

// ConsoleFormatter renders a plain-text advisory report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer

	if report.Plan != nil {
		c.writePlan(&buf, report.Plan)
	}
	if report.WhatIf != nil {
		c.writeWhatIf(&buf, report.WhatIf)
	}
	if report.Scenario != nil {
		c.writeScenario(&buf, report.Scenario)
	}
	if report.Metrics != nil {
		c.writeMetrics(&buf, report.Metrics)
	}
	if report.SavingsHealth != nil {
		c.writeChecklist(&buf, "SAVINGS HEALTH", report.SavingsHealth.Checklist, report.SavingsHealth.Progress.StringFixed(0))
	}
	if report.RetirementHealth != nil {
		c.writeChecklist(&buf, "RETIREMENT HEALTH", report.RetirementHealth.Checklist, report.RetirementHealth.Progress.StringFixed(0))
	}

	return buf.Bytes(), nil
}

func (c ConsoleFormatter) writePlan(buf *bytes.Buffer, plan *domain.RetirementPlan) {
	fmt.Fprintln(buf, "RETIREMENT PLAN")
	fmt.Fprintln(buf, "================================")
	fmt.Fprintf(buf, "Retirement Age: %d (in %d years)\n", plan.RetirementAge, plan.YearsUntilRetirement)
	fmt.Fprintf(buf, "Years In Retirement: %d\n", plan.YearsInRetirement)
	fmt.Fprintf(buf, "Current Savings: %s\n", FormatCurrency(plan.CurrentSavings))
	fmt.Fprintf(buf, "Monthly Contribution: %s\n", FormatCurrency(plan.MonthlyContribution))
	fmt.Fprintf(buf, "Projected Savings: %s\n", FormatCurrency(plan.ProjectedSavings))
	fmt.Fprintf(buf, "Required Savings: %s\n", FormatCurrency(plan.RequiredSavings))
	fmt.Fprintf(buf, "Savings Gap: %s\n", FormatCurrency(plan.SavingsGap))
	fmt.Fprintf(buf, "Monthly Retirement Income: %s (savings %s + benefits %s)\n",
		FormatCurrency(plan.RetirementIncome), FormatCurrency(plan.SavingsIncome), FormatCurrency(plan.GovernmentBenefits))
	fmt.Fprintf(buf, "Monthly Retirement Expenses: %s\n", FormatCurrency(plan.RetirementExpenses))
	if !plan.Feasible() {
		fmt.Fprintln(buf, "NOTE: no feasible retirement age found; the age ceiling is reported with the remaining shortfall.")
	}
	fmt.Fprintln(buf)
}

func (c ConsoleFormatter) writeWhatIf(buf *bytes.Buffer, result *domain.WhatIfResult) {
	fmt.Fprintln(buf, "WHAT-IF SCENARIO")
	fmt.Fprintln(buf, "================================")
	fmt.Fprintf(buf, "Retirement Age: %d (in %d years, duration %d years)\n",
		result.RetirementAge, result.YearsUntilRetirement, result.RetirementDuration)
	fmt.Fprintf(buf, "Total Savings At Retirement: %s\n", FormatCurrency(result.TotalSavingsAtRetirement))
	fmt.Fprintf(buf, "Monthly Retirement Income: %s (savings %s + benefits %s)\n",
		FormatCurrency(result.MonthlyRetirementIncome),
		FormatCurrency(result.MonthlyIncomeBreakdown.SavingsIncome),
		FormatCurrency(result.MonthlyIncomeBreakdown.GovernmentBenefits))
	fmt.Fprintf(buf, "Monthly Income Gap: %s\n", FormatCurrency(result.SavingsGap))
	fmt.Fprintf(buf, "Monthly Contribution Needed: %s\n", FormatCurrency(result.MonthlyContributionNeeded))
	fmt.Fprintln(buf, "Savings Trajectory:")
	for _, point := range result.SavingsByYear {
		fmt.Fprintf(buf, "  age %3d  %s\n", point.Age, FormatCurrency(point.Amount))
	}
	fmt.Fprintln(buf)
}

func (c ConsoleFormatter) writeScenario(buf *bytes.Buffer, result *domain.ScenarioResult) {
	fmt.Fprintln(buf, "RISK SCENARIO")
	fmt.Fprintln(buf, "================================")
	fmt.Fprintf(buf, "Projected Savings: %s\n", FormatCurrency(result.ProjectedSavings))
	fmt.Fprintf(buf, "Monthly Income: %s\n", FormatCurrency(result.MonthlyIncome))
	fmt.Fprintf(buf, "Annual Return Rate: %s\n", FormatPercentage(result.AnnualReturnRate))
	fmt.Fprintf(buf, "Retirement Duration: %d years\n", result.RetirementDuration)
	fmt.Fprintf(buf, "Success Probability: %s\n", FormatPercentage(result.SuccessProbability))
	fmt.Fprintln(buf)
}

func (c ConsoleFormatter) writeMetrics(buf *bytes.Buffer, metrics *domain.MetricsReport) {
	fmt.Fprintln(buf, "FINANCIAL METRICS")
	fmt.Fprintln(buf, "================================")
	fmt.Fprintf(buf, "Net Worth: %s [%s] (benchmark: %s)\n", FormatCurrency(metrics.NetWorth), metrics.NetWorthStatus, metrics.NetWorthBenchmark)
	fmt.Fprintf(buf, "Monthly Cash Flow: %s\n", FormatOptionalCurrency(metrics.MonthlyCashFlow))
	fmt.Fprintf(buf, "Debt-To-Income: %s [%s] (benchmark: %s)\n", FormatOptionalPercentage(metrics.DebtToIncomeRatio), metrics.DebtStatus, metrics.DebtBenchmark)
	fmt.Fprintf(buf, "Emergency Fund: %s months [%s] (benchmark: %s)\n", FormatOptionalNumber(metrics.EmergencyFundRatio), metrics.EmergencyFundStatus, metrics.EmergencyFundBenchmark)
	fmt.Fprintf(buf, "Savings Rate: %s [%s] (benchmark: %s)\n", FormatOptionalPercentage(metrics.SavingsRate), metrics.SavingsStatus, metrics.SavingsBenchmark)
	fmt.Fprintf(buf, "Monthly Savings: %s\n", FormatOptionalCurrency(metrics.MonthlySavings))
	fmt.Fprintf(buf, "Total Investments: %s\n", FormatOptionalCurrency(metrics.TotalInvestments))
	fmt.Fprintf(buf, "Investment Growth Estimate: %s\n", FormatOptionalPercentage(metrics.InvestmentGrowth))
	if metrics.InvestmentDiversityScore != nil {
		fmt.Fprintf(buf, "Diversity Score: %d/10\n", *metrics.InvestmentDiversityScore)
	} else {
		fmt.Fprintln(buf, "Diversity Score: N/A")
	}
	fmt.Fprintf(buf, "Retirement Savings Ratio: %s [%s] (benchmark: %s)\n", FormatOptionalNumber(metrics.RetirementSavingsRatio), metrics.RetirementStatus, metrics.RetirementBenchmark)
	fmt.Fprintf(buf, "Retirement Readiness: %s/10\n", FormatOptionalNumber(metrics.RetirementReadinessScore))
	if metrics.YearsUntilRetirement != nil {
		fmt.Fprintf(buf, "Years Until Retirement: %d\n", *metrics.YearsUntilRetirement)
	}
	fmt.Fprintln(buf)
}

func (c ConsoleFormatter) writeChecklist(buf *bytes.Buffer, title string, checklist map[string]domain.ChecklistItem, progress string) {
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, "================================")
	keys := make([]string, 0, len(checklist))
	for key := range checklist {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		item := checklist[key]
		marker := "[ ]"
		if item.Completed() {
			marker = "[x]"
		}
		fmt.Fprintf(buf, "%s %s (current %s, target %s)\n", marker, item.Title, item.Current, item.Target)
		fmt.Fprintf(buf, "    %s\n", item.Message)
	}
	fmt.Fprintf(buf, "Progress: %s%%\n\n", progress)
}
