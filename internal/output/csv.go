package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter exports the numeric sections of a report as CSV rows, one
// metric per line plus the what-if savings trajectory when present.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"section", "field", "value"}); err != nil {
		return nil, err
	}

	if plan := report.Plan; plan != nil {
		rows := [][]string{
			{"plan", "retirement_age", strconv.Itoa(plan.RetirementAge)},
			{"plan", "years_until_retirement", strconv.Itoa(plan.YearsUntilRetirement)},
			{"plan", "years_in_retirement", strconv.Itoa(plan.YearsInRetirement)},
			{"plan", "current_savings", plan.CurrentSavings.StringFixed(2)},
			{"plan", "monthly_contribution", plan.MonthlyContribution.StringFixed(2)},
			{"plan", "projected_savings", plan.ProjectedSavings.StringFixed(2)},
			{"plan", "required_savings", plan.RequiredSavings.StringFixed(2)},
			{"plan", "savings_gap", plan.SavingsGap.StringFixed(2)},
			{"plan", "retirement_income", plan.RetirementIncome.StringFixed(2)},
			{"plan", "retirement_expenses", plan.RetirementExpenses.StringFixed(2)},
			{"plan", "government_benefits", plan.GovernmentBenefits.StringFixed(2)},
			{"plan", "savings_income", plan.SavingsIncome.StringFixed(2)},
		}
		if err := w.WriteAll(rows); err != nil {
			return nil, err
		}
	}

	if whatIf := report.WhatIf; whatIf != nil {
		rows := [][]string{
			{"whatif", "retirement_age", strconv.Itoa(whatIf.RetirementAge)},
			{"whatif", "total_savings_at_retirement", whatIf.TotalSavingsAtRetirement.StringFixed(2)},
			{"whatif", "monthly_retirement_income", whatIf.MonthlyRetirementIncome.StringFixed(2)},
			{"whatif", "savings_gap", whatIf.SavingsGap.StringFixed(2)},
			{"whatif", "monthly_contribution_needed", whatIf.MonthlyContributionNeeded.StringFixed(2)},
		}
		for _, point := range whatIf.SavingsByYear {
			rows = append(rows, []string{"whatif_trajectory", strconv.Itoa(point.Age), point.Amount.StringFixed(2)})
		}
		if err := w.WriteAll(rows); err != nil {
			return nil, err
		}
	}

	if scenario := report.Scenario; scenario != nil {
		rows := [][]string{
			{"scenario", "projected_savings", scenario.ProjectedSavings.StringFixed(2)},
			{"scenario", "monthly_income", scenario.MonthlyIncome.StringFixed(2)},
			{"scenario", "annual_return_rate", scenario.AnnualReturnRate.StringFixed(2)},
			{"scenario", "retirement_duration", strconv.Itoa(scenario.RetirementDuration)},
			{"scenario", "success_probability", scenario.SuccessProbability.StringFixed(1)},
		}
		if err := w.WriteAll(rows); err != nil {
			return nil, err
		}
	}

	if metrics := report.Metrics; metrics != nil {
		rows := [][]string{
			{"metrics", "net_worth", metrics.NetWorth.StringFixed(2)},
			{"metrics", "net_worth_status", string(metrics.NetWorthStatus)},
			{"metrics", "monthly_cash_flow", FormatOptionalNumber(metrics.MonthlyCashFlow)},
			{"metrics", "debt_to_income_ratio", FormatOptionalNumber(metrics.DebtToIncomeRatio)},
			{"metrics", "emergency_fund_ratio", FormatOptionalNumber(metrics.EmergencyFundRatio)},
			{"metrics", "savings_rate", FormatOptionalNumber(metrics.SavingsRate)},
			{"metrics", "retirement_savings_ratio", FormatOptionalNumber(metrics.RetirementSavingsRatio)},
		}
		if err := w.WriteAll(rows); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
