package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/wealthpath/advisor/internal/output"
)

// View renders the explorer.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("WealthPath What-If Explorer"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Adjust the parameters and watch the projection update."))
	b.WriteString("\n\n")

	b.WriteString(m.renderParameters())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderResults())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return AppStyle.Render(b.String())
}

func (m Model) renderParameters() string {
	hundred := decimal.NewFromInt(100)

	rows := []struct {
		param parameter
		label string
		value string
	}{
		{paramRetirementAge, "Retirement age", fmt.Sprintf("%d", m.scenario.RetirementAge)},
		{paramContribution, "Monthly contribution", output.FormatCurrency(m.scenario.MonthlyContribution)},
		{paramReturnRate, "Expected return", output.FormatPercentage(m.scenario.ExpectedReturnRate.Mul(hundred))},
		{paramDesiredIncome, "Desired annual income", output.FormatCurrency(m.scenario.DesiredRetirementIncome)},
	}

	var b strings.Builder
	for _, row := range rows {
		marker := "  "
		labelStyle := ParameterLabelStyle
		if row.param == m.focus {
			marker = "> "
			labelStyle = FocusedLabelStyle
		}
		b.WriteString(marker)
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-24s", row.label)))
		b.WriteString(row.value)
		b.WriteString("\n")
	}

	benefits := "excluded"
	if m.scenario.IncludeCPPOAS {
		benefits = "included"
	}
	b.WriteString("  ")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("CPP/OAS benefits %s", benefits)))
	b.WriteString("\n")

	return BorderStyle.Render(b.String())
}

func (m Model) renderResults() string {
	r := m.result
	if r == nil {
		return SubtitleStyle.Render("No projection yet.")
	}

	var b strings.Builder

	metric := func(label string, value string, style lipgloss.Style) {
		b.WriteString(MetricLabelStyle.Render(label))
		b.WriteString(style.Render(value))
		b.WriteString("\n")
	}

	metric("Savings at retirement", output.FormatCurrency(r.TotalSavingsAtRetirement), MetricValueStyle)
	metric("Monthly retirement income", output.FormatCurrency(r.MonthlyRetirementIncome), MetricValueStyle)
	metric("From savings", output.FormatCurrency(r.MonthlyIncomeBreakdown.SavingsIncome), MetricValueStyle)
	metric("From government benefits", output.FormatCurrency(r.MonthlyIncomeBreakdown.GovernmentBenefits), MetricValueStyle)
	metric("Years until retirement", fmt.Sprintf("%d", r.YearsUntilRetirement), MetricValueStyle)
	metric("Retirement duration", fmt.Sprintf("%d years", r.RetirementDuration), MetricValueStyle)

	if r.SavingsGap.IsPositive() {
		metric("Monthly income gap", output.FormatCurrency(r.SavingsGap), MetricNegativeStyle)
		metric("Contribution needed", output.FormatCurrency(r.MonthlyContributionNeeded), MetricNegativeStyle)
	} else {
		metric("Monthly income gap", "none", MetricPositiveStyle)
	}

	b.WriteString("\n")
	b.WriteString(MetricLabelStyle.Render("Income readiness"))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.readiness()))
	b.WriteString("\n")

	return BorderStyle.Render(b.String())
}

func (m Model) renderHelp() string {
	bindings := []struct{ key, desc string }{
		{"↑/↓", "select"},
		{"←/→", "adjust"},
		{"b", "toggle CPP/OAS"},
		{"r", "reset"},
		{"q", "quit"},
	}

	parts := make([]string, 0, len(bindings))
	for _, bind := range bindings {
		parts = append(parts, HelpKeyStyle.Render(bind.key)+" "+HelpDescStyle.Render(bind.desc))
	}
	return strings.Join(parts, "  ")
}
