package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

var (
	contributionStep  = decimal.NewFromInt(100)
	desiredIncomeStep = decimal.NewFromInt(1000)
	returnRateStep    = decimal.NewFromFloat(0.005)
	maxReturnRate     = decimal.NewFromFloat(0.15)
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := min(msg.Width-8, 50); w > 0 {
			m.progress.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.focus = (m.focus + parameterCount - 1) % parameterCount
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.focus = (m.focus + 1) % parameterCount
		return m, nil

	case key.Matches(msg, m.keys.Decrease):
		m.adjust(-1)
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keys.Increase):
		m.adjust(1)
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keys.Benefits):
		m.scenario.IncludeCPPOAS = !m.scenario.IncludeCPPOAS
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.scenario = m.initial
		m.recompute()
		return m, nil
	}
	return m, nil
}

// adjust moves the focused parameter one step in the given direction,
// clamping to its valid range.
func (m *Model) adjust(direction int) {
	switch m.focus {
	case paramRetirementAge:
		next := m.scenario.RetirementAge + direction
		if next > m.scenario.CurrentAge && next <= m.scenario.LifeExpectancy {
			m.scenario.RetirementAge = next
		}

	case paramContribution:
		next := m.scenario.MonthlyContribution.Add(contributionStep.Mul(decimal.NewFromInt(int64(direction))))
		if !next.IsNegative() {
			m.scenario.MonthlyContribution = next
		}

	case paramReturnRate:
		next := m.scenario.ExpectedReturnRate.Add(returnRateStep.Mul(decimal.NewFromInt(int64(direction))))
		if !next.IsNegative() && next.LessThanOrEqual(maxReturnRate) {
			m.scenario.ExpectedReturnRate = next
		}

	case paramDesiredIncome:
		next := m.scenario.DesiredRetirementIncome.Add(desiredIncomeStep.Mul(decimal.NewFromInt(int64(direction))))
		if !next.IsNegative() {
			m.scenario.DesiredRetirementIncome = next
		}
	}
}
