package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/wealthpath/advisor/internal/calculation"
	"github.com/wealthpath/advisor/internal/config"
	"github.com/wealthpath/advisor/internal/domain"
)

// parameter identifies which adjustable input currently has focus.
type parameter int

const (
	paramRetirementAge parameter = iota
	paramContribution
	paramReturnRate
	paramDesiredIncome
	parameterCount
)

// keyMap defines the key bindings for the explorer.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Decrease key.Binding
	Increase key.Binding
	Benefits key.Binding
	Reset    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous parameter"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next parameter"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		Benefits: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle CPP/OAS"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the interactive what-if explorer: a single-scene bubbletea model
// that recomputes the projection on every parameter change.
type Model struct {
	engine *calculation.Engine

	scenario domain.WhatIfScenario
	initial  domain.WhatIfScenario

	result *domain.WhatIfResult
	err    error

	focus    parameter
	keys     keyMap
	progress progress.Model

	width  int
	height int
}

// NewModel builds the explorer from a loaded input. An explicit whatif block
// seeds the parameters; otherwise they are derived from the profile and the
// engine's assumptions.
func NewModel(engine *calculation.Engine, input *config.Input) Model {
	scenario := seedScenario(engine, input)
	m := Model{
		engine:   engine,
		scenario: scenario,
		initial:  scenario,
		keys:     defaultKeyMap(),
		progress: progress.New(progress.WithDefaultGradient()),
	}
	m.recompute()
	return m
}

func seedScenario(engine *calculation.Engine, input *config.Input) domain.WhatIfScenario {
	if input.WhatIf != nil {
		return *input.WhatIf
	}

	a := engine.Assumptions
	profile := &input.Profile

	contribution := profile.MonthlySavings()
	if contribution.IsNegative() {
		contribution = decimal.Zero
	}

	retirementAge := a.DefaultRetirementAge
	if retirementAge <= profile.Age {
		retirementAge = profile.Age + 1
	}

	twelve := decimal.NewFromInt(12)
	desired := profile.MonthlyExpenses.Mul(twelve).Mul(a.LifestyleFactor(profile.DesiredRetirementLifestyle))

	return domain.WhatIfScenario{
		CurrentAge:              profile.Age,
		RetirementAge:           retirementAge,
		LifeExpectancy:          a.LifeExpectancy,
		CurrentSavings:          profile.InvestableAssets(),
		MonthlyContribution:     contribution,
		ExpectedReturnRate:      a.ExpectedReturn,
		InflationRate:           a.InflationRate,
		DesiredRetirementIncome: desired,
		IncludeCPPOAS:           true,
	}
}

// recompute reruns the what-if projection for the current parameters.
func (m *Model) recompute() {
	result, err := m.engine.ComputeWhatIf(&m.scenario)
	m.result = result
	m.err = err
}

// readiness is the ratio of projected to desired monthly income, clamped to
// [0, 1] for the progress bar.
func (m *Model) readiness() float64 {
	if m.result == nil || !m.scenario.DesiredRetirementIncome.IsPositive() {
		return 0
	}
	desiredMonthly := m.scenario.DesiredRetirementIncome.Div(decimal.NewFromInt(12))
	ratio, _ := m.result.MonthlyRetirementIncome.Div(desiredMonthly).Float64()
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the interactive explorer and blocks until the user quits.
func Run(engine *calculation.Engine, input *config.Input) error {
	program := tea.NewProgram(NewModel(engine, input), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
