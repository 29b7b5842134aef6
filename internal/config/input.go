package config

import (
	"fmt"
	"os"

	"github.com/wealthpath/advisor/internal/domain"
	"gopkg.in/yaml.v3"
)

// Input is the on-disk advisory input: a financial profile, optional
// investment holdings, optional assumption overrides, and optional scenario
// blocks for the what-if and risk-level calculators.
type Input struct {
	Profile     domain.FinancialProfile `yaml:"profile" json:"profile"`
	Holdings    []domain.Holding        `yaml:"holdings,omitempty" json:"holdings,omitempty"`
	Assumptions domain.Assumptions      `yaml:"assumptions" json:"assumptions"`
	WhatIf      *domain.WhatIfScenario  `yaml:"whatif,omitempty" json:"whatif,omitempty"`
	Scenario    *domain.ScenarioRequest `yaml:"scenario,omitempty" json:"scenario,omitempty"`
}

// InputParser handles parsing of input configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an advisory input from a YAML file. Omitted assumption
// fields keep their documented defaults; only keys present in the file
// override them.
func (ip *InputParser) LoadFromFile(filename string) (*Input, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	input := Input{Assumptions: domain.DefaultAssumptions()}
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// ValidateInput validates the loaded input.
func (ip *InputParser) ValidateInput(input *Input) error {
	if err := input.Profile.Validate(); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	if err := input.Assumptions.Validate(); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}
	for i, holding := range input.Holdings {
		if err := ip.validateHolding(i, holding); err != nil {
			return err
		}
	}
	if input.WhatIf != nil {
		if err := ip.validateWhatIf(input.WhatIf); err != nil {
			return fmt.Errorf("whatif validation failed: %w", err)
		}
	}
	if input.Scenario != nil {
		if err := ip.validateScenario(input.Scenario, &input.Assumptions); err != nil {
			return fmt.Errorf("scenario validation failed: %w", err)
		}
	}
	return nil
}

func (ip *InputParser) validateHolding(index int, holding domain.Holding) error {
	if holding.Name == "" {
		return fmt.Errorf("holding %d: holding name is required", index)
	}
	if holding.Units.IsNegative() {
		return fmt.Errorf("holding %d (%s): number of units cannot be negative", index, holding.Name)
	}
	if holding.AverageCostPerUnit.IsNegative() {
		return fmt.Errorf("holding %d (%s): average cost per unit cannot be negative", index, holding.Name)
	}
	return nil
}

func (ip *InputParser) validateWhatIf(scenario *domain.WhatIfScenario) error {
	if scenario.CurrentAge < 0 {
		return fmt.Errorf("current age cannot be negative, got %d", scenario.CurrentAge)
	}
	if scenario.CurrentSavings.IsNegative() {
		return fmt.Errorf("current savings cannot be negative, got %s", scenario.CurrentSavings.StringFixed(2))
	}
	if scenario.MonthlyContribution.IsNegative() {
		return fmt.Errorf("monthly contribution cannot be negative, got %s", scenario.MonthlyContribution.StringFixed(2))
	}
	if scenario.DesiredRetirementIncome.IsNegative() {
		return fmt.Errorf("desired retirement income cannot be negative, got %s", scenario.DesiredRetirementIncome.StringFixed(2))
	}
	return nil
}

func (ip *InputParser) validateScenario(req *domain.ScenarioRequest, assumptions *domain.Assumptions) error {
	if req.MonthlyContribution.IsNegative() {
		return fmt.Errorf("monthly contribution cannot be negative, got %s", req.MonthlyContribution.StringFixed(2))
	}
	if _, ok := assumptions.ScenarioReturnRates[req.RiskLevel]; !ok {
		return fmt.Errorf("unknown risk level %q", req.RiskLevel)
	}
	return nil
}
