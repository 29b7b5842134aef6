package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthpath/advisor/internal/domain"
)

func sampleWhatIf() *domain.WhatIfScenario {
	return &domain.WhatIfScenario{
		CurrentAge:              40,
		RetirementAge:           65,
		LifeExpectancy:          90,
		CurrentSavings:          decimal.NewFromInt(100000),
		MonthlyContribution:     decimal.NewFromInt(500),
		ExpectedReturnRate:      decimal.NewFromFloat(0.06),
		InflationRate:           decimal.NewFromFloat(0.02),
		DesiredRetirementIncome: decimal.NewFromInt(60000),
		IncludeCPPOAS:           false,
	}
}

func TestComputeWhatIf(t *testing.T) {
	engine := NewEngine()

	result, err := engine.ComputeWhatIf(sampleWhatIf())
	require.NoError(t, err)

	t.Run("Horizon bookkeeping", func(t *testing.T) {
		assert.Equal(t, 25, result.YearsUntilRetirement)
		assert.Equal(t, 25, result.RetirementDuration)
		assert.Equal(t, 65, result.RetirementAge)
	})

	t.Run("Trajectory includes both endpoints", func(t *testing.T) {
		require.Len(t, result.SavingsByYear, 26)
		assert.Equal(t, 40, result.SavingsByYear[0].Age)
		assert.Equal(t, 65, result.SavingsByYear[25].Age)
		assert.True(t, sampleWhatIf().CurrentSavings.Equal(result.SavingsByYear[0].Amount))
		assert.True(t, result.TotalSavingsAtRetirement.Equal(result.SavingsByYear[25].Amount))
	})

	t.Run("Final point matches the savings recurrence", func(t *testing.T) {
		expected := FutureSavings(
			decimal.NewFromInt(100000),
			decimal.NewFromInt(6000),
			decimal.NewFromFloat(0.06),
			25,
		)
		assert.True(t, expected.Round(2).Equal(result.TotalSavingsAtRetirement),
			"expected %s, got %s", expected.Round(2), result.TotalSavingsAtRetirement)
	})

	t.Run("Contribution needed covers the gap", func(t *testing.T) {
		if result.SavingsGap.IsPositive() {
			assert.True(t, result.MonthlyContributionNeeded.GreaterThanOrEqual(decimal.NewFromInt(500)),
				"needed %s", result.MonthlyContributionNeeded)
		}
	})

	t.Run("Benefits excluded on request", func(t *testing.T) {
		assert.True(t, result.MonthlyIncomeBreakdown.GovernmentBenefits.IsZero())
		assert.True(t, result.MonthlyRetirementIncome.Equal(result.MonthlyIncomeBreakdown.SavingsIncome))
	})
}

func TestComputeWhatIfRateNormalization(t *testing.T) {
	engine := NewEngine()

	fractional := sampleWhatIf()

	percent := sampleWhatIf()
	percent.ExpectedReturnRate = decimal.NewFromInt(6)
	percent.InflationRate = decimal.NewFromInt(2)

	a, err := engine.ComputeWhatIf(fractional)
	require.NoError(t, err)
	b, err := engine.ComputeWhatIf(percent)
	require.NoError(t, err)

	assert.True(t, a.TotalSavingsAtRetirement.Equal(b.TotalSavingsAtRetirement))
	assert.True(t, a.MonthlyRetirementIncome.Equal(b.MonthlyRetirementIncome))
	assert.True(t, a.MonthlyContributionNeeded.Equal(b.MonthlyContributionNeeded))
}

func TestComputeWhatIfWithBenefits(t *testing.T) {
	engine := NewEngine()

	scenario := sampleWhatIf()
	scenario.IncludeCPPOAS = true

	result, err := engine.ComputeWhatIf(scenario)
	require.NoError(t, err)

	expected := engine.Assumptions.CPPMonthlyEstimate.Add(engine.Assumptions.OASMonthlyEstimate)
	assert.True(t, expected.Equal(result.MonthlyIncomeBreakdown.GovernmentBenefits),
		"got %s", result.MonthlyIncomeBreakdown.GovernmentBenefits)

	without, err := engine.ComputeWhatIf(sampleWhatIf())
	require.NoError(t, err)
	assert.True(t, result.MonthlyRetirementIncome.GreaterThan(without.MonthlyRetirementIncome))
	assert.True(t, result.SavingsGap.LessThanOrEqual(without.SavingsGap))
}

func TestComputeWhatIfZeroYears(t *testing.T) {
	engine := NewEngine()

	scenario := sampleWhatIf()
	scenario.RetirementAge = scenario.CurrentAge

	result, err := engine.ComputeWhatIf(scenario)
	require.NoError(t, err)

	assert.Equal(t, 0, result.YearsUntilRetirement)
	require.Len(t, result.SavingsByYear, 1)
	assert.True(t, scenario.CurrentSavings.Equal(result.TotalSavingsAtRetirement))
	// No time to contribute, so no extra contribution can be demanded.
	assert.True(t, scenario.MonthlyContribution.Equal(result.MonthlyContributionNeeded))
}

func TestComputeWhatIfRetirementBeforeCurrentAge(t *testing.T) {
	engine := NewEngine()

	scenario := sampleWhatIf()
	scenario.RetirementAge = 35

	result, err := engine.ComputeWhatIf(scenario)
	require.NoError(t, err)

	assert.Equal(t, 0, result.YearsUntilRetirement)
	require.Len(t, result.SavingsByYear, 1)
}

func TestComputeWhatIfNegativeAge(t *testing.T) {
	engine := NewEngine()

	scenario := sampleWhatIf()
	scenario.CurrentAge = -1

	_, err := engine.ComputeWhatIf(scenario)
	assert.Error(t, err)
}

func TestComputeWhatIfGapNeverNegative(t *testing.T) {
	engine := NewEngine()

	scenario := sampleWhatIf()
	// Savings far beyond the desired income.
	scenario.CurrentSavings = decimal.NewFromInt(10000000)

	result, err := engine.ComputeWhatIf(scenario)
	require.NoError(t, err)

	assert.True(t, result.SavingsGap.IsZero())
	assert.True(t, scenario.MonthlyContribution.Equal(result.MonthlyContributionNeeded))
}

func TestNormalizeRate(t *testing.T) {
	tests := []struct {
		name     string
		in       decimal.Decimal
		expected decimal.Decimal
	}{
		{"Fraction passes through", decimal.NewFromFloat(0.06), decimal.NewFromFloat(0.06)},
		{"Whole percentage divides", decimal.NewFromInt(6), decimal.NewFromFloat(0.06)},
		{"Exactly one passes through", decimal.NewFromInt(1), decimal.NewFromInt(1)},
		{"Zero passes through", decimal.Zero, decimal.Zero},
		{"Negative passes through", decimal.NewFromFloat(-0.01), decimal.NewFromFloat(-0.01)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.expected.Equal(normalizeRate(tt.in)))
		})
	}
}
