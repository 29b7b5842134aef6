package calculation

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthpath/advisor/internal/domain"
)

func TestComputeMetricsFullProfile(t *testing.T) {
	engine := NewEngine()
	profile := sampleProfile()

	report := engine.ComputeMetrics(profile, nil)
	require.NotNil(t, report)

	t.Run("Net worth", func(t *testing.T) {
		// 10000 + 20000 + 10000 retirement, no debt.
		assert.True(t, decimal.NewFromInt(40000).Equal(report.NetWorth))
		// 40000 / 72000 annual income is about 0.56x, inside the 0.5-1.5x band.
		assert.Equal(t, domain.StatusOnTrack, report.NetWorthStatus)
		assert.Equal(t, "0.5-1.5x annual salary", report.NetWorthBenchmark)
	})

	t.Run("Cash flow", func(t *testing.T) {
		require.NotNil(t, report.MonthlyCashFlow)
		assert.True(t, decimal.NewFromInt(2000).Equal(*report.MonthlyCashFlow))
	})

	t.Run("Debt free profile reports zero ratio", func(t *testing.T) {
		require.NotNil(t, report.DebtToIncomeRatio)
		assert.True(t, report.DebtToIncomeRatio.IsZero())
		assert.Equal(t, domain.StatusAboveTarget, report.DebtStatus)
	})

	t.Run("Emergency fund", func(t *testing.T) {
		require.NotNil(t, report.EmergencyFundRatio)
		// 10000 cash / 4000 expenses = 2.5 months.
		assert.True(t, decimal.NewFromFloat(2.5).Equal(*report.EmergencyFundRatio))
		assert.Equal(t, domain.StatusBelowTarget, report.EmergencyFundStatus)
	})

	t.Run("Savings rate", func(t *testing.T) {
		require.NotNil(t, report.SavingsRate)
		// 2000 / 6000 = 33.3%.
		assert.True(t, decimal.NewFromFloat(33.3).Equal(*report.SavingsRate))
		assert.Equal(t, domain.StatusAboveTarget, report.SavingsStatus)
	})

	t.Run("Retirement readiness", func(t *testing.T) {
		require.NotNil(t, report.RetirementSavingsRatio)
		// 10000 / 72000 = 0.1, far below the 3x target for age 30.
		assert.Equal(t, domain.StatusBelowTarget, report.RetirementStatus)
		require.NotNil(t, report.YearsUntilRetirement)
		assert.Equal(t, 35, *report.YearsUntilRetirement)
	})
}

func TestComputeMetricsZeroExpenses(t *testing.T) {
	engine := NewEngine()

	profile := sampleProfile()
	profile.MonthlyExpenses = decimal.Zero

	report := engine.ComputeMetrics(profile, nil)

	assert.Nil(t, report.EmergencyFundRatio)
	assert.Equal(t, domain.StatusNotAvailable, report.EmergencyFundStatus)
	assert.Nil(t, report.MonthlyCashFlow)
	assert.Nil(t, report.SavingsRate)
	assert.Equal(t, domain.StatusNotAvailable, report.SavingsStatus)
}

func TestComputeMetricsZeroIncome(t *testing.T) {
	engine := NewEngine()

	profile := sampleProfile()
	profile.MonthlyIncome = decimal.Zero

	report := engine.ComputeMetrics(profile, nil)

	assert.Equal(t, domain.StatusNotAvailable, report.NetWorthStatus)
	assert.Nil(t, report.MonthlyCashFlow)
	assert.Nil(t, report.RetirementSavingsRatio)
	assert.Equal(t, domain.StatusNotAvailable, report.RetirementStatus)
}

func TestComputeMetricsDebtToIncome(t *testing.T) {
	engine := NewEngine()

	profile := sampleProfile()
	profile.CurrentDebt = decimal.NewFromInt(100000)

	report := engine.ComputeMetrics(profile, nil)

	require.NotNil(t, report.DebtToIncomeRatio)
	// A 100k debt amortized at 5% over 60 months costs about 1887/month,
	// roughly 31% of a 6000 income.
	assert.True(t, report.DebtToIncomeRatio.GreaterThan(decimal.NewFromInt(30)))
	assert.True(t, report.DebtToIncomeRatio.LessThan(decimal.NewFromInt(33)))
	assert.Equal(t, domain.StatusOnTrack, report.DebtStatus)
}

func TestComputeMetricsInvestments(t *testing.T) {
	engine := NewEngine()

	t.Run("Investor type maps to expected growth", func(t *testing.T) {
		tests := []struct {
			investorType string
			expected     float64
		}{
			{"conservative", 4.0},
			{"Balanced Growth", 6.0},
			{"moderate", 6.0},
			{"aggressive growth", 8.0},
		}
		for _, tt := range tests {
			profile := sampleProfile()
			profile.InvestorType = tt.investorType
			report := engine.ComputeMetrics(profile, nil)
			require.NotNil(t, report.InvestmentGrowth, tt.investorType)
			assert.True(t, decimal.NewFromFloat(tt.expected).Equal(*report.InvestmentGrowth),
				"%s -> %s", tt.investorType, report.InvestmentGrowth)
		}
	})

	t.Run("Unknown investor type has no growth estimate", func(t *testing.T) {
		profile := sampleProfile()
		report := engine.ComputeMetrics(profile, nil)
		assert.Nil(t, report.InvestmentGrowth)
	})

	t.Run("Book value beats stale profile total", func(t *testing.T) {
		profile := sampleProfile()
		holdings := []domain.Holding{
			{Name: "VEQT", Units: decimal.NewFromInt(1000), AverageCostPerUnit: decimal.NewFromInt(30)},
		}
		report := engine.ComputeMetrics(profile, holdings)
		require.NotNil(t, report.TotalInvestments)
		assert.True(t, decimal.NewFromInt(30000).Equal(*report.TotalInvestments))
	})

	t.Run("Diversity score caps at ten", func(t *testing.T) {
		holdings := make([]domain.Holding, 0, 15)
		for i := 0; i < 15; i++ {
			holdings = append(holdings, domain.Holding{
				Name:               fmt.Sprintf("Fund-%d", i),
				Units:              decimal.NewFromInt(1),
				AverageCostPerUnit: decimal.NewFromInt(100),
			})
		}
		report := engine.ComputeMetrics(sampleProfile(), holdings)
		require.NotNil(t, report.InvestmentDiversityScore)
		assert.Equal(t, 10, *report.InvestmentDiversityScore)
	})

	t.Run("Duplicate names count once", func(t *testing.T) {
		holdings := []domain.Holding{
			{Name: "VEQT", Units: decimal.NewFromInt(1), AverageCostPerUnit: decimal.NewFromInt(1)},
			{Name: "veqt", Units: decimal.NewFromInt(2), AverageCostPerUnit: decimal.NewFromInt(1)},
			{Name: "XEQT", Units: decimal.NewFromInt(3), AverageCostPerUnit: decimal.NewFromInt(1)},
		}
		report := engine.ComputeMetrics(sampleProfile(), holdings)
		require.NotNil(t, report.InvestmentDiversityScore)
		assert.Equal(t, 2, *report.InvestmentDiversityScore)
	})
}

func TestRetirementTargetRatio(t *testing.T) {
	tests := []struct {
		age      int
		expected int64
	}{
		{25, 1},
		{30, 3},
		{39, 3},
		{40, 6},
		{50, 8},
		{60, 10},
		{75, 10},
	}

	for _, tt := range tests {
		assert.True(t, decimal.NewFromInt(tt.expected).Equal(retirementTargetRatio(tt.age)),
			"age %d", tt.age)
	}
}

func TestBenchmarksForUnknownAge(t *testing.T) {
	assert.Equal(t, "Not available", netWorthBenchmark(0))
	assert.Equal(t, "Not available", retirementBenchmark(0))
}
