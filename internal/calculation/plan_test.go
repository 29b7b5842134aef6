package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthpath/advisor/internal/domain"
)

func sampleProfile() *domain.FinancialProfile {
	return &domain.FinancialProfile{
		Age:                        30,
		MonthlyIncome:              decimal.NewFromInt(6000),
		MonthlyExpenses:            decimal.NewFromInt(4000),
		CashHoldings:               decimal.NewFromInt(10000),
		InvestmentHoldings:         decimal.NewFromInt(20000),
		RRSPSavings:                decimal.NewFromInt(5000),
		TFSASavings:                decimal.NewFromInt(5000),
		DesiredRetirementLifestyle: domain.LifestyleModerate,
	}
}

func TestComputeCurrentPlan(t *testing.T) {
	engine := NewEngine()
	profile := sampleProfile()

	plan, err := engine.ComputeCurrentPlan(profile)
	require.NoError(t, err)

	t.Run("Feasibility search terminates within the ceiling", func(t *testing.T) {
		assert.GreaterOrEqual(t, plan.RetirementAge, profile.Age)
		assert.LessOrEqual(t, plan.RetirementAge, engine.Assumptions.AgeCeiling)
		assert.Equal(t, plan.RetirementAge-profile.Age, plan.YearsUntilRetirement)
		assert.Equal(t, engine.Assumptions.LifeExpectancy-plan.RetirementAge, plan.YearsInRetirement)
	})

	t.Run("Contribution is the after-tax surplus", func(t *testing.T) {
		// Surplus of 2000/month annualizes to 24000, all in the 15% bracket,
		// so take-home is 1700/month.
		assert.True(t, decimal.NewFromInt(1700).Equal(plan.MonthlyContribution),
			"got %s", plan.MonthlyContribution)
	})

	t.Run("Feasible plan has no savings gap", func(t *testing.T) {
		assert.True(t, plan.Feasible())
		assert.True(t, plan.SavingsGap.IsZero(), "gap was %s", plan.SavingsGap)
		assert.True(t, plan.ProjectedSavings.GreaterThanOrEqual(plan.RequiredSavings))
	})

	t.Run("Current savings sums cash and investables", func(t *testing.T) {
		// 10000 cash + 20000 investments + 5000 RRSP + 5000 TFSA.
		assert.True(t, decimal.NewFromInt(40000).Equal(plan.CurrentSavings),
			"got %s", plan.CurrentSavings)
	})

	t.Run("Retirement income splits into benefits and withdrawals", func(t *testing.T) {
		sum := plan.GovernmentBenefits.Add(plan.SavingsIncome)
		assert.True(t, plan.RetirementIncome.Sub(sum).Abs().LessThan(decimal.NewFromFloat(0.02)),
			"income %s vs parts %s", plan.RetirementIncome, sum)
	})
}

func TestComputeCurrentPlanDeterministic(t *testing.T) {
	engine := NewEngine()

	first, err := engine.ComputeCurrentPlan(sampleProfile())
	require.NoError(t, err)
	second, err := engine.ComputeCurrentPlan(sampleProfile())
	require.NoError(t, err)

	assert.Equal(t, first.RetirementAge, second.RetirementAge)
	assert.True(t, first.ProjectedSavings.Equal(second.ProjectedSavings))
	assert.True(t, first.SavingsGap.Equal(second.SavingsGap))
}

func TestComputeCurrentPlanHigherSavingsRetireEarlier(t *testing.T) {
	engine := NewEngine()

	lean := sampleProfile()
	plush := sampleProfile()
	plush.MonthlyExpenses = decimal.NewFromInt(2500)

	leanPlan, err := engine.ComputeCurrentPlan(lean)
	require.NoError(t, err)
	plushPlan, err := engine.ComputeCurrentPlan(plush)
	require.NoError(t, err)

	assert.LessOrEqual(t, plushPlan.RetirementAge, leanPlan.RetirementAge,
		"a bigger surplus should never delay retirement")
}

func TestComputeCurrentPlanInfeasible(t *testing.T) {
	engine := NewEngine()

	profile := &domain.FinancialProfile{
		Age:                        60,
		MonthlyIncome:              decimal.NewFromInt(3000),
		MonthlyExpenses:            decimal.NewFromInt(3000),
		CashHoldings:               decimal.NewFromInt(1000),
		DesiredRetirementLifestyle: domain.LifestyleLavish,
	}

	plan, err := engine.ComputeCurrentPlan(profile)
	require.NoError(t, err, "infeasibility is a result, not an error")

	assert.Equal(t, engine.Assumptions.AgeCeiling, plan.RetirementAge)
	assert.False(t, plan.Feasible())
	assert.True(t, plan.SavingsGap.IsPositive(), "expected a reported shortfall")
}

func TestComputeCurrentPlanPastCeiling(t *testing.T) {
	engine := NewEngine()

	profile := sampleProfile()
	profile.Age = 95

	plan, err := engine.ComputeCurrentPlan(profile)
	require.NoError(t, err)

	assert.Equal(t, engine.Assumptions.AgeCeiling, plan.RetirementAge)
	assert.Equal(t, 0, plan.YearsUntilRetirement)
	assert.Equal(t, 0, plan.YearsInRetirement)
}

func TestComputeCurrentPlanInvalidProfile(t *testing.T) {
	engine := NewEngine()

	profile := sampleProfile()
	profile.MonthlyIncome = decimal.NewFromInt(-1)

	_, err := engine.ComputeCurrentPlan(profile)
	assert.Error(t, err)
}

func TestSavingsGapNeverNegative(t *testing.T) {
	engine := NewEngine()

	for _, expenses := range []int64{1000, 3000, 5000, 5900} {
		profile := sampleProfile()
		profile.MonthlyExpenses = decimal.NewFromInt(expenses)

		plan, err := engine.ComputeCurrentPlan(profile)
		require.NoError(t, err)
		assert.False(t, plan.SavingsGap.IsNegative(),
			"negative gap at expenses %d", expenses)
	}
}
