package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxBracket is one slice of a progressive income tax schedule. Brackets are
// ordered, contiguous, and the last bracket leaves Upper at zero to mean
// unbounded.
type TaxBracket struct {
	Lower decimal.Decimal `yaml:"lower" json:"lower"`
	Upper decimal.Decimal `yaml:"upper" json:"upper"` // zero on the top bracket
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// Unbounded reports whether the bracket has no upper bound.
func (b TaxBracket) Unbounded() bool {
	return b.Upper.IsZero()
}

// Assumptions holds every process-wide simulation parameter. All fields are
// read-only during a calculation; jurisdiction- or year-specific numbers live
// here rather than in the algorithms so they can be swapped without touching
// calculation code.
type Assumptions struct {
	// InflationRate and ExpectedReturn are annual fractions (0.03 for 3%).
	InflationRate  decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	ExpectedReturn decimal.Decimal `yaml:"expected_return" json:"expected_return"`

	// WithdrawalRate is the fraction of retirement assets drawn each year.
	WithdrawalRate decimal.Decimal `yaml:"withdrawal_rate" json:"withdrawal_rate"`

	LifeExpectancy int `yaml:"life_expectancy" json:"life_expectancy"`

	// AgeCeiling bounds the feasibility search; a plan that is still
	// infeasible at this age is reported with the ceiling and a positive gap.
	AgeCeiling int `yaml:"age_ceiling" json:"age_ceiling"`

	// DefaultRetirementAge backs the years-until-retirement metric.
	DefaultRetirementAge int `yaml:"default_retirement_age" json:"default_retirement_age"`

	LifestyleFactors       map[Lifestyle]decimal.Decimal `yaml:"lifestyle_factors" json:"lifestyle_factors"`
	DefaultLifestyleFactor decimal.Decimal               `yaml:"default_lifestyle_factor" json:"default_lifestyle_factor"`

	// Annual government benefit bases (CPP and OAS analogues), grown with
	// inflation by the feasibility search.
	CPPAnnualBase decimal.Decimal `yaml:"cpp_annual_base" json:"cpp_annual_base"`
	OASAnnualBase decimal.Decimal `yaml:"oas_annual_base" json:"oas_annual_base"`

	// Flat monthly estimates used by the what-if solver when government
	// benefits are included; deliberately not inflation-grown.
	CPPMonthlyEstimate decimal.Decimal `yaml:"cpp_monthly_estimate" json:"cpp_monthly_estimate"`
	OASMonthlyEstimate decimal.Decimal `yaml:"oas_monthly_estimate" json:"oas_monthly_estimate"`

	TaxBrackets []TaxBracket `yaml:"tax_brackets" json:"tax_brackets"`

	// ScenarioReturnRates maps a risk level to its expected annual return.
	ScenarioReturnRates map[string]decimal.Decimal `yaml:"scenario_return_rates" json:"scenario_return_rates"`
}

// DefaultAssumptions returns the documented defaults: Canadian federal tax
// brackets, CPP/OAS bases, 3% inflation, 7% return, the 4% rule, and a life
// expectancy of 90.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		InflationRate:        decimal.NewFromFloat(0.03),
		ExpectedReturn:       decimal.NewFromFloat(0.07),
		WithdrawalRate:       decimal.NewFromFloat(0.04),
		LifeExpectancy:       90,
		AgeCeiling:           90,
		DefaultRetirementAge: 65,
		LifestyleFactors: map[Lifestyle]decimal.Decimal{
			LifestyleFrugal:      decimal.NewFromFloat(0.6),
			LifestyleModerate:    decimal.NewFromFloat(0.7),
			LifestyleComfortable: decimal.NewFromFloat(0.8),
			LifestyleLavish:      decimal.NewFromFloat(0.9),
		},
		DefaultLifestyleFactor: decimal.NewFromFloat(0.7),
		CPPAnnualBase:          decimal.NewFromFloat(15043.00),
		OASAnnualBase:          decimal.NewFromFloat(8400.00),
		CPPMonthlyEstimate:     decimal.NewFromInt(1200),
		OASMonthlyEstimate:     decimal.NewFromInt(615),
		TaxBrackets: []TaxBracket{
			{Lower: decimal.Zero, Upper: decimal.NewFromInt(55867), Rate: decimal.NewFromFloat(0.15)},
			{Lower: decimal.NewFromInt(55867), Upper: decimal.NewFromInt(111733), Rate: decimal.NewFromFloat(0.205)},
			{Lower: decimal.NewFromInt(111733), Upper: decimal.NewFromInt(173205), Rate: decimal.NewFromFloat(0.26)},
			{Lower: decimal.NewFromInt(173205), Upper: decimal.NewFromInt(246752), Rate: decimal.NewFromFloat(0.29)},
			{Lower: decimal.NewFromInt(246752), Upper: decimal.Zero, Rate: decimal.NewFromFloat(0.33)},
		},
		ScenarioReturnRates: map[string]decimal.Decimal{
			"conservative": decimal.NewFromFloat(0.05),
			"moderate":     decimal.NewFromFloat(0.07),
			"aggressive":   decimal.NewFromFloat(0.09),
		},
	}
}

// LifestyleFactor resolves the expense-retention fraction for a lifestyle,
// falling back to the default factor for unknown or empty values.
func (a *Assumptions) LifestyleFactor(lifestyle Lifestyle) decimal.Decimal {
	if factor, ok := a.LifestyleFactors[lifestyle]; ok {
		return factor
	}
	return a.DefaultLifestyleFactor
}

// Validate checks the assumptions for programmer error. A failure here is a
// configuration bug, not a degenerate input, and aborts the calculation.
func (a *Assumptions) Validate() error {
	if a.WithdrawalRate.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("withdrawal rate must be positive, got %s", a.WithdrawalRate)
	}
	if a.LifeExpectancy <= 0 {
		return fmt.Errorf("life expectancy must be positive, got %d", a.LifeExpectancy)
	}
	if a.AgeCeiling <= 0 {
		return fmt.Errorf("age ceiling must be positive, got %d", a.AgeCeiling)
	}
	if a.InflationRate.LessThan(decimal.NewFromFloat(-0.10)) || a.InflationRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("inflation rate must be between -10%% and 20%%, got %s%%",
			a.InflationRate.Mul(decimal.NewFromInt(100)).StringFixed(2))
	}
	if a.DefaultLifestyleFactor.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("default lifestyle factor must be positive, got %s", a.DefaultLifestyleFactor)
	}
	if len(a.TaxBrackets) == 0 {
		return fmt.Errorf("at least one tax bracket is required")
	}
	if !a.TaxBrackets[0].Lower.IsZero() {
		return fmt.Errorf("first tax bracket must start at zero, got %s", a.TaxBrackets[0].Lower)
	}
	for i, b := range a.TaxBrackets {
		if b.Rate.IsNegative() {
			return fmt.Errorf("tax bracket %d has negative rate %s", i, b.Rate)
		}
		last := i == len(a.TaxBrackets)-1
		if last {
			if !b.Unbounded() {
				return fmt.Errorf("final tax bracket must be unbounded")
			}
			continue
		}
		if b.Unbounded() {
			return fmt.Errorf("tax bracket %d is unbounded but not last", i)
		}
		if b.Upper.LessThanOrEqual(b.Lower) {
			return fmt.Errorf("tax bracket %d upper bound %s must exceed lower bound %s", i, b.Upper, b.Lower)
		}
		if !a.TaxBrackets[i+1].Lower.Equal(b.Upper) {
			return fmt.Errorf("tax brackets %d and %d are not contiguous: %s vs %s", i, i+1, b.Upper, a.TaxBrackets[i+1].Lower)
		}
	}
	return nil
}
