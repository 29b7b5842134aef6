package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/wealthpath/advisor/internal/domain"
)

// IncomeTaxCalculator applies a progressive bracket schedule to gross income.
// The bracket table comes from Assumptions so jurisdictions or tax years can
// be swapped without touching the calculation; the default is the Canadian
// federal schedule.
type IncomeTaxCalculator struct {
	Brackets []domain.TaxBracket
}

// NewIncomeTaxCalculator creates a calculator over an ordered, contiguous
// bracket schedule. Bracket validity is checked by Assumptions.Validate before
// a calculator is ever constructed.
func NewIncomeTaxCalculator(brackets []domain.TaxBracket) *IncomeTaxCalculator {
	return &IncomeTaxCalculator{Brackets: brackets}
}

// AnnualTax computes total tax on an annual income: each bracket's taxable
// slice times its marginal rate, summed.
func (tc *IncomeTaxCalculator) AnnualTax(annualIncome decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	for _, bracket := range tc.Brackets {
		if annualIncome.LessThanOrEqual(bracket.Lower) {
			break
		}
		taxable := annualIncome.Sub(bracket.Lower)
		if !bracket.Unbounded() {
			width := bracket.Upper.Sub(bracket.Lower)
			taxable = decimal.Min(taxable, width)
		}
		tax = tax.Add(taxable.Mul(bracket.Rate))
	}
	return tax
}

// AfterTaxMonthlyIncome annualizes a monthly income, applies the bracket
// schedule, and returns the monthly after-tax figure. Pure and total for any
// non-negative input; non-decreasing in its argument and zero at zero.
func (tc *IncomeTaxCalculator) AfterTaxMonthlyIncome(monthlyIncome decimal.Decimal) decimal.Decimal {
	annualIncome := monthlyIncome.Mul(twelve)
	afterTaxAnnual := annualIncome.Sub(tc.AnnualTax(annualIncome))
	return afterTaxAnnual.Div(twelve)
}
