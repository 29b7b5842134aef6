package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wealthpath/advisor/internal/domain"
)

func defaultTaxCalc() *IncomeTaxCalculator {
	return NewIncomeTaxCalculator(domain.DefaultAssumptions().TaxBrackets)
}

func TestAnnualTax(t *testing.T) {
	calc := defaultTaxCalc()

	tests := []struct {
		name     string
		income   decimal.Decimal
		expected decimal.Decimal
	}{
		{
			name:     "Zero income pays zero tax",
			income:   decimal.Zero,
			expected: decimal.Zero,
		},
		{
			name:     "Income inside first bracket",
			income:   decimal.NewFromInt(24000),
			expected: decimal.NewFromInt(3600), // 24000 * 0.15
		},
		{
			name:     "Income at first bracket boundary",
			income:   decimal.NewFromInt(55867),
			expected: decimal.NewFromFloat(8380.05), // 55867 * 0.15
		},
		{
			name:   "Income spanning two brackets",
			income: decimal.NewFromInt(80000),
			// 55867*0.15 + (80000-55867)*0.205 = 8380.05 + 4947.265
			expected: decimal.NewFromFloat(13327.315),
		},
		{
			name:   "Income in top bracket",
			income: decimal.NewFromInt(300000),
			// 8380.05 + 11452.53 + 15982.72 + 21328.63 + (300000-246752)*0.33
			expected: decimal.NewFromFloat(74715.77),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax := calc.AnnualTax(tt.income)
			assert.True(t, tax.Sub(tt.expected).Abs().LessThan(decimal.NewFromFloat(0.01)),
				"expected %s, got %s", tt.expected, tax)
		})
	}
}

func TestAnnualTaxMonotonic(t *testing.T) {
	calc := defaultTaxCalc()

	previous := decimal.Zero
	for income := int64(0); income <= 400000; income += 7919 {
		tax := calc.AnnualTax(decimal.NewFromInt(income))
		assert.True(t, tax.GreaterThanOrEqual(previous),
			"tax decreased at income %d", income)
		assert.True(t, tax.LessThanOrEqual(decimal.NewFromInt(income)),
			"tax exceeded income at %d", income)
		previous = tax
	}
}

func TestAfterTaxMonthlyIncome(t *testing.T) {
	calc := defaultTaxCalc()

	t.Run("Zero in zero out", func(t *testing.T) {
		assert.True(t, calc.AfterTaxMonthlyIncome(decimal.Zero).IsZero())
	})

	t.Run("First bracket take-home", func(t *testing.T) {
		// 2000/month -> 24000/year -> 3600 tax -> 20400 net -> 1700/month.
		result := calc.AfterTaxMonthlyIncome(decimal.NewFromInt(2000))
		assert.True(t, decimal.NewFromInt(1700).Equal(result.Round(2)),
			"got %s", result)
	})

	t.Run("Never exceeds gross", func(t *testing.T) {
		for _, gross := range []int64{500, 3000, 10000, 50000} {
			income := decimal.NewFromInt(gross)
			net := calc.AfterTaxMonthlyIncome(income)
			assert.True(t, net.LessThanOrEqual(income))
			assert.True(t, net.IsPositive())
		}
	})
}
