package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFutureValue(t *testing.T) {
	tests := []struct {
		name      string
		principal decimal.Decimal
		rate      decimal.Decimal
		years     int
		expected  decimal.Decimal
	}{
		{
			name:      "Zero years returns principal",
			principal: decimal.NewFromInt(1000),
			rate:      decimal.NewFromFloat(0.07),
			years:     0,
			expected:  decimal.NewFromInt(1000),
		},
		{
			name:      "Negative years returns principal",
			principal: decimal.NewFromInt(1000),
			rate:      decimal.NewFromFloat(0.07),
			years:     -3,
			expected:  decimal.NewFromInt(1000),
		},
		{
			name:      "One year at 7 percent",
			principal: decimal.NewFromInt(1000),
			rate:      decimal.NewFromFloat(0.07),
			years:     1,
			expected:  decimal.NewFromInt(1070),
		},
		{
			name:      "Two years at 10 percent",
			principal: decimal.NewFromInt(100),
			rate:      decimal.NewFromFloat(0.10),
			years:     2,
			expected:  decimal.NewFromInt(121),
		},
		{
			name:      "Zero rate is identity",
			principal: decimal.NewFromInt(500),
			rate:      decimal.Zero,
			years:     10,
			expected:  decimal.NewFromInt(500),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FutureValue(tt.principal, tt.rate, tt.years)
			assert.True(t, tt.expected.Equal(result.Round(6)),
				"expected %s, got %s", tt.expected, result)
		})
	}
}

func TestFutureSavings(t *testing.T) {
	principal := decimal.NewFromInt(1000)
	contribution := decimal.NewFromInt(100)
	rate := decimal.NewFromFloat(0.05)

	t.Run("Zero years returns principal", func(t *testing.T) {
		result := FutureSavings(principal, contribution, rate, 0)
		assert.True(t, principal.Equal(result))
	})

	t.Run("One year applies growth then contribution", func(t *testing.T) {
		// 1000*1.05 + 100 = 1150
		result := FutureSavings(principal, contribution, rate, 1)
		assert.True(t, decimal.NewFromInt(1150).Equal(result.Round(6)),
			"got %s", result)
	})

	t.Run("Two years iterates the recurrence", func(t *testing.T) {
		// 1150*1.05 + 100 = 1307.50
		result := FutureSavings(principal, contribution, rate, 2)
		assert.True(t, decimal.NewFromFloat(1307.50).Equal(result.Round(6)),
			"got %s", result)
	})

	t.Run("Zero rate accumulates contributions linearly", func(t *testing.T) {
		result := FutureSavings(principal, contribution, decimal.Zero, 10)
		assert.True(t, decimal.NewFromInt(2000).Equal(result))
	})

	t.Run("Matches FutureValue when contribution is zero", func(t *testing.T) {
		result := FutureSavings(principal, decimal.Zero, rate, 15)
		closed := FutureValue(principal, rate, 15)
		assert.True(t, closed.Sub(result).Abs().LessThan(decimal.NewFromFloat(0.000001)),
			"iterative %s vs closed-form %s", result, closed)
	})
}

func TestProjectedSavings(t *testing.T) {
	t.Run("Zero years returns current savings", func(t *testing.T) {
		current := decimal.NewFromInt(50000)
		result := ProjectedSavings(current, decimal.NewFromInt(500), decimal.NewFromFloat(0.07), 0)
		assert.True(t, current.Equal(result))
	})

	t.Run("Zero rate is principal plus straight contributions", func(t *testing.T) {
		result := ProjectedSavings(decimal.NewFromInt(1000), decimal.NewFromInt(100), decimal.Zero, 2)
		// 1000 + 100*24 = 3400
		assert.True(t, decimal.NewFromInt(3400).Equal(result.Round(6)), "got %s", result)
	})

	t.Run("Positive rate grows both components", func(t *testing.T) {
		result := ProjectedSavings(decimal.NewFromInt(10000), decimal.NewFromInt(200), decimal.NewFromFloat(0.06), 10)
		// Principal alone: 10000 * 1.06^10, about 17908.48.
		// Contributions: 200 * ((1.005^120 - 1) / 0.005), about 32775.87.
		expected := decimal.NewFromFloat(50684.35)
		assert.True(t, result.Sub(expected).Abs().LessThan(decimal.NewFromInt(1)),
			"got %s, expected about %s", result, expected)
	})

	t.Run("More years never yields less", func(t *testing.T) {
		current := decimal.NewFromInt(5000)
		contribution := decimal.NewFromInt(300)
		rate := decimal.NewFromFloat(0.05)
		previous := ProjectedSavings(current, contribution, rate, 0)
		for years := 1; years <= 40; years++ {
			next := ProjectedSavings(current, contribution, rate, years)
			assert.True(t, next.GreaterThanOrEqual(previous),
				"projection shrank between year %d and %d", years-1, years)
			previous = next
		}
	})
}
