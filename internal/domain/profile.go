package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Lifestyle describes the retirement lifestyle a user is planning for. It
// selects the fraction of pre-retirement expenses assumed to continue into
// retirement.
type Lifestyle string

const (
	LifestyleFrugal      Lifestyle = "frugal"
	LifestyleModerate    Lifestyle = "moderate"
	LifestyleComfortable Lifestyle = "comfortable"
	LifestyleLavish      Lifestyle = "lavish"
)

// FinancialProfile is the flat snapshot of a user's finances that every
// calculation consumes. Instances are immutable for the duration of a
// calculation; optional fields default to zero, never null.
type FinancialProfile struct {
	Age             int             `yaml:"age" json:"age"`
	MonthlyIncome   decimal.Decimal `yaml:"monthly_income" json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `yaml:"monthly_expenses" json:"monthly_expenses"`

	CashHoldings       decimal.Decimal `yaml:"cash_holdings" json:"cash_holdings"`
	InvestmentHoldings decimal.Decimal `yaml:"investment_holdings" json:"investment_holdings"`
	CurrentDebt        decimal.Decimal `yaml:"current_debt" json:"current_debt"`

	RRSPSavings             decimal.Decimal `yaml:"rrsp_savings" json:"rrsp_savings"`
	TFSASavings             decimal.Decimal `yaml:"tfsa_savings" json:"tfsa_savings"`
	OtherRetirementAccounts decimal.Decimal `yaml:"other_retirement_accounts" json:"other_retirement_accounts"`

	DesiredRetirementLifestyle Lifestyle `yaml:"desired_retirement_lifestyle" json:"desired_retirement_lifestyle"`

	// InvestorType feeds the metrics growth estimate; free-form text such as
	// "balanced growth investor". Empty means unknown.
	InvestorType string `yaml:"investor_type,omitempty" json:"investor_type,omitempty"`
}

// TotalRetirementSavings sums the tax-advantaged retirement buckets. The
// account categories carry no special tax logic here; they are opaque named
// buckets.
func (p *FinancialProfile) TotalRetirementSavings() decimal.Decimal {
	return p.RRSPSavings.Add(p.TFSASavings).Add(p.OtherRetirementAccounts)
}

// InvestableAssets is everything expected to grow at the investment return:
// retirement accounts plus non-registered investment holdings. Cash is
// excluded; it only tracks inflation.
func (p *FinancialProfile) InvestableAssets() decimal.Decimal {
	return p.TotalRetirementSavings().Add(p.InvestmentHoldings)
}

// MonthlySavings is gross monthly income less monthly expenses.
func (p *FinancialProfile) MonthlySavings() decimal.Decimal {
	return p.MonthlyIncome.Sub(p.MonthlyExpenses)
}

// NetWorth is total assets less current debt. The only derivation allowed to
// go negative.
func (p *FinancialProfile) NetWorth() decimal.Decimal {
	assets := p.CashHoldings.Add(p.InvestmentHoldings).Add(p.TotalRetirementSavings())
	return assets.Sub(p.CurrentDebt)
}

// Validate enforces the profile invariants: non-negative age and non-negative
// currency fields.
func (p *FinancialProfile) Validate() error {
	if p.Age < 0 {
		return fmt.Errorf("age cannot be negative, got %d", p.Age)
	}
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"monthly_income", p.MonthlyIncome},
		{"monthly_expenses", p.MonthlyExpenses},
		{"cash_holdings", p.CashHoldings},
		{"investment_holdings", p.InvestmentHoldings},
		{"current_debt", p.CurrentDebt},
		{"rrsp_savings", p.RRSPSavings},
		{"tfsa_savings", p.TFSASavings},
		{"other_retirement_accounts", p.OtherRetirementAccounts},
	}
	for _, f := range fields {
		if f.value.IsNegative() {
			return fmt.Errorf("%s cannot be negative, got %s", f.name, f.value.StringFixed(2))
		}
	}
	return nil
}

// Holding is a single investment position: units held at an average cost per
// unit. Used only by the metrics layer.
type Holding struct {
	Name               string          `yaml:"holding_name" json:"holding_name"`
	Units              decimal.Decimal `yaml:"number_of_units" json:"number_of_units"`
	AverageCostPerUnit decimal.Decimal `yaml:"average_cost_per_unit" json:"average_cost_per_unit"`
}

// BookValue is units times average cost.
func (h Holding) BookValue() decimal.Decimal {
	return h.Units.Mul(h.AverageCostPerUnit)
}
