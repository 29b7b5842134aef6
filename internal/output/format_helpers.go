package output

import "github.com/shopspring/decimal"

// FormatCurrency formats a decimal as currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatPercentage formats a decimal as a percentage with 1 decimal.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(1) + "%" }

// FormatOptionalCurrency renders a nullable currency metric.
func FormatOptionalCurrency(amount *decimal.Decimal) string {
	if amount == nil {
		return "N/A"
	}
	return FormatCurrency(*amount)
}

// FormatOptionalPercentage renders a nullable percentage metric.
func FormatOptionalPercentage(amount *decimal.Decimal) string {
	if amount == nil {
		return "N/A"
	}
	return FormatPercentage(*amount)
}

// FormatOptionalNumber renders a nullable plain decimal metric.
func FormatOptionalNumber(amount *decimal.Decimal) string {
	if amount == nil {
		return "N/A"
	}
	return amount.StringFixed(1)
}
