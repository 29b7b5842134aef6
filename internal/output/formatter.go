package output

import (
	"sort"
	"strings"

	"github.com/wealthpath/advisor/internal/domain"
)

// Report aggregates whichever advisory results a command produced. Sections
// left nil are skipped by every formatter.
type Report struct {
	Plan             *domain.RetirementPlan   `json:"plan,omitempty"`
	WhatIf           *domain.WhatIfResult     `json:"whatif,omitempty"`
	Scenario         *domain.ScenarioResult   `json:"scenario,omitempty"`
	Metrics          *domain.MetricsReport    `json:"metrics,omitempty"`
	SavingsHealth    *domain.SavingsHealth    `json:"savings_health,omitempty"`
	RetirementHealth *domain.RetirementHealth `json:"retirement_health,omitempty"`
}

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic
// formatting).
type Formatter interface {
	Format(report *Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// GetFormatterByName fetches a registered formatter, defaulting to console.
func GetFormatterByName(name string) Formatter {
	normalized := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == normalized {
			return f
		}
	}
	return ConsoleFormatter{}
}

// NormalizeFormatName maps aliases onto canonical formatter names.
func NormalizeFormatName(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return "json"
	case "csv":
		return "csv"
	default:
		return "console"
	}
}

// AvailableFormatterNames lists the registered formatter names, sorted.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}
