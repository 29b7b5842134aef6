package calculation

import (
	"fmt"

	"github.com/wealthpath/advisor/internal/domain"
)

// Engine orchestrates all advisory calculations. It is stateless apart from
// its read-only assumptions, so a single Engine is safe to share across
// concurrent callers.
type Engine struct {
	Assumptions domain.Assumptions
	TaxCalc     *IncomeTaxCalculator
	Logger      Logger
}

// NewEngine creates an engine with the documented default assumptions.
func NewEngine() *Engine {
	assumptions := domain.DefaultAssumptions()
	return &Engine{
		Assumptions: assumptions,
		TaxCalc:     NewIncomeTaxCalculator(assumptions.TaxBrackets),
		Logger:      NopLogger{},
	}
}

// NewEngineWithAssumptions creates an engine with caller-supplied assumptions,
// rejecting malformed ones before any calculation can run.
func NewEngineWithAssumptions(assumptions domain.Assumptions) (*Engine, error) {
	if err := assumptions.Validate(); err != nil {
		return nil, fmt.Errorf("invalid assumptions: %w", err)
	}
	return &Engine{
		Assumptions: assumptions,
		TaxCalc:     NewIncomeTaxCalculator(assumptions.TaxBrackets),
		Logger:      NopLogger{},
	}, nil
}

// SetLogger installs a logger; nil restores the no-op default.
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = logger
}
