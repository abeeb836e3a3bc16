package validator

import (
	"shipmatrix/internal/domain"
)

// Engine applies a rule set to extracted shipment records.
type Engine struct {
	rules []Rule
}

// NewEngine creates an Engine with the given rules. Passing no rules
// uses the built-in set.
func NewEngine(rules ...Rule) *Engine {
	if len(rules) == 0 {
		rules = BuiltinRules()
	}
	return &Engine{rules: rules}
}

// ValidateRecord runs all rules against one record.
func (e *Engine) ValidateRecord(rec *domain.ShipmentRecord) []Result {
	var out []Result
	for _, rule := range e.rules {
		out = append(out, rule.Validate(rec)...)
	}
	return out
}

// ValidateAll runs all rules against every record and aggregates the
// outcomes into a summary.
func (e *Engine) ValidateAll(records []domain.ShipmentRecord) Summary {
	var s Summary
	for i := range records {
		for _, res := range e.ValidateRecord(&records[i]) {
			s.Total++
			switch {
			case res.Passed:
				s.Passed++
			case res.Severity == SeverityError:
				s.Errors++
			default:
				s.Warnings++
			}
		}
	}
	return s
}
