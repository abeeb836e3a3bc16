package validator

import (
	"shipmatrix/internal/domain"
)

// Severity classifies how serious a failed rule is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Result holds the outcome of one rule applied to one record.
type Result struct {
	RuleKey  string   `json:"rule_key"`
	RuleName string   `json:"rule_name"`
	Severity Severity `json:"severity"`
	Passed   bool     `json:"passed"`
	Field    string   `json:"field,omitempty"`
	Message  string   `json:"message,omitempty"`
}

// Rule is the interface for a single built-in validation rule.
type Rule interface {
	Validate(r *domain.ShipmentRecord) []Result
	RuleKey() string
	RuleName() string
	Severity() Severity
}

// Summary aggregates rule outcomes across all records of a run.
type Summary struct {
	Total    int `json:"total"`
	Passed   int `json:"passed"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}
