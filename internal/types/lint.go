// Package types provides type definitions for structured data used throughout the commitlint system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Violation represents a single lint rule failure
type Violation struct {
	Rule    string `json:"rule"`    // Machine-readable rule identifier (e.g. "header_too_long")
	Details string `json:"details"` // Human-readable description of the failure
}

// LintResult holds the outcome of linting one commit message.
// Success is true iff Violations is empty. Violation order mirrors
// rule-check order and is deterministic for a given input.
type LintResult struct {
	Success    bool        `json:"success"`
	Violations []Violation `json:"violations,omitempty"`
}

// NewLintResult builds a LintResult from a violation list
func NewLintResult(violations []Violation) LintResult {
	return LintResult{
		Success:    len(violations) == 0,
		Violations: violations,
	}
}
