// Package rules runs the ordered lint checks over a preprocessed commit message.
package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/commitlint/internal/header"
	"github.com/jonathan/commitlint/internal/message"
	"github.com/jonathan/commitlint/internal/patterns"
	"github.com/jonathan/commitlint/internal/types"
)

// DefaultHeaderMaxLength is the header length limit applied when no
// explicit limit is configured.
const DefaultHeaderMaxLength = 72

// Rule identifiers for checks owned by the rule engine.
const (
	RuleHeaderLength   = "header_too_long"
	RuleBodySeparation = "missing_blank_line"
)

const genericFailureDetails = "commit message does not follow the conventional commits format"

// Options control a single rule-engine run.
type Options struct {
	// HeaderMaxLength is the maximum header length; 0 means DefaultHeaderMaxLength.
	HeaderMaxLength int
	// SkipDetail collapses any violations into one generic failure message.
	// The checks themselves still run, so the success result is identical
	// to a detailed run.
	SkipDetail bool
}

// Check runs every rule in fixed order and aggregates all violations; it
// never stops at the first failure. Exempt messages (merges, reverts,
// automated bumps) short-circuit to success.
func Check(commitMessage string, opts Options) types.LintResult {
	if patterns.IsExempt(commitMessage) {
		return types.LintResult{Success: true}
	}

	maxLength := opts.HeaderMaxLength
	if maxLength <= 0 {
		maxLength = DefaultHeaderMaxLength
	}

	headerLine, _ := message.SplitHeaderBody(commitMessage)

	var violations []types.Violation
	violations = append(violations, header.Validate(headerLine)...)
	violations = append(violations, checkHeaderLength(headerLine, maxLength)...)
	violations = append(violations, checkBodySeparation(commitMessage)...)

	if opts.SkipDetail && len(violations) > 0 {
		violations = []types.Violation{{
			Rule:    header.RuleFormat,
			Details: genericFailureDetails,
		}}
	}

	return types.NewLintResult(violations)
}

// checkHeaderLength enforces the configured header length limit. A header
// of exactly the limit passes.
func checkHeaderLength(headerLine string, maxLength int) []types.Violation {
	length := utf8.RuneCountInString(headerLine)
	if length <= maxLength {
		return nil
	}
	return []types.Violation{{
		Rule:    RuleHeaderLength,
		Details: fmt.Sprintf("header is %d characters, must not exceed %d", length, maxLength),
	}}
}

// checkBodySeparation requires a blank line between the header and a
// non-empty body. Pure-whitespace continuation lines do not count as a body.
func checkBodySeparation(commitMessage string) []types.Violation {
	lines := strings.Split(commitMessage, "\n")
	if len(lines) < 2 {
		return nil
	}

	hasBody := false
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) != "" {
			hasBody = true
			break
		}
	}
	if !hasBody || strings.TrimSpace(lines[1]) == "" {
		return nil
	}

	return []types.Violation{{
		Rule:    RuleBodySeparation,
		Details: "body must be separated from the header by a blank line",
	}}
}
