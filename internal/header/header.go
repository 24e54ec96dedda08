// Package header parses the first line of a commit message against the
// Conventional Commits `type(scope)!: subject` grammar.
package header

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/jonathan/commitlint/internal/patterns"
	"github.com/jonathan/commitlint/internal/types"
)

// Rule identifiers for header violations.
const (
	RuleFormat        = "incorrect_format"
	RuleInvalidType   = "invalid_type"
	RuleSubjectPeriod = "subject_full_stop"
	RuleSubjectCase   = "subject_case"
)

// headerPattern is the full header grammar: type, optional parenthesized
// scope, optional breaking marker, a colon followed by exactly one space,
// then a subject that does not start with whitespace. The grammar has no
// nesting, so a single anchored expression with capture groups gives
// unambiguous field boundaries.
var headerPattern = regexp.MustCompile(`^([^\s(:!]+)(?:\(([^)]+)\))?(!)?: (\S.*)$`)

// Fields holds the parsed components of a commit header.
type Fields struct {
	Type     string
	Scope    string
	Breaking bool
	Subject  string
}

// Parse matches line against the header grammar. ok is false when the line
// does not match the grammar at all; fields is zero-valued in that case.
func Parse(line string) (fields Fields, ok bool) {
	m := headerPattern.FindStringSubmatch(line)
	if m == nil {
		return Fields{}, false
	}
	return Fields{
		Type:     m[1],
		Scope:    m[2],
		Breaking: m[3] == "!",
		Subject:  m[4],
	}, true
}

// Validate parses line and returns the header violations in a fixed order.
// A shape mismatch yields exactly one format violation; field-level rules
// only run on a successful shape match.
func Validate(line string) []types.Violation {
	fields, ok := Parse(line)
	if !ok {
		return []types.Violation{{
			Rule:    RuleFormat,
			Details: "header must match format `type(scope): subject`",
		}}
	}

	var violations []types.Violation

	if !patterns.IsValidType(fields.Type) {
		violations = append(violations, types.Violation{
			Rule:    RuleInvalidType,
			Details: fmt.Sprintf("invalid type %q: type must be one of: %s", fields.Type, patterns.TypeList()),
		})
	}

	if last := fields.Subject[len(fields.Subject)-1]; last == '.' {
		violations = append(violations, types.Violation{
			Rule:    RuleSubjectPeriod,
			Details: "subject must not end with a period",
		})
	}

	if first := []rune(fields.Subject)[0]; unicode.IsUpper(first) {
		violations = append(violations, types.Violation{
			Rule:    RuleSubjectCase,
			Details: "subject must start with a lowercase letter",
		})
	}

	return violations
}
