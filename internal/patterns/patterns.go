// Package patterns holds the Conventional Commits type vocabulary and the
// exemption patterns for merge, revert and automated dependency-bump commits.
package patterns

import (
	"regexp"
	"strings"
)

// Types is the ordered commit type vocabulary. The order is significant:
// violation messages enumerate the vocabulary exactly as listed here.
var Types = []string{
	"build",
	"ci",
	"docs",
	"feat",
	"fix",
	"perf",
	"refactor",
	"style",
	"test",
	"chore",
	"revert",
	"bump",
}

// Exemption patterns, checked in order. These messages are produced by
// tooling rather than humans and bypass linting entirely.
var exemptPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^Merge pull request .+`),
	regexp.MustCompile(`^Merge .+? into .+`),
	regexp.MustCompile(`^Merge branch .+`),
	regexp.MustCompile(`^Merge tag .+`),
	regexp.MustCompile(`^[Rr]evert .*`),
	regexp.MustCompile(`^Merged .+? (in|into) .+`),
	regexp.MustCompile(`^Merged PR .+: .+`),
	regexp.MustCompile(`^Merge remote-tracking branch\s*.+`),
	regexp.MustCompile(`^Automatic merge.*`),
	regexp.MustCompile(`^Auto-merged .+? into .+`),
	regexp.MustCompile(`(?i)bump \S+ from \S+ to \S+`),
}

// IsValidType reports whether t is in the type vocabulary (case-sensitive).
func IsValidType(t string) bool {
	for _, valid := range Types {
		if t == valid {
			return true
		}
	}
	return false
}

// TypeList returns the vocabulary joined with ", " for violation messages.
func TypeList() string {
	return strings.Join(Types, ", ")
}

// IsExempt reports whether the whitespace-normalized message matches any
// exemption pattern. Exempt messages are reported as successful without
// running any further checks.
func IsExempt(message string) bool {
	normalized := strings.TrimSpace(message)
	for _, re := range exemptPatterns {
		if re.MatchString(normalized) {
			return true
		}
	}
	return false
}
