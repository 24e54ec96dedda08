// Package linter is the façade over the lint pipeline: preprocessing,
// exemption handling, header parsing and rule evaluation.
package linter

import (
	"strings"

	"github.com/jonathan/commitlint/internal/message"
	"github.com/jonathan/commitlint/internal/rules"
	"github.com/jonathan/commitlint/internal/types"
)

// Options control a single lint call. The zero value lints with the default
// header length limit and detailed violation reporting.
type Options struct {
	// HeaderMaxLength is the maximum header length; 0 means the default (72).
	HeaderMaxLength int
	// SkipDetail reports a single generic failure instead of per-rule details.
	SkipDetail bool
	// StripComments removes "#" lines before linting. Set only for messages
	// read from a COMMIT_EDITMSG-style file.
	StripComments bool
}

// Lint validates one commit message against the Conventional Commits rules.
// Malformed input never produces an error, only violations, and identical
// input and options always yield an identical result.
func Lint(commitMessage string, opts Options) types.LintResult {
	msg := strings.TrimSpace(commitMessage)
	if opts.StripComments {
		msg = message.StripComments(msg)
	}

	return rules.Check(msg, rules.Options{
		HeaderMaxLength: opts.HeaderMaxLength,
		SkipDetail:      opts.SkipDetail,
	})
}
