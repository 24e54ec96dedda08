// Package linter is the façade over the lint pipeline: preprocessing,
// exemption handling, header parsing and rule evaluation.
package linter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLint_ValidMessage(t *testing.T) {
	result := Lint("feat: add login", Options{})
	assert.True(t, result.Success)
	assert.Empty(t, result.Violations)
}

func TestLint_InvalidType(t *testing.T) {
	result := Lint("Feat: add login", Options{})
	require.False(t, result.Success)
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0].Details, `"Feat"`)
	assert.Contains(t, result.Violations[0].Details, "type must be one of")
}

func TestLint_MissingColon(t *testing.T) {
	result := Lint("feat add login", Options{})
	require.False(t, result.Success)
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0].Details, "type(scope): subject")
}

func TestLint_BodyWithoutBlankLine(t *testing.T) {
	result := Lint("feat: add login\nSome body text", Options{})
	require.False(t, result.Success)
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0].Details, "blank line")
}

func TestLint_ScopeAndBreakingMarker(t *testing.T) {
	result := Lint("feat(scope)!: breaking change", Options{})
	assert.True(t, result.Success)
	assert.Empty(t, result.Violations)
}

func TestLint_ExemptMessages(t *testing.T) {
	exempt := []string{
		"Merge pull request #1 from x/y",
		"Revert \"feat: x\"",
		"Bump lodash from 1.0.0 to 1.0.1",
		// A merge header far beyond any length limit is still exempt.
		"Merge branch '" + strings.Repeat("x", 300) + "'",
	}

	for _, msg := range exempt {
		result := Lint(msg, Options{HeaderMaxLength: 10})
		assert.True(t, result.Success, "message %q", msg)
		assert.Empty(t, result.Violations, "message %q", msg)
	}
}

func TestLint_StripCommentsOnlyWhenRequested(t *testing.T) {
	msg := "feat: add login\n# git status output"

	withStrip := Lint(msg, Options{StripComments: true})
	assert.True(t, withStrip.Success)

	withoutStrip := Lint(msg, Options{})
	assert.False(t, withoutStrip.Success)
}

func TestLint_TrimsSurroundingWhitespace(t *testing.T) {
	result := Lint("\n\nfeat: add login\n\n", Options{})
	assert.True(t, result.Success)
}

func TestLint_ConfiguredHeaderMaxLength(t *testing.T) {
	head := "feat: " + strings.Repeat("a", 44)
	require.Len(t, head, 50)

	assert.True(t, Lint(head, Options{HeaderMaxLength: 50}).Success)

	result := Lint(head+"a", Options{HeaderMaxLength: 50})
	require.False(t, result.Success)
	assert.Contains(t, result.Violations[0].Details, "50")
}

func TestLint_Idempotent(t *testing.T) {
	messages := []string{
		"feat: add login",
		"Feat: Add login.",
		"feat: add login\nbody",
		"Merge pull request #1 from x/y",
	}

	for _, msg := range messages {
		for _, opts := range []Options{{}, {SkipDetail: true}, {HeaderMaxLength: 30}} {
			first := Lint(msg, opts)
			second := Lint(msg, opts)
			assert.Equal(t, first, second, "message %q opts %+v", msg, opts)
		}
	}
}
