// Package patterns holds the Conventional Commits type vocabulary and the
// exemption patterns for merge, revert and automated dependency-bump commits.
package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExempt_MergeAndRevertMessages(t *testing.T) {
	exempt := []string{
		"Merge pull request #1 from x/y",
		"Merge feature-branch into main",
		"Merge branch 'develop'",
		"Merge tag 'v1.2.0'",
		"Revert \"feat: x\"",
		"revert previous commit",
		"Merged feature in main",
		"Merged PR 123: fix the thing",
		"Merge remote-tracking branch 'origin/main'",
		"Automatic merge from main",
		"Auto-merged develop into main",
	}

	for _, msg := range exempt {
		assert.True(t, IsExempt(msg), "expected exempt: %q", msg)
	}
}

func TestIsExempt_BumpMessages(t *testing.T) {
	assert.True(t, IsExempt("Bump lodash from 1.0.0 to 1.0.1"))
	assert.True(t, IsExempt("bump actions/checkout from 3 to 4"))
	assert.True(t, IsExempt("chore: Bump pkg from 1.0 to 2.0"))
}

func TestIsExempt_NormalMessagesAreNotExempt(t *testing.T) {
	notExempt := []string{
		"feat: add login",
		"fix(api): handle timeout",
		"Merge",
		"update merge logic",
		"bump the version",
	}

	for _, msg := range notExempt {
		assert.False(t, IsExempt(msg), "expected not exempt: %q", msg)
	}
}

func TestIsExempt_NormalizesWhitespace(t *testing.T) {
	assert.True(t, IsExempt("  Merge pull request #1 from x/y\n"))
}

func TestIsValidType(t *testing.T) {
	for _, valid := range Types {
		assert.True(t, IsValidType(valid))
	}

	assert.False(t, IsValidType("Feat"))
	assert.False(t, IsValidType("feature"))
	assert.False(t, IsValidType(""))
}

func TestTypeList_PreservesOrder(t *testing.T) {
	assert.Equal(t, "build, ci, docs, feat, fix, perf, refactor, style, test, chore, revert, bump", TypeList())
}
