// Package message provides commit message preprocessing: stripping diff and
// comment content and splitting a message into its header and body.
package message

import "strings"

// diffMarker introduces the patch block git appends to a commit message
// when committing with --verbose.
const diffMarker = "diff --git"

// commentPrefix marks git comment lines in a COMMIT_EDITMSG-style file.
const commentPrefix = "#"

// StripDiff removes everything from the first diff marker line onward.
// Used only when echoing the input back to the user; linting always
// operates on the original message.
func StripDiff(commitMessage string) string {
	lines := strings.Split(commitMessage, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, diffMarker) {
			return strings.TrimSpace(strings.Join(lines[:i], "\n"))
		}
	}
	return commitMessage
}

// StripComments removes lines beginning with "#". Applied only to messages
// read from a file; inline and hash-resolved messages are already clean.
func StripComments(commitMessage string) string {
	lines := strings.Split(commitMessage, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, commentPrefix) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// SplitHeaderBody splits a message into its header (the first line) and the
// rest, with leading blank lines of the rest trimmed. A message without a
// line break has an empty rest.
func SplitHeaderBody(commitMessage string) (header, rest string) {
	header, rest, found := strings.Cut(commitMessage, "\n")
	if !found {
		return header, ""
	}
	return header, strings.TrimLeft(rest, "\n")
}
