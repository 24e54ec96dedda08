// Package git resolves commit hashes to their full message text by invoking
// the git binary. The linting core never depends on this package; the CLI
// consumes it through the MessageReader interface so tests can substitute
// fakes.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// commandTimeout is the maximum time to wait for a single git invocation
	commandTimeout = 30 * time.Second
	// maxConcurrentReads bounds the fan-out when resolving a hash range
	maxConcurrentReads = 8
)

// MessageReader resolves commit hashes to commit message text.
type MessageReader interface {
	// CommitMessage returns the full message of a single commit.
	CommitMessage(ctx context.Context, hash string) (string, error)
	// CommitMessages returns the messages of every commit in (from, to],
	// oldest first.
	CommitMessages(ctx context.Context, from, to string) ([]string, error)
}

// Client runs git in a working directory. The zero value runs git in the
// current directory.
type Client struct {
	// Dir is the repository directory; empty means the current directory.
	Dir string
}

// NewClient creates a Client for the given repository directory.
func NewClient(dir string) *Client {
	return &Client{Dir: dir}
}

// CommandError represents a failed git invocation
type CommandError struct {
	Args   []string
	Stderr string
	Cause  error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s failed", strings.Join(e.Args, " "))
	if e.Stderr != "" {
		msg += ": " + strings.TrimSpace(e.Stderr)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Cause
}

// CommitMessage returns the full commit message of hash.
func (c *Client) CommitMessage(ctx context.Context, hash string) (string, error) {
	out, err := c.run(ctx, "log", "-1", "--pretty=format:%B", hash)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CommitMessages returns the messages of commits in (from, to], oldest
// first. Messages are fetched concurrently but returned in commit order.
func (c *Client) CommitMessages(ctx context.Context, from, to string) ([]string, error) {
	out, err := c.run(ctx, "rev-list", "--reverse", from+".."+to)
	if err != nil {
		return nil, err
	}

	hashes := splitLines(out)
	messages := make([]string, len(hashes))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, hash := range hashes {
		i, hash := i, hash
		g.Go(func() error {
			msg, err := c.CommitMessage(gCtx, hash)
			if err != nil {
				return err
			}
			messages[i] = msg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return messages, nil
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return "", &CommandError{Args: args, Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.Dir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{Args: args, Stderr: stderr.String(), Cause: err}
	}

	return stdout.String(), nil
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
