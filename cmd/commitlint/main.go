// Package main provides the commitlint command-line interface: it checks
// commit messages against the Conventional Commits format.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "commitlint [message]",
	Short: "Check commit messages against the Conventional Commits format",
	Long: `commitlint validates commit messages against the Conventional Commits
specification and reports every violation at once.

The message can be given directly, read from a file, or resolved from a
commit hash or hash range via git.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runLint,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		// Violations are already printed by the lint handlers.
		if !errors.Is(err, errLintFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
