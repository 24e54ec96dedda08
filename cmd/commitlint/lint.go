package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/commitlint/internal/config"
	"github.com/jonathan/commitlint/internal/console"
	"github.com/jonathan/commitlint/internal/git"
	"github.com/jonathan/commitlint/internal/linter"
	"github.com/jonathan/commitlint/internal/message"
	"github.com/jonathan/commitlint/internal/rules"
	"github.com/jonathan/commitlint/internal/types"
	"github.com/spf13/cobra"
)

// errLintFailed signals violations that have already been reported; main
// maps it to exit code 1 without an extra error line.
var errLintFailed = errors.New("commit validation failed")

var (
	lintConfigPath      string
	lintFile            string
	lintHash            string
	lintFromHash        string
	lintToHash          string
	lintSkipDetail      bool
	lintHideInput       bool
	lintQuiet           bool
	lintVerbose         bool
	lintHeaderMaxLength int
)

// messageReader is swapped for a fake in tests.
var messageReader git.MessageReader = git.NewClient("")

func init() {
	rootCmd.Flags().StringVar(&lintConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	rootCmd.Flags().StringVar(&lintFile, "file", "", "Path to a file containing the commit message")
	rootCmd.Flags().StringVar(&lintHash, "hash", "", "Commit hash to check")
	rootCmd.Flags().StringVar(&lintFromHash, "from-hash", "", "Check every commit after this hash")
	rootCmd.Flags().StringVar(&lintToHash, "to-hash", "HEAD", "Upper bound of the hash range")

	rootCmd.Flags().BoolVar(&lintSkipDetail, "skip-detail", false, "Skip the detailed error message check")
	rootCmd.Flags().BoolVar(&lintHideInput, "hide-input", false, "Hide the commit message from the output")
	rootCmd.Flags().BoolVarP(&lintQuiet, "quiet", "q", false, "Suppress all output")
	rootCmd.Flags().BoolVarP(&lintVerbose, "verbose", "v", false, "Print progress details while linting")
	rootCmd.Flags().IntVar(&lintHeaderMaxLength, "header-max-length", rules.DefaultHeaderMaxLength,
		fmt.Sprintf("Maximum allowed length for commit headers (default %d)", rules.DefaultHeaderMaxLength))

	rootCmd.MarkFlagsMutuallyExclusive("file", "hash", "from-hash")
	rootCmd.MarkFlagsMutuallyExclusive("quiet", "verbose")
}

// lintSettings is the fully merged configuration for one invocation:
// explicit flags override the config file, which overrides the environment,
// which overrides defaults.
type lintSettings struct {
	headerMaxLength int
	skipDetail      bool
	hideInput       bool
	quiet           bool
	verbose         bool
}

func resolveSettings(cmd *cobra.Command, cfg *config.Config) lintSettings {
	s := lintSettings{
		headerMaxLength: rules.DefaultHeaderMaxLength,
		skipDetail:      lintSkipDetail,
		hideInput:       lintHideInput,
		quiet:           lintQuiet,
		verbose:         lintVerbose,
	}

	if n, ok := config.HeaderMaxLengthFromEnv(); ok {
		s.headerMaxLength = n
	}

	if cfg != nil {
		if cfg.HeaderMaxLength > 0 {
			s.headerMaxLength = cfg.HeaderMaxLength
		}
		if !cmd.Flags().Changed("skip-detail") {
			s.skipDetail = s.skipDetail || cfg.SkipDetail
		}
		if !cmd.Flags().Changed("quiet") {
			s.quiet = s.quiet || cfg.Quiet
		}
		if !cmd.Flags().Changed("verbose") {
			s.verbose = s.verbose || cfg.Verbose
		}
	}

	if cmd.Flags().Changed("header-max-length") {
		s.headerMaxLength = lintHeaderMaxLength
	}

	return s
}

func runLint(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	if lintConfigPath != "" {
		loaded, err := config.LoadConfig(lintConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	settings := resolveSettings(cmd, cfg)
	printer := console.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), settings.quiet, settings.verbose)

	ctx := context.Background()

	switch {
	case lintFile != "":
		printer.Verbose("commit message source: file %s", lintFile)
		data, err := os.ReadFile(lintFile)
		if err != nil {
			return fmt.Errorf("failed to read commit message file: %w", err)
		}
		return lintOne(printer, string(data), settings, true)

	case lintHash != "":
		printer.Verbose("commit message source: hash %s", lintHash)
		msg, err := messageReader.CommitMessage(ctx, lintHash)
		if err != nil {
			return err
		}
		return lintOne(printer, msg, settings, false)

	case lintFromHash != "":
		printer.Verbose("commit message source: hash range %s..%s", lintFromHash, lintToHash)
		msgs, err := messageReader.CommitMessages(ctx, lintFromHash, lintToHash)
		if err != nil {
			return err
		}
		return lintMany(printer, msgs, settings)

	case len(args) == 1:
		printer.Verbose("commit message source: direct message")
		return lintOne(printer, args[0], settings, false)

	default:
		return fmt.Errorf("a commit message, --file, --hash or --from-hash is required")
	}
}

// lintOne checks a single commit message and reports the result.
// stripComments is set only for messages read from a file.
func lintOne(printer *console.Printer, commitMessage string, settings lintSettings, stripComments bool) error {
	result := linter.Lint(commitMessage, linter.Options{
		HeaderMaxLength: settings.headerMaxLength,
		SkipDetail:      settings.skipDetail,
		StripComments:   stripComments,
	})

	if result.Success {
		printer.Success("Commit validation: successful!")
		return nil
	}

	showViolations(printer, commitMessage, result, settings)
	return errLintFailed
}

// lintMany checks an ordered sequence of commit messages, reporting every
// failing message before returning.
func lintMany(printer *console.Printer, commitMessages []string, settings lintSettings) error {
	failed := false

	for _, commitMessage := range commitMessages {
		result := linter.Lint(commitMessage, linter.Options{
			HeaderMaxLength: settings.headerMaxLength,
			SkipDetail:      settings.skipDetail,
		})
		if result.Success {
			printer.Verbose("lint success")
			continue
		}

		failed = true
		showViolations(printer, commitMessage, result, settings)
		printer.Error("")
	}

	if failed {
		return errLintFailed
	}

	printer.Success("Commit validation: successful!")
	return nil
}

func showViolations(printer *console.Printer, commitMessage string, result types.LintResult, settings lintSettings) {
	if !settings.hideInput {
		printer.Error("⧗ Input:\n%s\n", message.StripDiff(strings.TrimSpace(commitMessage)))
	}

	if settings.skipDetail {
		printer.Error("Commit validation: failed!")
		return
	}

	printer.Error("✖ Found %d error(s).", len(result.Violations))
	for _, violation := range result.Violations {
		printer.Error("- %s", violation.Details)
	}
}
