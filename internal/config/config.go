// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/commitlint/internal/schemas"
)

// HeaderMaxLengthEnv is the environment variable holding the header length
// limit. A --header-max-length flag and a config file value both take
// precedence over it.
const HeaderMaxLengthEnv = "COMMIT_HEADER_MAX_LENGTH"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or come from CLI flags.
type Config struct {
	HeaderMaxLength int  `json:"header_max_length,omitempty" validate:"omitempty,min=1"` // Maximum commit header length
	SkipDetail      bool `json:"skip_detail,omitempty"`                                   // Report one generic failure instead of per-rule details
	Quiet           bool `json:"quiet,omitempty"`                                         // Suppress all output
	Verbose         bool `json:"verbose,omitempty"`                                       // Print progress details while linting
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file. The raw content is
// checked against the config schema before unmarshalling, then the parsed
// values are validated. Returns an error if the file cannot be read, fails
// schema validation, or holds invalid values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := schemas.ValidateConfig(data); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration holds valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// HeaderMaxLengthFromEnv reads the header length limit from the environment.
// ok is false when the variable is unset, empty, or not a positive integer.
func HeaderMaxLengthFromEnv() (length int, ok bool) {
	raw := os.Getenv(HeaderMaxLengthEnv)
	if raw == "" {
		return 0, false
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
