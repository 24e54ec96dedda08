// Package config provides configuration loading and validation for the CLI.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, `{"header_max_length": 50, "skip_detail": true, "verbose": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.HeaderMaxLength)
	assert.True(t, cfg.SkipDetail)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Quiet)
}

func TestLoadConfig_EmptyObjectUsesZeroValues(t *testing.T) {
	path := writeConfig(t, `{}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.HeaderMaxLength)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"header_max_length":`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RejectsNonIntegerHeaderMaxLength(t *testing.T) {
	path := writeConfig(t, `{"header_max_length": "seventy-two"}`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_RejectsNegativeHeaderMaxLength(t *testing.T) {
	cfg := &Config{HeaderMaxLength: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_AcceptsZeroAsUnset(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestHeaderMaxLengthFromEnv(t *testing.T) {
	t.Setenv(HeaderMaxLengthEnv, "100")
	n, ok := HeaderMaxLengthFromEnv()
	assert.True(t, ok)
	assert.Equal(t, 100, n)
}

func TestHeaderMaxLengthFromEnv_Unset(t *testing.T) {
	t.Setenv(HeaderMaxLengthEnv, "")
	_, ok := HeaderMaxLengthFromEnv()
	assert.False(t, ok)
}

func TestHeaderMaxLengthFromEnv_Invalid(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-5", "7.5"} {
		t.Setenv(HeaderMaxLengthEnv, raw)
		_, ok := HeaderMaxLengthFromEnv()
		assert.False(t, ok, "value %q", raw)
	}
}
