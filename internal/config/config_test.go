// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers YAML loading, env var expansion, and duration parsing

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/storywizard.db
session:
  secret: s3cret
gemini:
  api_key: test-key
  model: gemini-2.5-flash
editor:
  autosave_debounce: 1500ms
locale: ar
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/storywizard.db", cfg.Database.Path)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, 1500*time.Millisecond, cfg.Editor.AutosaveDebounce)
	assert.Equal(t, "ar", cfg.Locale)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("SW_TEST_API_KEY", "from-env")
	path := writeConfig(t, `
gemini:
  api_key: ${SW_TEST_API_KEY}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Gemini.APIKey)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `{}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Database.Path)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, time.Second, cfg.Editor.AutosaveDebounce)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := writeConfig(t, `
editor:
  autosave_debounce: soon
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefaultReadsAPIKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := Default()
	assert.Equal(t, "env-key", cfg.Gemini.APIKey)
	assert.Equal(t, "en", cfg.Locale)
}
