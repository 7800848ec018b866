// ABOUTME: Configuration loading and parsing for storywizard
// ABOUTME: Supports YAML files with environment variable expansion and duration parsing

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete storywizard configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	Editor   EditorConfig   `yaml:"editor"`
	Locale   string         `yaml:"locale"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DatabaseConfig holds the key-value store location.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// SessionConfig holds session token signing configuration.
type SessionConfig struct {
	Secret string `yaml:"secret"`
}

// GeminiConfig holds the generative-AI gateway configuration. An empty API
// key disables generation features rather than failing startup.
type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// EditorConfig holds manuscript editor tuning.
type EditorConfig struct {
	AutosaveDebounce time.Duration `yaml:"-"`

	// Raw string value for YAML unmarshaling
	AutosaveDebounceRaw string `yaml:"autosave_debounce"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a configuration file from the given path and returns a parsed
// Config. Environment variables in the format ${VAR_NAME} are expanded.
// Duration strings are parsed into time.Duration values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file exists: state
// under the user config dir, English locale, generation disabled unless an
// API key arrives via GEMINI_API_KEY.
func Default() *Config {
	cfg := &Config{
		Gemini: GeminiConfig{APIKey: os.Getenv("GEMINI_API_KEY")},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Database.Path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		c.Database.Path = filepath.Join(base, "storywizard", "storywizard.db")
	}
	if c.Session.Secret == "" {
		c.Session.Secret = "storywizard-local-session"
	}
	if c.Locale == "" {
		c.Locale = "en"
	}
	if c.Editor.AutosaveDebounce == 0 {
		c.Editor.AutosaveDebounce = time.Second
	}
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding
// environment variable values. Unset variables expand to the empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all required configuration fields are present and
// valid. Returns an error describing the first validation failure
// encountered.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Editor.AutosaveDebounce < 0 {
		return fmt.Errorf("editor.autosave_debounce must not be negative")
	}
	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	var err error

	if cfg.Editor.AutosaveDebounceRaw != "" {
		cfg.Editor.AutosaveDebounce, err = time.ParseDuration(cfg.Editor.AutosaveDebounceRaw)
		if err != nil {
			return fmt.Errorf("parsing autosave_debounce %q: %w", cfg.Editor.AutosaveDebounceRaw, err)
		}
	}

	return nil
}
