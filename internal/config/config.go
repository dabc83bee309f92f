// Package config handles quill configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/tracing"
	"github.com/zjrosen/quill/internal/ui/styles"
)

// Host names accepted in Config.Host.
const (
	HostTerm = "term"
	HostTea  = "tea"
)

// Config holds all quill configuration.
type Config struct {
	// Debug enables file logging. Also enabled by QUILL_DEBUG.
	Debug bool `mapstructure:"debug"`

	// LogFile is where debug logs are written.
	// Default: debug.log
	LogFile string `mapstructure:"log_file"`

	// LogLevel is the lowest level written: debug, info, warn or error.
	// Default: debug
	LogLevel string `mapstructure:"log_level"`

	// Host selects the terminal driver: "term" (raw mode, direct escape
	// sequences) or "tea" (bubbletea program).
	// Default: term
	Host string `mapstructure:"host"`

	Theme   ThemeConfig    `mapstructure:"theme"`
	Tracing tracing.Config `mapstructure:"tracing"`
}

// ThemeConfig holds theme customization settings.
type ThemeConfig struct {
	// Preset is the name of a built-in theme preset.
	Preset string `mapstructure:"preset"`

	// Colors overrides individual color tokens. Nested maps are allowed,
	// so `status: {bg: "#000000"}` is the same as `status.bg: "#000000"`.
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns Colors with nested keys joined by dots.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// Styles converts the theme into the form the styles package applies.
func (t ThemeConfig) Styles() styles.ThemeConfig {
	return styles.ThemeConfig{
		Preset: t.Preset,
		Colors: t.FlattenedColors(),
	}
}

// DefaultTracesFilePath returns ~/.config/quill/traces/traces.jsonl, or an
// empty string if the home directory is unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "quill", "traces", "traces.jsonl")
}

// ValidateHost checks that host names a known terminal driver.
func ValidateHost(host string) error {
	switch host {
	case "", HostTerm, HostTea:
		return nil
	default:
		return fmt.Errorf("host must be %q or %q, got %q", HostTerm, HostTea, host)
	}
}

// ValidateTheme checks the preset and every color override.
func ValidateTheme(theme ThemeConfig) error {
	if theme.Preset != "" && theme.Preset != "default" {
		if _, ok := styles.Presets[theme.Preset]; !ok {
			return fmt.Errorf("theme.preset %q is not a known preset", theme.Preset)
		}
	}
	for key, value := range theme.FlattenedColors() {
		if err := styles.ValidateColor(key, value); err != nil {
			return fmt.Errorf("theme.colors: %w", err)
		}
	}
	return nil
}

// ValidateTracing checks tracing configuration.
func ValidateTracing(tc tracing.Config) error {
	if tc.SampleRate < 0.0 || tc.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tc.SampleRate)
	}

	if tc.Exporter != "" {
		switch tc.Exporter {
		case tracing.ExporterNone, tracing.ExporterFile, tracing.ExporterStdout, tracing.ExporterOTLP:
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tc.Exporter)
		}
	}

	// Path requirements only matter once tracing is on.
	if tc.Enabled {
		if tc.Exporter == tracing.ExporterFile && tc.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tc.Exporter == tracing.ExporterOTLP && tc.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if err := ValidateHost(c.Host); err != nil {
		return err
	}
	if err := ValidateTheme(c.Theme); err != nil {
		return err
	}
	return ValidateTracing(c.Tracing)
}

// Defaults returns the default configuration.
func Defaults() Config {
	tc := tracing.DefaultConfig()
	tc.FilePath = DefaultTracesFilePath()

	return Config{
		Debug:    false,
		LogFile:  "debug.log",
		LogLevel: "debug",
		Host:     HostTerm,
		Theme: ThemeConfig{
			Preset: "default",
		},
		Tracing: tc,
	}
}

// DefaultConfigTemplate returns the commented YAML written for new users.
func DefaultConfigTemplate() string {
	return `# Quill Configuration

# Write debug logs (same as --debug or QUILL_DEBUG=1)
debug: false
log_file: debug.log
log_level: debug        # debug, info, warn, error

# Terminal driver:
#   term - raw mode with direct escape sequences (default)
#   tea  - bubbletea program
host: term

# Theme configuration
theme:
  # Run 'quill themes' to see available presets:
  #   default           - Default quill theme
  #   catppuccin-mocha  - Warm, cozy dark theme
  #   dracula           - Dark theme with vibrant colors
  #   nord              - Arctic, north-bluish palette
  #   high-contrast     - High contrast for accessibility
  preset: default
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   mode.normal.bg: "#B490F4"
  #   mode.insert.bg: "#73F59F"
  #   status.position: "#FFFFFF"

# OpenTelemetry tracing of editor sessions
tracing:
  enabled: false
  exporter: file          # none, file, stdout, otlp
  # file_path: ~/.config/quill/traces/traces.jsonl
  otlp_endpoint: localhost:4317
  sample_rate: 1.0
`
}

// WriteDefaultConfig creates a config file with default settings.
// Creates parent directories if they don't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
