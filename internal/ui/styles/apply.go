// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Start with default colors
// 2. Apply preset (if specified)
// 3. Apply individual color overrides
// 4. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		if err := ValidateColor(key, value); err != nil {
			return err
		}
		colors[ColorToken(key)] = value
	}

	applyColors(colors)
	rebuildStyles()

	return nil
}

func applyColors(colors map[ColorToken]string) {
	// Same color for both light and dark backgrounds once a theme is chosen.
	makeColor := func(hex string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}

	if c, ok := colors[TokenTextPrimary]; ok {
		TextPrimaryColor = makeColor(c)
	}
	if c, ok := colors[TokenTextMuted]; ok {
		TextMutedColor = makeColor(c)
	}

	if c, ok := colors[TokenModeNormalBg]; ok {
		ModeNormalBgColor = makeColor(c)
	}
	if c, ok := colors[TokenModeNormalFg]; ok {
		ModeNormalFgColor = makeColor(c)
	}
	if c, ok := colors[TokenModeInsertBg]; ok {
		ModeInsertBgColor = makeColor(c)
	}
	if c, ok := colors[TokenModeInsertFg]; ok {
		ModeInsertFgColor = makeColor(c)
	}

	if c, ok := colors[TokenStatusBg]; ok {
		StatusBgColor = makeColor(c)
	}
	if c, ok := colors[TokenStatusFg]; ok {
		StatusFgColor = makeColor(c)
	}
	if c, ok := colors[TokenStatusPosition]; ok {
		StatusPositionColor = makeColor(c)
	}
}

// rebuildStyles recreates every Style from the current color variables.
func rebuildStyles() {
	TextStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	EmptyLineStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	ModeNormalStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).
		Foreground(ModeNormalFgColor).
		Background(ModeNormalBgColor)

	ModeInsertStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).
		Foreground(ModeInsertFgColor).
		Background(ModeInsertBgColor)

	PositionStyle = lipgloss.NewStyle().Padding(0, 1).
		Foreground(ModeNormalFgColor).
		Background(StatusPositionColor)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(StatusFgColor).
		Background(StatusBgColor)

	CursorBlockStyle = lipgloss.NewStyle().Reverse(true)
	CursorBarStyle = lipgloss.NewStyle().Underline(true)
}

// ValidateColor reports whether key is a known token and value a hex color.
func ValidateColor(key, value string) error {
	if !isValidToken(ColorToken(key)) {
		return fmt.Errorf("unknown color token: %s", key)
	}
	if !isValidHexColor(value) {
		return fmt.Errorf("invalid hex color for %s: %s", key, value)
	}
	return nil
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
