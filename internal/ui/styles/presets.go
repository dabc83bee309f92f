// Package styles contains Lip Gloss style definitions.
package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset is the quill color scheme: a lavender mode badge with black
// text over a dark status line.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default quill theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary: "#CCCCCC",
		TokenTextMuted:   "#696969",

		TokenModeNormalBg: "#B490F4",
		TokenModeNormalFg: "#000000",
		TokenModeInsertBg: "#73F59F",
		TokenModeInsertFg: "#000000",

		TokenStatusBg:       "#2D2D2D",
		TokenStatusFg:       "#BBBBBB",
		TokenStatusPosition: "#B890F4",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha palette.
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Soothing pastel theme (dark)",
	Colors: map[ColorToken]string{
		TokenTextPrimary: "#CDD6F4",
		TokenTextMuted:   "#6C7086",

		TokenModeNormalBg: "#CBA6F7",
		TokenModeNormalFg: "#11111B",
		TokenModeInsertBg: "#A6E3A1",
		TokenModeInsertFg: "#11111B",

		TokenStatusBg:       "#313244",
		TokenStatusFg:       "#BAC2DE",
		TokenStatusPosition: "#89B4FA",
	},
}

// DraculaPreset is the Dracula palette.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		TokenTextPrimary: "#F8F8F2",
		TokenTextMuted:   "#6272A4",

		TokenModeNormalBg: "#BD93F9",
		TokenModeNormalFg: "#282A36",
		TokenModeInsertBg: "#50FA7B",
		TokenModeInsertFg: "#282A36",

		TokenStatusBg:       "#44475A",
		TokenStatusFg:       "#F8F8F2",
		TokenStatusPosition: "#FF79C6",
	},
}

// NordPreset is the Nord palette.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Arctic, north-bluish color palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary: "#ECEFF4",
		TokenTextMuted:   "#4C566A",

		TokenModeNormalBg: "#88C0D0",
		TokenModeNormalFg: "#2E3440",
		TokenModeInsertBg: "#A3BE8C",
		TokenModeInsertFg: "#2E3440",

		TokenStatusBg:       "#3B4252",
		TokenStatusFg:       "#D8DEE9",
		TokenStatusPosition: "#81A1C1",
	},
}

// HighContrastPreset maximizes legibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "Maximum contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary: "#FFFFFF",
		TokenTextMuted:   "#AAAAAA",

		TokenModeNormalBg: "#FFFF00",
		TokenModeNormalFg: "#000000",
		TokenModeInsertBg: "#00FF00",
		TokenModeInsertFg: "#000000",

		TokenStatusBg:       "#000000",
		TokenStatusFg:       "#FFFFFF",
		TokenStatusPosition: "#00FFFF",
	},
}
