// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Empty-line markers

	// Mode badges
	ModeNormalBgColor = lipgloss.AdaptiveColor{Light: "#B490F4", Dark: "#B490F4"}
	ModeNormalFgColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#000000"}
	ModeInsertBgColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ModeInsertFgColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#000000"}

	// Status line
	StatusBgColor       = lipgloss.AdaptiveColor{Light: "#E4E4E4", Dark: "#2D2D2D"}
	StatusFgColor       = lipgloss.AdaptiveColor{Light: "#444444", Dark: "#BBBBBB"}
	StatusPositionColor = lipgloss.AdaptiveColor{Light: "#B890F4", Dark: "#B890F4"}

	TextStyle      = lipgloss.NewStyle().Foreground(TextPrimaryColor)
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

	// Drawn cursors, for hosts that cannot place the terminal cursor
	CursorBlockStyle = lipgloss.NewStyle().Reverse(true)
	CursorBarStyle   = lipgloss.NewStyle().Underline(true)
)
