// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text
	TokenTextPrimary ColorToken = "text.primary"
	TokenTextMuted   ColorToken = "text.muted"

	// Mode badges
	TokenModeNormalBg ColorToken = "mode.normal.bg"
	TokenModeNormalFg ColorToken = "mode.normal.fg"
	TokenModeInsertBg ColorToken = "mode.insert.bg"
	TokenModeInsertFg ColorToken = "mode.insert.fg"

	// Status line
	TokenStatusBg       ColorToken = "status.bg"
	TokenStatusFg       ColorToken = "status.fg"
	TokenStatusPosition ColorToken = "status.position"
)

// AllTokens returns all color tokens in declaration order.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextMuted,
		TokenModeNormalBg,
		TokenModeNormalFg,
		TokenModeInsertBg,
		TokenModeInsertFg,
		TokenStatusBg,
		TokenStatusFg,
		TokenStatusPosition,
	}
}
