// Package keys contains keybinding definitions.
//
// Bindings are the single source of truth for the modal keymaps: the vim
// package builds its dispatch registry from them, and `quill keys` prints
// their FullHelp.
package keys

import "github.com/charmbracelet/bubbles/key"

// NormalKeyMap holds the Normal mode bindings.
type NormalKeyMap struct {
	// Navigation
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	LineStart key.Binding
	LineEnd   key.Binding

	// Mode
	Insert key.Binding

	// General
	Quit key.Binding
}

// InsertKeyMap holds the Insert mode bindings. Printable characters are not
// bound; they fall through to character insertion.
type InsertKeyMap struct {
	// Navigation
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding

	// Editing
	Backspace key.Binding
	Delete    key.Binding
	Enter     key.Binding

	// Mode
	Escape key.Binding
}

// Normal is the Normal mode keymap.
var Normal = NormalKeyMap{
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "move left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "move right"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	LineStart: key.NewBinding(
		key.WithKeys("0", "ctrl+left"),
		key.WithHelp("0", "line start"),
	),
	LineEnd: key.NewBinding(
		key.WithKeys("$", "ctrl+right"),
		key.WithHelp("$", "line end"),
	),
	Insert: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "insert mode"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

// Insert is the Insert mode keymap.
var Insert = InsertKeyMap{
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "move left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "move right"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "move down"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("backspace", "delete left"),
	),
	Delete: key.NewBinding(
		key.WithKeys("delete"),
		key.WithHelp("del", "delete under cursor"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "split line"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "normal mode"),
	),
}

// ShortHelp returns keybindings for the short help view.
func (k NormalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Insert, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k NormalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.LineStart, k.LineEnd},
		{k.Insert, k.Quit},
	}
}

// ShortHelp returns keybindings for the short help view.
func (k InsertKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Escape}
}

// FullHelp returns keybindings for the full help view.
func (k InsertKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Backspace, k.Delete, k.Enter},
		{k.Escape},
	}
}
