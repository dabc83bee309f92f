// Package input defines the events the editor core consumes.
//
// Key names follow bubbletea's tea.KeyMsg.String() spelling ("left",
// "ctrl+right", "esc", ...) so the same keymap serves both the raw terminal
// host and the bubbletea host.
package input

import "unicode"

// Named keys.
const (
	KeyUp        = "up"
	KeyDown      = "down"
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyCtrlLeft  = "ctrl+left"
	KeyCtrlRight = "ctrl+right"
	KeyEnter     = "enter"
	KeyBackspace = "backspace"
	KeyDelete    = "delete"
	KeyEscape    = "esc"
	KeyTab       = "tab"
	KeyCtrlC     = "ctrl+c"
)

// Event is anything the input source can produce. The set is closed:
// KeyEvent and ResizeEvent are the only implementations.
type Event interface {
	isEvent()
}

// KeyEvent is a single keystroke.
type KeyEvent struct {
	// Name is the key name: a named key constant, or the character itself
	// for printable keys.
	Name string
	// Rune is the typed character for printable keys, 0 otherwise.
	Rune rune
}

// ResizeEvent reports new terminal dimensions in cells.
type ResizeEvent struct {
	Width  int
	Height int
}

func (KeyEvent) isEvent()    {}
func (ResizeEvent) isEvent() {}

// Key returns the event for a named key.
func Key(name string) KeyEvent {
	return KeyEvent{Name: name}
}

// Char returns the event for a printable character.
func Char(r rune) KeyEvent {
	return KeyEvent{Name: string(r), Rune: r}
}

// Printable reports whether the event carries a character to insert.
func (k KeyEvent) Printable() bool {
	return k.Rune != 0 && unicode.IsPrint(k.Rune)
}

// String returns the key name.
func (k KeyEvent) String() string {
	return k.Name
}
