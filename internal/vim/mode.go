// Package vim implements the modal key interpretation for quill.
//
// The package is pure: it maps (mode, key) to an Action and never touches
// the buffer or the terminal. The editor applies the actions it returns.
package vim

// Mode represents the current vim editing mode.
type Mode int

const (
	// ModeNormal is the default mode for navigation and commands.
	ModeNormal Mode = iota
	// ModeInsert is the mode for inserting text.
	ModeInsert
)

// Modes lists every mode in declaration order.
var Modes = []Mode{ModeNormal, ModeInsert}

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}

// AllowsEnd reports whether the cursor may sit one past the last character,
// the append position.
func (m Mode) AllowsEnd() bool {
	switch m {
	case ModeNormal:
		return false
	case ModeInsert:
		return true
	default:
		return false
	}
}

// CursorStyle is the rendering hint for the terminal cursor shape.
type CursorStyle int

const (
	// CursorBlock is a steady block, used in Normal mode.
	CursorBlock CursorStyle = iota
	// CursorBar is a blinking bar, used in Insert mode.
	CursorBar
)

// String returns the string representation of the cursor style.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	default:
		return "unknown"
	}
}

// CursorStyle returns the cursor shape shown while in mode m.
func (m Mode) CursorStyle() CursorStyle {
	switch m {
	case ModeNormal:
		return CursorBlock
	case ModeInsert:
		return CursorBar
	default:
		return CursorBlock
	}
}
