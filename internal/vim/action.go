package vim

import "fmt"

// ActionKind enumerates everything a keystroke can ask the editor to do.
type ActionKind int

const (
	Quit ActionKind = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	MoveToLineStart
	MoveToLineEnd
	SetMode
	InsertChar
	DeleteBackward
	DeleteForward
	SplitLine
)

// ActionKinds lists every kind in declaration order.
var ActionKinds = []ActionKind{
	Quit, MoveUp, MoveDown, MoveLeft, MoveRight, MoveToLineStart, MoveToLineEnd,
	SetMode, InsertChar, DeleteBackward, DeleteForward, SplitLine,
}

// String returns a dotted identifier used in logs and trace attributes.
func (k ActionKind) String() string {
	switch k {
	case Quit:
		return "quit"
	case MoveUp:
		return "move.up"
	case MoveDown:
		return "move.down"
	case MoveLeft:
		return "move.left"
	case MoveRight:
		return "move.right"
	case MoveToLineStart:
		return "move.line_start"
	case MoveToLineEnd:
		return "move.line_end"
	case SetMode:
		return "mode.set"
	case InsertChar:
		return "insert.char"
	case DeleteBackward:
		return "delete.backward"
	case DeleteForward:
		return "delete.forward"
	case SplitLine:
		return "insert.newline"
	default:
		return "unknown"
	}
}

// Action is a single command produced by interpreting one key.
// Mode is set only for SetMode, Char only for InsertChar.
type Action struct {
	Kind ActionKind
	Mode Mode
	Char rune
}

// Do returns an action that carries no payload.
func Do(kind ActionKind) Action {
	return Action{Kind: kind}
}

// Enter returns the action switching to mode m.
func Enter(m Mode) Action {
	return Action{Kind: SetMode, Mode: m}
}

// Insert returns the action inserting ch at the cursor.
func Insert(ch rune) Action {
	return Action{Kind: InsertChar, Char: ch}
}

// Next returns the mode in effect after a is applied in mode cur.
func (a Action) Next(cur Mode) Mode {
	if a.Kind == SetMode {
		return a.Mode
	}
	return cur
}

// String formats the action for logs.
func (a Action) String() string {
	switch a.Kind {
	case SetMode:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Mode)
	case InsertChar:
		return fmt.Sprintf("%s(%q)", a.Kind, a.Char)
	default:
		return a.Kind.String()
	}
}
