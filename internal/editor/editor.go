// Package editor owns the editing state and drives the render/event loop.
package editor

import (
	"errors"
	"fmt"

	"github.com/zjrosen/quill/internal/buffer"
	"github.com/zjrosen/quill/internal/input"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/render"
	"github.com/zjrosen/quill/internal/viewport"
	"github.com/zjrosen/quill/internal/vim"
)

// StatusLines is the number of terminal rows reserved below the text.
const StatusLines = 1

// Editor is the single owner of buffer, viewport, cursor and mode.
type Editor struct {
	win     *viewport.Window
	mode    vim.Mode
	machine *vim.Machine
	quit    bool
}

// New creates an editor over buf for a terminal of the given size.
func New(buf *buffer.Buffer, termWidth, termHeight int) *Editor {
	return &Editor{
		win:     viewport.New(buf, termWidth, textRows(termHeight)),
		mode:    vim.ModeNormal,
		machine: vim.NewMachine(nil),
	}
}

func textRows(termHeight int) int {
	return max(termHeight-StatusLines, 0)
}

// Mode returns the current mode.
func (e *Editor) Mode() vim.Mode { return e.mode }

// Window returns the editor's window.
func (e *Editor) Window() *viewport.Window { return e.win }

// Buffer returns the document being edited.
func (e *Editor) Buffer() *buffer.Buffer { return e.win.Buffer() }

// Quitting reports whether a Quit action has been applied.
func (e *Editor) Quitting() bool { return e.quit }

// Clamp runs the boundary pass for the current mode.
func (e *Editor) Clamp() {
	e.win.Clamp(e.mode.AllowsEnd())
}

// Frame clamps and snapshots the screen.
func (e *Editor) Frame() render.Frame {
	e.Clamp()
	return render.Build(e.win, e.mode)
}

// HandleEvent dispatches one input event. Resize events update the window
// in any mode and produce no action. The returned bool reports whether an
// action was applied.
func (e *Editor) HandleEvent(ev input.Event) (vim.Action, bool, error) {
	switch ev := ev.(type) {
	case input.ResizeEvent:
		e.win.Resize(ev.Width, textRows(ev.Height))
		return vim.Action{}, false, nil
	case input.KeyEvent:
		a, ok := e.machine.Interpret(e.mode, ev)
		if !ok {
			return vim.Action{}, false, nil
		}
		return a, true, e.Apply(a)
	default:
		return vim.Action{}, false, fmt.Errorf("unknown event %T", ev)
	}
}

// Apply performs a on the editor state.
func (e *Editor) Apply(a vim.Action) error {
	allowEnd := e.mode.AllowsEnd()
	buf := e.win.Buffer()
	line, col := e.win.Line(), e.win.Cursor().Col

	switch a.Kind {
	case vim.Quit:
		e.quit = true
	case vim.MoveUp:
		e.win.MoveUp()
	case vim.MoveDown:
		e.win.MoveDown()
	case vim.MoveLeft:
		e.win.MoveLeft()
	case vim.MoveRight:
		e.win.MoveRight(allowEnd)
	case vim.MoveToLineStart:
		e.win.MoveToLineStart()
	case vim.MoveToLineEnd:
		e.win.MoveToLineEnd(allowEnd)
	case vim.SetMode:
		if a.Mode != e.mode {
			log.Debug(log.CatMode, "Mode change", "from", e.mode, "to", a.Mode)
		}
		e.mode = a.Mode
		e.Clamp()
	case vim.InsertChar:
		if w := e.win.Viewport().Width; w > 0 && col >= w-1 && col < buf.LineLen(line) {
			// The cursor cannot pass the last column, so a further insert
			// would land before the previous one.
			log.Debug(log.CatMode, "Insert at last column ignored", "line", line, "col", col)
			return nil
		}
		if err := buf.InsertChar(line, col, a.Char); err != nil {
			return e.editFailed(a, err)
		}
		e.win.SetColumn(col + 1)
	case vim.DeleteBackward:
		if col == 0 {
			return nil
		}
		if err := buf.DeleteChar(line, col-1); err != nil {
			return e.editFailed(a, err)
		}
		e.win.SetColumn(col - 1)
	case vim.DeleteForward:
		if col >= buf.LineLen(line) {
			return nil
		}
		if err := buf.DeleteChar(line, col); err != nil {
			return e.editFailed(a, err)
		}
	case vim.SplitLine:
		if err := buf.SplitLine(line, col); err != nil {
			return e.editFailed(a, err)
		}
		e.win.NextLineStart()
	default:
		return fmt.Errorf("unhandled action %s", a)
	}
	return nil
}

func (e *Editor) editFailed(a vim.Action, err error) error {
	if errors.Is(err, buffer.ErrOutOfBounds) {
		return outOfBounds(fmt.Errorf("%s at line %d: %w", a, e.win.Line(), err))
	}
	return err
}
