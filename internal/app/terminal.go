package app

import (
	"io"
	"os"

	"github.com/zjrosen/quill/internal/editor"
	"github.com/zjrosen/quill/internal/term"
)

// Terminal is what the term host needs from a raw terminal.
type Terminal interface {
	// Size returns the terminal dimensions in cells.
	Size() (width, height int, err error)
	// Acquire enters raw mode and returns the guard that undoes it.
	Acquire() (Guard, error)
	// Source returns the event source for the session.
	Source() EventSource
	// Output is where frames are drawn.
	Output() io.Writer
}

// Guard restores a terminal. Release must be safe to call more than once.
type Guard interface {
	Release() error
}

// EventSource is an editor.Source that holds resources until closed.
type EventSource interface {
	editor.Source
	Close()
}

// TTY is the Terminal backed by real file descriptors.
type TTY struct {
	in  *os.File
	out *os.File
}

// NewTTY returns a Terminal reading keys from in and drawing on out.
func NewTTY(in, out *os.File) *TTY {
	return &TTY{in: in, out: out}
}

// Size implements Terminal.
func (t *TTY) Size() (int, int, error) { return term.Size(t.out) }

// Acquire implements Terminal.
func (t *TTY) Acquire() (Guard, error) {
	g, err := term.Acquire(t.in, t.out)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Source implements Terminal.
func (t *TTY) Source() EventSource { return term.NewSource(t.in, t.out) }

// Output implements Terminal.
func (t *TTY) Output() io.Writer { return t.out }
