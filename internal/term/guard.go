// Package term hosts the editor directly on a raw-mode terminal.
package term

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/x/ansi"
	xterm "golang.org/x/term"

	"github.com/zjrosen/quill/internal/log"
)

// ErrNotTerminal is returned when the input is not an interactive terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Guard holds the terminal in raw mode on the alternate screen. Release
// restores the original state exactly once, however many times it is called.
type Guard struct {
	fd  int
	out io.Writer

	state   *xterm.State
	restore func(fd int, state *xterm.State) error

	once sync.Once
	err  error
}

// Acquire switches in to raw mode and enters the alternate screen on out.
func Acquire(in *os.File, out io.Writer) (*Guard, error) {
	fd := int(in.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, fmt.Errorf("%w: fd %d", ErrNotTerminal, fd)
	}
	return acquire(fd, out, xterm.MakeRaw, xterm.Restore)
}

func acquire(
	fd int,
	out io.Writer,
	makeRaw func(fd int) (*xterm.State, error),
	restore func(fd int, state *xterm.State) error,
) (*Guard, error) {
	state, err := makeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}

	g := &Guard{fd: fd, out: out, state: state, restore: restore}
	if _, err := io.WriteString(out, ansi.SetAltScreenSaveCursorMode+ansi.EraseEntireScreen+ansi.CursorHomePosition); err != nil {
		_ = g.Release()
		return nil, fmt.Errorf("enter alternate screen: %w", err)
	}
	log.Debug(log.CatTerm, "Raw mode enabled", "fd", fd)
	return g, nil
}

// Release leaves the alternate screen, resets the cursor shape and restores
// the original terminal mode. Only the first call has any effect; later
// calls return the first call's error.
func (g *Guard) Release() error {
	g.once.Do(func() {
		_, werr := io.WriteString(g.out, ansi.SetCursorStyle(0)+ansi.ShowCursor+ansi.ResetAltScreenSaveCursorMode)
		rerr := g.restore(g.fd, g.state)
		g.err = errors.Join(rerr, werr)
		if g.err != nil {
			log.ErrorErr(log.CatTerm, "Failed to restore terminal", g.err, "fd", g.fd)
			return
		}
		log.Debug(log.CatTerm, "Raw mode disabled", "fd", g.fd)
	})
	return g.err
}

// Size returns the terminal dimensions of f in cells.
func Size(f *os.File) (width, height int, err error) {
	width, height, err = xterm.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return width, height, nil
}
