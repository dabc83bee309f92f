package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/quill/internal/vim"
)

// DECSCUSR shapes.
const (
	cursorSteadyBlock = 2
	cursorBlinkingBar = 5
)

// Painter writes frames to a terminal. Each Draw clears the screen and
// redraws every row; there is no diffing.
type Painter struct {
	w        io.Writer
	composer *Composer
}

// NewPainter creates a painter writing to w.
func NewPainter(w io.Writer) *Painter {
	return &Painter{w: w, composer: NewComposer()}
}

// Draw writes f in a single write call.
func (p *Painter) Draw(f Frame) error {
	var b strings.Builder

	b.WriteString(ansi.HideCursor)
	b.WriteString(ansi.EraseEntireScreen)
	for i, row := range p.composer.Rows(f) {
		b.WriteString(ansi.CursorPosition(1, i+1))
		b.WriteString(row)
	}
	b.WriteString(ansi.CursorPosition(f.CursorX+1, f.CursorY+1))
	b.WriteString(CursorShape(f.CursorStyle))
	b.WriteString(ansi.ShowCursor)

	_, err := io.WriteString(p.w, b.String())
	return err
}

// CursorShape returns the escape sequence selecting style.
func CursorShape(style vim.CursorStyle) string {
	switch style {
	case vim.CursorBlock:
		return ansi.SetCursorStyle(cursorSteadyBlock)
	case vim.CursorBar:
		return ansi.SetCursorStyle(cursorBlinkingBar)
	default:
		return ansi.SetCursorStyle(cursorSteadyBlock)
	}
}
