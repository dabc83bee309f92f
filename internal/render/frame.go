// Package render turns editor state into screen output.
//
// Build snapshots a window into a Frame. A Composer turns a Frame into styled
// rows, and a Painter writes those rows to a terminal with cursor
// positioning and cursor shape escapes.
package render

import (
	"github.com/zjrosen/quill/internal/buffer"
	"github.com/zjrosen/quill/internal/viewport"
	"github.com/zjrosen/quill/internal/vim"
)

// Frame is everything needed to draw one screen.
type Frame struct {
	Width  int // Text columns
	Height int // Text rows, excluding the status line

	// Lines holds the buffer lines visible on rows 0..len(Lines)-1. Rows
	// past the end of the buffer are not included.
	Lines []string

	Mode vim.Mode
	Line int // Logical line under the cursor
	Col  int // Grapheme column of the cursor

	CursorX     int // Screen cell column of the cursor
	CursorY     int // Screen row of the cursor
	CursorStyle vim.CursorStyle
}

// Build snapshots the window as seen in mode.
func Build(w *viewport.Window, mode vim.Mode) Frame {
	v := w.Viewport()
	c := w.Cursor()

	lines := make([]string, 0, v.Height)
	for row := 0; row < v.Height; row++ {
		s, ok := w.VisibleLine(row)
		if !ok {
			break
		}
		lines = append(lines, s)
	}

	current, _ := w.VisibleLine(c.Row)
	x := buffer.DisplayWidth(current, c.Col)
	if v.Width > 0 {
		x = min(x, v.Width-1)
	}

	return Frame{
		Width:       v.Width,
		Height:      v.Height,
		Lines:       lines,
		Mode:        mode,
		Line:        w.Line(),
		Col:         c.Col,
		CursorX:     x,
		CursorY:     c.Row,
		CursorStyle: mode.CursorStyle(),
	}
}
