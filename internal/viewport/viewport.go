// Package viewport maps terminal rows onto buffer lines and keeps the cursor
// inside both the document and the window.
//
// The cursor is stored in screen coordinates: Row is relative to the first
// visible line (Viewport.Top) and Col is a grapheme index into the line.
// The logical line under the cursor is always Top + Row.
package viewport

import (
	"github.com/zjrosen/quill/internal/buffer"
	"github.com/zjrosen/quill/internal/log"
)

// Viewport is the visible window onto the buffer.
type Viewport struct {
	Top    int // First logical line shown on screen row 0
	Height int // Visible text rows
	Width  int // Visible columns
}

// Cursor is the edit position in screen coordinates.
type Cursor struct {
	Row int // Screen row, relative to Viewport.Top
	Col int // Grapheme column within the line
}

// Window couples a buffer with its viewport and cursor.
type Window struct {
	buf    *buffer.Buffer
	view   Viewport
	cursor Cursor
}

// New creates a window over buf with the cursor at (0,0).
func New(buf *buffer.Buffer, width, height int) *Window {
	return &Window{
		buf:  buf,
		view: Viewport{Width: max(width, 0), Height: max(height, 0)},
	}
}

// Buffer returns the underlying buffer.
func (w *Window) Buffer() *buffer.Buffer { return w.buf }

// Viewport returns the current viewport.
func (w *Window) Viewport() Viewport { return w.view }

// Cursor returns the current cursor.
func (w *Window) Cursor() Cursor { return w.cursor }

// SetCursor places the cursor without clamping. Callers are expected to run
// Clamp before the next render.
func (w *Window) SetCursor(c Cursor) { w.cursor = c }

// ScrollTo sets the first visible line without clamping.
func (w *Window) ScrollTo(top int) { w.view.Top = max(top, 0) }

// Line returns the logical line index under the cursor.
func (w *Window) Line() int {
	return w.view.Top + w.cursor.Row
}

// VisibleLine returns the buffer line shown on screen row row.
func (w *Window) VisibleLine(row int) (string, bool) {
	return w.buf.Line(w.view.Top + row)
}

// CurrentLineLength returns the grapheme length of the line under the cursor.
func (w *Window) CurrentLineLength() int {
	return w.buf.LineLen(w.Line())
}

// Resize updates the window dimensions. The cursor is brought back into
// view by the next Clamp.
func (w *Window) Resize(width, height int) {
	w.view.Width = max(width, 0)
	w.view.Height = max(height, 0)
	log.Debug(log.CatView, "Resized viewport", "width", w.view.Width, "height", w.view.Height)
}

// maxCol returns the largest column the cursor may occupy on the current
// line. allowEnd permits the position just past the last grapheme, which
// Insert mode needs for appending.
func (w *Window) maxCol(allowEnd bool) int {
	n := w.CurrentLineLength()
	if !allowEnd {
		n = max(n-1, 0)
	}
	if w.view.Width > 0 {
		n = min(n, w.view.Width-1)
	}
	return n
}

// Clamp restores the cursor invariants after an action:
//
//   - the logical line exists (Top+Row < line count, floored at 0)
//   - the cursor row is inside the window (Row < Height)
//   - Col <= line length, or < line length when allowEnd is false
//   - Col < Width
//
// Rows are settled first because the column bound depends on which line the
// cursor ends up on.
func (w *Window) Clamp(allowEnd bool) {
	count := w.buf.LineCount()
	w.cursor.Row = max(w.cursor.Row, 0)
	w.view.Top = max(w.view.Top, 0)

	if count == 0 {
		w.view.Top = 0
		w.cursor.Row = 0
	} else if w.view.Top+w.cursor.Row >= count {
		w.view.Top = min(w.view.Top, count-1)
		w.cursor.Row = max(count-w.view.Top-1, 0)
	}

	if w.view.Height > 0 && w.cursor.Row >= w.view.Height {
		shift := w.cursor.Row - w.view.Height + 1
		w.view.Top += shift
		w.cursor.Row -= shift
	}

	n := w.CurrentLineLength()
	if allowEnd {
		w.cursor.Col = min(w.cursor.Col, n)
	} else if w.cursor.Col >= n {
		w.cursor.Col = max(n-1, 0)
	}
	if w.view.Width > 0 && w.cursor.Col >= w.view.Width {
		w.cursor.Col = w.view.Width - 1
	}
	w.cursor.Col = max(w.cursor.Col, 0)
}

// MoveUp moves one line up. At the top edge the viewport scrolls instead,
// keeping the cursor on row 0. Returns false when already on the first line.
func (w *Window) MoveUp() bool {
	switch {
	case w.cursor.Row > 0:
		w.cursor.Row--
	case w.view.Top > 0:
		w.view.Top--
		log.Debug(log.CatView, "Scrolled up", "top", w.view.Top)
	default:
		return false
	}
	return true
}

// MoveDown moves one line down. At the bottom edge the viewport scrolls
// instead, keeping the cursor pinned on the last row. Returns false when
// already on the last line.
func (w *Window) MoveDown() bool {
	if w.Line()+1 >= w.buf.LineCount() {
		return false
	}
	w.cursor.Row++
	if w.view.Height > 0 && w.cursor.Row >= w.view.Height {
		w.cursor.Row = w.view.Height - 1
		w.view.Top++
		log.Debug(log.CatView, "Scrolled down", "top", w.view.Top)
	}
	return true
}

// MoveLeft moves one column left. Returns false at column 0.
func (w *Window) MoveLeft() bool {
	if w.cursor.Col <= 0 {
		return false
	}
	w.cursor.Col--
	return true
}

// MoveRight moves one column right, bounded by the line and window width.
func (w *Window) MoveRight(allowEnd bool) bool {
	if w.cursor.Col >= w.maxCol(allowEnd) {
		return false
	}
	w.cursor.Col++
	return true
}

// MoveToLineStart moves to column 0.
func (w *Window) MoveToLineStart() {
	w.cursor.Col = 0
}

// MoveToLineEnd moves to the last column the mode permits.
func (w *Window) MoveToLineEnd(allowEnd bool) {
	w.cursor.Col = w.maxCol(allowEnd)
}

// SetColumn moves the cursor to col on the current line without clamping.
func (w *Window) SetColumn(col int) {
	w.cursor.Col = col
}

// NextLineStart moves to column 0 of the following line, scrolling when the
// cursor sits on the bottom row. The line must already exist.
func (w *Window) NextLineStart() {
	w.cursor.Col = 0
	w.MoveDown()
}
