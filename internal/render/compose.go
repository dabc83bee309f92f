package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/padding"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/quill/internal/buffer"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/ui/styles"
	"github.com/zjrosen/quill/internal/vim"
)

// EmptyLineMarker is drawn on rows past the end of the buffer.
const EmptyLineMarker = "~"

const (
	lineCacheExpiration = 5 * time.Minute
	lineCacheCleanup    = 10 * time.Minute
)

// Composer renders frames into styled rows. Fitted buffer lines are cached
// per width; the cache is flushed whenever the width changes.
type Composer struct {
	lines *gocache.Cache
	width int
}

// NewComposer creates a composer with an empty line cache.
func NewComposer() *Composer {
	return &Composer{
		lines: gocache.New(lineCacheExpiration, lineCacheCleanup),
		width: -1,
	}
}

// Rows returns Height text rows followed by the status line. Every row is
// exactly Width cells wide.
func (c *Composer) Rows(f Frame) []string {
	if f.Width != c.width {
		if c.width >= 0 {
			log.Debug(log.CatLoop, "Flushing line cache", "old_width", c.width, "new_width", f.Width)
		}
		c.lines.Flush()
		c.width = f.Width
	}

	rows := make([]string, 0, f.Height+1)
	for i := 0; i < f.Height; i++ {
		if i < len(f.Lines) {
			rows = append(rows, c.line(f.Lines[i]))
			continue
		}
		rows = append(rows, styles.EmptyLineStyle.Render(Fit(EmptyLineMarker, f.Width)))
	}
	return append(rows, StatusLine(f))
}

// View joins Rows with newlines.
func (c *Composer) View(f Frame) string {
	return strings.Join(c.Rows(f), "\n")
}

// CursorView is View with the cursor cell drawn into the text, for hosts
// that do not position the terminal's own cursor.
func (c *Composer) CursorView(f Frame) string {
	rows := c.Rows(f)
	if f.Width <= 0 || f.CursorY < 0 || f.CursorY >= f.Height {
		return strings.Join(rows, "\n")
	}

	line := ""
	if f.CursorY < len(f.Lines) {
		line = f.Lines[f.CursorY]
	}
	rows[f.CursorY] = withCursor(Fit(line, f.Width), f.CursorX, f.CursorStyle)
	return strings.Join(rows, "\n")
}

// withCursor styles the grapheme starting at cell x of a fitted line.
func withCursor(fitted string, x int, style vim.CursorStyle) string {
	left := ansi.Truncate(fitted, x, "")
	cell, right, _, _ := uniseg.FirstGraphemeClusterInString(ansi.TruncateLeft(fitted, x, ""), -1)
	if cell == "" {
		cell = " "
	}
	return styles.TextStyle.Render(left) + cursorStyle(style).Render(cell) + styles.TextStyle.Render(right)
}

func cursorStyle(style vim.CursorStyle) lipgloss.Style {
	switch style {
	case vim.CursorBlock:
		return styles.CursorBlockStyle
	case vim.CursorBar:
		return styles.CursorBarStyle
	default:
		return styles.CursorBlockStyle
	}
}

func (c *Composer) line(s string) string {
	if v, ok := c.lines.Get(s); ok {
		if row, ok := v.(string); ok {
			return row
		}
	}
	row := styles.TextStyle.Render(Fit(s, c.width))
	c.lines.SetDefault(s, row)
	return row
}

// Fit draws s as buffer.Display does, truncates it to width display cells
// and pads it with spaces to exactly width cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return padding.String(ansi.Truncate(buffer.Display(s), width, ""), uint(width))
}

// StatusLine renders the mode badge on the left and the cursor's screen row
// and grapheme column on the right, both 0-based, filled to the frame width.
func StatusLine(f Frame) string {
	if f.Width <= 0 {
		return ""
	}

	badge := modeStyle(f.Mode).Render(f.Mode.String())
	pos := styles.PositionStyle.Render(fmt.Sprintf("%d:%d", f.CursorY, f.Col))

	gap := f.Width - lipgloss.Width(badge) - lipgloss.Width(pos)
	if gap < 0 {
		return ansi.Truncate(badge+pos, f.Width, "")
	}
	return badge + styles.StatusBarStyle.Render(strings.Repeat(" ", gap)) + pos
}

func modeStyle(m vim.Mode) lipgloss.Style {
	switch m {
	case vim.ModeNormal:
		return styles.ModeNormalStyle
	case vim.ModeInsert:
		return styles.ModeInsertStyle
	default:
		return styles.StatusBarStyle
	}
}
