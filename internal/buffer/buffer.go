// Package buffer holds document content as an ordered sequence of lines.
//
// Lines never carry their trailing newline. Line lookups report presence
// explicitly so callers can tell "past the end" apart from "empty line".
package buffer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zjrosen/quill/internal/log"
)

var (
	// ErrOutOfBounds is returned when a mutation targets a line or column
	// outside the current content.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrLoad is returned when the content source cannot be read.
	ErrLoad = errors.New("content source unreadable")
)

// Buffer is the in-memory document.
type Buffer struct {
	lines []string
}

// New creates a buffer from the given lines. The slice is copied.
func New(lines ...string) *Buffer {
	b := &Buffer{lines: make([]string, len(lines))}
	copy(b.lines, lines)
	return b
}

// Load reads all of r and splits it into lines on "\n" and "\r\n".
// A trailing line break does not produce an extra empty line, and empty
// input produces a buffer with zero lines.
func Load(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return &Buffer{lines: splitLines(string(data))}, nil
}

// LoadFile reads the named file into a buffer.
func LoadFile(path string) (*Buffer, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is the file the user asked to edit
	if err != nil {
		log.ErrorErr(log.CatBuffer, "Failed to open content source", err, "path", path)
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer func() { _ = f.Close() }()

	b, err := Load(f)
	if err != nil {
		log.ErrorErr(log.CatBuffer, "Failed to read content source", err, "path", path)
		return nil, err
	}
	log.Info(log.CatBuffer, "Loaded content", "path", path, "lines", b.LineCount())
	return b, nil
}

func splitLines(content string) []string {
	if content == "" {
		return []string{}
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the content of line i and whether that line exists.
func (b *Buffer) Line(i int) (string, bool) {
	if i < 0 || i >= len(b.lines) {
		return "", false
	}
	return b.lines[i], true
}

// LineOrEmpty returns line i, or "" when it does not exist.
// Only for rendering, where both cases draw the same blank row.
func (b *Buffer) LineOrEmpty(i int) string {
	line, _ := b.Line(i)
	return line
}

// LineLen returns the length of line i in graphemes, 0 if it does not exist.
func (b *Buffer) LineLen(i int) int {
	line, ok := b.Line(i)
	if !ok {
		return 0
	}
	return GraphemeCount(line)
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// String joins the lines with "\n".
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// InsertChar inserts ch into line at grapheme column col.
// Inserting at line == LineCount() appends a new line, which is how an
// empty buffer receives its first character.
func (b *Buffer) InsertChar(line, col int, ch rune) error {
	if line == len(b.lines) && col == 0 {
		b.lines = append(b.lines, string(ch))
		return nil
	}
	if err := b.checkPos(line, col); err != nil {
		return err
	}

	s := b.lines[line]
	at := GraphemeToByteOffset(s, col)
	b.lines[line] = s[:at] + string(ch) + s[at:]
	return nil
}

// DeleteChar removes the grapheme at column col of line.
// Deleting at the end of a line is out of bounds; lines are never merged.
func (b *Buffer) DeleteChar(line, col int) error {
	if err := b.checkPos(line, col); err != nil {
		return err
	}
	s := b.lines[line]
	if col >= GraphemeCount(s) {
		return fmt.Errorf("%w: delete at end of line %d", ErrOutOfBounds, line)
	}

	start := GraphemeToByteOffset(s, col)
	end := GraphemeToByteOffset(s, col+1)
	b.lines[line] = s[:start] + s[end:]
	return nil
}

// SplitLine breaks line at column col: the text before col stays on line,
// the rest becomes a new line directly below it.
func (b *Buffer) SplitLine(line, col int) error {
	if line == len(b.lines) && col == 0 {
		b.lines = append(b.lines, "", "")
		return nil
	}
	if err := b.checkPos(line, col); err != nil {
		return err
	}

	s := b.lines[line]
	at := GraphemeToByteOffset(s, col)
	head, tail := s[:at], s[at:]

	b.lines = append(b.lines, "")
	copy(b.lines[line+2:], b.lines[line+1:])
	b.lines[line] = head
	b.lines[line+1] = tail
	return nil
}

// checkPos validates that line exists and col <= its length.
func (b *Buffer) checkPos(line, col int) error {
	if line < 0 || line >= len(b.lines) {
		return fmt.Errorf("%w: line %d of %d", ErrOutOfBounds, line, len(b.lines))
	}
	if n := GraphemeCount(b.lines[line]); col < 0 || col > n {
		return fmt.Errorf("%w: column %d of line %d (length %d)", ErrOutOfBounds, col, line, n)
	}
	return nil
}
