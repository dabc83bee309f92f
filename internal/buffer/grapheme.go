package buffer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TabStop is the distance in cells between tab stops.
const TabStop = 8

// Columns in quill are grapheme-cluster indices, not byte offsets or
// display cells. "e" + combining accent is one column, and so is a family
// emoji made of several code points. The helpers below translate between
// the three units.

// GraphemeCount returns the number of grapheme clusters in a string.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// GraphemeToByteOffset converts a grapheme index to byte offset.
// Returns len(s) if graphemeIdx >= grapheme count and 0 if graphemeIdx <= 0.
func GraphemeToByteOffset(s string, graphemeIdx int) int {
	if graphemeIdx <= 0 {
		return 0
	}

	idx := 0
	state := -1
	original := s
	for len(s) > 0 {
		_, rest, _, newState := uniseg.StepString(s, state)
		idx++
		if idx == graphemeIdx {
			return len(original) - len(rest)
		}
		s = rest
		state = newState
	}
	return len(original)
}

// SliceByGraphemes returns the substring between grapheme indices start
// (inclusive) and end (exclusive). Returns "" for invalid ranges.
func SliceByGraphemes(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		return ""
	}

	startByte := GraphemeToByteOffset(s, start)
	endByte := GraphemeToByteOffset(s, end)
	if startByte >= len(s) {
		return ""
	}
	return s[startByte:endByte]
}

// DisplayWidth returns the width in terminal cells of the first n graphemes
// of s as drawn by Display. Used to place the terminal cursor: ASCII = 1,
// emoji and CJK = 2, a tab runs to the next tab stop.
func DisplayWidth(s string, n int) int {
	width := 0
	idx := 0
	state := -1
	for len(s) > 0 && idx < n {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		width += runewidth.StringWidth(cellText(cluster, width))
		idx++
		s = rest
		state = newState
	}
	return width
}

// Display returns s the way it is drawn on screen. Tabs expand to spaces up
// to the next tab stop, C0 controls and DEL become caret notation (^[, ^?)
// and C1 controls become <9b>. Terminal escapes in the content never reach
// the terminal.
func Display(s string) string {
	if strings.IndexFunc(s, isControl) < 0 {
		return s
	}

	var b strings.Builder
	width := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		cell := cellText(cluster, width)
		b.WriteString(cell)
		width += runewidth.StringWidth(cell)
		s = rest
		state = newState
	}
	return b.String()
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0)
}

// cellText is how one grapheme is drawn when it starts at cell col.
// Controls are always their own cluster, except CR LF.
func cellText(cluster string, col int) string {
	r, _ := utf8.DecodeRuneInString(cluster)
	switch {
	case r == '\t':
		return strings.Repeat(" ", TabStop-col%TabStop)
	case isControl(r):
		var b strings.Builder
		for _, c := range cluster {
			switch {
			case c == 0x7f:
				b.WriteString("^?")
			case c < 0x20:
				b.WriteByte('^')
				b.WriteRune(c + '@')
			default:
				fmt.Fprintf(&b, "<%02x>", c)
			}
		}
		return b.String()
	}
	return cluster
}
