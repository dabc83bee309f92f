package editor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/quill/internal/buffer"
	"github.com/zjrosen/quill/internal/input"
	"github.com/zjrosen/quill/internal/viewport"
	"github.com/zjrosen/quill/internal/vim"
)

// newTestEditor returns an editor whose text area is width x height.
func newTestEditor(width, height int, lines ...string) *Editor {
	return New(buffer.New(lines...), width, height+StatusLines)
}

func press(t *testing.T, e *Editor, events ...input.KeyEvent) {
	t.Helper()
	for _, ev := range events {
		_, _, err := e.HandleEvent(ev)
		require.NoError(t, err)
		e.Clamp()
	}
}

func typeText(t *testing.T, e *Editor, s string) {
	t.Helper()
	for _, r := range s {
		press(t, e, input.Char(r))
	}
}

func TestNew_ReservesStatusLine(t *testing.T) {
	e := New(buffer.New("a"), 80, 24)
	require.Equal(t, viewport.Viewport{Width: 80, Height: 23}, e.Window().Viewport())
	require.Equal(t, vim.ModeNormal, e.Mode())
}

func TestMoveDown_ClampsToShorterLine(t *testing.T) {
	e := newTestEditor(80, 10, "abc", "de")
	e.Window().SetCursor(viewport.Cursor{Row: 0, Col: 3})

	press(t, e, input.Char('j'))

	require.Equal(t, viewport.Cursor{Row: 1, Col: 1}, e.Window().Cursor())
}

func TestInsertChar_IntoEmptyLine(t *testing.T) {
	e := newTestEditor(80, 10, "")
	press(t, e, input.Char('i'), input.Char('x'))

	line, ok := e.Buffer().Line(0)
	require.True(t, ok)
	require.Equal(t, "x", line)
	require.Equal(t, 1, e.Window().Cursor().Col)
	require.Equal(t, vim.ModeInsert, e.Mode())
}

func TestInsertChar_StopsAtLastColumn(t *testing.T) {
	e := newTestEditor(5, 3, "")
	press(t, e, input.Char('i'))
	typeText(t, e, "abcdefg")

	line, _ := e.Buffer().Line(0)
	require.Equal(t, "abcde", line, "typing past the width keeps the text in order")
	require.Equal(t, 4, e.Window().Cursor().Col)
}

func TestInsertChar_LastColumnAtEndOfShortLine(t *testing.T) {
	e := newTestEditor(5, 3, "abcd")
	press(t, e, input.Char('i'))
	e.Window().SetCursor(viewport.Cursor{Col: 4})
	press(t, e, input.Char('x'))

	line, _ := e.Buffer().Line(0)
	require.Equal(t, "abcdx", line)
}

func TestInsertChar_IntoEmptyBuffer(t *testing.T) {
	e := newTestEditor(80, 10)
	press(t, e, input.Char('i'))
	typeText(t, e, "hi")

	require.Equal(t, []string{"hi"}, e.Buffer().Lines())
	require.Equal(t, 2, e.Window().Cursor().Col)
}

func TestMoveDown_ScrollsAtBottomEdge(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	e := newTestEditor(80, 3, lines...)
	e.Window().SetCursor(viewport.Cursor{Row: 2})

	press(t, e, input.Key(input.KeyDown))

	require.Equal(t, 1, e.Window().Viewport().Top)
	require.Equal(t, 2, e.Window().Cursor().Row)
}

func TestBackspace_AtColumnZeroIsNoop(t *testing.T) {
	e := newTestEditor(80, 10, "abc", "def")
	press(t, e, input.Char('j'), input.Char('i'))
	before := e.Window().Cursor()

	press(t, e, input.Key(input.KeyBackspace))

	require.Equal(t, []string{"abc", "def"}, e.Buffer().Lines())
	require.Equal(t, before, e.Window().Cursor())
}

func TestBackspace_DeletesLeftOfCursor(t *testing.T) {
	e := newTestEditor(80, 10, "abc")
	press(t, e, input.Char('$'), input.Char('i'), input.Key(input.KeyRight), input.Key(input.KeyBackspace))

	require.Equal(t, []string{"ab"}, e.Buffer().Lines())
	require.Equal(t, 2, e.Window().Cursor().Col)
}

func TestDelete_RemovesUnderCursor(t *testing.T) {
	e := newTestEditor(80, 10, "abc")
	press(t, e, input.Char('l'), input.Char('i'), input.Key(input.KeyDelete))
	require.Equal(t, []string{"ac"}, e.Buffer().Lines())
	require.Equal(t, 1, e.Window().Cursor().Col)
}

func TestDelete_AtEndOfLineIsNoop(t *testing.T) {
	e := newTestEditor(80, 10, "ab", "cd")
	press(t, e, input.Char('i'), input.Key(input.KeyRight), input.Key(input.KeyRight), input.Key(input.KeyDelete))
	require.Equal(t, []string{"ab", "cd"}, e.Buffer().Lines())
}

func TestEnter_SplitsLine(t *testing.T) {
	e := newTestEditor(80, 10, "hello world")
	press(t, e, input.Char('i'))
	for i := 0; i < 5; i++ {
		press(t, e, input.Key(input.KeyRight))
	}
	press(t, e, input.Key(input.KeyEnter))

	require.Equal(t, []string{"hello", " world"}, e.Buffer().Lines())
	require.Equal(t, viewport.Cursor{Row: 1, Col: 0}, e.Window().Cursor())
}

func TestEnter_ScrollsWhenPinnedAtBottom(t *testing.T) {
	e := newTestEditor(80, 2, "a", "b")
	press(t, e, input.Char('j'), input.Char('i'), input.Key(input.KeyRight), input.Key(input.KeyEnter))

	require.Equal(t, []string{"a", "b", ""}, e.Buffer().Lines())
	require.Equal(t, 1, e.Window().Viewport().Top)
	require.Equal(t, 1, e.Window().Cursor().Row)
	require.Equal(t, 2, e.Window().Line())
}

func TestEscape_ReclampsToLastCharacter(t *testing.T) {
	e := newTestEditor(80, 10, "abc")
	press(t, e, input.Char('i'))
	press(t, e, input.Key(input.KeyRight), input.Key(input.KeyRight), input.Key(input.KeyRight))
	require.Equal(t, 3, e.Window().Cursor().Col)

	press(t, e, input.Key(input.KeyEscape))

	require.Equal(t, vim.ModeNormal, e.Mode())
	require.Equal(t, 2, e.Window().Cursor().Col)
}

func TestUnboundKey_LeavesStateUnchanged(t *testing.T) {
	e := newTestEditor(80, 10, "abc")
	a, applied, err := e.HandleEvent(input.Char('z'))
	require.NoError(t, err)
	require.False(t, applied)
	require.Equal(t, vim.Action{}, a)
	require.Equal(t, []string{"abc"}, e.Buffer().Lines())
}

func TestQuit(t *testing.T) {
	e := newTestEditor(80, 10, "abc")
	a, applied, err := e.HandleEvent(input.Char('q'))
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, vim.Do(vim.Quit), a)
	require.True(t, e.Quitting())
}

func TestQuit_NotInInsertMode(t *testing.T) {
	e := newTestEditor(80, 10, "")
	press(t, e, input.Char('i'), input.Char('q'))
	require.False(t, e.Quitting())
	require.Equal(t, []string{"q"}, e.Buffer().Lines())
}

func TestResize_InAnyMode(t *testing.T) {
	for _, mode := range vim.Modes {
		t.Run(mode.String(), func(t *testing.T) {
			e := newTestEditor(80, 10, "abc")
			require.NoError(t, e.Apply(vim.Enter(mode)))

			a, applied, err := e.HandleEvent(input.ResizeEvent{Width: 40, Height: 12})
			require.NoError(t, err)
			require.False(t, applied)
			require.Equal(t, vim.Action{}, a)
			require.Equal(t, 40, e.Window().Viewport().Width)
			require.Equal(t, 11, e.Window().Viewport().Height)
			require.Equal(t, mode, e.Mode())
		})
	}
}

func TestApply_InsertOutOfBoundsSurfacesError(t *testing.T) {
	e := newTestEditor(80, 10, "abc")
	e.Window().SetCursor(viewport.Cursor{Col: 9})

	err := e.Apply(vim.Insert('x'))

	require.ErrorIs(t, err, buffer.ErrOutOfBounds)
}

func TestApply_EveryKind(t *testing.T) {
	for _, kind := range vim.ActionKinds {
		t.Run(kind.String(), func(t *testing.T) {
			e := newTestEditor(80, 10, "abc", "def")
			a := vim.Action{Kind: kind, Mode: vim.ModeInsert, Char: 'x'}
			require.NoError(t, e.Apply(a))
		})
	}
}

// Property: columns stay within [0, len(line)] under moves and inserts.
func TestInsertAndMove_ColumnStaysInLine(t *testing.T) {
	keys := []input.KeyEvent{
		input.Key(input.KeyLeft), input.Key(input.KeyRight),
		input.Key(input.KeyBackspace), input.Key(input.KeyDelete),
		input.Char('a'), input.Char('b'), input.Char('é'),
	}

	rapid.Check(t, func(t *rapid.T) {
		line := rapid.StringMatching(`[a-z]{0,12}`).Draw(t, "line")
		e := New(buffer.New(line), 200, 5)
		if _, _, err := e.HandleEvent(input.Char('i')); err != nil {
			t.Fatal(err)
		}

		steps := rapid.SliceOf(rapid.SampledFrom(keys)).Draw(t, "keys")
		for _, ev := range steps {
			if _, _, err := e.HandleEvent(ev); err != nil {
				t.Fatalf("key %q: %v", ev.Name, err)
			}
			e.Clamp()

			col := e.Window().Cursor().Col
			n := e.Buffer().LineLen(0)
			if col < 0 || col > n {
				t.Fatalf("column %d outside [0,%d]", col, n)
			}
		}
	})
}
