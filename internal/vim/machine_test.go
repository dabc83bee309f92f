package vim

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/quill/internal/input"
)

func TestInterpret_NormalKeymap(t *testing.T) {
	m := NewMachine(nil)

	tests := []struct {
		key  input.KeyEvent
		want Action
	}{
		{input.Char('h'), Do(MoveLeft)},
		{input.Key(input.KeyLeft), Do(MoveLeft)},
		{input.Char('l'), Do(MoveRight)},
		{input.Key(input.KeyRight), Do(MoveRight)},
		{input.Char('j'), Do(MoveDown)},
		{input.Key(input.KeyDown), Do(MoveDown)},
		{input.Char('k'), Do(MoveUp)},
		{input.Key(input.KeyUp), Do(MoveUp)},
		{input.Char('0'), Do(MoveToLineStart)},
		{input.Key(input.KeyCtrlLeft), Do(MoveToLineStart)},
		{input.Char('$'), Do(MoveToLineEnd)},
		{input.Key(input.KeyCtrlRight), Do(MoveToLineEnd)},
		{input.Char('i'), Enter(ModeInsert)},
		{input.Char('q'), Do(Quit)},
	}

	for _, tt := range tests {
		t.Run(tt.key.Name, func(t *testing.T) {
			got, ok := m.Interpret(ModeNormal, tt.key)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestInterpret_NormalUnboundKeyIsNoop(t *testing.T) {
	m := NewMachine(nil)
	for _, ev := range []input.KeyEvent{input.Char('x'), input.Key(input.KeyEnter), input.Key(input.KeyBackspace), input.Key(input.KeyEscape)} {
		_, ok := m.Interpret(ModeNormal, ev)
		require.False(t, ok, "key %q", ev.Name)
	}
}

func TestInterpret_InsertKeymap(t *testing.T) {
	m := NewMachine(nil)

	tests := []struct {
		key  input.KeyEvent
		want Action
	}{
		{input.Key(input.KeyEscape), Enter(ModeNormal)},
		{input.Key(input.KeyBackspace), Do(DeleteBackward)},
		{input.Key(input.KeyDelete), Do(DeleteForward)},
		{input.Key(input.KeyEnter), Do(SplitLine)},
		{input.Key(input.KeyLeft), Do(MoveLeft)},
		{input.Key(input.KeyRight), Do(MoveRight)},
		{input.Key(input.KeyUp), Do(MoveUp)},
		{input.Key(input.KeyDown), Do(MoveDown)},
		{input.Char('h'), Insert('h')},
		{input.Char('q'), Insert('q')},
		{input.Char(' '), Insert(' ')},
		{input.Char('é'), Insert('é')},
	}

	for _, tt := range tests {
		t.Run(tt.key.Name, func(t *testing.T) {
			got, ok := m.Interpret(ModeInsert, tt.key)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestInterpret_InsertControlKeyIsNoop(t *testing.T) {
	m := NewMachine(nil)
	_, ok := m.Interpret(ModeInsert, input.KeyEvent{Name: "ctrl+a", Rune: 0x01})
	require.False(t, ok)
	_, ok = m.Interpret(ModeInsert, input.Key(input.KeyCtrlLeft))
	require.False(t, ok)
}

// 'i' enters Insert with a bar cursor; Esc returns with a block.
func TestModeRoundTrip_CursorStyle(t *testing.T) {
	m := NewMachine(nil)

	a, ok := m.Interpret(ModeNormal, input.Char('i'))
	require.True(t, ok)
	mode := a.Next(ModeNormal)
	require.Equal(t, ModeInsert, mode)
	require.Equal(t, CursorBar, mode.CursorStyle())

	a, ok = m.Interpret(mode, input.Key(input.KeyEscape))
	require.True(t, ok)
	mode = a.Next(mode)
	require.Equal(t, ModeNormal, mode)
	require.Equal(t, CursorBlock, mode.CursorStyle())
}

func TestRegistry_CustomBinding(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Get(ModeNormal, "x")
	require.False(t, ok)

	r.Register(ModeNormal, key.NewBinding(key.WithKeys("x")), Do(Quit))
	got, ok := NewMachine(r).Interpret(ModeNormal, input.Char('x'))
	require.True(t, ok)
	require.Equal(t, Do(Quit), got)
	require.Equal(t, 1, r.Len(ModeNormal))
	require.Zero(t, r.Len(ModeInsert))
}

func TestAction_String(t *testing.T) {
	require.Equal(t, "mode.set(INSERT)", Enter(ModeInsert).String())
	require.Equal(t, `insert.char('a')`, Insert('a').String())
	require.Equal(t, "quit", Do(Quit).String())
	for _, k := range ActionKinds {
		require.NotEqual(t, "unknown", k.String())
	}
}

func TestMode_String(t *testing.T) {
	require.Equal(t, "NORMAL", ModeNormal.String())
	require.Equal(t, "INSERT", ModeInsert.String())
	require.Equal(t, "UNKNOWN", Mode(99).String())
	require.False(t, ModeNormal.AllowsEnd())
	require.True(t, ModeInsert.AllowsEnd())
}

// Property: the mode is always Normal or Insert, and only 'i' in Normal and
// Esc in Insert change it.
func TestModeTransitions_OnlyOnEdgeKeys(t *testing.T) {
	m := NewMachine(nil)
	names := []string{
		input.KeyUp, input.KeyDown, input.KeyLeft, input.KeyRight,
		input.KeyCtrlLeft, input.KeyCtrlRight, input.KeyEnter,
		input.KeyBackspace, input.KeyDelete, input.KeyEscape, input.KeyTab,
	}

	rapid.Check(t, func(t *rapid.T) {
		mode := ModeNormal
		steps := rapid.IntRange(0, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			var ev input.KeyEvent
			if rapid.Bool().Draw(t, "named") {
				ev = input.Key(rapid.SampledFrom(names).Draw(t, "name"))
			} else {
				ev = input.Char(rapid.RuneFrom([]rune("abchijklq0$ iX")).Draw(t, "rune"))
			}

			next := mode
			if a, ok := m.Interpret(mode, ev); ok {
				next = a.Next(mode)
			}

			edge := (mode == ModeNormal && ev.Name == "i") ||
				(mode == ModeInsert && ev.Name == input.KeyEscape)
			if edge != (next != mode) {
				t.Fatalf("mode %s key %q: edge=%v next=%s", mode, ev.Name, edge, next)
			}
			if next != ModeNormal && next != ModeInsert {
				t.Fatalf("invalid mode %d", next)
			}
			mode = next
		}
	})
}
