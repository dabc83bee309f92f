package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/quill/internal/buffer"
	"github.com/zjrosen/quill/internal/editor"
	"github.com/zjrosen/quill/internal/input"
	"github.com/zjrosen/quill/internal/vim"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newModel(lines ...string) Model {
	return New(editor.New(buffer.New(lines...), 40, 6))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestKeyEvents(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []input.KeyEvent
	}{
		{"rune", runes("j"), []input.KeyEvent{input.Char('j')}},
		{"paste", runes("ab"), []input.KeyEvent{input.Char('a'), input.Char('b')}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j"), Alt: true}, nil},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, []input.KeyEvent{input.Char(' ')}},
		{"escape", tea.KeyMsg{Type: tea.KeyEscape}, []input.KeyEvent{input.Key(input.KeyEscape)}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []input.KeyEvent{input.Key(input.KeyEnter)}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []input.KeyEvent{input.Key(input.KeyBackspace)}},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, []input.KeyEvent{input.Key(input.KeyDelete)}},
		{"ctrl+left", tea.KeyMsg{Type: tea.KeyCtrlLeft}, []input.KeyEvent{input.Key(input.KeyCtrlLeft)}},
		{"ctrl+right", tea.KeyMsg{Type: tea.KeyCtrlRight}, []input.KeyEvent{input.Key(input.KeyCtrlRight)}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, []input.KeyEvent{input.Key(input.KeyUp)}},
		{"unmapped", tea.KeyMsg{Type: tea.KeyF1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, keyEvents(tt.msg))
		})
	}
}

// Key names produced here must match what the keymaps bind.
func TestKeyEvents_NamesMatchBubbleTea(t *testing.T) {
	for _, typ := range []tea.KeyType{
		tea.KeyEscape, tea.KeyEnter, tea.KeyBackspace, tea.KeyDelete,
		tea.KeyLeft, tea.KeyRight, tea.KeyUp, tea.KeyDown,
		tea.KeyCtrlLeft, tea.KeyCtrlRight, tea.KeyTab,
	} {
		msg := tea.KeyMsg{Type: typ}
		events := keyEvents(msg)
		require.Len(t, events, 1)
		require.Equal(t, msg.String(), events[0].Name)
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m, cmd := send(newModel("abc"), tea.WindowSizeMsg{Width: 20, Height: 8})
	require.Nil(t, cmd)
	require.Equal(t, 20, m.Editor().Window().Viewport().Width)
	require.Equal(t, 7, m.Editor().Window().Viewport().Height)
}

func TestUpdate_QuitReturnsTeaQuit(t *testing.T) {
	_, cmd := send(newModel("abc"), runes("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_PasteStopsAtQuit(t *testing.T) {
	m, cmd := send(newModel(""), runes("qi"))
	require.NotNil(t, cmd)
	require.Equal(t, vim.ModeNormal, m.Editor().Mode(), "keys after quit are dropped")
}

func TestView_ShowsTextAndStatus(t *testing.T) {
	m, _ := send(newModel("hello", "world"), runes("j"), runes("l"))

	rows := strings.Split(m.View(), "\n")
	require.Len(t, rows, 6)
	require.True(t, strings.HasPrefix(rows[0], "hello"))
	require.True(t, strings.HasPrefix(rows[1], "world"))
	require.True(t, strings.HasPrefix(rows[2], "~"))
	require.Contains(t, rows[5], "NORMAL")
	require.Contains(t, rows[5], "2:2")
}

func TestProgram_EditAndQuit(t *testing.T) {
	tm := teatest.NewTestModel(t, newModel("world"), teatest.WithInitialTermSize(40, 6))

	tm.Send(runes("i"))
	tm.Type("hello ")
	tm.Send(tea.KeyMsg{Type: tea.KeyEscape})
	tm.Send(runes("q"))

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(2*time.Second))
	m, ok := fm.(Model)
	require.True(t, ok)
	require.NoError(t, m.Err())
	require.Equal(t, []string{"hello world"}, m.Editor().Buffer().Lines())
	require.Equal(t, vim.ModeNormal, m.Editor().Mode())
}

func TestProgram_InsertModeStatus(t *testing.T) {
	tm := teatest.NewTestModel(t, newModel("abc"), teatest.WithInitialTermSize(40, 6))

	tm.Send(runes("i"))
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return strings.Contains(string(b), "INSERT")
	}, teatest.WithDuration(2*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyEscape})
	tm.Send(runes("q"))
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}
