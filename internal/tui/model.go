// Package tui hosts the editor inside a Bubble Tea program.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/quill/internal/editor"
	"github.com/zjrosen/quill/internal/input"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/render"
)

// Model adapts an Editor to the Bubble Tea update/view cycle.
type Model struct {
	editor   *editor.Editor
	composer *render.Composer
	err      error
}

// New creates a model driving e.
func New(e *editor.Editor) Model {
	return Model{
		editor:   e,
		composer: render.NewComposer(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handle(input.ResizeEvent{Width: msg.Width, Height: msg.Height})
	case tea.KeyMsg:
		var cmd tea.Cmd
		for _, ev := range keyEvents(msg) {
			var model tea.Model
			model, cmd = m.handle(ev)
			m = model.(Model)
			if cmd != nil {
				break
			}
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) handle(ev input.Event) (tea.Model, tea.Cmd) {
	if _, _, err := m.editor.HandleEvent(ev); err != nil {
		log.ErrorErr(log.CatLoop, "Event failed", err)
		m.err = err
		return m, tea.Quit
	}
	if m.editor.Quitting() {
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	return m.composer.CursorView(m.editor.Frame())
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Editor returns the hosted editor.
func (m Model) Editor() *editor.Editor {
	return m.editor
}

// keyEvents translates a Bubble Tea key into editor key events. Pasted or
// buffered input arrives as several runes in one message.
func keyEvents(msg tea.KeyMsg) []input.KeyEvent {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		events := make([]input.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, input.Char(r))
		}
		return events
	case tea.KeySpace:
		return []input.KeyEvent{input.Char(' ')}
	case tea.KeyEscape:
		return []input.KeyEvent{input.Key(input.KeyEscape)}
	case tea.KeyEnter:
		return []input.KeyEvent{input.Key(input.KeyEnter)}
	case tea.KeyBackspace:
		return []input.KeyEvent{input.Key(input.KeyBackspace)}
	case tea.KeyDelete:
		return []input.KeyEvent{input.Key(input.KeyDelete)}
	case tea.KeyTab:
		return []input.KeyEvent{input.Key(input.KeyTab)}
	case tea.KeyLeft:
		return []input.KeyEvent{input.Key(input.KeyLeft)}
	case tea.KeyRight:
		return []input.KeyEvent{input.Key(input.KeyRight)}
	case tea.KeyUp:
		return []input.KeyEvent{input.Key(input.KeyUp)}
	case tea.KeyDown:
		return []input.KeyEvent{input.Key(input.KeyDown)}
	case tea.KeyCtrlLeft:
		return []input.KeyEvent{input.Key(input.KeyCtrlLeft)}
	case tea.KeyCtrlRight:
		return []input.KeyEvent{input.Key(input.KeyCtrlRight)}
	case tea.KeyCtrlC:
		return []input.KeyEvent{input.Key(input.KeyCtrlC)}
	default:
		return nil
	}
}
