package vim

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/zjrosen/quill/internal/keys"
)

// Registry provides mode-aware, key-based action dispatch.
type Registry struct {
	// actions maps Mode -> key name -> action
	actions map[Mode]map[string]Action
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[Mode]map[string]Action),
	}
}

// Register adds an action for every key of the binding. Disabled bindings
// are skipped.
func (r *Registry) Register(mode Mode, b key.Binding, a Action) {
	if !b.Enabled() {
		return
	}
	if r.actions[mode] == nil {
		r.actions[mode] = make(map[string]Action)
	}
	for _, k := range b.Keys() {
		r.actions[mode][k] = a
	}
}

// Get retrieves the action bound to key name in mode.
func (r *Registry) Get(mode Mode, name string) (Action, bool) {
	if modeMap, ok := r.actions[mode]; ok {
		if a, ok := modeMap[name]; ok {
			return a, true
		}
	}
	return Action{}, false
}

// Len returns the number of key names bound in mode.
func (r *Registry) Len(mode Mode) int {
	return len(r.actions[mode])
}

// DefaultRegistry builds the registry from the keys package keymaps.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	n := keys.Normal
	r.Register(ModeNormal, n.Left, Do(MoveLeft))
	r.Register(ModeNormal, n.Right, Do(MoveRight))
	r.Register(ModeNormal, n.Up, Do(MoveUp))
	r.Register(ModeNormal, n.Down, Do(MoveDown))
	r.Register(ModeNormal, n.LineStart, Do(MoveToLineStart))
	r.Register(ModeNormal, n.LineEnd, Do(MoveToLineEnd))
	r.Register(ModeNormal, n.Insert, Enter(ModeInsert))
	r.Register(ModeNormal, n.Quit, Do(Quit))

	i := keys.Insert
	r.Register(ModeInsert, i.Left, Do(MoveLeft))
	r.Register(ModeInsert, i.Right, Do(MoveRight))
	r.Register(ModeInsert, i.Up, Do(MoveUp))
	r.Register(ModeInsert, i.Down, Do(MoveDown))
	r.Register(ModeInsert, i.Backspace, Do(DeleteBackward))
	r.Register(ModeInsert, i.Delete, Do(DeleteForward))
	r.Register(ModeInsert, i.Enter, Do(SplitLine))
	r.Register(ModeInsert, i.Escape, Enter(ModeNormal))

	return r
}
