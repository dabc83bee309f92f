package vim

import (
	"github.com/zjrosen/quill/internal/input"
	"github.com/zjrosen/quill/internal/log"
)

// Machine interprets key events under a mode.
type Machine struct {
	registry *Registry
}

// NewMachine returns a machine dispatching through r. A nil registry uses
// DefaultRegistry.
func NewMachine(r *Registry) *Machine {
	if r == nil {
		r = DefaultRegistry()
	}
	return &Machine{registry: r}
}

// Interpret maps a key in mode to at most one action. The second result is
// false when the key means nothing in that mode.
func (m *Machine) Interpret(mode Mode, ev input.KeyEvent) (Action, bool) {
	if a, ok := m.registry.Get(mode, ev.Name); ok {
		return a, true
	}

	switch mode {
	case ModeNormal:
		log.Debug(log.CatMode, "unbound key", "mode", mode, "key", ev.Name)
		return Action{}, false
	case ModeInsert:
		if ev.Printable() {
			return Insert(ev.Rune), true
		}
		log.Debug(log.CatMode, "unbound key", "mode", mode, "key", ev.Name)
		return Action{}, false
	default:
		return Action{}, false
	}
}
