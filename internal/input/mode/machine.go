package mode

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition indicates a fired event has no transition from the
// current mode. Callers report it and continue; it is never fatal.
var ErrInvalidTransition = errors.New("mode: invalid transition")

// Transition maps an event fired in one mode to a target mode.
type Transition struct {
	// Event is the transition event name, e.g. "enterEntity".
	Event string

	// From is the mode the event is valid in.
	From string

	// To is the mode the machine lands in.
	To string
}

// EnterFunc observes a transition before the mode change is committed.
// The machine's Current() still reports the old mode; next is the computed
// target. Extras carry per-fire context such as a synthesized action name.
type EnterFunc func(event, next string, extras map[string]any)

// Machine is the modal state machine.
type Machine struct {
	current     string
	previous    string
	transitions []Transition
	enterFns    []EnterFunc
}

// New creates a machine starting in the initial mode.
func New(initial string, transitions []Transition) *Machine {
	return &Machine{
		current:     initial,
		transitions: transitions,
	}
}

// Current returns the active mode name.
func (m *Machine) Current() string {
	return m.current
}

// Previous returns the mode before the last committed transition, or ""
// if none has fired yet.
func (m *Machine) Previous() string {
	return m.previous
}

// AddTransition appends a transition to the graph.
func (m *Machine) AddTransition(t Transition) {
	m.transitions = append(m.transitions, t)
}

// Transitions returns a copy of the transition graph.
func (m *Machine) Transitions() []Transition {
	out := make([]Transition, len(m.transitions))
	copy(out, m.transitions)
	return out
}

// OnEnter registers a callback invoked on every fire, before the mode
// change is committed. Callbacks run in registration order.
func (m *Machine) OnEnter(fn EnterFunc) {
	m.enterFns = append(m.enterFns, fn)
}

// CanFire reports whether the event has a transition from the current mode.
func (m *Machine) CanFire(event string) bool {
	_, ok := m.target(event)
	return ok
}

// Fire triggers a transition event.
//
// The target is captured before the enter callbacks run and committed
// unconditionally after they return, so a callback that fires a nested
// event cannot leave the machine half-updated: the outermost Fire
// determines the final mode.
func (m *Machine) Fire(event string, extras map[string]any) error {
	next, ok := m.target(event)
	if !ok {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, m.current)
	}

	for _, fn := range m.enterFns {
		if fn != nil {
			fn(event, next, extras)
		}
	}

	m.previous = m.current
	m.current = next
	return nil
}

// target resolves the event against the current mode.
func (m *Machine) target(event string) (string, bool) {
	for _, t := range m.transitions {
		if t.Event == event && t.From == m.current {
			return t.To, true
		}
	}
	return "", false
}
