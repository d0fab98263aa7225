package entity

import (
	"github.com/dshills/modalkey/internal/input/key"
)

// Flags carries workflow context into an action dispatch.
type Flags struct {
	// ChainedFrom is the action captured in action mode, when the dispatch
	// was chained through an action-mode workflow. Empty otherwise.
	ChainedFrom string
}

// Dispatcher receives named actions for one entity.
type Dispatcher interface {
	// DispatchAction performs the action. The returned flag requests an
	// automatic exit to the root mode after the dispatch.
	DispatchAction(action string, ev key.Event, flags Flags) (autoExit bool, err error)
}

// Func adapts a plain function to Dispatcher.
type Func func(action string, ev key.Event, flags Flags) (bool, error)

// DispatchAction implements Dispatcher.
func (f Func) DispatchAction(action string, ev key.Event, flags Flags) (bool, error) {
	return f(action, ev, flags)
}
