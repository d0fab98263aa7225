package history

import (
	"time"

	"github.com/dshills/modalkey/internal/input/key"
)

// Step records one dispatched event inside a workflow.
type Step struct {
	// Event is the key press that was dispatched.
	Event key.Event

	// Mode is the mode the event was dispatched in.
	Mode string

	// Action is the action name the step resolved to, if any.
	Action string

	// Time is when the step was recorded.
	Time time.Time
}

// Command is a completed workflow.
type Command struct {
	// ID uniquely identifies the command for replay and logs.
	ID string

	// Steps are the recorded steps in dispatch order.
	Steps []Step

	// Actions are the action names encountered, in order.
	Actions []string

	// Completed is when the workflow was committed.
	Completed time.Time
}

// Events returns the key events of the command's steps in order.
func (c Command) Events() []key.Event {
	events := make([]key.Event, len(c.Steps))
	for i, s := range c.Steps {
		events[i] = s.Event
	}
	return events
}
