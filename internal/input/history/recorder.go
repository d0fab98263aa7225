package history

import (
	"time"

	"github.com/google/uuid"
)

// Capacity is the maximum number of commands the recorder keeps.
const Capacity = 100

// Recorder accumulates the current workflow and stores completed commands.
//
// The Recorder is not safe for concurrent use. The engine drives it from a
// single goroutine.
type Recorder struct {
	steps    []Step
	actions  []string
	pending  string
	commands []Command
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordStep adds a step to the current workflow. A step carrying an
// action name is also indexed in the workflow's action list.
func (r *Recorder) RecordStep(s Step) {
	r.steps = append(r.steps, s)
	if s.Action != "" {
		r.actions = append(r.actions, s.Action)
	}
}

// SetPendingAction stores the action captured in action mode, to be
// consumed by the next entity dispatch.
func (r *Recorder) SetPendingAction(action string) {
	r.pending = action
}

// PendingAction returns the stored action without clearing it.
func (r *Recorder) PendingAction() string {
	return r.pending
}

// TakePendingAction returns the stored action and clears it.
func (r *Recorder) TakePendingAction() string {
	action := r.pending
	r.pending = ""
	return action
}

// StepCount returns the number of steps in the current workflow.
func (r *Recorder) StepCount() int {
	return len(r.steps)
}

// Commit finalizes the current workflow into a Command and stores it.
// An empty workflow commits nothing and reports false; the pending action
// is cleared either way.
func (r *Recorder) Commit(now time.Time) (Command, bool) {
	if len(r.steps) == 0 {
		r.ResetWorkflow()
		return Command{}, false
	}

	cmd := Command{
		ID:        uuid.NewString(),
		Steps:     make([]Step, len(r.steps)),
		Actions:   make([]string, len(r.actions)),
		Completed: now,
	}
	copy(cmd.Steps, r.steps)
	copy(cmd.Actions, r.actions)

	r.Append(cmd)
	r.ResetWorkflow()
	return cmd, true
}

// Append stores a completed command. When the list is already at capacity,
// everything but the most recent stored command is discarded first, so the
// list holds that command and the new one.
func (r *Recorder) Append(cmd Command) {
	if len(r.commands) >= Capacity {
		last := r.commands[len(r.commands)-1]
		r.commands = append(r.commands[:0], last)
	}
	r.commands = append(r.commands, cmd)
}

// ResetWorkflow clears the current workflow and the pending action.
func (r *Recorder) ResetWorkflow() {
	r.steps = nil
	r.actions = nil
	r.pending = ""
}

// Commands returns a copy of the stored commands, oldest first.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Last returns the most recently stored command.
func (r *Recorder) Last() (Command, bool) {
	if len(r.commands) == 0 {
		return Command{}, false
	}
	return r.commands[len(r.commands)-1], true
}

// Len returns the number of stored commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}
