// Package mode provides the modal state machine.
//
// Modes are named input contexts. The engine is rooted at the desktop mode,
// where it stays out of the way except for its own entry chord. A Machine
// holds a transition graph of named events; one event name may map several
// source modes to one target (fan-in), which is how a single exit event
// returns every mode to the desktop.
//
// Firing an event computes the target mode, invokes the registered enter
// callbacks with the event name and the target, and only then commits the
// mode change. Callbacks therefore observe the machine still in the old
// mode, which the history recorder relies on to attribute events to the
// mode they were dispatched in.
//
// The Machine is not safe for concurrent use. The engine drives it from a
// single goroutine.
package mode
