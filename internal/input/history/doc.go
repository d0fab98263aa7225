// Package history records workflows and completed commands.
//
// A workflow is the step list accumulated while the engine is away from the
// desktop mode. When a transition lands back on the desktop the workflow is
// committed as a Command and the recorder starts fresh. Commands are kept
// in a bounded list: once the list is full, older entries collapse down to
// the most recent one before the new command is appended.
//
// The Player feeds a committed command's events back through a dispatch
// sink, replaying the workflow. Replay runs synchronously on the engine
// goroutine and refuses to nest.
package history
