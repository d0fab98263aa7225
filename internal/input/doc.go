// Package input provides the keydown dispatcher, the engine's core pipeline.
//
// The dispatcher joins the modal state machine, the per-mode binding tables,
// the workflow recorder, and the entity registry. A key press is resolved
// against the current mode's table (last match wins), recorded as a workflow
// step, and routed to its handler. Unbound presses are mode-dependent: the
// desktop propagates them to the host, the action mode converts them into a
// pending action and chains into the entity mode, and every other mode
// rejects them with an audible cue.
//
// The dispatcher is single-threaded: one goroutine calls HandleKeyDown,
// which is also the goroutine that fires transitions and records history.
package input
