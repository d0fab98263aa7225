package input

import "errors"

// Dispatch errors. All of these are diagnostics: the dispatcher reports
// them and keeps running.
var (
	// ErrUnresolvedHandler indicates a binding whose handler has an
	// unrecognized dynamic type.
	ErrUnresolvedHandler = errors.New("input: unresolved handler type")

	// ErrNoMatch indicates an unbound chord in a mode that rejects
	// unbound input.
	ErrNoMatch = errors.New("input: no binding matched")
)
