package key

import (
	"fmt"
	"time"
)

// Event represents a single key press event.
type Event struct {
	// Name identifies the key pressed, in canonical lowercase form.
	Name string

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a key event with the current timestamp.
// The name is normalized.
func NewEvent(name string, mods Modifier) Event {
	return Event{
		Name:      NormalizeName(name),
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// Chord returns the canonical chord string, e.g. "cmd+shift+a" or "t".
func (e Event) Chord() string {
	return Chord(e.Name, e.Modifiers)
}

// String returns the canonical chord string.
func (e Event) String() string {
	return e.Chord()
}

// Equals returns true if two events represent the same key press.
// Timestamps are not compared.
func (e Event) Equals(other Event) bool {
	return e.Name == other.Name && e.Modifiers == other.Modifiers
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Name: %q, Modifiers: %s}", e.Name, e.Modifiers)
}
