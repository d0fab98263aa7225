// Package key provides key event types and chord parsing for the input engine.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Modifier: Represents modifier keys (cmd, ctrl, alt, shift, fn)
//   - Event: A single key press with modifiers and timestamp
//
// # Key Names
//
// Keys are identified by lowercase names: "a", "1", "space", "escape", "f19".
// NormalizeName folds common aliases ("esc", "return", "spacebar") onto the
// canonical names.
//
// # Chords
//
// A chord string is the canonical textual form of a key press with its
// modifiers, e.g. "cmd+shift+a" or "t". Modifiers appear in a fixed order
// (cmd, ctrl, alt, shift, fn) so equal chords always render identically.
package key
