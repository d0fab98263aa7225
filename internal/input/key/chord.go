package key

import (
	"fmt"
	"strings"
)

// Chord builds the canonical chord string for a key name and modifier set.
func Chord(name string, mods Modifier) string {
	name = NormalizeName(name)
	if mods == ModNone {
		return name
	}
	return mods.String() + "+" + name
}

// ParseChord parses a chord string like "cmd+shift+a" into its key name and
// modifier set. Every segment before the last must be a modifier name; the
// last segment is the key name. A bare "+" chord binds the plus key itself.
func ParseChord(spec string) (string, Modifier, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return "", ModNone, fmt.Errorf("key: empty chord")
	}
	if spec == "+" {
		return "+", ModNone, nil
	}

	parts := strings.Split(spec, "+")
	// A chord ending in "+" binds the plus key: "shift++" splits into
	// ["shift", "", ""], so drop the empty segments and restore the key.
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
		if len(parts) > 0 && parts[len(parts)-1] == "" {
			parts = parts[:len(parts)-1]
		}
		parts = append(parts, "+")
	}

	var mods Modifier
	for _, part := range parts[:len(parts)-1] {
		mod := ModifierFromName(part)
		if mod == ModNone {
			return "", ModNone, fmt.Errorf("key: unknown modifier %q in chord %q", part, spec)
		}
		mods = mods.With(mod)
	}

	name := NormalizeName(parts[len(parts)-1])
	if name == "" {
		return "", ModNone, fmt.Errorf("key: chord %q has no key", spec)
	}
	return name, mods, nil
}

// ParseEvent parses a chord string into an Event with a zero timestamp.
func ParseEvent(spec string) (Event, error) {
	name, mods, err := ParseChord(spec)
	if err != nil {
		return Event{}, err
	}
	return Event{Name: name, Modifiers: mods}, nil
}
