package key

import (
	"fmt"
	"strings"
)

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModCmd indicates the Command key (Win/Super elsewhere).
	ModCmd Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModShift indicates the Shift key.
	ModShift

	// ModFn indicates the Fn key.
	ModFn
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasCmd returns true if Command is pressed.
func (m Modifier) HasCmd() bool {
	return m.Has(ModCmd)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasFn returns true if Fn is pressed.
func (m Modifier) HasFn() bool {
	return m.Has(ModFn)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns the canonical representation like "cmd+shift".
// Modifiers always render in the order cmd, ctrl, alt, shift, fn.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasCmd() {
		parts = append(parts, "cmd")
	}
	if m.HasCtrl() {
		parts = append(parts, "ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "alt")
	}
	if m.HasShift() {
		parts = append(parts, "shift")
	}
	if m.HasFn() {
		parts = append(parts, "fn")
	}
	return strings.Join(parts, "+")
}

// Names returns the canonical modifier names in render order.
func (m Modifier) Names() []string {
	if m == ModNone {
		return nil
	}
	return strings.Split(m.String(), "+")
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"cmd":      ModCmd,
	"command":  ModCmd,
	"meta":     ModCmd,
	"super":    ModCmd,
	"win":      ModCmd,
	"ctrl":     ModCtrl,
	"control":  ModCtrl,
	"alt":      ModAlt,
	"option":   ModAlt,
	"opt":      ModAlt,
	"shift":    ModShift,
	"fn":       ModFn,
	"function": ModFn,
}

// ModifierFromName returns the Modifier for a given name (case-insensitive).
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNameMap[strings.ToLower(name)]; ok {
		return m
	}
	return ModNone
}

// ParseModifiers combines a list of modifier names into a Modifier.
// An unrecognized name fails the whole parse; callers surface this as a
// configuration error rather than silently dropping the modifier.
func ParseModifiers(names []string) (Modifier, error) {
	var result Modifier
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		mod := ModifierFromName(name)
		if mod == ModNone {
			return ModNone, fmt.Errorf("key: unknown modifier %q", name)
		}
		result = result.With(mod)
	}
	return result, nil
}
