package mode

import "strings"

// Built-in mode names.
const (
	Desktop    = "desktop"
	Normal     = "normal"
	Entity     = "entity"
	Action     = "action"
	Select     = "select"
	URL        = "url"
	Volume     = "volume"
	Brightness = "brightness"
)

// Built-in transition event names.
const (
	EventEnterNormal     = "enterNormal"
	EventEnterEntity     = "enterEntity"
	EventEnterAction     = "enterAction"
	EventEnterSelect     = "enterSelect"
	EventEnterURL        = "enterUrl"
	EventEnterVolume     = "enterVolume"
	EventEnterBrightness = "enterBrightness"
	EventExit            = "exitMode"
)

// builtins holds the built-in mode names in display order.
var builtins = []string{
	Desktop, Normal, Entity, Action, Select, URL, Volume, Brightness,
}

// Builtins returns the built-in mode names in display order.
func Builtins() []string {
	out := make([]string, len(builtins))
	copy(out, builtins)
	return out
}

// IsBuiltin reports whether name is a built-in mode.
func IsBuiltin(name string) bool {
	for _, b := range builtins {
		if b == name {
			return true
		}
	}
	return false
}

// EnterEvent returns the entry event name for a mode: "select" becomes
// "enterSelect". Custom modes get their entry events this way.
func EnterEvent(name string) string {
	if name == "" {
		return ""
	}
	return "enter" + strings.ToUpper(name[:1]) + name[1:]
}
