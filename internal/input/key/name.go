package key

import "strings"

// Canonical names for keys the engine binds by default.
const (
	NameEscape = "escape"
	NameEnter  = "enter"
	NameSpace  = "space"
	NameTab    = "tab"
	NameDelete = "delete"
)

// nameAliasMap folds common key name spellings onto canonical names.
var nameAliasMap = map[string]string{
	"esc":       NameEscape,
	"return":    NameEnter,
	"cr":        NameEnter,
	"spacebar":  NameSpace,
	"del":       NameDelete,
	"backspace": "backspace",
	"bs":        "backspace",
	"pgup":      "pageup",
	"pgdn":      "pagedown",
	"ins":       "insert",
}

// NormalizeName lowercases a key name and resolves aliases.
// Unknown names pass through unchanged after lowercasing; the engine does
// not maintain a closed key set, so "f19" or "§" are legal names.
func NormalizeName(name string) string {
	if name == " " {
		return NameSpace
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := nameAliasMap[name]; ok {
		return canonical
	}
	return name
}
