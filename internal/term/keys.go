package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/modalkey/internal/input/key"
)

// specialKeys maps tcell named keys to canonical key names. The
// control aliases (tab is ctrl+i, enter is ctrl+m) resolve to the
// named key, matching what the terminal actually sent.
var specialKeys = map[tcell.Key]string{
	tcell.KeyEscape:     key.NameEscape,
	tcell.KeyEnter:      key.NameEnter,
	tcell.KeyTab:        key.NameTab,
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     key.NameDelete,
	tcell.KeyInsert:     "insert",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pageup",
	tcell.KeyPgDn:       "pagedown",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyF1:         "f1",
	tcell.KeyF2:         "f2",
	tcell.KeyF3:         "f3",
	tcell.KeyF4:         "f4",
	tcell.KeyF5:         "f5",
	tcell.KeyF6:         "f6",
	tcell.KeyF7:         "f7",
	tcell.KeyF8:         "f8",
	tcell.KeyF9:         "f9",
	tcell.KeyF10:        "f10",
	tcell.KeyF11:        "f11",
	tcell.KeyF12:        "f12",
}

// translateKey converts one tcell key event into a key name and
// modifier set. Events with no chord representation return ok false.
func translateKey(ev *tcell.EventKey) (string, key.Modifier, bool) {
	mods := translateMods(ev.Modifiers())

	k := ev.Key()
	if k == tcell.KeyRune {
		r := ev.Rune()
		switch {
		case r == ' ':
			return key.NameSpace, mods, true
		case unicode.IsUpper(r):
			return string(unicode.ToLower(r)), mods.With(key.ModShift), true
		case r == 0:
			return "", 0, false
		default:
			return string(r), mods, true
		}
	}

	if k == tcell.KeyBacktab {
		return key.NameTab, mods.With(key.ModShift), true
	}
	if name, ok := specialKeys[k]; ok {
		return name, mods, true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		letter := rune('a' + (k - tcell.KeyCtrlA))
		return string(letter), mods.With(key.ModCtrl), true
	}
	if k == tcell.KeyCtrlSpace {
		return key.NameSpace, mods.With(key.ModCtrl), true
	}

	return "", 0, false
}

// translateMods converts the tcell modifier mask. Meta becomes cmd.
func translateMods(m tcell.ModMask) key.Modifier {
	var out key.Modifier
	if m&tcell.ModShift != 0 {
		out = out.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		out = out.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		out = out.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		out = out.With(key.ModCmd)
	}
	return out
}
