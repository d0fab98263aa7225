package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/modalkey/internal/input/key"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		wantName string
		wantMods key.Modifier
	}{
		{
			name:     "plain letter",
			ev:       tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
			wantName: "a",
			wantMods: key.ModNone,
		},
		{
			name:     "uppercase letter becomes shift",
			ev:       tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone),
			wantName: "a",
			wantMods: key.ModShift,
		},
		{
			name:     "alt letter",
			ev:       tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt),
			wantName: "x",
			wantMods: key.ModAlt,
		},
		{
			name:     "meta reported as cmd",
			ev:       tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModMeta),
			wantName: "p",
			wantMods: key.ModCmd,
		},
		{
			name:     "space rune",
			ev:       tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
			wantName: "space",
			wantMods: key.ModNone,
		},
		{
			name:     "escape",
			ev:       tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
			wantName: "escape",
			wantMods: key.ModNone,
		},
		{
			name:     "enter not ctrl+m",
			ev:       tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			wantName: "enter",
			wantMods: key.ModNone,
		},
		{
			name:     "tab not ctrl+i",
			ev:       tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone),
			wantName: "tab",
			wantMods: key.ModNone,
		},
		{
			name:     "backtab is shift+tab",
			ev:       tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone),
			wantName: "tab",
			wantMods: key.ModShift,
		},
		{
			name:     "ctrl letter",
			ev:       tcell.NewEventKey(tcell.KeyCtrlJ, 0, tcell.ModCtrl),
			wantName: "j",
			wantMods: key.ModCtrl,
		},
		{
			name:     "ctrl space",
			ev:       tcell.NewEventKey(tcell.KeyCtrlSpace, 0, tcell.ModCtrl),
			wantName: "space",
			wantMods: key.ModCtrl,
		},
		{
			name:     "function key",
			ev:       tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone),
			wantName: "f5",
			wantMods: key.ModNone,
		},
		{
			name:     "page up",
			ev:       tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone),
			wantName: "pageup",
			wantMods: key.ModNone,
		},
		{
			name:     "arrow with shift",
			ev:       tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift),
			wantName: "up",
			wantMods: key.ModShift,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, mods, ok := translateKey(tt.ev)
			if !ok {
				t.Fatal("translateKey() ok = false, want true")
			}
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if mods != tt.wantMods {
				t.Errorf("mods = %v, want %v", mods, tt.wantMods)
			}
		})
	}
}

func TestTranslateKeyUnknown(t *testing.T) {
	if _, _, ok := translateKey(tcell.NewEventKey(tcell.KeyPrint, 0, tcell.ModNone)); ok {
		t.Error("translateKey(print) ok = true, want false")
	}
}

func TestTranslateMods(t *testing.T) {
	all := tcell.ModShift | tcell.ModCtrl | tcell.ModAlt | tcell.ModMeta
	got := translateMods(all)
	want := key.ModShift | key.ModCtrl | key.ModAlt | key.ModCmd
	if got != want {
		t.Errorf("translateMods(all) = %v, want %v", got, want)
	}
	if translateMods(tcell.ModNone) != key.ModNone {
		t.Error("translateMods(none) != ModNone")
	}
}

func TestStatusLabel(t *testing.T) {
	if got := statusLabel("normal"); got != " NORMAL " {
		t.Errorf("statusLabel(normal) = %q", got)
	}
	if got := statusLabel(""); got != " ... " {
		t.Errorf("statusLabel(empty) = %q", got)
	}
}

func TestModeStyleFallback(t *testing.T) {
	if modeStyle("window") != tcell.StyleDefault.Reverse(true) {
		t.Error("custom modes should use the fallback style")
	}
}
