package term

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/modalkey/internal/input/key"
	"github.com/dshills/modalkey/internal/input/mode"
)

// Terminal wraps a tcell screen. Init must be called before any other
// method and Fini when done; the screen restores the terminal state.
type Terminal struct {
	screen     tcell.Screen
	showStatus bool

	mu   sync.Mutex
	mode string
	note string
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithStatusLine turns the bottom status bar on or off.
func WithStatusLine(on bool) Option {
	return func(t *Terminal) {
		t.showStatus = on
	}
}

// New allocates a terminal. The screen is not touched until Init.
func New(opts ...Option) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	t := &Terminal{screen: screen, showStatus: true}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Init takes over the terminal.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("term: init: %w", err)
	}
	t.screen.Clear()
	t.render()
	return nil
}

// Fini releases the terminal.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// Beep sounds the terminal bell.
func (t *Terminal) Beep() {
	_ = t.screen.Beep()
}

// Stop unblocks a pending PollKey, making it return ok false.
func (t *Terminal) Stop() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// PollKey blocks until the next key chord. Resize events are handled
// internally. Returns ok false when the terminal is interrupted or
// closed.
func (t *Terminal) PollKey() (key.Event, bool) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if name, mods, ok := translateKey(ev); ok {
				return key.NewEvent(name, mods), true
			}
		case *tcell.EventResize:
			t.screen.Sync()
			t.render()
		case *tcell.EventInterrupt:
			return key.Event{}, false
		case nil:
			return key.Event{}, false
		}
	}
}

// ShowMode updates the mode segment of the status bar.
func (t *Terminal) ShowMode(name string) {
	t.mu.Lock()
	t.mode = name
	t.note = ""
	t.mu.Unlock()
	t.render()
}

// Notify shows a transient message next to the mode segment. The
// message clears on the next mode change.
func (t *Terminal) Notify(text string) {
	t.mu.Lock()
	t.note = text
	t.mu.Unlock()
	t.render()
}

// render draws the status bar on the bottom row.
func (t *Terminal) render() {
	if !t.showStatus {
		t.screen.Show()
		return
	}

	t.mu.Lock()
	label := statusLabel(t.mode)
	style := modeStyle(t.mode)
	note := t.note
	t.mu.Unlock()

	w, h := t.screen.Size()
	if h == 0 {
		return
	}
	row := h - 1
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, row, ' ', nil, tcell.StyleDefault)
	}

	col := 0
	for _, r := range label {
		if col >= w {
			break
		}
		t.screen.SetContent(col, row, r, nil, style)
		col++
	}
	if note != "" {
		col += 2
		for _, r := range note {
			if col >= w {
				break
			}
			t.screen.SetContent(col, row, r, nil, tcell.StyleDefault.Dim(true))
			col++
		}
	}
	t.screen.Show()
}

// statusLabel formats the mode segment.
func statusLabel(name string) string {
	if name == "" {
		name = "..."
	}
	return " " + strings.ToUpper(name) + " "
}

// modeStyles colors the status bar per mode. Custom modes fall back
// to the default style.
var modeStyles = map[string]tcell.Style{
	mode.Desktop:    tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray),
	mode.Normal:     tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
	mode.Entity:     tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen),
	mode.Action:     tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow),
	mode.Select:     tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorDarkMagenta),
	mode.URL:        tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorDarkCyan),
	mode.Volume:     tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightGray),
	mode.Brightness: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightGoldenrodYellow),
}

func modeStyle(name string) tcell.Style {
	if style, ok := modeStyles[name]; ok {
		return style
	}
	return tcell.StyleDefault.Reverse(true)
}
