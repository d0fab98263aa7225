package input

import (
	"time"

	"github.com/dshills/modalkey/internal/entity"
	"github.com/dshills/modalkey/internal/input/history"
	"github.com/dshills/modalkey/internal/input/hotkey"
	"github.com/dshills/modalkey/internal/input/key"
	"github.com/dshills/modalkey/internal/input/mode"
)

// Logger is the logging surface the dispatcher needs. The application
// logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Cue signals a rejected key press to the user.
type Cue interface {
	Beep()
}

// CueFunc adapts a function to Cue.
type CueFunc func()

// Beep implements Cue.
func (f CueFunc) Beep() { f() }

// Config wires a Dispatcher's collaborators.
type Config struct {
	Machine  *mode.Machine
	Tables   *hotkey.Set
	Recorder *history.Recorder
	Entities *entity.Registry

	// Logger receives dispatch diagnostics. Defaults to a no-op logger.
	Logger Logger

	// Metrics counts dispatch outcomes. Defaults to a fresh Metrics.
	Metrics *Metrics

	// Cue fires on rejected chords. Optional.
	Cue Cue
}

// Dispatcher resolves key presses against the current mode's table and
// routes them to handlers.
type Dispatcher struct {
	machine  *mode.Machine
	tables   *hotkey.Set
	recorder *history.Recorder
	entities *entity.Registry
	logger   Logger
	metrics  *Metrics
	cue      Cue
}

// NewDispatcher creates a dispatcher from the config.
func NewDispatcher(cfg Config) *Dispatcher {
	d := &Dispatcher{
		machine:  cfg.Machine,
		tables:   cfg.Tables,
		recorder: cfg.Recorder,
		entities: cfg.Entities,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		cue:      cfg.Cue,
	}
	if d.tables == nil {
		d.tables = hotkey.NewSet()
	}
	if d.recorder == nil {
		d.recorder = history.NewRecorder()
	}
	if d.entities == nil {
		d.entities = entity.NewRegistry()
	}
	if d.logger == nil {
		d.logger = nopLogger{}
	}
	if d.metrics == nil {
		d.metrics = NewMetrics()
	}
	return d
}

// Machine returns the dispatcher's state machine.
func (d *Dispatcher) Machine() *mode.Machine {
	return d.machine
}

// Tables returns the dispatcher's binding tables.
func (d *Dispatcher) Tables() *hotkey.Set {
	return d.tables
}

// SetTables swaps the binding tables, for configuration reload. Call
// it from the dispatch goroutine between key presses.
func (d *Dispatcher) SetTables(tables *hotkey.Set) {
	if tables == nil {
		tables = hotkey.NewSet()
	}
	d.tables = tables
}

// Recorder returns the dispatcher's workflow recorder.
func (d *Dispatcher) Recorder() *history.Recorder {
	return d.recorder
}

// Entities returns the dispatcher's entity registry.
func (d *Dispatcher) Entities() *entity.Registry {
	return d.entities
}

// Metrics returns the dispatcher's metrics.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// HandleKeyDown processes one key press and reports whether it was
// consumed. A false return means the host should see the event.
func (d *Dispatcher) HandleKeyDown(ev key.Event) bool {
	current := d.machine.Current()
	d.metrics.RecordKeyDown(current)

	var match hotkey.Binding
	matched := false
	if table := d.tables.Table(current); table != nil {
		match, matched = table.Lookup(ev)
	}

	if !matched {
		return d.handleUnbound(current, ev)
	}

	d.recorder.RecordStep(history.Step{
		Event:  ev,
		Mode:   current,
		Action: actionName(match),
		Time:   time.Now(),
	})
	d.metrics.RecordMatched()

	autoExit := d.invoke(match, ev)
	if autoExit {
		d.metrics.RecordAutoExit()
		if err := d.machine.Fire(mode.EventExit, nil); err != nil {
			d.logger.Warn("auto exit: %v", err)
		}
	}
	return true
}

// handleUnbound applies the mode-dependent policy for chords with no
// binding.
func (d *Dispatcher) handleUnbound(current string, ev key.Event) bool {
	switch current {
	case mode.Action:
		d.synthesize(current, ev)
		return true
	case mode.Desktop:
		d.metrics.RecordPropagated()
		return false
	default:
		d.logger.Debug("%v: %s in %s", ErrNoMatch, ev.Chord(), current)
		d.metrics.RecordRejected()
		if d.cue != nil {
			d.cue.Beep()
		}
		return true
	}
}

// synthesize treats an unbound chord in action mode as a pending action
// and chains into the entity mode carrying it.
func (d *Dispatcher) synthesize(current string, ev key.Event) {
	action := ev.Chord()
	d.recorder.SetPendingAction(action)
	d.recorder.RecordStep(history.Step{
		Event:  ev,
		Mode:   current,
		Action: action,
		Time:   time.Now(),
	})
	d.metrics.RecordSynthesized()

	extras := map[string]any{"action": action}
	if err := d.machine.Fire(mode.EventEnterEntity, extras); err != nil {
		d.logger.Warn("action chain: %v", err)
	}
}

// invoke runs the binding's handler and returns the auto-exit flag.
func (d *Dispatcher) invoke(b hotkey.Binding, ev key.Event) bool {
	switch h := b.Handler.(type) {
	case hotkey.Func:
		if h == nil {
			d.reportUnresolved(b)
			return false
		}
		return h(ev)
	case hotkey.ActionRef:
		return d.invokeAction(h, ev)
	case nil:
		d.reportUnresolved(b)
		return false
	default:
		d.reportUnresolved(b)
		return false
	}
}

// invokeAction resolves an ActionRef through the registry and dispatches.
func (d *Dispatcher) invokeAction(ref hotkey.ActionRef, ev key.Event) bool {
	ent, ok := d.entities.Resolve(ref.Entity)
	if !ok {
		d.logger.Warn("%v: %s (action %s)", entity.ErrUnknownEntity, ref.Entity, ref.Action)
		d.metrics.RecordUnresolved()
		return false
	}

	flags := entity.Flags{ChainedFrom: d.recorder.TakePendingAction()}
	autoExit, err := ent.DispatchAction(ref.Action, ev, flags)
	if err != nil {
		d.logger.Error("dispatch %s.%s: %v", ref.Entity, ref.Action, err)
	}
	return autoExit
}

// reportUnresolved logs an unresolvable handler and counts it.
func (d *Dispatcher) reportUnresolved(b hotkey.Binding) {
	d.logger.Error("%v: %T bound to %s", ErrUnresolvedHandler, b.Handler, b.Chord())
	d.metrics.RecordUnresolved()
}

// actionName extracts the action name a binding resolves to, if any.
func actionName(b hotkey.Binding) string {
	if ref, ok := b.Handler.(hotkey.ActionRef); ok {
		return ref.Action
	}
	return ""
}
