package app

import (
	"errors"
	"runtime/debug"

	"github.com/dshills/modalkey/internal/input/history"
	"github.com/dshills/modalkey/internal/input/key"
)

// quitEvent ends the session from any mode. It is handled before
// dispatch so a broken binding table cannot lock the user in.
var quitEvent = key.Event{Name: "q", Modifiers: key.ModCtrl}

// Run takes over the screen and processes key chords until the
// session ends: quit chord, Shutdown, or the screen going away.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.screen.Init(); err != nil {
		return NewComponentError("terminal", "init", err)
	}
	defer app.screen.Fini()

	app.screen.ShowMode(app.machine.Current())
	app.logger.Info("started in %s mode, %s quits", app.machine.Current(), quitEvent.Chord())

	for {
		ev, ok := app.screen.PollKey()
		if !ok {
			return nil
		}
		app.applyPendingTables()
		if ev.Equals(quitEvent) {
			app.logger.Info("quit")
			return nil
		}
		app.dispatch(ev)
	}
}

// dispatch feeds one chord through the dispatcher. Handler panics are
// contained; a broken binding must not end the session.
func (app *Application) dispatch(ev key.Event) (consumed bool) {
	defer func() {
		if r := recover(); r != nil {
			perr := NewRecoveredPanicError(r, string(debug.Stack()))
			app.logger.Error("dispatch %s: %v", ev.Chord(), perr)
			consumed = true
		}
	}()

	consumed = app.dispatcher.HandleKeyDown(ev)
	if !consumed {
		// Desktop mode propagates to the host. The terminal frontend
		// has no host beneath it, so propagation only shows up in the
		// log and the metrics.
		app.logger.Debug("propagated %s", ev.Chord())
	}
	return consumed
}

// applyPendingTables installs tables staged by a config reload. Runs
// on the dispatch goroutine, between chords.
func (app *Application) applyPendingTables() {
	if p := app.pending.Swap(nil); p != nil {
		app.dispatcher.SetTables(p)
		app.logger.Info("bindings reloaded")
		app.screen.Notify("config reloaded")
	}
}

// ReplayLast replays the most recent command through the dispatcher.
// Replayed chords transition modes and record again, exactly as if
// typed.
func (app *Application) ReplayLast() {
	err := app.player.PlayLast(1, app.dispatch)
	switch {
	case errors.Is(err, history.ErrNoCommands):
		app.logger.Debug("replay: nothing recorded")
		app.screen.Notify("nothing to replay")
	case errors.Is(err, history.ErrReplayActive):
		app.logger.Warn("replay: already replaying")
	case err != nil:
		app.logger.Warn("replay: %v", err)
	}
}

// Shutdown ends a running session. Safe to call from any goroutine.
func (app *Application) Shutdown() {
	if app.running.Load() {
		app.screen.Stop()
	}
}

// Close releases resources held outside the run loop: the config
// watcher and the Lua engine. Idempotent.
func (app *Application) Close() error {
	app.closeOnce.Do(func() {
		list := NewErrorList()
		if app.watcher != nil {
			list.Add(WrapError(app.watcher.Close(), "config watcher"))
		}
		if app.luaEngine != nil {
			app.luaEngine.Close()
		}
		app.closeErr = list.AsError()
	})
	return app.closeErr
}
