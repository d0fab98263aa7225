// Package app wires the modalkey engine together: configuration, the
// mode machine, binding tables, the workflow recorder, entities, and
// the terminal frontend. It owns the key event loop.
package app

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/dshills/modalkey/internal/config"
	"github.com/dshills/modalkey/internal/entity"
	"github.com/dshills/modalkey/internal/entity/luaent"
	"github.com/dshills/modalkey/internal/input"
	"github.com/dshills/modalkey/internal/input/history"
	"github.com/dshills/modalkey/internal/input/hotkey"
	"github.com/dshills/modalkey/internal/input/key"
	"github.com/dshills/modalkey/internal/input/mode"
)

// Screen is the frontend surface the application drives. The terminal
// implementation lives in internal/term; tests substitute fakes.
type Screen interface {
	// Init takes over the display. Fini releases it.
	Init() error
	Fini()

	// PollKey blocks for the next key chord. ok false ends the run
	// loop.
	PollKey() (key.Event, bool)

	// Beep signals a rejected chord.
	Beep()

	// ShowMode updates the mode indicator.
	ShowMode(name string)

	// Notify shows a transient message.
	Notify(text string)

	// Stop unblocks a pending PollKey with ok false.
	Stop()
}

// Options configures the application.
type Options struct {
	// Config is the loaded configuration. Nil means defaults.
	Config *config.Config

	// ConfigPath enables live reload when set.
	ConfigPath string

	// Screen is the frontend. Required.
	Screen Screen

	// LogOutput is where logs go. Defaults to os.Stderr.
	LogOutput io.Writer

	// LogLevel overrides the configured log level when set.
	LogLevel string
}

// Application is the assembled engine.
type Application struct {
	logger      *Logger
	dispatchLog *Logger
	screen      Screen

	mu  sync.RWMutex
	cfg *config.Config

	machine    *mode.Machine
	recorder   *history.Recorder
	player     *history.Player
	entities   *entity.Registry
	dispatcher *input.Dispatcher
	luaEngine  *luaent.Engine
	watcher    *config.Watcher

	pending   atomic.Pointer[hotkey.Set]
	running   atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// New assembles an application. The configuration must validate; a
// bad config file is a startup error, unlike a bad reload.
func New(opts Options) (*Application, error) {
	app := &Application{}
	if err := app.bootstrap(opts); err != nil {
		return nil, err
	}
	return app, nil
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// IsRunning reports whether the run loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.cfg
}

// Machine returns the mode state machine.
func (app *Application) Machine() *mode.Machine {
	return app.machine
}

// Dispatcher returns the keydown dispatcher.
func (app *Application) Dispatcher() *input.Dispatcher {
	return app.dispatcher
}

// Recorder returns the workflow recorder.
func (app *Application) Recorder() *history.Recorder {
	return app.recorder
}

// Entities returns the entity registry.
func (app *Application) Entities() *entity.Registry {
	return app.entities
}
