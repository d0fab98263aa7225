package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dshills/modalkey/internal/config"
	"github.com/dshills/modalkey/internal/entity"
	"github.com/dshills/modalkey/internal/entity/luaent"
	"github.com/dshills/modalkey/internal/input"
	"github.com/dshills/modalkey/internal/input/history"
	"github.com/dshills/modalkey/internal/input/hotkey"
	"github.com/dshills/modalkey/internal/input/mode"
)

// bootstrap initializes components in dependency order: logger,
// config, entities, machine, recorder, tables, dispatcher, hooks,
// watcher.
func (app *Application) bootstrap(opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	app.logger = NewLogger(LoggerConfig{
		Level:  ParseLogLevel(level),
		Output: out,
		Prefix: "modalkey",
	})

	if opts.Screen == nil {
		return ErrNoScreen
	}
	app.screen = opts.Screen

	if err := cfg.Validate(); err != nil {
		return NewComponentError("config", "validate", err)
	}
	app.cfg = cfg

	app.entities = entity.NewRegistry()
	system := NewSystemEntity(app.logger, app.screen.Notify)
	if err := app.entities.Register(SystemEntityName, system); err != nil {
		return NewComponentError("entities", "register system", err)
	}
	if cfg.EntitiesDir != "" {
		app.loadEntities(entitiesPath(cfg.EntitiesDir, opts.ConfigPath))
	}

	initial := cfg.InitialMode
	if initial == "" {
		initial = mode.Desktop
	}
	app.machine = mode.New(initial, DefaultTransitions(cfg.CustomModes()))

	app.recorder = history.NewRecorder()
	app.player = history.NewPlayer(app.recorder)

	tables, conflicts, err := app.buildTables(cfg)
	if err != nil {
		return NewComponentError("bindings", "build", err)
	}
	for _, c := range conflicts {
		app.logger.Warn("binding conflict: %s", c)
	}

	var cue input.Cue
	if cfg.Cue {
		cue = input.CueFunc(app.screen.Beep)
	}
	app.dispatchLog = app.logger.WithComponent("dispatch")
	app.dispatcher = input.NewDispatcher(input.Config{
		Machine:  app.machine,
		Tables:   tables,
		Recorder: app.recorder,
		Entities: app.entities,
		Logger:   app.dispatchLog,
		Metrics:  input.NewMetrics(),
		Cue:      cue,
	})

	app.machine.OnEnter(func(_, next string, _ map[string]any) {
		app.screen.ShowMode(next)
	})
	app.machine.OnEnter(func(_, next string, _ map[string]any) {
		if next != mode.Desktop || app.machine.Current() == mode.Desktop {
			return
		}
		if cmd, ok := app.recorder.Commit(time.Now()); ok {
			app.logger.Debug("recorded command %s with %d steps", cmd.ID, len(cmd.Steps))
			app.screen.Notify(fmt.Sprintf("recorded %d steps", len(cmd.Steps)))
		}
	})

	if opts.ConfigPath != "" {
		w, err := config.Watch(opts.ConfigPath, app.queueReload,
			config.WithErrorHandler(func(err error) {
				app.logger.Warn("config watch: %v", err)
			}))
		if err != nil {
			app.logger.Warn("config watch disabled: %v", err)
		} else {
			app.watcher = w
		}
	}

	return nil
}

// loadEntities loads scripted entities. Script failures are warnings;
// the engine runs with whatever loaded.
func (app *Application) loadEntities(dir string) {
	app.luaEngine = luaent.NewEngine()
	ents, err := app.luaEngine.LoadDir(dir)
	if err != nil {
		app.logger.Warn("entity scripts: %v", err)
	}
	for _, ent := range ents {
		if err := app.entities.Register(ent.Name(), ent); err != nil {
			app.logger.Warn("entity %s: %v", ent.Name(), err)
			continue
		}
		app.logger.Debug("loaded entity %s", ent.Name())
	}
	if n := len(ents); n > 0 {
		app.logger.Info("loaded %d scripted entities from %s", n, dir)
	}
}

// entitiesPath resolves a relative entities directory against the
// config file location.
func entitiesPath(dir, configPath string) string {
	if filepath.IsAbs(dir) || configPath == "" {
		return dir
	}
	return filepath.Join(filepath.Dir(configPath), dir)
}

// buildTables merges configured bindings over the defaults.
func (app *Application) buildTables(cfg *config.Config) (*hotkey.Set, []hotkey.Conflict, error) {
	tables, err := DefaultTables(app.fireTransition, app.ReplayLast, cfg.CustomModes())
	if err != nil {
		return nil, nil, err
	}
	configured, err := ConfigBindings(cfg, app.fireTransition)
	if err != nil {
		return nil, nil, err
	}

	modes := make([]string, 0, len(configured))
	for name := range configured {
		modes = append(modes, name)
	}
	sort.Strings(modes)

	var conflicts []hotkey.Conflict
	for _, name := range modes {
		conflicts = append(conflicts, tables.Merge(name, configured[name], cfg.Override)...)
	}
	return tables, conflicts, nil
}

// fireTransition dispatches a transition event. Invalid transitions
// are reported, never fatal.
func (app *Application) fireTransition(event string) {
	if err := app.machine.Fire(event, nil); err != nil {
		app.logger.Warn("transition %s: %v", event, err)
	}
}
