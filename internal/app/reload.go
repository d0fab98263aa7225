package app

import (
	"slices"

	"github.com/dshills/modalkey/internal/config"
)

// queueReload runs on the watcher goroutine after the config file
// settles. A file that fails to load or validate is reported and the
// running configuration stays in place. On success the rebuilt tables
// are staged for the dispatch goroutine.
func (app *Application) queueReload() {
	path := app.watcher.Path()

	cfg, err := config.Load(path)
	if err != nil {
		app.logger.Warn("%v", NewOperationError("reload", path, err))
		return
	}
	if err := cfg.Validate(); err != nil {
		app.logger.Warn("%v", NewOperationError("reload", path, err))
		return
	}

	tables, conflicts, err := app.buildTables(cfg)
	if err != nil {
		app.logger.Warn("%v", NewOperationError("reload", path, err))
		return
	}
	for _, c := range conflicts {
		app.logger.Warn("binding conflict: %s", c)
	}

	app.mu.Lock()
	old := app.cfg
	app.cfg = cfg
	app.mu.Unlock()

	app.warnRestartOnly(old, cfg)
	if cfg.LogLevel != old.LogLevel {
		level := ParseLogLevel(cfg.LogLevel)
		app.logger.SetLevel(level)
		app.dispatchLog.SetLevel(level)
		app.logger.Info("log level now %s", level)
	}

	app.pending.Store(tables)
	app.logger.Info("config reloaded from %s", path)
}

// warnRestartOnly names the settings a reload cannot change.
func (app *Application) warnRestartOnly(old, next *config.Config) {
	if old.EntitiesDir != next.EntitiesDir {
		app.logger.Warn("entities_dir change takes effect on restart")
	}
	if !slices.Equal(old.CustomModes(), next.CustomModes()) {
		app.logger.Warn("mode changes take effect on restart")
	}
	if old.Cue != next.Cue {
		app.logger.Warn("cue change takes effect on restart")
	}
	if old.StatusLine != next.StatusLine {
		app.logger.Warn("status_line change takes effect on restart")
	}
	if old.InitialMode != next.InitialMode {
		app.logger.Warn("initial_mode change takes effect on restart")
	}
}
