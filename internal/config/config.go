package config

import (
	"strings"

	"github.com/dshills/modalkey/internal/input/mode"
)

// Config is the full configuration for one modalkey instance.
type Config struct {
	// InitialMode is the mode the machine starts in.
	InitialMode string `toml:"initial_mode" yaml:"initial_mode"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// EntitiesDir holds Lua entity scripts. Empty disables scripted
	// entities.
	EntitiesDir string `toml:"entities_dir" yaml:"entities_dir"`

	// Override lets config bindings replace conflicting default
	// workflow bindings instead of being dropped.
	Override bool `toml:"override" yaml:"override"`

	// Cue sounds the terminal bell when a chord is rejected.
	Cue bool `toml:"cue" yaml:"cue"`

	// StatusLine shows the current mode at the bottom of the screen.
	StatusLine bool `toml:"status_line" yaml:"status_line"`

	// Modes declares custom modes beyond the built-in set.
	Modes []ModeConfig `toml:"modes" yaml:"modes"`

	// Bindings maps a mode name to the bindings added in that mode.
	Bindings map[string][]BindingConfig `toml:"bindings" yaml:"bindings"`
}

// ModeConfig declares one custom mode. Custom modes get an enter
// transition from normal and the shared exit transition to desktop.
type ModeConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Description string `toml:"description" yaml:"description"`
}

// BindingConfig declares one key binding. Exactly one target must be
// set: an Event to fire on the mode machine, or an Entity and Action
// pair to dispatch.
type BindingConfig struct {
	Key         string   `toml:"key" yaml:"key"`
	Mods        []string `toml:"mods" yaml:"mods"`
	Event       string   `toml:"event" yaml:"event"`
	Entity      string   `toml:"entity" yaml:"entity"`
	Action      string   `toml:"action" yaml:"action"`
	Description string   `toml:"description" yaml:"description"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		InitialMode: mode.Desktop,
		LogLevel:    "info",
		Override:    false,
		Cue:         true,
		StatusLine:  true,
	}
}

// ModeNames returns every mode a binding may target: the built-in
// modes plus declared custom modes, lowercased.
func (c *Config) ModeNames() []string {
	names := mode.Builtins()
	for _, m := range c.Modes {
		names = append(names, strings.ToLower(m.Name))
	}
	return names
}

// CustomModes returns declared custom mode names, lowercased, in
// declaration order.
func (c *Config) CustomModes() []string {
	names := make([]string, 0, len(c.Modes))
	for _, m := range c.Modes {
		names = append(names, strings.ToLower(m.Name))
	}
	return names
}
