package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/modalkey/internal/input/key"
	"github.com/dshills/modalkey/internal/input/mode"
)

// Validation errors.
var (
	// ErrUnknownMode is returned for bindings or the initial mode
	// referencing a mode that is neither built in nor declared.
	ErrUnknownMode = errors.New("config: unknown mode")

	// ErrUnknownModifier is returned for modifier names that do not
	// parse.
	ErrUnknownModifier = errors.New("config: unknown modifier")

	// ErrEmptyKey is returned for bindings without a key name.
	ErrEmptyKey = errors.New("config: binding has no key")

	// ErrBindingTarget is returned when a binding does not name
	// exactly one target.
	ErrBindingTarget = errors.New("config: binding must set either event or entity and action")

	// ErrDuplicateMode is returned when a custom mode is declared
	// twice or shadows a built-in mode.
	ErrDuplicateMode = errors.New("config: duplicate mode")

	// ErrEmptyMode is returned for a custom mode without a name.
	ErrEmptyMode = errors.New("config: mode has no name")
)

// Validate checks the configuration for semantic errors. All problems
// are reported, joined into one error.
func (c *Config) Validate() error {
	var errs []error

	known := make(map[string]bool)
	for _, name := range mode.Builtins() {
		known[name] = true
	}
	for i, m := range c.Modes {
		name := strings.ToLower(strings.TrimSpace(m.Name))
		if name == "" {
			errs = append(errs, fmt.Errorf("%w: modes[%d]", ErrEmptyMode, i))
			continue
		}
		if known[name] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateMode, name))
			continue
		}
		known[name] = true
	}

	if c.InitialMode != "" && !known[strings.ToLower(c.InitialMode)] {
		errs = append(errs, fmt.Errorf("%w: initial_mode %s", ErrUnknownMode, c.InitialMode))
	}

	for modeName, bindings := range c.Bindings {
		if !known[strings.ToLower(modeName)] {
			errs = append(errs, fmt.Errorf("%w: bindings.%s", ErrUnknownMode, modeName))
		}
		for i, b := range bindings {
			errs = append(errs, b.validate(modeName, i)...)
		}
	}

	return errors.Join(errs...)
}

// validate checks one binding. at identifies it in error messages.
func (b BindingConfig) validate(modeName string, index int) []error {
	at := fmt.Sprintf("bindings.%s[%d]", modeName, index)

	var errs []error
	if strings.TrimSpace(b.Key) == "" {
		errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyKey, at))
	}
	if _, err := key.ParseModifiers(b.Mods); err != nil {
		errs = append(errs, fmt.Errorf("%w: %s: %v", ErrUnknownModifier, at, err))
	}

	hasEvent := b.Event != ""
	hasAction := b.Entity != "" || b.Action != ""
	switch {
	case hasEvent && hasAction:
		errs = append(errs, fmt.Errorf("%w: %s sets both", ErrBindingTarget, at))
	case !hasEvent && !hasAction:
		errs = append(errs, fmt.Errorf("%w: %s sets neither", ErrBindingTarget, at))
	case hasAction && (b.Entity == "" || b.Action == ""):
		errs = append(errs, fmt.Errorf("%w: %s needs both entity and action", ErrBindingTarget, at))
	}
	return errs
}
