// Package config loads and validates modalkey configuration files.
//
// Configuration is read from a single TOML or YAML file, chosen by
// extension. The file declares custom modes and per-mode key bindings
// and tunes engine behavior (initial mode, audible cue, status line,
// log level). Values absent from the file keep their defaults.
//
// Validation is separate from parsing: Load reports syntax errors
// with file positions, Validate reports semantic errors such as
// bindings for unknown modes or unparseable modifier names. Callers
// reload on file changes through Watcher and are expected to keep the
// previous configuration when a reload fails validation.
package config
