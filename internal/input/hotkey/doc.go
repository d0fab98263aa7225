// Package hotkey provides per-mode binding tables and their merge semantics.
//
// A Table is an ordered list of bindings for one mode. Order is load order
// and is significant: dispatch scans in order and the last matching binding
// wins, so later sources shadow earlier ones without erasing them.
//
// Merge combines two tables with explicit conflict handling. Two bindings
// conflict only when both the key name and the full modifier set are equal;
// "cmd+a" and "cmd+shift+a" never conflict. Whether a conflicting incoming
// binding replaces the existing one or is dropped with a diagnostic is the
// caller's choice, which is how transition bindings stay protected from user
// configuration while workflow bindings remain overridable.
package hotkey
