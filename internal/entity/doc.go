// Package entity provides the action protocol between key bindings and
// application-level capabilities.
//
// An entity is anything that can receive named actions: a browser, a music
// player, the window system. Bindings reference entities by name; the
// registry resolves the name at dispatch time so entities can be registered
// from Go code or loaded from Lua scripts interchangeably.
package entity
