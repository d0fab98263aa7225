// Package term is the terminal frontend. It owns the tcell screen,
// turns terminal key events into key.Event values, sounds the bell
// for rejected chords, and draws the one-line mode status bar.
//
// Terminals do not deliver a command key; the meta modifier is
// reported as cmd so desktop-style chords keep working where the
// emulator passes meta through.
package term
