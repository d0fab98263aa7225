package history

import (
	"errors"

	"github.com/dshills/modalkey/internal/input/key"
)

// Player errors.
var (
	// ErrReplayActive indicates a replay was requested while one is running.
	ErrReplayActive = errors.New("history: replay already active")

	// ErrNoCommands indicates the recorder has nothing to replay.
	ErrNoCommands = errors.New("history: no commands recorded")
)

// Sink receives replayed key events. It has the same shape as the
// dispatcher's keydown entry point; the returned consumed flag is ignored
// during replay.
type Sink func(ev key.Event) bool

// Player replays recorded commands through a dispatch sink.
type Player struct {
	recorder *Recorder
	playing  bool
}

// NewPlayer creates a player over the given recorder.
func NewPlayer(recorder *Recorder) *Player {
	return &Player{recorder: recorder}
}

// IsPlaying reports whether a replay is in progress.
func (p *Player) IsPlaying() bool {
	return p.playing
}

// Play replays a command's events through the sink count times (minimum 1).
// Replay is synchronous; a sink that triggers another replay gets
// ErrReplayActive.
func (p *Player) Play(cmd Command, count int, sink Sink) error {
	if sink == nil {
		return errors.New("history: nil sink")
	}
	if p.playing {
		return ErrReplayActive
	}
	if count < 1 {
		count = 1
	}

	p.playing = true
	defer func() { p.playing = false }()

	events := cmd.Events()
	for i := 0; i < count; i++ {
		for _, ev := range events {
			sink(ev)
		}
	}
	return nil
}

// PlayLast replays the most recently stored command.
func (p *Player) PlayLast(count int, sink Sink) error {
	cmd, ok := p.recorder.Last()
	if !ok {
		return ErrNoCommands
	}
	return p.Play(cmd, count, sink)
}
