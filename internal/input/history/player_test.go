package history

import (
	"errors"
	"testing"

	"github.com/dshills/modalkey/internal/input/key"
)

func TestPlayFeedsEventsInOrder(t *testing.T) {
	r := NewRecorder()
	r.Append(Command{Steps: []Step{step("a", "normal", ""), step("b", "entity", "")}})

	p := NewPlayer(r)
	var got []string
	err := p.PlayLast(1, func(ev key.Event) bool {
		got = append(got, ev.Name)
		return true
	})
	if err != nil {
		t.Fatalf("PlayLast error = %v", err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("replayed = %v, want [a b]", got)
	}
}

func TestPlayCount(t *testing.T) {
	r := NewRecorder()
	r.Append(Command{Steps: []Step{step("a", "normal", "")}})

	p := NewPlayer(r)
	count := 0
	if err := p.PlayLast(3, func(key.Event) bool { count++; return true }); err != nil {
		t.Fatalf("PlayLast error = %v", err)
	}
	if count != 3 {
		t.Errorf("sink called %d times, want 3", count)
	}
}

func TestPlayLastEmpty(t *testing.T) {
	p := NewPlayer(NewRecorder())
	err := p.PlayLast(1, func(key.Event) bool { return true })
	if !errors.Is(err, ErrNoCommands) {
		t.Errorf("PlayLast on empty recorder = %v, want ErrNoCommands", err)
	}
}

func TestNestedReplayRejected(t *testing.T) {
	r := NewRecorder()
	r.Append(Command{Steps: []Step{step("a", "normal", "")}})

	p := NewPlayer(r)
	var nested error
	err := p.PlayLast(1, func(key.Event) bool {
		nested = p.PlayLast(1, func(key.Event) bool { return true })
		return true
	})
	if err != nil {
		t.Fatalf("outer PlayLast error = %v", err)
	}
	if !errors.Is(nested, ErrReplayActive) {
		t.Errorf("nested PlayLast = %v, want ErrReplayActive", nested)
	}
	if p.IsPlaying() {
		t.Error("IsPlaying should be false after replay completes")
	}
}

func TestPlayNilSink(t *testing.T) {
	p := NewPlayer(NewRecorder())
	if err := p.Play(Command{}, 1, nil); err == nil {
		t.Error("Play with nil sink should error")
	}
}
