package app

import (
	"fmt"

	"github.com/dshills/modalkey/internal/config"
	"github.com/dshills/modalkey/internal/input/hotkey"
	"github.com/dshills/modalkey/internal/input/key"
	"github.com/dshills/modalkey/internal/input/mode"
)

// DefaultTransitions builds the transition graph: desktop enters
// normal, normal fans out to the task modes, action chains into
// entity, and every non-desktop mode exits to desktop. Custom modes
// are entered from normal and join the exit fan-in.
func DefaultTransitions(custom []string) []mode.Transition {
	ts := []mode.Transition{
		{Event: mode.EventEnterNormal, From: mode.Desktop, To: mode.Normal},
		{Event: mode.EventEnterEntity, From: mode.Normal, To: mode.Entity},
		{Event: mode.EventEnterEntity, From: mode.Action, To: mode.Entity},
		{Event: mode.EventEnterAction, From: mode.Normal, To: mode.Action},
		{Event: mode.EventEnterSelect, From: mode.Normal, To: mode.Select},
		{Event: mode.EventEnterURL, From: mode.Normal, To: mode.URL},
		{Event: mode.EventEnterVolume, From: mode.Normal, To: mode.Volume},
		{Event: mode.EventEnterBrightness, From: mode.Normal, To: mode.Brightness},
	}
	for _, name := range custom {
		ts = append(ts, mode.Transition{Event: mode.EnterEvent(name), From: mode.Normal, To: name})
	}
	for _, name := range mode.Builtins() {
		if name == mode.Desktop {
			continue
		}
		ts = append(ts, mode.Transition{Event: mode.EventExit, From: name, To: mode.Desktop})
	}
	for _, name := range custom {
		ts = append(ts, mode.Transition{Event: mode.EventExit, From: name, To: mode.Desktop})
	}
	return ts
}

// defaultBinding is one row of the default binding tables. Exactly
// one of event, action, or replay describes the handler.
type defaultBinding struct {
	mode   string
	chord  string
	event  string
	entity string
	action string
	replay bool
	desc   string
}

// defaultBindings lists the stock tables. Order matters: dispatch
// scans in order and the last match wins.
var defaultBindings = []defaultBinding{
	{mode: mode.Desktop, chord: "cmd+escape", event: mode.EventEnterNormal, desc: "enter normal mode"},
	{mode: mode.Desktop, chord: "cmd+.", replay: true, desc: "replay last command"},

	{mode: mode.Normal, chord: "escape", event: mode.EventExit, desc: "back to desktop"},
	{mode: mode.Normal, chord: "e", event: mode.EventEnterEntity, desc: "enter entity mode"},
	{mode: mode.Normal, chord: "a", event: mode.EventEnterAction, desc: "enter action mode"},
	{mode: mode.Normal, chord: "s", event: mode.EventEnterSelect, desc: "enter select mode"},
	{mode: mode.Normal, chord: "u", event: mode.EventEnterURL, desc: "enter url mode"},
	{mode: mode.Normal, chord: "v", event: mode.EventEnterVolume, desc: "enter volume mode"},
	{mode: mode.Normal, chord: "b", event: mode.EventEnterBrightness, desc: "enter brightness mode"},

	{mode: mode.Entity, chord: "escape", event: mode.EventExit, desc: "back to desktop"},
	{mode: mode.Action, chord: "escape", event: mode.EventExit, desc: "back to desktop"},
	{mode: mode.Select, chord: "escape", event: mode.EventExit, desc: "back to desktop"},
	{mode: mode.URL, chord: "escape", event: mode.EventExit, desc: "back to desktop"},

	{mode: mode.Volume, chord: "escape", event: mode.EventExit, desc: "back to desktop"},
	{mode: mode.Volume, chord: "k", entity: SystemEntityName, action: "volumeUp", desc: "volume up"},
	{mode: mode.Volume, chord: "j", entity: SystemEntityName, action: "volumeDown", desc: "volume down"},
	{mode: mode.Volume, chord: "m", entity: SystemEntityName, action: "mute", desc: "mute"},

	{mode: mode.Brightness, chord: "escape", event: mode.EventExit, desc: "back to desktop"},
	{mode: mode.Brightness, chord: "k", entity: SystemEntityName, action: "brightnessUp", desc: "brightness up"},
	{mode: mode.Brightness, chord: "j", entity: SystemEntityName, action: "brightnessDown", desc: "brightness down"},
}

// DefaultTables builds the stock binding tables. fire dispatches a
// transition event on the machine; replay replays the last recorded
// command. Custom modes get only their exit binding; their chords
// come from configuration.
func DefaultTables(fire func(event string), replay func(), custom []string) (*hotkey.Set, error) {
	set := hotkey.NewSet()

	add := func(modeName string, b defaultBinding) error {
		built, err := buildBinding(b.chord, b.event, b.entity, b.action, b.replay, fire, replay)
		if err != nil {
			return fmt.Errorf("default binding %s in %s: %w", b.chord, modeName, err)
		}
		set.Ensure(modeName).Add(built.WithDescription(b.desc).WithSource(hotkey.SourceDefault))
		return nil
	}

	for _, b := range defaultBindings {
		if err := add(b.mode, b); err != nil {
			return nil, err
		}
	}
	for _, name := range custom {
		exit := defaultBinding{chord: "escape", event: mode.EventExit, desc: "back to desktop"}
		if err := add(name, exit); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// ConfigBindings converts configured bindings into table form, keyed
// by mode. The configuration must already be validated.
func ConfigBindings(cfg *config.Config, fire func(event string)) (map[string][]hotkey.Binding, error) {
	out := make(map[string][]hotkey.Binding, len(cfg.Bindings))
	for modeName, list := range cfg.Bindings {
		bindings := make([]hotkey.Binding, 0, len(list))
		for _, bc := range list {
			mods, err := key.ParseModifiers(bc.Mods)
			if err != nil {
				return nil, fmt.Errorf("binding %s in %s: %w", bc.Key, modeName, err)
			}
			chord := key.Chord(key.NormalizeName(bc.Key), mods)
			built, err := buildBinding(chord, bc.Event, bc.Entity, bc.Action, false, fire, nil)
			if err != nil {
				return nil, fmt.Errorf("binding %s in %s: %w", bc.Key, modeName, err)
			}
			bindings = append(bindings, built.WithDescription(bc.Description).WithSource(hotkey.SourceConfig))
		}
		out[modeName] = bindings
	}
	return out, nil
}

// buildBinding makes one binding. Event handlers fire a machine
// transition and are marked as transition bindings so merges cannot
// displace them. Action handlers reference an entity. Replay handlers
// rerun the last command.
func buildBinding(chord, event, entityName, action string, replay bool, fire func(string), replayFn func()) (hotkey.Binding, error) {
	switch {
	case event != "":
		ev := event
		b, err := hotkey.NewBinding(chord, hotkey.Func(func(key.Event) bool {
			fire(ev)
			return false
		}))
		if err != nil {
			return hotkey.Binding{}, err
		}
		return b.WithCategory(hotkey.CategoryTransition), nil

	case replay:
		b, err := hotkey.NewBinding(chord, hotkey.Func(func(key.Event) bool {
			replayFn()
			return false
		}))
		if err != nil {
			return hotkey.Binding{}, err
		}
		return b.WithCategory(hotkey.CategoryWorkflow), nil

	default:
		b, err := hotkey.NewBinding(chord, hotkey.ActionRef{Entity: entityName, Action: action})
		if err != nil {
			return hotkey.Binding{}, err
		}
		return b.WithCategory(hotkey.CategoryWorkflow), nil
	}
}
