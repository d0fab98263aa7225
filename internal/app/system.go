package app

import (
	"fmt"

	"github.com/dshills/modalkey/internal/entity"
	"github.com/dshills/modalkey/internal/input/key"
)

// SystemEntityName is the registry name of the built-in entity.
const SystemEntityName = "system"

// systemStep is how far one volume or brightness action moves a level.
const systemStep = 5

// SystemEntity is the built-in entity behind the volume and
// brightness modes. It tracks levels from 0 to 100 and reports each
// change through the notifier. It never auto-exits; level modes stay
// active until the user escapes.
type SystemEntity struct {
	logger *Logger
	notify func(string)
	levels map[string]int
}

// NewSystemEntity creates the built-in system entity. notify may be
// nil.
func NewSystemEntity(logger *Logger, notify func(string)) *SystemEntity {
	if logger == nil {
		logger = NullLogger
	}
	return &SystemEntity{
		logger: logger.WithComponent("system"),
		notify: notify,
		levels: map[string]int{
			"volume":     50,
			"brightness": 50,
		},
	}
}

// Level returns the current value of a level, or 0 for unknown names.
func (s *SystemEntity) Level(name string) int {
	return s.levels[name]
}

// DispatchAction implements entity.Dispatcher.
func (s *SystemEntity) DispatchAction(action string, ev key.Event, flags entity.Flags) (bool, error) {
	if flags.ChainedFrom != "" {
		s.logger.Debug("action %s chained from %s", action, flags.ChainedFrom)
	}

	switch action {
	case "volumeUp":
		s.adjust("volume", systemStep)
	case "volumeDown":
		s.adjust("volume", -systemStep)
	case "mute":
		s.set("volume", 0)
	case "brightnessUp":
		s.adjust("brightness", systemStep)
	case "brightnessDown":
		s.adjust("brightness", -systemStep)
	case "status":
		s.say(fmt.Sprintf("volume %d%%, brightness %d%%",
			s.levels["volume"], s.levels["brightness"]))
	default:
		return false, fmt.Errorf("system: unknown action %q on %s", action, ev.Chord())
	}
	return false, nil
}

func (s *SystemEntity) adjust(name string, delta int) {
	s.set(name, s.levels[name]+delta)
}

func (s *SystemEntity) set(name string, value int) {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	s.levels[name] = value
	s.say(fmt.Sprintf("%s %d%%", name, value))
}

func (s *SystemEntity) say(text string) {
	s.logger.Debug("%s", text)
	if s.notify != nil {
		s.notify(text)
	}
}
