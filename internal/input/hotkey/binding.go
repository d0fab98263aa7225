package hotkey

import (
	"github.com/dshills/modalkey/internal/input/key"
)

// Category groups bindings by ownership.
type Category string

const (
	// CategoryTransition marks bindings owned by the engine's mode graph.
	// User configuration can never displace them.
	CategoryTransition Category = "transition"

	// CategoryWorkflow marks action bindings a user may override.
	CategoryWorkflow Category = "workflow"
)

// Source records where a binding was defined.
type Source string

const (
	SourceDefault Source = "default"
	SourceConfig  Source = "config"
)

// Func handles a key event directly.
// The returned flag requests an automatic exit to the root mode.
type Func func(ev key.Event) bool

// ActionRef names an entity action to resolve through the registry at
// dispatch time.
type ActionRef struct {
	Entity string
	Action string
}

// Binding represents a single key-to-handler mapping.
type Binding struct {
	// Key is the canonical lowercase key name ("a", "escape", "f19").
	Key string

	// Modifiers is the exact modifier set; matching is set equality.
	Modifiers key.Modifier

	// Handler is a Func, an ActionRef, or nil. Dispatch type-switches on
	// it; any other dynamic type is reported and the event consumed.
	Handler any

	// Description documents the binding for listings.
	Description string

	// Category groups the binding for merge policy and display.
	Category Category

	// Source indicates where this binding was defined.
	Source Source
}

// NewBinding creates a binding from a chord string like "cmd+shift+a".
func NewBinding(chord string, handler any) (Binding, error) {
	name, mods, err := key.ParseChord(chord)
	if err != nil {
		return Binding{}, err
	}
	return Binding{Key: name, Modifiers: mods, Handler: handler}, nil
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithCategory sets the category for this binding.
func (b Binding) WithCategory(c Category) Binding {
	b.Category = c
	return b
}

// WithSource sets the source for this binding.
func (b Binding) WithSource(s Source) Binding {
	b.Source = s
	return b
}

// Chord returns the canonical chord string for this binding.
func (b Binding) Chord() string {
	return key.Chord(b.Key, b.Modifiers)
}

// Matches reports whether the event hits this binding exactly: equal key
// name and equal modifier set.
func (b Binding) Matches(ev key.Event) bool {
	return b.Key == ev.Name && b.Modifiers == ev.Modifiers
}

// ConflictsWith reports whether two bindings claim the same chord.
func (b Binding) ConflictsWith(other Binding) bool {
	return b.Key == other.Key && b.Modifiers == other.Modifiers
}

// BindingCategory represents one category of bindings for display.
type BindingCategory struct {
	Name     Category
	Bindings []Binding
}

// GroupByCategory groups bindings by category, preserving encounter order
// of both categories and bindings.
func GroupByCategory(bindings []Binding) []BindingCategory {
	categoryMap := make(map[Category][]Binding)
	order := make([]Category, 0)

	for _, b := range bindings {
		cat := b.Category
		if cat == "" {
			cat = CategoryWorkflow
		}
		if _, exists := categoryMap[cat]; !exists {
			order = append(order, cat)
		}
		categoryMap[cat] = append(categoryMap[cat], b)
	}

	result := make([]BindingCategory, 0, len(order))
	for _, name := range order {
		result = append(result, BindingCategory{
			Name:     name,
			Bindings: categoryMap[name],
		})
	}
	return result
}
