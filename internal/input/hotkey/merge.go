package hotkey

import (
	"errors"
	"fmt"

	"github.com/dshills/modalkey/internal/input/key"
)

// ErrConfigConflict marks a binding dropped during a merge because its
// chord was already taken.
var ErrConfigConflict = errors.New("hotkey: binding conflict")

// Conflict records one chord collision discovered during a merge.
type Conflict struct {
	Mode      string
	Key       string
	Modifiers key.Modifier

	// Kept is the binding that holds the chord after the merge.
	Kept Binding

	// Dropped is the binding that lost the chord.
	Dropped Binding
}

// String renders the conflict for diagnostics.
func (c Conflict) String() string {
	return fmt.Sprintf("%s: %s already bound (kept %s %q, dropped %s %q)",
		c.Mode, key.Chord(c.Key, c.Modifiers),
		c.Kept.Source, c.Kept.Description,
		c.Dropped.Source, c.Dropped.Description)
}

// Error lets a Conflict travel as an error value.
func (c Conflict) Error() string { return c.String() }

// Unwrap matches every Conflict against ErrConfigConflict.
func (c Conflict) Unwrap() error { return ErrConfigConflict }

// Merge combines src into dst for one mode.
//
// Two bindings conflict when their key names are equal and their modifier
// sets are equal. For each src binding:
//
//   - conflict, override true: the dst binding is replaced in place, so the
//     chord keeps its original position in the scan order
//   - conflict, override false: the src binding is dropped and a Conflict
//     is recorded
//   - no conflict: the src binding is appended
//
// Transition bindings are never replaced. A src binding that collides with
// one is dropped even when override is set; losing an exit chord would
// strand the user in a mode.
//
// dst is not mutated; the merged table is returned with the conflicts.
func Merge(mode string, dst, src []Binding, override bool) ([]Binding, []Conflict) {
	merged := make([]Binding, len(dst))
	copy(merged, dst)

	var conflicts []Conflict
	for _, sb := range src {
		idx := -1
		for i, db := range merged {
			if db.ConflictsWith(sb) {
				idx = i
				break
			}
		}
		if idx < 0 {
			merged = append(merged, sb)
			continue
		}
		if override && merged[idx].Category != CategoryTransition {
			merged[idx] = sb
			continue
		}
		conflicts = append(conflicts, Conflict{
			Mode:      mode,
			Key:       sb.Key,
			Modifiers: sb.Modifiers,
			Kept:      merged[idx],
			Dropped:   sb,
		})
	}
	return merged, conflicts
}
