package keyword

import (
	"fmt"

	"github.com/jmelhus/albumpath/internal/catalog"
)

// Delta is the result of reconciling current tags against a desired
// keyword list. NamesToRemove and TagsToRemove are parallel views of
// the same removed set.
type Delta struct {
	NamesToAdd    []string
	NamesToRemove []string
	TagsToRemove  []catalog.Tag
}

// IsEmpty reports whether the delta requires no changes.
func (d Delta) IsEmpty() bool {
	return len(d.NamesToAdd) == 0 && len(d.NamesToRemove) == 0
}

// Diff computes the delta between an item's current tags and the
// desired keyword names.
//
// Order is preserved on both sides: NamesToAdd follows desired order,
// NamesToRemove/TagsToRemove follow current-tag order. Names match
// exactly. Duplicate tags sharing a name are each independently
// eligible for removal.
func Diff(current []catalog.Tag, desired []string) Delta {
	have := make(map[string]bool, len(current))
	for _, tag := range current {
		have[tag.Name()] = true
	}

	want := make(map[string]bool, len(desired))
	for _, name := range desired {
		want[name] = true
	}

	var d Delta
	for _, name := range desired {
		if !have[name] {
			d.NamesToAdd = append(d.NamesToAdd, name)
		}
	}
	for _, tag := range current {
		if !want[tag.Name()] {
			d.NamesToRemove = append(d.NamesToRemove, tag.Name())
			d.TagsToRemove = append(d.TagsToRemove, tag)
		}
	}

	return d
}

// Apply performs the delta's additions and removals on item through
// its mutation hooks. events may be nil.
func Apply(item catalog.Item, d Delta, events func(catalog.Event)) {
	for _, name := range d.NamesToAdd {
		item.AddTag(name)
	}
	for _, tag := range d.TagsToRemove {
		item.RemoveTag(tag)
	}

	if events != nil && !d.IsEmpty() {
		events(catalog.Event{
			Message: fmt.Sprintf("keywords for %s: %d added, %d removed", item.ID(), len(d.NamesToAdd), len(d.TagsToRemove)),
			Level:   catalog.LevelVerbose,
		})
	}
}
