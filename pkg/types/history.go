package types

import (
	"encoding/json"
	"fmt"
)

// HistoryLimit caps each history category; older entries are evicted first.
const HistoryLimit = 50

// History categories.
const (
	CategoryTasks    = "tasks"
	CategoryTimeline = "timeline"
	CategoryNotes    = "notes"
)

// HistoryCategories lists the categories in display order.
var HistoryCategories = []string{CategoryTasks, CategoryTimeline, CategoryNotes}

// ValidCategory reports whether c is a history category.
func ValidCategory(c string) bool {
	for _, k := range HistoryCategories {
		if k == c {
			return true
		}
	}
	return false
}

// Deleted wraps an item removed from its collection. It marshals flat: the
// item's own fields plus deletedAt.
type Deleted[T any] struct {
	Item      T
	DeletedAt int64
}

// MarshalJSON writes the item fields and deletedAt as one object.
func (d Deleted[T]) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(d.Item)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("history item is not an object: %w", err)
	}
	at, err := json.Marshal(d.DeletedAt)
	if err != nil {
		return nil, err
	}
	fields["deletedAt"] = at
	return json.Marshal(fields)
}

// UnmarshalJSON reads the flat form written by MarshalJSON.
func (d *Deleted[T]) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &d.Item); err != nil {
		return err
	}
	var meta struct {
		DeletedAt int64 `json:"deletedAt"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return err
	}
	d.DeletedAt = meta.DeletedAt
	return nil
}

// History is the undo log of deleted items, one capped list per category,
// newest first.
type History struct {
	Tasks    []Deleted[Task]          `json:"tasks"`
	Timeline []Deleted[TimelineEntry] `json:"timeline"`
	Notes    []Deleted[Note]          `json:"notes"`
}

// MarshalJSON writes empty categories as [] rather than null.
func (h History) MarshalJSON() ([]byte, error) {
	type plain History
	p := plain(h)
	if p.Tasks == nil {
		p.Tasks = []Deleted[Task]{}
	}
	if p.Timeline == nil {
		p.Timeline = []Deleted[TimelineEntry]{}
	}
	if p.Notes == nil {
		p.Notes = []Deleted[Note]{}
	}
	return json.Marshal(p)
}

// Len returns the number of entries in a category.
func (h History) Len(category string) (int, error) {
	switch category {
	case CategoryTasks:
		return len(h.Tasks), nil
	case CategoryTimeline:
		return len(h.Timeline), nil
	case CategoryNotes:
		return len(h.Notes), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
}

// PushCapped prepends entry and truncates the list to HistoryLimit.
func PushCapped[T any](list []Deleted[T], entry Deleted[T]) []Deleted[T] {
	out := make([]Deleted[T], 0, min(len(list)+1, HistoryLimit))
	out = append(out, entry)
	for _, e := range list {
		if len(out) == HistoryLimit {
			break
		}
		out = append(out, e)
	}
	return out
}

// TakeAt removes the entry at index and returns it with the remaining list.
// Returns ErrInvalidIndex when index is out of range.
func TakeAt[T any](list []Deleted[T], index int) (Deleted[T], []Deleted[T], error) {
	if index < 0 || index >= len(list) {
		var zero Deleted[T]
		return zero, list, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	entry := list[index]
	rest := make([]Deleted[T], 0, len(list)-1)
	rest = append(rest, list[:index]...)
	rest = append(rest, list[index+1:]...)
	return entry, rest, nil
}
