package dashboard

import (
	"fmt"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// Restore moves the history entry at index back into its live collection
// under a fresh id. Tasks return to the top of the list; timeline entries
// and notes return to the end. A restored timeline entry is never current.
func (a *App) Restore(category string, index int) (int64, error) {
	id := int64(0)
	switch category {
	case types.CategoryTasks:
		entry, rest, err := types.TakeAt(a.History.Tasks, index)
		if err != nil {
			return 0, err
		}
		task := entry.Item
		task.ID = a.ids.next()
		id = task.ID
		a.Todos = append([]types.Task{task}, a.Todos...)
		a.History.Tasks = rest
		if err := a.saveTodos(); err != nil {
			return 0, err
		}
	case types.CategoryTimeline:
		entry, rest, err := types.TakeAt(a.History.Timeline, index)
		if err != nil {
			return 0, err
		}
		e := entry.Item
		e.ID = a.ids.next()
		e.Current = false
		id = e.ID
		a.Timeline = append(a.Timeline, e)
		a.History.Timeline = rest
		if err := a.saveTimeline(); err != nil {
			return 0, err
		}
	case types.CategoryNotes:
		entry, rest, err := types.TakeAt(a.History.Notes, index)
		if err != nil {
			return 0, err
		}
		n := entry.Item
		n.ID = a.ids.next()
		id = n.ID
		a.Notes = append(a.Notes, n)
		a.History.Notes = rest
		if err := a.saveNotes(); err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidCategory, category)
	}
	if err := a.saveHistory(); err != nil {
		return 0, err
	}
	return id, nil
}

// ClearHistory empties every history category.
func (a *App) ClearHistory() error {
	a.History = types.History{}
	return a.saveHistory()
}

// HistoryEntry is a category-independent view of one deleted item.
type HistoryEntry struct {
	Category  string `json:"category"`
	Index     int    `json:"index"`
	Text      string `json:"text"`
	DeletedAt int64  `json:"deletedAt"`
}

// HistoryEntries lists one category newest first. Timeline entries read as
// "time - title".
func (a *App) HistoryEntries(category string) ([]HistoryEntry, error) {
	var out []HistoryEntry
	switch category {
	case types.CategoryTasks:
		for i, d := range a.History.Tasks {
			out = append(out, HistoryEntry{category, i, d.Item.Text, d.DeletedAt})
		}
	case types.CategoryTimeline:
		for i, d := range a.History.Timeline {
			out = append(out, HistoryEntry{category, i, d.Item.Time + " - " + d.Item.Title, d.DeletedAt})
		}
	case types.CategoryNotes:
		for i, d := range a.History.Notes {
			out = append(out, HistoryEntry{category, i, d.Item.Text, d.DeletedAt})
		}
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidCategory, category)
	}
	return out, nil
}
