package dashboard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// AddNote appends an empty note.
func (a *App) AddNote() (types.Note, error) {
	note := types.Note{ID: a.ids.next()}
	a.Notes = append(a.Notes, note)
	if err := a.saveNotes(); err != nil {
		return types.Note{}, err
	}
	return note, nil
}

// UpdateNote replaces a note's text. Empty text is allowed.
func (a *App) UpdateNote(id int64, text string) error {
	i := a.noteIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: note %d", types.ErrNotFound, id)
	}
	a.Notes[i].Text = text
	return a.saveNotes()
}

// DeleteNote removes a note. The last remaining note is never removed.
// Notes with only whitespace are discarded instead of kept in history.
func (a *App) DeleteNote(id int64) error {
	if len(a.Notes) <= 1 {
		return nil
	}
	i := a.noteIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: note %d", types.ErrNotFound, id)
	}
	note := a.Notes[i]
	if strings.TrimSpace(note.Text) != "" {
		a.History.Notes = types.PushCapped(a.History.Notes, types.Deleted[types.Note]{Item: note, DeletedAt: a.now().UnixMilli()})
		if err := a.saveHistory(); err != nil {
			return err
		}
	}
	a.Notes = slices.Delete(a.Notes, i, i+1)
	return a.saveNotes()
}

// Note returns the note with the given id.
func (a *App) Note(id int64) (types.Note, bool) {
	i := a.noteIndex(id)
	if i < 0 {
		return types.Note{}, false
	}
	return a.Notes[i], true
}

func (a *App) noteIndex(id int64) int {
	return slices.IndexFunc(a.Notes, func(n types.Note) bool { return n.ID == id })
}
