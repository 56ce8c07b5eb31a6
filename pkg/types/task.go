package types

// Task is one entry of the todo list. Slice order is user priority.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Note is a sticky note. An empty Text is a blank note.
type Note struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// DefaultNoteCount is the number of blank notes seeded on first load.
const DefaultNoteCount = 4

// DefaultNotes returns the blank notes seeded when the notes document is empty.
func DefaultNotes() []Note {
	notes := make([]Note, DefaultNoteCount)
	for i := range notes {
		notes[i] = Note{ID: int64(i + 1)}
	}
	return notes
}
