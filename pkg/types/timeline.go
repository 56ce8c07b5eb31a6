package types

// Timeline entry fields accepted by field updates.
const (
	TimelineFieldTime     = "time"
	TimelineFieldTitle    = "title"
	TimelineFieldDayStart = "dayStart"
	TimelineFieldDayEnd   = "dayEnd"
)

// Defaults for entries added from the dashboard.
const (
	DefaultTimelineTime  = "00:00"
	DefaultTimelineTitle = "New task"
)

// TimelineEntry is a block of the day plan. DayStart and DayEnd are days of
// the month (1..31). At most one entry in a timeline has Current set.
type TimelineEntry struct {
	ID       int64  `json:"id"`
	Time     string `json:"time"`
	Title    string `json:"title"`
	DayStart int    `json:"dayStart"`
	DayEnd   int    `json:"dayEnd"`
	Current  bool   `json:"current"`
}

// Migrate fills day fields missing from documents written before they
// existed. Returns true if the entry changed.
func (e *TimelineEntry) Migrate(today int) bool {
	changed := false
	if e.DayStart == 0 {
		e.DayStart = today
		changed = true
	}
	if e.DayEnd == 0 {
		e.DayEnd = today
		changed = true
	}
	return changed
}

// DefaultTimeline returns the plan seeded when the timeline is empty.
func DefaultTimeline(today int) []TimelineEntry {
	seed := []struct{ time, title string }{
		{"09:00", "Morning routine"},
		{"10:00", "Deep work session"},
		{"12:00", "Lunch break"},
		{"14:00", "Meetings & calls"},
		{"16:00", "Review & wrap up"},
	}
	entries := make([]TimelineEntry, len(seed))
	for i, s := range seed {
		entries[i] = TimelineEntry{
			ID:       int64(i + 1),
			Time:     s.time,
			Title:    s.title,
			DayStart: today,
			DayEnd:   today,
		}
	}
	return entries
}
