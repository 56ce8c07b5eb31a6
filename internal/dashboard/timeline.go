package dashboard

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// AddTimelineEntry appends a placeholder entry spanning today.
func (a *App) AddTimelineEntry() (types.TimelineEntry, error) {
	today := a.now().Day()
	entry := types.TimelineEntry{
		ID:       a.ids.next(),
		Time:     types.DefaultTimelineTime,
		Title:    types.DefaultTimelineTitle,
		DayStart: today,
		DayEnd:   today,
	}
	a.Timeline = append(a.Timeline, entry)
	if err := a.saveTimeline(); err != nil {
		return types.TimelineEntry{}, err
	}
	return entry, nil
}

// UpdateTimelineEntry sets one field of an entry. Day fields that are not an
// integer in 1..31 are stored as 1.
func (a *App) UpdateTimelineEntry(id int64, field, value string) error {
	i := a.timelineIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: timeline entry %d", types.ErrNotFound, id)
	}
	e := &a.Timeline[i]
	switch field {
	case types.TimelineFieldTime:
		e.Time = value
	case types.TimelineFieldTitle:
		e.Title = value
	case types.TimelineFieldDayStart:
		e.DayStart = parseDay(value)
	case types.TimelineFieldDayEnd:
		e.DayEnd = parseDay(value)
	default:
		return fmt.Errorf("%w: %q", types.ErrInvalidField, field)
	}
	return a.saveTimeline()
}

func parseDay(value string) int {
	d, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || d < 1 || d > 31 {
		return 1
	}
	return d
}

// ToggleTimelineCurrent flips the current flag of one entry and clears it on
// every other entry, so at most one entry is current.
func (a *App) ToggleTimelineCurrent(id int64) error {
	i := a.timelineIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: timeline entry %d", types.ErrNotFound, id)
	}
	for j := range a.Timeline {
		if j == i {
			a.Timeline[j].Current = !a.Timeline[j].Current
		} else {
			a.Timeline[j].Current = false
		}
	}
	return a.saveTimeline()
}

// CurrentTimelineEntry returns the entry marked current, if any.
func (a *App) CurrentTimelineEntry() (types.TimelineEntry, bool) {
	for _, e := range a.Timeline {
		if e.Current {
			return e, true
		}
	}
	return types.TimelineEntry{}, false
}

// DeleteTimelineEntry moves an entry into history.
func (a *App) DeleteTimelineEntry(id int64) error {
	i := a.timelineIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: timeline entry %d", types.ErrNotFound, id)
	}
	entry := a.Timeline[i]
	a.History.Timeline = types.PushCapped(a.History.Timeline, types.Deleted[types.TimelineEntry]{Item: entry, DeletedAt: a.now().UnixMilli()})
	if err := a.saveHistory(); err != nil {
		return err
	}
	a.Timeline = slices.Delete(a.Timeline, i, i+1)
	return a.saveTimeline()
}

// TimelineEntry returns the entry with the given id.
func (a *App) TimelineEntry(id int64) (types.TimelineEntry, bool) {
	i := a.timelineIndex(id)
	if i < 0 {
		return types.TimelineEntry{}, false
	}
	return a.Timeline[i], true
}

func (a *App) timelineIndex(id int64) int {
	return slices.IndexFunc(a.Timeline, func(e types.TimelineEntry) bool { return e.ID == id })
}
