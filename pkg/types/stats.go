package types

import (
	"fmt"
	"time"
)

// Stat kinds tracked per day.
const (
	StatAdded     = "added"
	StatCompleted = "completed"
)

// DateKeyLayout formats the calendar-date keys of Stats.Daily.
const DateKeyLayout = "2006-01-02"

// DayStat counts task activity on one calendar day. Counters only grow.
type DayStat struct {
	Added     int `json:"added"`
	Completed int `json:"completed"`
}

// Active reports whether anything happened on the day.
func (d DayStat) Active() bool {
	return d.Added > 0 || d.Completed > 0
}

// Stats is the per-day activity document.
type Stats struct {
	Daily map[string]DayStat `json:"daily"`
}

// DateKey returns the Stats.Daily key for t in t's location.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// Day returns the counters for a date key, zero if absent.
func (s Stats) Day(key string) DayStat {
	return s.Daily[key]
}

// Track increments the kind counter of the day under key.
// Returns ErrInvalidField for an unknown kind.
func (s *Stats) Track(key, kind string) error {
	if s.Daily == nil {
		s.Daily = make(map[string]DayStat)
	}
	day := s.Daily[key]
	switch kind {
	case StatAdded:
		day.Added++
	case StatCompleted:
		day.Completed++
	default:
		return fmt.Errorf("%w: stat %q", ErrInvalidField, kind)
	}
	s.Daily[key] = day
	return nil
}
