package dashboard

import (
	"math"
	"time"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// MaxIntensity caps the month heatmap shading level.
const MaxIntensity = 5

// TrackStat counts one event of kind ("added" or "completed") against today.
func (a *App) TrackStat(kind string) error {
	if err := a.Stats.Track(types.DateKey(a.now()), kind); err != nil {
		return err
	}
	return a.save(types.KeyStats, a.Stats)
}

// Today returns today's counters.
func (a *App) Today() types.DayStat {
	return a.Stats.Day(types.DateKey(a.now()))
}

// WeekDay is one bar of the weekly chart.
type WeekDay struct {
	Name    string        `json:"name"`
	Date    string        `json:"date"`
	Stat    types.DayStat `json:"stat"`
	IsToday bool          `json:"isToday"`
}

// Week returns the last seven days ending today, oldest first, and the
// largest added or completed count among them (at least 1, for bar scaling).
func (a *App) Week() ([]WeekDay, int) {
	now := a.now()
	days := make([]WeekDay, 0, 7)
	peak := 1
	for i := 6; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		key := types.DateKey(d)
		stat := a.Stats.Day(key)
		days = append(days, WeekDay{
			Name:    d.Weekday().String()[:3],
			Date:    key,
			Stat:    stat,
			IsToday: i == 0,
		})
		peak = max(peak, stat.Added, stat.Completed)
	}
	return days, peak
}

// MonthDay is one cell of the month heatmap.
type MonthDay struct {
	Day       int           `json:"day"`
	Date      string        `json:"date"`
	Stat      types.DayStat `json:"stat"`
	Intensity int           `json:"intensity"`
	IsToday   bool          `json:"isToday"`
}

// Month returns a cell for every day of the current month.
func (a *App) Month() []MonthDay {
	now := a.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	n := first.AddDate(0, 1, -1).Day()
	out := make([]MonthDay, n)
	for i := range n {
		d := first.AddDate(0, 0, i)
		key := types.DateKey(d)
		stat := a.Stats.Day(key)
		out[i] = MonthDay{
			Day:       i + 1,
			Date:      key,
			Stat:      stat,
			Intensity: min(stat.Completed, MaxIntensity),
			IsToday:   i+1 == now.Day(),
		}
	}
	return out
}

// Totals summarizes the todo list and the streak.
type Totals struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Rate      int `json:"rate"`
	Streak    int `json:"streak"`
}

// Totals counts the current todo list. Rate is the rounded completion
// percentage.
func (a *App) Totals() Totals {
	t := Totals{
		Total:     len(a.Todos),
		Completed: a.CompletedCount(),
		Streak:    a.Streak,
	}
	if t.Total > 0 {
		t.Rate = int(math.Round(float64(t.Completed) / float64(t.Total) * 100))
	}
	return t
}
