package render

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/flowtask/internal/dashboard"
	"github.com/mesh-intelligence/flowtask/internal/summary"
	"github.com/mesh-intelligence/flowtask/pkg/types"
)

var now = time.Date(2026, time.March, 14, 9, 5, 0, 0, time.UTC)

func light() Palette { return NewPalette(types.ThemeLight, types.Colors{}) }

func TestNewPalette(t *testing.T) {
	assert.Equal(t, types.DefaultColors, light().Colors)

	dark := NewPalette(types.ThemeDark, types.Colors{Primary: "#00ff00"})
	assert.True(t, dark.Dark)
	assert.Equal(t, "#00ff00", dark.Colors.Primary)
	assert.Equal(t, darkColors.Bg, dark.Colors.Bg)
}

func TestHeader(t *testing.T) {
	out := light().RenderHeader(Header{Now: now, Streak: 4, Progress: 50, Open: 1, Done: 1}, 80)

	assert.Contains(t, out, "Good morning")
	assert.Contains(t, out, "09:05")
	assert.Contains(t, out, "Saturday, March 14, 2026")
	assert.Contains(t, out, "streak 4")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "1 open, 1 done")
}

func TestProgressBarWidth(t *testing.T) {
	p := light()
	for _, pct := range []float64{-5, 0, 33.3, 100, 140} {
		assert.Equal(t, 20, lipgloss.Width(p.ProgressBar(pct, 20)), "pct %v", pct)
	}
	assert.Empty(t, p.ProgressBar(50, 0))
}

func TestTodos(t *testing.T) {
	out := light().Todos([]types.Task{{ID: 1, Text: "write"}, {ID: 2, Text: "ship", Completed: true}}, 1)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], " 1. [ ] write")
	assert.Contains(t, lines[1], " 2. [x] ship")
	assert.True(t, strings.HasPrefix(lines[1], ">"), "cursor marks the selected row")

	assert.Contains(t, light().Todos(nil, -1), "No tasks yet")
}

func TestTimeline(t *testing.T) {
	out := light().Timeline([]types.TimelineEntry{
		{ID: 1, Time: "09:00", Title: "Standup", DayStart: 3, DayEnd: 9},
		{ID: 2, Time: "10:00", Title: "Focus", DayStart: 14, DayEnd: 14, Current: true},
	}, -1)

	assert.Contains(t, out, "days 3-9")
	assert.Contains(t, out, "day 14")
	assert.Equal(t, 1, strings.Count(out, "▶"))
}

func TestNotes(t *testing.T) {
	out := light().Notes([]types.Note{{ID: 1, Text: "milk"}, {ID: 2}, {ID: 3, Text: "call"}}, 0, 80)

	assert.Contains(t, out, "milk")
	assert.Contains(t, out, "empty note")
	assert.Contains(t, out, "call")
}

func TestQuote(t *testing.T) {
	out := light().Quote(types.Quote{Text: "Keep going", Author: "Anon"})
	assert.Contains(t, out, `"Keep going"`)
	assert.Contains(t, out, "- Anon")
}

func TestHistoryTruncatesNotes(t *testing.T) {
	long := strings.Repeat("a", 100) + "TAIL"
	entries := []dashboard.HistoryEntry{{Category: types.CategoryNotes, Text: long, DeletedAt: now.Add(-2 * time.Hour).UnixMilli()}}

	out := light().History(types.CategoryNotes, entries, -1, now)
	assert.Contains(t, out, strings.Repeat("a", 100)+"...")
	assert.NotContains(t, out, "TAIL")
	assert.Contains(t, out, "2h ago")

	assert.Contains(t, light().History(types.CategoryTasks, nil, -1, now), "No deleted tasks yet")
}

func TestHistoryTabs(t *testing.T) {
	out := light().HistoryTabs(types.CategoryTimeline)
	for _, c := range types.HistoryCategories {
		assert.Contains(t, out, c)
	}
}

func TestVault(t *testing.T) {
	img := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte{1, 2, 3})
	out := light().Vault([]types.VaultItem{
		{ID: 1, Type: types.VaultText, Content: "hello\nworld", CreatedAt: now.UnixMilli()},
		{ID: 2, Type: types.VaultLink, Content: "https://example.com", CreatedAt: now.Add(-3 * time.Minute).UnixMilli()},
		{ID: 3, Type: types.VaultImage, Content: img, CreatedAt: now.Add(-48 * time.Hour).UnixMilli()},
	}, -1, now)

	assert.Contains(t, out, "hello world")
	assert.Contains(t, out, "Just now")
	assert.Contains(t, out, "https://example.com")
	assert.Contains(t, out, "3m ago")
	assert.Contains(t, out, "image/png, 3 B")
	assert.Contains(t, out, "2d ago")

	assert.Contains(t, light().Vault(nil, -1, now), "Your vault is empty")
}

func TestMonthAndWeek(t *testing.T) {
	days := []dashboard.MonthDay{
		{Day: 1, Intensity: 0},
		{Day: 2, Intensity: 5, Stat: types.DayStat{Added: 7, Completed: 7}},
	}
	out := light().Month(days)
	assert.Contains(t, out, " 1·")
	assert.Contains(t, out, " 2█")

	week := light().Week([]dashboard.WeekDay{
		{Name: "Fri", Stat: types.DayStat{Added: 2, Completed: 1}},
		{Name: "Sat", Stat: types.DayStat{Added: 4, Completed: 2}, IsToday: true},
	}, 2)
	assert.Contains(t, week, "Fri")
	assert.Contains(t, week, "1/2")
	assert.Contains(t, week, "2/4")
}

func TestWeekDrawsAddedBar(t *testing.T) {
	week := light().Week([]dashboard.WeekDay{
		{Name: "Sat", Stat: types.DayStat{Added: 4, Completed: 0}},
	}, 4)
	assert.Contains(t, week, strings.Repeat("▇", weekBarWidth), "added bar at full width")
	assert.Contains(t, week, "0/4")
}

func TestTotalsAndSummary(t *testing.T) {
	assert.Contains(t, light().Totals(dashboard.Totals{Total: 3, Completed: 2, Rate: 67, Streak: 7}), "67%")

	out := light().Summary(summary.Summary{Tasks: 3, Completed: 1, Streak: 2, Notes: 4, Status: summary.StatusReady, Hint: "Run flowtask"})
	assert.Contains(t, out, "Ready")
	assert.Contains(t, out, "Run flowtask")
}
