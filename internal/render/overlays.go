package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/mesh-intelligence/flowtask/internal/dashboard"
	"github.com/mesh-intelligence/flowtask/internal/summary"
	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// noteHistoryLimit caps how much of a deleted note the history list shows.
const noteHistoryLimit = 100

// History renders one history category.
func (p Palette) History(category string, entries []dashboard.HistoryEntry, cursor int, now time.Time) string {
	if len(entries) == 0 {
		return p.Muted.Render("No deleted " + category + " yet")
	}
	var b strings.Builder
	for i, e := range entries {
		text := e.Text
		if category == types.CategoryNotes {
			text = truncate(text, noteHistoryLimit)
		}
		fmt.Fprintf(&b, "%s%2d. %s  %s\n", p.cursorMark(i, cursor), i+1,
			p.Text.Render(oneLine(text)), p.Muted.Render(dashboard.FormatAgo(e.DeletedAt, now)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// HistoryTabs renders the category selector with active highlighted.
func (p Palette) HistoryTabs(active string) string {
	tabs := make([]string, len(types.HistoryCategories))
	for i, c := range types.HistoryCategories {
		if c == active {
			tabs[i] = p.Badge.Render(c)
		} else {
			tabs[i] = p.Muted.Render(c)
		}
	}
	return strings.Join(tabs, "  ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Vault renders vault items with a type badge and age.
func (p Palette) Vault(items []types.VaultItem, cursor int, now time.Time) string {
	if len(items) == 0 {
		return p.Muted.Render("Your vault is empty") + "\n" + p.Muted.Render("Save text, links, or images here")
	}
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%s%2d. %s %s  %s\n", p.cursorMark(i, cursor), i+1,
			p.Badge.Render(item.Type), p.vaultContent(item), p.Muted.Render(dashboard.FormatAgo(item.CreatedAt, now)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p Palette) vaultContent(item types.VaultItem) string {
	switch item.Type {
	case types.VaultImage:
		mime, data, err := dashboard.DecodeImage(item)
		if err != nil {
			return p.Text.Render(truncate(item.Content, 60))
		}
		return p.Text.Render(fmt.Sprintf("%s, %s", mime, humanize.IBytes(uint64(len(data)))))
	case types.VaultLink:
		return p.Accent.Underline(true).Render(truncate(item.Content, 60))
	}
	return p.Text.Render(truncate(oneLine(item.Content), 60))
}

// heatShades go from no activity to the busiest day.
var heatShades = []string{"·", "░", "▒", "▓", "█", "█"}

// Month renders the heat map for the current month, seven cells per row.
func (p Palette) Month(days []dashboard.MonthDay) string {
	var b strings.Builder
	for i, d := range days {
		cell := fmt.Sprintf("%2d%s", d.Day, heatShades[min(d.Intensity, len(heatShades)-1)])
		switch {
		case d.IsToday:
			cell = p.Accent.Render(cell)
		case d.Stat.Active():
			cell = p.Text.Render(cell)
		default:
			cell = p.Muted.Render(cell)
		}
		b.WriteString(cell)
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	return strings.TrimRight(b.String(), "\n ")
}

// weekBarWidth is the longest bar of the weekly chart, in cells.
const weekBarWidth = 10

// Week renders a completed bar and an added bar per day, both scaled by
// peak, labelled completed/added.
func (p Palette) Week(days []dashboard.WeekDay, peak int) string {
	peak = max(peak, 1)
	bar := func(style lipgloss.Style, n int) string {
		cells := min(n, peak) * weekBarWidth / peak
		return lipgloss.NewStyle().Width(weekBarWidth).Render(style.Render(strings.Repeat("▇", cells)))
	}
	var b strings.Builder
	for _, d := range days {
		name := p.Text.Render(d.Name)
		if d.IsToday {
			name = p.Accent.Render(d.Name)
		}
		fmt.Fprintf(&b, "%s %s %s %s\n", name,
			bar(p.Accent, d.Stat.Completed), bar(p.Muted, d.Stat.Added),
			p.Muted.Render(fmt.Sprintf("%d/%d", d.Stat.Completed, d.Stat.Added)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Totals renders the all-time counters.
func (p Palette) Totals(t dashboard.Totals) string {
	return fmt.Sprintf("%s %d   %s %d   %s %d%%   %s %d",
		p.Muted.Render("total"), t.Total,
		p.Muted.Render("completed"), t.Completed,
		p.Muted.Render("rate"), t.Rate,
		p.Muted.Render("streak"), t.Streak)
}

// Summary renders the companion status panel.
func (p Palette) Summary(s summary.Summary) string {
	status := p.Accent.Render(s.Status)
	if s.Status != summary.StatusActive {
		status = p.Text.Render(s.Status)
	}
	lines := []string{
		fmt.Sprintf("%s %d   %s %d   %s %d   %s %d",
			p.Muted.Render("tasks"), s.Tasks,
			p.Muted.Render("completed"), s.Completed,
			p.Muted.Render("streak"), s.Streak,
			p.Muted.Render("notes"), s.Notes),
		p.Muted.Render("status") + " " + status,
		p.Muted.Render(s.Hint),
	}
	return p.Section("FlowTask", strings.Join(lines, "\n"))
}
