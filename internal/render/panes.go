package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// Todos renders the numbered task list. cursor < 0 hides the cursor.
func (p Palette) Todos(todos []types.Task, cursor int) string {
	if len(todos) == 0 {
		return p.Muted.Render("No tasks yet")
	}
	var b strings.Builder
	for i, t := range todos {
		box, text := "[ ]", p.Text.Render(t.Text)
		if t.Completed {
			box, text = "[x]", p.Done.Render(t.Text)
		}
		fmt.Fprintf(&b, "%s%2d. %s %s\n", p.cursorMark(i, cursor), i+1, box, text)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Timeline renders the schedule with a flag on the current entry.
func (p Palette) Timeline(entries []types.TimelineEntry, cursor int) string {
	if len(entries) == 0 {
		return p.Muted.Render("No timeline entries")
	}
	var b strings.Builder
	for i, e := range entries {
		flag := " "
		title := p.Text.Render(e.Title)
		if e.Current {
			flag = p.Accent.Render("▶")
			title = p.Accent.Render(e.Title)
		}
		days := p.Muted.Render(dayRange(e))
		fmt.Fprintf(&b, "%s%s %s  %s  %s\n", p.cursorMark(i, cursor), flag, p.Accent.Render(e.Time), title, days)
	}
	return strings.TrimRight(b.String(), "\n")
}

func dayRange(e types.TimelineEntry) string {
	if e.DayStart == e.DayEnd {
		return fmt.Sprintf("day %d", e.DayStart)
	}
	return fmt.Sprintf("days %d-%d", e.DayStart, e.DayEnd)
}

// Notes renders sticky notes as a grid of cards, two per row.
func (p Palette) Notes(notes []types.Note, cursor, width int) string {
	if len(notes) == 0 {
		return p.Muted.Render("No notes")
	}
	cardWidth := max(16, width/2-4)
	cards := make([]string, len(notes))
	for i, n := range notes {
		text := n.Text
		if strings.TrimSpace(text) == "" {
			text = p.Muted.Render("empty note")
		} else {
			text = p.Text.Render(text)
		}
		style := p.Card.Width(cardWidth)
		if i == cursor {
			style = style.BorderForeground(lipgloss.Color(p.Colors.Primary))
		}
		cards[i] = style.Render(fmt.Sprintf("%d\n%s", i+1, text))
	}
	var rows []string
	for i := 0; i < len(cards); i += 2 {
		if i+1 < len(cards) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], " ", cards[i+1]))
		} else {
			rows = append(rows, cards[i])
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Quote renders the quote card.
func (p Palette) Quote(q types.Quote) string {
	body := p.Text.Italic(true).Render(`"`+q.Text+`"`) + "\n" + p.Muted.Render("- "+q.Author)
	return p.Card.Render(body)
}
