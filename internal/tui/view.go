package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/flowtask/internal/render"
)

const mainHelp = "tab pane  j/k move  a add  e edit  space toggle  d delete  J/K reorder  n quote  Q/E/X add/edit/delete quote  T time  D days  t theme  s stats  h history  v vault  ? help  q quit"

// View renders the whole screen.
func (m Model) View() string {
	p := m.palette()
	parts := []string{p.RenderHeader(render.HeaderFor(m.app), m.width), ""}

	switch m.overlay {
	case overlayStats:
		parts = append(parts, m.statsView(p))
	case overlayHistory:
		parts = append(parts, p.Section("History", p.HistoryTabs(m.historyTab)+"\n\n"+m.historyBody(p)))
		parts = append(parts, p.Muted.Render("tab category  j/k move  r restore  C clear all  esc close"))
	case overlayVault:
		parts = append(parts, p.Section("Vault", p.Vault(m.app.Vault, m.vaultCursor, m.app.Now())))
		parts = append(parts, p.Muted.Render("a text  l link  i image  c copy  d delete  esc close"))
	case overlayHelp:
		parts = append(parts, p.Section("Keys", strings.ReplaceAll(mainHelp, "  ", "\n")))
	default:
		parts = append(parts, m.mainView(p))
	}

	if m.mode != inputNone {
		parts = append(parts, "", m.input.View())
	}
	if m.notice != "" {
		parts = append(parts, "", p.Notice.Render(m.notice))
	}
	return strings.Join(parts, "\n")
}

func (m Model) cursor(pn pane) int {
	if m.focus == pn {
		return m.cursors[pn]
	}
	return -1
}

func (m Model) mainView(p render.Palette) string {
	half := max(30, m.width/2-2)
	tasks := p.Card.Width(half).Render(p.Accent.Render("Tasks") + "\n" + p.Todos(m.app.Todos, m.cursor(paneTasks)))
	timeline := p.Card.Width(half).Render(p.Accent.Render("Timeline") + "\n" + p.Timeline(m.app.Timeline, m.cursor(paneTimeline)))
	notes := p.Section("Notes", p.Notes(m.app.Notes, m.cursor(paneNotes), m.width))

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, tasks, " ", timeline), notes}
	if q, ok := m.app.CurrentQuote(); ok {
		rows = append(rows, p.Quote(q))
	}
	rows = append(rows, p.Muted.Render(mainHelp))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) historyBody(p render.Palette) string {
	entries, err := m.app.HistoryEntries(m.historyTab)
	if err != nil {
		return p.Muted.Render(err.Error())
	}
	return p.History(m.historyTab, entries, m.historyCursor, m.app.Now())
}

func (m Model) statsView(p render.Palette) string {
	week, peak := m.app.Week()
	body := strings.Join([]string{
		p.Totals(m.app.Totals()),
		"",
		p.Title.Render(m.app.Now().Format("January 2006")),
		p.Month(m.app.Month()),
		"",
		p.Title.Render("Last 7 days"),
		p.Week(week, peak),
	}, "\n")
	return p.Section("Stats", body)
}
