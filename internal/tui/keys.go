package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur := m.cursors[m.focus]
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % paneCount
	case "shift+tab":
		m.focus = (m.focus + paneCount - 1) % paneCount
	case "j", "down":
		m.cursors[m.focus] = clamp(cur+1, m.paneLen(m.focus))
	case "k", "up":
		m.cursors[m.focus] = clamp(cur-1, m.paneLen(m.focus))
	case "s":
		m.overlay = overlayStats
	case "h":
		m.overlay = overlayHistory
		m.fixCursors()
	case "v":
		m.overlay = overlayVault
		m.fixCursors()
	case "?":
		m.overlay = overlayHelp
	case "t":
		if _, err := m.app.ToggleTheme(); err != nil {
			return m.fail(err)
		}
	case "n":
		if _, err := m.app.RandomQuote(); err != nil {
			return m.fail(err)
		}
	case "Q":
		return m.prompt(inputAddQuote, 0, "", "quote (text | author)")
	case "E":
		q, ok := m.app.CurrentQuote()
		if !ok {
			return m, nil
		}
		return m.prompt(inputEditQuote, 0, q.Text+" | "+q.Author, "quote (text | author)")
	case "X":
		if err := m.app.DeleteQuote(m.app.QuoteIndex); err != nil {
			return m.fail(err)
		}
		return m.flash("Quote deleted")
	default:
		return m.paneKey(msg.String())
	}
	return m, nil
}

// paneKey handles keys whose meaning depends on the focused pane.
func (m Model) paneKey(key string) (tea.Model, tea.Cmd) {
	cur := clamp(m.cursors[m.focus], m.paneLen(m.focus))
	switch m.focus {
	case paneTasks:
		return m.taskKey(key, cur)
	case paneTimeline:
		return m.timelineKey(key, cur)
	case paneNotes:
		return m.noteKey(key, cur)
	}
	return m, nil
}

func (m Model) taskKey(key string, cur int) (tea.Model, tea.Cmd) {
	if key == "a" {
		return m.prompt(inputAddTodo, 0, "", "new task")
	}
	if len(m.app.Todos) == 0 {
		return m, nil
	}
	task := m.app.Todos[cur]
	switch key {
	case " ", "x", "enter":
		res, err := m.app.ToggleTodo(task.ID)
		if err != nil {
			return m.fail(err)
		}
		if res.Achievement != "" {
			return m.flash(res.Achievement)
		}
	case "e":
		return m.prompt(inputEditTodo, task.ID, task.Text, "edit task")
	case "d":
		if err := m.app.DeleteTodo(task.ID); err != nil {
			return m.fail(err)
		}
		m.fixCursors()
		return m.flash("Task moved to history")
	case "K":
		if cur > 0 {
			if err := m.app.MoveTodo(task.ID, m.app.Todos[cur-1].ID, false); err != nil {
				return m.fail(err)
			}
			m.cursors[paneTasks] = cur - 1
		}
	case "J":
		if cur < len(m.app.Todos)-1 {
			if err := m.app.MoveTodo(task.ID, m.app.Todos[cur+1].ID, true); err != nil {
				return m.fail(err)
			}
			m.cursors[paneTasks] = cur + 1
		}
	}
	return m, nil
}

func (m Model) timelineKey(key string, cur int) (tea.Model, tea.Cmd) {
	if key == "a" {
		if _, err := m.app.AddTimelineEntry(); err != nil {
			return m.fail(err)
		}
		m.cursors[paneTimeline] = len(m.app.Timeline) - 1
		return m, nil
	}
	if len(m.app.Timeline) == 0 {
		return m, nil
	}
	e := m.app.Timeline[cur]
	switch key {
	case " ", "x", "enter":
		if err := m.app.ToggleTimelineCurrent(e.ID); err != nil {
			return m.fail(err)
		}
	case "e":
		return m.prompt(inputTimelineTitle, e.ID, e.Title, "title")
	case "T":
		return m.prompt(inputTimelineTime, e.ID, e.Time, "time (HH:MM)")
	case "D":
		return m.prompt(inputTimelineDays, e.ID, fmt.Sprintf("%d-%d", e.DayStart, e.DayEnd), "days (start-end)")
	case "d":
		if err := m.app.DeleteTimelineEntry(e.ID); err != nil {
			return m.fail(err)
		}
		m.fixCursors()
		return m.flash("Timeline entry moved to history")
	}
	return m, nil
}

func (m Model) noteKey(key string, cur int) (tea.Model, tea.Cmd) {
	if key == "a" {
		if _, err := m.app.AddNote(); err != nil {
			return m.fail(err)
		}
		m.cursors[paneNotes] = len(m.app.Notes) - 1
		return m, nil
	}
	if len(m.app.Notes) == 0 {
		return m, nil
	}
	n := m.app.Notes[cur]
	switch key {
	case "e", "enter":
		return m.prompt(inputEditNote, n.ID, n.Text, "note")
	case "d":
		if len(m.app.Notes) <= 1 {
			return m.flash("Keep at least one note")
		}
		if err := m.app.DeleteNote(n.ID); err != nil {
			return m.fail(err)
		}
		m.fixCursors()
	}
	return m, nil
}

func (m Model) updateSimpleOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "s", "?":
		m.overlay = overlayNone
	}
	return m, nil
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n, _ := m.app.History.Len(m.historyTab)
	switch msg.String() {
	case "esc", "q", "h":
		m.overlay = overlayNone
	case "tab", "right", "l":
		m.historyTab = nextCategory(m.historyTab, 1)
		m.historyCursor = 0
	case "shift+tab", "left":
		m.historyTab = nextCategory(m.historyTab, -1)
		m.historyCursor = 0
	case "j", "down":
		m.historyCursor = clamp(m.historyCursor+1, n)
	case "k", "up":
		m.historyCursor = clamp(m.historyCursor-1, n)
	case "r", "enter":
		if n == 0 {
			return m, nil
		}
		if _, err := m.app.Restore(m.historyTab, m.historyCursor); err != nil {
			return m.fail(err)
		}
		m.fixCursors()
		return m.flash("Restored")
	case "C":
		if err := m.app.ClearHistory(); err != nil {
			return m.fail(err)
		}
		m.fixCursors()
		return m.flash("History cleared")
	}
	return m, nil
}

func nextCategory(c string, step int) string {
	cats := types.HistoryCategories
	for i, k := range cats {
		if k == c {
			return cats[(i+step+len(cats))%len(cats)]
		}
	}
	return cats[0]
}

func (m Model) updateVault(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.app.Vault)
	switch msg.String() {
	case "esc", "q", "v":
		m.overlay = overlayNone
	case "j", "down":
		m.vaultCursor = clamp(m.vaultCursor+1, n)
	case "k", "up":
		m.vaultCursor = clamp(m.vaultCursor-1, n)
	case "a":
		return m.prompt(inputVaultText, 0, "", "text")
	case "l":
		return m.prompt(inputVaultLink, 0, "", "link")
	case "i":
		return m.prompt(inputVaultImage, 0, "", "image file path")
	case "c", "enter":
		if n == 0 {
			return m, nil
		}
		if err := m.clip(m.app.Vault[m.vaultCursor].Content); err != nil {
			return m.fail(fmt.Errorf("copy failed: %w", err))
		}
		return m.flash("Copied to clipboard")
	case "d":
		if n == 0 {
			return m, nil
		}
		if err := m.app.DeleteVaultItem(m.app.Vault[m.vaultCursor].ID); err != nil {
			return m.fail(err)
		}
		m.fixCursors()
	}
	return m, nil
}
