package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// prompt opens the text input for mode, prefilled with value.
func (m Model) prompt(mode inputMode, id int64, value, placeholder string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.editingID = id
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) closeInput() Model {
	m.mode = inputNone
	m.editingID = 0
	m.input.Blur()
	m.input.SetValue("")
	return m
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeInput(), nil
	case "enter":
		mode, id, value := m.mode, m.editingID, m.input.Value()
		m = m.closeInput()
		return m.commit(mode, id, value)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commit applies the collected input. Empty task text is ignored.
func (m Model) commit(mode inputMode, id int64, value string) (tea.Model, tea.Cmd) {
	var err error
	switch mode {
	case inputAddTodo:
		if strings.TrimSpace(value) == "" {
			return m, nil
		}
		_, err = m.app.AddTodo(value)
		m.cursors[paneTasks] = 0
	case inputEditTodo:
		if strings.TrimSpace(value) == "" {
			return m, nil
		}
		err = m.app.UpdateTodoText(id, value)
	case inputTimelineTitle:
		err = m.app.UpdateTimelineEntry(id, types.TimelineFieldTitle, value)
	case inputTimelineTime:
		err = m.app.UpdateTimelineEntry(id, types.TimelineFieldTime, value)
	case inputTimelineDays:
		start, end, ok := strings.Cut(value, "-")
		if !ok {
			end = start
		}
		if err = m.app.UpdateTimelineEntry(id, types.TimelineFieldDayStart, strings.TrimSpace(start)); err == nil {
			err = m.app.UpdateTimelineEntry(id, types.TimelineFieldDayEnd, strings.TrimSpace(end))
		}
	case inputEditNote:
		err = m.app.UpdateNote(id, value)
	case inputAddQuote:
		text, author, _ := strings.Cut(value, "|")
		_, err = m.app.AddQuote(text, author)
	case inputEditQuote:
		text, author, _ := strings.Cut(value, "|")
		err = m.app.EditQuote(m.app.QuoteIndex, text, author)
	case inputVaultText:
		_, err = m.app.AddVaultText(value)
		m.vaultCursor = 0
	case inputVaultLink:
		_, err = m.app.AddVaultLink(value)
		m.vaultCursor = 0
	case inputVaultImage:
		_, err = m.app.AddVaultImageFile(strings.TrimSpace(value))
		m.vaultCursor = 0
	}
	if err != nil {
		return m.fail(err)
	}
	m.fixCursors()
	return m, nil
}
