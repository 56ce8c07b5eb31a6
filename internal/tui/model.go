// Package tui is the interactive terminal dashboard. It owns no state of its
// own beyond cursors and input mode; every key action calls a dashboard
// mutation and the view is rebuilt from the App.
package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/flowtask/internal/dashboard"
	"github.com/mesh-intelligence/flowtask/internal/render"
	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// NoticeDuration is how long a transient notice stays on screen.
const NoticeDuration = 2 * time.Second

type pane int

const (
	paneTasks pane = iota
	paneTimeline
	paneNotes
	paneCount
)

type overlay int

const (
	overlayNone overlay = iota
	overlayStats
	overlayHistory
	overlayVault
	overlayHelp
)

// inputMode names what the text input is collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputAddTodo
	inputEditTodo
	inputTimelineTitle
	inputTimelineTime
	inputTimelineDays
	inputEditNote
	inputAddQuote
	inputEditQuote
	inputVaultText
	inputVaultLink
	inputVaultImage
)

type tickMsg time.Time

type clearNoticeMsg struct{ seq int }

// Model is the bubbletea model for the dashboard.
type Model struct {
	app  *dashboard.App
	log  *logrus.Entry
	clip func(string) error

	focus   pane
	cursors [paneCount]int
	overlay overlay

	historyTab    string
	historyCursor int
	vaultCursor   int

	input     textinput.Model
	mode      inputMode
	editingID int64

	notice    string
	noticeSeq int

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) { m.clip = write }
}

// WithLogger sets the logger for failures that are only shown as notices.
func WithLogger(log *logrus.Entry) Option {
	return func(m *Model) { m.log = log }
}

// New creates a Model over a loaded App.
func New(app *dashboard.App, opts ...Option) Model {
	in := textinput.New()
	in.CharLimit = 500
	m := Model{
		app:        app,
		log:        logrus.NewEntry(logrus.StandardLogger()),
		clip:       clipboard.WriteAll,
		historyTab: types.CategoryTasks,
		input:      in,
		width:      100,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.log = m.log.WithField("component", "tui")
	return m
}

// Run marks the dashboard active and runs the program until the user quits.
func Run(app *dashboard.App, opts ...Option) error {
	if err := app.MarkActive(); err != nil {
		return err
	}
	_, err := tea.NewProgram(New(app, opts...), tea.WithAltScreen()).Run()
	return err
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the clock.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		return m, tick()
	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.updateInput(msg)
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.overlay {
		case overlayStats, overlayHelp:
			return m.updateSimpleOverlay(msg)
		case overlayHistory:
			return m.updateHistory(msg)
		case overlayVault:
			return m.updateVault(msg)
		}
		return m.updateMain(msg)
	}
	return m, nil
}

// flash shows text as a notice and schedules its removal.
func (m Model) flash(text string) (Model, tea.Cmd) {
	m.noticeSeq++
	m.notice = text
	seq := m.noticeSeq
	return m, tea.Tick(NoticeDuration, func(time.Time) tea.Msg { return clearNoticeMsg{seq: seq} })
}

// fail shows err as a notice.
func (m Model) fail(err error) (Model, tea.Cmd) {
	m.log.WithError(err).Debug("action failed")
	return m.flash(err.Error())
}

func (m Model) palette() render.Palette {
	return render.NewPalette(m.app.Theme, m.app.Colors)
}

func clamp(i, n int) int {
	if n == 0 {
		return 0
	}
	return max(0, min(i, n-1))
}

func (m Model) paneLen(p pane) int {
	switch p {
	case paneTasks:
		return len(m.app.Todos)
	case paneTimeline:
		return len(m.app.Timeline)
	case paneNotes:
		return len(m.app.Notes)
	}
	return 0
}

// fixCursors keeps every cursor inside its list after a mutation.
func (m *Model) fixCursors() {
	for p := range paneCount {
		m.cursors[p] = clamp(m.cursors[p], m.paneLen(p))
	}
	n, _ := m.app.History.Len(m.historyTab)
	m.historyCursor = clamp(m.historyCursor, n)
	m.vaultCursor = clamp(m.vaultCursor, len(m.app.Vault))
}
