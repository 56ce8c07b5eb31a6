// Package dashboard holds the FlowTask application state and every mutation
// on it. Each mutation updates the in-memory collections and then persists
// the affected documents; rendering lives in other packages.
package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// App is the explicit dashboard state. The exported collections are read by
// renderers; change them only through App methods so they stay persisted.
type App struct {
	store         types.Store
	log           *logrus.Entry
	now           func() time.Time
	rand          *rand.Rand
	ids           idSource
	maxImageBytes int64

	Todos      []types.Task
	Timeline   []types.TimelineEntry
	Notes      []types.Note
	Quotes     []types.Quote
	QuoteIndex int
	Vault      []types.VaultItem
	History    types.History
	Stats      types.Stats
	Streak     int
	Theme      string
	Colors     types.Colors
	LastActive int64
}

// Option configures an App.
type Option func(*App)

// WithClock replaces time.Now, for tests and replays.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithLogger sets the logger used for load warnings.
func WithLogger(log *logrus.Entry) Option {
	return func(a *App) { a.log = log }
}

// WithRand sets the random source used to pick quotes.
func WithRand(r *rand.Rand) Option {
	return func(a *App) { a.rand = r }
}

// WithMaxImageBytes overrides the vault image size limit.
func WithMaxImageBytes(n int64) Option {
	return func(a *App) {
		if n > 0 {
			a.maxImageBytes = n
		}
	}
}

// New creates an App over an attached store. Call Load before use.
func New(store types.Store, opts ...Option) *App {
	a := &App{
		store:         store,
		log:           logrus.NewEntry(logrus.StandardLogger()),
		now:           time.Now,
		rand:          rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
		maxImageBytes: types.DefaultMaxImageBytes,
		Theme:         types.ThemeLight,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.WithField("component", "dashboard")
	a.ids.now = a.now
	return a
}

// Now returns the App clock reading.
func (a *App) Now() time.Time {
	return a.now()
}

// MaxImageBytes returns the vault image size limit.
func (a *App) MaxImageBytes() int64 {
	return a.maxImageBytes
}

// Load reads every document from the store. Absent documents take their
// defaults; malformed ones are logged and treated as absent. First-run seeds
// for the timeline and notes are persisted.
func (a *App) Load() error {
	today := a.now().Day()

	todos, _, err := loadJSON[[]types.Task](a, types.KeyTodos)
	if err != nil {
		return err
	}
	a.Todos = todos

	timeline, _, err := loadJSON[[]types.TimelineEntry](a, types.KeyTimeline)
	if err != nil {
		return err
	}
	if len(timeline) == 0 {
		timeline = types.DefaultTimeline(today)
		a.Timeline = timeline
		if err := a.save(types.KeyTimeline, a.Timeline); err != nil {
			return err
		}
	}
	for i := range timeline {
		timeline[i].Migrate(today)
	}
	a.Timeline = timeline

	notes, _, err := loadJSON[[]types.Note](a, types.KeyNotes)
	if err != nil {
		return err
	}
	a.Notes = notes
	if len(a.Notes) == 0 {
		a.Notes = types.DefaultNotes()
		if err := a.save(types.KeyNotes, a.Notes); err != nil {
			return err
		}
	}

	quotes, _, err := loadJSON[[]types.Quote](a, types.KeyQuotes)
	if err != nil {
		return err
	}
	if len(quotes) == 0 {
		quotes = types.DefaultQuotes()
	}
	a.Quotes = quotes
	a.QuoteIndex = a.rand.IntN(len(a.Quotes))

	if a.Vault, _, err = loadJSON[[]types.VaultItem](a, types.KeyVault); err != nil {
		return err
	}
	if a.History, _, err = loadJSON[types.History](a, types.KeyHistory); err != nil {
		return err
	}
	if a.Stats, _, err = loadJSON[types.Stats](a, types.KeyStats); err != nil {
		return err
	}
	if a.Stats.Daily == nil {
		a.Stats.Daily = make(map[string]types.DayStat)
	}
	if a.Streak, _, err = loadJSON[int](a, types.KeyStreak); err != nil {
		return err
	}
	if a.Colors, _, err = loadJSON[types.Colors](a, types.KeyColors); err != nil {
		return err
	}
	if a.LastActive, _, err = loadJSON[int64](a, types.KeyLastActive); err != nil {
		return err
	}
	if err := a.loadTheme(); err != nil {
		return err
	}

	a.ids.observe(a.maxID())
	return nil
}

// loadTheme accepts both the JSON string form and the bare word written by
// older dashboards.
func (a *App) loadTheme() error {
	raw, err := a.store.Load(types.KeyTheme)
	if errors.Is(err, types.ErrKeyNotFound) {
		a.Theme = types.ThemeLight
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", types.KeyTheme, err)
	}
	theme := strings.TrimSpace(string(raw))
	var s string
	if json.Unmarshal(raw, &s) == nil {
		theme = s
	}
	if theme != types.ThemeDark {
		theme = types.ThemeLight
	}
	a.Theme = theme
	return nil
}

// loadJSON decodes the document under key into a fresh T. It reports whether
// a well-formed document was found. Only store failures are errors.
func loadJSON[T any](a *App, key string) (T, bool, error) {
	var zero T
	raw, err := a.store.Load(key)
	if errors.Is(err, types.ErrKeyNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("loading %s: %w", key, err)
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		a.log.WithError(err).WithField("key", key).Warn("malformed document, using defaults")
		return zero, false, nil
	}
	return v, true, nil
}

// save marshals v and writes it under key.
func (a *App) save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := a.store.Save(key, raw); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

func (a *App) saveTodos() error    { return a.save(types.KeyTodos, nonNil(a.Todos)) }
func (a *App) saveTimeline() error { return a.save(types.KeyTimeline, nonNil(a.Timeline)) }
func (a *App) saveNotes() error    { return a.save(types.KeyNotes, nonNil(a.Notes)) }
func (a *App) saveQuotes() error   { return a.save(types.KeyQuotes, nonNil(a.Quotes)) }
func (a *App) saveVault() error    { return a.save(types.KeyVault, nonNil(a.Vault)) }
func (a *App) saveHistory() error  { return a.save(types.KeyHistory, a.History) }

// nonNil makes empty collections encode as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// maxID returns the largest id across every collection and history.
func (a *App) maxID() int64 {
	var m int64
	for _, t := range a.Todos {
		m = max(m, t.ID)
	}
	for _, e := range a.Timeline {
		m = max(m, e.ID)
	}
	for _, n := range a.Notes {
		m = max(m, n.ID)
	}
	for _, q := range a.Quotes {
		m = max(m, q.ID)
	}
	for _, v := range a.Vault {
		m = max(m, v.ID)
	}
	return m
}
