// Package summary computes the read-only status view of a FlowTask store:
// counts, streak, and whether the dashboard has been used recently.
// It never writes to the store.
package summary

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// Status values.
const (
	StatusActive     = "Active"
	StatusOverridden = "May be overridden"
	StatusReady      = "Ready"
)

// ActiveWindow is how recent the last activity must be to count as Active.
const ActiveWindow = 24 * time.Hour

// Summary is the companion status view.
type Summary struct {
	Tasks     int    `json:"tasks"`
	Completed int    `json:"completed"`
	Streak    int    `json:"streak"`
	Notes     int    `json:"notes"`
	Status    string `json:"status"`
	Hint      string `json:"hint"`
}

var hints = map[string]string{
	StatusActive:     "FlowTask is your dashboard",
	StatusOverridden: `Run "flowtask dash" to use FlowTask`,
	StatusReady:      "Run flowtask to start using FlowTask",
}

// Read builds a Summary from store. Malformed documents count as empty.
// Only store failures are returned as errors.
func Read(store types.Store, now time.Time) (Summary, error) {
	var s Summary

	todos, hasTodos, err := decode[[]types.Task](store, types.KeyTodos)
	if err != nil {
		return Summary{}, err
	}
	s.Tasks = len(todos)
	for _, t := range todos {
		if t.Completed {
			s.Completed++
		}
	}

	streak, hasStreak, err := decode[int](store, types.KeyStreak)
	if err != nil {
		return Summary{}, err
	}
	s.Streak = streak

	notes, _, err := decode[[]types.Note](store, types.KeyNotes)
	if err != nil {
		return Summary{}, err
	}
	s.Notes = len(notes)

	lastActive, hasActive, err := decode[int64](store, types.KeyLastActive)
	if err != nil {
		return Summary{}, err
	}

	switch {
	case hasActive && now.Sub(time.UnixMilli(lastActive)) < ActiveWindow:
		s.Status = StatusActive
	case hasTodos || hasStreak:
		s.Status = StatusOverridden
	default:
		s.Status = StatusReady
	}
	s.Hint = hints[s.Status]
	return s, nil
}

// decode reports whether key holds a document. A document that does not
// decode still counts as present and yields the zero value.
func decode[T any](store types.Store, key string) (T, bool, error) {
	var zero T
	raw, err := store.Load(key)
	if errors.Is(err, types.ErrKeyNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("loading %s: %w", key, err)
	}
	var v T
	if json.Unmarshal(raw, &v) != nil {
		return zero, true, nil
	}
	return v, true, nil
}
