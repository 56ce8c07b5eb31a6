package summary

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/flowtask/internal/memory"
	"github.com/mesh-intelligence/flowtask/pkg/types"
)

var now = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func seeded(t *testing.T, docs map[string]string) types.Store {
	t.Helper()
	s := memory.NewBackend()
	require.NoError(t, s.Attach(types.Config{Backend: types.BackendMemory}))
	t.Cleanup(func() { s.Detach() })
	for k, v := range docs {
		require.NoError(t, s.Save(k, []byte(v)))
	}
	return s
}

func TestReadStatus(t *testing.T) {
	recent := now.Add(-time.Hour).UnixMilli()
	stale := now.Add(-25 * time.Hour).UnixMilli()

	tests := []struct {
		name string
		docs map[string]string
		want string
	}{
		{"empty store", nil, StatusReady},
		{"recently active", map[string]string{types.KeyLastActive: jsonInt(recent)}, StatusActive},
		{"stale with todos", map[string]string{types.KeyLastActive: jsonInt(stale), types.KeyTodos: `[]`}, StatusOverridden},
		{"streak only", map[string]string{types.KeyStreak: `2`}, StatusOverridden},
		{"stale without data", map[string]string{types.KeyLastActive: jsonInt(stale)}, StatusReady},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(seeded(t, tt.docs), now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, hints[tt.want], got.Hint)
		})
	}
}

func TestReadCounts(t *testing.T) {
	s := seeded(t, map[string]string{
		types.KeyTodos:  `[{"id":1,"text":"a","completed":true},{"id":2,"text":"b"},{"id":3,"text":"c","completed":true}]`,
		types.KeyNotes:  `[{"id":1,"text":""},{"id":2,"text":"x"}]`,
		types.KeyStreak: `5`,
	})

	got, err := Read(s, now)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Tasks)
	assert.Equal(t, 2, got.Completed)
	assert.Equal(t, 2, got.Notes)
	assert.Equal(t, 5, got.Streak)
}

func TestReadMalformedCountsAsEmpty(t *testing.T) {
	s := seeded(t, map[string]string{
		types.KeyTodos: `{broken`,
		types.KeyNotes: `"text"`,
	})

	got, err := Read(s, now)
	require.NoError(t, err)
	assert.Zero(t, got.Tasks)
	assert.Zero(t, got.Notes)
	assert.Equal(t, StatusOverridden, got.Status, "a present todos document still counts as data")
}

func TestReadNeverWrites(t *testing.T) {
	s := seeded(t, nil)
	_, err := Read(s, now)
	require.NoError(t, err)

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func jsonInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
