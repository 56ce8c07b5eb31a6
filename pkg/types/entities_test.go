package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineEntryMigrate(t *testing.T) {
	tests := []struct {
		name        string
		entry       TimelineEntry
		wantStart   int
		wantEnd     int
		wantChanged bool
	}{
		{"missing both days", TimelineEntry{ID: 1}, 14, 14, true},
		{"missing end day", TimelineEntry{ID: 1, DayStart: 3}, 3, 14, true},
		{"complete entry untouched", TimelineEntry{ID: 1, DayStart: 2, DayEnd: 5}, 2, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.entry
			changed := e.Migrate(14)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantStart, e.DayStart)
			assert.Equal(t, tt.wantEnd, e.DayEnd)
		})
	}
}

func TestTimelineEntryDecodesLegacyDocument(t *testing.T) {
	var entries []TimelineEntry
	require.NoError(t, json.Unmarshal([]byte(`[{"id":1,"time":"09:00","title":"Morning"}]`), &entries))
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Current)
	assert.Zero(t, entries[0].DayStart)
}

func TestDefaultQuotesIsACopy(t *testing.T) {
	q := DefaultQuotes()
	require.Len(t, q, 10)
	q[0].Text = "changed"
	assert.NotEqual(t, "changed", DefaultQuotes()[0].Text)
}

func TestDefaultSeeds(t *testing.T) {
	tl := DefaultTimeline(9)
	require.Len(t, tl, 5)
	for _, e := range tl {
		assert.Equal(t, 9, e.DayStart)
		assert.Equal(t, 9, e.DayEnd)
		assert.False(t, e.Current)
	}
	assert.Len(t, DefaultNotes(), DefaultNoteCount)
}

func TestStatsTrack(t *testing.T) {
	var s Stats
	key := DateKey(time.Date(2026, 10, 4, 23, 59, 0, 0, time.Local))
	assert.Equal(t, "2026-10-04", key)

	require.NoError(t, s.Track(key, StatAdded))
	require.NoError(t, s.Track(key, StatAdded))
	require.NoError(t, s.Track(key, StatCompleted))
	assert.Equal(t, DayStat{Added: 2, Completed: 1}, s.Day(key))
	assert.True(t, s.Day(key).Active())
	assert.False(t, s.Day("2026-10-05").Active())

	assert.ErrorIs(t, s.Track(key, "deleted"), ErrInvalidField)
}

func TestColorsResolve(t *testing.T) {
	c := Colors{Primary: "#000000"}.Resolve()
	assert.Equal(t, "#000000", c.Primary)
	assert.Equal(t, DefaultColors.Bg, c.Bg)
	assert.True(t, Colors{}.IsZero())

	raw, err := json.Marshal(Colors{CardBg: "#eeeeee"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"cardBg":"#eeeeee"}`, string(raw))
}

func TestVaultItem(t *testing.T) {
	assert.True(t, VaultItem{Content: "data:image/png;base64,AAAA"}.IsDataURL())
	assert.False(t, VaultItem{Content: "https://example.com/a.png"}.IsDataURL())
	assert.True(t, ValidVaultType(VaultLink))
	assert.False(t, ValidVaultType("file"))
}
