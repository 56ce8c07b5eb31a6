package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/flowtask/internal/dashboard"
	"github.com/mesh-intelligence/flowtask/internal/sqlite"
	"github.com/mesh-intelligence/flowtask/internal/summary"
	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// harness runs root commands against a private config and data directory.
type harness struct {
	t         *testing.T
	configDir string
	dataDir   string
	now       time.Time
	clipped   []string
	dashRuns  int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	return &harness{
		t:         t,
		configDir: filepath.Join(dir, "config"),
		dataDir:   filepath.Join(dir, "data"),
		now:       time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC),
	}
}

// run executes one flowtask invocation and returns its stdout.
func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	e := &env{
		clip: func(s string) error {
			h.clipped = append(h.clipped, s)
			return nil
		},
		dash: func(app *dashboard.App) error {
			h.dashRuns++
			return app.MarkActive()
		},
		now: func() time.Time { return h.now },
	}
	cmd := newRootCmd(e)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config-dir", h.configDir, "--data-dir", h.dataDir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

// runJSON executes an invocation with --json and decodes stdout into v.
func (h *harness) runJSON(v any, args ...string) {
	h.t.Helper()
	out, err := h.run(append([]string{"--json"}, args...)...)
	require.NoError(h.t, err, out)
	require.NoError(h.t, json.Unmarshal([]byte(out), v), out)
}

func TestTodoLifecycle(t *testing.T) {
	h := newHarness(t)

	var task types.Task
	h.runJSON(&task, "todo", "add", "Write", "report")
	assert.Equal(t, "Write report", task.Text)
	assert.Equal(t, h.now.UnixMilli(), task.ID)

	h.now = h.now.Add(time.Second)
	var second types.Task
	h.runJSON(&second, "todo", "add", "Call mom")

	var todos []types.Task
	h.runJSON(&todos, "todo", "list")
	require.Len(t, todos, 2)
	assert.Equal(t, "Call mom", todos[0].Text, "new tasks go to the top")

	var res dashboard.Toggle
	h.runJSON(&res, "todo", "done", "2")
	assert.True(t, res.Task.Completed)
	assert.Equal(t, task.ID, res.Task.ID)
	assert.Equal(t, "First task done!", res.Achievement)

	h.runJSON(&todos, "todo", "list", "--done")
	require.Len(t, todos, 1)
	assert.Equal(t, task.ID, todos[0].ID)

	h.runJSON(&todos, "todo", "move", "1", "2", "--after")
	assert.Equal(t, []int64{task.ID, second.ID}, taskIDs(todos))

	var edited types.Task
	h.runJSON(&edited, "todo", "edit", "2", "Call", "dad")
	assert.Equal(t, "Call dad", edited.Text)

	_, err := h.run("todo", "rm", "2")
	require.NoError(t, err)
	h.runJSON(&todos, "todo", "list")
	require.Len(t, todos, 1)

	var entries []dashboard.HistoryEntry
	h.runJSON(&entries, "history", "list", "tasks")
	require.Len(t, entries, 1)
	assert.Equal(t, "Call dad", entries[0].Text)

	h.now = h.now.Add(time.Minute)
	var restored struct {
		Category string `json:"category"`
		ID       int64  `json:"id"`
	}
	h.runJSON(&restored, "history", "restore", "tasks", "1")
	assert.NotEqual(t, second.ID, restored.ID, "restored items get a new id")

	h.runJSON(&todos, "todo", "list")
	assert.Len(t, todos, 2)
	h.runJSON(&entries, "history", "list", "tasks")
	assert.Empty(t, entries)
}

func TestBackendsPersistAcrossInvocations(t *testing.T) {
	for _, backend := range []string{types.BackendSQLite, types.BackendJSON} {
		t.Run(backend, func(t *testing.T) {
			h := newHarness(t)
			_, err := h.run("--backend", backend, "todo", "add", "persisted")
			require.NoError(t, err)

			var todos []types.Task
			h.runJSON(&todos, "--backend", backend, "todo", "list")
			require.Len(t, todos, 1)
			assert.Equal(t, "persisted", todos[0].Text)
		})
	}
}

func TestEphemeralStoreIsDiscarded(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("--ephemeral", "todo", "add", "gone")
	require.NoError(t, err)

	var todos []types.Task
	h.runJSON(&todos, "--ephemeral", "todo", "list")
	assert.Empty(t, todos)
	assert.NoDirExists(t, h.dataDir)
}

func TestBackendFromConfigFile(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.MkdirAll(h.configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(h.configDir, "config.yaml"), []byte("backend: json\n"), 0o644))

	_, err := h.run("todo", "add", "from config")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(h.dataDir, types.KeyTodos+".json"))
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"success", []string{"todo", "list"}, exitSuccess},
		{"unknown flag", []string{"--bogus"}, exitUserError},
		{"missing argument", []string{"todo", "add"}, exitUserError},
		{"empty text", []string{"todo", "add", "  "}, exitUserError},
		{"unknown reference", []string{"todo", "done", "7"}, exitUserError},
		{"bad reference", []string{"note", "edit", "first"}, exitUserError},
		{"unknown backend", []string{"--backend", "bogus", "todo", "list"}, exitUserError},
		{"bad log level", []string{"--log-level", "loud", "todo", "list"}, exitUserError},
		{"bad history category", []string{"history", "list", "quotes"}, exitUserError},
		{"bad theme", []string{"theme", "blue"}, exitUserError},
		{"bad color", []string{"colors", "set", "--primary", "red"}, exitUserError},
		{"missing import file", []string{"import", "nope.json"}, exitUserError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			_, err := h.run(tt.args...)
			assert.Equal(t, tt.want, ExitCode(err), "err: %v", err)
		})
	}
}

func TestExitCodeClassification(t *testing.T) {
	assert.Equal(t, exitSuccess, ExitCode(nil))
	assert.Equal(t, exitUserError, ExitCode(usagef("bad")))
	assert.Equal(t, exitUserError, ExitCode(errors.Join(errors.New("ctx"), types.ErrImageTooLarge)))
	assert.Equal(t, exitSysError, ExitCode(errors.New("disk on fire")))
	assert.Equal(t, exitSysError, ExitCode(types.ErrStoreDetached))
}

func TestResolveRef(t *testing.T) {
	ids := []int64{1773484200000, 5, 2}
	tests := []struct {
		ref     string
		want    int64
		wantErr error
	}{
		{ref: "5", want: 5},
		{ref: "2", want: 2},
		{ref: "1", want: 1773484200000},
		{ref: "3", want: 2},
		{ref: "1773484200000", want: 1773484200000},
		{ref: "4", wantErr: types.ErrNotFound},
		{ref: "0", wantErr: types.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := resolveRef(tt.ref, ids)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := resolveRef("abc", ids)
	var u usageError
	assert.ErrorAs(t, err, &u)
}

func TestResolvePosition(t *testing.T) {
	i, err := resolvePosition("3", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = resolvePosition("4", 3)
	assert.ErrorIs(t, err, types.ErrInvalidIndex)
	_, err = resolvePosition("0", 3)
	assert.ErrorIs(t, err, types.ErrInvalidIndex)
}

func TestStatusIsReadOnly(t *testing.T) {
	h := newHarness(t)

	var sum summary.Summary
	h.runJSON(&sum, "status")
	assert.Equal(t, summary.StatusReady, sum.Status)

	s := sqlite.NewBackend()
	require.NoError(t, s.Attach(types.Config{Backend: types.BackendSQLite, DataDir: h.dataDir}))
	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys, "status must not seed documents")
	require.NoError(t, s.Detach())

	_, err = h.run("todo", "add", "one")
	require.NoError(t, err)
	h.runJSON(&sum, "status")
	assert.Equal(t, summary.StatusOverridden, sum.Status)
	assert.Equal(t, 1, sum.Tasks)
	assert.Equal(t, types.DefaultNoteCount, sum.Notes)

	_, err = h.run()
	require.NoError(t, err)
	assert.Equal(t, 1, h.dashRuns)
	h.runJSON(&sum, "status")
	assert.Equal(t, summary.StatusActive, sum.Status)

	h.now = h.now.Add(summary.ActiveWindow + time.Minute)
	h.runJSON(&sum, "status")
	assert.Equal(t, summary.StatusOverridden, sum.Status)
}

func TestExportImport(t *testing.T) {
	src := newHarness(t)
	_, err := src.run("todo", "add", "carry me")
	require.NoError(t, err)
	_, err = src.run("theme", "dark")
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "export.json")
	_, err = src.run("export", "--out", file)
	require.NoError(t, err)

	var docs map[string]json.RawMessage
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &docs))
	assert.Contains(t, docs, types.KeyTodos)
	assert.Contains(t, docs, types.KeyTheme)

	docs["someone_elses_key"] = json.RawMessage(`{}`)
	data, err = json.Marshal(docs)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(file, data, 0o644))

	dst := newHarness(t)
	var res transferResult
	dst.runJSON(&res, "import", file)
	assert.NotContains(t, res.Keys, "someone_elses_key")
	assert.Contains(t, res.Keys, types.KeyTodos)

	var todos []types.Task
	dst.runJSON(&todos, "todo", "list")
	require.Len(t, todos, 1)
	assert.Equal(t, "carry me", todos[0].Text)

	var theme struct{ Theme string }
	dst.runJSON(&theme, "theme")
	assert.Equal(t, types.ThemeDark, theme.Theme)
}

func TestExportBareWordTheme(t *testing.T) {
	h := newHarness(t)
	s := sqlite.NewBackend()
	require.NoError(t, s.Attach(types.Config{Backend: types.BackendSQLite, DataDir: h.dataDir}))
	require.NoError(t, s.Save(types.KeyTheme, []byte("dark")))
	require.NoError(t, s.Detach())

	out, err := h.run("export")
	require.NoError(t, err)
	var docs map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	assert.JSONEq(t, `"dark"`, string(docs[types.KeyTheme]))
}

func TestVaultCommands(t *testing.T) {
	h := newHarness(t)

	var item types.VaultItem
	h.runJSON(&item, "vault", "add", "text", "hello", "world")
	assert.Equal(t, types.VaultText, item.Type)

	_, err := h.run("vault", "copy", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello world"}, h.clipped)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	src := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, os.WriteFile(src, png, 0o644))
	h.now = h.now.Add(time.Second)
	h.runJSON(&item, "vault", "add", "image", src)
	assert.Equal(t, types.VaultImage, item.Type)
	assert.True(t, item.IsDataURL())

	_, err = h.run("vault", "copy", "1")
	assert.Equal(t, exitUserError, ExitCode(err), "images need --out")

	out := filepath.Join(t.TempDir(), "copy.png")
	_, err = h.run("vault", "copy", "1", "--out", out)
	require.NoError(t, err)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, png, got)

	var items []types.VaultItem
	h.runJSON(&items, "vault", "list")
	require.Len(t, items, 2)
	assert.Equal(t, types.VaultImage, items[0].Type, "newest first")

	_, err = h.run("vault", "rm", "2")
	require.NoError(t, err)
	h.runJSON(&items, "vault", "list")
	require.Len(t, items, 1)
}

func TestVaultRejectsLargeImage(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.MkdirAll(h.configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(h.configDir, "config.yaml"),
		[]byte("vault_max_image_bytes: 8\n"), 0o644))

	src := filepath.Join(t.TempDir(), "big.png")
	require.NoError(t, os.WriteFile(src, []byte("\x89PNG\r\n\x1a\n\x00\x00"), 0o644))
	_, err := h.run("vault", "add", "image", src)
	assert.ErrorIs(t, err, types.ErrImageTooLarge)
	assert.Equal(t, exitUserError, ExitCode(err))
}

func TestNotesKeepTheLastOne(t *testing.T) {
	h := newHarness(t)

	var notes []types.Note
	h.runJSON(&notes, "note", "list")
	require.Len(t, notes, types.DefaultNoteCount)

	var note types.Note
	h.runJSON(&note, "note", "edit", "1", "buy", "milk")
	assert.Equal(t, "buy milk", note.Text)

	for range types.DefaultNoteCount - 1 {
		_, err := h.run("note", "rm", "1")
		require.NoError(t, err)
	}
	var res struct {
		Deleted bool `json:"deleted"`
	}
	h.runJSON(&res, "note", "rm", "1")
	assert.False(t, res.Deleted)

	h.runJSON(&notes, "note", "list")
	assert.Len(t, notes, 1)
}

func TestTimelineCommands(t *testing.T) {
	h := newHarness(t)

	var entry types.TimelineEntry
	h.runJSON(&entry, "timeline", "add", "--time", "08:00", "--title", "Standup", "--start", "3", "--end", "20")
	assert.Equal(t, "08:00", entry.Time)
	assert.Equal(t, "Standup", entry.Title)
	assert.Equal(t, 3, entry.DayStart)
	assert.Equal(t, 20, entry.DayEnd)

	ref := "6" // after the five seeded entries
	h.runJSON(&entry, "timeline", "current", ref)
	assert.True(t, entry.Current)

	var entries []types.TimelineEntry
	h.runJSON(&entries, "timeline", "list")
	current := 0
	for _, e := range entries {
		if e.Current {
			current++
		}
	}
	assert.Equal(t, 1, current)

	h.runJSON(&entry, "timeline", "set", ref, "title", "Daily sync")
	assert.Equal(t, "Daily sync", entry.Title)

	_, err := h.run("timeline", "set", ref, "colour", "red")
	assert.ErrorIs(t, err, types.ErrInvalidField)
}

func TestQuoteCommands(t *testing.T) {
	h := newHarness(t)

	var quotes []types.Quote
	h.runJSON(&quotes, "quote", "list")
	require.NotEmpty(t, quotes)
	n := len(quotes)

	var q types.Quote
	h.runJSON(&q, "quote", "add", "Ship", "it", "--author", "Anon")
	assert.Equal(t, "Ship it", q.Text)
	assert.Equal(t, "Anon", q.Author)

	h.runJSON(&q, "quote", "show", "1")
	assert.Equal(t, quotes[0], q)

	h.runJSON(&quotes, "quote", "list")
	require.Len(t, quotes, n+1)

	h.runJSON(&q, "quote", "edit", "1", "Edited")
	assert.Equal(t, types.DefaultAuthor, q.Author)

	_, err := h.run("quote", "rm", "1")
	require.NoError(t, err)
	_, err = h.run("quote", "rm", "99")
	assert.ErrorIs(t, err, types.ErrInvalidIndex)
}

func TestThemeAndColors(t *testing.T) {
	h := newHarness(t)

	var theme struct{ Theme string }
	h.runJSON(&theme, "theme")
	assert.Equal(t, types.ThemeLight, theme.Theme)
	h.runJSON(&theme, "theme", "toggle")
	assert.Equal(t, types.ThemeDark, theme.Theme)

	var colors colorsResult
	h.runJSON(&colors, "colors", "set", "--primary", "#00FF00")
	assert.Equal(t, "#00ff00", colors.Custom.Primary)
	assert.Equal(t, types.DefaultColors.Bg, colors.Resolved.Bg)

	var reset colorsResult
	h.runJSON(&reset, "colors", "reset")
	assert.True(t, reset.Custom.IsZero())
	assert.Equal(t, types.DefaultColors, reset.Resolved)

	var shown colorsResult
	h.runJSON(&shown, "colors", "show")
	assert.True(t, shown.Custom.IsZero(), "reset persists")
}

func TestStatsCommand(t *testing.T) {
	h := newHarness(t)
	for _, text := range []string{"a", "b"} {
		_, err := h.run("todo", "add", text)
		require.NoError(t, err)
		h.now = h.now.Add(time.Second)
	}
	_, err := h.run("todo", "done", "1")
	require.NoError(t, err)

	var res statsResult
	h.runJSON(&res, "stats")
	assert.Equal(t, types.DayStat{Added: 2, Completed: 1}, res.Today)
	assert.Equal(t, dashboard.Totals{Total: 2, Completed: 1, Rate: 50, Streak: 1}, res.Totals)
	assert.Len(t, res.Week, 7)
	assert.Len(t, res.Month, 31)

	_, err = h.run("todo", "rm", "2")
	require.NoError(t, err)
	h.runJSON(&res, "stats")
	assert.Equal(t, types.DayStat{Added: 2, Completed: 1}, res.Today, "daily counters never shrink")
	assert.Equal(t, dashboard.Totals{Total: 1, Completed: 1, Rate: 100, Streak: 1}, res.Totals)
}

func TestInitWritesConfigOnce(t *testing.T) {
	h := newHarness(t)

	var res initResult
	h.runJSON(&res, "init")
	assert.True(t, res.ConfigWritten)
	assert.Equal(t, types.BackendSQLite, res.Backend)
	assert.FileExists(t, filepath.Join(h.configDir, "config.yaml"))
	assert.FileExists(t, filepath.Join(h.dataDir, sqlite.DBFileName))

	h.runJSON(&res, "init")
	assert.False(t, res.ConfigWritten)
}

func TestInitEphemeralKeepsConfiguredBackend(t *testing.T) {
	h := newHarness(t)

	var res initResult
	h.runJSON(&res, "--ephemeral", "init")
	assert.True(t, res.ConfigWritten)
	assert.Equal(t, types.BackendMemory, res.Backend)

	data, err := os.ReadFile(filepath.Join(h.configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: "+types.BackendSQLite)
	assert.NotContains(t, string(data), types.BackendMemory)
	assert.NoFileExists(t, filepath.Join(h.dataDir, sqlite.DBFileName))

	h.runJSON(&res, "init")
	assert.Equal(t, types.BackendSQLite, res.Backend, "later runs use the persisted backend")
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	out, err := h.run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "flowtask v"+Version)
}
