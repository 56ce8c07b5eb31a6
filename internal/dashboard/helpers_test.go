package dashboard

import (
	"encoding/json"
	"io"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/flowtask/internal/memory"
	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// testClock is a settable clock for App.
type testClock struct{ t time.Time }

func (c *testClock) now() time.Time          { return c.t }
func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

var baseTime = time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// newStore returns an attached memory store, optionally seeded with docs.
func newStore(t *testing.T, docs map[string]string) types.Store {
	t.Helper()
	s := memory.NewBackend()
	require.NoError(t, s.Attach(types.Config{Backend: types.BackendMemory}))
	t.Cleanup(func() { s.Detach() })
	for k, v := range docs {
		require.NoError(t, s.Save(k, []byte(v)))
	}
	return s
}

// newTestApp returns a loaded App over store with a fixed clock.
func newTestApp(t *testing.T, store types.Store) (*App, *testClock) {
	t.Helper()
	clock := &testClock{t: baseTime}
	a := New(store,
		WithClock(clock.now),
		WithLogger(quietLogger()),
		WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	require.NoError(t, a.Load())
	return a, clock
}

// stored decodes the document under key into v.
func stored(t *testing.T, s types.Store, key string, v any) {
	t.Helper()
	raw, err := s.Load(key)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, v))
}
