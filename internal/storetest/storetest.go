// Package storetest holds the behavior every types.Store backend must share.
// Backend packages call Run from their own tests.
package storetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// Factory returns a fresh, detached backend and the Config to attach it with.
type Factory func(t *testing.T) (types.Store, types.Config)

// Run exercises the Store contract against backends produced by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("load absent key", func(t *testing.T) {
		s := attach(t, newStore)
		_, err := s.Load(types.KeyTodos)
		assert.ErrorIs(t, err, types.ErrKeyNotFound)
	})

	t.Run("save then load round trips", func(t *testing.T) {
		s := attach(t, newStore)
		doc := []byte(`[{"id":1,"text":"ship it","completed":false}]`)
		require.NoError(t, s.Save(types.KeyTodos, doc))

		got, err := s.Load(types.KeyTodos)
		require.NoError(t, err)
		assert.Equal(t, doc, got)
	})

	t.Run("last writer wins", func(t *testing.T) {
		s := attach(t, newStore)
		require.NoError(t, s.Save(types.KeyTheme, []byte(`"light"`)))
		require.NoError(t, s.Save(types.KeyTheme, []byte(`"dark"`)))

		got, err := s.Load(types.KeyTheme)
		require.NoError(t, err)
		assert.Equal(t, `"dark"`, string(got))
	})

	t.Run("remove deletes and is idempotent", func(t *testing.T) {
		s := attach(t, newStore)
		require.NoError(t, s.Save(types.KeyColors, []byte(`{}`)))
		require.NoError(t, s.Remove(types.KeyColors))
		require.NoError(t, s.Remove(types.KeyColors))

		_, err := s.Load(types.KeyColors)
		assert.ErrorIs(t, err, types.ErrKeyNotFound)
	})

	t.Run("keys are sorted", func(t *testing.T) {
		s := attach(t, newStore)
		keys, err := s.Keys()
		require.NoError(t, err)
		assert.Empty(t, keys)

		require.NoError(t, s.Save(types.KeyVault, []byte(`[]`)))
		require.NoError(t, s.Save(types.KeyNotes, []byte(`[]`)))
		require.NoError(t, s.Save(types.KeyStats, []byte(`{"daily":{}}`)))

		keys, err = s.Keys()
		require.NoError(t, err)
		assert.Equal(t, []string{types.KeyNotes, types.KeyStats, types.KeyVault}, keys)
	})

	t.Run("invalid keys rejected", func(t *testing.T) {
		s := attach(t, newStore)
		assert.ErrorIs(t, s.Save("../escape", []byte(`1`)), types.ErrInvalidKey)
		_, err := s.Load("")
		assert.ErrorIs(t, err, types.ErrInvalidKey)
		assert.ErrorIs(t, s.Remove("Bad Key"), types.ErrInvalidKey)
	})

	t.Run("attach twice fails", func(t *testing.T) {
		s, cfg := newStore(t)
		require.NoError(t, s.Attach(cfg))
		defer s.Detach()
		assert.ErrorIs(t, s.Attach(cfg), types.ErrAlreadyAttached)
	})

	t.Run("detached store refuses operations", func(t *testing.T) {
		s, cfg := newStore(t)
		require.NoError(t, s.Attach(cfg))
		require.NoError(t, s.Detach())
		require.NoError(t, s.Detach(), "detach is idempotent")

		_, err := s.Load(types.KeyTodos)
		assert.ErrorIs(t, err, types.ErrStoreDetached)
		assert.ErrorIs(t, s.Save(types.KeyTodos, []byte(`[]`)), types.ErrStoreDetached)
		assert.ErrorIs(t, s.Remove(types.KeyTodos), types.ErrStoreDetached)
		_, err = s.Keys()
		assert.ErrorIs(t, err, types.ErrStoreDetached)
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		s, cfg := newStore(t)
		cfg.Backend = ""
		assert.ErrorIs(t, s.Attach(cfg), types.ErrBackendEmpty)
	})
}

func attach(t *testing.T, newStore Factory) types.Store {
	t.Helper()
	s, cfg := newStore(t)
	require.NoError(t, s.Attach(cfg))
	t.Cleanup(func() { _ = s.Detach() })
	return s
}
