// Package store is the public factory for FlowTask document stores.
// It keeps backend implementations internal.
package store

import (
	"fmt"

	"github.com/mesh-intelligence/flowtask/internal/jsonfile"
	"github.com/mesh-intelligence/flowtask/internal/memory"
	"github.com/mesh-intelligence/flowtask/internal/sqlite"
	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// New creates a detached store for the named backend.
// Returns ErrBackendUnknown for names it does not recognize.
//
// Example:
//
//	s, err := store.New(types.BackendSQLite)
//	err = s.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir})
//	defer s.Detach()
func New(backend string) (types.Store, error) {
	switch backend {
	case types.BackendSQLite:
		return sqlite.NewBackend(), nil
	case types.BackendJSON:
		return jsonfile.NewBackend(), nil
	case types.BackendMemory:
		return memory.NewBackend(), nil
	case "":
		return nil, types.ErrBackendEmpty
	}
	return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, backend)
}

// Open creates the store named by cfg.Backend and attaches it.
// The caller must Detach the returned store.
func Open(cfg types.Config) (types.Store, error) {
	s, err := New(cfg.Backend)
	if err != nil {
		return nil, err
	}
	if err := s.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach %s store: %w", cfg.Backend, err)
	}
	return s, nil
}
