// Package memory implements an in-process Store. Nothing survives Detach.
package memory

import (
	"sort"
	"sync"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// Backend keeps documents in a map.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	docs     map[string][]byte
}

// NewBackend creates a detached memory backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach validates config and starts with an empty document map.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	b.docs = make(map[string][]byte)
	b.attached = true
	return nil
}

// Detach discards every document. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.attached = false
	b.docs = nil
	return nil
}

// Load returns a copy of the document stored under key, or
// ErrKeyNotFound.
func (b *Backend) Load(key string) ([]byte, error) {
	if err := types.ValidateKey(key); err != nil {
		return nil, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	v, ok := b.docs[key]
	if !ok {
		return nil, types.ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Save stores a copy of value under key, replacing any previous document.
func (b *Backend) Save(key string, value []byte) error {
	if err := types.ValidateKey(key); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	b.docs[key] = cp
	return nil
}

// Remove deletes the document under key. Removing a missing key is not an
// error.
func (b *Backend) Remove(key string) error {
	if err := types.ValidateKey(key); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	delete(b.docs, key)
	return nil
}

// Keys returns the stored keys in sorted order.
func (b *Backend) Keys() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	keys := make([]string, 0, len(b.docs))
	for k := range b.docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
