package types

import "errors"

// Store persists named JSON documents. Callers attach to a backend, load and
// save documents by key, and detach when done. There are no transactions
// across keys; the last writer wins.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached if
	// called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, every other operation returns ErrStoreDetached.
	Detach() error

	// Load returns the raw document stored under key.
	// Returns ErrKeyNotFound if nothing is stored there.
	Load(key string) ([]byte, error)

	// Save replaces the document stored under key.
	Save(key string, value []byte) error

	// Remove deletes the document stored under key. Removing an absent key
	// succeeds.
	Remove(key string) error

	// Keys lists the keys that currently hold a document, sorted.
	Keys() ([]string, error)
}

// Store lifecycle and access errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrKeyNotFound     = errors.New("key not found")
	ErrInvalidKey      = errors.New("invalid key")
)
