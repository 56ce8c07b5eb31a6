package types

import "errors"

// Collection operation errors.
var (
	ErrNotFound        = errors.New("item not found")
	ErrEmptyText       = errors.New("text must not be empty")
	ErrInvalidField    = errors.New("invalid field")
	ErrInvalidCategory = errors.New("invalid history category")
	ErrInvalidIndex    = errors.New("index out of range")
	ErrLastQuote       = errors.New("cannot delete the last quote")
)

// Vault upload errors. Callers show these as transient notices.
var (
	ErrInvalidVaultType = errors.New("invalid vault item type")
	ErrNotImage         = errors.New("please select an image file")
	ErrImageTooLarge    = errors.New("image too large")
)
