package types

import "fmt"

// KeyPrefix namespaces every FlowTask document in a shared store.
const KeyPrefix = "flowtask_"

// Storage keys, one per logical document.
const (
	KeyTodos      = KeyPrefix + "todos"
	KeyTimeline   = KeyPrefix + "timeline"
	KeyNotes      = KeyPrefix + "notes"
	KeyColors     = KeyPrefix + "colors"
	KeyStreak     = KeyPrefix + "streak"
	KeyHistory    = KeyPrefix + "history"
	KeyTheme      = KeyPrefix + "theme"
	KeyQuotes     = KeyPrefix + "quotes"
	KeyLastActive = KeyPrefix + "last_active"
	KeyStats      = KeyPrefix + "stats"
	KeyVault      = KeyPrefix + "vault"
)

// AllKeys lists every storage key for enumeration (export, import).
var AllKeys = []string{
	KeyTodos,
	KeyTimeline,
	KeyNotes,
	KeyColors,
	KeyStreak,
	KeyHistory,
	KeyTheme,
	KeyQuotes,
	KeyLastActive,
	KeyStats,
	KeyVault,
}

// IsKnownKey reports whether key is one of AllKeys.
func IsKnownKey(key string) bool {
	for _, k := range AllKeys {
		if k == key {
			return true
		}
	}
	return false
}

// ValidateKey checks that key is non-empty and uses only lowercase letters,
// digits and underscores, so it is safe as a file name and a SQL value.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return nil
}
