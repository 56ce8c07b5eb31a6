package types

import "strings"

// Vault item types.
const (
	VaultText  = "text"
	VaultLink  = "link"
	VaultImage = "image"
)

// DefaultMaxImageBytes is the largest image accepted into the vault.
const DefaultMaxImageBytes int64 = 5 * 1024 * 1024

// VaultItem is a saved clipboard entry. Image content is a data URL.
type VaultItem struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}

// IsDataURL reports whether the item content is an inline data URL.
func (v VaultItem) IsDataURL() bool {
	return strings.HasPrefix(v.Content, "data:")
}

// ValidVaultType reports whether t is one of the vault item types.
func ValidVaultType(t string) bool {
	switch t {
	case VaultText, VaultLink, VaultImage:
		return true
	}
	return false
}
