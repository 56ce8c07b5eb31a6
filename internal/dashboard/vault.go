package dashboard

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// AddVaultText prepends a text snippet to the vault.
func (a *App) AddVaultText(content string) (types.VaultItem, error) {
	return a.addVault(types.VaultText, content)
}

// AddVaultLink prepends a link to the vault.
func (a *App) AddVaultLink(content string) (types.VaultItem, error) {
	return a.addVault(types.VaultLink, content)
}

// AddVaultImage stores image bytes as a base64 data URL. The mime type must
// be image/* and the payload must fit within the configured size limit.
func (a *App) AddVaultImage(mimeType string, data []byte) (types.VaultItem, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return types.VaultItem{}, fmt.Errorf("%w: %q", types.ErrNotImage, mimeType)
	}
	if err := a.checkImageSize(int64(len(data))); err != nil {
		return types.VaultItem{}, err
	}
	url := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
	return a.addVault(types.VaultImage, url)
}

// AddVaultImageFile reads an image from disk and stores it in the vault.
func (a *App) AddVaultImageFile(path string) (types.VaultItem, error) {
	mimeType, data, err := a.ImageFromFile(path)
	if err != nil {
		return types.VaultItem{}, err
	}
	return a.AddVaultImage(mimeType, data)
}

// ImageFromFile loads an image file and detects its mime type from the content,
// falling back to the file extension. Oversized files are rejected before
// they are read.
func (a *App) ImageFromFile(path string) (string, []byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading image: %w", err)
	}
	if err := a.checkImageSize(info.Size()); err != nil {
		return "", nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading image: %w", err)
	}
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); byExt != "" {
			mimeType = byExt
		}
	}
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	return mimeType, data, nil
}

func (a *App) checkImageSize(n int64) error {
	if n > a.maxImageBytes {
		return fmt.Errorf("%w: %s exceeds the %s limit", types.ErrImageTooLarge,
			humanize.IBytes(uint64(n)), humanize.IBytes(uint64(a.maxImageBytes)))
	}
	return nil
}

func (a *App) addVault(kind, content string) (types.VaultItem, error) {
	if kind != types.VaultImage {
		content = strings.TrimSpace(content)
	}
	if content == "" {
		return types.VaultItem{}, types.ErrEmptyText
	}
	item := types.VaultItem{
		ID:        a.ids.next(),
		Type:      kind,
		Content:   content,
		CreatedAt: a.now().UnixMilli(),
	}
	a.Vault = append([]types.VaultItem{item}, a.Vault...)
	if err := a.saveVault(); err != nil {
		return types.VaultItem{}, err
	}
	return item, nil
}

// DeleteVaultItem removes an item permanently. Vault items have no history.
func (a *App) DeleteVaultItem(id int64) error {
	i := a.vaultIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: vault item %d", types.ErrNotFound, id)
	}
	a.Vault = slices.Delete(a.Vault, i, i+1)
	return a.saveVault()
}

// VaultItem returns the item with the given id.
func (a *App) VaultItem(id int64) (types.VaultItem, bool) {
	i := a.vaultIndex(id)
	if i < 0 {
		return types.VaultItem{}, false
	}
	return a.Vault[i], true
}

// DecodeImage returns the mime type and payload of an image data URL.
func DecodeImage(item types.VaultItem) (string, []byte, error) {
	rest, ok := strings.CutPrefix(item.Content, "data:")
	if !ok {
		return "", nil, fmt.Errorf("%w: not a data url", types.ErrNotImage)
	}
	mimeType, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return "", nil, fmt.Errorf("%w: not a base64 data url", types.ErrNotImage)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decoding image: %w", err)
	}
	return mimeType, data, nil
}

func (a *App) vaultIndex(id int64) int {
	return slices.IndexFunc(a.Vault, func(v types.VaultItem) bool { return v.ID == id })
}
