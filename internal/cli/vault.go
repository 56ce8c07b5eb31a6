package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flowtask/internal/dashboard"
	"github.com/mesh-intelligence/flowtask/pkg/types"
)

func newVaultCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Manage the clipboard vault",
		Args:  usageArgs(cobra.NoArgs),
	}

	added := func(cmd *cobra.Command, item types.VaultItem) error {
		return e.emit(cmd.OutOrStdout(), item, fmt.Sprintf("Saved %s %d to the vault", item.Type, item.ID))
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Save text, a link or an image",
		Args:  usageArgs(cobra.NoArgs),
	}
	add.AddCommand(
		&cobra.Command{
			Use:   "text <content>...",
			Short: "Save a text snippet",
			Args:  usageArgs(cobra.MinimumNArgs(1)),
			RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
				item, err := s.app.AddVaultText(strings.Join(args, " "))
				if err != nil {
					return err
				}
				return added(cmd, item)
			}),
		},
		&cobra.Command{
			Use:   "link <url>",
			Short: "Save a link",
			Args:  usageArgs(cobra.ExactArgs(1)),
			RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
				item, err := s.app.AddVaultLink(args[0])
				if err != nil {
					return err
				}
				return added(cmd, item)
			}),
		},
		&cobra.Command{
			Use:   "image <file>",
			Short: "Save an image file as an inline data URL",
			Args:  usageArgs(cobra.ExactArgs(1)),
			RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
				item, err := s.app.AddVaultImageFile(args[0])
				if err != nil {
					return err
				}
				return added(cmd, item)
			}),
		},
	)

	var copyOut string
	cp := &cobra.Command{
		Use:   "copy <ref>",
		Short: "Copy an item to the clipboard, or write an image with --out",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
			id, err := resolveRef(args[0], vaultIDs(s.app.Vault))
			if err != nil {
				return err
			}
			item, _ := s.app.VaultItem(id)
			if copyOut != "" {
				return writeVaultItem(cmd, e, item, copyOut)
			}
			if item.Type == types.VaultImage {
				return usagef("vault item %d is an image: use --out <file>", id)
			}
			if err := e.clip(item.Content); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			return e.emit(cmd.OutOrStdout(), item, fmt.Sprintf("Copied %s %d to the clipboard", item.Type, item.ID))
		}),
	}
	cp.Flags().StringVar(&copyOut, "out", "", "write the item to this file instead of the clipboard")

	cmd.AddCommand(
		add,
		&cobra.Command{
			Use:   "list",
			Short: "List vault items, newest first",
			Args:  usageArgs(cobra.NoArgs),
			RunE: e.run(func(cmd *cobra.Command, _ []string, s *session) error {
				return e.emit(cmd.OutOrStdout(), nonNil(s.app.Vault), s.palette().Vault(s.app.Vault, -1, s.app.Now()))
			}),
		},
		&cobra.Command{
			Use:     "rm <ref>",
			Aliases: []string{"delete"},
			Short:   "Delete a vault item",
			Args:    usageArgs(cobra.ExactArgs(1)),
			RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
				id, err := resolveRef(args[0], vaultIDs(s.app.Vault))
				if err != nil {
					return err
				}
				item, _ := s.app.VaultItem(id)
				if err := s.app.DeleteVaultItem(id); err != nil {
					return err
				}
				return e.emit(cmd.OutOrStdout(), item, fmt.Sprintf("Deleted %s %d", item.Type, item.ID))
			}),
		},
		cp,
	)
	return cmd
}

// writeVaultItem writes an item's payload to path: decoded bytes for images,
// the raw content otherwise.
func writeVaultItem(cmd *cobra.Command, e *env, item types.VaultItem, path string) error {
	data := []byte(item.Content)
	if item.Type == types.VaultImage {
		_, decoded, err := dashboard.DecodeImage(item)
		if err != nil {
			return err
		}
		data = decoded
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write vault item: %w", err)
	}
	res := struct {
		ID    int64  `json:"id"`
		Path  string `json:"path"`
		Bytes int    `json:"bytes"`
	}{item.ID, path, len(data)}
	return e.emit(cmd.OutOrStdout(), res,
		fmt.Sprintf("Wrote %s %d to %s (%s)", item.Type, item.ID, path, humanize.IBytes(uint64(len(data)))))
}
