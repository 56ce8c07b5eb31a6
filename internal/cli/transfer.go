package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

func newExportCmd(e *env) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every stored document as one JSON object",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, s, log, err := e.attach(cmd)
			if err != nil {
				return err
			}
			defer detach(s, log)

			docs := map[string]json.RawMessage{}
			for _, key := range types.AllKeys {
				data, err := s.Load(key)
				if errors.Is(err, types.ErrKeyNotFound) {
					continue
				}
				if err != nil {
					return fmt.Errorf("export %s: %w", key, err)
				}
				if !json.Valid(data) && key == types.KeyTheme {
					// Older stores hold the theme as a bare word.
					if data, err = json.Marshal(strings.TrimSpace(string(data))); err != nil {
						return fmt.Errorf("export %s: %w", key, err)
					}
				}
				if !json.Valid(data) {
					log.WithField("key", key).Warn("skipping malformed document")
					continue
				}
				docs[key] = data
			}

			if out == "" {
				return writeJSON(cmd.OutOrStdout(), docs)
			}
			b, err := json.MarshalIndent(docs, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal export: %w", err)
			}
			if err := os.WriteFile(out, append(b, '\n'), 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			return e.emit(cmd.OutOrStdout(), transferResult{Path: out, Keys: sortedKeys(docs)},
				fmt.Sprintf("Exported %d documents to %s", len(docs), out))
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	return cmd
}

func newImportCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Write each known document from an export file back to the store",
		Long: "Read a JSON object of documents as written by export. Known keys\n" +
			"replace the stored document; unknown keys are skipped with a warning.",
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return usagef("read import file: %w", err)
			}
			var docs map[string]json.RawMessage
			if err := json.Unmarshal(data, &docs); err != nil {
				return usagef("import file %s is not a JSON object: %w", args[0], err)
			}

			_, s, log, err := e.attach(cmd)
			if err != nil {
				return err
			}
			defer detach(s, log)

			var imported []string
			for _, key := range sortedKeys(docs) {
				if !types.IsKnownKey(key) {
					log.WithField("key", key).Warn("skipping unknown key")
					continue
				}
				if err := s.Save(key, docs[key]); err != nil {
					return fmt.Errorf("import %s: %w", key, err)
				}
				imported = append(imported, key)
			}
			return e.emit(cmd.OutOrStdout(), transferResult{Path: args[0], Keys: nonNil(imported)},
				fmt.Sprintf("Imported %d documents from %s", len(imported), args[0]))
		},
	}
}

type transferResult struct {
	Path string   `json:"path"`
	Keys []string `json:"keys"`
}

func sortedKeys(docs map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(docs))
	for k := range docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
