package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flowtask/internal/dashboard"
	"github.com/mesh-intelligence/flowtask/pkg/types"
)

func newHistoryCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse, restore and clear deleted items",
		Args:  usageArgs(cobra.NoArgs),
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list [tasks|timeline|notes]",
			Short: "List deleted items, newest first",
			Args:  usageArgs(cobra.MaximumNArgs(1)),
			RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
				categories := types.HistoryCategories
				if len(args) == 1 {
					categories = []string{args[0]}
				}
				all := []dashboard.HistoryEntry{}
				var text []string
				p := s.palette()
				for _, c := range categories {
					entries, err := s.app.HistoryEntries(c)
					if err != nil {
						return err
					}
					all = append(all, entries...)
					text = append(text, p.Section(c, p.History(c, entries, -1, s.app.Now())))
				}
				return e.emit(cmd.OutOrStdout(), all, strings.Join(text, "\n"))
			}),
		},
		&cobra.Command{
			Use:   "restore <tasks|timeline|notes> <position>",
			Short: "Put a deleted item back; it gets a new id",
			Args:  usageArgs(cobra.ExactArgs(2)),
			RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
				n, err := s.app.History.Len(args[0])
				if err != nil {
					return err
				}
				i, err := resolvePosition(args[1], n)
				if err != nil {
					return err
				}
				id, err := s.app.Restore(args[0], i)
				if err != nil {
					return err
				}
				res := struct {
					Category string `json:"category"`
					ID       int64  `json:"id"`
				}{args[0], id}
				return e.emit(cmd.OutOrStdout(), res, fmt.Sprintf("Restored %s item as %d", args[0], id))
			}),
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Empty every history category",
			Args:  usageArgs(cobra.NoArgs),
			RunE: e.run(func(cmd *cobra.Command, _ []string, s *session) error {
				if err := s.app.ClearHistory(); err != nil {
					return err
				}
				return e.emit(cmd.OutOrStdout(), s.app.History, "History cleared")
			}),
		},
	)
	return cmd
}
