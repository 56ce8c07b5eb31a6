package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

func newQuoteCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quote",
		Aliases: []string{"quotes"},
		Short:   "Manage motivational quotes",
		Args:    usageArgs(cobra.NoArgs),
	}

	show := func(cmd *cobra.Command, s *session, q types.Quote) error {
		return e.emit(cmd.OutOrStdout(), q, s.palette().Quote(q))
	}

	var addAuthor string
	add := &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a quote",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
			q, err := s.app.AddQuote(strings.Join(args, " "), addAuthor)
			if err != nil {
				return err
			}
			return show(cmd, s, q)
		}),
	}
	add.Flags().StringVar(&addAuthor, "author", "", "author (default \"Unknown\")")

	var editAuthor string
	edit := &cobra.Command{
		Use:   "edit <position> <text>...",
		Short: "Replace a quote",
		Args:  usageArgs(cobra.MinimumNArgs(2)),
		RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
			i, err := resolvePosition(args[0], len(s.app.Quotes))
			if err != nil {
				return err
			}
			if err := s.app.EditQuote(i, strings.Join(args[1:], " "), editAuthor); err != nil {
				return err
			}
			return show(cmd, s, s.app.Quotes[i])
		}),
	}
	edit.Flags().StringVar(&editAuthor, "author", "", "author (default \"Unknown\")")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List quotes",
			Args:  usageArgs(cobra.NoArgs),
			RunE: e.run(func(cmd *cobra.Command, _ []string, s *session) error {
				var b strings.Builder
				p := s.palette()
				for i, q := range s.app.Quotes {
					fmt.Fprintf(&b, "%2d. %s %s\n", i+1, p.Text.Render(`"`+q.Text+`"`), p.Muted.Render("- "+q.Author))
				}
				return e.emit(cmd.OutOrStdout(), s.app.Quotes, strings.TrimRight(b.String(), "\n"))
			}),
		},
		&cobra.Command{
			Use:   "show [position]",
			Short: "Show a quote; without a position, the current one",
			Args:  usageArgs(cobra.MaximumNArgs(1)),
			RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
				if len(args) == 1 {
					i, err := resolvePosition(args[0], len(s.app.Quotes))
					if err != nil {
						return err
					}
					if err := s.app.SelectQuote(i); err != nil {
						return err
					}
				}
				q, ok := s.app.CurrentQuote()
				if !ok {
					return fmt.Errorf("%w: no quotes", types.ErrNotFound)
				}
				return show(cmd, s, q)
			}),
		},
		&cobra.Command{
			Use:   "random",
			Short: "Show a random quote",
			Args:  usageArgs(cobra.NoArgs),
			RunE: e.run(func(cmd *cobra.Command, _ []string, s *session) error {
				q, err := s.app.RandomQuote()
				if err != nil {
					return err
				}
				return show(cmd, s, q)
			}),
		},
		add,
		edit,
		&cobra.Command{
			Use:     "rm <position>",
			Aliases: []string{"delete"},
			Short:   "Delete a quote; the last quote cannot be deleted",
			Args:    usageArgs(cobra.ExactArgs(1)),
			RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
				i, err := resolvePosition(args[0], len(s.app.Quotes))
				if err != nil {
					return err
				}
				q := s.app.Quotes[i]
				if err := s.app.DeleteQuote(i); err != nil {
					return err
				}
				return e.emit(cmd.OutOrStdout(), q, fmt.Sprintf("Deleted quote %d: %s", i+1, q.Text))
			}),
		},
	)
	return cmd
}
