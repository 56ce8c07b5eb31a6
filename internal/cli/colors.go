package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

type colorsResult struct {
	Custom   types.Colors `json:"custom"`
	Resolved types.Colors `json:"resolved"`
}

func newColorsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Show, set or reset custom colors",
		Args:  usageArgs(cobra.NoArgs),
	}

	show := func(cmd *cobra.Command, s *session) error {
		res := colorsResult{Custom: s.app.Colors, Resolved: s.app.ResolvedColors()}
		p := s.palette()
		swatch := func(name, hex string) string {
			return fmt.Sprintf("%-8s %s", name, p.Text.Render(hex))
		}
		text := strings.Join([]string{
			swatch("primary", res.Resolved.Primary),
			swatch("bg", res.Resolved.Bg),
			swatch("card-bg", res.Resolved.CardBg),
			swatch("text", res.Resolved.Text),
		}, "\n")
		return e.emit(cmd.OutOrStdout(), res, text)
	}

	var c types.Colors
	set := &cobra.Command{
		Use:   "set",
		Short: "Override one or more colors (#rrggbb)",
		Args:  usageArgs(cobra.NoArgs),
		RunE: e.run(func(cmd *cobra.Command, _ []string, s *session) error {
			if c.IsZero() {
				return usagef("set at least one of --primary, --bg, --card-bg, --text")
			}
			if err := s.app.SetColors(c); err != nil {
				return err
			}
			return show(cmd, s)
		}),
	}
	set.Flags().StringVar(&c.Primary, "primary", "", "accent color")
	set.Flags().StringVar(&c.Bg, "bg", "", "background color")
	set.Flags().StringVar(&c.CardBg, "card-bg", "", "card background color")
	set.Flags().StringVar(&c.Text, "text", "", "text color")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the resolved colors",
			Args:  usageArgs(cobra.NoArgs),
			RunE: e.run(func(cmd *cobra.Command, _ []string, s *session) error {
				return show(cmd, s)
			}),
		},
		set,
		&cobra.Command{
			Use:   "reset",
			Short: "Drop every custom color",
			Args:  usageArgs(cobra.NoArgs),
			RunE: e.run(func(cmd *cobra.Command, _ []string, s *session) error {
				if err := s.app.ResetColors(); err != nil {
					return err
				}
				return show(cmd, s)
			}),
		},
	)
	return cmd
}
