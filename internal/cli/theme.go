package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

func newThemeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [toggle|light|dark]",
		Short:     "Show or change the theme",
		Args:      usageArgs(cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs)),
		ValidArgs: []string{"toggle", types.ThemeLight, types.ThemeDark},
		RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
			if len(args) == 1 {
				var err error
				if args[0] == "toggle" {
					_, err = s.app.ToggleTheme()
				} else {
					err = s.app.SetTheme(args[0])
				}
				if err != nil {
					return err
				}
			}
			res := struct {
				Theme string `json:"theme"`
			}{s.app.Theme}
			return e.emit(cmd.OutOrStdout(), res, fmt.Sprintf("Theme: %s", s.palette().Accent.Render(s.app.Theme)))
		}),
	}
}
