package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flowtask/internal/dashboard"
	"github.com/mesh-intelligence/flowtask/pkg/types"
)

type statsResult struct {
	Today  types.DayStat        `json:"today"`
	Totals dashboard.Totals     `json:"totals"`
	Week   []dashboard.WeekDay  `json:"week"`
	Month  []dashboard.MonthDay `json:"month"`
}

func newStatsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show completion totals, this week and this month",
		Args:  usageArgs(cobra.NoArgs),
		RunE: e.run(func(cmd *cobra.Command, _ []string, s *session) error {
			week, peak := s.app.Week()
			res := statsResult{
				Today:  s.app.Today(),
				Totals: s.app.Totals(),
				Week:   week,
				Month:  s.app.Month(),
			}
			p := s.palette()
			text := strings.Join([]string{
				p.Section("Totals", p.Totals(res.Totals)),
				p.Section("This week", p.Week(res.Week, peak)),
				p.Section(s.app.Now().Format("January 2006"), p.Month(res.Month)),
			}, "\n")
			return e.emit(cmd.OutOrStdout(), res, text)
		}),
	}
}
