package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flowtask/internal/render"
	"github.com/mesh-intelligence/flowtask/internal/summary"
	"github.com/mesh-intelligence/flowtask/pkg/types"
)

func newStatusCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show a read-only summary of the store",
		Long: "Print task, note and streak counts and whether FlowTask has been\n" +
			"used in the last day. Nothing is written, not even first-run defaults.",
		Args: usageArgs(cobra.NoArgs),
		RunE: e.runStatus,
	}
}

func (e *env) runStatus(cmd *cobra.Command, _ []string) error {
	_, s, log, err := e.attach(cmd)
	if err != nil {
		return err
	}
	defer detach(s, log)

	sum, err := summary.Read(s, e.now())
	if err != nil {
		return err
	}
	p := render.NewPalette(types.ThemeLight, types.Colors{})
	return e.emit(cmd.OutOrStdout(), sum, p.Summary(sum))
}
