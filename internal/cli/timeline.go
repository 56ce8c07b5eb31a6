package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

func newTimelineCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Manage the daily timeline",
		Args:  usageArgs(cobra.NoArgs),
	}

	var addTime, addTitle, addStart, addEnd string
	add := &cobra.Command{
		Use:   "add",
		Short: "Append a timeline entry",
		Args:  usageArgs(cobra.NoArgs),
		RunE: e.run(func(cmd *cobra.Command, _ []string, s *session) error {
			entry, err := s.app.AddTimelineEntry()
			if err != nil {
				return err
			}
			for _, f := range []struct{ field, value string }{
				{types.TimelineFieldTime, addTime},
				{types.TimelineFieldTitle, addTitle},
				{types.TimelineFieldDayStart, addStart},
				{types.TimelineFieldDayEnd, addEnd},
			} {
				if f.value == "" {
					continue
				}
				if err := s.app.UpdateTimelineEntry(entry.ID, f.field, f.value); err != nil {
					return err
				}
			}
			entry, _ = s.app.TimelineEntry(entry.ID)
			return e.emit(cmd.OutOrStdout(), entry, fmt.Sprintf("Added timeline entry %d: %s %s", entry.ID, entry.Time, entry.Title))
		}),
	}
	add.Flags().StringVar(&addTime, "time", "", "start time, e.g. 09:30 (default 00:00)")
	add.Flags().StringVar(&addTitle, "title", "", "title (default \"New task\")")
	add.Flags().StringVar(&addStart, "start", "", "first day of month (default today)")
	add.Flags().StringVar(&addEnd, "end", "", "last day of month (default today)")

	cmd.AddCommand(
		add,
		&cobra.Command{
			Use:   "list",
			Short: "List timeline entries",
			Args:  usageArgs(cobra.NoArgs),
			RunE: e.run(func(cmd *cobra.Command, _ []string, s *session) error {
				return e.emit(cmd.OutOrStdout(), nonNil(s.app.Timeline), s.palette().Timeline(s.app.Timeline, -1))
			}),
		},
		&cobra.Command{
			Use:   "set <ref> <time|title|dayStart|dayEnd> <value>",
			Short: "Set one field of a timeline entry",
			Args:  usageArgs(cobra.ExactArgs(3)),
			RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
				id, err := resolveRef(args[0], timelineIDs(s.app.Timeline))
				if err != nil {
					return err
				}
				if err := s.app.UpdateTimelineEntry(id, args[1], args[2]); err != nil {
					return err
				}
				entry, _ := s.app.TimelineEntry(id)
				return e.emit(cmd.OutOrStdout(), entry, fmt.Sprintf("Updated timeline entry %d", entry.ID))
			}),
		},
		&cobra.Command{
			Use:   "current <ref>",
			Short: "Mark an entry as current, or clear it if it already is",
			Args:  usageArgs(cobra.ExactArgs(1)),
			RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
				id, err := resolveRef(args[0], timelineIDs(s.app.Timeline))
				if err != nil {
					return err
				}
				if err := s.app.ToggleTimelineCurrent(id); err != nil {
					return err
				}
				entry, _ := s.app.TimelineEntry(id)
				text := fmt.Sprintf("Timeline entry %d is no longer current", entry.ID)
				if entry.Current {
					text = fmt.Sprintf("Timeline entry %d is now current: %s", entry.ID, entry.Title)
				}
				return e.emit(cmd.OutOrStdout(), entry, text)
			}),
		},
		&cobra.Command{
			Use:     "rm <ref>",
			Aliases: []string{"delete"},
			Short:   "Delete a timeline entry (it stays in history)",
			Args:    usageArgs(cobra.ExactArgs(1)),
			RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
				id, err := resolveRef(args[0], timelineIDs(s.app.Timeline))
				if err != nil {
					return err
				}
				entry, _ := s.app.TimelineEntry(id)
				if err := s.app.DeleteTimelineEntry(id); err != nil {
					return err
				}
				return e.emit(cmd.OutOrStdout(), entry, fmt.Sprintf("Deleted timeline entry %d: %s", entry.ID, entry.Title))
			}),
		},
	)
	return cmd
}
