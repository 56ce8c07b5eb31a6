package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newNoteCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"notes"},
		Short:   "Manage sticky notes",
		Args:    usageArgs(cobra.NoArgs),
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add [text]...",
			Short: "Append a note, empty unless text is given",
			RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
				note, err := s.app.AddNote()
				if err != nil {
					return err
				}
				if len(args) > 0 {
					if err := s.app.UpdateNote(note.ID, strings.Join(args, " ")); err != nil {
						return err
					}
					note, _ = s.app.Note(note.ID)
				}
				return e.emit(cmd.OutOrStdout(), note, fmt.Sprintf("Added note %d", note.ID))
			}),
		},
		&cobra.Command{
			Use:   "list",
			Short: "List notes",
			Args:  usageArgs(cobra.NoArgs),
			RunE: e.run(func(cmd *cobra.Command, _ []string, s *session) error {
				return e.emit(cmd.OutOrStdout(), nonNil(s.app.Notes), s.palette().Notes(s.app.Notes, -1, 80))
			}),
		},
		&cobra.Command{
			Use:   "edit <ref> [text]...",
			Short: "Replace a note's text; no text empties it",
			Args:  usageArgs(cobra.MinimumNArgs(1)),
			RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
				id, err := resolveRef(args[0], noteIDs(s.app.Notes))
				if err != nil {
					return err
				}
				if err := s.app.UpdateNote(id, strings.Join(args[1:], " ")); err != nil {
					return err
				}
				note, _ := s.app.Note(id)
				return e.emit(cmd.OutOrStdout(), note, fmt.Sprintf("Updated note %d", note.ID))
			}),
		},
		&cobra.Command{
			Use:     "rm <ref>",
			Aliases: []string{"delete"},
			Short:   "Delete a note; the last note is always kept",
			Args:    usageArgs(cobra.ExactArgs(1)),
			RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
				id, err := resolveRef(args[0], noteIDs(s.app.Notes))
				if err != nil {
					return err
				}
				before := len(s.app.Notes)
				if err := s.app.DeleteNote(id); err != nil {
					return err
				}
				deleted := len(s.app.Notes) < before
				text := fmt.Sprintf("Deleted note %d", id)
				if !deleted {
					text = "Kept the last note"
				}
				return e.emit(cmd.OutOrStdout(), map[string]any{"id": id, "deleted": deleted}, text)
			}),
		},
	)
	return cmd
}
