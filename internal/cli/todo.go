package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTodoCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "todo",
		Aliases: []string{"task"},
		Short:   "Manage tasks",
		Args:    usageArgs(cobra.NoArgs),
	}

	var listOpen, listDone bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  usageArgs(cobra.NoArgs),
		RunE: e.run(func(cmd *cobra.Command, _ []string, s *session) error {
			todos := s.app.Todos
			if listOpen || listDone {
				todos = nil
				for _, t := range s.app.Todos {
					if (listDone && t.Completed) || (listOpen && !t.Completed) {
						todos = append(todos, t)
					}
				}
			}
			return e.emit(cmd.OutOrStdout(), nonNil(todos), s.palette().Todos(todos, -1))
		}),
	}
	list.Flags().BoolVar(&listOpen, "open", false, "only open tasks")
	list.Flags().BoolVar(&listDone, "done", false, "only completed tasks")

	var moveAfter bool
	move := &cobra.Command{
		Use:   "move <ref> <target-ref>",
		Short: "Move a task before (or with --after, after) another task",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
			ids := taskIDs(s.app.Todos)
			drag, err := resolveRef(args[0], ids)
			if err != nil {
				return err
			}
			target, err := resolveRef(args[1], ids)
			if err != nil {
				return err
			}
			if err := s.app.MoveTodo(drag, target, moveAfter); err != nil {
				return err
			}
			return e.emit(cmd.OutOrStdout(), s.app.Todos, s.palette().Todos(s.app.Todos, -1))
		}),
	}
	move.Flags().BoolVar(&moveAfter, "after", false, "place after the target instead of before")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <text>...",
			Short: "Add a task to the top of the list",
			Args:  usageArgs(cobra.MinimumNArgs(1)),
			RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
				task, err := s.app.AddTodo(strings.Join(args, " "))
				if err != nil {
					return err
				}
				return e.emit(cmd.OutOrStdout(), task, fmt.Sprintf("Added task %d: %s", task.ID, task.Text))
			}),
		},
		list,
		&cobra.Command{
			Use:   "done <ref>",
			Short: "Toggle a task between open and completed",
			Args:  usageArgs(cobra.ExactArgs(1)),
			RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
				id, err := resolveRef(args[0], taskIDs(s.app.Todos))
				if err != nil {
					return err
				}
				res, err := s.app.ToggleTodo(id)
				if err != nil {
					return err
				}
				state := "reopened"
				if res.Task.Completed {
					state = "completed"
				}
				text := fmt.Sprintf("Task %d %s: %s", res.Task.ID, state, res.Task.Text)
				if res.Achievement != "" {
					text += "\n" + s.palette().Notice.Render(res.Achievement)
				}
				return e.emit(cmd.OutOrStdout(), res, text)
			}),
		},
		&cobra.Command{
			Use:   "edit <ref> <text>...",
			Short: "Replace a task's text",
			Args:  usageArgs(cobra.MinimumNArgs(2)),
			RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
				id, err := resolveRef(args[0], taskIDs(s.app.Todos))
				if err != nil {
					return err
				}
				if err := s.app.UpdateTodoText(id, strings.Join(args[1:], " ")); err != nil {
					return err
				}
				task, _ := s.app.Todo(id)
				return e.emit(cmd.OutOrStdout(), task, fmt.Sprintf("Updated task %d: %s", task.ID, task.Text))
			}),
		},
		&cobra.Command{
			Use:     "rm <ref>",
			Aliases: []string{"delete"},
			Short:   "Delete a task (it stays in history)",
			Args:    usageArgs(cobra.ExactArgs(1)),
			RunE: e.run(func(cmd *cobra.Command, args []string, s *session) error {
				id, err := resolveRef(args[0], taskIDs(s.app.Todos))
				if err != nil {
					return err
				}
				task, _ := s.app.Todo(id)
				if err := s.app.DeleteTodo(id); err != nil {
					return err
				}
				return e.emit(cmd.OutOrStdout(), task, fmt.Sprintf("Deleted task %d: %s", task.ID, task.Text))
			}),
		},
		move,
	)
	return cmd
}
