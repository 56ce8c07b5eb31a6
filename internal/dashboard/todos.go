package dashboard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// Toggle reports the outcome of ToggleTodo.
type Toggle struct {
	Task types.Task `json:"task"`
	// Achievement is non-empty when this completion crossed a milestone.
	Achievement string `json:"achievement,omitempty"`
}

// AddTodo prepends a new open task and counts it in today's stats.
func (a *App) AddTodo(text string) (types.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return types.Task{}, types.ErrEmptyText
	}
	task := types.Task{ID: a.ids.next(), Text: text}
	a.Todos = append([]types.Task{task}, a.Todos...)
	if err := a.saveTodos(); err != nil {
		return types.Task{}, err
	}
	if err := a.TrackStat(types.StatAdded); err != nil {
		return types.Task{}, err
	}
	return task, nil
}

// ToggleTodo flips a task's completion. Completing a task bumps the streak,
// counts it in today's stats, and may award an achievement.
func (a *App) ToggleTodo(id int64) (Toggle, error) {
	i := a.todoIndex(id)
	if i < 0 {
		return Toggle{}, fmt.Errorf("%w: todo %d", types.ErrNotFound, id)
	}
	a.Todos[i].Completed = !a.Todos[i].Completed
	task := a.Todos[i]
	if err := a.saveTodos(); err != nil {
		return Toggle{}, err
	}
	if !task.Completed {
		return Toggle{Task: task}, nil
	}
	if err := a.TrackStat(types.StatCompleted); err != nil {
		return Toggle{}, err
	}
	if err := a.bumpStreak(); err != nil {
		return Toggle{}, err
	}
	return Toggle{Task: task, Achievement: Achievement(a.CompletedCount())}, nil
}

// Achievement returns the milestone message for a completed-task count, or
// the empty string when the count is not a milestone.
func Achievement(completed int) string {
	switch {
	case completed == 1:
		return "First task done!"
	case completed == 5:
		return "5 tasks completed!"
	case completed == 10:
		return "10 tasks! You're on fire!"
	case completed > 0 && completed%10 == 0:
		return fmt.Sprintf("%d tasks! Amazing!", completed)
	}
	return ""
}

// UpdateTodoText replaces a task's text.
func (a *App) UpdateTodoText(id int64, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return types.ErrEmptyText
	}
	i := a.todoIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: todo %d", types.ErrNotFound, id)
	}
	a.Todos[i].Text = text
	return a.saveTodos()
}

// DeleteTodo moves a task into history.
func (a *App) DeleteTodo(id int64) error {
	i := a.todoIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: todo %d", types.ErrNotFound, id)
	}
	task := a.Todos[i]
	a.History.Tasks = types.PushCapped(a.History.Tasks, types.Deleted[types.Task]{Item: task, DeletedAt: a.now().UnixMilli()})
	if err := a.saveHistory(); err != nil {
		return err
	}
	a.Todos = slices.Delete(a.Todos, i, i+1)
	return a.saveTodos()
}

// MoveTodo takes the dragged task out of the list and reinserts it next to
// target: after it when after is true, before it otherwise. Moving a task
// onto itself changes nothing.
func (a *App) MoveTodo(dragID, targetID int64, after bool) error {
	if dragID == targetID {
		return nil
	}
	from := a.todoIndex(dragID)
	if from < 0 {
		return fmt.Errorf("%w: todo %d", types.ErrNotFound, dragID)
	}
	if a.todoIndex(targetID) < 0 {
		return fmt.Errorf("%w: todo %d", types.ErrNotFound, targetID)
	}
	task := a.Todos[from]
	rest := slices.Delete(slices.Clone(a.Todos), from, from+1)
	to := slices.IndexFunc(rest, func(t types.Task) bool { return t.ID == targetID })
	if after {
		to++
	}
	a.Todos = slices.Insert(rest, to, task)
	return a.saveTodos()
}

// CompletedCount returns the number of completed tasks.
func (a *App) CompletedCount() int {
	n := 0
	for _, t := range a.Todos {
		if t.Completed {
			n++
		}
	}
	return n
}

// OpenCount returns the number of tasks not yet completed.
func (a *App) OpenCount() int {
	return len(a.Todos) - a.CompletedCount()
}

// Progress returns the completed share of tasks as a percentage in 0..100.
func (a *App) Progress() float64 {
	if len(a.Todos) == 0 {
		return 0
	}
	return float64(a.CompletedCount()) / float64(len(a.Todos)) * 100
}

// Todo returns the task with the given id.
func (a *App) Todo(id int64) (types.Task, bool) {
	i := a.todoIndex(id)
	if i < 0 {
		return types.Task{}, false
	}
	return a.Todos[i], true
}

func (a *App) todoIndex(id int64) int {
	return slices.IndexFunc(a.Todos, func(t types.Task) bool { return t.ID == id })
}
