package todo

import "strings"

// Task is a single entry in the task list.
type Task struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Completed  bool   `json:"completed" yaml:"completed"`
	InProgress bool   `json:"inProgress,omitempty" yaml:"inProgress,omitempty"`
}

// IsZero returns true if the task has no ID.
func (t Task) IsZero() bool {
	return t.ID == ""
}

// validName reports whether name has any non-space content.
func validName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// AddTask appends a new task with the given id and name.
// A blank name leaves the list unchanged.
func AddTask(tasks []Task, id, name string) []Task {
	if !validName(name) {
		return tasks
	}
	out := make([]Task, 0, len(tasks)+1)
	out = append(out, tasks...)
	return append(out, Task{ID: id, Name: name})
}

// DeleteTask removes the task with the given id.
func DeleteTask(tasks []Task, id string) []Task {
	if IndexOf(tasks, id) < 0 {
		return tasks
	}
	out := make([]Task, 0, len(tasks)-1)
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// EditTask renames the task with the given id. A blank name is ignored.
func EditTask(tasks []Task, id, name string) []Task {
	if !validName(name) {
		return tasks
	}
	return update(tasks, id, func(t *Task) {
		t.Name = name
	})
}

// ToggleCompleted flips the completed flag of the task with the given id.
func ToggleCompleted(tasks []Task, id string) []Task {
	return update(tasks, id, func(t *Task) {
		t.Completed = !t.Completed
	})
}

// ToggleInProgress flips the in-progress flag of the task with the given id.
func ToggleInProgress(tasks []Task, id string) []Task {
	return update(tasks, id, func(t *Task) {
		t.InProgress = !t.InProgress
	})
}

// update copies tasks and applies fn to the copy of the matching task.
func update(tasks []Task, id string, fn func(*Task)) []Task {
	i := IndexOf(tasks, id)
	if i < 0 {
		return tasks
	}
	out := make([]Task, len(tasks))
	copy(out, tasks)
	fn(&out[i])
	return out
}

// IndexOf returns the position of the task with the given id, or -1.
func IndexOf(tasks []Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// GetTask returns the task with the given id.
func GetTask(tasks []Task, id string) (Task, bool) {
	if i := IndexOf(tasks, id); i >= 0 {
		return tasks[i], true
	}
	return Task{}, false
}
