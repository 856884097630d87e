// Package store owns the session's task list and filter selection.
//
// A Store is the single controller for application state. Presentation code
// calls its commands by id or value and reads back a View; it never edits
// tasks directly. Every command replaces the task slice wholesale, so a
// previously returned Tasks() or View() slice stays valid and unchanged.
//
// A Store is not safe for concurrent use. The TUI event loop and the CLI
// commands drive it from a single goroutine.
package store

import (
	"github.com/charmbracelet/log"

	"github.com/nibzard/todomatic/internal/logging"
	"github.com/nibzard/todomatic/internal/todo"
)

// Commands is the set of state transitions offered to presentation code.
type Commands interface {
	Add(name string) (todo.Task, bool)
	Delete(id string) bool
	Edit(id, name string) bool
	ToggleCompleted(id string) bool
	ToggleInProgress(id string) bool
	SelectFilter(f todo.Filter) bool
}

// Store holds the current task list and filter.
type Store struct {
	tasks  []todo.Task
	filter todo.Filter
	ids    todo.IDGenerator
	logger *log.Logger
}

var _ Commands = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator sets the id source for Add.
func WithIDGenerator(g todo.IDGenerator) Option {
	return func(s *Store) {
		if g != nil {
			s.ids = g
		}
	}
}

// WithLogger sets the logger used for command tracing.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFilter sets the initial filter. Unknown filters are ignored.
func WithFilter(f todo.Filter) Option {
	return func(s *Store) {
		if f.Valid() {
			s.filter = f
		}
	}
}

// New creates a store seeded with a copy of seed. The filter starts at All
// unless WithFilter says otherwise.
func New(seed []todo.Task, opts ...Option) *Store {
	s := &Store{
		tasks:  append([]todo.Task(nil), seed...),
		filter: todo.FilterAll,
		ids:    todo.UUIDGenerator{Prefix: todo.DefaultIDPrefix},
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger.Info("store seeded", "tasks", len(s.tasks), "filter", s.filter)
	return s
}

// Tasks returns the full task list in insertion order.
func (s *Store) Tasks() []todo.Task {
	return s.tasks
}

// Filter returns the current filter.
func (s *Store) Filter() todo.Filter {
	return s.filter
}

// Task returns the task with the given id.
func (s *Store) Task(id string) (todo.Task, bool) {
	return todo.GetTask(s.tasks, id)
}

// Add appends a task named name with a fresh id. Blank names are ignored.
func (s *Store) Add(name string) (todo.Task, bool) {
	id := s.ids.NewID()
	// A generator handing out a live id would break uniqueness.
	if todo.IndexOf(s.tasks, id) >= 0 {
		s.logger.Warn("id generator returned a duplicate id", "id", id)
		return todo.Task{}, false
	}
	next := todo.AddTask(s.tasks, id, name)
	if !s.replace("add", id, next) {
		return todo.Task{}, false
	}
	return next[len(next)-1], true
}

// Delete removes the task with the given id.
func (s *Store) Delete(id string) bool {
	return s.replace("delete", id, todo.DeleteTask(s.tasks, id))
}

// Edit renames the task with the given id.
func (s *Store) Edit(id, name string) bool {
	return s.replace("edit", id, todo.EditTask(s.tasks, id, name))
}

// ToggleCompleted flips the completed flag of the task with the given id.
func (s *Store) ToggleCompleted(id string) bool {
	return s.replace("toggle_completed", id, todo.ToggleCompleted(s.tasks, id))
}

// ToggleInProgress flips the in-progress flag of the task with the given id.
func (s *Store) ToggleInProgress(id string) bool {
	return s.replace("toggle_in_progress", id, todo.ToggleInProgress(s.tasks, id))
}

// SelectFilter changes the current filter. Unknown filters are ignored.
func (s *Store) SelectFilter(f todo.Filter) bool {
	if !f.Valid() {
		s.logger.Debug("filter ignored", "filter", f)
		return false
	}
	changed := f != s.filter
	s.filter = f
	s.logger.Debug("filter selected", "filter", f, "changed", changed)
	return changed
}

// replace installs next and reports whether it differs from the current list.
// The todo operations return their input slice when nothing changed.
func (s *Store) replace(op, id string, next []todo.Task) bool {
	changed := !sameBacking(s.tasks, next)
	if changed {
		s.tasks = next
	}
	s.logger.Debug("command", "op", op, "id", id, "changed", changed)
	return changed
}

func sameBacking(a, b []todo.Task) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
