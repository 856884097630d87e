package todo

import (
	"errors"
	"fmt"
	"strings"
)

// Filter selects which tasks are shown.
type Filter string

const (
	FilterAll        Filter = "All"
	FilterActive     Filter = "Active"
	FilterInProgress Filter = "InProgress"
	FilterCompleted  Filter = "Completed"
)

// ErrUnknownFilter is returned by ParseFilter for names outside the fixed set.
var ErrUnknownFilter = errors.New("unknown filter")

var filterOrder = []Filter{FilterAll, FilterActive, FilterInProgress, FilterCompleted}

var filterPredicates = map[Filter]func(Task) bool{
	FilterAll:        func(Task) bool { return true },
	FilterActive:     func(t Task) bool { return !t.Completed },
	FilterInProgress: func(t Task) bool { return t.InProgress },
	FilterCompleted:  func(t Task) bool { return t.Completed },
}

// Filters returns every filter in display order.
func Filters() []Filter {
	out := make([]Filter, len(filterOrder))
	copy(out, filterOrder)
	return out
}

// Name returns the display name of the filter.
func (f Filter) Name() string {
	return string(f)
}

// Valid reports whether f is one of the known filters.
func (f Filter) Valid() bool {
	_, ok := filterPredicates[f]
	return ok
}

// Match reports whether the task passes the filter. Unknown filters match nothing.
func (f Filter) Match(t Task) bool {
	pred, ok := filterPredicates[f]
	if !ok {
		return false
	}
	return pred(t)
}

// ParseFilter resolves a filter name, ignoring case, dashes, underscores and spaces,
// so "in-progress" and "inprogress" both yield FilterInProgress.
func ParseFilter(name string) (Filter, error) {
	key := normalizeFilterName(name)
	for _, f := range filterOrder {
		if normalizeFilterName(string(f)) == key {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (expected one of: %s)", ErrUnknownFilter, name, filterList())
}

func normalizeFilterName(name string) string {
	r := strings.NewReplacer("-", "", "_", "", " ", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(name)))
}

func filterList() string {
	names := make([]string, len(filterOrder))
	for i, f := range filterOrder {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// FilterTasks returns the tasks matching f, in their original order.
// The result never aliases the input.
func FilterTasks(tasks []Task, f Filter) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// HeadingText summarizes a filtered list, e.g. "3 tasks remaining".
func HeadingText(count int) string {
	noun := "tasks"
	if count == 1 {
		noun = "task"
	}
	return fmt.Sprintf("%d %s remaining", count, noun)
}
