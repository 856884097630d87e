package todo

import (
	"errors"
	"reflect"
	"testing"
)

func TestFilterTasks(t *testing.T) {
	tasks := []Task{
		{ID: "1", Name: "one"},
		{ID: "2", Name: "two", Completed: true},
		{ID: "3", Name: "three", InProgress: true},
		{ID: "4", Name: "four", Completed: true, InProgress: true},
	}

	tests := []struct {
		filter Filter
		want   []string
	}{
		{FilterAll, []string{"1", "2", "3", "4"}},
		{FilterActive, []string{"1", "3"}},
		{FilterInProgress, []string{"3", "4"}},
		{FilterCompleted, []string{"2", "4"}},
		{Filter("Bogus"), []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			got := FilterTasks(tasks, tt.filter)
			ids := make([]string, 0, len(got))
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("FilterTasks(%s): got %v, want %v", tt.filter, ids, tt.want)
			}
		})
	}
}

func TestFilterAllReturnsEverything(t *testing.T) {
	tasks := sampleTasks()
	got := FilterTasks(tasks, FilterAll)
	if !reflect.DeepEqual(got, tasks) {
		t.Errorf("FilterTasks(All): got %+v, want %+v", got, tasks)
	}
	got[0].Name = "changed"
	if tasks[0].Name == "changed" {
		t.Error("FilterTasks result aliases the input")
	}
}

func TestFiltersOrder(t *testing.T) {
	want := []Filter{FilterAll, FilterActive, FilterInProgress, FilterCompleted}
	if got := Filters(); !reflect.DeepEqual(got, want) {
		t.Errorf("Filters(): got %v, want %v", got, want)
	}
	for _, f := range want {
		if !f.Valid() {
			t.Errorf("%s.Valid(): got false", f)
		}
		if f.Name() != string(f) {
			t.Errorf("%s.Name(): got %q", f, f.Name())
		}
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Filter
	}{
		{"All", FilterAll},
		{"all", FilterAll},
		{"ACTIVE", FilterActive},
		{"InProgress", FilterInProgress},
		{"in-progress", FilterInProgress},
		{"in_progress", FilterInProgress},
		{" completed ", FilterCompleted},
	}
	for _, tt := range tests {
		got, err := ParseFilter(tt.in)
		if err != nil {
			t.Errorf("ParseFilter(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFilter(%q): got %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseFilter("done"); !errors.Is(err, ErrUnknownFilter) {
		t.Errorf("ParseFilter(done): got %v, want ErrUnknownFilter", err)
	}
}

func TestHeadingText(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "0 tasks remaining"},
		{1, "1 task remaining"},
		{2, "2 tasks remaining"},
		{11, "11 tasks remaining"},
	}
	for _, tt := range tests {
		if got := HeadingText(tt.count); got != tt.want {
			t.Errorf("HeadingText(%d): got %q, want %q", tt.count, got, tt.want)
		}
	}
}
