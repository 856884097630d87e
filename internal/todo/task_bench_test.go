package todo

import (
	"fmt"
	"testing"
)

func benchTasks(n int) []Task {
	tasks := make([]Task, n)
	for i := range tasks {
		tasks[i] = Task{ID: fmt.Sprintf("todo-%d", i), Name: "task", Completed: i%3 == 0, InProgress: i%5 == 0}
	}
	return tasks
}

// BenchmarkToggleCompleted benchmarks a toggle near the end of a large list.
func BenchmarkToggleCompleted(b *testing.B) {
	tasks := benchTasks(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ToggleCompleted(tasks, "todo-999")
	}
}

// BenchmarkToggleMissing benchmarks the no-op path.
func BenchmarkToggleMissing(b *testing.B) {
	tasks := benchTasks(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ToggleCompleted(tasks, "missing")
	}
}

// BenchmarkFilterTasks benchmarks each filter over a large list.
func BenchmarkFilterTasks(b *testing.B) {
	tasks := benchTasks(1000)
	for _, f := range Filters() {
		b.Run(f.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = FilterTasks(tasks, f)
			}
		})
	}
}

// BenchmarkAddTask benchmarks appending to a large list.
func BenchmarkAddTask(b *testing.B) {
	tasks := benchTasks(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = AddTask(tasks, "new", "Walk dog")
	}
}
