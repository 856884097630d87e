package store

import "github.com/nibzard/todomatic/internal/todo"

// FilterButton is the render state of one filter control.
type FilterButton struct {
	Filter  todo.Filter
	Pressed bool
}

// View is everything a presentation layer needs to draw the list.
type View struct {
	Tasks        []todo.Task
	Heading      string
	ActiveFilter string
	Filters      []FilterButton
	Total        int
}

// View computes the derived view from the current state.
func (s *Store) View() View {
	visible := todo.FilterTasks(s.tasks, s.filter)

	buttons := make([]FilterButton, 0, 4)
	for _, f := range todo.Filters() {
		buttons = append(buttons, FilterButton{Filter: f, Pressed: f == s.filter})
	}

	return View{
		Tasks:        visible,
		Heading:      todo.HeadingText(len(visible)),
		ActiveFilter: s.filter.Name(),
		Filters:      buttons,
		Total:        len(s.tasks),
	}
}
