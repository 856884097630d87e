package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/nibzard/todomatic/internal/store"
	"github.com/nibzard/todomatic/internal/todo"
)

// checkbox returns the status marker for a row.
func checkbox(t todo.Task) string {
	if t.Completed {
		return "[x]"
	}
	return "[ ]"
}

// FormatTask renders one task as a single plain-text line.
func FormatTask(t todo.Task, verbose bool) string {
	line := fmt.Sprintf("  %s %s", checkbox(t), t.Name)
	if t.InProgress {
		line += " (in progress)"
	}
	if verbose {
		line += fmt.Sprintf("  [%s]", t.ID)
	}
	return line
}

// FilterBar renders the filter controls with the pressed one bracketed.
func FilterBar(buttons []store.FilterButton) string {
	parts := make([]string, 0, len(buttons))
	for _, btn := range buttons {
		if btn.Pressed {
			parts = append(parts, "["+btn.Filter.Name()+"]")
		} else {
			parts = append(parts, " "+btn.Filter.Name()+" ")
		}
	}
	return strings.Join(parts, " ")
}

// WritePlain prints the view without styling, for non-interactive output.
func WritePlain(w io.Writer, title string, v store.View, verbose bool) error {
	var b strings.Builder
	if title != "" {
		b.WriteString(title + "\n")
		b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
	}
	b.WriteString(FilterBar(v.Filters) + "\n\n")
	b.WriteString(v.Heading + "\n\n")
	if len(v.Tasks) == 0 {
		b.WriteString("  No tasks.\n")
	}
	for _, t := range v.Tasks {
		b.WriteString(FormatTask(t, verbose) + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
