package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/todomatic/internal/store"
	"github.com/nibzard/todomatic/internal/todo"
)

func newTestModel(t *testing.T) (*tuiModel, *store.Store) {
	t.Helper()
	seed := []todo.Task{
		{ID: "a", Name: "Eat", Completed: true},
		{ID: "b", Name: "Sleep"},
		{ID: "c", Name: "Repeat"},
	}
	st := store.New(seed, store.WithIDGenerator(&todo.SequenceGenerator{Prefix: "new-"}))
	return newTUIModel(st, WithTitle("Chores")), st
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *tuiModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typeText(m *tuiModel, s string) {
	for _, r := range s {
		send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := send(m, runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestToggleCompletedOnCursor(t *testing.T) {
	m, st := newTestModel(t)
	send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeySpace})

	task, _ := st.Task("b")
	if !task.Completed {
		t.Error("space should complete the task under the cursor")
	}
	send(m, runes("x"))
	task, _ = st.Task("b")
	if task.Completed {
		t.Error("x should toggle the task back")
	}
}

func TestToggleInProgressAndDelete(t *testing.T) {
	m, st := newTestModel(t)
	send(m, runes("j"), runes("j"), runes("p"))

	task, _ := st.Task("c")
	if !task.InProgress {
		t.Error("p should mark the task in progress")
	}

	send(m, runes("d"))
	if _, ok := st.Task("c"); ok {
		t.Error("d should delete the task under the cursor")
	}
	if m.cursor != 1 {
		t.Errorf("cursor: got %d, want 1 after deleting the last row", m.cursor)
	}
}

func TestFilterKeys(t *testing.T) {
	m, st := newTestModel(t)

	tests := []struct {
		msg  tea.KeyMsg
		want todo.Filter
	}{
		{runes("2"), todo.FilterActive},
		{runes("4"), todo.FilterCompleted},
		{tea.KeyMsg{Type: tea.KeyTab}, todo.FilterAll},
		{tea.KeyMsg{Type: tea.KeyTab}, todo.FilterActive},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, todo.FilterAll},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, todo.FilterCompleted},
		{runes("3"), todo.FilterInProgress},
		{runes("1"), todo.FilterAll},
	}
	for i, tt := range tests {
		send(m, tt.msg)
		if got := st.Filter(); got != tt.want {
			t.Errorf("step %d (%s): got %s, want %s", i, tt.msg, got, tt.want)
		}
	}
}

func TestCursorStaysInFilteredList(t *testing.T) {
	m, st := newTestModel(t)
	send(m, runes("2")) // Active: Sleep, Repeat
	send(m, runes("j"), runes("j"), runes("j"))
	if m.cursor != 1 {
		t.Fatalf("cursor: got %d, want 1", m.cursor)
	}

	// Completing the row removes it from the Active view.
	send(m, tea.KeyMsg{Type: tea.KeySpace})
	if task, _ := st.Task("c"); !task.Completed {
		t.Fatal("expected Repeat to be completed")
	}
	if m.cursor != 0 {
		t.Errorf("cursor: got %d, want 0", m.cursor)
	}
}

func TestAddTask(t *testing.T) {
	m, st := newTestModel(t)
	send(m, runes("a"))
	if m.mode != modeAdd {
		t.Fatalf("mode: got %v, want add", m.mode)
	}

	typeText(m, "Walk dog")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != modeList {
		t.Errorf("mode: got %v, want list", m.mode)
	}
	tasks := st.Tasks()
	if len(tasks) != 4 {
		t.Fatalf("len: got %d, want 4", len(tasks))
	}
	last := tasks[3]
	if last.Name != "Walk dog" || last.ID != "new-0" || last.Completed {
		t.Errorf("added task: got %+v", last)
	}
	if m.cursor != 3 {
		t.Errorf("cursor: got %d, want 3 on the new task", m.cursor)
	}
}

func TestAddBlankKeepsForm(t *testing.T) {
	m, st := newTestModel(t)
	send(m, runes("a"))
	typeText(m, "   ")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != modeAdd {
		t.Errorf("mode: got %v, want add", m.mode)
	}
	if m.notice == "" {
		t.Error("expected a notice for a blank name")
	}
	if len(st.Tasks()) != 3 {
		t.Errorf("len: got %d, want 3", len(st.Tasks()))
	}
	if !strings.Contains(m.View(), "cannot be empty") {
		t.Error("view should show the notice")
	}
}

func TestFormIgnoresListKeys(t *testing.T) {
	m, st := newTestModel(t)
	send(m, runes("a"))
	cmd := send(m, runes("q"))
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("q should be typed into the form, not quit")
		}
	}
	if got := m.input.Value(); got != "q" {
		t.Errorf("input: got %q, want q", got)
	}
	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeList || len(st.Tasks()) != 3 {
		t.Error("esc should cancel without adding")
	}
	if m.input.Value() != "" {
		t.Errorf("input should be cleared, got %q", m.input.Value())
	}
}

func TestEditTask(t *testing.T) {
	m, st := newTestModel(t)
	send(m, runes("j"), runes("e"))
	if m.mode != modeEdit {
		t.Fatalf("mode: got %v, want edit", m.mode)
	}
	if got := m.input.Value(); got != "Sleep" {
		t.Errorf("prefill: got %q, want Sleep", got)
	}
	if !strings.Contains(m.View(), "New name for Sleep") {
		t.Error("view should label the edit form")
	}

	typeText(m, " in")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	task, _ := st.Task("b")
	if task.Name != "Sleep in" {
		t.Errorf("name: got %q, want %q", task.Name, "Sleep in")
	}
}

func TestEditCancelKeepsName(t *testing.T) {
	m, st := newTestModel(t)
	send(m, runes("e"))
	typeText(m, "!!!")
	send(m, tea.KeyMsg{Type: tea.KeyEsc})

	task, _ := st.Task("a")
	if task.Name != "Eat" {
		t.Errorf("name: got %q, want Eat", task.Name)
	}
}

func TestKeysOnEmptyListAreNoOps(t *testing.T) {
	st := store.New(nil)
	m := newTUIModel(st)
	send(m, runes("j"), tea.KeyMsg{Type: tea.KeySpace}, runes("p"), runes("d"), runes("e"))
	if m.mode != modeList {
		t.Errorf("mode: got %v, want list", m.mode)
	}
	if m.cursor != 0 {
		t.Errorf("cursor: got %d, want 0", m.cursor)
	}
	if !strings.Contains(m.View(), "0 tasks remaining") {
		t.Error("view should show the empty heading")
	}
}

func TestViewShowsState(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.View()
	for _, want := range []string{"Chores", "3 tasks remaining", "Eat", "Sleep", "Repeat", "Active", "InProgress"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	send(m, runes("4"))
	out = m.View()
	if !strings.Contains(out, "1 task remaining") {
		t.Error("completed view should show one task")
	}
	if strings.Contains(out, "Sleep") {
		t.Error("completed view should hide active tasks")
	}
}

func TestShiftFilter(t *testing.T) {
	if got := shiftFilter(todo.FilterCompleted, 1); got != todo.FilterAll {
		t.Errorf("forward wrap: got %s", got)
	}
	if got := shiftFilter(todo.FilterAll, -1); got != todo.FilterCompleted {
		t.Errorf("backward wrap: got %s", got)
	}
	if got := shiftFilter(todo.Filter("bogus"), 1); got != todo.FilterAll {
		t.Errorf("unknown: got %s", got)
	}
}

func TestWritePlain(t *testing.T) {
	st := store.New([]todo.Task{
		{ID: "a", Name: "Eat", Completed: true},
		{ID: "b", Name: "Sleep", InProgress: true},
	})
	st.SelectFilter(todo.FilterActive)

	var buf bytes.Buffer
	if err := WritePlain(&buf, "TodoMatic", st.View(), true); err != nil {
		t.Fatalf("WritePlain: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"TodoMatic\n=========", "[Active]", " All ", "1 task remaining", "[ ] Sleep (in progress)  [b]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Eat") {
		t.Errorf("completed task should be filtered out:\n%s", out)
	}
}

func TestFormatTask(t *testing.T) {
	tests := []struct {
		task    todo.Task
		verbose bool
		want    string
	}{
		{todo.Task{ID: "a", Name: "Eat", Completed: true}, false, "  [x] Eat"},
		{todo.Task{ID: "b", Name: "Sleep"}, true, "  [ ] Sleep  [b]"},
		{todo.Task{ID: "c", Name: "Nap", InProgress: true}, false, "  [ ] Nap (in progress)"},
	}
	for _, tt := range tests {
		if got := FormatTask(tt.task, tt.verbose); got != tt.want {
			t.Errorf("FormatTask(%+v): got %q, want %q", tt.task, got, tt.want)
		}
	}
}
