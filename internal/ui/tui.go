// Package ui provides the terminal interfaces for a task store.
package ui

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/nibzard/todomatic/internal/logging"
	"github.com/nibzard/todomatic/internal/store"
	"github.com/nibzard/todomatic/internal/todo"
	"github.com/nibzard/todomatic/internal/utils"
)

// ErrNoTTY is returned by Run when stdout is not a terminal.
var ErrNoTTY = errors.New("tui requires a TTY")

// DefaultTitle is shown above the list unless WithTitle overrides it.
const DefaultTitle = "TodoMatic"

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

type tuiConfig struct {
	title  string
	logger *log.Logger
}

// WithTitle sets the title line.
func WithTitle(title string) TUIOption {
	return func(c *tuiConfig) {
		if title != "" {
			c.title = title
		}
	}
}

// WithLogger sets the logger for UI events. It must not write to the terminal.
func WithLogger(l *log.Logger) TUIOption {
	return func(c *tuiConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Run starts the interactive list over st and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, st *store.Store, opts ...TUIOption) error {
	if !utils.IsTTY(os.Stdout) {
		return ErrNoTTY
	}
	model := newTUIModel(st, opts...)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

type tuiModel struct {
	store    *store.Store
	title    string
	logger   *log.Logger
	keys     listKeys
	formKeys formKeys
	help     help.Model
	input    textinput.Model
	mode     mode
	cursor   int
	editID   string
	editName string
	notice   string
}

func newTUIModel(st *store.Store, opts ...TUIOption) *tuiModel {
	c := &tuiConfig{
		title:  DefaultTitle,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 256
	in.Width = 48

	return &tuiModel{
		store:    st,
		title:    c.title,
		logger:   c.logger,
		keys:     defaultListKeys(),
		formKeys: defaultFormKeys(),
		help:     help.New(),
		input:    in,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeList {
			return m.updateList(msg)
		}
		return m.updateForm(msg)
	}

	if m.mode != modeList {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *tuiModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.store.View()
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(view.Tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Filter):
		idx := int(msg.String()[0] - '1')
		m.selectFilter(todo.Filters()[idx])
	case key.Matches(msg, m.keys.NextFilter):
		m.selectFilter(shiftFilter(m.store.Filter(), 1))
	case key.Matches(msg, m.keys.PrevFilter):
		m.selectFilter(shiftFilter(m.store.Filter(), -1))
	case key.Matches(msg, m.keys.Add):
		return m, m.openForm(modeAdd, todo.Task{})
	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.selected(view); ok {
			return m, m.openForm(modeEdit, t)
		}
	case key.Matches(msg, m.keys.ToggleCompleted):
		if t, ok := m.selected(view); ok {
			m.store.ToggleCompleted(t.ID)
		}
	case key.Matches(msg, m.keys.ToggleInProgress):
		if t, ok := m.selected(view); ok {
			m.store.ToggleInProgress(t.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(view); ok {
			m.store.Delete(t.ID)
		}
	}

	m.clampCursor()
	return m, nil
}

func (m *tuiModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.formKeys.Cancel):
		m.closeForm()
		return m, nil
	case key.Matches(msg, m.formKeys.Submit):
		m.submit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// openForm focuses the input, prefilled with t's name when editing.
func (m *tuiModel) openForm(md mode, t todo.Task) tea.Cmd {
	m.mode = md
	m.editID = t.ID
	m.editName = t.Name
	m.notice = ""
	m.input.SetValue(t.Name)
	m.input.CursorEnd()
	if md == modeAdd {
		m.input.Placeholder = "What needs to be done?"
	} else {
		m.input.Placeholder = t.Name
	}
	return m.input.Focus()
}

func (m *tuiModel) closeForm() {
	m.mode = modeList
	m.editID = ""
	m.editName = ""
	m.input.Reset()
	m.input.Blur()
}

// submit applies the form. A blank name keeps the form open with a notice.
func (m *tuiModel) submit() {
	name := m.input.Value()
	if strings.TrimSpace(name) == "" {
		m.notice = "Task name cannot be empty."
		return
	}

	switch m.mode {
	case modeAdd:
		if t, ok := m.store.Add(name); ok {
			m.logger.Debug("task added from form", "id", t.ID)
			m.focusTask(t.ID)
		}
	case modeEdit:
		m.store.Edit(m.editID, name)
	}
	m.closeForm()
	m.clampCursor()
}

func (m *tuiModel) selectFilter(f todo.Filter) {
	if m.store.SelectFilter(f) {
		m.cursor = 0
	}
}

// shiftFilter steps through the filters in display order, wrapping around.
func shiftFilter(cur todo.Filter, delta int) todo.Filter {
	filters := todo.Filters()
	for i, f := range filters {
		if f == cur {
			n := len(filters)
			return filters[((i+delta)%n+n)%n]
		}
	}
	return todo.FilterAll
}

func (m *tuiModel) selected(view store.View) (todo.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(view.Tasks) {
		return todo.Task{}, false
	}
	return view.Tasks[m.cursor], true
}

// focusTask moves the cursor onto id if it is visible.
func (m *tuiModel) focusTask(id string) {
	if i := todo.IndexOf(m.store.View().Tasks, id); i >= 0 {
		m.cursor = i
	}
}

func (m *tuiModel) clampCursor() {
	n := len(m.store.View().Tasks)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *tuiModel) View() string {
	view := m.store.View()
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title) + "\n\n")
	m.writeForm(&b)
	b.WriteString(renderFilterBar(view.Filters) + "\n\n")
	b.WriteString(headingStyle.Render(view.Heading) + "\n\n")
	m.writeRows(&b, view)

	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice) + "\n")
	}
	b.WriteString("\n")
	if m.mode == modeList {
		b.WriteString(m.help.View(m.keys))
	} else {
		b.WriteString(m.help.View(m.formKeys))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *tuiModel) writeForm(b *strings.Builder) {
	switch m.mode {
	case modeAdd:
		b.WriteString(labelStyle.Render("What needs to be done?") + "\n")
	case modeEdit:
		b.WriteString(labelStyle.Render("New name for "+m.editName) + "\n")
	default:
		return
	}
	b.WriteString(m.input.View() + "\n\n")
}

func (m *tuiModel) writeRows(b *strings.Builder, view store.View) {
	if len(view.Tasks) == 0 {
		b.WriteString(emptyStyle.Render("  Nothing here.") + "\n")
		return
	}
	for i, t := range view.Tasks {
		b.WriteString(renderRow(t, m.mode == modeList && i == m.cursor) + "\n")
	}
}

func renderFilterBar(buttons []store.FilterButton) string {
	rendered := make([]string, 0, len(buttons))
	for _, btn := range buttons {
		style := buttonStyle
		if btn.Pressed {
			style = pressedStyle
		}
		rendered = append(rendered, style.Render(btn.Filter.Name()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderRow(t todo.Task, selected bool) string {
	pointer := "  "
	if selected {
		pointer = cursorStyle.Render("> ")
	}
	name := t.Name
	switch {
	case t.Completed:
		name = doneStyle.Render(name)
	case t.InProgress:
		name = progressStyle.Render(name)
	}
	line := pointer + checkbox(t) + " " + name
	if t.InProgress {
		line += " " + progressStyle.Render("(in progress)")
	}
	return line + "  " + idStyle.Render(t.ID)
}
