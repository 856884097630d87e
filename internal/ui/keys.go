package ui

import "github.com/charmbracelet/bubbles/key"

// listKeys are active while browsing the task list.
type listKeys struct {
	Up               key.Binding
	Down             key.Binding
	Filter           key.Binding
	NextFilter       key.Binding
	PrevFilter       key.Binding
	Add              key.Binding
	Edit             key.Binding
	ToggleCompleted  key.Binding
	ToggleInProgress key.Binding
	Delete           key.Binding
	Help             key.Binding
	Quit             key.Binding
}

func defaultListKeys() listKeys {
	return listKeys{
		Up:               key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:             key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Filter:           key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "filter")),
		NextFilter:       key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next filter")),
		PrevFilter:       key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev filter")),
		Add:              key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
		Edit:             key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		ToggleCompleted:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "done")),
		ToggleInProgress: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "in progress")),
		Delete:           key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Help:             key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:             key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.ToggleCompleted, k.ToggleInProgress, k.Filter, k.Help, k.Quit}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Filter, k.NextFilter, k.PrevFilter},
		{k.Add, k.Edit, k.Delete},
		{k.ToggleCompleted, k.ToggleInProgress},
		{k.Help, k.Quit},
	}
}

// formKeys are active while the add or edit form has focus.
type formKeys struct {
	Submit key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func defaultFormKeys() formKeys {
	return formKeys{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel, k.Quit}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
