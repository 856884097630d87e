package ui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("212")
	muted  = lipgloss.Color("244")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle    = lipgloss.NewStyle().Bold(true)
	headingStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	emptyStyle    = lipgloss.NewStyle().Foreground(muted).Italic(true)
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	idStyle       = lipgloss.NewStyle().Foreground(muted)
	doneStyle     = lipgloss.NewStyle().Foreground(muted).Strikethrough(true)
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	cursorStyle   = lipgloss.NewStyle().Foreground(accent).Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted)
	pressedStyle = buttonStyle.
			BorderForeground(accent).
			Foreground(accent).
			Bold(true)
)
