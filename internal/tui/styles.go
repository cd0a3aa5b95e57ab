package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	authorStyle   = lipgloss.NewStyle().Bold(true)
	anonStyle     = lipgloss.NewStyle().Faint(true).Italic(true)
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	hiddenStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	countStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	editorStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("39"))
)

// indent — отступ ответов на один уровень вложенности.
const indent = 4
