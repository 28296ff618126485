package tui

import "github.com/charmbracelet/lipgloss"

var (
	faint    = lipgloss.NewStyle().Faint(true)
	bold     = lipgloss.NewStyle().Bold(true)
	failure  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	success  = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	pending  = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	header   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell     = lipgloss.NewStyle().Padding(0, 1)
	selected = cell.Foreground(lipgloss.Color("235")).Background(lipgloss.Color("62"))
	readOnly = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	activeTab   = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("235")).Background(lipgloss.Color("62"))
	inactiveTab = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("250"))
	minibuffer  = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255"))
)
