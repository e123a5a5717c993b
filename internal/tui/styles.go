package tui

import "github.com/charmbracelet/lipgloss"

const (
	sidebarWidth = 32
	inputHeight  = 3
)

var (
	appStyle        = lipgloss.NewStyle().Padding(0, 1)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			Width(sidebarWidth).
			PaddingRight(1)
	sidebarFocusedStyle = sidebarStyle.BorderForeground(lipgloss.Color("12"))
	cursorStyle         = lipgloss.NewStyle().Reverse(true)
	activeItemStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	userLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	agentLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	workflowStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
)
