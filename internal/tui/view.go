package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m chatModel) View() string {
	switch m.overlay {
	case overlayRename:
		return m.renderOverlay(renderRename(m.renameBox.View()))
	case overlayConfirmDelete:
		return m.renderOverlay(renderConfirmDelete(m.titleOf(m.deleteID)))
	case overlayStats:
		return m.renderOverlay(renderStats(m.stats, m.statsLoading, m.spinner.View()))
	case overlayAbout:
		return m.renderOverlay(renderBuildInfoWindow(m.buildInfo))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), m.mainView())
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine(), m.helpView()))
}

func (m chatModel) sidebarView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Conversations"))
	b.WriteString("\n\n")

	if len(m.snap.Conversations) == 0 {
		b.WriteString(helpStyle.Render("none yet, press n"))
	}
	for i, c := range m.snap.Conversations {
		label := fitText(conversationLabel(c), sidebarWidth-3)
		marker := "  "
		if c.ConversationID == m.snap.ActiveConversationID {
			marker = "● "
			label = activeItemStyle.Render(label)
		}
		line := marker + label
		if i == m.cursor && m.focus == focusSidebar {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	style := sidebarStyle
	if m.focus == focusSidebar {
		style = sidebarFocusedStyle
	}
	if m.height > 0 {
		style = style.Height(m.height - 3)
	}
	return style.Render(b.String())
}

func (m chatModel) mainView() string {
	title := "No conversation"
	if c, ok := m.snap.ActiveConversation(); ok {
		title = c.Title
	}

	return lipgloss.NewStyle().PaddingLeft(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		m.transcript.View(),
		m.input.View(),
	))
}

func (m chatModel) helpView() string {
	if m.focus == focusInput {
		return helpStyle.Render(inputHelp())
	}
	return helpStyle.Render(sidebarHelp())
}

func (m chatModel) renderOverlay(content string) string {
	box := overlayBoxStyle.Render(content)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m chatModel) titleOf(id string) string {
	for _, c := range m.snap.Conversations {
		if c.ConversationID == id {
			return c.Title
		}
	}
	return id
}
