package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-agent-chat/internal/session"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// waitForSnapshot blocks until the store publishes a new state.
func waitForSnapshot(ch <-chan session.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		return snapshotMsg{snap: snap, ok: ok}
	}
}

func (m chatModel) cmdSend(content string) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{action: "send", err: m.services.ChatService.SendMessage(m.ctx, content)}
	}
}

func (m chatModel) cmdCreate() tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.ConversationService.Create(m.ctx, "")
		return opDoneMsg{action: "create", err: err}
	}
}

func (m chatModel) cmdRename(id, title string) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{action: "rename", err: m.services.ConversationService.Rename(m.ctx, id, title)}
	}
}

func (m chatModel) cmdDelete(id string) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{action: "delete", err: m.services.ConversationService.Delete(m.ctx, id)}
	}
}

func (m chatModel) cmdRefresh() tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{action: "refresh", err: m.services.ConversationService.List(m.ctx)}
	}
}

// cmdSelect activates a conversation and, when hydration is configured,
// loads its transcript.
func (m chatModel) cmdSelect(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.services.ConversationService.Select(id); err != nil {
			return opDoneMsg{action: "select", err: err}
		}
		return opDoneMsg{action: "select", err: m.services.ChatService.LoadHistory(m.ctx)}
	}
}

func (m chatModel) cmdStats(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, 30*time.Second)
		defer cancel()

		stats, err := m.services.ConversationService.Stats(ctx, id)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m chatModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText
	if copyText == nil {
		copyText = clipboard.WriteAll
	}
	return func() tea.Msg {
		return copiedMsg{err: copyText(text)}
	}
}

func cmdClearStatusLater() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
