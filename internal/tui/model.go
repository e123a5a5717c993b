// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/internal/service"
	"github.com/MKhiriev/go-agent-chat/internal/session"
	"github.com/MKhiriev/go-agent-chat/internal/validators"
	"github.com/MKhiriev/go-agent-chat/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type focus int

const (
	focusSidebar focus = iota
	focusInput
)

type overlay int

const (
	overlayNone overlay = iota
	overlayRename
	overlayConfirmDelete
	overlayStats
	overlayAbout
)

// chatModel is the single-screen chat UI: conversation sidebar, transcript
// and input box. All state shown comes from session snapshots; the model
// only keeps presentation state.
type chatModel struct {
	ctx       context.Context
	services  *service.ClientServices
	snapCh    <-chan session.Snapshot
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	snap   session.Snapshot
	cursor int
	focus  focus

	overlay      overlay
	renameID     string
	deleteID     string
	stats        models.ConversationStats
	statsLoading bool

	status string
	health string

	width, height int

	transcript viewport.Model
	input      textarea.Model
	renameBox  textinput.Model
	spinner    spinner.Model
	renderer   *markdownRenderer

	copyText func(string) error
}

func newChatModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, health string, logger *logger.Logger) chatModel {
	input := textarea.New()
	input.Placeholder = "Type a message..."
	input.ShowLineNumbers = false
	input.Prompt = "┃ "
	input.CharLimit = 4000
	input.SetHeight(inputHeight)
	input.KeyMap.InsertNewline.SetEnabled(false)

	renameBox := textinput.New()
	renameBox.Placeholder = "Conversation title"
	renameBox.CharLimit = validators.MaxTitleLength

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return chatModel{
		ctx:        ctx,
		services:   services,
		snapCh:     services.Store.Subscribe(ctx),
		buildInfo:  buildInfo,
		logger:     logger,
		focus:      focusSidebar,
		health:     health,
		transcript: viewport.New(80, 20),
		input:      input,
		renameBox:  renameBox,
		spinner:    sp,
		renderer:   newMarkdownRenderer(),
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(waitForSnapshot(m.snapCh), m.spinner.Tick, textarea.Blink)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.refreshTranscript()
		return m, nil

	case snapshotMsg:
		if !msg.ok {
			return m, tea.Quit
		}
		m.applySnapshot(msg.snap)
		return m, waitForSnapshot(m.snapCh)

	case opDoneMsg:
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Str("action", msg.action).Msg("ui operation failed")
			return m, nil
		}
		if msg.action == "create" {
			m.cursor = 0
		}
		return m, nil

	case statsLoadedMsg:
		m.statsLoading = false
		if msg.err != nil {
			m.overlay = overlayNone
			return m, nil
		}
		msg.stats.Normalize()
		m.stats = msg.stats
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Reply copied to clipboard"
		}
		return m, cmdClearStatusLater()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.overlay != overlayNone {
			return m.updateOverlay(msg)
		}
		if key.Matches(msg, keys.tab) {
			return m.toggleFocus()
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateSidebar(msg)
	}

	if m.focus == focusInput && m.overlay == overlayNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m chatModel) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	conversations := m.snap.Conversations

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(conversations)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.enter):
		if c, ok := m.cursorConversation(); ok {
			if c.ConversationID == m.snap.ActiveConversationID {
				return m.toggleFocus()
			}
			return m, m.cmdSelect(c.ConversationID)
		}
	case key.Matches(msg, keys.newItem):
		if m.snap.IsBusy {
			return m, nil
		}
		return m, m.cmdCreate()
	case key.Matches(msg, keys.rename):
		if c, ok := m.cursorConversation(); ok {
			m.overlay = overlayRename
			m.renameID = c.ConversationID
			m.renameBox.SetValue(c.Title)
			m.renameBox.CursorEnd()
			return m, m.renameBox.Focus()
		}
	case key.Matches(msg, keys.delete):
		if c, ok := m.cursorConversation(); ok {
			m.overlay = overlayConfirmDelete
			m.deleteID = c.ConversationID
		}
	case key.Matches(msg, keys.stats):
		if c, ok := m.cursorConversation(); ok {
			m.overlay = overlayStats
			m.stats = models.ConversationStats{}
			m.statsLoading = true
			return m, m.cmdStats(c.ConversationID)
		}
	case key.Matches(msg, keys.copy):
		if reply, ok := m.snap.LastReply(); ok {
			return m, m.cmdCopy(reply.Content)
		}
		m.status = "Nothing to copy yet"
		return m, cmdClearStatusLater()
	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.help):
		m.overlay = overlayAbout
	case key.Matches(msg, keys.pgUp), key.Matches(msg, keys.pgDown):
		var cmd tea.Cmd
		m.transcript, cmd = m.transcript.Update(msg)
		return m, cmd
	}

	return m, nil
}

// updateInput handles keys while the message box is focused. Input is
// refused while an operation is in flight.
func (m chatModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m.toggleFocus()
	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.pgUp), key.Matches(msg, keys.pgDown):
		var cmd tea.Cmd
		m.transcript, cmd = m.transcript.Update(msg)
		return m, cmd
	case key.Matches(msg, keys.enter):
		if m.snap.IsBusy {
			return m, nil
		}
		content := m.input.Value()
		if strings.TrimSpace(content) == "" {
			return m, nil
		}
		if _, ok := m.snap.ActiveConversation(); !ok {
			m.status = "Create or select a conversation first"
			return m, cmdClearStatusLater()
		}
		m.input.Reset()
		return m, m.cmdSend(content)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayRename:
		switch {
		case key.Matches(msg, keys.esc):
			m.closeOverlay()
			return m, nil
		case key.Matches(msg, keys.enter):
			id, title := m.renameID, strings.TrimSpace(m.renameBox.Value())
			m.closeOverlay()
			if title == "" {
				return m, nil
			}
			return m, m.cmdRename(id, title)
		}
		var cmd tea.Cmd
		m.renameBox, cmd = m.renameBox.Update(msg)
		return m, cmd

	case overlayConfirmDelete:
		switch {
		case key.Matches(msg, keys.yes):
			id := m.deleteID
			m.closeOverlay()
			return m, m.cmdDelete(id)
		case key.Matches(msg, keys.no):
			m.closeOverlay()
		}
		return m, nil

	default:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.quit) || key.Matches(msg, keys.enter) {
			m.closeOverlay()
		}
		return m, nil
	}
}

func (m *chatModel) closeOverlay() {
	m.overlay = overlayNone
	m.renameID = ""
	m.deleteID = ""
	m.renameBox.Blur()
	m.renameBox.Reset()
}

func (m chatModel) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusSidebar {
		m.focus = focusInput
		return m, m.input.Focus()
	}
	m.focus = focusSidebar
	m.input.Blur()
	return m, nil
}

// applySnapshot stores the new state and keeps the sidebar cursor on the
// active conversation when the list changed under it.
func (m *chatModel) applySnapshot(snap session.Snapshot) {
	prev := m.snap
	m.snap = snap

	if snap.ActiveConversationID != prev.ActiveConversationID || len(snap.Conversations) != len(prev.Conversations) {
		for i, c := range snap.Conversations {
			if c.ConversationID == snap.ActiveConversationID {
				m.cursor = i
				break
			}
		}
	}
	if m.cursor >= len(snap.Conversations) {
		m.cursor = len(snap.Conversations) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	m.refreshTranscript()
}

func (m chatModel) cursorConversation() (models.Conversation, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Conversations) {
		return models.Conversation{}, false
	}
	return m.snap.Conversations[m.cursor], true
}

func (m *chatModel) resize() {
	mainWidth := m.width - sidebarWidth - 4
	if mainWidth < 20 {
		mainWidth = 20
	}
	// header, status line, help line and input box borders
	transcriptHeight := m.height - inputHeight - 6
	if transcriptHeight < 3 {
		transcriptHeight = 3
	}

	m.transcript.Width = mainWidth
	m.transcript.Height = transcriptHeight
	m.input.SetWidth(mainWidth)
	m.renameBox.Width = mainWidth / 2
	m.renderer.SetWidth(mainWidth)
}

func (m *chatModel) refreshTranscript() {
	atBottom := m.transcript.AtBottom()
	m.transcript.SetContent(renderTranscript(m.snap.Messages, m.renderer))
	if atBottom || m.snap.IsBusy {
		m.transcript.GotoBottom()
	}
}

func (m chatModel) statusLine() string {
	switch {
	case m.snap.Error != nil:
		return errorStyle.Render(m.snap.Error.Message)
	case m.snap.IsBusy:
		return m.spinner.View() + " Working..."
	case m.status != "":
		return statusStyle.Render(m.status)
	case m.health != "":
		return helpStyle.Render(m.health)
	default:
		return ""
	}
}

func conversationLabel(c models.Conversation) string {
	if c.MessageCount > 0 {
		return fmt.Sprintf("%s (%d)", c.Title, c.MessageCount)
	}
	return c.Title
}
