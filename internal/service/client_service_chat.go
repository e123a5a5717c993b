// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-agent-chat/internal/adapter"
	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/internal/session"
	"github.com/MKhiriev/go-agent-chat/models"
)

const (
	// ErrorReplyText is the content of the synthetic reply appended when a
	// chat turn fails.
	ErrorReplyText = "Sorry, I encountered an error while processing your message. Please try again."

	titleMaxRunes = 30
	titleEllipsis = "..."
)

type clientChatService struct {
	store         *session.Store
	adapter       adapter.ChatbotAdapter
	conversations ClientConversationService
	hydrator      HistoryHydrator
	ids           idGenerator
	logger        *logger.Logger

	userID string
	now    func() time.Time
}

// NewClientChatService creates a ClientChatService that talks to the backend as userID.
// Auto-titles and list refreshes go through conversations.
func NewClientChatService(
	store *session.Store,
	chatbotAdapter adapter.ChatbotAdapter,
	conversations ClientConversationService,
	hydrator HistoryHydrator,
	ids idGenerator,
	userID string,
	logger *logger.Logger,
) ClientChatService {
	if hydrator == nil {
		hydrator = NoopHistoryHydrator{}
	}

	return &clientChatService{
		store:         store,
		adapter:       chatbotAdapter,
		conversations: conversations,
		hydrator:      hydrator,
		ids:           ids,
		logger:        logger.WithComponent("chat"),
		userID:        userID,
		now:           time.Now,
	}
}

func (s *clientChatService) SendMessage(ctx context.Context, content string) error {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	conversationID := s.store.Snapshot().ActiveConversationID
	if conversationID == "" {
		return nil
	}

	end := s.store.BeginOperation()
	defer end()

	s.store.ClearError()

	// tentative phase: the user's message is visible before the backend answers
	prior, ok := s.store.AppendMessage(conversationID, models.Message{
		ID:         s.ids.Generate(),
		Content:    content,
		IsFromUser: true,
		Timestamp:  s.now(),
	})
	if !ok {
		return nil
	}

	log := s.logger.With().Str("conversation_id", conversationID).Logger()

	resp, err := s.adapter.SendChat(ctx, models.ChatRequest{
		Message:        content,
		UserID:         s.userID,
		ConversationID: conversationID,
	})
	if err != nil {
		// the user's message stays; the transcript gets an explanatory reply
		s.store.AppendMessage(conversationID, models.Message{
			ID:             s.ids.Generate(),
			Content:        ErrorReplyText,
			ProducingAgent: models.ErrorHandlerAgent,
			Timestamp:      s.now(),
		})
		s.store.SetError(session.ErrorKindTransport, describeError("send message", err))
		log.Err(err).Msg("chat turn failed")
		return fmt.Errorf("send message: %w", err)
	}

	s.store.AppendMessage(conversationID, models.Message{
		ID:             s.ids.Generate(),
		Content:        resp.Response,
		ProducingAgent: models.LastAgent(resp.AgentWorkflow),
		Workflow:       resp.AgentWorkflow,
		Timestamp:      s.now(),
	})
	log.Debug().
		Str("agent", models.LastAgent(resp.AgentWorkflow)).
		Float64("execution_time", resp.ExecutionTime).
		Msg("chat turn completed")

	if prior == 0 {
		if err = s.conversations.Rename(ctx, conversationID, deriveTitle(content)); err != nil {
			log.Warn().Err(err).Msg("auto-title failed")
		}
	}

	if err = s.conversations.List(ctx); err != nil {
		log.Warn().Err(err).Msg("refresh after chat turn failed")
	}

	return nil
}

func (s *clientChatService) LoadHistory(ctx context.Context) error {
	conversationID := s.store.Snapshot().ActiveConversationID
	if conversationID == "" {
		return nil
	}

	end := s.store.BeginOperation()
	defer end()

	messages, err := s.hydrator.Hydrate(ctx, conversationID)
	if err != nil {
		s.store.SetError(session.ErrorKindTransport, describeError("load history", err))
		return fmt.Errorf("load history: %w", err)
	}
	if len(messages) == 0 {
		return nil
	}

	s.store.SetMessages(conversationID, messages)
	return nil
}

// deriveTitle shortens the first message of a conversation into its title.
func deriveTitle(content string) string {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) <= titleMaxRunes {
		return content
	}

	runes := []rune(content)
	return string(runes[:titleMaxRunes]) + titleEllipsis
}
