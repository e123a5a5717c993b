// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/internal/store"
	"github.com/MKhiriev/go-agent-chat/models"
)

type chatService struct {
	conversations store.ConversationStorage
	messages      store.MessageStorage
	agent         Agent

	logger *logger.Logger
	now    func() time.Time
}

func NewChatService(conversations store.ConversationStorage, messages store.MessageStorage, agent Agent, logger *logger.Logger) ChatService {
	return &chatService{
		conversations: conversations,
		messages:      messages,
		agent:         agent,
		logger:        logger,
		now:           time.Now,
	}
}

// Chat answers one turn. An unknown conversation is created on the fly and
// titled after the user.
func (s *chatService) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.ensureConversation(ctx, req); err != nil {
		return models.ChatResponse{}, err
	}

	started := s.now()
	reply, err := s.agent.Respond(ctx, req.Message)
	if err != nil {
		log.Err(err).Str("agent", s.agent.Name()).Msg("agent failed")
		return models.ChatResponse{}, fmt.Errorf("%w: %w", ErrAgentFailed, err)
	}
	elapsed := float64(s.now().Sub(started)) / float64(time.Millisecond)

	agentName := s.agent.Name()
	workflow := []models.AgentWorkflowStep{{Agent: agentName, ExecutionTimeMs: elapsed}}

	if _, err = s.messages.Append(ctx, models.PersistedMessage{
		ConversationID:      req.ConversationID,
		Content:             req.Message,
		Response:            &reply,
		SourceAgent:         &agentName,
		SourceAgentResponse: &reply,
		AgentWorkflow:       workflow,
		ExecutionTime:       &elapsed,
	}); err != nil {
		return models.ChatResponse{}, fmt.Errorf("persist chat turn: %w", err)
	}

	log.Debug().Str("conversation_id", req.ConversationID).Float64("execution_time", elapsed).Msg("chat turn answered")

	return models.ChatResponse{
		Response:            reply,
		SourceAgentResponse: reply,
		AgentWorkflow:       workflow,
		ConversationID:      req.ConversationID,
		ExecutionTime:       elapsed,
	}, nil
}

func (s *chatService) ensureConversation(ctx context.Context, req models.ChatRequest) error {
	_, err := s.conversations.Get(ctx, req.ConversationID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrConversationNotFound) {
		return fmt.Errorf("look up conversation: %w", err)
	}

	_, err = s.conversations.Create(ctx, models.Conversation{
		ConversationID: req.ConversationID,
		UserID:         req.UserID,
		Title:          "Chat with " + req.UserID,
	})
	// a concurrent turn may have created it first
	if err != nil && !errors.Is(err, store.ErrConversationAlreadyExists) {
		return fmt.Errorf("create conversation: %w", err)
	}
	return nil
}
