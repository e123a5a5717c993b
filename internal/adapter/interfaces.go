// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the chat client and
// the multi-agent chatbot backend.
//
// The primary abstraction is [ChatbotAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPChatbotAdapter]) built on resty.
//
// Every failure (network error, non-2xx status, malformed body) is reported
// as a [*TransportError]; callers match it with errors.Is(err, [ErrTransport])
// or errors.As to read the status code.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-agent-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/chatbot_adapter_mock.go -package=mock

// ChatbotAdapter exposes one operation per backend endpoint. Implementations
// are stateless between calls and never retry.
type ChatbotAdapter interface {
	// SendChat posts one chat turn to POST /chat and returns the assistant
	// reply together with its agent workflow trace.
	SendChat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)

	// CreateConversation registers a new conversation via POST /conversations
	// and returns the server-confirmed record.
	CreateConversation(ctx context.Context, req models.CreateConversationRequest) (models.Conversation, error)

	// ListConversations returns the conversations owned by userID in
	// server-defined order (most recent first).
	ListConversations(ctx context.Context, userID string, page models.ListRequest) ([]models.Conversation, error)

	// RenameConversation sets a new title and returns the updated record.
	RenameConversation(ctx context.Context, conversationID string, req models.RenameConversationRequest) (models.Conversation, error)

	// DeleteConversation removes the conversation and its messages.
	DeleteConversation(ctx context.Context, conversationID string) error

	// ConversationStats fetches aggregated statistics of a conversation.
	ConversationStats(ctx context.Context, conversationID string) (models.ConversationStats, error)

	// ListMessages returns the persisted chat turns of a conversation,
	// oldest first.
	ListMessages(ctx context.Context, conversationID string, page models.ListRequest) ([]models.PersistedMessage, error)

	// Health probes GET /health.
	Health(ctx context.Context) (models.HealthStatus, error)
}
