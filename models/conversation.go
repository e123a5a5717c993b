// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Conversation is a named, persisted thread of chat turns between a user and
// the backend agent system. The record is owned by the backend; the client
// keeps a cached copy that is replaced wholesale on every list or lifecycle
// operation, with the single exception of Title which the client may set
// optimistically before the server confirms it.
type Conversation struct {
	// ConversationID is the unique, stable identifier of the conversation.
	// It is generated on the client when the conversation is created.
	ConversationID string `json:"conversation_id"`

	// UserID identifies the owner of the conversation.
	UserID string `json:"user_id"`

	// Title is the human-readable name shown in the conversation list.
	Title string `json:"title"`

	// CreatedAt is the server-side creation time.
	CreatedAt Timestamp `json:"created_at"`

	// UpdatedAt is the time of the last server-side modification
	// (rename or new message). Zero when the backend has not set it.
	UpdatedAt Timestamp `json:"updated_at"`

	// MessageCount is the number of persisted chat turns.
	MessageCount int `json:"message_count"`
}

// CreateConversationRequest is the payload of POST /conversations.
type CreateConversationRequest struct {
	ConversationID string `json:"conversation_id"`
	UserID         string `json:"user_id"`
	Title          string `json:"title"`
}

// RenameConversationRequest is the payload of PUT /conversations/{id}/title.
type RenameConversationRequest struct {
	Title string `json:"title"`
}

// ListRequest carries the pagination parameters shared by the list endpoints.
type ListRequest struct {
	Limit  int
	Offset int
}
