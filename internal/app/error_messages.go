// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// development backend handlers.
//
// Msg* constants are the messages logged for a failed request and, for
// server-side failures, the only detail the client gets back.
package app

const (
	// MsgInvalidRequestBody is logged when the request body cannot be
	// decoded.
	MsgInvalidRequestBody = "invalid request body"

	// MsgInvalidPage is logged when ?limit= or ?offset= is malformed.
	MsgInvalidPage = "invalid page"

	// MsgChatFailed is returned when a chat turn could not be completed.
	MsgChatFailed = "failed to process chat message"

	MsgCreateConversationFailed = "failed to create conversation"
	MsgGetConversationFailed    = "failed to get conversation"
	MsgListConversationsFailed  = "failed to list conversations"
	MsgRenameConversationFailed = "failed to rename conversation"
	MsgDeleteConversationFailed = "failed to delete conversation"
	MsgStatsFailed              = "failed to get conversation stats"

	// MsgListMessagesFailed is returned when the history of a conversation
	// could not be read from the database or the cache.
	MsgListMessagesFailed = "failed to list messages"

	MsgCacheStatsFailed      = "failed to get cache stats"
	MsgCacheInvalidateFailed = "failed to invalidate cache"
)
