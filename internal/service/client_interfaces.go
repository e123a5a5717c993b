package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-agent-chat/models"
)

// ClientConversationService manages the conversation lifecycle against the
// backend and keeps the session's conversation list in sync. Every
// transport failure is also stored in the session error slot.
type ClientConversationService interface {
	// List fetches the user's conversations and replaces the local list
	// wholesale. If nothing is active, the first returned conversation is
	// selected. Concurrent calls share one request.
	List(ctx context.Context) error

	// Create registers a new conversation with a client-generated id,
	// prepends it to the list and makes it active with an empty transcript.
	// An empty title falls back to DefaultConversationTitle.
	Create(ctx context.Context, title string) (models.Conversation, error)

	// Select makes a listed conversation active without any network call,
	// clearing the transcript and the error.
	Select(conversationID string) error

	// Rename sets the title optimistically, confirms it with the backend and
	// restores the previous title on failure. Blank titles are ignored.
	Rename(ctx context.Context, conversationID, title string) error

	// Delete removes the conversation on the backend, then locally. Deleting
	// the active conversation promotes the first remaining one.
	Delete(ctx context.Context, conversationID string) error

	// Stats fetches aggregated statistics of a conversation.
	Stats(ctx context.Context, conversationID string) (models.ConversationStats, error)
}

// ClientChatService executes chat turns in the active conversation.
type ClientChatService interface {
	// SendMessage runs one turn: optimistic user message, backend call,
	// assistant reply (or a synthetic ErrorHandler reply on failure),
	// first-turn auto-title and a list refresh. Blank content or no active
	// conversation is a silent no-op.
	SendMessage(ctx context.Context, content string) error

	// LoadHistory fills the transcript of the active conversation from the
	// configured HistoryHydrator.
	LoadHistory(ctx context.Context) error
}

// HistoryHydrator supplies the transcript of a conversation when it is
// selected.
type HistoryHydrator interface {
	Hydrate(ctx context.Context, conversationID string) ([]models.Message, error)
}

// ClientStatusService reports backend availability.
type ClientStatusService interface {
	Health(ctx context.Context) (models.HealthStatus, error)
}

// ClientRefreshJob periodically re-lists conversations in the background.
type ClientRefreshJob interface {
	// Start launches the background goroutine, stopping any previous one.
	// A non-positive interval defaults to one minute.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}
