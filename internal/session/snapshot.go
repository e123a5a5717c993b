package session

import (
	"github.com/MKhiriev/go-agent-chat/models"
)

// Snapshot is an immutable view of the session state. Slices handed out in
// a snapshot are never written by the store; treat them as read-only.
type Snapshot struct {
	// Conversations in server-defined order.
	Conversations []models.Conversation
	// ActiveConversationID is empty or the id of one of Conversations.
	ActiveConversationID string
	// Messages is the transcript of the active conversation.
	Messages []models.Message
	// IsBusy is true while at least one operation is in flight.
	IsBusy bool
	// Error is the last surfaced error, nil when cleared.
	Error *Error
	// Version increases by one with every published change.
	Version uint64
}

// ActiveConversation returns the active conversation record.
func (s Snapshot) ActiveConversation() (models.Conversation, bool) {
	if s.ActiveConversationID == "" {
		return models.Conversation{}, false
	}
	for _, c := range s.Conversations {
		if c.ConversationID == s.ActiveConversationID {
			return c, true
		}
	}
	return models.Conversation{}, false
}

// LastReply returns the most recent assistant message of the transcript.
func (s Snapshot) LastReply() (models.Message, bool) {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if !s.Messages[i].IsFromUser {
			return s.Messages[i], true
		}
	}
	return models.Message{}, false
}
