// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-agent-chat/models"
)

// Store owns the session state. All methods are safe for concurrent use.
type Store struct {
	mu sync.Mutex

	conversations []models.Conversation
	activeID      string
	messages      []models.Message
	inFlight      int
	err           *Error
	version       uint64

	current     Snapshot
	subscribers map[uint64]chan Snapshot
	nextSubID   uint64
}

// NewStore returns an empty store: no conversations, nothing active.
func NewStore() *Store {
	return &Store{
		subscribers: make(map[uint64]chan Snapshot),
	}
}

// Snapshot returns the latest published state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// Subscribe returns a channel that immediately receives the current snapshot
// and then every subsequent one. Delivery is latest-wins: a slow reader
// skips intermediate snapshots but always observes the newest one. The
// channel is closed once ctx is done.
func (s *Store) Subscribe(ctx context.Context) <-chan Snapshot {
	ch := make(chan Snapshot, 1)

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch
	ch <- s.current
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.unsubscribe(id)
	}()

	return ch
}

func (s *Store) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ch, ok := s.subscribers[id]; ok {
		delete(s.subscribers, id)
		close(ch)
	}
}

// BeginOperation marks an operation as in flight and returns the function
// that ends it. The returned function is idempotent, so it can be deferred
// and also called early.
func (s *Store) BeginOperation() (end func()) {
	s.mu.Lock()
	s.inFlight++
	s.publishLocked()
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.inFlight--
			s.publishLocked()
		})
	}
}

// ReplaceConversations swaps the whole conversation list. The active
// conversation is kept when it is still listed; otherwise, or when nothing
// was active, the first listed conversation becomes active.
func (s *Store) ReplaceConversations(conversations []models.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations = slices.Clone(conversations)
	if s.activeID == "" || s.indexLocked(s.activeID) < 0 {
		s.activateFirstLocked()
	}
	s.publishLocked()
}

// AddConversation prepends c and makes it the active conversation with an
// empty transcript.
func (s *Store) AddConversation(c models.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations = slices.Insert(slices.Clone(s.conversations), 0, c)
	s.setActiveLocked(c.ConversationID)
	s.publishLocked()
}

// Select makes id the active conversation, clearing the transcript and the
// error. Unknown ids return ErrUnknownConversation and change nothing.
func (s *Store) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(id) < 0 {
		return ErrUnknownConversation
	}

	s.setActiveLocked(id)
	s.err = nil
	s.publishLocked()
	return nil
}

// ReplaceConversation overwrites the record with the same id in place.
// It reports false if no such conversation is listed.
func (s *Store) ReplaceConversation(c models.Conversation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(c.ConversationID)
	if i < 0 {
		return false
	}

	s.conversations = slices.Clone(s.conversations)
	s.conversations[i] = c
	s.publishLocked()
	return true
}

// SetConversationTitle sets the title of a listed conversation and returns
// the previous one.
func (s *Store) SetConversationTitle(id, title string) (previous string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return "", false
	}

	previous = s.conversations[i].Title
	s.conversations = slices.Clone(s.conversations)
	s.conversations[i].Title = title
	s.publishLocked()
	return previous, true
}

// RemoveConversation drops the conversation with the given id. When it was
// active, the first remaining conversation is promoted, or the selection
// is cleared if none remain; either way the transcript is cleared.
func (s *Store) RemoveConversation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}

	s.conversations = slices.Delete(slices.Clone(s.conversations), i, i+1)
	if s.activeID == id {
		s.activateFirstLocked()
	}
	s.publishLocked()
	return true
}

// AppendMessage adds m to the transcript if conversationID is still the
// active conversation. It returns the number of messages that preceded m.
func (s *Store) AppendMessage(conversationID string, m models.Message) (prior int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conversationID == "" || conversationID != s.activeID {
		return 0, false
	}

	prior = len(s.messages)
	s.messages = append(slices.Clip(s.messages), m.Clone())
	s.publishLocked()
	return prior, true
}

// SetMessages replaces the transcript of the active conversation.
func (s *Store) SetMessages(conversationID string, messages []models.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conversationID == "" || conversationID != s.activeID {
		return false
	}

	s.messages = make([]models.Message, 0, len(messages))
	for _, m := range messages {
		s.messages = append(s.messages, m.Clone())
	}
	s.publishLocked()
	return true
}

// SetError stores err in the single error slot, replacing any previous one.
func (s *Store) SetError(kind ErrorKind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = &Error{Kind: kind, Message: message}
	s.publishLocked()
}

// ClearError empties the error slot.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err == nil {
		return
	}
	s.err = nil
	s.publishLocked()
}

func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.conversations, func(c models.Conversation) bool {
		return c.ConversationID == id
	})
}

func (s *Store) activateFirstLocked() {
	if len(s.conversations) == 0 {
		s.setActiveLocked("")
		return
	}
	s.setActiveLocked(s.conversations[0].ConversationID)
}

// setActiveLocked switches the active id; the transcript always goes with it.
func (s *Store) setActiveLocked(id string) {
	s.activeID = id
	s.messages = nil
}

// publishLocked builds a new snapshot and hands it to every subscriber,
// replacing an undelivered older one.
func (s *Store) publishLocked() {
	s.version++
	s.current = Snapshot{
		Conversations:        s.conversations,
		ActiveConversationID: s.activeID,
		Messages:             s.messages,
		IsBusy:               s.inFlight > 0,
		Error:                s.err,
		Version:              s.version,
	}

	for _, ch := range s.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- s.current
	}
}
