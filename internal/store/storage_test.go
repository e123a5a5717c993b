// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache — in-memory HistoryCache с подсчётом операций.
type fakeCache struct {
	entries     map[string][]models.PersistedMessage
	invalidated []string
	sets        int
	err         error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]models.PersistedMessage)}
}

func (c *fakeCache) Get(_ context.Context, id string) ([]models.PersistedMessage, bool, error) {
	if c.err != nil {
		return nil, false, c.err
	}
	m, ok := c.entries[id]
	return m, ok, nil
}

func (c *fakeCache) Set(_ context.Context, id string, messages []models.PersistedMessage) error {
	if c.err != nil {
		return c.err
	}
	c.sets++
	c.entries[id] = messages
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, id string) error {
	c.invalidated = append(c.invalidated, id)
	delete(c.entries, id)
	return c.err
}

func (c *fakeCache) Stats(context.Context) (models.CacheStats, error) {
	return models.CacheStats{Enabled: true, ConversationKeys: len(c.entries)}, c.err
}

func (c *fakeCache) Close() error { return nil }

// fakeMessageRepo хранит сообщения в памяти и считает обращения к "БД".
type fakeMessageRepo struct {
	messages []models.PersistedMessage
	reads    int
	saveErr  error
}

func (r *fakeMessageRepo) SaveMessage(_ context.Context, m models.PersistedMessage) (models.PersistedMessage, error) {
	if r.saveErr != nil {
		return models.PersistedMessage{}, r.saveErr
	}
	m.ID = int64(len(r.messages) + 1)
	r.messages = append(r.messages, m)
	return m, nil
}

func (r *fakeMessageRepo) ListMessages(_ context.Context, id string, page models.ListRequest) ([]models.PersistedMessage, error) {
	r.reads++
	var out []models.PersistedMessage
	for _, m := range r.messages {
		if m.ConversationID == id {
			out = append(out, m)
		}
	}
	if page.Offset > len(out) {
		return []models.PersistedMessage{}, nil
	}
	out = out[page.Offset:]
	if page.Limit > 0 && page.Limit < len(out) {
		out = out[:page.Limit]
	}
	return out, nil
}

type fakeConversationRepo struct {
	ConversationRepository
	touched   map[string]time.Time
	deleted   []string
	deleteErr error
	touchErr  error
}

func (r *fakeConversationRepo) TouchConversation(_ context.Context, id string, at time.Time) error {
	if r.touched == nil {
		r.touched = make(map[string]time.Time)
	}
	r.touched[id] = at
	return r.touchErr
}

func (r *fakeConversationRepo) DeleteConversation(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, id)
	return nil
}

func seedMessages(repo *fakeMessageRepo, conversationID string, n int) {
	for i := 0; i < n; i++ {
		repo.messages = append(repo.messages, models.PersistedMessage{
			ID:             int64(len(repo.messages) + 1),
			ConversationID: conversationID,
			Content:        fmt.Sprintf("m%d", i),
		})
	}
}

// ── messageStorage ───────────────────────────────────────────────────────────

func TestMessageStorage_Append_TouchesAndInvalidates(t *testing.T) {
	messages := &fakeMessageRepo{}
	conversations := &fakeConversationRepo{}
	cache := newFakeCache()
	cache.entries["c1"] = []models.PersistedMessage{{ID: 99}}

	s := NewMessageStorage(messages, conversations, cache, logger.Nop())

	saved, err := s.Append(context.Background(), models.PersistedMessage{ConversationID: "c1", Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	assert.Equal(t, saved.CreatedAt.Time, conversations.touched["c1"])
	assert.Equal(t, []string{"c1"}, cache.invalidated)
	assert.NotContains(t, cache.entries, "c1")
}

func TestMessageStorage_Append_SaveErrorSkipsSideEffects(t *testing.T) {
	messages := &fakeMessageRepo{saveErr: ErrConversationNotFound}
	conversations := &fakeConversationRepo{}
	cache := newFakeCache()

	s := NewMessageStorage(messages, conversations, cache, logger.Nop())

	_, err := s.Append(context.Background(), models.PersistedMessage{ConversationID: "c1"})
	assert.ErrorIs(t, err, ErrConversationNotFound)
	assert.Empty(t, conversations.touched)
	assert.Empty(t, cache.invalidated)
}

func TestMessageStorage_List_CachesFirstPage(t *testing.T) {
	messages := &fakeMessageRepo{}
	seedMessages(messages, "c1", 5)
	cache := newFakeCache()

	s := NewMessageStorage(messages, &fakeConversationRepo{}, cache, logger.Nop())

	first, err := s.List(context.Background(), "c1", models.ListRequest{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, first, 3)
	assert.Equal(t, 1, messages.reads)
	assert.Equal(t, 1, cache.sets)

	// в кэше 3 сообщения, этого достаточно для limit=3
	second, err := s.List(context.Background(), "c1", models.ListRequest{Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, messages.reads)

	// limit больше, чем в кэше: идём в БД
	_, err = s.List(context.Background(), "c1", models.ListRequest{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, messages.reads)
}

func TestMessageStorage_List_LaterPagesBypassCache(t *testing.T) {
	messages := &fakeMessageRepo{}
	seedMessages(messages, "c1", 5)
	cache := newFakeCache()

	s := NewMessageStorage(messages, &fakeConversationRepo{}, cache, logger.Nop())

	page, err := s.List(context.Background(), "c1", models.ListRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "m2", page[0].Content)
	assert.Zero(t, cache.sets)
}

func TestMessageStorage_List_CacheErrorFallsBackToDB(t *testing.T) {
	messages := &fakeMessageRepo{}
	seedMessages(messages, "c1", 2)
	cache := newFakeCache()
	cache.err = errors.New("redis down")

	s := NewMessageStorage(messages, &fakeConversationRepo{}, cache, logger.Nop())

	got, err := s.List(context.Background(), "c1", models.ListRequest{Limit: 100})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMessageStorage_All(t *testing.T) {
	messages := &fakeMessageRepo{}
	seedMessages(messages, "c1", 150)
	seedMessages(messages, "c2", 1)

	s := NewMessageStorage(messages, &fakeConversationRepo{}, newFakeCache(), logger.Nop())

	got, err := s.All(context.Background(), "c1")
	require.NoError(t, err)
	assert.Len(t, got, 150)
}

// ── conversationStorage ──────────────────────────────────────────────────────

func TestConversationStorage_Delete_InvalidatesCache(t *testing.T) {
	repo := &fakeConversationRepo{}
	cache := newFakeCache()
	cache.entries["c1"] = []models.PersistedMessage{{ID: 1}}

	s := NewConversationStorage(repo, cache, logger.Nop())

	require.NoError(t, s.Delete(context.Background(), "c1"))
	assert.Equal(t, []string{"c1"}, repo.deleted)
	assert.Equal(t, []string{"c1"}, cache.invalidated)
}

func TestConversationStorage_Delete_NotFound(t *testing.T) {
	repo := &fakeConversationRepo{deleteErr: ErrConversationNotFound}
	cache := newFakeCache()

	s := NewConversationStorage(repo, cache, logger.Nop())

	assert.ErrorIs(t, s.Delete(context.Background(), "c1"), ErrConversationNotFound)
	assert.Empty(t, cache.invalidated)
}

func TestConversationStorage_Delete_CacheFailureIgnored(t *testing.T) {
	cache := newFakeCache()
	cache.err = errors.New("redis down")

	s := NewConversationStorage(&fakeConversationRepo{}, cache, logger.Nop())

	assert.NoError(t, s.Delete(context.Background(), "c1"))
}
