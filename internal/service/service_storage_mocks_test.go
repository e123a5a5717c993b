package service

import (
	"context"

	"github.com/MKhiriev/go-agent-chat/models"
)

// ─────────────────────────────────────────────
// Mock: store.ConversationStorage
// ─────────────────────────────────────────────

type mockConversationStorage struct {
	createFn func(ctx context.Context, c models.Conversation) (models.Conversation, error)
	getFn    func(ctx context.Context, id string) (models.Conversation, error)
	listFn   func(ctx context.Context, userID string, page models.ListRequest) ([]models.Conversation, error)
	renameFn func(ctx context.Context, id, title string) (models.Conversation, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockConversationStorage) Create(ctx context.Context, c models.Conversation) (models.Conversation, error) {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	return c, nil
}

func (m *mockConversationStorage) Get(ctx context.Context, id string) (models.Conversation, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Conversation{ConversationID: id}, nil
}

func (m *mockConversationStorage) List(ctx context.Context, userID string, page models.ListRequest) ([]models.Conversation, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, page)
	}
	return nil, nil
}

func (m *mockConversationStorage) Rename(ctx context.Context, id, title string) (models.Conversation, error) {
	if m.renameFn != nil {
		return m.renameFn(ctx, id, title)
	}
	return models.Conversation{ConversationID: id, Title: title}, nil
}

func (m *mockConversationStorage) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.MessageStorage
// ─────────────────────────────────────────────

type mockMessageStorage struct {
	appendFn     func(ctx context.Context, m models.PersistedMessage) (models.PersistedMessage, error)
	listFn       func(ctx context.Context, id string, page models.ListRequest) ([]models.PersistedMessage, error)
	allFn        func(ctx context.Context, id string) ([]models.PersistedMessage, error)
	cacheStatsFn func(ctx context.Context) (models.CacheStats, error)
	invalidateFn func(ctx context.Context, id string) error
}

func (m *mockMessageStorage) Append(ctx context.Context, msg models.PersistedMessage) (models.PersistedMessage, error) {
	if m.appendFn != nil {
		return m.appendFn(ctx, msg)
	}
	return msg, nil
}

func (m *mockMessageStorage) List(ctx context.Context, id string, page models.ListRequest) ([]models.PersistedMessage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, id, page)
	}
	return nil, nil
}

func (m *mockMessageStorage) All(ctx context.Context, id string) ([]models.PersistedMessage, error) {
	if m.allFn != nil {
		return m.allFn(ctx, id)
	}
	return nil, nil
}

func (m *mockMessageStorage) CacheStats(ctx context.Context) (models.CacheStats, error) {
	if m.cacheStatsFn != nil {
		return m.cacheStatsFn(ctx)
	}
	return models.CacheStats{}, nil
}

func (m *mockMessageStorage) InvalidateCache(ctx context.Context, id string) error {
	if m.invalidateFn != nil {
		return m.invalidateFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: Agent
// ─────────────────────────────────────────────

type mockAgent struct {
	respondFn func(ctx context.Context, message string) (string, error)
}

func (m *mockAgent) Name() string { return "MockAgent" }

func (m *mockAgent) Respond(ctx context.Context, message string) (string, error) {
	if m.respondFn != nil {
		return m.respondFn(ctx, message)
	}
	return "ok", nil
}


func floatPtr(f float64) *float64 { return &f }
