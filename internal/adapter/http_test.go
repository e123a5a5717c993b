// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-agent-chat/internal/config"
	"github.com/MKhiriev/go-agent-chat/internal/logger"
	"github.com/MKhiriev/go-agent-chat/internal/utils"
	"github.com/MKhiriev/go-agent-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpChatbotAdapter {
	t.Helper()
	cfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPChatbotAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpChatbotAdapter)
}

func requireTransportError(t *testing.T, err error) *TransportError {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)

	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	return terr
}

// ── SendChat ────────────────────────────────────────────────────────────────

func TestSendChat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.ChatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "What is 2+2?", req.Message)
		assert.Equal(t, "alice", req.UserID)
		assert.Equal(t, "conv-1", req.ConversationID)

		_, _ = w.Write([]byte(`{
			"response": "4",
			"source_agent_response": "2+2=4",
			"agent_workflow": [
				{"agent": "RouterAgent", "decision": "MathAgent", "execution_time": 1.5},
				{"agent": "MathAgent", "execution_time": 3}
			],
			"conversation_id": "conv-1",
			"execution_time": 4.5
		}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SendChat(context.Background(), models.ChatRequest{
		Message: "What is 2+2?", UserID: "alice", ConversationID: "conv-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "4", got.Response)
	require.Len(t, got.AgentWorkflow, 2)
	assert.Equal(t, "RouterAgent", got.AgentWorkflow[0].Agent)
	require.NotNil(t, got.AgentWorkflow[0].Decision)
	assert.Equal(t, "MathAgent", *got.AgentWorkflow[0].Decision)
	assert.Nil(t, got.AgentWorkflow[1].Decision)
	assert.Equal(t, 3.0, got.AgentWorkflow[1].ExecutionTimeMs)
	assert.Equal(t, 4.5, got.ExecutionTime)
}

func TestSendChat_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail": "Error processing message: boom"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SendChat(context.Background(), models.ChatRequest{Message: "hi"})

	terr := requireTransportError(t, err)
	assert.Equal(t, http.StatusInternalServerError, terr.StatusCode)
	assert.Equal(t, opSendChat, terr.Op)
	assert.Equal(t, "HTTP 500 Internal Server Error: Error processing message: boom", terr.Message)
	assert.False(t, terr.IsNetworkFailure())
}

func TestSendChat_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response": `))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SendChat(context.Background(), models.ChatRequest{Message: "hi"})

	terr := requireTransportError(t, err)
	assert.Equal(t, http.StatusOK, terr.StatusCode)
	assert.Contains(t, terr.Message, "malformed response body")
}

func TestSendChat_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.SendChat(context.Background(), models.ChatRequest{Message: "hi"})

	terr := requireTransportError(t, err)
	assert.Equal(t, StatusNetworkFailure, terr.StatusCode)
	assert.True(t, terr.IsNetworkFailure())
	assert.NotNil(t, terr.Unwrap())
}

func TestSendChat_ForwardsTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-123", r.Header.Get(traceIDHeader))
		_, _ = w.Write([]byte(`{"response": "ok", "agent_workflow": []}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := utils.WithTraceID(context.Background(), "trace-123")
	_, err := a.SendChat(ctx, models.ChatRequest{Message: "hi"})

	require.NoError(t, err)
}

// ── Conversations ───────────────────────────────────────────────────────────

func TestCreateConversation_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/conversations", r.URL.Path)

		var req models.CreateConversationRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "conv-1", req.ConversationID)
		assert.Equal(t, "alice", req.UserID)
		assert.Equal(t, "New Chat", req.Title)

		_, _ = w.Write([]byte(`{
			"conversation_id": "conv-1",
			"user_id": "alice",
			"title": "New Chat",
			"created_at": "2024-05-01T10:00:00.123456",
			"updated_at": null,
			"message_count": 0
		}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateConversation(context.Background(), models.CreateConversationRequest{
		ConversationID: "conv-1", UserID: "alice", Title: "New Chat",
	})

	require.NoError(t, err)
	assert.Equal(t, "conv-1", got.ConversationID)
	assert.Equal(t, 2024, got.CreatedAt.Year())
	assert.True(t, got.UpdatedAt.IsZero())
}

func TestCreateConversation_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateConversation(context.Background(), models.CreateConversationRequest{ConversationID: "conv-1"})

	terr := requireTransportError(t, err)
	assert.Equal(t, http.StatusConflict, terr.StatusCode)
	assert.Equal(t, "HTTP 409 Conflict: already exists", terr.Message)
}

func TestListConversations_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/conversations/user/alice", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "40", r.URL.Query().Get("offset"))

		_, _ = w.Write([]byte(`[
			{"conversation_id": "b", "user_id": "alice", "title": "B", "message_count": 3},
			{"conversation_id": "a", "user_id": "alice", "title": "A", "message_count": 1}
		]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListConversations(context.Background(), "alice", models.ListRequest{Limit: 20, Offset: 40})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ConversationID)
	assert.Equal(t, 3, got[0].MessageCount)
	assert.Equal(t, "a", got[1].ConversationID)
}

func TestListConversations_OmitsZeroPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`null`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListConversations(context.Background(), "alice", models.ListRequest{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListConversations_EscapesUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/conversations/user/a%2Fb", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListConversations(context.Background(), "a/b", models.ListRequest{})
	require.NoError(t, err)
}

func TestRenameConversation_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/conversations/conv-1/title", r.URL.Path)
		assert.Equal(t, "Renamed", r.URL.Query().Get("title"))

		var req models.RenameConversationRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Renamed", req.Title)

		_, _ = w.Write([]byte(`{"conversation_id": "conv-1", "title": "Renamed"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.RenameConversation(context.Background(), "conv-1", models.RenameConversationRequest{Title: "Renamed"})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
}

func TestRenameConversation_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "Conversation not found"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RenameConversation(context.Background(), "missing", models.RenameConversationRequest{Title: "x"})

	terr := requireTransportError(t, err)
	assert.Equal(t, http.StatusNotFound, terr.StatusCode)
	assert.Equal(t, "HTTP 404 Not Found: Conversation not found", terr.Message)
}

func TestDeleteConversation_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/conversations/conv-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.DeleteConversation(context.Background(), "conv-1"))
}

func TestDeleteConversation_IgnoresBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message": "Conversation deleted successfully"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.DeleteConversation(context.Background(), "conv-1"))
}

func TestConversationStats_LegacyFieldsNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/conversations/conv-1/stats", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"conversation_id": "conv-1",
			"total_messages": 4,
			"user_messages": 2,
			"agent_responses": 2,
			"agent_breakdown": {"MathAgent": 2},
			"average_execution_time": 12.5,
			"created_at": "2024-05-01T10:00:00",
			"updated_at": "2024-05-01T11:00:00"
		}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ConversationStats(context.Background(), "conv-1")

	require.NoError(t, err)
	assert.Equal(t, 4, got.TotalMessages)
	assert.Equal(t, map[string]int{"MathAgent": 2}, got.AgentUsage)
	assert.Equal(t, 12.5, got.AverageResponseTime)
	assert.Equal(t, 11, got.LastActivity.Hour())
}

func TestListMessages_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages/conversation/conv-1", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[{
			"id": 7,
			"conversation_id": "conv-1",
			"content": "hi",
			"response": "hello",
			"source_agent": "KnowledgeAgent",
			"agent_workflow": [{"agent": "RouterAgent", "execution_time": 1}, {"agent": "KnowledgeAgent", "execution_time": 2}],
			"created_at": "2024-05-01 10:00:00",
			"execution_time": 3
		}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListMessages(context.Background(), "conv-1", models.ListRequest{Limit: 100})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].ID)
	require.NotNil(t, got[0].Response)
	assert.Equal(t, "hello", *got[0].Response)
	assert.Len(t, got[0].AgentWorkflow, 2)
}

func TestHealth_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status": "healthy", "service": "ModularChatBot", "version": "1.0.0"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "healthy", got.Status)
	assert.Equal(t, "1.0.0", got.Version)
}

func TestHealth_ServiceUnavailable_NoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Health(context.Background())

	terr := requireTransportError(t, err)
	assert.Equal(t, "HTTP 503 Service Unavailable", terr.Message)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPChatbotAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPChatbotAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "adds scheme", raw: "localhost:8000", want: "http://localhost:8000"},
		{name: "keeps https", raw: "https://chat.example.com", want: "https://chat.example.com"},
		{name: "trims trailing slash", raw: "http://localhost:8000/", want: "http://localhost:8000"},
		{name: "keeps path prefix", raw: "http://gw/api/", want: "http://gw/api"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
