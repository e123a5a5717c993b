package http

import (
	"net/http"

	"github.com/MKhiriev/go-agent-chat/internal/app"
	"github.com/MKhiriev/go-agent-chat/internal/validators"
	"github.com/MKhiriev/go-agent-chat/models"
	"github.com/go-chi/chi/v5"
)

type cacheInvalidationResponse struct {
	Status string `json:"status"`
	Data   struct {
		ConversationID string `json:"conversation_id"`
		Invalidated    bool   `json:"invalidated"`
	} `json:"data"`
}

func (h *Handler) listConversationMessages(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r, validators.DefaultMessagesLimit)
	if err != nil {
		writeError(w, r, "*Handler.listConversationMessages", app.MsgInvalidPage, err)
		return
	}

	messages, err := h.services.MessageService.ListMessages(r.Context(), chi.URLParam(r, "conversationID"), page)
	if err != nil {
		writeError(w, r, "*Handler.listConversationMessages", app.MsgListMessagesFailed, err)
		return
	}
	if messages == nil {
		messages = []models.PersistedMessage{}
	}

	writeJSON(w, r, messages, http.StatusOK)
}

func (h *Handler) cacheStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.MessageService.CacheStats(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.cacheStats", app.MsgCacheStatsFailed, err)
		return
	}

	writeJSON(w, r, stats, http.StatusOK)
}

func (h *Handler) invalidateConversationCache(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	if err := h.services.MessageService.InvalidateCache(r.Context(), conversationID); err != nil {
		writeError(w, r, "*Handler.invalidateConversationCache", app.MsgCacheInvalidateFailed, err)
		return
	}

	var resp cacheInvalidationResponse
	resp.Status = "success"
	resp.Data.ConversationID = conversationID
	resp.Data.Invalidated = true

	writeJSON(w, r, resp, http.StatusOK)
}
