package http

import (
	"net/http"

	"github.com/MKhiriev/go-agent-chat/internal/app"
	"github.com/MKhiriev/go-agent-chat/internal/validators"
	"github.com/MKhiriev/go-agent-chat/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createConversation(w http.ResponseWriter, r *http.Request) {
	var req models.CreateConversationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.createConversation", app.MsgInvalidRequestBody, err)
		return
	}

	conversation, err := h.services.ConversationService.CreateConversation(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.createConversation", app.MsgCreateConversationFailed, err)
		return
	}

	writeJSON(w, r, conversation, http.StatusCreated)
}

func (h *Handler) getConversation(w http.ResponseWriter, r *http.Request) {
	conversation, err := h.services.ConversationService.GetConversation(r.Context(), chi.URLParam(r, "conversationID"))
	if err != nil {
		writeError(w, r, "*Handler.getConversation", app.MsgGetConversationFailed, err)
		return
	}

	writeJSON(w, r, conversation, http.StatusOK)
}

func (h *Handler) listUserConversations(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r, validators.DefaultListLimit)
	if err != nil {
		writeError(w, r, "*Handler.listUserConversations", app.MsgInvalidPage, err)
		return
	}

	conversations, err := h.services.ConversationService.ListConversations(r.Context(), chi.URLParam(r, "userID"), page)
	if err != nil {
		writeError(w, r, "*Handler.listUserConversations", app.MsgListConversationsFailed, err)
		return
	}
	if conversations == nil {
		conversations = []models.Conversation{}
	}

	writeJSON(w, r, conversations, http.StatusOK)
}

// renameConversation accepts the title either as a JSON body or as the
// ?title= query parameter.
func (h *Handler) renameConversation(w http.ResponseWriter, r *http.Request) {
	var req models.RenameConversationRequest
	if title := r.URL.Query().Get("title"); title != "" {
		req.Title = title
	} else if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.renameConversation", app.MsgInvalidRequestBody, err)
		return
	}

	conversation, err := h.services.ConversationService.RenameConversation(r.Context(), chi.URLParam(r, "conversationID"), req)
	if err != nil {
		writeError(w, r, "*Handler.renameConversation", app.MsgRenameConversationFailed, err)
		return
	}

	writeJSON(w, r, conversation, http.StatusOK)
}

func (h *Handler) deleteConversation(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ConversationService.DeleteConversation(r.Context(), chi.URLParam(r, "conversationID")); err != nil {
		writeError(w, r, "*Handler.deleteConversation", app.MsgDeleteConversationFailed, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) conversationStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.ConversationService.ConversationStats(r.Context(), chi.URLParam(r, "conversationID"))
	if err != nil {
		writeError(w, r, "*Handler.conversationStats", app.MsgStatsFailed, err)
		return
	}

	writeJSON(w, r, stats, http.StatusOK)
}
