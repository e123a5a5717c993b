package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withGZip)

	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)

	router.Post("/chat", h.chat)

	router.Route("/conversations", func(r chi.Router) {
		r.Post("/", h.createConversation)
		r.Get("/user/{userID}", h.listUserConversations)
		r.Get("/{conversationID}", h.getConversation)
		r.Put("/{conversationID}/title", h.renameConversation)
		r.Delete("/{conversationID}", h.deleteConversation)
		r.Get("/{conversationID}/stats", h.conversationStats)
	})

	router.Get("/messages/conversation/{conversationID}", h.listConversationMessages)

	router.Route("/cache", func(r chi.Router) {
		r.Get("/stats", h.cacheStats)
		r.Delete("/conversation/{conversationID}", h.invalidateConversationCache)
	})

	return router
}
