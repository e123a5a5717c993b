package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-agent-chat/internal/service"
	"github.com/MKhiriev/go-agent-chat/internal/store"
	"github.com/MKhiriev/go-agent-chat/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:       http.StatusUnprocessableEntity,
	ErrInvalidQueryParam: http.StatusUnprocessableEntity,

	validators.ErrEmptyUserID:         http.StatusUnprocessableEntity,
	validators.ErrEmptyConversationID: http.StatusUnprocessableEntity,
	validators.ErrEmptyMessage:        http.StatusUnprocessableEntity,
	validators.ErrEmptyTitle:          http.StatusUnprocessableEntity,
	validators.ErrValueTooLong:        http.StatusUnprocessableEntity,
	validators.ErrInvalidLimit:        http.StatusUnprocessableEntity,
	validators.ErrInvalidOffset:       http.StatusUnprocessableEntity,

	service.ErrAgentFailed: http.StatusInternalServerError,

	store.ErrConversationAlreadyExists: http.StatusConflict,
	store.ErrConversationNotFound:      http.StatusNotFound,
	store.ErrCacheUnavailable:          http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
