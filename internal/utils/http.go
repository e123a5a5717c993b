package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it with statusCode. A marshalling
// failure is answered with a plain 500 and returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error encoding response", http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// ErrorDetail is the error body of the chatbot backend, {"detail": "..."}.
// The client adapter decodes the same shape.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// WriteDetail writes an ErrorDetail body with the given status code.
func WriteDetail(w http.ResponseWriter, detail string, statusCode int) {
	_, _ = WriteJSON(w, ErrorDetail{Detail: detail}, statusCode)
}
