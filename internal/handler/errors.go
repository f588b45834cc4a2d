package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"cosolve/internal/repository"
	"cosolve/internal/service"
)

// FailureResponse is the uniform failure envelope.
type FailureResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

func writeFailure(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, FailureResponse{Message: message, Success: false})
}

// writeServiceError maps the service error taxonomy onto HTTP failure
// envelopes. internalMessage is used for anything outside the taxonomy,
// which is logged and reported as 500.
func writeServiceError(w http.ResponseWriter, err error, internalMessage string) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		writeFailure(w, "Some fields Are Missing", http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCategory):
		writeFailure(w, "Invalid category", http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidStatus):
		writeFailure(w, "Invalid status", http.StatusBadRequest)
	case errors.Is(err, service.ErrEmptyCommentText):
		writeFailure(w, "text is required", http.StatusBadRequest)
	case errors.Is(err, service.ErrValidation):
		writeFailure(w, "Invalid request", http.StatusBadRequest)
	case errors.Is(err, service.ErrForbidden):
		writeFailure(w, "Unauthorized", http.StatusForbidden)
	case errors.Is(err, repository.ErrNotFound):
		writeFailure(w, "Post not found", http.StatusNotFound)
	case errors.Is(err, service.ErrImageProcessing):
		logrus.WithError(err).Error("image processing failed")
		writeFailure(w, internalMessage, http.StatusInternalServerError)
	default:
		logrus.WithError(err).Error(internalMessage)
		writeFailure(w, internalMessage, http.StatusInternalServerError)
	}
}
