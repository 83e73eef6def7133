package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jyvais/backend/internal/domain"
)

// ErrorResponse is the JSON error envelope for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code, a human-readable message, and
// for validation failures the names of the missing fields.
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Missing []string `json:"missing,omitempty"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError writes the standard error envelope.
func writeError(w http.ResponseWriter, status int, code, message string, missing []string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message, Missing: missing}})
}

// respondError maps service-layer errors onto HTTP statuses:
// validation → 422, not found → 404, busy → 409, generation → 502,
// everything else → 500 with a generic message.
func respondError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err), ve.Missing())
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err), nil)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "itinerary not found", nil)
	case errors.Is(err, domain.ErrBusy):
		writeError(w, http.StatusConflict, "generation_in_progress", "a generation request is already in progress", nil)
	case errors.Is(err, domain.ErrGeneration):
		writeError(w, http.StatusBadGateway, "generation_failed", unwrapMessage(err), nil)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error", nil)
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.SavedService.Save: validation error: a generated description
// is required" → "a generated description is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range []string{
		domain.ErrValidation.Error() + ": ",
		domain.ErrGeneration.Error() + ": ",
	} {
		if i := strings.Index(msg, sentinel); i >= 0 {
			return msg[i+len(sentinel):]
		}
	}
	return msg
}
