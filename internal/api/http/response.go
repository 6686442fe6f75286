package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"rent-ledger-backend/internal/domain"
	"rent-ledger-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeError maps the domain error taxonomy onto HTTP status codes. Store
// failures are reported without their cause.
func writeError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, domain.ErrNotFoundOrForbidden):
		writeMessage(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrDuplicateRentRecord):
		writeMessage(w, http.StatusConflict, "rent record already exists for this tenant and month")
	case domain.IsTransient(err):
		writeMessage(w, http.StatusServiceUnavailable, "store unavailable, try again")
	default:
		logger.Error("Unhandled error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", fmt.Sprintf("invalid JSON: %v", err))
	}
	return nil
}
