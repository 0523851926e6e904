package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/moscowmix/sitesync/internal/engine"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decode(r *http.Request, dst any) error {
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(dst)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// writeMutationError maps engine errors to HTTP statuses. fallback is the
// status for errors outside the known set: 400 for optimistic operations,
// whose only failure mode is input validation, and 502 for confirmed
// writes, which also surface remote push and verification failures.
func writeMutationError(w http.ResponseWriter, err error, fallback int) {
	status := fallback
	switch {
	case errors.Is(err, engine.ErrProductNotFound),
		errors.Is(err, engine.ErrPostNotFound):
		status = http.StatusNotFound
	case errors.Is(err, engine.ErrDuplicateID),
		errors.Is(err, engine.ErrScheduleRequired):
		status = http.StatusBadRequest
	case errors.Is(err, engine.ErrVerifyMismatch):
		status = http.StatusBadGateway
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
