package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"word-wolf/internal/game"
	"word-wolf/internal/theme"
)

func readJSON(body io.Reader, dest any) error {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"code":  code,
		"error": message,
	})
}

// writeDomainError maps the error taxonomy onto HTTP statuses. Every
// rejection is recoverable and reported as a result value; nothing here
// is fatal to the process.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		writeError(w, http.StatusNotFound, "room_not_found", err.Error())
	case errors.Is(err, game.ErrUnknownPlayer):
		writeError(w, http.StatusNotFound, "unknown_player", err.Error())
	case errors.Is(err, ErrDuplicateID):
		writeError(w, http.StatusConflict, "duplicate_id", err.Error())
	case errors.Is(err, ErrRoomFull):
		writeError(w, http.StatusConflict, "room_full", err.Error())
	case errors.Is(err, game.ErrAlreadyVoted):
		writeError(w, http.StatusConflict, "already_voted", err.Error())
	case errors.Is(err, game.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, game.ErrInvalidConfig), errors.Is(err, theme.ErrUnknownCategory):
		writeError(w, http.StatusBadRequest, "invalid_config", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
	}
}
