package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quiz-forge/quizforge/internal/catalog"
	"github.com/quiz-forge/quizforge/internal/quiz"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

// statusFor maps the engine's typed errors onto HTTP codes. Anything
// unexpected is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, quiz.ErrBadAction):
		return http.StatusBadRequest
	case errors.Is(err, quiz.ErrNoSession), errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, quiz.ErrEmptyGroup), errors.Is(err, quiz.ErrEmptySession):
		return http.StatusUnprocessableEntity
	case errors.Is(err, quiz.ErrOutOfRange), errors.Is(err, quiz.ErrSessionFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
