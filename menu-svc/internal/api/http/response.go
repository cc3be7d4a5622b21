package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"qrmenu-backend/menu-svc/internal/domain"
)

// maxBodyBytes bounds request bodies, which carry base64 images.
const maxBodyBytes = 10 << 20

type errorResponse struct {
	Error     string `json:"error"`
	DishCount *int   `json:"dishCount,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeError maps domain errors to status codes. Anything unrecognised is
// logged and answered with a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var dependent *domain.DependentDishesError
	switch {
	case errors.As(err, &dependent):
		count := dependent.Count
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: capitalize(err.Error()), DishCount: &count})
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDuplicateEmail):
		writeMessage(w, http.StatusBadRequest, capitalize(err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		writeMessage(w, http.StatusUnauthorized, capitalize(err.Error()))
	case errors.Is(err, domain.ErrForbidden):
		writeMessage(w, http.StatusForbidden, capitalize(err.Error()))
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, capitalize(err.Error()))
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Request failed")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
