package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"causes/internal/domain"
	"causes/internal/middleware"
)

const maxBodyBytes = 1 << 20

// App holds the dependencies shared by every handler. It is built once in
// main after the store is reachable.
type App struct {
	Causes        domain.CauseRepository
	Contributions domain.ContributionRepository
	Store         domain.HealthChecker
	Logger        zerolog.Logger
}

func NewApp(causes domain.CauseRepository, contributions domain.ContributionRepository, store domain.HealthChecker, logger zerolog.Logger) *App {
	return &App{
		Causes:        causes,
		Contributions: contributions,
		Store:         store,
		Logger:        logger,
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, errorResponse{Error: errCode, Message: message})
}

// fail maps err onto exactly one error response.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		a.error(w, http.StatusBadRequest, "bad_request", verr.Message)
	case errors.Is(err, domain.ErrInvalidID):
		a.error(w, http.StatusBadRequest, "bad_request", "Invalid id")
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "Cause not found")
	default:
		a.Logger.Error().
			Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("store operation failed")
		a.error(w, http.StatusInternalServerError, "internal", err.Error())
	}
}

// decode reads exactly one JSON value into v. An empty body leaves v zeroed
// so that field validation reports what is missing.
func (a *App) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return true
	}
	if err == nil {
		var extra json.RawMessage
		if err = dec.Decode(&extra); errors.Is(err, io.EOF) {
			return true
		}
	}
	a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
	return false
}
