// internal/api/handlers.go
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/EvgenijZaharo/Angular-movie/internal/store"
	"github.com/EvgenijZaharo/Angular-movie/pkg/auth"
)

// HTTPHandler содержит зависимости для HTTP обработчиков каталога.
type HTTPHandler struct {
	users        store.UserStore
	films        store.FilmStore
	reviews      store.ReviewStore
	comments     store.CommentStore
	logger       *slog.Logger
	validator    *validator.Validate
	tokenManager auth.TokenManager
}

// NewHTTPHandler создает новый экземпляр HTTPHandler.
func NewHTTPHandler(
	users store.UserStore,
	films store.FilmStore,
	reviews store.ReviewStore,
	comments store.CommentStore,
	logger *slog.Logger,
	v *validator.Validate,
	tm auth.TokenManager,
) *HTTPHandler {
	return &HTTPHandler{
		users:        users,
		films:        films,
		reviews:      reviews,
		comments:     comments,
		logger:       logger,
		validator:    v,
		tokenManager: tm,
	}
}

// --- Вспомогательные функции ---

func (h *HTTPHandler) respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			h.logger.ErrorContext(r.Context(), "Failed to encode JSON response", slog.String("error", err.Error()), slog.String("path", r.URL.Path))
		}
	}
}

func (h *HTTPHandler) respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.respondJSON(w, r, status, map[string]string{"error": message})
}
