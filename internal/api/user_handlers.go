// internal/api/user_handlers.go
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/EvgenijZaharo/Angular-movie/internal/domain"
	"github.com/EvgenijZaharo/Angular-movie/internal/store"
)

// ListUsers обрабатывает GET /users. Пароли из ответа всегда вычищены.
func (h *HTTPHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.users.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list users from store", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	sanitized := make([]domain.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.Sanitized())
	}
	h.respondJSON(w, r, http.StatusOK, sanitized)
}

// GetUserByID обрабатывает GET /users/{userId}.
func (h *HTTPHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := mux.Vars(r)["userId"]

	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			h.respondError(w, r, http.StatusNotFound, "User not found")
		} else {
			h.logger.ErrorContext(ctx, "Failed to get user by ID from store", slog.String("userID", userID), slog.String("error", err.Error()))
			h.respondError(w, r, http.StatusInternalServerError, "Failed to retrieve user")
		}
		return
	}
	h.respondJSON(w, r, http.StatusOK, user.Sanitized())
}
