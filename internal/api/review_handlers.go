// internal/api/review_handlers.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/EvgenijZaharo/Angular-movie/internal/domain"
	"github.com/EvgenijZaharo/Angular-movie/internal/store"
)

// ListReviews обрабатывает GET /reviews.
func (h *HTTPHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reviews, err := h.reviews.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list reviews from store", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}
	h.respondJSON(w, r, http.StatusOK, reviews)
}

// GetReviewsForFilm обрабатывает GET /reviews/film/{imdbId}.
func (h *HTTPHandler) GetReviewsForFilm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	imdbID := mux.Vars(r)["imdbId"]

	reviews, err := h.reviews.ListByImdbID(ctx, imdbID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list reviews for film from store", slog.String("imdbId", imdbID), slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}
	h.respondJSON(w, r, http.StatusOK, reviews)
}

// CreateReview обрабатывает POST /reviews. Автор отзыва должен
// существовать; фильм — нет, ассоциация с ним идет по значению imdbId.
func (h *HTTPHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.logger.InfoContext(ctx, "HTTP CreateReview request received", slog.String("path", r.URL.Path))

	var req domain.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "Failed to decode review creation request body", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.validator.StructCtx(ctx, req); err != nil {
		h.logger.WarnContext(ctx, "Review creation request validation failed", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusBadRequest, "userId and imdbId are required")
		return
	}

	newReview := &domain.Review{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		ImdbID:     req.ImdbID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		CreatedAt:  time.Now().UTC(),
	}

	if err := h.reviews.Create(ctx, newReview); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			h.respondError(w, r, http.StatusNotFound, "User not found")
		} else {
			h.logger.ErrorContext(ctx, "Failed to create review in store", slog.String("error", err.Error()))
			h.respondError(w, r, http.StatusInternalServerError, "Failed to save review")
		}
		return
	}

	h.logger.InfoContext(ctx, "Review created successfully", slog.String("reviewID", newReview.ID), slog.String("imdbId", newReview.ImdbID))
	h.respondJSON(w, r, http.StatusCreated, newReview)
}
