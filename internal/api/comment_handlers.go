// internal/api/comment_handlers.go
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

// ListComments обрабатывает GET /comments.
func (h *HTTPHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	comments, err := h.comments.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list comments from store", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to retrieve comments")
		return
	}
	h.respondJSON(w, r, http.StatusOK, comments)
}

// GetCommentsForFilm обрабатывает GET /comments/film/{imdbId}.
func (h *HTTPHandler) GetCommentsForFilm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	imdbID := mux.Vars(r)["imdbId"]

	comments, err := h.comments.ListByImdbID(ctx, imdbID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list comments for film from store", slog.String("imdbId", imdbID), slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to retrieve comments")
		return
	}
	h.respondJSON(w, r, http.StatusOK, comments)
}

// CreateComment обрабатывает POST /comments. Текст обязателен, автор
// должен существовать; parentCommentId не проверяется и сохраняется
// как прислали (null, если не указан).
func (h *HTTPHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.logger.InfoContext(ctx, "HTTP CreateComment request received", slog.String("path", r.URL.Path))

	var req domain.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "Failed to decode comment creation request body", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.validator.StructCtx(ctx, req); err != nil {
		h.logger.WarnContext(ctx, "Comment creation request validation failed", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusBadRequest, "userId, imdbId, and commentText are required")
		return
	}

	newComment := &domain.Comment{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		ImdbID:          req.ImdbID,
		CommentText:     req.CommentText,
		ParentCommentID: req.ParentCommentID,
		CreatedAt:       time.Now().UTC(),
	}

	if err := h.comments.Create(ctx, newComment); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			h.respondError(w, r, http.StatusNotFound, "User not found")
		} else {
			h.logger.ErrorContext(ctx, "Failed to create comment in store", slog.String("error", err.Error()))
			h.respondError(w, r, http.StatusInternalServerError, "Failed to save comment")
		}
		return
	}

	h.logger.InfoContext(ctx, "Comment created successfully", slog.String("commentID", newComment.ID), slog.String("imdbId", newComment.ImdbID))
	h.respondJSON(w, r, http.StatusCreated, newComment)
}
