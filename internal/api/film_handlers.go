// internal/api/film_handlers.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/EvgenijZaharo/Angular-movie/internal/domain"
	"github.com/EvgenijZaharo/Angular-movie/internal/store"
)

// ListFilms обрабатывает GET /films.
func (h *HTTPHandler) ListFilms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	films, err := h.films.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list films from store", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to retrieve films")
		return
	}
	h.respondJSON(w, r, http.StatusOK, films)
}

// GetFilmByImdbID обрабатывает GET /films/{imdbId}.
func (h *HTTPHandler) GetFilmByImdbID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	imdbID := mux.Vars(r)["imdbId"]

	film, err := h.films.GetByImdbID(ctx, imdbID)
	if err != nil {
		if errors.Is(err, store.ErrFilmNotFound) {
			h.respondError(w, r, http.StatusNotFound, "Film not found")
		} else {
			h.logger.ErrorContext(ctx, "Failed to get film from store", slog.String("imdbId", imdbID), slog.String("error", err.Error()))
			h.respondError(w, r, http.StatusInternalServerError, "Failed to retrieve film")
		}
		return
	}
	h.respondJSON(w, r, http.StatusOK, film)
}

// CreateFilm обрабатывает POST /films: ленивое кэширование фильма из
// внешнего каталога. Повторный запрос с тем же imdbId идемпотентен —
// возвращается уже сохраненная запись со статусом 200, новые значения
// полей не перезаписывают старые.
func (h *HTTPHandler) CreateFilm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.logger.InfoContext(ctx, "HTTP CreateFilm request received", slog.String("path", r.URL.Path))

	var req domain.CreateFilmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "Failed to decode film creation request body", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.validator.StructCtx(ctx, req); err != nil {
		h.logger.WarnContext(ctx, "Film creation request validation failed", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusBadRequest, "imdbId and title are required")
		return
	}

	newFilm := &domain.Film{
		ImdbID:     req.ImdbID,
		Title:      req.Title,
		Year:       req.Year,
		Poster:     req.Poster,
		Plot:       req.Plot,
		Director:   req.Director,
		Actors:     req.Actors,
		Genre:      req.Genre,
		Runtime:    req.Runtime,
		ImdbRating: req.ImdbRating,
		CreatedAt:  time.Now().UTC(),
	}

	film, created, err := h.films.Upsert(ctx, newFilm)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to upsert film in store", slog.String("imdbId", req.ImdbID), slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "Failed to save film")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.respondJSON(w, r, status, film)
}
