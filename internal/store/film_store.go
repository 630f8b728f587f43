// internal/store/film_store.go
package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/EvgenijZaharo/Angular-movie/internal/domain"
)

// ErrFilmNotFound возвращается, когда фильм с указанным imdbId отсутствует.
var ErrFilmNotFound = errors.New("film not found")

// errFilmExists — внутренний сигнал для Upsert: фильм уже в документе,
// запись на диск не нужна.
var errFilmExists = errors.New("film already exists")

// FilmStore определяет интерфейс для операций с фильмами.
type FilmStore interface {
	// Upsert лениво создает фильм. Если фильм с таким imdbId уже есть,
	// возвращается существующая запись без изменений (created=false) —
	// поля никогда не перезаписываются.
	Upsert(ctx context.Context, film *domain.Film) (*domain.Film, bool, error)
	GetByImdbID(ctx context.Context, imdbID string) (*domain.Film, error)
	List(ctx context.Context) ([]domain.Film, error)
}

// FileFilmStore реализует FilmStore поверх документа FileDB.
type FileFilmStore struct {
	db     *FileDB
	logger *slog.Logger
}

// NewFileFilmStore создает новый экземпляр FileFilmStore.
func NewFileFilmStore(db *FileDB, logger *slog.Logger) *FileFilmStore {
	return &FileFilmStore{db: db, logger: logger}
}

// Upsert реализует контракт идемпотентности по imdbId.
func (s *FileFilmStore) Upsert(ctx context.Context, film *domain.Film) (*domain.Film, bool, error) {
	var existing domain.Film
	err := s.db.Update(ctx, func(doc *Document) error {
		for _, f := range doc.Films {
			if f.ImdbID == film.ImdbID {
				existing = f
				return errFilmExists
			}
		}
		doc.Films = append(doc.Films, *film)
		return nil
	})
	if errors.Is(err, errFilmExists) {
		s.logger.InfoContext(ctx, "Film already cached, returning existing record", slog.String("imdbId", film.ImdbID))
		return &existing, false, nil
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist film", slog.String("imdbId", film.ImdbID), slog.String("error", err.Error()))
		return nil, false, err
	}
	s.logger.InfoContext(ctx, "Film created", slog.String("imdbId", film.ImdbID), slog.String("title", film.Title))
	filmCopy := *film
	return &filmCopy, true, nil
}

// GetByImdbID находит фильм по внешнему ключу каталога.
func (s *FileFilmStore) GetByImdbID(ctx context.Context, imdbID string) (*domain.Film, error) {
	doc := s.db.Load(ctx)
	for _, film := range doc.Films {
		if film.ImdbID == imdbID {
			filmCopy := film
			return &filmCopy, nil
		}
	}
	return nil, ErrFilmNotFound
}

// List возвращает все фильмы в порядке создания.
func (s *FileFilmStore) List(ctx context.Context) ([]domain.Film, error) {
	return s.db.Load(ctx).Films, nil
}
