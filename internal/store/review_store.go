// internal/store/review_store.go
package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/EvgenijZaharo/Angular-movie/internal/domain"
)

// ReviewStore определяет интерфейс для операций с отзывами.
type ReviewStore interface {
	Create(ctx context.Context, review *domain.Review) error
	List(ctx context.Context) ([]domain.Review, error)
	ListByImdbID(ctx context.Context, imdbID string) ([]domain.Review, error)
}

// FileReviewStore реализует ReviewStore поверх документа FileDB.
type FileReviewStore struct {
	db     *FileDB
	logger *slog.Logger
}

// NewFileReviewStore создает новый экземпляр FileReviewStore.
func NewFileReviewStore(db *FileDB, logger *slog.Logger) *FileReviewStore {
	return &FileReviewStore{db: db, logger: logger}
}

// Create добавляет отзыв. userId обязан ссылаться на существующего
// пользователя; проверка выполняется внутри той же транзакции Update,
// так что отзыв и проверка ссылки атомарны. Фильм существовать не
// обязан — связь с ним чисто по значению imdbId.
func (s *FileReviewStore) Create(ctx context.Context, review *domain.Review) error {
	err := s.db.Update(ctx, func(doc *Document) error {
		if !userExists(doc, review.UserID) {
			return ErrUserNotFound
		}
		doc.Reviews = append(doc.Reviews, *review)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.logger.WarnContext(ctx, "Review rejected: unknown user", slog.String("userID", review.UserID))
		} else {
			s.logger.ErrorContext(ctx, "Failed to persist review", slog.String("reviewID", review.ID), slog.String("error", err.Error()))
		}
		return err
	}
	s.logger.InfoContext(ctx, "Review created", slog.String("reviewID", review.ID), slog.String("imdbId", review.ImdbID))
	return nil
}

// List возвращает все отзывы в порядке создания.
func (s *FileReviewStore) List(ctx context.Context) ([]domain.Review, error) {
	return s.db.Load(ctx).Reviews, nil
}

// ListByImdbID возвращает отзывы на фильм, сохраняя порядок создания.
func (s *FileReviewStore) ListByImdbID(ctx context.Context, imdbID string) ([]domain.Review, error) {
	doc := s.db.Load(ctx)
	filtered := make([]domain.Review, 0)
	for _, review := range doc.Reviews {
		if review.ImdbID == imdbID {
			filtered = append(filtered, review)
		}
	}
	return filtered, nil
}

// userExists проверяет наличие пользователя в документе.
func userExists(doc *Document, userID string) bool {
	for _, user := range doc.Users {
		if user.ID == userID {
			return true
		}
	}
	return false
}
