// internal/store/comment_store.go
package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/EvgenijZaharo/Angular-movie/internal/domain"
)

// CommentStore определяет интерфейс для операций с комментариями.
type CommentStore interface {
	Create(ctx context.Context, comment *domain.Comment) error
	List(ctx context.Context) ([]domain.Comment, error)
	ListByImdbID(ctx context.Context, imdbID string) ([]domain.Comment, error)
}

// FileCommentStore реализует CommentStore поверх документа FileDB.
type FileCommentStore struct {
	db     *FileDB
	logger *slog.Logger
}

// NewFileCommentStore создает новый экземпляр FileCommentStore.
func NewFileCommentStore(db *FileDB, logger *slog.Logger) *FileCommentStore {
	return &FileCommentStore{db: db, logger: logger}
}

// Create добавляет комментарий. userId проверяется как у отзывов;
// parentCommentId сохраняется как есть, без проверки существования
// родителя — известная особенность исходной системы.
func (s *FileCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	err := s.db.Update(ctx, func(doc *Document) error {
		if !userExists(doc, comment.UserID) {
			return ErrUserNotFound
		}
		doc.Comments = append(doc.Comments, *comment)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.logger.WarnContext(ctx, "Comment rejected: unknown user", slog.String("userID", comment.UserID))
		} else {
			s.logger.ErrorContext(ctx, "Failed to persist comment", slog.String("commentID", comment.ID), slog.String("error", err.Error()))
		}
		return err
	}
	s.logger.InfoContext(ctx, "Comment created", slog.String("commentID", comment.ID), slog.String("imdbId", comment.ImdbID))
	return nil
}

// List возвращает все комментарии в порядке создания.
func (s *FileCommentStore) List(ctx context.Context) ([]domain.Comment, error) {
	return s.db.Load(ctx).Comments, nil
}

// ListByImdbID возвращает комментарии к фильму, сохраняя порядок создания.
func (s *FileCommentStore) ListByImdbID(ctx context.Context, imdbID string) ([]domain.Comment, error) {
	doc := s.db.Load(ctx)
	filtered := make([]domain.Comment, 0)
	for _, comment := range doc.Comments {
		if comment.ImdbID == imdbID {
			filtered = append(filtered, comment)
		}
	}
	return filtered, nil
}
