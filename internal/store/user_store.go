// internal/store/user_store.go
package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/EvgenijZaharo/Angular-movie/internal/domain"
)

// Кастомные ошибки хранилища пользователей.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email or login already exists")
)

// UserStore определяет интерфейс для операций с данными пользователей.
// Пользователи создаются один раз и далее неизменяемы.
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// FileUserStore реализует UserStore поверх документа FileDB.
type FileUserStore struct {
	db     *FileDB
	logger *slog.Logger
}

// NewFileUserStore создает новый экземпляр FileUserStore.
func NewFileUserStore(db *FileDB, logger *slog.Logger) *FileUserStore {
	return &FileUserStore{db: db, logger: logger}
}

// Create добавляет пользователя в документ. Уникальность email и login
// проверяется под той же блокировкой, под которой происходит запись.
func (s *FileUserStore) Create(ctx context.Context, user *domain.User) error {
	err := s.db.Update(ctx, func(doc *Document) error {
		for _, existing := range doc.Users {
			if existing.Email == user.Email || existing.Login == user.Login {
				return ErrUserAlreadyExists
			}
		}
		doc.Users = append(doc.Users, *user)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			s.logger.WarnContext(ctx, "User already exists", slog.String("email", user.Email), slog.String("login", user.Login))
		} else {
			s.logger.ErrorContext(ctx, "Failed to persist user", slog.String("userID", user.ID), slog.String("error", err.Error()))
		}
		return err
	}
	s.logger.InfoContext(ctx, "User created", slog.String("userID", user.ID), slog.String("login", user.Login))
	return nil
}

// GetByID находит пользователя по его ID.
func (s *FileUserStore) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	doc := s.db.Load(ctx)
	for _, user := range doc.Users {
		if user.ID == userID {
			userCopy := user
			return &userCopy, nil
		}
	}
	return nil, ErrUserNotFound
}

// GetByEmail находит пользователя по email.
func (s *FileUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	doc := s.db.Load(ctx)
	for _, user := range doc.Users {
		if user.Email == email {
			userCopy := user
			return &userCopy, nil
		}
	}
	return nil, ErrUserNotFound
}

// List возвращает всех пользователей в порядке создания.
func (s *FileUserStore) List(ctx context.Context) ([]domain.User, error) {
	return s.db.Load(ctx).Users, nil
}
