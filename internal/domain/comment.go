// internal/domain/comment.go
package domain

import (
	"time"
)

// Comment представляет комментарий к фильму.
// parentCommentId позволяет строить ветки ответов; существование
// родителя не проверяется, висячие ссылки возможны.
type Comment struct {
	ID              string    `json:"id"` // UUID
	UserID          string    `json:"userId"`
	ImdbID          string    `json:"imdbId"`
	CommentText     string    `json:"commentText"`
	ParentCommentID *string   `json:"parentCommentId"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateCommentRequest определяет тело запроса для создания комментария.
type CreateCommentRequest struct {
	UserID          string  `json:"userId" validate:"required"`
	ImdbID          string  `json:"imdbId" validate:"required"`
	CommentText     string  `json:"commentText" validate:"required"`
	ParentCommentID *string `json:"parentCommentId,omitempty"`
}
