// internal/domain/review.go
package domain

import (
	"time"
)

// Review представляет отзыв пользователя на фильм.
// Связь с фильмом — по значению imdbId, сам фильм не обязан
// существовать в коллекции films.
type Review struct {
	ID         string    `json:"id"` // UUID
	UserID     string    `json:"userId"`
	ImdbID     string    `json:"imdbId"`
	Rating     float64   `json:"rating"`
	ReviewText string    `json:"reviewText"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateReviewRequest определяет тело запроса для создания отзыва.
// rating и reviewText необязательны: 0 и пустая строка по умолчанию.
type CreateReviewRequest struct {
	UserID     string  `json:"userId" validate:"required"`
	ImdbID     string  `json:"imdbId" validate:"required"`
	Rating     float64 `json:"rating,omitempty"`
	ReviewText string  `json:"reviewText,omitempty"`
}
