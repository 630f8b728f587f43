// internal/domain/film.go
package domain

import (
	"time"
)

// Film представляет фильм, закэшированный из внешнего каталога.
// imdbId — внешний ключ стороннего каталога, все описательные поля
// приходят оттуда строками и хранятся как есть.
type Film struct {
	ImdbID     string    `json:"imdbId"`
	Title      string    `json:"title"`
	Year       string    `json:"year"`
	Poster     string    `json:"poster"`
	Plot       string    `json:"plot"`
	Director   string    `json:"director"`
	Actors     string    `json:"actors"`
	Genre      string    `json:"genre"`
	Runtime    string    `json:"runtime"`
	ImdbRating string    `json:"imdbRating"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateFilmRequest определяет тело запроса для ленивого создания фильма.
// Обязательны только imdbId и title, остальные поля по умолчанию пустые.
type CreateFilmRequest struct {
	ImdbID     string `json:"imdbId" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Year       string `json:"year,omitempty"`
	Poster     string `json:"poster,omitempty"`
	Plot       string `json:"plot,omitempty"`
	Director   string `json:"director,omitempty"`
	Actors     string `json:"actors,omitempty"`
	Genre      string `json:"genre,omitempty"`
	Runtime    string `json:"runtime,omitempty"`
	ImdbRating string `json:"imdbRating,omitempty"`
}
