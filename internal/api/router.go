// internal/api/router.go
package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// NewRouter создает и настраивает HTTP маршрутизатор каталога.
// CORS применяется ко всему дереву: фронтенд живет на другом origin.
func NewRouter(h *HTTPHandler, allowedOrigins []string) http.Handler {
	router := mux.NewRouter()
	router.Use(h.LoggingMiddleware)

	// Регистрация и вход
	router.HandleFunc("/register", h.RegisterUser).Methods(http.MethodPost)
	router.HandleFunc("/login", h.LoginUser).Methods(http.MethodPost)

	// Пользователи (только чтение)
	usersRouter := router.PathPrefix("/users").Subrouter()
	usersRouter.HandleFunc("", h.ListUsers).Methods(http.MethodGet)
	usersRouter.HandleFunc("/{userId}", h.GetUserByID).Methods(http.MethodGet)

	// Фильмы
	filmsRouter := router.PathPrefix("/films").Subrouter()
	filmsRouter.HandleFunc("", h.ListFilms).Methods(http.MethodGet)
	filmsRouter.HandleFunc("", h.CreateFilm).Methods(http.MethodPost)
	filmsRouter.HandleFunc("/{imdbId}", h.GetFilmByImdbID).Methods(http.MethodGet)

	// Отзывы
	reviewsRouter := router.PathPrefix("/reviews").Subrouter()
	reviewsRouter.HandleFunc("", h.ListReviews).Methods(http.MethodGet)
	reviewsRouter.HandleFunc("", h.CreateReview).Methods(http.MethodPost)
	reviewsRouter.HandleFunc("/film/{imdbId}", h.GetReviewsForFilm).Methods(http.MethodGet)

	// Комментарии
	commentsRouter := router.PathPrefix("/comments").Subrouter()
	commentsRouter.HandleFunc("", h.ListComments).Methods(http.MethodGet)
	commentsRouter.HandleFunc("", h.CreateComment).Methods(http.MethodPost)
	commentsRouter.HandleFunc("/film/{imdbId}", h.GetCommentsForFilm).Methods(http.MethodGet)

	return handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	)(router)
}
