// cmd/catalogservice/main.go
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/EvgenijZaharo/Angular-movie/internal/api"
	"github.com/EvgenijZaharo/Angular-movie/internal/store"
	"github.com/EvgenijZaharo/Angular-movie/pkg/auth"
)

// getDBPath возвращает путь к JSON-файлу каталога.
func getDBPath(logger *slog.Logger) string {
	dbPath := os.Getenv("CATALOG_DB_PATH")
	if dbPath == "" {
		dbPath = "db.json"
		logger.Info("CATALOG_DB_PATH environment variable not set, using default database file", slog.String("path", dbPath))
	}
	return dbPath
}

// getCORSOrigins возвращает список origin'ов, с которых фронтенд
// ходит в API.
func getCORSOrigins() []string {
	origins := os.Getenv("CATALOG_CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:4200,http://127.0.0.1:4200"
	}
	return strings.Split(origins, ",")
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	validate := validator.New()
	if err := auth.RegisterPasswordPolicy(validate); err != nil {
		logger.Error("Failed to register password policy validation", slog.String("error", err.Error()))
		os.Exit(1)
	}

	httpPort := os.Getenv("CATALOG_HTTP_PORT")
	if httpPort == "" {
		httpPort = "3000"
	}

	// --- Конфигурация для JWT ---
	jwtSecretKey := os.Getenv("JWT_SECRET_KEY")
	if jwtSecretKey == "" {
		jwtSecretKey = "your-very-secret-and-long-enough-key-for-hmac256-dev-only"
		logger.Warn("JWT_SECRET_KEY environment variable not set, using default insecure key for development.")
	}
	jwtTokenDuration := time.Hour * 24

	tokenManager, err := auth.NewTokenManager(jwtSecretKey, jwtTokenDuration)
	if err != nil {
		logger.Error("Failed to create token manager", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Token manager initialized.")

	// --- Инициализация файлового хранилища каталога ---
	dbPath := getDBPath(logger)
	fileDB, err := store.NewFileDB(dbPath, logger)
	if err != nil {
		logger.Error("Failed to initialize catalog file store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Catalog FileDB initialized.", slog.String("path", fileDB.Path()))

	userStore := store.NewFileUserStore(fileDB, logger)
	filmStore := store.NewFileFilmStore(fileDB, logger)
	reviewStore := store.NewFileReviewStore(fileDB, logger)
	commentStore := store.NewFileCommentStore(fileDB, logger)

	// --- Настройка и запуск HTTP сервера ---
	httpHandler := api.NewHTTPHandler(userStore, filmStore, reviewStore, commentStore, logger, validate, tokenManager)
	router := api.NewRouter(httpHandler, getCORSOrigins())
	httpSrv := &http.Server{
		Addr:         ":" + httpPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("Catalog HTTP service starting", slog.String("port", httpPort))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Catalog HTTP service ListenAndServe() failed", slog.String("error", err.Error()))
		}
	}()

	// Ожидание сигнала для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Catalog service shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Catalog HTTP server shutdown failed", slog.String("error", err.Error()))
	} else {
		logger.Info("Catalog HTTP server gracefully stopped.")
	}
}
