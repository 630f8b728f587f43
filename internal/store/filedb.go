// internal/store/filedb.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/EvgenijZaharo/Angular-movie/internal/domain"
)

// Document — корневой JSON-документ каталога: единственный источник
// истины для всех четырех коллекций.
type Document struct {
	Users    []domain.User    `json:"users"`
	Films    []domain.Film    `json:"films"`
	Reviews  []domain.Review  `json:"reviews"`
	Comments []domain.Comment `json:"comments"`
}

// NewDocument возвращает пустой документ. Коллекции всегда не-nil,
// чтобы в JSON сериализовались как [], а не null.
func NewDocument() *Document {
	return &Document{
		Users:    []domain.User{},
		Films:    []domain.Film{},
		Reviews:  []domain.Review{},
		Comments: []domain.Comment{},
	}
}

// normalize заменяет nil-коллекции пустыми после разбора файла,
// в котором какое-то из полей могло отсутствовать.
func (d *Document) normalize() {
	if d.Users == nil {
		d.Users = []domain.User{}
	}
	if d.Films == nil {
		d.Films = []domain.Film{}
	}
	if d.Reviews == nil {
		d.Reviews = []domain.Review{}
	}
	if d.Comments == nil {
		d.Comments = []domain.Comment{}
	}
}

// FileDB владеет документом каталога на диске. Каждый Load заново
// читает файл, каждый Save целиком его переписывает; между вызовами
// ничего не кэшируется, поэтому чтение всегда согласовано с последней
// завершенной записью.
//
// Все мутирующие операции обязаны идти через Update: он держит
// эксклюзивную блокировку на протяжении load-mutate-save и тем самым
// исключает потерю обновлений при конкурентных запросах.
type FileDB struct {
	path   string
	logger *slog.Logger
	mu     sync.RWMutex
}

// NewFileDB создает хранилище над файлом path. Файл не обязан
// существовать: первый Save его создаст.
func NewFileDB(path string, logger *slog.Logger) (*FileDB, error) {
	if path == "" {
		return nil, errors.New("database file path cannot be empty")
	}
	return &FileDB{path: path, logger: logger}, nil
}

// Path возвращает путь к файлу документа.
func (db *FileDB) Path() string {
	return db.path
}

// Load читает документ с диска. Отсутствующий, нечитаемый или битый
// файл не останавливает вызывающего: возвращается пустой документ,
// а сбой попадает в лог. Сознательный выбор доступности в ущерб
// строгости — только для чтения, записи так не деградируют.
func (db *FileDB) Load(ctx context.Context) *Document {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.loadLocked(ctx)
}

// loadLocked выполняет чтение; вызывающий обязан держать db.mu.
func (db *FileDB) loadLocked(ctx context.Context) *Document {
	data, err := os.ReadFile(db.path)
	if err != nil {
		if os.IsNotExist(err) {
			db.logger.WarnContext(ctx, "Database file does not exist yet, starting with empty document", slog.String("path", db.path))
		} else {
			db.logger.ErrorContext(ctx, "Failed to read database file, degrading to empty document", slog.String("path", db.path), slog.String("error", err.Error()))
		}
		return NewDocument()
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		db.logger.ErrorContext(ctx, "Failed to parse database file, degrading to empty document", slog.String("path", db.path), slog.String("error", err.Error()))
		return NewDocument()
	}
	doc.normalize()
	return doc
}

// Save атомарно заменяет документ на диске: сериализация во временный
// файл в том же каталоге и rename поверх целевого. Читатель никогда не
// увидит наполовину записанный документ.
func (db *FileDB) Save(ctx context.Context, doc *Document) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.saveLocked(ctx, doc)
}

// saveLocked выполняет запись; вызывающий обязан держать db.mu.
func (db *FileDB) saveLocked(ctx context.Context, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		db.logger.ErrorContext(ctx, "Failed to serialize document", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	dir := filepath.Dir(db.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(db.path)+".tmp-*")
	if err != nil {
		db.logger.ErrorContext(ctx, "Failed to create temp file for document", slog.String("dir", dir), slog.String("error", err.Error()))
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		db.logger.ErrorContext(ctx, "Failed to write document to temp file", slog.String("path", tmpName), slog.String("error", err.Error()))
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, db.path); err != nil {
		os.Remove(tmpName)
		db.logger.ErrorContext(ctx, "Failed to replace database file", slog.String("path", db.path), slog.String("error", err.Error()))
		return fmt.Errorf("failed to replace database file: %w", err)
	}
	return nil
}

// Update — граница сериализации всех мутирующих операций: под
// эксклюзивной блокировкой читает документ, применяет fn и сохраняет
// результат. Ошибка из fn отменяет запись до того, как на диск попадет
// хоть один байт, поэтому каждая успешная запись оставляет документ
// с выполненными инвариантами целиком.
func (db *FileDB) Update(ctx context.Context, fn func(doc *Document) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	doc := db.loadLocked(ctx)
	if err := fn(doc); err != nil {
		return err
	}
	return db.saveLocked(ctx, doc)
}
