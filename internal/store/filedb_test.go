// internal/store/filedb_test.go
package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EvgenijZaharo/Angular-movie/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDB(t *testing.T) *FileDB {
	t.Helper()
	db, err := NewFileDB(filepath.Join(t.TempDir(), "db.json"), testLogger())
	require.NoError(t, err)
	return db
}

func TestNewFileDB_EmptyPath(t *testing.T) {
	_, err := NewFileDB("", testLogger())
	require.Error(t, err)
}

func TestFileDB_Load_MissingFile(t *testing.T) {
	db := newTestDB(t)

	doc := db.Load(context.Background())
	require.NotNil(t, doc)
	assert.NotNil(t, doc.Users)
	assert.NotNil(t, doc.Films)
	assert.NotNil(t, doc.Reviews)
	assert.NotNil(t, doc.Comments)
	assert.Empty(t, doc.Users)
}

func TestFileDB_Load_CorruptFile(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, os.WriteFile(db.Path(), []byte("{not json"), 0o644))

	doc := db.Load(context.Background())
	require.NotNil(t, doc)
	assert.Empty(t, doc.Users)
	assert.Empty(t, doc.Reviews)
}

func TestFileDB_Load_MissingCollections(t *testing.T) {
	// Старые версии документа могли не иметь поля comments.
	db := newTestDB(t)
	require.NoError(t, os.WriteFile(db.Path(), []byte(`{"users":[],"films":[],"reviews":[]}`), 0o644))

	doc := db.Load(context.Background())
	require.NotNil(t, doc.Comments)
	assert.Empty(t, doc.Comments)
}

func TestFileDB_SaveLoad_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	parent := "parent-id"
	doc := NewDocument()
	doc.Users = append(doc.Users, domain.User{ID: "u1", Login: "abcde", Email: "a@b.com", Password: "Abcdef1!", CreatedAt: createdAt})
	doc.Films = append(doc.Films, domain.Film{ImdbID: "tt0111161", Title: "The Shawshank Redemption", Year: "1994", CreatedAt: createdAt})
	doc.Reviews = append(doc.Reviews, domain.Review{ID: "r1", UserID: "u1", ImdbID: "tt0111161", Rating: 9, ReviewText: "great", CreatedAt: createdAt})
	doc.Comments = append(doc.Comments, domain.Comment{ID: "c1", UserID: "u1", ImdbID: "tt0111161", CommentText: "hi", ParentCommentID: &parent, CreatedAt: createdAt})

	require.NoError(t, db.Save(ctx, doc))

	reloaded := db.Load(ctx)
	assert.Equal(t, doc, reloaded)
}

func TestFileDB_Save_LeavesNoTempFiles(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Save(context.Background(), NewDocument()))

	entries, err := os.ReadDir(filepath.Dir(db.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(db.Path()), entries[0].Name())
}

func TestFileDB_Update_AbortsOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	doc := NewDocument()
	doc.Users = append(doc.Users, domain.User{ID: "u1", Login: "abcde", Email: "a@b.com"})
	require.NoError(t, db.Save(ctx, doc))

	boom := errors.New("boom")
	err := db.Update(ctx, func(doc *Document) error {
		doc.Users = nil // мутация не должна пережить ошибку
		return boom
	})
	require.ErrorIs(t, err, boom)

	reloaded := db.Load(ctx)
	require.Len(t, reloaded.Users, 1)
	assert.Equal(t, "u1", reloaded.Users[0].ID)
}

func TestFileDB_Update_ConcurrentWritersLoseNothing(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	const writers = 50
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			err := db.Update(ctx, func(doc *Document) error {
				doc.Reviews = append(doc.Reviews, domain.Review{ID: uuid.NewString(), UserID: "u1", ImdbID: "tt1"})
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	doc := db.Load(ctx)
	require.Len(t, doc.Reviews, writers)

	seen := make(map[string]bool, writers)
	for _, review := range doc.Reviews {
		assert.False(t, seen[review.ID], "duplicate review id %s", review.ID)
		seen[review.ID] = true
	}
}
