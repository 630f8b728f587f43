// internal/api/review_handlers_test.go
package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview_Success(t *testing.T) {
	srv := newTestServer(t)
	userID := registerTestUser(t, srv, "abcde", "a@b.com")

	rec := doJSON(t, srv, http.MethodPost, "/reviews", map[string]interface{}{
		"userId":     userID,
		"imdbId":     "tt0111161",
		"rating":     9,
		"reviewText": "timeless",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeMap(t, rec)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, userID, body["userId"])
	assert.Equal(t, float64(9), body["rating"])
	assert.Equal(t, "timeless", body["reviewText"])
}

func TestCreateReview_Defaults(t *testing.T) {
	srv := newTestServer(t)
	userID := registerTestUser(t, srv, "abcde", "a@b.com")

	rec := doJSON(t, srv, http.MethodPost, "/reviews", map[string]interface{}{
		"userId": userID,
		"imdbId": "tt0111161",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeMap(t, rec)
	assert.Equal(t, float64(0), body["rating"])
	assert.Equal(t, "", body["reviewText"])
}

func TestCreateReview_UnknownUser(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/reviews", map[string]interface{}{
		"userId":     "ghost",
		"imdbId":     "tt0111161",
		"rating":     10,
		"reviewText": "valid otherwise",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeMap(t, rec)["error"])

	// Отзыв не сохранился.
	list := doJSON(t, srv, http.MethodGet, "/reviews", nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.JSONEq(t, "[]", list.Body.String())
}

func TestCreateReview_MissingFields(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/reviews", map[string]interface{}{"imdbId": "tt1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/reviews", map[string]interface{}{"userId": "u1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetReviewsForFilm_Filter(t *testing.T) {
	srv := newTestServer(t)
	userID := registerTestUser(t, srv, "abcde", "a@b.com")

	for _, imdbID := range []string{"tt1", "tt2", "tt1"} {
		rec := doJSON(t, srv, http.MethodPost, "/reviews", map[string]interface{}{
			"userId": userID,
			"imdbId": imdbID,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, srv, http.MethodGet, "/reviews/film/tt1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var reviews []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reviews))
	require.Len(t, reviews, 2)
	for _, review := range reviews {
		assert.Equal(t, "tt1", review["imdbId"])
	}
}
