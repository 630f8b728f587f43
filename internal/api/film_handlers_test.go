// internal/api/film_handlers_test.go
package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFilm_CreatesThenReturnsExisting(t *testing.T) {
	srv := newTestServer(t)

	first := doJSON(t, srv, http.MethodPost, "/films", map[string]string{
		"imdbId": "tt0111161",
		"title":  "The Shawshank Redemption",
		"year":   "1994",
	})
	require.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, "The Shawshank Redemption", decodeMap(t, first)["title"])

	// Повторный запрос с тем же imdbId, но другим title: 200 и
	// первая запись без изменений.
	second := doJSON(t, srv, http.MethodPost, "/films", map[string]string{
		"imdbId": "tt0111161",
		"title":  "Some Other Title",
	})
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "The Shawshank Redemption", decodeMap(t, second)["title"])

	get := doJSON(t, srv, http.MethodGet, "/films/tt0111161", nil)
	require.Equal(t, http.StatusOK, get.Code)
	assert.Equal(t, "The Shawshank Redemption", decodeMap(t, get)["title"])
}

func TestCreateFilm_MissingRequiredFields(t *testing.T) {
	srv := newTestServer(t)

	noImdbID := doJSON(t, srv, http.MethodPost, "/films", map[string]string{"title": "No ID"})
	assert.Equal(t, http.StatusBadRequest, noImdbID.Code)

	noTitle := doJSON(t, srv, http.MethodPost, "/films", map[string]string{"imdbId": "tt1"})
	assert.Equal(t, http.StatusBadRequest, noTitle.Code)
}

func TestCreateFilm_OptionalFieldsDefaultToEmpty(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/films", map[string]string{
		"imdbId": "tt0468569",
		"title":  "The Dark Knight",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeMap(t, rec)
	assert.Equal(t, "", body["year"])
	assert.Equal(t, "", body["poster"])
	assert.Equal(t, "", body["plot"])
	assert.Equal(t, "", body["director"])
}

func TestListFilms(t *testing.T) {
	srv := newTestServer(t)

	empty := doJSON(t, srv, http.MethodGet, "/films", nil)
	require.Equal(t, http.StatusOK, empty.Code)
	assert.JSONEq(t, "[]", empty.Body.String())

	doJSON(t, srv, http.MethodPost, "/films", map[string]string{"imdbId": "tt1", "title": "One"})
	doJSON(t, srv, http.MethodPost, "/films", map[string]string{"imdbId": "tt2", "title": "Two"})

	rec := doJSON(t, srv, http.MethodGet, "/films", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var films []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &films))
	require.Len(t, films, 2)
	assert.Equal(t, "One", films[0]["title"])
	assert.Equal(t, "Two", films[1]["title"])
}

func TestGetFilm_NotFound(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/films/tt9999999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Film not found", decodeMap(t, rec)["error"])
}
