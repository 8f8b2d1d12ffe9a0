package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inceptionBody = `{"title":"Inception","genre":"Sci-Fi","category":"movies","year":2010,` +
	`"description":"a heist inside dreams","phrase":"Your mind is the scene of the crime",` +
	`"cardImage":"card.jpg","largePoster":"poster.jpg","rentPrice":3.99,"buyPrice":14.99,"featured":true}`

func createVideo(t *testing.T, h http.Handler, body string) string {
	t.Helper()
	rec := doRequest(t, h, http.MethodPost, "/api/videos", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got videoPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotEmpty(t, got.ID)
	return got.ID
}

func TestVideoCreateAndGet(t *testing.T) {
	h := newTestServer(t).Handler()

	id := createVideo(t, h, inceptionBody)

	rec := doRequest(t, h, http.MethodGet, "/api/videos/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got videoPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Inception", got.Title)
	assert.Equal(t, 2010, got.Year)
	assert.Equal(t, 14.99, got.BuyPrice)
	assert.True(t, got.Featured)
}

func TestVideoGet_NotFound(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := doRequest(t, h, http.MethodGet, "/api/videos/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Video with ID missing not found.", strings.TrimSpace(rec.Body.String()))
}

func TestVideoUpdate(t *testing.T) {
	h := newTestServer(t).Handler()

	id := createVideo(t, h, inceptionBody)

	updated := strings.Replace(inceptionBody, `"featured":true`, `"featured":false`, 1)
	rec := doRequest(t, h, http.MethodPut, "/api/videos/"+id, updated)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got videoPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, id, got.ID)
	assert.False(t, got.Featured)
}

func TestVideoUpdate_NotFound(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := doRequest(t, h, http.MethodPut, "/api/videos/missing", inceptionBody)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Video with ID missing not found.", strings.TrimSpace(rec.Body.String()))
}

func TestVideoDelete(t *testing.T) {
	h := newTestServer(t).Handler()

	id := createVideo(t, h, inceptionBody)

	rec := doRequest(t, h, http.MethodDelete, "/api/videos/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, h, http.MethodDelete, "/api/videos/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cannot delete: Video with ID "+id+" not found.", strings.TrimSpace(rec.Body.String()))
}

func TestVideoQueries(t *testing.T) {
	h := newTestServer(t).Handler()

	createVideo(t, h, inceptionBody)
	createVideo(t, h, `{"title":"Memento","genre":"Thriller","category":"movies","year":2000,`+
		`"rentPrice":2.99,"buyPrice":9.99,"featured":false}`)
	createVideo(t, h, `{"title":"Planet Earth","genre":"Nature","category":"series","year":2006,`+
		`"rentPrice":1.99,"buyPrice":19.99,"featured":true}`)

	tests := []struct {
		name       string
		target     string
		wantTitles []string
	}{
		{"by category", "/api/videos/category?category=movies", []string{"Inception", "Memento"}},
		{"search", "/api/videos/search?title=incep", []string{"Inception"}},
		{"featured", "/api/videos/featured?category=movies", []string{"Inception"}},
		{"featured other category", "/api/videos/featured?category=series", []string{"Planet Earth"}},
		{"search no match", "/api/videos/search?title=zzz", []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodGet, tc.target, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var got []videoPayload
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

			titles := []string{}
			for _, v := range got {
				titles = append(titles, v.Title)
			}
			assert.ElementsMatch(t, tc.wantTitles, titles)
		})
	}
}

func TestVideoList_EmptyIsJSONArray(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := doRequest(t, h, http.MethodGet, "/api/videos", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}
