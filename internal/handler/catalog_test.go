package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/onmovie/internal/config"
	"github.com/user/onmovie/internal/handler"
	"github.com/user/onmovie/internal/model"
	"github.com/user/onmovie/internal/router"
	"github.com/user/onmovie/internal/service"
	"github.com/user/onmovie/internal/tmdb"
)

// newCatalogServer builds the full route tree backed by a stubbed upstream.
// The catalog endpoints never touch the database, so the repositories stay
// nil.
func newCatalogServer(t *testing.T, upstream http.Handler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stub := httptest.NewServer(upstream)
	t.Cleanup(stub.Close)

	client := tmdb.NewClient("test-key", stub.URL, "")
	norm := tmdb.NewNormalizer("https://image.example/t/p/w500")
	catalog := service.NewCatalogService(client, norm)

	h := handler.NewHandler(nil, &config.Config{AppSecret: "test-secret"}, catalog)

	r := gin.New()
	router.RegisterRoutes(r, h)
	return r
}

func doRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestPopularMoviesEndToEnd(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/movie/popular", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"page":        2,
			"total_pages": 10,
			"results": []map[string]interface{}{
				{"id": 1, "title": "First", "poster_path": "/a.jpg", "vote_average": 7.512, "release_date": "2020-01-02"},
				{"id": 2, "title": "Second", "vote_average": 0},
				{"id": 3, "name": "Only Name", "poster_path": "/c.jpg", "vote_average": 8, "release_date": "1999-03-05"},
			},
		})
	})

	w := doRequest(newCatalogServer(t, upstream), http.MethodGet, "/movies/popular?page=2")

	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Status      bool                `json:"status"`
		Developers  *model.Developers   `json:"developers"`
		CurrentPage int                 `json:"current_page"`
		TotalPages  int                 `json:"total_pages"`
		Movies      []model.CatalogItem `json:"movies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	assert.True(t, env.Status)
	require.NotNil(t, env.Developers)
	assert.Equal(t, "TheMovieDB.org", env.Developers.Source)
	assert.Equal(t, 2, env.CurrentPage)
	assert.Equal(t, 10, env.TotalPages)
	require.Len(t, env.Movies, 3)

	first := env.Movies[0]
	assert.Equal(t, "First", first.Title)
	require.NotNil(t, first.Poster)
	assert.Equal(t, "https://image.example/t/p/w500/a.jpg", *first.Poster)
	assert.Equal(t, "7.5", first.Rating)
	assert.Equal(t, "2020", first.Year)

	second := env.Movies[1]
	assert.Nil(t, second.Poster)
	assert.Equal(t, "N/A", second.Rating)
	assert.Equal(t, "N/A", second.Year)

	third := env.Movies[2]
	assert.Equal(t, "Only Name", third.Title)
	assert.Equal(t, "1999", third.Year)
}

func TestEmptyListingKeepsArrayKey(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"page":        1,
			"total_pages": 0,
			"results":     []map[string]interface{}{},
		})
	})

	w := doRequest(newCatalogServer(t, upstream), http.MethodGet, "/movies/popular")

	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	raw, present := payload["movies"]
	require.True(t, present, "an empty page must still carry its array key")
	assert.Equal(t, "[]", string(raw))
}

func TestSearchRequiresQuery(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called without a query")
	})

	w := doRequest(newCatalogServer(t, upstream), http.MethodGet, "/search")

	require.Equal(t, http.StatusBadRequest, w.Code)

	var env handler.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Status)
	assert.Equal(t, "Missing search query (?s=)", env.Message)
}

func TestDetailNotFound(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"status_message": "The resource you requested could not be found."})
	})

	w := doRequest(newCatalogServer(t, upstream), http.MethodGet, "/movies/999999/stream")

	require.Equal(t, http.StatusNotFound, w.Code)

	var env handler.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Status)
	assert.Equal(t, "Movie not found", env.Message)
}

func TestUpstreamFailureIsServerError(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"status_message": "Invalid API key"})
	})

	w := doRequest(newCatalogServer(t, upstream), http.MethodGet, "/movies/latest")

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var env handler.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Status)
	assert.Contains(t, env.Message, "Invalid API key")
}

func TestTrendingRejectsUnknownWindow(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called for an invalid window")
	})

	w := doRequest(newCatalogServer(t, upstream), http.MethodGet, "/trending/movies?time=month")

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSeriesDetailRoute(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tv/1399", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":                 1399,
			"name":               "Game of Thrones",
			"first_air_date":     "2011-04-17",
			"number_of_seasons":  8,
			"number_of_episodes": 73,
			"videos": map[string]interface{}{
				"results": []map[string]interface{}{
					{"key": "abc", "name": "Trailer #1", "type": "Trailer"},
					{"key": "def", "name": "Clip", "type": "Clip"},
				},
			},
		})
	})

	w := doRequest(newCatalogServer(t, upstream), http.MethodGet, "/series/1399")

	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Status bool                 `json:"status"`
		Result *model.CatalogDetail `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotNil(t, env.Result)
	assert.Equal(t, "Game of Thrones", env.Result.Title)
	assert.Equal(t, 8, env.Result.Seasons)
	require.Len(t, env.Result.Stream, 1)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", env.Result.Stream[0].Href)
}

func TestCreditsRoute(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tv/1399/credits", r.URL.Path)
		cast := make([]map[string]interface{}, 0, 25)
		for i := 0; i < 25; i++ {
			cast = append(cast, map[string]interface{}{"id": i, "name": "actor", "character": "role", "order": i})
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"cast": cast,
			"crew": []map[string]interface{}{
				{"id": 100, "name": "a", "job": "Creator"},
				{"id": 101, "name": "b", "job": "Stunt Coordinator"},
			},
		})
	})

	w := doRequest(newCatalogServer(t, upstream), http.MethodGet, "/series/1399/credits")

	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Cast []model.CastMember `json:"cast"`
		Crew []model.CrewMember `json:"crew"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Len(t, env.Cast, 20)
	require.Len(t, env.Crew, 1)
	assert.Equal(t, "Creator", env.Crew[0].Job)
}
