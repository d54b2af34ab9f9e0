package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/onmovie/internal/model"
)

func TestMoviesFallsBackWhenServiceIsDown(t *testing.T) {
	// Point at a server that is already closed to force a transport error.
	stub := httptest.NewServer(http.NotFoundHandler())
	stub.Close()

	c := New(stub.URL)
	result := c.Movies(context.Background(), "popular", 1)

	require.NotNil(t, result)
	assert.True(t, result.Sample)
	assert.Equal(t, SampleMovies, result.Items)
	assert.Equal(t, 1, result.CurrentPage)
	assert.Equal(t, 1, result.TotalPages)
}

func TestSeriesFallsBackOnEmptyListing(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":       true,
			"current_page": 1,
			"total_pages":  1,
			"series":       []model.CatalogItem{},
		})
	}))
	t.Cleanup(stub.Close)

	result := New(stub.URL).Series(context.Background(), "popular", 1)

	require.NotNil(t, result)
	assert.True(t, result.Sample)
	assert.Equal(t, SampleSeries, result.Items)
}

func TestMoviesPassesThroughLiveData(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movies/top-rated", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":       true,
			"current_page": 3,
			"total_pages":  40,
			"movies": []model.CatalogItem{
				{ID: 238, Slug: "238", Title: "The Godfather", Rating: "8.7", Year: "1972"},
			},
		})
	}))
	t.Cleanup(stub.Close)

	result := New(stub.URL).Movies(context.Background(), "top-rated", 3)

	require.NotNil(t, result)
	assert.False(t, result.Sample)
	assert.Equal(t, 3, result.CurrentPage)
	assert.Equal(t, 40, result.TotalPages)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "The Godfather", result.Items[0].Title)
}

// TestSeriesRequestPaths pins the exact paths the series half of the client
// requests. The series segment is not a pluralization of the content type, so
// naive "+s" building would hit routes the service never registers.
func TestSeriesRequestPaths(t *testing.T) {
	var mu sync.Mutex
	var paths []string
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": true,
			"result": model.CatalogDetail{ID: 1399, Slug: "1399", Title: "Game of Thrones"},
			"series": []model.CatalogItem{{ID: 1399, Title: "Game of Thrones"}},
		})
	}))
	t.Cleanup(stub.Close)

	c := New(stub.URL)
	ctx := context.Background()

	detail, err := c.Detail(ctx, model.MediaTypeSeries, "1399")
	require.NoError(t, err)
	assert.Equal(t, "Game of Thrones", detail.Title)

	_, err = c.Credits(ctx, model.MediaTypeSeries, "1399")
	require.NoError(t, err)

	related, err := c.Related(ctx, model.MediaTypeSeries, "1399", "similar")
	require.NoError(t, err)
	require.Len(t, related, 1)

	trending := c.Trending(ctx, model.MediaTypeSeries, "day")
	assert.False(t, trending.Sample, "a reachable service must never be shadowed by sample data")

	assert.Equal(t, []string{
		"/series/1399/stream",
		"/series/1399/credits",
		"/series/1399/similar",
		"/trending/series",
	}, paths)
}

func TestDetailNotFound(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  false,
			"message": "Movie not found",
		})
	}))
	t.Cleanup(stub.Close)

	detail, err := New(stub.URL).Detail(context.Background(), model.MediaTypeMovie, "999999")

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFailureEnvelopeCarriesServerMessage(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  false,
			"message": "Missing search query (?s=)",
		})
	}))
	t.Cleanup(stub.Close)

	_, err := New(stub.URL).Search(context.Background(), "", 1)

	require.Error(t, err)
	assert.Equal(t, "Missing search query (?s=)", err.Error())
}

func TestFetchDetailBundleSurvivesSecondaryFailures(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/movies/603/stream":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"status": true,
				"result": model.CatalogDetail{ID: 603, Slug: "603", Title: "The Matrix"},
			})
		case "/movies/603/similar":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"status": true,
				"movies": []model.CatalogItem{{ID: 604, Title: "The Matrix Reloaded"}},
			})
		case "/movies/603/credits", "/movies/603/recommendations":
			// Credits and recommendations are down.
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  false,
				"message": "upstream error",
			})
		default:
			t.Errorf("unexpected request path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(stub.Close)

	bundle, err := New(stub.URL).FetchDetailBundle(context.Background(), model.MediaTypeMovie, "603")

	require.NoError(t, err)
	require.NotNil(t, bundle.Detail)
	assert.Equal(t, "The Matrix", bundle.Detail.Title)
	assert.Nil(t, bundle.Credits)
	require.Len(t, bundle.Similar, 1)
	assert.Empty(t, bundle.Recommendations)
}

func TestFetchDetailBundleFailsWithoutDetail(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/series/1/stream" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  false,
				"message": "Series not found",
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"status": true})
	}))
	t.Cleanup(stub.Close)

	bundle, err := New(stub.URL).FetchDetailBundle(context.Background(), model.MediaTypeSeries, "1")

	assert.Nil(t, bundle)
	assert.ErrorIs(t, err, ErrNotFound)
}
