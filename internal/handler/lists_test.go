package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/onmovie/internal/config"
	"github.com/user/onmovie/internal/handler"
	"github.com/user/onmovie/internal/middleware"
	"github.com/user/onmovie/internal/model"
	"github.com/user/onmovie/internal/repository"
	"github.com/user/onmovie/internal/router"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newAPIServer builds the route tree over an in-memory database. The catalog
// service stays nil; these tests only exercise the store-backed routes.
func newAPIServer(t *testing.T) (*gin.Engine, *repository.Repositories) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	repos := repository.NewRepositories(db)

	h := handler.NewHandler(repos, &config.Config{AppSecret: "test-secret", JWTExpiry: time.Hour}, nil)

	r := gin.New()
	router.RegisterRoutes(r, h)
	return r, repos
}

func TestItemReviewsAnnotatesOwnReview(t *testing.T) {
	r, repos := newAPIServer(t)

	require.NoError(t, repos.Review.Upsert(&model.Review{
		UserID: 1, MediaType: "movie", ItemID: "603", Rating: 9, Body: "great", UserName: "neo",
	}))
	require.NoError(t, repos.Review.Upsert(&model.Review{
		UserID: 2, MediaType: "movie", ItemID: "603", Rating: 6, Body: "fine", UserName: "smith",
	}))

	type reviewsEnvelope struct {
		Status  bool           `json:"status"`
		Results []model.Review `json:"results"`
		Result  *model.Review  `json:"result"`
	}

	// Anonymous callers get the listing only.
	w := doRequest(r, http.MethodGet, "/reviews/movie/603")
	require.Equal(t, http.StatusOK, w.Code)

	var anon reviewsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &anon))
	assert.True(t, anon.Status)
	assert.Len(t, anon.Results, 2)
	assert.Nil(t, anon.Result)

	// A logged-in caller additionally gets their own review singled out.
	token, err := middleware.GenerateToken(1, "neo@example.com", "neo", "user", "test-secret", time.Hour)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reviews/movie/603", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var mine reviewsEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mine))
	assert.Len(t, mine.Results, 2)
	require.NotNil(t, mine.Result)
	assert.Equal(t, 1, mine.Result.UserID)
	assert.Equal(t, 9, mine.Result.Rating)
}

func TestListRoutesRequireLogin(t *testing.T) {
	r, _ := newAPIServer(t)

	w := doRequest(r, http.MethodGet, "/api/favorites")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "login required")
}
