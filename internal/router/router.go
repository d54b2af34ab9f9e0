package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/onmovie/internal/handler"
	"github.com/user/onmovie/internal/middleware"
	"github.com/user/onmovie/internal/model"
)

// RegisterRoutes wires the full HTTP surface. Trailing-slash variants are
// normalized by gin's RedirectTrailingSlash, so every path has exactly one
// handler.
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", h.Welcome)

	// ==================== Catalog: movies ====================
	movies := r.Group("/movies")
	{
		movies.GET("/latest", h.Listing(model.MediaTypeMovie, "latest"))
		movies.GET("/popular", h.Listing(model.MediaTypeMovie, "popular"))
		movies.GET("/top-rated", h.Listing(model.MediaTypeMovie, "top-rated"))
		movies.GET("/upcoming", h.Listing(model.MediaTypeMovie, "upcoming"))
		movies.GET("/genres", h.Genres(model.MediaTypeMovie))
		movies.GET("/genre/:genre", h.ByGenre(model.MediaTypeMovie))
		// /stream is historical: it returns the detail object, not video.
		movies.GET("/:id/stream", h.Detail(model.MediaTypeMovie))
		movies.GET("/:id/credits", h.Credits(model.MediaTypeMovie))
		movies.GET("/:id/similar", h.Related(model.MediaTypeMovie, "similar"))
		movies.GET("/:id/recommendations", h.Related(model.MediaTypeMovie, "recommendations"))
	}

	// ==================== Catalog: series ====================
	series := r.Group("/series")
	{
		series.GET("/latest", h.Listing(model.MediaTypeSeries, "latest"))
		series.GET("/popular", h.Listing(model.MediaTypeSeries, "popular"))
		series.GET("/top-rated", h.Listing(model.MediaTypeSeries, "top-rated"))
		series.GET("/genres", h.Genres(model.MediaTypeSeries))
		series.GET("/genre/:genre", h.ByGenre(model.MediaTypeSeries))
		series.GET("/:id", h.Detail(model.MediaTypeSeries))
		series.GET("/:id/stream", h.Detail(model.MediaTypeSeries))
		series.GET("/:id/credits", h.Credits(model.MediaTypeSeries))
		series.GET("/:id/similar", h.Related(model.MediaTypeSeries, "similar"))
		series.GET("/:id/recommendations", h.Related(model.MediaTypeSeries, "recommendations"))
	}

	// ==================== Trending / search / people ====================
	r.GET("/trending/movies", h.Trending(model.MediaTypeMovie))
	r.GET("/trending/series", h.Trending(model.MediaTypeSeries))
	r.GET("/search", h.Search)
	r.GET("/person/:id", h.Person)

	// Public per-item review listing; a logged-in caller additionally gets
	// their own review singled out.
	r.GET("/reviews/:type/:id", middleware.OptionalAuth(h.Config.AppSecret), h.ItemReviews)

	// ==================== Auth ====================
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", middleware.RequireAuth(h.Config.AppSecret), h.Me)
	}

	// ==================== User lists (login required) ====================
	api := r.Group("/api")
	api.Use(middleware.RequireAuth(h.Config.AppSecret))
	{
		for _, list := range []string{model.ListFavorites, model.ListWatchlist, model.ListHistory} {
			api.POST("/"+list, h.AddToList(list))
			api.GET("/"+list, h.GetList(list))
			api.GET("/"+list+"/:type/:id", h.CheckList(list))
			api.DELETE("/"+list+"/:type/:id", h.RemoveFromList(list))
		}
		api.DELETE("/history", h.ClearHistory)

		api.POST("/reviews", h.SubmitReview)
		api.GET("/reviews", h.MyReviews)
		api.GET("/reviews/:type/:id", h.MyReviewForItem)
		api.DELETE("/reviews/:type/:id", h.DeleteReview)
	}
}
