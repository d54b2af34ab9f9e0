package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/onmovie/internal/model"
	"github.com/user/onmovie/internal/service"
	"github.com/user/onmovie/internal/tmdb"
)

// pageOf reads the page query parameter, defaulting to 1.
func pageOf(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// listEnvelope places a listing in the movies or series slot depending on
// the content type.
func listEnvelope(mediaType string, page *service.Page) Envelope {
	env := Envelope{
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}
	items := page.Items
	if items == nil {
		items = []model.CatalogItem{}
	}
	if mediaType == model.MediaTypeSeries {
		env.Series = &items
	} else {
		env.Movies = &items
	}
	return env
}

// Listing serves one paginated catalog listing (latest, popular, top-rated,
// upcoming). Paging is the upstream's, passed through verbatim.
func (h *Handler) Listing(mediaType, category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := h.Catalog.List(c.Request.Context(), mediaType, category, pageOf(c))
		if err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		ok(c, listEnvelope(mediaType, page))
	}
}

// ByGenre serves a genre-filtered listing.
func (h *Handler) ByGenre(mediaType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := h.Catalog.ByGenre(c.Request.Context(), mediaType, c.Param("genre"), pageOf(c))
		if err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		ok(c, listEnvelope(mediaType, page))
	}
}

// Genres serves the genre dictionary for one content type.
func (h *Handler) Genres(mediaType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		genres, err := h.Catalog.Genres(c.Request.Context(), mediaType)
		if err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		ok(c, Envelope{Results: genres})
	}
}

// Trending serves the day/week trending window.
func (h *Handler) Trending(mediaType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		window := c.DefaultQuery("time", "day")
		if window != "day" && window != "week" {
			fail(c, http.StatusBadRequest, "time must be day or week")
			return
		}
		page, err := h.Catalog.Trending(c.Request.Context(), mediaType, window)
		if err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		ok(c, listEnvelope(mediaType, page))
	}
}

// Detail serves the full single-item shape. The /stream suffix on the route
// is historical; no video data is streamed. An unknown id is a 404, not an
// upstream failure.
func (h *Handler) Detail(mediaType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := h.Catalog.Detail(c.Request.Context(), mediaType, c.Param("id"))
		if errors.Is(err, tmdb.ErrNotFound) {
			if mediaType == model.MediaTypeSeries {
				fail(c, http.StatusNotFound, "Series not found")
			} else {
				fail(c, http.StatusNotFound, "Movie not found")
			}
			return
		}
		if err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		ok(c, Envelope{Result: detail})
	}
}

// Credits serves the filtered cast/crew for one item.
func (h *Handler) Credits(mediaType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		credits, err := h.Catalog.Credits(c.Request.Context(), mediaType, c.Param("id"))
		if errors.Is(err, tmdb.ErrNotFound) {
			fail(c, http.StatusNotFound, "Credits not found")
			return
		}
		if err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		ok(c, Envelope{Cast: credits.Cast, Crew: credits.Crew})
	}
}

// Related serves the similar or recommendations list, capped at 12 entries
// in upstream order.
func (h *Handler) Related(mediaType, relation string) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.Catalog.Related(c.Request.Context(), mediaType, c.Param("id"), relation)
		if err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		if items == nil {
			items = []model.CatalogItem{}
		}
		env := Envelope{}
		if mediaType == model.MediaTypeSeries {
			env.Series = &items
		} else {
			env.Movies = &items
		}
		ok(c, env)
	}
}

// Search serves the combined movie+series search. A missing query is a
// client error.
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("s")
	if query == "" {
		fail(c, http.StatusBadRequest, "Missing search query (?s=)")
		return
	}

	page, err := h.Catalog.Search(c.Request.Context(), query, pageOf(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, Envelope{
		Results:      page.Items,
		CurrentPage:  page.CurrentPage,
		TotalPages:   page.TotalPages,
		TotalResults: page.TotalResults,
	})
}

// Person serves a person detail with known-for filmography.
func (h *Handler) Person(c *gin.Context) {
	person, err := h.Catalog.Person(c.Request.Context(), c.Param("id"))
	if errors.Is(err, tmdb.ErrNotFound) {
		fail(c, http.StatusNotFound, "Person not found")
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, Envelope{Result: person})
}
