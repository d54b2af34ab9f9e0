package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/onmovie/internal/middleware"
	"github.com/user/onmovie/internal/model"
	"github.com/user/onmovie/internal/tmdb"
)

// listItemRequest is the denormalized snapshot a client sends when adding an
// item to a collection. Title and year run through the canonical fallback
// chains so every stored row looks the same regardless of which view shape
// the client held.
type listItemRequest struct {
	Type         string  `json:"type" binding:"required,mediatype"`
	ID           string  `json:"id" binding:"required"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Poster       *string `json:"poster"`
	Rating       *string `json:"rating"`
	Year         string  `json:"year"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
}

// snapshot builds the stored ListEntry from a request. Title falls back
// title -> name -> "Unknown"; year falls back year -> release_date ->
// first_air_date, always the same order for every collection.
func (req *listItemRequest) snapshot(userID int, list string) *model.ListEntry {
	title := req.Title
	if title == "" {
		title = req.Name
	}
	if title == "" {
		title = "Unknown"
	}

	var year *string
	switch {
	case req.Year != "":
		year = &req.Year
	case req.ReleaseDate != "":
		y := tmdb.YearOf(req.ReleaseDate)
		year = &y
	case req.FirstAirDate != "":
		y := tmdb.YearOf(req.FirstAirDate)
		year = &y
	}

	return &model.ListEntry{
		UserID:    userID,
		List:      list,
		MediaType: req.Type,
		ItemID:    req.ID,
		Title:     title,
		Poster:    req.Poster,
		Rating:    req.Rating,
		Year:      year,
	}
}

// AddToList upserts an entry into one collection. Adding the same item twice
// refreshes the snapshot instead of duplicating it. The stored row is
// returned so callers can update their local copy without a full refetch.
func (h *Handler) AddToList(list string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req listItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "invalid list payload: "+err.Error())
			return
		}

		entry := req.snapshot(middleware.GetUserID(c), list)
		if err := h.Repos.List.Upsert(entry); err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		ok(c, Envelope{Result: entry})
	}
}

// RemoveFromList deletes one entry by its (type, id) key.
func (h *Handler) RemoveFromList(list string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if err := h.Repos.List.Remove(userID, list, c.Param("type"), c.Param("id")); err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		ok(c, Envelope{Message: "removed"})
	}
}

// GetList returns one collection newest first.
func (h *Handler) GetList(list string) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := h.Repos.List.ListByUser(middleware.GetUserID(c), list)
		if err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		ok(c, Envelope{Results: entries})
	}
}

// CheckList reports whether one item is in the collection.
func (h *Handler) CheckList(list string) gin.HandlerFunc {
	return func(c *gin.Context) {
		exists, err := h.Repos.List.Contains(middleware.GetUserID(c), list, c.Param("type"), c.Param("id"))
		if err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		ok(c, Envelope{Result: gin.H{"exists": exists}})
	}
}

// ClearHistory bulk-deletes the watch history.
func (h *Handler) ClearHistory(c *gin.Context) {
	if err := h.Repos.List.Clear(middleware.GetUserID(c), model.ListHistory); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, Envelope{Message: "history cleared"})
}

// reviewRequest is a review create/update payload. Ratings are 1-10.
type reviewRequest struct {
	Type      string `json:"type" binding:"required,mediatype"`
	ID        string `json:"id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=10"`
	Review    string `json:"review"`
	ItemTitle string `json:"itemTitle"`
}

// SubmitReview creates or replaces the caller's review of one item. One row
// is the only stored copy; the public listing reads the same row.
func (h *Handler) SubmitReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid review payload: "+err.Error())
		return
	}

	review := &model.Review{
		UserID:    middleware.GetUserID(c),
		MediaType: req.Type,
		ItemID:    req.ID,
		Rating:    req.Rating,
		Body:      req.Review,
		ItemTitle: req.ItemTitle,
		UserName:  middleware.GetUsername(c),
	}
	if err := h.Repos.Review.Upsert(review); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, Envelope{Result: review})
}

// ItemReviews is the public per-item review listing. When the caller is
// logged in, their own review is additionally returned in the result slot.
func (h *Handler) ItemReviews(c *gin.Context) {
	reviews, err := h.Repos.Review.ListByItem(c.Param("type"), c.Param("id"))
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	env := Envelope{Results: reviews}
	if userID := middleware.GetUserID(c); userID != 0 {
		if mine, err := h.Repos.Review.FindByUserAndItem(userID, c.Param("type"), c.Param("id")); err == nil && mine != nil {
			env.Result = mine
		}
	}
	ok(c, env)
}

// MyReviews lists everything the caller has reviewed.
func (h *Handler) MyReviews(c *gin.Context) {
	reviews, err := h.Repos.Review.ListByUser(middleware.GetUserID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, Envelope{Results: reviews})
}

// MyReviewForItem returns the caller's review of one item, if any.
func (h *Handler) MyReviewForItem(c *gin.Context) {
	review, err := h.Repos.Review.FindByUserAndItem(middleware.GetUserID(c), c.Param("type"), c.Param("id"))
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if review == nil {
		fail(c, http.StatusNotFound, "review not found")
		return
	}
	ok(c, Envelope{Result: review})
}

// DeleteReview removes the caller's review of one item.
func (h *Handler) DeleteReview(c *gin.Context) {
	if err := h.Repos.Review.Delete(middleware.GetUserID(c), c.Param("type"), c.Param("id")); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, Envelope{Message: "review deleted"})
}
