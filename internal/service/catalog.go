package service

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/user/onmovie/internal/model"
	"github.com/user/onmovie/internal/tmdb"
	"golang.org/x/sync/singleflight"
)

// movieCategories maps the public route segments to upstream collections.
var movieCategories = map[string]string{
	"latest":    "now_playing",
	"popular":   "popular",
	"top-rated": "top_rated",
	"upcoming":  "upcoming",
}

var seriesCategories = map[string]string{
	"latest":    "on_the_air",
	"popular":   "popular",
	"top-rated": "top_rated",
}

// Page is a normalized listing plus the upstream paging passed through
// verbatim. Paginated requests are never cached; every call is a fresh
// upstream fetch.
type Page struct {
	Items        []model.CatalogItem
	CurrentPage  int
	TotalPages   int
	TotalResults int
}

// CatalogService orchestrates upstream fetches and normalization. It keeps
// no catalog state; only the static genre dictionaries sit in a TTL cache,
// and singleflight collapses concurrent identical detail fetches.
type CatalogService struct {
	client *tmdb.Client
	norm   *tmdb.Normalizer
	group  singleflight.Group
	genres *cache.Cache
}

// NewCatalogService creates the catalog service.
func NewCatalogService(client *tmdb.Client, norm *tmdb.Normalizer) *CatalogService {
	return &CatalogService{
		client: client,
		norm:   norm,
		genres: cache.New(6*time.Hour, 12*time.Hour),
	}
}

// List fetches one page of a movie or series listing.
func (s *CatalogService) List(ctx context.Context, mediaType, category string, page int) (*Page, error) {
	var (
		resp *tmdb.PagedResponse
		err  error
	)
	if mediaType == model.MediaTypeSeries {
		resp, err = s.client.SeriesList(ctx, seriesCategories[category], page)
	} else {
		resp, err = s.client.MovieList(ctx, movieCategories[category], page)
	}
	if err != nil {
		return nil, err
	}
	return &Page{
		Items:        s.norm.FormatPage(resp, mediaType),
		CurrentPage:  page,
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
	}, nil
}

// ByGenre fetches one page filtered by genre id.
func (s *CatalogService) ByGenre(ctx context.Context, mediaType, genreID string, page int) (*Page, error) {
	resp, err := s.client.DiscoverByGenre(ctx, mediaType, genreID, page)
	if err != nil {
		return nil, err
	}
	return &Page{
		Items:        s.norm.FormatPage(resp, mediaType),
		CurrentPage:  page,
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
	}, nil
}

// Trending fetches the day or week trending window.
func (s *CatalogService) Trending(ctx context.Context, mediaType, window string) (*Page, error) {
	resp, err := s.client.Trending(ctx, mediaType, window)
	if err != nil {
		return nil, err
	}
	return &Page{
		Items:       s.norm.FormatPage(resp, mediaType),
		CurrentPage: resp.Page,
		TotalPages:  resp.TotalPages,
	}, nil
}

// Detail fetches and normalizes one item. Concurrent requests for the same
// item share a single upstream call.
func (s *CatalogService) Detail(ctx context.Context, mediaType, id string) (*model.CatalogDetail, error) {
	val, err, _ := s.group.Do(mediaType+":"+id, func() (interface{}, error) {
		// The flight is shared by every concurrent caller of this key, so
		// it must not die with the one request that happened to start it.
		fctx := context.WithoutCancel(ctx)
		if mediaType == model.MediaTypeSeries {
			resp, err := s.client.SeriesDetail(fctx, id)
			if err != nil {
				return nil, err
			}
			return s.norm.SeriesDetail(resp), nil
		}
		resp, err := s.client.MovieDetail(fctx, id)
		if err != nil {
			return nil, err
		}
		return s.norm.MovieDetail(resp), nil
	})
	if err != nil {
		return nil, err
	}
	return val.(*model.CatalogDetail), nil
}

// Credits fetches and normalizes the cast/crew for one item.
func (s *CatalogService) Credits(ctx context.Context, mediaType, id string) (*model.Credits, error) {
	resp, err := s.client.Credits(ctx, mediaType, id)
	if err != nil {
		return nil, err
	}
	return s.norm.Credits(resp, mediaType), nil
}

// Related fetches the similar or recommendations list for one item, capped
// at the related limit with upstream ordering preserved.
func (s *CatalogService) Related(ctx context.Context, mediaType, id, relation string) ([]model.CatalogItem, error) {
	resp, err := s.client.Related(ctx, mediaType, id, relation)
	if err != nil {
		return nil, err
	}
	return s.norm.FormatRelated(resp, mediaType), nil
}

// Genres returns the genre dictionary for one content type. The dictionary
// is static upstream data, so it sits in the TTL cache.
func (s *CatalogService) Genres(ctx context.Context, mediaType string) ([]model.Genre, error) {
	if cached, ok := s.genres.Get(mediaType); ok {
		return cached.([]model.Genre), nil
	}
	resp, err := s.client.GenreList(ctx, mediaType)
	if err != nil {
		return nil, err
	}
	genres := s.norm.Genres(resp)
	s.genres.Set(mediaType, genres, cache.DefaultExpiration)
	return genres, nil
}

// Search runs the combined movie+series search. Person rows are dropped and
// each result carries its content type.
func (s *CatalogService) Search(ctx context.Context, query string, page int) (*Page, error) {
	resp, err := s.client.SearchMulti(ctx, query, page)
	if err != nil {
		return nil, err
	}
	return &Page{
		Items:        s.norm.FormatSearch(resp),
		CurrentPage:  resp.Page,
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
	}, nil
}

// Person fetches and normalizes a person detail page.
func (s *CatalogService) Person(ctx context.Context, id string) (*model.PersonDetail, error) {
	resp, err := s.client.Person(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.norm.Person(resp), nil
}
