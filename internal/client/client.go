// Package client is the Go consumer of the aggregation API. It decodes the
// single typed envelope every endpoint shares, and keeps list views usable
// when the service is down by substituting a static sample dataset.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/user/onmovie/internal/model"
	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned for 404 detail lookups.
var ErrNotFound = errors.New("not found")

// Envelope mirrors the server's response envelope with typed payload slots.
// Result stays raw because its shape depends on the endpoint.
type Envelope struct {
	Status       bool                `json:"status"`
	Message      string              `json:"message"`
	CurrentPage  int                 `json:"current_page"`
	TotalPages   int                 `json:"total_pages"`
	TotalResults int                 `json:"total_results"`
	Movies       []model.CatalogItem `json:"movies"`
	Series       []model.CatalogItem `json:"series"`
	Results      json.RawMessage     `json:"results"`
	Result       json.RawMessage     `json:"result"`
	Cast         []model.CastMember  `json:"cast"`
	Crew         []model.CrewMember  `json:"crew"`
}

// ListResult is a listing page. Sample marks fallback data so the UI can
// flag that it is not live content.
type ListResult struct {
	Items       []model.CatalogItem
	CurrentPage int
	TotalPages  int
	Sample      bool
}

// DetailBundle is everything a detail page renders. Credits, Similar and
// Recommendations are best-effort: their fetch failures are logged and the
// fields left empty.
type DetailBundle struct {
	Detail          *model.CatalogDetail
	Credits         *model.Credits
	Similar         []model.CatalogItem
	Recommendations []model.CatalogItem
}

// Client calls the aggregation service.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// get fetches one endpoint and decodes the envelope. A failure envelope
// (status:false) is an error carrying the server's message; a 404 maps to
// ErrNotFound.
func (c *Client) get(ctx context.Context, path string, params url.Values) (*Envelope, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if !env.Status {
		if env.Message != "" {
			return nil, errors.New(env.Message)
		}
		return nil, fmt.Errorf("request failed: status %d", resp.StatusCode)
	}
	return &env, nil
}

func pageParams(page int) url.Values {
	return url.Values{"page": []string{strconv.Itoa(page)}}
}

// routeSegment maps a content type to its path segment on the service:
// "movie" routes live under /movies, "series" routes under /series.
func routeSegment(mediaType string) string {
	if mediaType == model.MediaTypeSeries {
		return "series"
	}
	return "movies"
}

// listWithFallback fetches a listing and substitutes the sample dataset when
// the live fetch fails or comes back empty. The fallback never retries and
// never reconciles; the next call hits the live source again.
func (c *Client) listWithFallback(ctx context.Context, path string, params url.Values, mediaType string) *ListResult {
	env, err := c.get(ctx, path, params)
	if err != nil {
		log.Printf("[client] %s unavailable, serving sample data: %v", path, err)
		return sampleList(mediaType)
	}

	items := env.Movies
	if mediaType == model.MediaTypeSeries {
		items = env.Series
	}
	if len(items) == 0 {
		return sampleList(mediaType)
	}
	return &ListResult{
		Items:       items,
		CurrentPage: env.CurrentPage,
		TotalPages:  env.TotalPages,
	}
}

func sampleList(mediaType string) *ListResult {
	items := SampleMovies
	if mediaType == model.MediaTypeSeries {
		items = SampleSeries
	}
	return &ListResult{
		Items:       items,
		CurrentPage: 1,
		TotalPages:  1,
		Sample:      true,
	}
}

// Movies fetches a movie listing (latest, popular, top-rated, upcoming),
// falling back to sample data.
func (c *Client) Movies(ctx context.Context, category string, page int) *ListResult {
	return c.listWithFallback(ctx, "/movies/"+category, pageParams(page), model.MediaTypeMovie)
}

// Series fetches a series listing, falling back to sample data.
func (c *Client) Series(ctx context.Context, category string, page int) *ListResult {
	return c.listWithFallback(ctx, "/series/"+category, pageParams(page), model.MediaTypeSeries)
}

// MoviesByGenre fetches a genre-filtered movie listing with fallback.
func (c *Client) MoviesByGenre(ctx context.Context, genreID string, page int) *ListResult {
	return c.listWithFallback(ctx, "/movies/genre/"+genreID, pageParams(page), model.MediaTypeMovie)
}

// SeriesByGenre fetches a genre-filtered series listing with fallback.
func (c *Client) SeriesByGenre(ctx context.Context, genreID string, page int) *ListResult {
	return c.listWithFallback(ctx, "/series/genre/"+genreID, pageParams(page), model.MediaTypeSeries)
}

// Trending fetches the day/week trending window with fallback.
func (c *Client) Trending(ctx context.Context, mediaType, window string) *ListResult {
	params := url.Values{"time": []string{window}}
	return c.listWithFallback(ctx, "/trending/"+routeSegment(mediaType), params, mediaType)
}

// Genres fetches the genre dictionary. No fallback: a missing dictionary
// just hides the filter UI.
func (c *Client) Genres(ctx context.Context, mediaType string) ([]model.Genre, error) {
	path := "/movies/genres"
	if mediaType == model.MediaTypeSeries {
		path = "/series/genres"
	}
	env, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	var genres []model.Genre
	if err := json.Unmarshal(env.Results, &genres); err != nil {
		return nil, fmt.Errorf("decode genres: %w", err)
	}
	return genres, nil
}

// Search runs the combined search. Searches have no sample fallback; an
// empty result is a real answer.
func (c *Client) Search(ctx context.Context, query string, page int) ([]model.CatalogItem, error) {
	params := pageParams(page)
	params.Set("s", query)
	env, err := c.get(ctx, "/search", params)
	if err != nil {
		return nil, err
	}
	var items []model.CatalogItem
	if err := json.Unmarshal(env.Results, &items); err != nil {
		return nil, fmt.Errorf("decode search results: %w", err)
	}
	return items, nil
}

// Detail fetches the full single-item shape.
func (c *Client) Detail(ctx context.Context, mediaType, id string) (*model.CatalogDetail, error) {
	env, err := c.get(ctx, "/"+routeSegment(mediaType)+"/"+id+"/stream", nil)
	if err != nil {
		return nil, err
	}
	var detail model.CatalogDetail
	if err := json.Unmarshal(env.Result, &detail); err != nil {
		return nil, fmt.Errorf("decode detail: %w", err)
	}
	return &detail, nil
}

// Credits fetches the cast/crew for one item.
func (c *Client) Credits(ctx context.Context, mediaType, id string) (*model.Credits, error) {
	env, err := c.get(ctx, "/"+routeSegment(mediaType)+"/"+id+"/credits", nil)
	if err != nil {
		return nil, err
	}
	return &model.Credits{Cast: env.Cast, Crew: env.Crew}, nil
}

// Related fetches the similar or recommendations list for one item.
func (c *Client) Related(ctx context.Context, mediaType, id, relation string) ([]model.CatalogItem, error) {
	env, err := c.get(ctx, "/"+routeSegment(mediaType)+"/"+id+"/"+relation, nil)
	if err != nil {
		return nil, err
	}
	if mediaType == model.MediaTypeSeries {
		return env.Series, nil
	}
	return env.Movies, nil
}

// Person fetches a person detail.
func (c *Client) Person(ctx context.Context, id string) (*model.PersonDetail, error) {
	env, err := c.get(ctx, "/person/"+id, nil)
	if err != nil {
		return nil, err
	}
	var person model.PersonDetail
	if err := json.Unmarshal(env.Result, &person); err != nil {
		return nil, fmt.Errorf("decode person: %w", err)
	}
	return &person, nil
}

// FetchDetailBundle loads everything a detail page needs in one concurrent
// batch. The detail itself is the primary fetch and its error fails the
// bundle; credits/similar/recommendations failures are logged and swallowed
// so the page still renders. Cancelling ctx aborts all in-flight fetches.
func (c *Client) FetchDetailBundle(ctx context.Context, mediaType, id string) (*DetailBundle, error) {
	bundle := &DetailBundle{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		detail, err := c.Detail(gctx, mediaType, id)
		if err != nil {
			return err
		}
		bundle.Detail = detail
		return nil
	})
	g.Go(func() error {
		credits, err := c.Credits(gctx, mediaType, id)
		if err != nil {
			log.Printf("[client] credits fetch failed for %s/%s: %v", mediaType, id, err)
			return nil
		}
		bundle.Credits = credits
		return nil
	})
	g.Go(func() error {
		similar, err := c.Related(gctx, mediaType, id, "similar")
		if err != nil {
			log.Printf("[client] similar fetch failed for %s/%s: %v", mediaType, id, err)
			return nil
		}
		bundle.Similar = similar
		return nil
	})
	g.Go(func() error {
		recs, err := c.Related(gctx, mediaType, id, "recommendations")
		if err != nil {
			log.Printf("[client] recommendations fetch failed for %s/%s: %v", mediaType, id, err)
			return nil
		}
		bundle.Recommendations = recs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bundle, nil
}
