package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrNotFound is returned when the upstream reports an unknown id. Callers
// surface it as a 404 instead of a generic upstream failure.
var ErrNotFound = errors.New("not found")

// Client talks to the upstream metadata provider. One instance is shared by
// all requests; it holds no per-request state.
type Client struct {
	apiKey   string
	baseURL  string
	language string
	http     *http.Client
}

// NewClient creates an upstream client with a fixed transport timeout.
func NewClient(apiKey, baseURL, language string) *Client {
	return &Client{
		apiKey:   apiKey,
		baseURL:  baseURL,
		language: language,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// get performs one upstream call and decodes the body into target. A 404
// maps to ErrNotFound; any other non-200 carries the upstream message text.
func (c *Client) get(ctx context.Context, path string, params url.Values, target interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		var upstreamErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&upstreamErr); err == nil && upstreamErr.StatusMessage != "" {
			return fmt.Errorf("upstream error: %s", upstreamErr.StatusMessage)
		}
		return fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode upstream response: %w", err)
	}
	return nil
}

func pageParams(page int) url.Values {
	return url.Values{"page": []string{strconv.Itoa(page)}}
}

// MovieList fetches one page of a movie listing. category is the upstream
// collection name: now_playing, popular, top_rated or upcoming.
func (c *Client) MovieList(ctx context.Context, category string, page int) (*PagedResponse, error) {
	var result PagedResponse
	if err := c.get(ctx, "/movie/"+category, pageParams(page), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SeriesList fetches one page of a TV listing (on_the_air, popular, top_rated).
func (c *Client) SeriesList(ctx context.Context, category string, page int) (*PagedResponse, error) {
	var result PagedResponse
	if err := c.get(ctx, "/tv/"+category, pageParams(page), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DiscoverByGenre fetches one page of movies or series filtered by genre id.
func (c *Client) DiscoverByGenre(ctx context.Context, mediaType, genreID string, page int) (*PagedResponse, error) {
	kind := "movie"
	if mediaType == "series" {
		kind = "tv"
	}
	params := pageParams(page)
	params.Set("with_genres", genreID)
	var result PagedResponse
	if err := c.get(ctx, "/discover/"+kind, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Trending fetches the day or week trending window for movies or TV.
func (c *Client) Trending(ctx context.Context, mediaType, window string) (*PagedResponse, error) {
	kind := "movie"
	if mediaType == "series" {
		kind = "tv"
	}
	var result PagedResponse
	if err := c.get(ctx, "/trending/"+kind+"/"+window, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MovieDetail fetches a movie with its video list appended.
func (c *Client) MovieDetail(ctx context.Context, id string) (*DetailResponse, error) {
	params := url.Values{"append_to_response": []string{"videos"}}
	var result DetailResponse
	if err := c.get(ctx, "/movie/"+id, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SeriesDetail fetches a series with its video list appended.
func (c *Client) SeriesDetail(ctx context.Context, id string) (*DetailResponse, error) {
	params := url.Values{"append_to_response": []string{"videos"}}
	var result DetailResponse
	if err := c.get(ctx, "/tv/"+id, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Credits fetches the raw cast and crew for one item.
func (c *Client) Credits(ctx context.Context, mediaType, id string) (*CreditsResponse, error) {
	kind := "movie"
	if mediaType == "series" {
		kind = "tv"
	}
	var result CreditsResponse
	if err := c.get(ctx, "/"+kind+"/"+id+"/credits", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Related fetches the similar or recommendations listing for one item.
// relation is "similar" or "recommendations".
func (c *Client) Related(ctx context.Context, mediaType, id, relation string) (*PagedResponse, error) {
	kind := "movie"
	if mediaType == "series" {
		kind = "tv"
	}
	var result PagedResponse
	if err := c.get(ctx, "/"+kind+"/"+id+"/"+relation, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenreList fetches the movie or TV genre dictionary.
func (c *Client) GenreList(ctx context.Context, mediaType string) (*GenreListResponse, error) {
	kind := "movie"
	if mediaType == "series" {
		kind = "tv"
	}
	var result GenreListResponse
	if err := c.get(ctx, "/genre/"+kind+"/list", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchMulti runs the combined movie+TV search.
func (c *Client) SearchMulti(ctx context.Context, query string, page int) (*PagedResponse, error) {
	params := pageParams(page)
	params.Set("query", query)
	params.Set("include_adult", "false")
	var result PagedResponse
	if err := c.get(ctx, "/search/multi", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Person fetches a person with both filmographies appended.
func (c *Client) Person(ctx context.Context, id string) (*PersonResponse, error) {
	params := url.Values{"append_to_response": []string{"movie_credits,tv_credits"}}
	var result PersonResponse
	if err := c.get(ctx, "/person/"+id, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
