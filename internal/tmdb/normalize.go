package tmdb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/user/onmovie/internal/model"
)

// Truncation caps applied during normalization. Ordering is always preserved
// as received from upstream.
const (
	CastLimit     = 20
	RelatedLimit  = 12
	KnownForLimit = 12
)

const videoURLTemplate = "https://www.youtube.com/watch?v=%s"

// movieCrewJobs is the crew allow-list for movies; series additionally
// accept Creator.
var movieCrewJobs = map[string]bool{
	"Director": true,
	"Producer": true,
	"Writer":   true,
}

// Normalizer converts upstream records into the fixed catalog view models,
// tolerating missing fields. Image paths are joined with the configured base
// URL; an absent path always yields nil, never a partial URL.
type Normalizer struct {
	imageURL string
}

// NewNormalizer creates a normalizer emitting image URLs under imageURL.
func NewNormalizer(imageURL string) *Normalizer {
	return &Normalizer{imageURL: imageURL}
}

// Image joins an upstream path fragment with the image base URL. Empty
// fragments map to nil.
func (n *Normalizer) Image(path string) *string {
	if path == "" {
		return nil
	}
	full := n.imageURL + path
	return &full
}

// FormatRating renders a vote average with exactly one decimal, or the
// "N/A" sentinel when upstream has none. Upstream reports missing votes as
// zero, so zero counts as absent.
func FormatRating(voteAverage float64) string {
	if voteAverage == 0 {
		return model.RatingUnavailable
	}
	return strconv.FormatFloat(voteAverage, 'f', 1, 64)
}

// YearOf extracts the year prefix of an ISO date ("1999-03-05" -> "1999"),
// or "N/A" when the date is absent.
func YearOf(date string) string {
	if date == "" {
		return "N/A"
	}
	if i := strings.IndexByte(date, '-'); i >= 0 {
		return date[:i]
	}
	return date
}

// title resolves the canonical title fallback chain. All sources absent
// yields the empty string, never an absent field.
func title(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

func synopsis(overview string) string {
	if overview == "" {
		return model.DefaultSynopsis
	}
	return overview
}

func genreIDs(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	return ids
}

// FormatMovie normalizes one upstream movie row into the summary shape.
func (n *Normalizer) FormatMovie(r Record) model.CatalogItem {
	return model.CatalogItem{
		ID:       r.ID,
		Slug:     strconv.Itoa(r.ID),
		Title:    title(r.Title, r.Name, r.OriginalTitle, r.OriginalName),
		Poster:   n.Image(r.PosterPath),
		Backdrop: n.Image(r.BackdropPath),
		Rating:   FormatRating(r.VoteAverage),
		Year:     YearOf(firstNonEmpty(r.ReleaseDate, r.FirstAirDate)),
		Synopsis: synopsis(r.Overview),
		Quality:  "HD",
		Genres:   genreIDs(r.GenreIDs),
	}
}

// FormatSeries normalizes one upstream TV row into the summary shape. Same
// output shape as FormatMovie; only the source name and date fields differ.
func (n *Normalizer) FormatSeries(r Record) model.CatalogItem {
	return model.CatalogItem{
		ID:       r.ID,
		Slug:     strconv.Itoa(r.ID),
		Title:    title(r.Name, r.Title, r.OriginalName, r.OriginalTitle),
		Poster:   n.Image(r.PosterPath),
		Backdrop: n.Image(r.BackdropPath),
		Rating:   FormatRating(r.VoteAverage),
		Year:     YearOf(r.FirstAirDate),
		Synopsis: synopsis(r.Overview),
		Quality:  "HD",
		Genres:   genreIDs(r.GenreIDs),
	}
}

// FormatPage normalizes a whole upstream page. mediaType selects the movie
// or series field mapping.
func (n *Normalizer) FormatPage(resp *PagedResponse, mediaType string) []model.CatalogItem {
	items := make([]model.CatalogItem, 0, len(resp.Results))
	for _, r := range resp.Results {
		if mediaType == model.MediaTypeSeries {
			items = append(items, n.FormatSeries(r))
		} else {
			items = append(items, n.FormatMovie(r))
		}
	}
	return items
}

// FormatRelated normalizes a similar/recommendations page, capped at
// RelatedLimit with upstream ordering preserved.
func (n *Normalizer) FormatRelated(resp *PagedResponse, mediaType string) []model.CatalogItem {
	results := resp.Results
	if len(results) > RelatedLimit {
		results = results[:RelatedLimit]
	}
	return n.FormatPage(&PagedResponse{Results: results}, mediaType)
}

// FormatSearch normalizes a multi-search page: person rows are dropped, the
// remaining rows are tagged with their content type.
func (n *Normalizer) FormatSearch(resp *PagedResponse) []model.CatalogItem {
	items := make([]model.CatalogItem, 0, len(resp.Results))
	for _, r := range resp.Results {
		switch r.MediaType {
		case "movie":
			item := n.FormatMovie(r)
			item.Type = model.MediaTypeMovie
			items = append(items, item)
		case "tv":
			item := n.FormatSeries(r)
			item.Type = model.MediaTypeSeries
			items = append(items, item)
		}
	}
	return items
}

// trailers filters the video list to trailers and maps each to an external
// video link.
func trailers(videos []Video) []model.Trailer {
	out := make([]model.Trailer, 0)
	for _, v := range videos {
		if v.Type != "Trailer" {
			continue
		}
		out = append(out, model.Trailer{
			Text: v.Name,
			Href: fmt.Sprintf(videoURLTemplate, v.Key),
		})
	}
	return out
}

func joinCountries(countries []CountryRef) string {
	if len(countries) == 0 {
		return "N/A"
	}
	names := make([]string, 0, len(countries))
	for _, c := range countries {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

func joinGenres(genres []GenreRef) string {
	if len(genres) == 0 {
		return "N/A"
	}
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}

func released(date string) string {
	if date == "" {
		return "N/A"
	}
	return date
}

// MovieDetail normalizes a movie detail response into the full shape.
func (n *Normalizer) MovieDetail(d *DetailResponse) *model.CatalogDetail {
	duration := "N/A"
	if d.Runtime > 0 {
		duration = fmt.Sprintf("%d min", d.Runtime)
	}
	return &model.CatalogDetail{
		ID:       d.ID,
		Slug:     strconv.Itoa(d.ID),
		Title:    title(d.Title, d.Name),
		Poster:   n.Image(d.PosterPath),
		Backdrop: n.Image(d.BackdropPath),
		Quality:  "HD",
		Rating:   FormatRating(d.VoteAverage),
		Country:  joinCountries(d.ProductionCountries),
		Genres:   joinGenres(d.Genres),
		Synopsis: synopsis(d.Overview),
		Released: released(d.ReleaseDate),
		Duration: duration,
		Stream:   trailers(d.Videos.Results),
	}
}

// SeriesDetail normalizes a series detail response into the full shape.
func (n *Normalizer) SeriesDetail(d *DetailResponse) *model.CatalogDetail {
	return &model.CatalogDetail{
		ID:       d.ID,
		Slug:     strconv.Itoa(d.ID),
		Title:    title(d.Name, d.Title),
		Poster:   n.Image(d.PosterPath),
		Backdrop: n.Image(d.BackdropPath),
		Quality:  "HD",
		Rating:   FormatRating(d.VoteAverage),
		Country:  joinCountries(d.ProductionCountries),
		Genres:   joinGenres(d.Genres),
		Synopsis: synopsis(d.Overview),
		Released: released(d.FirstAirDate),
		Seasons:  d.NumberOfSeasons,
		Episodes: d.NumberOfEpisodes,
		Stream:   trailers(d.Videos.Results),
	}
}

// Credits normalizes a credits response: cast capped at CastLimit in billing
// order, crew filtered by the job allow-list for the content type.
func (n *Normalizer) Credits(resp *CreditsResponse, mediaType string) *model.Credits {
	cast := resp.Cast
	if len(cast) > CastLimit {
		cast = cast[:CastLimit]
	}
	outCast := make([]model.CastMember, 0, len(cast))
	for _, p := range cast {
		outCast = append(outCast, model.CastMember{
			ID:        p.ID,
			Name:      p.Name,
			Character: p.Character,
			Profile:   n.Image(p.ProfilePath),
			Order:     p.Order,
		})
	}

	outCrew := make([]model.CrewMember, 0)
	for _, p := range resp.Crew {
		if !movieCrewJobs[p.Job] && !(mediaType == model.MediaTypeSeries && p.Job == "Creator") {
			continue
		}
		outCrew = append(outCrew, model.CrewMember{
			ID:      p.ID,
			Name:    p.Name,
			Job:     p.Job,
			Profile: n.Image(p.ProfilePath),
		})
	}

	return &model.Credits{Cast: outCast, Crew: outCrew}
}

// Genres normalizes the genre dictionary; Href carries the id as the route
// parameter value.
func (n *Normalizer) Genres(resp *GenreListResponse) []model.Genre {
	out := make([]model.Genre, 0, len(resp.Genres))
	for _, g := range resp.Genres {
		out = append(out, model.Genre{
			Name: g.Name,
			Href: strconv.Itoa(g.ID),
		})
	}
	return out
}

// Person normalizes a person detail with both known-for filmographies capped
// at KnownForLimit.
func (n *Normalizer) Person(p *PersonResponse) *model.PersonDetail {
	bio := p.Biography
	if bio == "" {
		bio = "No biography available"
	}

	movies := p.MovieCredits.Cast
	if len(movies) > KnownForLimit {
		movies = movies[:KnownForLimit]
	}
	shows := p.TVCredits.Cast
	if len(shows) > KnownForLimit {
		shows = shows[:KnownForLimit]
	}

	return &model.PersonDetail{
		ID:           p.ID,
		Name:         p.Name,
		Biography:    bio,
		Birthday:     p.Birthday,
		Deathday:     p.Deathday,
		PlaceOfBirth: p.PlaceOfBirth,
		Profile:      n.Image(p.ProfilePath),
		KnownFor:     p.KnownForDepartment,
		Movies:       n.FormatPage(&PagedResponse{Results: movies}, model.MediaTypeMovie),
		TVShows:      n.FormatPage(&PagedResponse{Results: shows}, model.MediaTypeSeries),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
