package model

// MediaTypeMovie and MediaTypeSeries are the two content types the catalog
// serves. Every user-list key and normalized record carries one of them.
const (
	MediaTypeMovie  = "movie"
	MediaTypeSeries = "series"
)

// RatingUnavailable is the sentinel emitted when upstream has no vote average.
const RatingUnavailable = "N/A"

// DefaultSynopsis is the placeholder used when upstream has no overview text.
const DefaultSynopsis = "No synopsis available"

// Developers is the constant identity stamp carried by every envelope.
type Developers struct {
	Name   string `json:"name"`
	Author string `json:"author"`
	Source string `json:"source"`
}

// CatalogItem is the compact view model used by every list endpoint.
// Movies and series share the shape; only the source fields differ.
type CatalogItem struct {
	ID       int     `json:"id"`
	Slug     string  `json:"slug"`
	Title    string  `json:"title"`
	Poster   *string `json:"poster"`
	Backdrop *string `json:"backdrop"`
	Rating   string  `json:"rating"`
	Year     string  `json:"year"`
	Synopsis string  `json:"synopsis"`
	Quality  string  `json:"quality"`
	Genres   []int   `json:"genres"`
	// Type is only set on mixed search results ("movie" or "series").
	Type string `json:"type,omitempty"`
}

// CatalogDetail is the full view model for a single-item lookup.
type CatalogDetail struct {
	ID       int     `json:"id"`
	Slug     string  `json:"slug"`
	Title    string  `json:"title"`
	Poster   *string `json:"image"`
	Backdrop *string `json:"backdrop"`
	Quality  string  `json:"quality"`
	Rating   string  `json:"rating"`
	Country  string  `json:"country"`
	Genres   string  `json:"genres"`
	Synopsis string  `json:"synopsis"`
	Released string  `json:"released"`
	// Duration is set for movies ("148 min" or "N/A").
	Duration string `json:"duration,omitempty"`
	// Seasons/Episodes are set for series.
	Seasons  int `json:"seasons,omitempty"`
	Episodes int `json:"episodes,omitempty"`
	// Stream keeps its historical name: the extracted trailer links.
	Stream []Trailer `json:"stream"`
}

// Trailer is one playable external video link.
type Trailer struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// CastMember is a credited actor, ordered as billed upstream.
type CastMember struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Character string  `json:"character"`
	Profile   *string `json:"profile"`
	Order     int     `json:"order"`
}

// CrewMember is a crew credit surviving the job allow-list filter.
type CrewMember struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Job     string  `json:"job"`
	Profile *string `json:"profile"`
}

// Credits bundles the filtered cast and crew for one item.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Genre is one entry of the genre dictionary. Href carries the genre id as a
// string because it doubles as the filter route parameter.
type Genre struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// PersonDetail is the person page view model with known-for filmography.
type PersonDetail struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Biography    string        `json:"biography"`
	Birthday     *string       `json:"birthday"`
	Deathday     *string       `json:"deathday"`
	PlaceOfBirth *string       `json:"place_of_birth"`
	Profile      *string       `json:"profile"`
	KnownFor     string        `json:"known_for"`
	Movies       []CatalogItem `json:"movies"`
	TVShows      []CatalogItem `json:"tvShows"`
}
