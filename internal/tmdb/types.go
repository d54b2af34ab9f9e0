package tmdb

// Upstream response types. These mirror the provider's JSON and never leave
// this package; handlers only ever see the normalized view models.

// Record is one entry of any paginated upstream listing. Movie and TV rows
// share it: movies fill Title/ReleaseDate, series fill Name/FirstAirDate.
type Record struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Name          string  `json:"name"`
	OriginalTitle string  `json:"original_title"`
	OriginalName  string  `json:"original_name"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	VoteAverage   float64 `json:"vote_average"`
	ReleaseDate   string  `json:"release_date"`
	FirstAirDate  string  `json:"first_air_date"`
	GenreIDs      []int   `json:"genre_ids"`
	MediaType     string  `json:"media_type"`
}

// PagedResponse is the envelope of every paginated upstream endpoint.
type PagedResponse struct {
	Page         int      `json:"page"`
	Results      []Record `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// GenreRef is one genre of the upstream dictionary.
type GenreRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreListResponse is the /genre/{movie,tv}/list response.
type GenreListResponse struct {
	Genres []GenreRef `json:"genres"`
}

// Video is one entry of an item's video list.
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// CountryRef is one production country of a detail record.
type CountryRef struct {
	Name string `json:"name"`
}

// DetailResponse is the single-item response with videos appended.
type DetailResponse struct {
	ID                  int          `json:"id"`
	Title               string       `json:"title"`
	Name                string       `json:"name"`
	Overview            string       `json:"overview"`
	PosterPath          string       `json:"poster_path"`
	BackdropPath        string       `json:"backdrop_path"`
	VoteAverage         float64      `json:"vote_average"`
	ReleaseDate         string       `json:"release_date"`
	FirstAirDate        string       `json:"first_air_date"`
	Runtime             int          `json:"runtime"`
	NumberOfSeasons     int          `json:"number_of_seasons"`
	NumberOfEpisodes    int          `json:"number_of_episodes"`
	Genres              []GenreRef   `json:"genres"`
	ProductionCountries []CountryRef `json:"production_countries"`
	Videos              struct {
		Results []Video `json:"results"`
	} `json:"videos"`
}

// CastRecord is one billed actor of a credits response.
type CastRecord struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// CrewRecord is one crew credit of a credits response.
type CrewRecord struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job"`
	ProfilePath string `json:"profile_path"`
}

// CreditsResponse is the /{movie,tv}/{id}/credits response.
type CreditsResponse struct {
	Cast []CastRecord `json:"cast"`
	Crew []CrewRecord `json:"crew"`
}

// PersonResponse is the /person/{id} response with filmographies appended.
type PersonResponse struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Biography          string  `json:"biography"`
	Birthday           *string `json:"birthday"`
	Deathday           *string `json:"deathday"`
	PlaceOfBirth       *string `json:"place_of_birth"`
	ProfilePath        string  `json:"profile_path"`
	KnownForDepartment string  `json:"known_for_department"`
	MovieCredits       struct {
		Cast []Record `json:"cast"`
	} `json:"movie_credits"`
	TVCredits struct {
		Cast []Record `json:"cast"`
	} `json:"tv_credits"`
}

// errorResponse is the upstream failure body.
type errorResponse struct {
	StatusMessage string `json:"status_message"`
}
