package metadata

// SearchResult is a single movie hit from a title search.
type SearchResult struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       string  `json:"poster_path"`
	VoteAverage      float64 `json:"vote_average"`
	OriginalLanguage string  `json:"original_language"`
}

// SearchPage is one page of search results.
type SearchPage struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// MovieDetails is the merged detail record for a movie: the base detail
// response plus the IMDB id, GB certification and director pulled from the
// auxiliary endpoints.
type MovieDetails struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       string  `json:"poster_path"`
	Runtime          int     `json:"runtime"`
	VoteAverage      float64 `json:"vote_average"`
	OriginalLanguage string  `json:"original_language"`
	Budget           int64   `json:"budget"`
	Revenue          int64   `json:"revenue"`
	Tagline          string  `json:"tagline"`
	Genres           []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
	ProductionCompanies []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"production_companies"`

	// Merged from the auxiliary endpoints.
	IMDBID        string `json:"imdb_id"`
	Certification string `json:"certification"`
	Director      string `json:"director"`
}

// Poster is one poster image candidate for a movie.
type Poster struct {
	FilePath    string  `json:"file_path"`
	Language    *string `json:"iso_639_1"`
	VoteAverage float64 `json:"vote_average"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	FullURL     string  `json:"full_url"`
}

type externalIDsResponse struct {
	IMDBID string `json:"imdb_id"`
}

type releaseDatesResponse struct {
	Results []struct {
		CountryCode  string `json:"iso_3166_1"`
		ReleaseDates []struct {
			Certification string `json:"certification"`
		} `json:"release_dates"`
	} `json:"results"`
}

type creditsResponse struct {
	Crew []struct {
		Name string `json:"name"`
		Job  string `json:"job"`
	} `json:"crew"`
}

type imagesResponse struct {
	Posters []Poster `json:"posters"`
}
