package tmdb

// MovieSummary is a movie as returned by the list and search endpoints
type MovieSummary struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title,omitempty"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path,omitempty"`
	BackdropPath     string  `json:"backdrop_path,omitempty"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity,omitempty"`
	OriginalLanguage string  `json:"original_language,omitempty"`
	GenreIDs         []int   `json:"genre_ids,omitempty"`
	Adult            bool    `json:"adult,omitempty"`
}

// Year returns the release year, or UnknownYear
func (m *MovieSummary) Year() string {
	return ExtractYear(m.ReleaseDate)
}

// Rating returns the vote average formatted to one decimal
func (m *MovieSummary) Rating() string {
	return FormatRating(m.VoteAverage)
}

// HasPoster reports whether the movie has a poster image
func (m *MovieSummary) HasPoster() bool {
	return m.PosterPath != ""
}

// Genre is a named genre
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Company is a production company
type Company struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path,omitempty"`
	OriginCountry string `json:"origin_country,omitempty"`
}

// Country is a production country
type Country struct {
	ISOCode string `json:"iso_3166_1"`
	Name    string `json:"name"`
}

// Language is a spoken language
type Language struct {
	ISOCode     string `json:"iso_639_1"`
	EnglishName string `json:"english_name"`
	Name        string `json:"name"`
}

// MovieDetails is the full record returned by the movie endpoint
type MovieDetails struct {
	MovieSummary

	Tagline             string     `json:"tagline,omitempty"`
	Runtime             int        `json:"runtime,omitempty"`
	Status              string     `json:"status"`
	Budget              int64      `json:"budget"`
	Revenue             int64      `json:"revenue"`
	Homepage            string     `json:"homepage,omitempty"`
	IMDbID              string     `json:"imdb_id,omitempty"`
	Genres              []Genre    `json:"genres"`
	ProductionCompanies []Company  `json:"production_companies"`
	ProductionCountries []Country  `json:"production_countries"`
	SpokenLanguages     []Language `json:"spoken_languages,omitempty"`
}

// GenreNames returns the genre names in upstream order
func (d *MovieDetails) GenreNames() []string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		names = append(names, g.Name)
	}
	return names
}

// PagedResult is the pagination envelope shared by list and search endpoints
type PagedResult[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// HasMorePages checks if there are more pages to fetch
func (p *PagedResult[T]) HasMorePages() bool {
	return p.Page < p.TotalPages
}

// IsEmpty reports whether the page carries no results
func (p *PagedResult[T]) IsEmpty() bool {
	return len(p.Results) == 0
}

// MoviePage is a page of movie summaries
type MoviePage = PagedResult[MovieSummary]

// clampVote keeps vote averages inside [0,10]
func clampVote(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 10:
		return 10
	}
	return v
}

func (m *MovieSummary) normalize() {
	m.VoteAverage = clampVote(m.VoteAverage)
	if m.VoteCount < 0 {
		m.VoteCount = 0
	}
}

func (d *MovieDetails) normalize() {
	d.MovieSummary.normalize()
	if d.Budget < 0 {
		d.Budget = 0
	}
	if d.Revenue < 0 {
		d.Revenue = 0
	}
	if d.Runtime < 0 {
		d.Runtime = 0
	}
}
