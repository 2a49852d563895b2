package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bingebuddy/bingebuddy/tmdb"
)

type fakeImages struct{}

func (fakeImages) ImageURL(path string, size tmdb.ImageSize) string {
	return tmdb.ImageURL("https://img.test", "/placeholder.svg", path, size)
}

func (f fakeImages) PosterURL(path string, size tmdb.ImageSize) string {
	return f.ImageURL(path, size)
}

func (f fakeImages) BackdropURL(path string, size tmdb.ImageSize) string {
	return f.ImageURL(path, size)
}

func TestConsoleFormatter_FormatMovieList(t *testing.T) {
	formatter := NewConsoleFormatter(fakeImages{})

	tests := []struct {
		name     string
		movies   []tmdb.MovieSummary
		options  FormatOptions
		contains []string
		excludes []string
	}{
		{
			name:     "empty list",
			movies:   nil,
			contains: []string{"No movies found"},
		},
		{
			name: "single movie",
			movies: []tmdb.MovieSummary{
				{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-31", VoteAverage: 8.2, VoteCount: 25000},
			},
			contains: []string{"Popular (1):", "╰── The Matrix (1999)", "ID: 603 | Rating: 8.2 (25000 votes)"},
			excludes: []string{"├── "},
		},
		{
			name: "unknown year and overview",
			movies: []tmdb.MovieSummary{
				{ID: 1, Title: "Untitled", Overview: "A mystery.", PosterPath: "/u.jpg"},
				{ID: 2, Title: "Second", ReleaseDate: "2001-01-01"},
			},
			options:  FormatOptions{ShowOverview: true, ShowImages: true},
			contains: []string{"├── Untitled\n", "│   A mystery.", "Poster: https://img.test/w500/u.jpg", "Poster: /placeholder.svg", "╰── Second (2001)"},
		},
		{
			name: "limit",
			movies: []tmdb.MovieSummary{
				{ID: 1, Title: "One"}, {ID: 2, Title: "Two"}, {ID: 3, Title: "Three"},
			},
			options:  FormatOptions{Limit: 2},
			contains: []string{"├── One", "╰── Two"},
			excludes: []string{"Three"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := formatter.FormatMovieList("Popular", tt.movies, tt.options)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestConsoleFormatter_FormatSearchResults(t *testing.T) {
	formatter := NewConsoleFormatter(nil)

	assert.Equal(t, "Enter a search term to find movies.", formatter.FormatSearchResults("  ", nil, FormatOptions{}))

	empty := &tmdb.MoviePage{Page: 1, Results: []tmdb.MovieSummary{}}
	assert.Equal(t, `No results found for "zzzz". Try different keywords.`, formatter.FormatSearchResults("zzzz", empty, FormatOptions{}))

	page := &tmdb.MoviePage{
		Page:         1,
		TotalPages:   3,
		TotalResults: 41,
		Results:      []tmdb.MovieSummary{{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-31"}},
	}
	out := formatter.FormatSearchResults("matrix", page, FormatOptions{})
	assert.Contains(t, out, `Search results for "matrix": 1 found (page 1 of 3, 41 total)`)
	assert.Contains(t, out, "The Matrix (1999)")
}

func TestConsoleFormatter_FormatMovieDetails(t *testing.T) {
	formatter := NewConsoleFormatter(fakeImages{})

	details := &tmdb.MovieDetails{
		MovieSummary: tmdb.MovieSummary{
			ID:               603,
			Title:            "The Matrix",
			ReleaseDate:      "1999-03-31",
			VoteAverage:      8.2,
			VoteCount:        25000,
			OriginalLanguage: "en",
			PosterPath:       "/matrix.jpg",
		},
		Tagline: "Welcome to the Real World.",
		Runtime: 136,
		Status:  "Released",
		Budget:  63000000,
		Genres:  []tmdb.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
		ProductionCompanies: []tmdb.Company{
			{Name: "C1"}, {Name: "C2"}, {Name: "C3"}, {Name: "C4"}, {Name: "C5"}, {Name: "C6"},
		},
		ProductionCountries: []tmdb.Country{{ISOCode: "US", Name: "United States of America"}},
	}

	out := formatter.FormatMovieDetails(details)

	for _, want := range []string{
		"The Matrix (1999)",
		`"Welcome to the Real World."`,
		"Runtime:   2h 16m",
		"Rating:    8.2/10 (25000 votes)",
		"Genres:    Action, Science Fiction",
		"Status:    Released",
		"Language:  EN",
		"Budget:    $63,000,000",
		"Revenue:   Unknown",
		"Companies: C1, C2, C3, C4, C5\n",
		"Countries: United States of America",
		"Poster:    https://img.test/w500/matrix.jpg",
		"Backdrop:  /placeholder.svg",
		"No overview available",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "C6")
	assert.Equal(t, 1, strings.Count(out, "╰── "))
}

func TestConsoleFormatter_FormatMovieDetails_Nil(t *testing.T) {
	assert.Equal(t, MsgNotFound, NewConsoleFormatter(nil).FormatMovieDetails(nil))
}

func TestConsoleFormatter_FormatLanding(t *testing.T) {
	landing := &Landing{
		Popular:    Section{Kind: SectionPopular, Page: pageOf(1, "A", "B", "C", "D", "E", "F")},
		NowPlaying: Section{Kind: SectionNowPlaying, Err: &tmdb.UpstreamError{StatusCode: 500}},
		TopRated:   Section{Kind: SectionTopRated, Page: pageOf(1)},
	}

	out := NewConsoleFormatter(nil).FormatLanding(landing, FormatOptions{})

	assert.Contains(t, out, "Featured:")
	assert.Equal(t, FeaturedCount, strings.Count(out, "  * "))
	assert.Contains(t, out, "Popular Movies (6):")
	assert.Contains(t, out, "Now Playing:\n  "+MsgUnavailable)
	assert.Contains(t, out, "Top Rated:\n  No movies found")
}
