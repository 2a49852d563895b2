package catalog

import "github.com/bingebuddy/bingebuddy/tmdb"

// MovieFormatter defines the interface for formatting movie output
type MovieFormatter interface {
	FormatMovieList(title string, movies []tmdb.MovieSummary, options FormatOptions) string
	FormatLanding(landing *Landing, options FormatOptions) string
	FormatSearchResults(query string, page *tmdb.MoviePage, options FormatOptions) string
	FormatMovieDetails(details *tmdb.MovieDetails) string
}

// FormatOptions contains options for formatting output
type FormatOptions struct {
	ShowOverview bool
	ShowImages   bool
	// Limit caps rows per list; zero means no limit
	Limit int
}
