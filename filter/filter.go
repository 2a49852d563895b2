package filter

import (
	"github.com/bingebuddy/bingebuddy/tmdb"
)

var defaultCompiler = NewExprCompiler(WithCache(DefaultCacheSize))

// CompileFilter compiles an expression with the shared caching compiler
func CompileFilter(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}

// Apply returns the movies matching filter, in their original order. A nil
// filter matches everything.
func Apply(filter Filter, movies []tmdb.MovieSummary) []tmdb.MovieSummary {
	matched := make([]tmdb.MovieSummary, 0, len(movies))
	for _, movie := range movies {
		if filter == nil || filter.Evaluate(movie) {
			matched = append(matched, movie)
		}
	}
	return matched
}

// ApplyPage returns a copy of page holding only the matching results.
// Pagination totals still describe the upstream page.
func ApplyPage(filter Filter, page *tmdb.MoviePage) *tmdb.MoviePage {
	if page == nil {
		return nil
	}
	filtered := *page
	filtered.Results = Apply(filter, page.Results)
	return &filtered
}
