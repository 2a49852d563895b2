package filter

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/bingebuddy/bingebuddy/tmdb"
)

const dateLayout = "2006-01-02"

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newFilterCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// WithClock replaces the time source used by date helpers
func WithClock(now func() time.Time) ExprCompilerOption {
	return func(c *exprCompiler) {
		if now != nil {
			c.now = now
		}
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: make(map[string]any, 16),
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	// built after options so WithClock applies; custom functions win
	base := createHelperFunctions(c.now)
	maps.Copy(base, c.helperFuncs)
	c.helperFuncs = base

	return c
}

// exprCompiler implements CachingCompiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *filterCache
	now         func() time.Time
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
			Position:   -1,
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(compileEnvironment(c.helperFuncs)),
		expr.AsBool(),
	)
	if err != nil {
		return nil, newCompilationError(expression, "failed to compile expression", err)
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate evaluates the filter against a movie. Runtime failures count as
// no match.
func (f *exprFilter) Evaluate(movie tmdb.MovieSummary) bool {
	ok, err := f.Check(movie)
	return err == nil && ok
}

// Check evaluates the filter against a movie
func (f *exprFilter) Check(movie tmdb.MovieSummary) (bool, error) {
	result, err := expr.Run(f.program, buildEnvironment(movie, f.helpers))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			MovieTitle: movie.Title,
			Reason:     "runtime error",
			Err:        err,
		}
	}

	// AsBool guarantees the type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// createHelperFunctions creates the movie-independent helper functions
func createHelperFunctions(now func() time.Time) map[string]any {
	return map[string]any{
		// Date helpers
		"now": now,
		"yearsAgo": func(years int) time.Time {
			return now().AddDate(-years, 0, 0)
		},
		"daysAgo": func(days int) time.Time {
			return now().AddDate(0, 0, -days)
		},
		"parseDate": parseDate,
		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

// parseDate parses an ISO date; malformed input yields the zero time
func parseDate(dateStr string) time.Time {
	t, _ := time.Parse(dateLayout, strings.TrimSpace(dateStr))
	return t
}

// compileEnvironment is the type environment used for checking expressions.
// It carries a zero movie so unknown identifiers fail at compile time.
func compileEnvironment(helpers map[string]any) map[string]any {
	return buildEnvironment(tmdb.MovieSummary{}, helpers)
}

// buildEnvironment layers movie fields over helpers; a helper never shadows
// a movie field or movie helper of the same name.
func buildEnvironment(movie tmdb.MovieSummary, helpers map[string]any) map[string]any {
	env := make(map[string]any, len(helpers)+16)
	maps.Copy(env, helpers)
	maps.Copy(env, createRuntimeEnvironment(movie))
	return env
}

// createRuntimeEnvironment creates the per-movie evaluation environment
func createRuntimeEnvironment(movie tmdb.MovieSummary) map[string]any {
	released := parseDate(movie.ReleaseDate)
	genres := slices.Clone(movie.GenreIDs)
	if genres == nil {
		genres = []int{}
	}

	env := map[string]any{
		// Movie properties
		"Title":         movie.Title,
		"OriginalTitle": movie.OriginalTitle,
		"Overview":      movie.Overview,
		"Year":          tmdb.YearNumber(movie.ReleaseDate),
		"ReleaseDate":   released,
		"Rating":        movie.VoteAverage,
		"Votes":         movie.VoteCount,
		"Popularity":    movie.Popularity,
		"Language":      movie.OriginalLanguage,
		"GenreIDs":      genres,
		"Adult":         movie.Adult,
		"HasPoster":     movie.HasPoster(),

		// Movie helpers
		"hasGenre": func(id int) bool {
			return slices.Contains(genres, id)
		},
		"releasedAfter": func(date time.Time) bool {
			return !released.IsZero() && released.After(date)
		},
		"releasedBefore": func(date time.Time) bool {
			return !released.IsZero() && released.Before(date)
		},
	}
	return env
}
