package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bingebuddy/bingebuddy/catalog"
	"github.com/bingebuddy/bingebuddy/filter"
	"github.com/bingebuddy/bingebuddy/tmdb"
)

type pageFetcher func(api tmdb.API) func(ctx context.Context, page int) (*tmdb.MoviePage, error)

// newListCommand builds one of the paged list commands
func newListCommand(use, short string, kind catalog.SectionKind, fetch pageFetcher) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, kind, fetch(client))
		},
	}
	addPageFlags(cmd)
	return cmd
}

var popularCmd = newListCommand("popular", "List popular movies", catalog.SectionPopular,
	func(api tmdb.API) func(context.Context, int) (*tmdb.MoviePage, error) { return api.FetchPopular })

var nowPlayingCmd = newListCommand("now-playing", "List movies currently in theatres", catalog.SectionNowPlaying,
	func(api tmdb.API) func(context.Context, int) (*tmdb.MoviePage, error) { return api.FetchNowPlaying })

var topRatedCmd = newListCommand("top-rated", "List the highest rated movies", catalog.SectionTopRated,
	func(api tmdb.API) func(context.Context, int) (*tmdb.MoviePage, error) { return api.FetchTopRated })

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search QUERY...",
	Short: "Search movies by title",
	Long: `Search the catalog by free text. Multiple arguments are joined with spaces.

Examples:
  bingebuddy search the matrix
  bingebuddy search "spirited away" --language ja-JP
  bingebuddy search star wars --filter "Year < 1990"`,
	RunE: runSearch,
}

// movieCmd represents the movie command
var movieCmd = &cobra.Command{
	Use:   "movie ID",
	Short: "Show full details for a movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runMovie,
}

// homeCmd represents the home command
var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show popular, now playing and top rated movies together",
	Long: `Load the three landing lists concurrently. A list that fails to load is
replaced by a short message; the others are still shown.`,
	Args: cobra.NoArgs,
	RunE: runHome,
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to TMDB",
	Long:  `Fetch the first page of popular movies to verify the API key and connectivity.`,
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

func init() {
	addPageFlags(searchCmd)
	rootCmd.AddCommand(popularCmd, nowPlayingCmd, topRatedCmd, searchCmd, movieCmd, homeCmd, testCmd)
}

func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&page, "page", 1, "result page to fetch")
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to the page")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

// resolveFilter determines the filter to apply: flag > preset > none
func resolveFilter() (filter.CompiledFilter, error) {
	f, err := filters.Resolve(filterExpr, preset)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	if f != nil {
		logger.Debug().Str("filter", f.Expression()).Msg("Applying filter")
	}
	return f, nil
}

// applyFilter narrows a page; a nil compiled filter keeps everything
func applyFilter(f filter.CompiledFilter, result *tmdb.MoviePage) *tmdb.MoviePage {
	if f == nil {
		return result
	}
	return filter.ApplyPage(f, result)
}

func runList(cmd *cobra.Command, kind catalog.SectionKind, fetch func(context.Context, int) (*tmdb.MoviePage, error)) error {
	out := cmd.OutOrStdout()
	f, err := resolveFilter()
	if err != nil {
		return err
	}

	result, err := fetch(cmd.Context(), page)
	if err != nil {
		return fail(err, fmt.Sprintf("Failed to fetch %s movies", kind))
	}
	result = applyFilter(f, result)

	logger.Info().
		Str("list", string(kind)).
		Int("page", result.Page).
		Int("total_pages", result.TotalPages).
		Int("count", len(result.Results)).
		Msg("Fetched movies")

	if jsonOutput {
		return printJSON(out, result)
	}

	fmt.Fprint(out, formatter.FormatMovieList(kind.Title(), result.Results, displayOptions()))
	if result.HasMorePages() {
		fmt.Fprintf(out, "Page %d of %d. Use --page %d for more.\n", result.Page, result.TotalPages, result.Page+1)
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		fmt.Fprintln(out, formatter.FormatSearchResults(query, nil, displayOptions()))
		return nil
	}

	f, err := resolveFilter()
	if err != nil {
		return err
	}

	logger.Info().Str("query", query).Int("page", page).Msg("Searching movies")

	result, err := client.Search(cmd.Context(), query, page)
	if err != nil {
		return fail(err, "Search failed")
	}
	result = applyFilter(f, result)

	if jsonOutput {
		return printJSON(out, result)
	}

	fmt.Fprintln(out, formatter.FormatSearchResults(query, result, displayOptions()))
	return nil
}

func runMovie(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	movieID, err := tmdb.ParseMovieID(args[0])
	if err != nil {
		return fail(err, "Invalid movie ID")
	}

	details, err := client.FetchDetails(cmd.Context(), movieID)
	if err != nil {
		return fail(err, "Failed to fetch movie details")
	}

	if jsonOutput {
		return printJSON(out, details)
	}

	fmt.Fprintln(out, formatter.FormatMovieDetails(details))
	return nil
}

func runHome(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	landing := catalog.FetchLanding(cmd.Context(), client, 1, logger)

	if jsonOutput {
		sections := make(map[catalog.SectionKind]any, 3)
		for _, section := range landing.Sections() {
			if section.OK() {
				sections[section.Kind] = section.Page
			} else {
				sections[section.Kind] = map[string]string{"error": catalog.Describe(section.Err)}
			}
		}
		if err := printJSON(out, sections); err != nil {
			return err
		}
	} else {
		fmt.Fprint(out, formatter.FormatLanding(landing, displayOptions()))
	}

	// partial results are still a usable home view
	if failed := landing.Failed(); len(failed) == len(landing.Sections()) {
		return fail(landing.Err(), "Failed to load every landing section")
	}
	return nil
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing connection to TMDB at %s...\n", cfg.TMDB.BaseURL)

	result, err := client.FetchPopular(cmd.Context(), 1)
	if err != nil {
		return fail(err, "Connection test failed")
	}

	fmt.Fprintln(out, "✓ Connection successful!")
	fmt.Fprintf(out, "\nTMDB Statistics:\n")
	fmt.Fprintf(out, "- Language: %s\n", client.Language())
	fmt.Fprintf(out, "- Popular movies: %d across %d pages\n", result.TotalResults, result.TotalPages)

	if names := filters.ListFilters(); len(names) > 0 {
		fmt.Fprintf(out, "\nFilter presets:\n")
		for _, name := range names {
			f, _ := filters.GetFilter(name)
			fmt.Fprintf(out, "  • %s: %s\n", name, f.Expression())
		}
	}

	return nil
}
