package catalog

import (
	"fmt"
	"strings"

	"github.com/bingebuddy/bingebuddy/tmdb"
)

// MaxCompanies is the number of production companies listed on a detail view
const MaxCompanies = 5

const (
	branch     = "├── "
	lastBranch = "╰── "
	pipe       = "│   "
	blank      = "    "
	spacer     = "│\n"
)

// ConsoleFormatter provides console output formatting for movies
type ConsoleFormatter struct {
	images tmdb.Images
}

// NewConsoleFormatter creates a new console formatter. images may be nil
// when image URLs are not rendered.
func NewConsoleFormatter(images tmdb.Images) *ConsoleFormatter {
	return &ConsoleFormatter{images: images}
}

// FormatMovieList formats a titled list of movies for console display
func (f *ConsoleFormatter) FormatMovieList(title string, movies []tmdb.MovieSummary, options FormatOptions) string {
	if len(movies) == 0 {
		return "No movies found"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s (%d):\n\n", title, len(movies))
	f.writeMovies(&sb, movies, options)
	sb.WriteString("\n")
	return sb.String()
}

// FormatLanding formats the home view. Failed sections show a fallback
// message instead of a list.
func (f *ConsoleFormatter) FormatLanding(landing *Landing, options FormatOptions) string {
	var sb strings.Builder

	if featured := landing.Featured(); len(featured) > 0 {
		sb.WriteString("\nFeatured:\n")
		for _, movie := range featured {
			fmt.Fprintf(&sb, "  * %s\n", movieHeadline(movie))
		}
	}

	for _, section := range landing.Sections() {
		fmt.Fprintf(&sb, "\n%s", section.Kind.Title())
		if !section.OK() {
			fmt.Fprintf(&sb, ":\n  %s\n", Describe(section.Err))
			continue
		}

		movies := section.Movies()
		if len(movies) == 0 {
			sb.WriteString(":\n  No movies found\n")
			continue
		}
		fmt.Fprintf(&sb, " (%d):\n\n", len(movies))
		f.writeMovies(&sb, movies, options)
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatSearchResults formats a search page, including the prompt shown
// for an empty query and the no-results state.
func (f *ConsoleFormatter) FormatSearchResults(query string, page *tmdb.MoviePage, options FormatOptions) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return "Enter a search term to find movies."
	}
	if page == nil || page.IsEmpty() {
		return fmt.Sprintf("No results found for %q. Try different keywords.", query)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nSearch results for %q: %d found", query, len(page.Results))
	if page.TotalResults > len(page.Results) {
		fmt.Fprintf(&sb, " (page %d of %d, %d total)", page.Page, page.TotalPages, page.TotalResults)
	}
	sb.WriteString("\n\n")
	f.writeMovies(&sb, page.Results, options)
	sb.WriteString("\n")
	return sb.String()
}

// FormatMovieDetails formats the full record for one movie
func (f *ConsoleFormatter) FormatMovieDetails(details *tmdb.MovieDetails) string {
	if details == nil {
		return MsgNotFound
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s\n", movieHeadline(details.MovieSummary))
	if details.Tagline != "" {
		fmt.Fprintf(&sb, "%q\n", details.Tagline)
	}
	sb.WriteString("\n")

	rows := [][2]string{
		{"Runtime", tmdb.FormatRuntime(details.Runtime)},
		{"Rating", fmt.Sprintf("%s/10 (%d votes)", details.Rating(), details.VoteCount)},
	}
	if genres := details.GenreNames(); len(genres) > 0 {
		rows = append(rows, [2]string{"Genres", strings.Join(genres, ", ")})
	}
	rows = append(rows,
		[2]string{"Status", orUnknown(details.Status)},
		[2]string{"Language", orUnknown(strings.ToUpper(details.OriginalLanguage))},
		[2]string{"Release", orUnknown(details.ReleaseDate)},
		[2]string{"Budget", tmdb.FormatMoney(details.Budget)},
		[2]string{"Revenue", tmdb.FormatMoney(details.Revenue)},
	)
	if names := companyNames(details.ProductionCompanies); len(names) > 0 {
		rows = append(rows, [2]string{"Companies", strings.Join(names, ", ")})
	}
	if countries := countryNames(details.ProductionCountries); len(countries) > 0 {
		rows = append(rows, [2]string{"Countries", strings.Join(countries, ", ")})
	}
	if details.IMDbID != "" {
		rows = append(rows, [2]string{"IMDb", "https://www.imdb.com/title/" + details.IMDbID})
	}
	if f.images != nil {
		rows = append(rows,
			[2]string{"Poster", f.images.PosterURL(details.PosterPath, tmdb.SizeW500)},
			[2]string{"Backdrop", f.images.BackdropURL(details.BackdropPath, tmdb.SizeOriginal)},
		)
	}

	for i, row := range rows {
		prefix := branch
		if i == len(rows)-1 {
			prefix = lastBranch
		}
		fmt.Fprintf(&sb, "%s%-10s %s\n", prefix, row[0]+":", row[1])
	}

	sb.WriteString("\nOverview:\n")
	overview := strings.TrimSpace(details.Overview)
	if overview == "" {
		overview = "No overview available"
	}
	fmt.Fprintf(&sb, "  %s\n", overview)

	return sb.String()
}

func (f *ConsoleFormatter) writeMovies(sb *strings.Builder, movies []tmdb.MovieSummary, options FormatOptions) {
	if options.Limit > 0 && len(movies) > options.Limit {
		movies = movies[:options.Limit]
	}
	for i, movie := range movies {
		isLast := i == len(movies)-1
		f.formatMovie(sb, movie, isLast, options)

		if !isLast {
			sb.WriteString(spacer)
		}
	}
}

// formatMovie formats a single movie entry
func (f *ConsoleFormatter) formatMovie(sb *strings.Builder, movie tmdb.MovieSummary, isLast bool, options FormatOptions) {
	prefix := branch
	indent := pipe
	if isLast {
		prefix = lastBranch
		indent = blank
	}

	fmt.Fprintf(sb, "%s%s\n", prefix, movieHeadline(movie))
	fmt.Fprintf(sb, "%sID: %d | Rating: %s (%d votes)\n", indent, movie.ID, movie.Rating(), movie.VoteCount)

	if options.ShowOverview && movie.Overview != "" {
		fmt.Fprintf(sb, "%s%s\n", indent, truncate(movie.Overview, 160))
	}
	if options.ShowImages && f.images != nil {
		fmt.Fprintf(sb, "%sPoster: %s\n", indent, f.images.PosterURL(movie.PosterPath, tmdb.SizeW500))
	}
}

func movieHeadline(movie tmdb.MovieSummary) string {
	title := movie.Title
	if title == "" {
		title = movie.OriginalTitle
	}
	if year := movie.Year(); year != tmdb.UnknownYear {
		return fmt.Sprintf("%s (%s)", title, year)
	}
	return title
}

func companyNames(companies []tmdb.Company) []string {
	names := make([]string, 0, MaxCompanies)
	for _, c := range companies {
		if len(names) == MaxCompanies {
			break
		}
		names = append(names, c.Name)
	}
	return names
}

func countryNames(countries []tmdb.Country) []string {
	names := make([]string, 0, len(countries))
	for _, c := range countries {
		names = append(names, c.Name)
	}
	return names
}

func orUnknown(s string) string {
	if s == "" {
		return tmdb.Unknown
	}
	return s
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit])) + "..."
}
