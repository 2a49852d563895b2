package tmdb

import (
	"context"
)

// API defines the read-only movie catalog operations
type API interface {
	// FetchPopular retrieves a page of popular movies
	FetchPopular(ctx context.Context, page int) (*MoviePage, error)

	// FetchNowPlaying retrieves a page of movies currently in theatres
	FetchNowPlaying(ctx context.Context, page int) (*MoviePage, error)

	// FetchTopRated retrieves a page of the highest rated movies
	FetchTopRated(ctx context.Context, page int) (*MoviePage, error)

	// FetchDetails retrieves the full record for one movie
	FetchDetails(ctx context.Context, movieID int) (*MovieDetails, error)

	// Search retrieves a page of movies matching a free-text query
	Search(ctx context.Context, query string, page int) (*MoviePage, error)
}

// Images resolves image paths to URLs on the configured image host
type Images interface {
	ImageURL(path string, size ImageSize) string
	PosterURL(path string, size ImageSize) string
	BackdropURL(path string, size ImageSize) string
}

var (
	_ API    = (*Client)(nil)
	_ Images = (*Client)(nil)
)
