package tmdb

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Endpoint paths relative to the API base URL
const (
	endpointPopular    = "/movie/popular"
	endpointNowPlaying = "/movie/now_playing"
	endpointTopRated   = "/movie/top_rated"
	endpointMovie      = "/movie/%d"
	endpointSearch     = "/search/movie"
)

// URLBuilder constructs request URLs. It performs no I/O.
type URLBuilder struct {
	baseURL  string
	apiKey   string
	language string
}

// NewURLBuilder creates a URLBuilder for the given base URL, credential and locale
func NewURLBuilder(baseURL, apiKey, language string) URLBuilder {
	return URLBuilder{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		language: language,
	}
}

// Language returns the locale sent with every request
func (b URLBuilder) Language() string {
	return b.language
}

// Popular builds the popular movies URL
func (b URLBuilder) Popular(page int) (string, error) {
	return b.list(endpointPopular, page)
}

// NowPlaying builds the now playing URL
func (b URLBuilder) NowPlaying(page int) (string, error) {
	return b.list(endpointNowPlaying, page)
}

// TopRated builds the top rated URL
func (b URLBuilder) TopRated(page int) (string, error) {
	return b.list(endpointTopRated, page)
}

// Details builds the movie details URL
func (b URLBuilder) Details(movieID int) (string, error) {
	if movieID <= 0 {
		return "", &ValidationError{Field: "movie ID", Value: movieID, Err: ErrInvalidMovieID}
	}
	return b.build(fmt.Sprintf(endpointMovie, movieID), nil), nil
}

// Search builds the movie search URL. The query is trimmed and must not be blank.
func (b URLBuilder) Search(query string, page int) (string, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return "", &ValidationError{Field: "query", Value: strconv.Quote(query), Err: ErrEmptyQuery}
	}
	if err := validatePage(page); err != nil {
		return "", err
	}
	params := url.Values{}
	params.Set("query", trimmed)
	params.Set("page", strconv.Itoa(page))
	return b.build(endpointSearch, params), nil
}

func (b URLBuilder) list(endpoint string, page int) (string, error) {
	if err := validatePage(page); err != nil {
		return "", err
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	return b.build(endpoint, params), nil
}

func (b URLBuilder) build(endpoint string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", b.apiKey)
	params.Set("language", b.language)
	// QueryEscape turns spaces into '+' and literal '+' into %2B, so this
	// swap is lossless.
	return b.baseURL + endpoint + "?" + strings.ReplaceAll(params.Encode(), "+", "%20")
}

func validatePage(page int) error {
	if page < 1 {
		return &ValidationError{Field: "page", Value: page, Err: ErrInvalidPage}
	}
	return nil
}
