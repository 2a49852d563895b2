package tmdb

import (
	"net/http"
	"time"
)

// Defaults applied by NewClient to empty Config fields
const (
	DefaultBaseURL          = "https://api.themoviedb.org/3"
	DefaultImageBaseURL     = "https://image.tmdb.org/t/p"
	DefaultLanguage         = "en-US"
	DefaultPlaceholderImage = "/placeholder-movie.svg"
	DefaultTimeout          = 30 * time.Second
	DefaultMaxBodyBytes     = 8 << 20
	maxErrorBodyBytes       = 4 << 10
)

// Config holds the upstream coordinates and credential for a Client
type Config struct {
	APIKey           string
	BaseURL          string
	ImageBaseURL     string
	Language         string
	PlaceholderImage string
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.ImageBaseURL == "" {
		c.ImageBaseURL = DefaultImageBaseURL
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.PlaceholderImage == "" {
		c.PlaceholderImage = DefaultPlaceholderImage
	}
	return c
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient   *http.Client
	timeout      time.Duration
	userAgent    string
	maxBodyBytes int64
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:      DefaultTimeout,
		userAgent:    "bingebuddy",
		maxBodyBytes: DefaultMaxBodyBytes,
	}
}

// WithHTTPClient replaces the HTTP client. WithTimeout is ignored when set.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		if hc != nil {
			o.httpClient = hc
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithMaxBodyBytes caps how much of a response body is read.
func WithMaxBodyBytes(n int64) Option {
	return func(o *clientOptions) {
		if n > 0 {
			o.maxBodyBytes = n
		}
	}
}
