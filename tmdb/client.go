package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client is a read-only TMDB API client
type Client struct {
	cfg          Config
	urls         URLBuilder
	httpClient   *http.Client
	userAgent    string
	maxBodyBytes int64
	logger       zerolog.Logger
}

// NewClient creates a new TMDB client. Empty Config fields take the
// package defaults; the API key is required.
func NewClient(cfg Config, logger zerolog.Logger, opts ...Option) (*Client, error) {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}
	cfg = cfg.withDefaults()

	if err := validateBaseURL(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("%w: base URL: %v", ErrInvalidConfig, err)
	}
	if err := validateBaseURL(cfg.ImageBaseURL); err != nil {
		return nil, fmt.Errorf("%w: image base URL: %v", ErrInvalidConfig, err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	return &Client{
		cfg:          cfg,
		urls:         NewURLBuilder(cfg.BaseURL, cfg.APIKey, cfg.Language),
		httpClient:   httpClient,
		userAgent:    o.userAgent,
		maxBodyBytes: o.maxBodyBytes,
		logger:       logger,
	}, nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

// WithLanguage returns a copy of the client that sends the given locale
func (c *Client) WithLanguage(language string) *Client {
	language = strings.TrimSpace(language)
	if language == "" || language == c.cfg.Language {
		return c
	}
	clone := *c
	clone.cfg.Language = language
	clone.urls = NewURLBuilder(clone.cfg.BaseURL, clone.cfg.APIKey, language)
	return &clone
}

// Language returns the locale sent with every request
func (c *Client) Language() string {
	return c.cfg.Language
}

// FetchPopular retrieves a page of popular movies
func (c *Client) FetchPopular(ctx context.Context, page int) (*MoviePage, error) {
	requestURL, err := c.urls.Popular(page)
	if err != nil {
		return nil, err
	}
	return c.fetchPage(ctx, endpointPopular, requestURL)
}

// FetchNowPlaying retrieves a page of movies currently in theatres
func (c *Client) FetchNowPlaying(ctx context.Context, page int) (*MoviePage, error) {
	requestURL, err := c.urls.NowPlaying(page)
	if err != nil {
		return nil, err
	}
	return c.fetchPage(ctx, endpointNowPlaying, requestURL)
}

// FetchTopRated retrieves a page of the highest rated movies
func (c *Client) FetchTopRated(ctx context.Context, page int) (*MoviePage, error) {
	requestURL, err := c.urls.TopRated(page)
	if err != nil {
		return nil, err
	}
	return c.fetchPage(ctx, endpointTopRated, requestURL)
}

// Search retrieves a page of movies matching query. Blank queries are
// rejected without a request.
func (c *Client) Search(ctx context.Context, query string, page int) (*MoviePage, error) {
	requestURL, err := c.urls.Search(query, page)
	if err != nil {
		return nil, err
	}
	return c.fetchPage(ctx, endpointSearch, requestURL)
}

// FetchDetails retrieves the full record for one movie
func (c *Client) FetchDetails(ctx context.Context, movieID int) (*MovieDetails, error) {
	requestURL, err := c.urls.Details(movieID)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf(endpointMovie, movieID)
	body, err := c.doRequest(ctx, endpoint, requestURL)
	if err != nil {
		return nil, err
	}

	var details MovieDetails
	if err := c.decode(endpoint, body, &details); err != nil {
		return nil, err
	}
	if details.ID <= 0 {
		return nil, c.shapeError(endpoint, "movie record has no id")
	}
	details.normalize()
	return &details, nil
}

func (c *Client) fetchPage(ctx context.Context, endpoint, requestURL string) (*MoviePage, error) {
	body, err := c.doRequest(ctx, endpoint, requestURL)
	if err != nil {
		return nil, err
	}

	var page MoviePage
	if err := c.decode(endpoint, body, &page); err != nil {
		return nil, err
	}
	if page.Page < 1 {
		return nil, c.shapeError(endpoint, "paged response has no page number")
	}
	if page.Results == nil {
		page.Results = []MovieSummary{}
	}
	for i := range page.Results {
		page.Results[i].normalize()
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("page", page.Page).
		Int("count", len(page.Results)).
		Int("total_results", page.TotalResults).
		Msg("Retrieved movie page from TMDB")

	return &page, nil
}

// doRequest performs a single GET and classifies the outcome. It returns
// the body only for 2xx responses.
func (c *Client) doRequest(ctx context.Context, endpoint, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("endpoint", endpoint).Msg("TMDB request failed")
		return nil, &TransportError{Endpoint: endpoint, Err: redact(err, c.cfg.APIKey)}
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("language", c.cfg.Language).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("TMDB request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &UpstreamError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(snippet),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if int64(len(body)) > c.maxBodyBytes {
		return nil, &DecodeError{Endpoint: endpoint, Err: fmt.Errorf("response body exceeds %d bytes", c.maxBodyBytes)}
	}

	return body, nil
}

func (c *Client) decode(endpoint string, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Warn().
			Err(err).
			Str("endpoint", endpoint).
			Int("bytes", len(body)).
			Msg("Failed to decode TMDB response")
		return &DecodeError{Endpoint: endpoint, Err: err}
	}
	return nil
}

func (c *Client) shapeError(endpoint, reason string) error {
	c.logger.Warn().Str("endpoint", endpoint).Str("reason", reason).Msg("Unexpected TMDB response shape")
	return &DecodeError{Endpoint: endpoint, Err: errors.New(reason)}
}

// redact strips the API key from errors that echo the request URL
func redact(err error, apiKey string) error {
	if apiKey == "" || !strings.Contains(err.Error(), apiKey) {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(err.Error(), apiKey, "REDACTED"), err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

// ImageURL resolves path at size on the image host
func (c *Client) ImageURL(path string, size ImageSize) string {
	return ImageURL(c.cfg.ImageBaseURL, c.cfg.PlaceholderImage, path, size)
}

// PosterURL resolves a poster path; sizes outside the poster set use DefaultPosterSize
func (c *Client) PosterURL(path string, size ImageSize) string {
	if !IsPosterSize(size) {
		size = DefaultPosterSize
	}
	return buildImageURL(c.cfg.ImageBaseURL, c.cfg.PlaceholderImage, path, size)
}

// BackdropURL resolves a backdrop path; sizes outside the backdrop set use DefaultBackdropSize
func (c *Client) BackdropURL(path string, size ImageSize) string {
	if !IsBackdropSize(size) {
		size = DefaultBackdropSize
	}
	return buildImageURL(c.cfg.ImageBaseURL, c.cfg.PlaceholderImage, path, size)
}
