package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bingebuddy/bingebuddy/catalog"
	"github.com/bingebuddy/bingebuddy/config"
	"github.com/bingebuddy/bingebuddy/filter"
	"github.com/bingebuddy/bingebuddy/tmdb"
)

func TestSetupLoggerLevels(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"unknown": zerolog.InfoLevel,
	}

	for level, want := range tests {
		setupLogger(config.LoggingConfig{Level: level, Format: "json"})
		assert.Equal(t, want, zerolog.GlobalLevel(), level)
	}
}

func TestCurrentVersion(t *testing.T) {
	original := appVersion
	defer func() { appVersion = original }()

	appVersion = "dev"
	_, err := currentVersion()
	assert.Error(t, err)

	appVersion = "v1.4.2"
	v, err := currentVersion()
	require.NoError(t, err)
	assert.Equal(t, "1.4.2", v.String())
}

func TestResolveFilter(t *testing.T) {
	logger = zerolog.Nop()
	filters = filter.NewManager()
	require.NoError(t, filters.RegisterFilter("classics", "Year < 1980"))
	defer func() { filterExpr, preset = "", "" }()

	movies := []tmdb.MovieSummary{
		{Title: "Casablanca", ReleaseDate: "1942-11-26"},
		{Title: "Heat", ReleaseDate: "1995-12-15"},
	}
	page := &tmdb.MoviePage{Page: 1, Results: movies}

	filterExpr, preset = "", ""
	f, err := resolveFilter()
	require.NoError(t, err)
	assert.Same(t, page, applyFilter(f, page))

	preset = "classics"
	f, err = resolveFilter()
	require.NoError(t, err)
	got := applyFilter(f, page)
	require.Len(t, got.Results, 1)
	assert.Equal(t, "Casablanca", got.Results[0].Title)

	filterExpr = `contains(Title, "heat")`
	f, err = resolveFilter()
	require.NoError(t, err)
	assert.Equal(t, "Heat", applyFilter(f, page).Results[0].Title)

	filterExpr, preset = "", "missing"
	_, err = resolveFilter()
	assert.ErrorIs(t, err, filter.ErrUnknownPreset)
}

const landingBody = `{
	"page": 1,
	"results": [
		{"id": 603, "title": "The Matrix", "release_date": "1999-03-31", "vote_average": 8.2, "vote_count": 25000}
	],
	"total_pages": 1,
	"total_results": 1
}`

const movieBody = `{
	"id": 603,
	"title": "The Matrix",
	"release_date": "1999-03-31",
	"vote_average": 8.2,
	"vote_count": 25000,
	"runtime": 136,
	"status": "Released"
}`

// fakeTMDB serves canned responses; paths listed in failing answer 500
type fakeTMDB struct {
	mu      sync.Mutex
	failing  map[string]bool
	language string
	hits     int64
}

func (f *fakeTMDB) fail(paths ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing = make(map[string]bool, len(paths))
	for _, p := range paths {
		f.failing[p] = true
	}
}

func (f *fakeTMDB) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt64(&f.hits, 1)

	f.mu.Lock()
	failing := f.failing[r.URL.Path]
	f.language = r.URL.Query().Get("language")
	f.mu.Unlock()

	if failing {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/movie/popular", "/movie/now_playing", "/movie/top_rated", "/search/movie":
		fmt.Fprint(w, landingBody)
	case "/movie/603":
		fmt.Fprint(w, movieBody)
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeTMDB) lastLanguage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.language
}

func (f *fakeTMDB) requests() int64 {
	return atomic.LoadInt64(&f.hits)
}

func setupCommandTest(t *testing.T) (*fakeTMDB, string) {
	t.Helper()

	upstream := &fakeTMDB{}
	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("BINGEBUDDY_TMDB_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := fmt.Sprintf(`
tmdb:
  api_key: test-key
  base_url: %s
logging:
  level: error
  format: json
`, server.URL)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	level := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(level)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		filterExpr, preset, jsonOutput = "", "", false
		page = 1
		language = ""
		rootCmd.PersistentFlags().Lookup("language").Changed = false
	})

	return upstream, path
}

func runCommand(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	t.Run("home tolerates a failing section", func(t *testing.T) {
		upstream, path := setupCommandTest(t)
		upstream.fail("/movie/now_playing")

		out, err := runCommand(t, path, "home")
		require.NoError(t, err)
		assert.Contains(t, out, "Popular Movies (1)")
		assert.Contains(t, out, "Top Rated (1)")
		assert.Contains(t, out, catalog.MsgUnavailable)
		assert.Equal(t, int64(3), upstream.requests())
	})

	t.Run("home fails when every section fails", func(t *testing.T) {
		upstream, path := setupCommandTest(t)
		upstream.fail("/movie/popular", "/movie/now_playing", "/movie/top_rated")

		out, err := runCommand(t, path, "home")
		require.Error(t, err)
		assert.Equal(t, catalog.MsgUnavailable, err.Error())
		assert.Contains(t, out, "Now Playing:")
	})

	t.Run("blank search prints the prompt without a request", func(t *testing.T) {
		upstream, path := setupCommandTest(t)

		out, err := runCommand(t, path, "search", "   ")
		require.NoError(t, err)
		assert.Contains(t, out, "Enter a search term to find movies.")
		assert.Zero(t, upstream.requests())
	})

	t.Run("search prints matches", func(t *testing.T) {
		_, path := setupCommandTest(t)

		out, err := runCommand(t, path, "search", "the", "matrix")
		require.NoError(t, err)
		assert.Contains(t, out, "The Matrix")
	})

	t.Run("movie rejects an invalid id without a request", func(t *testing.T) {
		upstream, path := setupCommandTest(t)

		_, err := runCommand(t, path, "movie", "abc")
		require.Error(t, err)
		assert.Zero(t, upstream.requests())
	})

	t.Run("movie prints details", func(t *testing.T) {
		_, path := setupCommandTest(t)

		out, err := runCommand(t, path, "movie", "603")
		require.NoError(t, err)
		assert.Contains(t, out, "The Matrix")
		assert.Contains(t, out, "2h 16m")
	})

	t.Run("unknown movie reports not found", func(t *testing.T) {
		_, path := setupCommandTest(t)

		_, err := runCommand(t, path, "movie", "999")
		require.Error(t, err)
		assert.Equal(t, catalog.MsgNotFound, err.Error())
	})

	t.Run("language flag overrides the configured locale", func(t *testing.T) {
		upstream, path := setupCommandTest(t)

		_, err := runCommand(t, path, "popular", "--language", "ja-JP")
		require.NoError(t, err)
		assert.Equal(t, "ja-JP", upstream.lastLanguage())
	})
}
