package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bingebuddy/bingebuddy/tmdb"
)

// FeaturedCount is the number of popular movies highlighted on the landing view
const FeaturedCount = 5

// SectionKind identifies a landing section
type SectionKind string

const (
	SectionPopular    SectionKind = "popular"
	SectionNowPlaying SectionKind = "now_playing"
	SectionTopRated   SectionKind = "top_rated"
)

// Title returns the human-readable heading for the section
func (k SectionKind) Title() string {
	switch k {
	case SectionPopular:
		return "Popular Movies"
	case SectionNowPlaying:
		return "Now Playing"
	case SectionTopRated:
		return "Top Rated"
	}
	return string(k)
}

// Section holds one landing list: either its page or the error that
// prevented loading it.
type Section struct {
	Kind SectionKind
	Page *tmdb.MoviePage
	Err  error
}

// OK reports whether the section loaded
func (s *Section) OK() bool {
	return s.Err == nil && s.Page != nil
}

// Movies returns the section's movies, or nil when it failed
func (s *Section) Movies() []tmdb.MovieSummary {
	if !s.OK() {
		return nil
	}
	return s.Page.Results
}

// Landing is the composed home view
type Landing struct {
	Popular    Section
	NowPlaying Section
	TopRated   Section
}

// Sections returns the sections in display order
func (l *Landing) Sections() []*Section {
	return []*Section{&l.Popular, &l.NowPlaying, &l.TopRated}
}

// Featured returns the first popular movies for the hero slot
func (l *Landing) Featured() []tmdb.MovieSummary {
	movies := l.Popular.Movies()
	if len(movies) > FeaturedCount {
		return movies[:FeaturedCount]
	}
	return movies
}

// Failed returns the sections that did not load
func (l *Landing) Failed() []*Section {
	var failed []*Section
	for _, s := range l.Sections() {
		if !s.OK() {
			failed = append(failed, s)
		}
	}
	return failed
}

// Err joins every section error, or returns nil when all loaded
func (l *Landing) Err() error {
	var errs []error
	for _, s := range l.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", s.Kind, s.Err))
	}
	return errors.Join(errs...)
}

// FetchLanding loads the three landing lists concurrently. A failing list
// does not cancel or hide the others.
func FetchLanding(ctx context.Context, api tmdb.API, page int, logger zerolog.Logger) *Landing {
	landing := &Landing{
		Popular:    Section{Kind: SectionPopular},
		NowPlaying: Section{Kind: SectionNowPlaying},
		TopRated:   Section{Kind: SectionTopRated},
	}

	fetchers := map[*Section]func(context.Context, int) (*tmdb.MoviePage, error){
		&landing.Popular:    api.FetchPopular,
		&landing.NowPlaying: api.FetchNowPlaying,
		&landing.TopRated:   api.FetchTopRated,
	}

	// Plain group: a derived context would cancel siblings on first error
	var g errgroup.Group
	for section, fetch := range fetchers {
		g.Go(func() error {
			result, err := fetch(ctx, page)
			if err != nil {
				logger.Warn().
					Err(err).
					Str("section", string(section.Kind)).
					Msg("Failed to load landing section")
				section.Err = err
				return nil
			}
			section.Page = result
			return nil
		})
	}
	g.Wait()

	return landing
}
