package tmdb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testImageBase = "https://image.example.com/t/p"

func TestImageURL(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		size     ImageSize
		expected string
	}{
		{"empty path uses placeholder", "", SizeW500, DefaultPlaceholderImage},
		{"blank path uses placeholder", "   ", SizeW500, DefaultPlaceholderImage},
		{"w500", "/abc.jpg", SizeW500, testImageBase + "/w500/abc.jpg"},
		{"original", "/abc.jpg", SizeOriginal, testImageBase + "/original/abc.jpg"},
		{"missing leading slash", "abc.jpg", SizeW300, testImageBase + "/w300/abc.jpg"},
		{"unknown size falls back", "/abc.jpg", ImageSize("w9999"), testImageBase + "/w500/abc.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ImageURL(testImageBase, DefaultPlaceholderImage, tt.path, tt.size))
		})
	}
}

func TestImageURL_TrailingSlashOnBase(t *testing.T) {
	assert.Equal(t, testImageBase+"/w780/x.png", ImageURL(testImageBase+"/", "/p.svg", "/x.png", SizeW780))
}

func TestImageSizeSets(t *testing.T) {
	assert.True(t, IsPosterSize(SizeW500))
	assert.False(t, IsPosterSize(SizeW1280))
	assert.False(t, IsPosterSize(SizeOriginal))

	assert.True(t, IsBackdropSize(SizeW1280))
	assert.True(t, IsBackdropSize(SizeOriginal))
	assert.False(t, IsBackdropSize(SizeW500))
}

func TestFormatRating(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{7, "7.0"},
		{10, "10.0"},
		{0, "0.0"},
		{8.26, "8.3"},
		{6.789, "6.8"},
		{7.25, "7.3"},
		{6.25, "6.3"},
		{0.25, "0.3"},
		{8.75, "8.8"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRating(tt.value))
		})
	}
}

func TestFormatRuntime(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, Unknown},
		{-5, Unknown},
		{45, "45m"},
		{60, "1h 0m"},
		{125, "2h 5m"},
		{59, "59m"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRuntime(tt.minutes))
		})
	}
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected string
	}{
		{"iso date", "2024-03-15", "2024"},
		{"year only", "1999", "1999"},
		{"empty", "", UnknownYear},
		{"not a date", "not-a-date", UnknownYear},
		{"short", "202", UnknownYear},
		{"digits run on", "20240315", UnknownYear},
		{"padded", " 2010-07-16 ", "2010"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.expected, ExtractYear(tt.date))
			})
		})
	}
}

func TestYearNumber(t *testing.T) {
	assert.Equal(t, 1999, YearNumber("1999-03-31"))
	assert.Equal(t, 0, YearNumber("garbage"))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, Unknown, FormatMoney(0))
	assert.Equal(t, Unknown, FormatMoney(-1))
	assert.Equal(t, "$63,000,000", FormatMoney(63000000))
	assert.Equal(t, "$999", FormatMoney(999))
}

func TestParseMovieID(t *testing.T) {
	id, err := ParseMovieID(" 603 ")
	require.NoError(t, err)
	assert.Equal(t, 603, id)

	for _, input := range []string{"", "abc", "0", "-3", "12x"} {
		_, err := ParseMovieID(input)
		require.Error(t, err, input)
		assert.True(t, errors.Is(err, ErrInvalidMovieID), input)
	}
}

func TestMovieSummaryHelpers(t *testing.T) {
	m := MovieSummary{ReleaseDate: "1999-03-31", VoteAverage: 8.2}
	assert.Equal(t, "1999", m.Year())
	assert.Equal(t, "8.2", m.Rating())
	assert.False(t, m.HasPoster())
}
