package tmdb

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ImageSize is a size segment understood by the image host
type ImageSize string

const (
	SizeW300     ImageSize = "w300"
	SizeW500     ImageSize = "w500"
	SizeW780     ImageSize = "w780"
	SizeW1280    ImageSize = "w1280"
	SizeOriginal ImageSize = "original"
)

// Default sizes per image kind
const (
	DefaultImageSize    = SizeW500
	DefaultPosterSize   = SizeW500
	DefaultBackdropSize = SizeW1280
)

var (
	imageSizes    = []ImageSize{SizeW300, SizeW500, SizeW780, SizeW1280, SizeOriginal}
	posterSizes   = []ImageSize{SizeW300, SizeW500, SizeW780}
	backdropSizes = []ImageSize{SizeW300, SizeW780, SizeW1280, SizeOriginal}
)

// Display tokens for values the helpers cannot render
const (
	Unknown     = "Unknown"
	UnknownYear = ""
)

// IsPosterSize reports whether size is valid for posters
func IsPosterSize(size ImageSize) bool {
	return slices.Contains(posterSizes, size)
}

// IsBackdropSize reports whether size is valid for backdrops
func IsBackdropSize(size ImageSize) bool {
	return slices.Contains(backdropSizes, size)
}

// ImageURL joins the image host, a size segment and a server-relative path.
// An empty path resolves to placeholder. Sizes outside the generic set
// fall back to DefaultImageSize.
func ImageURL(base, placeholder, path string, size ImageSize) string {
	if !slices.Contains(imageSizes, size) {
		size = DefaultImageSize
	}
	return buildImageURL(base, placeholder, path, size)
}

func buildImageURL(base, placeholder, path string, size ImageSize) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return placeholder
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(base, "/") + "/" + string(size) + path
}

// FormatRating renders a vote average with exactly one decimal place.
// Ties round up, so 7.25 renders as "7.3".
func FormatRating(value float64) string {
	return strconv.FormatFloat(math.Round(value*10)/10, 'f', 1, 64)
}

// FormatRuntime renders minutes as "2h 5m" or "45m"; zero is Unknown
func FormatRuntime(minutes int) string {
	if minutes <= 0 {
		return Unknown
	}
	hours, rest := minutes/60, minutes%60
	if hours == 0 {
		return strconv.Itoa(rest) + "m"
	}
	return strconv.Itoa(hours) + "h " + strconv.Itoa(rest) + "m"
}

// ExtractYear returns the leading four-digit year of an ISO date.
// Anything else yields UnknownYear.
func ExtractYear(date string) string {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return UnknownYear
	}
	for i := 0; i < 4; i++ {
		if date[i] < '0' || date[i] > '9' {
			return UnknownYear
		}
	}
	if len(date) > 4 && date[4] != '-' {
		return UnknownYear
	}
	return date[:4]
}

// YearNumber is ExtractYear as an int, 0 when unknown
func YearNumber(date string) int {
	year := ExtractYear(date)
	if year == UnknownYear {
		return 0
	}
	n, _ := strconv.Atoi(year)
	return n
}

// FormatMoney renders a dollar amount with thousands separators; zero is Unknown
func FormatMoney(amount int64) string {
	if amount <= 0 {
		return Unknown
	}
	return "$" + humanize.Comma(amount)
}

// ParseMovieID parses a movie identifier from user input
func ParseMovieID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, &ValidationError{Field: "movie ID", Value: s, Err: ErrInvalidMovieID}
	}
	return id, nil
}
