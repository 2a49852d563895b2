package config

import (
	"time"

	"github.com/bingebuddy/bingebuddy/tmdb"
)

// Config represents the complete configuration structure
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	Filters FilterConfig  `mapstructure:"filters"`
	Display DisplayConfig `mapstructure:"display"`
	Logging LoggingConfig `mapstructure:"logging"`
	Update  UpdateConfig  `mapstructure:"update"`
}

// TMDBConfig holds TMDB API connection details
type TMDBConfig struct {
	APIKey           string        `mapstructure:"api_key"`
	BaseURL          string        `mapstructure:"base_url"`
	ImageBaseURL     string        `mapstructure:"image_base_url"`
	Language         string        `mapstructure:"language"`
	PlaceholderImage string        `mapstructure:"placeholder_image"`
	Timeout          time.Duration `mapstructure:"timeout"`
	UserAgent        string        `mapstructure:"user_agent"`
}

// ClientConfig converts the section into the client's configuration
func (c TMDBConfig) ClientConfig() tmdb.Config {
	return tmdb.Config{
		APIKey:           c.APIKey,
		BaseURL:          c.BaseURL,
		ImageBaseURL:     c.ImageBaseURL,
		Language:         c.Language,
		PlaceholderImage: c.PlaceholderImage,
	}
}

// FilterConfig maps preset names to filter expressions
type FilterConfig map[string]string

// DisplayConfig controls console output
type DisplayConfig struct {
	ShowOverview bool `mapstructure:"show_overview"`
	ShowImages   bool `mapstructure:"show_images"`
	Limit        int  `mapstructure:"limit"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// UpdateConfig controls self-update
type UpdateConfig struct {
	Repository string `mapstructure:"repository"`
}
