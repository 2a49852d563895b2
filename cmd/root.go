package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bingebuddy/bingebuddy/catalog"
	"github.com/bingebuddy/bingebuddy/config"
	"github.com/bingebuddy/bingebuddy/filter"
	"github.com/bingebuddy/bingebuddy/tmdb"
)

var (
	cfgFile    string
	cfg        *config.Config
	logger     zerolog.Logger
	client     *tmdb.Client
	filters    *filter.Manager
	formatter  *catalog.ConsoleFormatter
	appVersion = "dev"
	buildTime  = "unknown"

	// Command flags
	language   string
	jsonOutput bool
	page       int
	filterExpr string
	preset     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bingebuddy",
	Short: "Browse movies from The Movie Database",
	Long: `bingebuddy is a CLI for browsing The Movie Database (TMDB).

It lists popular, now playing and top rated movies, shows full movie
details and searches the catalog by title. Result pages can be narrowed
with filter expressions or presets from the config file.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// SetVersion records build information for the version and update commands
func SetVersion(version, built string) {
	if version != "" {
		appVersion = version
	}
	if built != "" {
		buildTime = built
	}
	rootCmd.Version = appVersion
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "", "response language, e.g. tr-TR (overrides tmdb.language)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw results as JSON")
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client, err = tmdb.NewClient(cfg.TMDB.ClientConfig(), logger,
		tmdb.WithTimeout(cfg.TMDB.Timeout),
		tmdb.WithUserAgent(fmt.Sprintf("%s/%s", cfg.TMDB.UserAgent, appVersion)),
	)
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
	}
	if cmd.Flags().Changed("language") {
		client = client.WithLanguage(language)
	}

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filters); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	formatter = catalog.NewConsoleFormatter(client)

	logger.Debug().
		Str("language", client.Language()).
		Int("presets", len(cfg.Filters)).
		Msg("Initialized TMDB client")

	return nil
}

// initializeLogger sets up logging for commands that can run without a
// valid config. The config is used when it loads.
func initializeLogger(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		logger = setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true})
		logger.Debug().Err(err).Msg("Running without config")
		return nil
	}
	cfg = loaded
	logger = setupLogger(cfg.Logging)
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// fail logs the full error and returns the user-facing message
func fail(err error, msg string) error {
	logger.Error().Err(err).Msg(msg)
	return errors.New(catalog.Describe(err))
}

// printJSON writes v to w as indented JSON
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// displayOptions builds formatter options from config
func displayOptions() catalog.FormatOptions {
	return catalog.FormatOptions{
		ShowOverview: cfg.Display.ShowOverview,
		ShowImages:   cfg.Display.ShowImages,
		Limit:        cfg.Display.Limit,
	}
}
