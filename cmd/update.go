package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const defaultRepository = "bingebuddy/bingebuddy"

var (
	checkOnly  bool
	repository string
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	Args:              cobra.NoArgs,
	PersistentPreRunE: initializeLogger,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bingebuddy %s (built %s, %s/%s, %s)\n",
			appVersion, buildTime, runtime.GOOS, runtime.GOARCH, runtime.Version())
	},
}

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update bingebuddy to the latest release",
	Long: `Check GitHub releases for a newer version and replace the running binary.

Development builds cannot be updated in place.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: initializeLogger,
	RunE:              runUpdate,
}

func init() {
	rootCmd.AddCommand(versionCmd, updateCmd)

	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether an update is available")
	updateCmd.Flags().StringVar(&repository, "repository", defaultRepository, "GitHub repository to check (owner/name)")
}

// currentVersion parses the build version; dev builds are rejected
func currentVersion() (semver.Version, error) {
	v, err := semver.ParseTolerant(appVersion)
	if err != nil {
		return semver.Version{}, fmt.Errorf("cannot update development build %q: %w", appVersion, err)
	}
	return v, nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if !cmd.Flags().Changed("repository") && cfg != nil && cfg.Update.Repository != "" {
		repository = cfg.Update.Repository
	}

	current, err := currentVersion()
	if err != nil {
		return err
	}

	logger.Info().
		Str("repository", repository).
		Str("current", current.String()).
		Msg("Checking for updates")

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repository))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s/%s in %s", runtime.GOOS, runtime.GOARCH, repository)
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Printf("Current version %s is the latest\n", current)
		return nil
	}

	if checkOnly {
		fmt.Printf("Update available: %s -> %s\n", current, latest.Version())
		if latest.ReleaseNotes != "" {
			fmt.Printf("\nRelease notes:\n%s\n", latest.ReleaseNotes)
		}
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	logger.Info().
		Str("version", latest.Version()).
		Str("path", exe).
		Msg("Updated successfully")
	fmt.Printf("Successfully updated to version %s\n", latest.Version())
	return nil
}
