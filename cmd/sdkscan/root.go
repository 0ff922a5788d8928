// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for sdkscan.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"sdkscan/internal/config"
	"sdkscan/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables per-entry skip diagnostics on stderr
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// sdkRoot pins the SDK installation to inspect
	sdkRoot string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "sdkscan",
		Short: "Inspect an installed Android SDK",
		Long: TitleStyle.Render("sdkscan") + SubtitleStyle.Render(" - Inspect an installed Android SDK") + `

sdkscan validates the structure of an Android SDK installation and
catalogs everything inside it: command-line tools, build-tools versions,
platform-tools, platform (API level) packages, vendor add-ons, and
emulator system images.

The SDK root is resolved from (in order): an explicit argument or
--sdk-root, $ANDROID_HOME, $ANDROID_SDK_ROOT, the configured sdk_root,
and the standard per-OS install locations.

` + SubtitleStyle.Render("Examples:") + `
  sdkscan scan                      Scan the resolved SDK root
  sdkscan scan ~/Android/Sdk        Scan an explicit installation
  sdkscan list platforms            List installed API level packages
  sdkscan which aapt2               Print the path of an executable
  sdkscan export --format toml      Serialize the catalog`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print per-entry skip diagnostics")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the platform config dir)")
	rootCmd.PersistentFlags().StringVar(&sdkRoot, "sdk-root", "", "SDK installation to inspect")

	// Add subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(whichCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
