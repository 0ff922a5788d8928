// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"sdkscan/internal/config"
	"sdkscan/internal/issue"
	"sdkscan/internal/sdk"
)

var scanCmd = &cobra.Command{
	Use:   "scan [sdk-root]",
	Short: "Scan an SDK installation and print a catalog summary",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := loadCatalog(args)
		if err != nil {
			return err
		}
		printSummary(cmd, result.Root)
		return nil
	},
}

// diagLogger renders per-entry skip diagnostics. The scanning core never
// logs; rendering policy lives here.
var diagLogger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "sdkscan",
})

// loadCatalog resolves the SDK root from the positional argument, flags,
// environment and config, scans it, and renders diagnostics when verbose.
// Fatal scan failures come back as actionable errors with a rendered help
// page where one is registered.
func loadCatalog(args []string) (*sdk.ScanResult, error) {
	explicit := sdkRoot
	if len(args) > 0 {
		explicit = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	root, err := config.ResolveRoot(explicit, cfg)
	if err != nil {
		return nil, actionable(err, "")
	}

	result, err := sdk.Scan(root)
	if err != nil {
		return nil, actionable(err, root)
	}

	if verbose {
		for _, d := range result.Diagnostics {
			diagLogger.Warn(d.Message, "code", d.Code, "path", d.Path)
		}
	}
	return result, nil
}

// actionable wraps a root-resolution or scan failure with user guidance.
func actionable(err error, root string) error {
	ctx := issue.NewErrorContext().
		WithOperation("scan sdk root").
		WithResource(root).
		Wrap(err)

	if page := issue.Lookup(issueID(err)); page != nil {
		if rendered, rerr := page.Render("auto"); rerr == nil {
			fmt.Fprintln(os.Stderr, rendered)
		}
	}

	switch {
	case errors.Is(err, sdk.ErrMissingEmulator):
		ctx.WithSuggestion("Install the emulator package with 'sdkmanager emulator'")
	case errors.Is(err, sdk.ErrMissingToolsDir),
		errors.Is(err, sdk.ErrMissingToolsDescriptor),
		errors.Is(err, sdk.ErrMissingVersion):
		ctx.WithSuggestion("Reinstall the SDK command-line tools")
	case errors.Is(err, sdk.ErrInvalidRoot), errors.Is(err, config.ErrNoSDKRoot):
		ctx.WithSuggestion("Pass the SDK location explicitly: sdkscan scan /path/to/sdk")
	}
	return ctx.Build()
}

// issueID maps a fatal error to its registered help page id (0 when none).
func issueID(err error) issue.Id {
	switch {
	case errors.Is(err, sdk.ErrInvalidRoot):
		return issue.InvalidRootId
	case errors.Is(err, sdk.ErrMissingToolsDir):
		return issue.MissingToolsDirId
	case errors.Is(err, sdk.ErrMissingToolsDescriptor):
		return issue.MissingToolsDescriptorId
	case errors.Is(err, sdk.ErrMissingVersion):
		return issue.MissingVersionId
	case errors.Is(err, sdk.ErrMissingEmulator):
		return issue.MissingEmulatorId
	case errors.Is(err, config.ErrNoSDKRoot):
		return issue.NoSDKRootId
	default:
		return 0
	}
}

func printSummary(cmd *cobra.Command, root *sdk.Root) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, TitleStyle.Render("Android SDK")+" "+PathStyle.Render(root.Path))
	fmt.Fprintf(out, "  tools %s", root.Tools.Version)
	if root.PlatformTools.Version != "" {
		fmt.Fprintf(out, ", platform-tools %s", root.PlatformTools.Version)
	}
	fmt.Fprintln(out)

	if len(root.BuildTools) > 0 {
		fmt.Fprintln(out, SubtitleStyle.Render("build-tools:"))
		for _, bt := range root.BuildTools {
			fmt.Fprintf(out, "  %s\n", bt.Version)
		}
	}
	if len(root.Platforms) > 0 {
		fmt.Fprintln(out, SubtitleStyle.Render("platforms:"))
		for _, p := range root.Platforms {
			fmt.Fprintf(out, "  %-14s %s (API %d)\n", p.ID, p.Name, p.APILevel)
		}
	}
	if len(root.Addons) > 0 {
		fmt.Fprintln(out, SubtitleStyle.Render("add-ons:"))
		for _, a := range root.Addons {
			fmt.Fprintf(out, "  %s\n", a.ID)
		}
	}
	if root.SystemImages.Len() > 0 {
		fmt.Fprintln(out, SubtitleStyle.Render("system-images:"))
		for _, id := range root.SystemImages.PlatformIDs() {
			for _, tag := range root.SystemImages.Tags(id) {
				for _, img := range root.SystemImages.Images(id, tag) {
					fmt.Fprintf(out, "  %s/%s/%s\n", id, tag, img.ABI)
				}
			}
		}
	}
}
