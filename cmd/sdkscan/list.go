// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List one catalog collection",
}

var listPlatformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List installed API level packages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		result, err := loadCatalog(nil)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, p := range result.Root.Platforms {
			kind := "GA"
			if p.Codename != "" {
				kind = "preview " + p.Codename
			}
			fmt.Fprintf(out, "%-16s API %-3d %-12s %s\n", p.ID, p.APILevel, kind, p.Name)
		}
		return nil
	},
}

var listBuildToolsCmd = &cobra.Command{
	Use:   "build-tools",
	Short: "List installed build-tools versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		result, err := loadCatalog(nil)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, bt := range result.Root.BuildTools {
			fmt.Fprintf(out, "%-10s %s\n", bt.Version, PathStyle.Render(bt.Path))
		}
		return nil
	},
}

var listImagesCmd = &cobra.Command{
	Use:   "images",
	Short: "List installed emulator system images",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		result, err := loadCatalog(nil)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		images := result.Root.SystemImages
		for _, id := range images.PlatformIDs() {
			for _, tag := range images.Tags(id) {
				for _, img := range images.Images(id, tag) {
					fmt.Fprintf(out, "%s;%s;%s\n", id, tag, img.ABI)
				}
			}
		}
		return nil
	},
}

var listAddonsCmd = &cobra.Command{
	Use:   "addons",
	Short: "List installed vendor add-ons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		result, err := loadCatalog(nil)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, a := range result.Root.Addons {
			based := a.BasedOn
			if based == "" {
				based = "(no base platform)"
			}
			fmt.Fprintf(out, "%-40s based on %s\n", a.ID, based)
		}
		return nil
	},
}

func init() {
	listCmd.AddCommand(listPlatformsCmd)
	listCmd.AddCommand(listBuildToolsCmd)
	listCmd.AddCommand(listImagesCmd)
	listCmd.AddCommand(listAddonsCmd)
}
