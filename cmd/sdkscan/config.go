// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sdkscan/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect sdkscan configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "sdk_root: %s\n", orUnset(cfg.SDKRoot))
		for _, extra := range cfg.ExtraRoots {
			fmt.Fprintf(out, "extra_root: %s\n", extra)
		}
		fmt.Fprintf(out, "ui.verbose: %v\n", cfg.UI.Verbose)
		fmt.Fprintf(out, "export.format: %s\n", cfg.Export.Format)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := config.ConfigFilePath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
