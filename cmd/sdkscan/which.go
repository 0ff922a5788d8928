// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sdkscan/internal/sdk"
)

// whichBuildTools selects the build-tools version searched by `which`.
var whichBuildTools string

var whichCmd = &cobra.Command{
	Use:   "which <executable>",
	Short: "Print the absolute path of a cataloged executable",
	Long: `Print the absolute path of a cataloged executable.

Tools-level executables (android, emulator, sdkmanager) and platform-tools
executables (adb) are searched first. Build-tools executables (aapt, aapt2,
aidl, zipalign) are searched across all installed versions, or within one
version when --build-tools is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := loadCatalog(nil)
		if err != nil {
			return err
		}

		path, err := findExecutable(result.Root, args[0], whichBuildTools)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	whichCmd.Flags().StringVar(&whichBuildTools, "build-tools", "", "restrict the search to one build-tools version")
}

// findExecutable resolves name against the catalog: tools first, then
// platform-tools, then build-tools (newest version first, or the one pinned
// by version).
func findExecutable(root *sdk.Root, name, version string) (string, error) {
	if version == "" {
		if path := root.Tools.Executables[name]; path != "" {
			return path, nil
		}
		if path := root.PlatformTools.Executables[name]; path != "" {
			return path, nil
		}
	}

	for i := len(root.BuildTools) - 1; i >= 0; i-- {
		bt := root.BuildTools[i]
		if version != "" && bt.Version != version {
			continue
		}
		if path := bt.Executables[name]; path != "" {
			return path, nil
		}
		if name == "dx" && bt.Dx != "" {
			return bt.Dx, nil
		}
	}

	if version != "" {
		return "", fmt.Errorf("executable %q not found in build-tools %s", name, version)
	}
	return "", fmt.Errorf("executable %q not found in the catalog", name)
}
