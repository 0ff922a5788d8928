// SPDX-License-Identifier: MPL-2.0

package sdk

import (
	"os"
	"path/filepath"
)

// LocateExecutables resolves each logical executable name against baseDir.
// Every template is a relative path that already embeds the host-appropriate
// suffix (see pkg/platform). Names whose file does not exist map to "", so
// the result's key set always equals the template key set.
func LocateExecutables(baseDir string, templates map[string]string) map[string]string {
	located := make(map[string]string, len(templates))
	for name, rel := range templates {
		path := filepath.Join(baseDir, rel)
		if isFile(path) {
			located[name] = path
		} else {
			located[name] = ""
		}
	}
	return located
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
