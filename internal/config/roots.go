// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"sdkscan/pkg/platform"
)

// ErrNoSDKRoot is returned when no candidate directory exists on disk.
var ErrNoSDKRoot = errors.New("no Android SDK installation found")

// ExpandPath resolves a user-supplied directory to an absolute path:
// a leading "~" expands to the home directory, environment-style tokens
// ($VAR and ${VAR}) are substituted, and the result is made absolute.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand %q: %w", path, err)
		}
		path = home + path[1:]
	}
	path = os.ExpandEnv(path)

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %q: %w", path, err)
	}
	return abs, nil
}

// DefaultRoots returns the static per-OS candidate installation directories,
// in probe order: the Android Studio default first, then legacy locations.
func DefaultRoots() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	switch runtime.GOOS {
	case platform.Darwin:
		return []string{
			filepath.Join(home, "Library", "Android", "sdk"),
			filepath.Join(home, "Library", "Android", "Sdk"),
		}
	case platform.Windows:
		local := os.Getenv("LOCALAPPDATA")
		if local == "" {
			local = filepath.Join(home, "AppData", "Local")
		}
		return []string{filepath.Join(local, "Android", "Sdk")}
	default:
		return []string{
			filepath.Join(home, "Android", "Sdk"),
			filepath.Join(home, "android-sdk"),
		}
	}
}

// ResolveRoot picks the SDK root directory to scan. Candidates are tried in
// order: the explicit argument (flag or positional), $ANDROID_HOME,
// $ANDROID_SDK_ROOT, the configured sdk_root and extra_roots, then the
// per-OS defaults. Each candidate is expanded before probing; the first one
// that is an existing directory wins.
//
// An explicit argument is authoritative: it is returned even when the
// directory does not exist, so the scanner can report ErrInvalidRoot for
// the path the user actually named.
func ResolveRoot(explicit string, cfg *Config) (string, error) {
	if explicit != "" {
		return ExpandPath(explicit)
	}

	var candidates []string
	for _, env := range []string{"ANDROID_HOME", "ANDROID_SDK_ROOT"} {
		if v := os.Getenv(env); v != "" {
			candidates = append(candidates, v)
		}
	}
	if cfg != nil {
		if cfg.SDKRoot != "" {
			candidates = append(candidates, cfg.SDKRoot)
		}
		candidates = append(candidates, cfg.ExtraRoots...)
	}
	candidates = append(candidates, DefaultRoots()...)

	for _, c := range candidates {
		abs, err := ExpandPath(c)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", ErrNoSDKRoot
}
