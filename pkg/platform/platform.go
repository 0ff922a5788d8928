// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
package platform

import "runtime"

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// ExeSuffix returns the suffix of native executables on the current host:
// ".exe" on Windows, empty elsewhere.
func ExeSuffix() string {
	if runtime.GOOS == Windows {
		return ".exe"
	}
	return ""
}

// ScriptSuffix returns the suffix of launcher scripts on the current host:
// ".bat" on Windows, empty elsewhere. SDK tools shipped as scripts (android,
// sdkmanager) use this instead of ExeSuffix.
func ScriptSuffix() string {
	if runtime.GOOS == Windows {
		return ".bat"
	}
	return ""
}
