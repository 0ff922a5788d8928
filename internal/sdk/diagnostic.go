// SPDX-License-Identifier: MPL-2.0

package sdk

import "fmt"

const (
	// SeverityWarning indicates a recoverable per-entry skip.
	SeverityWarning Severity = "warning"
)

// Skip codes emitted by Scan. One code per candidate kind, with the message
// carrying the specific completeness check that failed.
const (
	CodeBuildToolsSkipped    = "build_tools_skipped"
	CodePlatformToolsSkipped = "platform_tools_skipped"
	CodeSystemImageSkipped   = "system_image_skipped"
	CodePlatformSkipped      = "platform_skipped"
	CodeAddonSkipped         = "addon_skipped"
	CodeAddonBaseUnresolved  = "addon_base_unresolved"
)

type (
	// Severity represents diagnostic severity.
	Severity string

	// Diagnostic records why one candidate entry was excluded from the
	// catalog. Diagnostics are returned to callers (rather than logged) so
	// rendering policy stays outside the scanning core.
	Diagnostic struct {
		// Severity is the diagnostic level.
		Severity Severity
		// Code is a machine-readable identifier (e.g. "platform_skipped").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the directory or file the diagnostic refers to.
		Path string
	}

	// ScanResult bundles the constructed catalog with the per-entry skip
	// diagnostics produced while building it.
	ScanResult struct {
		Root        *Root
		Diagnostics []Diagnostic
	}
)

func skipf(code, path, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Path:     path,
	}
}
