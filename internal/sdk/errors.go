// SPDX-License-Identifier: MPL-2.0

package sdk

import "errors"

// The structural validation failures that abort catalog construction.
// Every other missing or malformed descriptor is absorbed as a per-entry
// skip and surfaces only through Diagnostics.
var (
	// ErrInvalidArgument is returned when the root path argument is empty.
	ErrInvalidArgument = errors.New("sdk root path must be a non-empty string")
	// ErrInvalidRoot is returned when the root directory does not exist.
	ErrInvalidRoot = errors.New("sdk root directory does not exist")
	// ErrMissingToolsDir is returned when the mandatory tools/ subdirectory is absent.
	ErrMissingToolsDir = errors.New("tools directory not found")
	// ErrMissingToolsDescriptor is returned when tools/source.properties is absent.
	ErrMissingToolsDescriptor = errors.New("tools descriptor not found")
	// ErrMissingVersion is returned when the tools descriptor has no Pkg.Revision.
	ErrMissingVersion = errors.New("tools descriptor has no Pkg.Revision")
	// ErrMissingEmulator is returned when the emulator executable does not resolve.
	ErrMissingEmulator = errors.New("emulator executable not found")
)
