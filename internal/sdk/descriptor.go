// SPDX-License-Identifier: MPL-2.0

package sdk

import (
	"os"
	"strings"
)

// Descriptor key constants for the source.properties format used across
// the SDK tree. Centralized here to avoid scattered magic strings.
const (
	keyPkgRevision     = "Pkg.Revision"
	keyAPILevel        = "AndroidVersion.ApiLevel"
	keyCodename        = "AndroidVersion.CodeName"
	keyTagID           = "SystemImage.TagId"
	keyABI             = "SystemImage.Abi"
	keyPlatformVersion = "Platform.Version"
	keyMinToolsRev     = "Platform.MinToolsRev"
	keyVendorDisplay   = "Addon.VendorDisplay"
	keyNameDisplay     = "Addon.NameDisplay"
	keyDefaultSkin     = "sdk.skin.default"
)

// Descriptor is the parsed content of one source.properties-style file:
// a flat mapping from trimmed key to trimmed value.
type Descriptor map[string]string

// ReadDescriptor parses the key/value descriptor file at path. The second
// return value is false when the file does not exist or cannot be read,
// which is distinct from a file that exists but yields no pairs.
//
// Each line is split on its first '=' with both sides trimmed. Lines
// without a '=' or with an empty key (blank lines, comments, malformed
// content) are ignored. A later duplicate key overwrites the earlier one.
func ReadDescriptor(path string) (Descriptor, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	d := make(Descriptor)
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	for _, line := range strings.Split(content, "\n") {
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		d[key] = strings.TrimSpace(value)
	}
	return d, true
}
