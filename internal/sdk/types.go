// SPDX-License-Identifier: MPL-2.0

// Package sdk inspects an installed Android SDK directory tree and builds an
// immutable catalog of its components: command-line tools, build-tools
// versions, platform-tools, platform (API level) packages, vendor add-ons,
// and emulator system images.
package sdk

import "strconv"

type (
	// Root is the validated SDK installation. It is fully populated by Scan
	// and never mutated afterwards.
	Root struct {
		// Path is the absolute path of the SDK root directory.
		Path string
		// Tools describes the mandatory tools/ subdirectory.
		Tools Tools
		// PlatformTools describes platform-tools/; zero-valued when the
		// subdirectory is missing or its descriptor is unreadable.
		PlatformTools PlatformTools
		// BuildTools lists every build-tools version with a readable descriptor.
		BuildTools []BuildTool
		// Platforms lists installed API level packages, sorted GA-before-preview
		// by ascending API level.
		Platforms []*Platform
		// Addons lists vendor add-ons, sorted with the same comparator.
		Addons []*Addon
		// SystemImages indexes emulator images by platform id, then tag id.
		SystemImages *ImageIndex
	}

	// Tools describes the tools/ subdirectory of the SDK root.
	Tools struct {
		Path    string
		Version string
		// Executables maps logical names (android, emulator, sdkmanager) to
		// absolute paths, or "" when the file is absent. Only a missing
		// emulator is fatal to construction.
		Executables map[string]string
	}

	// PlatformTools describes the optional platform-tools/ subdirectory.
	PlatformTools struct {
		Path    string
		Version string
		// Executables currently carries adb only.
		Executables map[string]string
	}

	// BuildTool is one installed build-tools/<version> package.
	BuildTool struct {
		Version string
		Path    string
		// Executables maps aapt, aapt2, aidl and zipalign to absolute paths
		// or "" when absent.
		Executables map[string]string
		// Dx is the path of lib/dx.jar, or "" when absent.
		Dx string
	}

	// Platform is one installed platforms/<name> package.
	Platform struct {
		// ID is the synthesized platform id: android-<codename-or-apiLevel>.
		ID string
		// Name is the human-readable display name.
		Name string
		// APILevel is the numeric API level; always non-zero for catalog entries.
		APILevel int
		// Codename is set for preview releases and empty for GA releases.
		Codename string
		Revision int
		Path     string
		// Version is the dotted framework version string (e.g. "9").
		Version string
		// ABIs maps tag id to the ABI names contributed by matching system images.
		ABIs map[string][]string
		// Skins is the platform's own skins merged with matching system-image
		// skins, deduplicated by name.
		Skins []string
		// DefaultSkin is resolved from sdk.properties with WVGA800 and
		// last-skin fallbacks; "" when no skins exist.
		DefaultSkin string
		MinToolsRev int
		// AndroidJar is the path of android.jar, or "" when absent.
		AndroidJar string
		// FrameworkAIDL is the path of framework.aidl, or "" when absent.
		FrameworkAIDL string
	}

	// Addon is one installed add-ons/<name> package. The fields below BasedOn
	// are copied by value from the base platform at construction time; they
	// are zero-valued when no GA platform with a matching API level exists.
	Addon struct {
		// ID is vendor:name:apiLevel.
		ID       string
		Name     string
		Vendor   string
		APILevel int
		Codename string
		Revision int
		Path     string
		// BasedOn is the id of the base platform, or "" when unresolved.
		BasedOn string

		ABIs          map[string][]string
		Skins         []string
		DefaultSkin   string
		MinToolsRev   int
		AndroidJar    string
		FrameworkAIDL string
	}

	// ImageABI is one system image leaf: an ABI with its bundled skins.
	ImageABI struct {
		ABI   string
		Skins []string
	}

	// ImageIndex is an insertion-ordered two-level map from platform id to
	// tag id to the image ABIs recorded under it. Enumeration order matches
	// the order in which entries were added, for reproducible output.
	ImageIndex struct {
		ids  []string
		byID map[string]*tagSet
	}

	tagSet struct {
		tags  []string
		byTag map[string][]ImageABI
	}
)

// NewImageIndex returns an empty image index.
func NewImageIndex() *ImageIndex {
	return &ImageIndex{byID: make(map[string]*tagSet)}
}

// Add appends img under the given platform id and tag id, creating either
// level on first use while preserving insertion order.
func (x *ImageIndex) Add(id, tag string, img ImageABI) {
	set, ok := x.byID[id]
	if !ok {
		set = &tagSet{byTag: make(map[string][]ImageABI)}
		x.byID[id] = set
		x.ids = append(x.ids, id)
	}
	if _, ok := set.byTag[tag]; !ok {
		set.tags = append(set.tags, tag)
	}
	set.byTag[tag] = append(set.byTag[tag], img)
}

// PlatformIDs returns the platform ids in insertion order.
func (x *ImageIndex) PlatformIDs() []string {
	return x.ids
}

// Tags returns the tag ids recorded under a platform id, in insertion order.
func (x *ImageIndex) Tags(id string) []string {
	if set, ok := x.byID[id]; ok {
		return set.tags
	}
	return nil
}

// Images returns the image ABIs recorded under a platform id and tag id.
func (x *ImageIndex) Images(id, tag string) []ImageABI {
	if set, ok := x.byID[id]; ok {
		return set.byTag[tag]
	}
	return nil
}

// Len returns the number of indexed platform ids.
func (x *ImageIndex) Len() int {
	return len(x.ids)
}

// platformID synthesizes the catalog id for an API level package: the
// codename for previews, the numeric level for GA releases.
func platformID(codename, apiLevel string) string {
	if codename != "" {
		return "android-" + codename
	}
	return "android-" + apiLevel
}

// atoi parses a trimmed decimal field, returning 0 for anything malformed.
// Descriptor numbers are advisory; a zero value simply fails the relevant
// completeness check.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
