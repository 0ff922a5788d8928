// SPDX-License-Identifier: MPL-2.0

package sdk

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"sdkscan/pkg/platform"
)

// fallbackSkin is preferred as the default emulator skin when
// sdk.properties does not name a usable one.
const fallbackSkin = "WVGA800"

// Scan validates the SDK installation rooted at dir and builds its catalog.
//
// The root and the mandatory tools/ subdirectory are validated first and any
// of the fatal conditions (ErrInvalidArgument, ErrInvalidRoot,
// ErrMissingToolsDir, ErrMissingToolsDescriptor, ErrMissingVersion,
// ErrMissingEmulator) aborts construction. The remaining subsystems are
// scanned in a fixed order because platforms consume the system-image index
// and add-ons consume the platform list: build-tools, platform-tools,
// system-images, platforms, add-ons. Candidates failing their completeness
// checks are dropped with a Diagnostic instead of failing the scan.
//
// The returned catalog is immutable: no mutation occurs after Scan returns.
func Scan(dir string) (*ScanResult, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, ErrInvalidArgument
	}
	if !isDir(dir) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoot, dir)
	}

	root := &Root{Path: dir, SystemImages: NewImageIndex()}
	if err := scanTools(root); err != nil {
		return nil, err
	}

	var diags []Diagnostic
	scanBuildTools(root, &diags)
	scanPlatformTools(root, &diags)
	scanSystemImages(root, &diags)
	scanPlatforms(root, &diags)
	scanAddons(root, &diags)

	sortPlatforms(root.Platforms)
	sortAddons(root.Addons)

	return &ScanResult{Root: root, Diagnostics: diags}, nil
}

// scanTools validates tools/ and resolves its executables. All four fatal
// tools-level conditions originate here.
func scanTools(root *Root) error {
	dir := filepath.Join(root.Path, "tools")
	if !isDir(dir) {
		return fmt.Errorf("%w: %s", ErrMissingToolsDir, dir)
	}

	desc, ok := ReadDescriptor(filepath.Join(dir, "source.properties"))
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingToolsDescriptor, filepath.Join(dir, "source.properties"))
	}
	version := desc[keyPkgRevision]
	if version == "" {
		return fmt.Errorf("%w: %s", ErrMissingVersion, filepath.Join(dir, "source.properties"))
	}

	executables := LocateExecutables(dir, map[string]string{
		"android":    "android" + platform.ScriptSuffix(),
		"emulator":   "emulator" + platform.ExeSuffix(),
		"sdkmanager": filepath.Join("bin", "sdkmanager"+platform.ScriptSuffix()),
	})
	// The emulator is the one executable whose absence is fatal; every other
	// unresolved executable stays "" in the map.
	if executables["emulator"] == "" {
		return fmt.Errorf("%w: %s", ErrMissingEmulator, dir)
	}

	root.Tools = Tools{Path: dir, Version: version, Executables: executables}
	return nil
}

// scanBuildTools catalogs every build-tools/<version> directory with a
// readable descriptor. Candidates without one are skipped whole: no partial
// entries.
func scanBuildTools(root *Root, diags *[]Diagnostic) {
	base := filepath.Join(root.Path, "build-tools")
	for _, name := range subdirs(base) {
		dir := filepath.Join(base, name)
		if _, ok := ReadDescriptor(filepath.Join(dir, "source.properties")); !ok {
			*diags = append(*diags, skipf(CodeBuildToolsSkipped, dir, "build-tools %s has no readable descriptor", name))
			continue
		}

		suffix := platform.ExeSuffix()
		entry := BuildTool{
			Version: name,
			Path:    dir,
			Executables: LocateExecutables(dir, map[string]string{
				"aapt":     "aapt" + suffix,
				"aapt2":    "aapt2" + suffix,
				"aidl":     "aidl" + suffix,
				"zipalign": "zipalign" + suffix,
			}),
		}
		if dx := filepath.Join(dir, "lib", "dx.jar"); isFile(dx) {
			entry.Dx = dx
		}
		root.BuildTools = append(root.BuildTools, entry)
	}
}

// scanPlatformTools populates the platform-tools entry when present. Absence
// or an unreadable descriptor leaves the zero value; it is never fatal.
func scanPlatformTools(root *Root, diags *[]Diagnostic) {
	dir := filepath.Join(root.Path, "platform-tools")
	if !isDir(dir) {
		return
	}
	desc, ok := ReadDescriptor(filepath.Join(dir, "source.properties"))
	if !ok {
		*diags = append(*diags, skipf(CodePlatformToolsSkipped, dir, "platform-tools has no readable descriptor"))
		return
	}

	root.PlatformTools = PlatformTools{
		Path:    dir,
		Version: desc[keyPkgRevision],
		Executables: LocateExecutables(dir, map[string]string{
			"adb": "adb" + platform.ExeSuffix(),
		}),
	}
}

// scanSystemImages walks the three-level system-images/<platform>/<tag>/<abi>
// tree. A leaf contributes to the index only when its descriptor supplies
// API level, tag id and ABI; anything less is a skip.
func scanSystemImages(root *Root, diags *[]Diagnostic) {
	base := filepath.Join(root.Path, "system-images")
	for _, platDir := range subdirs(base) {
		for _, tagDir := range subdirs(filepath.Join(base, platDir)) {
			for _, abiDir := range subdirs(filepath.Join(base, platDir, tagDir)) {
				leaf := filepath.Join(base, platDir, tagDir, abiDir)
				desc, ok := ReadDescriptor(filepath.Join(leaf, "source.properties"))
				if !ok {
					*diags = append(*diags, skipf(CodeSystemImageSkipped, leaf, "system image has no readable descriptor"))
					continue
				}

				api, tag, abi := desc[keyAPILevel], desc[keyTagID], desc[keyABI]
				if api == "" || tag == "" || abi == "" {
					*diags = append(*diags, skipf(CodeSystemImageSkipped, leaf,
						"system image descriptor is incomplete (api=%q tag=%q abi=%q)", api, tag, abi))
					continue
				}

				id := platformID(desc[keyCodename], api)
				root.SystemImages.Add(id, tag, ImageABI{ABI: abi, Skins: listSkins(leaf)})
			}
		}
	}
}

// scanPlatforms catalogs every platforms/<name> directory with a readable
// descriptor, a non-zero API level and a build.prop file, then merges in the
// ABI and skin data of system images recorded under the same platform id.
func scanPlatforms(root *Root, diags *[]Diagnostic) {
	base := filepath.Join(root.Path, "platforms")
	for _, name := range subdirs(base) {
		dir := filepath.Join(base, name)
		desc, ok := ReadDescriptor(filepath.Join(dir, "source.properties"))
		if !ok {
			*diags = append(*diags, skipf(CodePlatformSkipped, dir, "platform %s has no readable descriptor", name))
			continue
		}
		api := atoi(desc[keyAPILevel])
		if api == 0 {
			*diags = append(*diags, skipf(CodePlatformSkipped, dir, "platform %s has no usable API level", name))
			continue
		}
		if !isFile(filepath.Join(dir, "build.prop")) {
			*diags = append(*diags, skipf(CodePlatformSkipped, dir, "platform %s has no build.prop", name))
			continue
		}

		codename := desc[keyCodename]
		p := &Platform{
			ID:          platformID(codename, strconv.Itoa(api)),
			APILevel:    api,
			Codename:    codename,
			Revision:    atoi(desc[keyPkgRevision]),
			Path:        dir,
			Version:     desc[keyPlatformVersion],
			ABIs:        make(map[string][]string),
			Skins:       listSkins(dir),
			MinToolsRev: atoi(desc[keyMinToolsRev]),
		}
		p.Name = displayName(p.Version, p.ID)

		// The default skin is chosen from the platform's own skins before any
		// system-image skins are merged in.
		props, _ := ReadDescriptor(filepath.Join(dir, "sdk.properties"))
		p.DefaultSkin = defaultSkin(props[keyDefaultSkin], p.Skins)

		for _, tag := range root.SystemImages.Tags(p.ID) {
			for _, img := range root.SystemImages.Images(p.ID, tag) {
				if !slices.Contains(p.ABIs[tag], img.ABI) {
					p.ABIs[tag] = append(p.ABIs[tag], img.ABI)
				}
				for _, skin := range img.Skins {
					if !slices.Contains(p.Skins, skin) {
						p.Skins = append(p.Skins, skin)
					}
				}
			}
		}

		if jar := filepath.Join(dir, "android.jar"); isFile(jar) {
			p.AndroidJar = jar
		}
		if aidl := filepath.Join(dir, "framework.aidl"); isFile(aidl) {
			p.FrameworkAIDL = aidl
		}

		root.Platforms = append(root.Platforms, p)
	}
}

// scanAddons catalogs every add-ons/<name> directory whose descriptor
// supplies vendor, name and a valid API level, resolving each against the
// platforms discovered so far. Resolution deliberately runs against the
// unsorted platform list: the first GA platform with a matching API level in
// directory-enumeration order wins.
func scanAddons(root *Root, diags *[]Diagnostic) {
	base := filepath.Join(root.Path, "add-ons")
	for _, name := range subdirs(base) {
		dir := filepath.Join(base, name)
		desc, ok := ReadDescriptor(filepath.Join(dir, "source.properties"))
		if !ok {
			*diags = append(*diags, skipf(CodeAddonSkipped, dir, "add-on %s has no readable descriptor", name))
			continue
		}
		vendor, display := desc[keyVendorDisplay], desc[keyNameDisplay]
		api := atoi(desc[keyAPILevel])
		if vendor == "" || display == "" || api == 0 {
			*diags = append(*diags, skipf(CodeAddonSkipped, dir,
				"add-on %s descriptor is incomplete (vendor=%q name=%q api=%q)", name, vendor, display, desc[keyAPILevel]))
			continue
		}

		a := &Addon{
			ID:       vendor + ":" + display + ":" + strconv.Itoa(api),
			Name:     display,
			Vendor:   vendor,
			APILevel: api,
			Codename: desc[keyCodename],
			Revision: atoi(desc[keyPkgRevision]),
			Path:     dir,
		}

		if bp := findBasePlatform(root.Platforms, api); bp != nil {
			a.BasedOn = bp.ID
			// Copy the inherited fields by value so a base platform can never
			// retroactively alter an add-on.
			a.ABIs = cloneABIs(bp.ABIs)
			a.Skins = slices.Clone(bp.Skins)
			a.DefaultSkin = bp.DefaultSkin
			a.MinToolsRev = bp.MinToolsRev
			a.AndroidJar = bp.AndroidJar
			a.FrameworkAIDL = bp.FrameworkAIDL
		} else {
			*diags = append(*diags, skipf(CodeAddonBaseUnresolved, dir,
				"add-on %s has no installed GA platform for API level %d", name, api))
		}

		root.Addons = append(root.Addons, a)
	}
}

// findBasePlatform returns the first already-discovered GA platform with the
// given API level, or nil. Previews never serve as a base.
func findBasePlatform(platforms []*Platform, api int) *Platform {
	for _, p := range platforms {
		if p.APILevel == api && p.Codename == "" {
			return p
		}
	}
	return nil
}

// defaultSkin resolves the default emulator skin: the configured preference
// when it names a known skin, else WVGA800 when present, else the last skin,
// else "".
func defaultSkin(preferred string, skins []string) string {
	if preferred != "" && slices.Contains(skins, preferred) {
		return preferred
	}
	if slices.Contains(skins, fallbackSkin) {
		return fallbackSkin
	}
	if len(skins) > 0 {
		return skins[len(skins)-1]
	}
	return ""
}

// listSkins enumerates dir/skins, keeping only subdirectories that carry a
// hardware.ini. A missing skins folder yields nil.
func listSkins(dir string) []string {
	skinsDir := filepath.Join(dir, "skins")
	var skins []string
	for _, name := range subdirs(skinsDir) {
		if isFile(filepath.Join(skinsDir, name, "hardware.ini")) {
			skins = append(skins, name)
		}
	}
	return skins
}

// subdirs returns the names of the immediate subdirectories of dir, in the
// enumeration order of the underlying file system. A missing or unreadable
// dir yields nil.
func subdirs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

// displayName builds the human-readable platform name from the framework
// version string, falling back to the id.
func displayName(version, id string) string {
	if version != "" {
		return "Android " + version
	}
	return id
}

func cloneABIs(abis map[string][]string) map[string][]string {
	if abis == nil {
		return nil
	}
	cloned := make(map[string][]string, len(abis))
	for tag, list := range abis {
		cloned[tag] = slices.Clone(list)
	}
	return cloned
}
