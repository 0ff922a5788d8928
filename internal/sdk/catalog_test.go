// SPDX-License-Identifier: MPL-2.0

package sdk

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"sdkscan/internal/testutil"
)

func hasDiagnostic(diags []Diagnostic, code string) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestScan_FatalValidation(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		if _, err := Scan("  "); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Scan() error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("nonexistent root", func(t *testing.T) {
		if _, err := Scan(filepath.Join(t.TempDir(), "no-such-sdk")); !errors.Is(err, ErrInvalidRoot) {
			t.Errorf("Scan() error = %v, want ErrInvalidRoot", err)
		}
	})

	t.Run("missing tools directory", func(t *testing.T) {
		tree := testutil.NewSDKTree(t)
		tree.Mkdir("platforms")
		if _, err := Scan(tree.Root); !errors.Is(err, ErrMissingToolsDir) {
			t.Errorf("Scan() error = %v, want ErrMissingToolsDir", err)
		}
	})

	t.Run("missing tools descriptor", func(t *testing.T) {
		tree := testutil.NewSDKTree(t)
		tree.Mkdir("tools")
		if _, err := Scan(tree.Root); !errors.Is(err, ErrMissingToolsDescriptor) {
			t.Errorf("Scan() error = %v, want ErrMissingToolsDescriptor", err)
		}
	})

	t.Run("missing revision key", func(t *testing.T) {
		tree := testutil.NewSDKTree(t)
		tree.WriteFile("tools/source.properties", "Pkg.Desc = Android SDK Tools\n")
		if _, err := Scan(tree.Root); !errors.Is(err, ErrMissingVersion) {
			t.Errorf("Scan() error = %v, want ErrMissingVersion", err)
		}
	})

	t.Run("missing emulator is fatal despite other valid content", func(t *testing.T) {
		tree := testutil.NewSDKTree(t)
		tree.WriteFile("tools/source.properties", "Pkg.Revision = 25.2.5\n")
		tree.WriteFile("tools/android", "")
		tree.WithPlatform("android-23", "23", "")
		if _, err := Scan(tree.Root); !errors.Is(err, ErrMissingEmulator) {
			t.Errorf("Scan() error = %v, want ErrMissingEmulator", err)
		}
	})
}

func TestScan_Tools(t *testing.T) {
	tree := testutil.NewSDKTree(t)
	tree.WithTools("25.2.5")

	result, err := Scan(tree.Root)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}

	tools := result.Root.Tools
	if tools.Version != "25.2.5" {
		t.Errorf("Tools.Version = %q, want 25.2.5", tools.Version)
	}
	if tools.Path != filepath.Join(tree.Root, "tools") {
		t.Errorf("Tools.Path = %q, want tools subdirectory", tools.Path)
	}
	for _, name := range []string{"android", "emulator", "sdkmanager"} {
		if tools.Executables[name] == "" {
			t.Errorf("Tools.Executables[%s] is empty, want a resolved path", name)
		}
	}
}

func TestScan_ToleratesMissingOptionalExecutables(t *testing.T) {
	tree := testutil.NewSDKTree(t)
	// Emulator only: android and sdkmanager stay unresolved but non-fatal.
	tree.WriteFile("tools/source.properties", "Pkg.Revision = 25.2.5\n")
	tree.WriteFile("tools/emulator", "")

	result, err := Scan(tree.Root)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}
	if got := result.Root.Tools.Executables["android"]; got != "" {
		t.Errorf("Executables[android] = %q, want empty", got)
	}
	if got := result.Root.Tools.Executables["sdkmanager"]; got != "" {
		t.Errorf("Executables[sdkmanager] = %q, want empty", got)
	}
}

func TestScan_BuildTools(t *testing.T) {
	tree := testutil.NewSDKTree(t)
	tree.WithTools("25.2.5")
	tree.WithBuildTools("28.0.3")
	tree.WriteFile("build-tools/28.0.3/lib/dx.jar", "")
	// Candidate without a descriptor is excluded entirely, not partially.
	tree.WriteFile("build-tools/29.0.0/aapt", "")

	result, err := Scan(tree.Root)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}

	if len(result.Root.BuildTools) != 1 {
		t.Fatalf("len(BuildTools) = %d, want 1", len(result.Root.BuildTools))
	}
	bt := result.Root.BuildTools[0]
	if bt.Version != "28.0.3" {
		t.Errorf("BuildTools[0].Version = %q, want 28.0.3", bt.Version)
	}
	for _, name := range []string{"aapt", "aapt2", "aidl", "zipalign"} {
		if bt.Executables[name] == "" {
			t.Errorf("BuildTools[0].Executables[%s] is empty, want a resolved path", name)
		}
	}
	if bt.Dx != filepath.Join(tree.Root, "build-tools", "28.0.3", "lib", "dx.jar") {
		t.Errorf("BuildTools[0].Dx = %q, want lib/dx.jar path", bt.Dx)
	}
	if !hasDiagnostic(result.Diagnostics, CodeBuildToolsSkipped) {
		t.Error("expected a build_tools_skipped diagnostic for 29.0.0")
	}
}

func TestScan_PlatformTools(t *testing.T) {
	t.Run("absent is not fatal", func(t *testing.T) {
		tree := testutil.NewSDKTree(t)
		tree.WithTools("25.2.5")

		result, err := Scan(tree.Root)
		if err != nil {
			t.Fatalf("Scan() returned error: %v", err)
		}
		if result.Root.PlatformTools.Path != "" {
			t.Errorf("PlatformTools.Path = %q for missing subdirectory, want empty", result.Root.PlatformTools.Path)
		}
	})

	t.Run("populated when descriptor is readable", func(t *testing.T) {
		tree := testutil.NewSDKTree(t)
		tree.WithTools("25.2.5")
		tree.WriteFile("platform-tools/source.properties", "Pkg.Revision = 28.0.1\n")
		tree.WriteFile("platform-tools/adb", "")

		result, err := Scan(tree.Root)
		if err != nil {
			t.Fatalf("Scan() returned error: %v", err)
		}
		pt := result.Root.PlatformTools
		if pt.Version != "28.0.1" {
			t.Errorf("PlatformTools.Version = %q, want 28.0.1", pt.Version)
		}
		if pt.Executables["adb"] == "" {
			t.Error("PlatformTools.Executables[adb] is empty, want a resolved path")
		}
	})

	t.Run("unreadable descriptor leaves zero value", func(t *testing.T) {
		tree := testutil.NewSDKTree(t)
		tree.WithTools("25.2.5")
		tree.Mkdir("platform-tools")

		result, err := Scan(tree.Root)
		if err != nil {
			t.Fatalf("Scan() returned error: %v", err)
		}
		if result.Root.PlatformTools.Version != "" {
			t.Errorf("PlatformTools.Version = %q, want empty", result.Root.PlatformTools.Version)
		}
		if !hasDiagnostic(result.Diagnostics, CodePlatformToolsSkipped) {
			t.Error("expected a platform_tools_skipped diagnostic")
		}
	})
}

func TestScan_SystemImages(t *testing.T) {
	tree := testutil.NewSDKTree(t)
	tree.WithTools("25.2.5")
	tree.WithSystemImage("android-23", "google_apis", "x86", "23")
	tree.WithSkin("system-images/android-23/google_apis/x86", "WXGA720")
	// Skin directory without hardware.ini must not be listed.
	tree.Mkdir("system-images/android-23/google_apis/x86/skins/broken")
	// Leaf missing the ABI key contributes nothing.
	tree.WriteFile("system-images/android-23/default/x86_64/source.properties",
		"AndroidVersion.ApiLevel=23\nSystemImage.TagId=default\n")

	result, err := Scan(tree.Root)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}

	images := result.Root.SystemImages
	if got, want := images.PlatformIDs(), []string{"android-23"}; !slices.Equal(got, want) {
		t.Fatalf("PlatformIDs() = %v, want %v", got, want)
	}
	if got, want := images.Tags("android-23"), []string{"google_apis"}; !slices.Equal(got, want) {
		t.Errorf("Tags(android-23) = %v, want %v", got, want)
	}
	leaf := images.Images("android-23", "google_apis")
	if len(leaf) != 1 || leaf[0].ABI != "x86" {
		t.Fatalf("Images(android-23, google_apis) = %v, want one x86 entry", leaf)
	}
	if got, want := leaf[0].Skins, []string{"WXGA720"}; !slices.Equal(got, want) {
		t.Errorf("image skins = %v, want %v", got, want)
	}
	if !hasDiagnostic(result.Diagnostics, CodeSystemImageSkipped) {
		t.Error("expected a system_image_skipped diagnostic for the incomplete leaf")
	}
}

func TestScan_SystemImagePreviewID(t *testing.T) {
	tree := testutil.NewSDKTree(t)
	tree.WithTools("25.2.5")
	tree.WriteFile("system-images/android-N/default/x86/source.properties",
		"AndroidVersion.ApiLevel=23\nAndroidVersion.CodeName=N\nSystemImage.TagId=default\nSystemImage.Abi=x86\n")

	result, err := Scan(tree.Root)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}
	if got, want := result.Root.SystemImages.PlatformIDs(), []string{"android-N"}; !slices.Equal(got, want) {
		t.Errorf("PlatformIDs() = %v, want %v", got, want)
	}
}

func TestScan_Platforms(t *testing.T) {
	tree := testutil.NewSDKTree(t)
	tree.WithTools("25.2.5")
	tree.WithPlatform("android-23", "23", "",
		"Pkg.Revision=3", "Platform.Version=6.0", "Platform.MinToolsRev=22")
	tree.WithSkin("platforms/android-23", "HVGA")
	tree.WithSkin("platforms/android-23", "WVGA800")
	tree.WithSystemImage("android-23", "google_apis", "x86", "23")
	tree.WithSkin("system-images/android-23/google_apis/x86", "WXGA720")
	// Same skin name from the image must not duplicate the platform's own.
	tree.WithSkin("system-images/android-23/google_apis/x86", "HVGA")

	result, err := Scan(tree.Root)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}
	if len(result.Root.Platforms) != 1 {
		t.Fatalf("len(Platforms) = %d, want 1", len(result.Root.Platforms))
	}

	p := result.Root.Platforms[0]
	if p.ID != "android-23" || p.APILevel != 23 || p.Codename != "" {
		t.Errorf("platform identity = (%s, %d, %q), want (android-23, 23, \"\")", p.ID, p.APILevel, p.Codename)
	}
	if p.Name != "Android 6.0" {
		t.Errorf("Name = %q, want Android 6.0", p.Name)
	}
	if p.Revision != 3 || p.MinToolsRev != 22 {
		t.Errorf("Revision/MinToolsRev = %d/%d, want 3/22", p.Revision, p.MinToolsRev)
	}
	if got, want := p.ABIs["google_apis"], []string{"x86"}; !slices.Equal(got, want) {
		t.Errorf("ABIs[google_apis] = %v, want %v", got, want)
	}
	if got, want := p.Skins, []string{"HVGA", "WVGA800", "WXGA720"}; !slices.Equal(got, want) {
		t.Errorf("Skins = %v, want %v", got, want)
	}
	if p.DefaultSkin != "WVGA800" {
		t.Errorf("DefaultSkin = %q, want WVGA800", p.DefaultSkin)
	}
	if p.AndroidJar == "" || p.FrameworkAIDL == "" {
		t.Error("AndroidJar/FrameworkAIDL should resolve for the fixture platform")
	}
}

func TestScan_PlatformCompleteness(t *testing.T) {
	tree := testutil.NewSDKTree(t)
	tree.WithTools("25.2.5")
	// Descriptor but no build.prop: excluded entirely, not included with nulls.
	tree.WriteFile("platforms/no-buildprop/source.properties", "AndroidVersion.ApiLevel=21\n")
	// build.prop but zero API level: excluded.
	tree.WriteFile("platforms/no-api/source.properties", "Pkg.Revision=1\n")
	tree.WriteFile("platforms/no-api/build.prop", "")
	// No descriptor at all: excluded.
	tree.WriteFile("platforms/no-descriptor/build.prop", "")

	result, err := Scan(tree.Root)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}
	if len(result.Root.Platforms) != 0 {
		t.Errorf("len(Platforms) = %d, want 0", len(result.Root.Platforms))
	}

	var skips int
	for _, d := range result.Diagnostics {
		if d.Code == CodePlatformSkipped {
			skips++
		}
	}
	if skips != 3 {
		t.Errorf("platform_skipped diagnostics = %d, want 3", skips)
	}
}

func TestScan_DefaultSkinFallbackChain(t *testing.T) {
	tree := testutil.NewSDKTree(t)
	tree.WithTools("25.2.5")
	tree.WithPlatform("android-19", "19", "")
	tree.WithSkin("platforms/android-19", "HVGA")
	tree.WithSkin("platforms/android-19", "QVGA")
	// Preference names a skin that does not exist and WVGA800 is absent:
	// the last skin in the list wins.
	tree.WriteFile("platforms/android-19/sdk.properties", "sdk.skin.default=Nonexistent\n")

	result, err := Scan(tree.Root)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}
	if len(result.Root.Platforms) != 1 {
		t.Fatalf("len(Platforms) = %d, want 1", len(result.Root.Platforms))
	}
	p := result.Root.Platforms[0]
	if want := p.Skins[len(p.Skins)-1]; p.DefaultSkin != want {
		t.Errorf("DefaultSkin = %q, want last skin %q", p.DefaultSkin, want)
	}
}

func TestScan_Addons(t *testing.T) {
	tree := testutil.NewSDKTree(t)
	tree.WithTools("25.2.5")
	tree.WithPlatform("android-19", "19", "", "Platform.Version=4.4", "Platform.MinToolsRev=18")
	tree.WithSkin("platforms/android-19", "WVGA800")
	tree.WithSystemImage("android-19", "default", "armeabi-v7a", "19")
	tree.WithAddon("addon-google_apis-19", "Google Inc.", "Google APIs", "19")

	result, err := Scan(tree.Root)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}
	if len(result.Root.Addons) != 1 {
		t.Fatalf("len(Addons) = %d, want 1", len(result.Root.Addons))
	}

	a := result.Root.Addons[0]
	if a.ID != "Google Inc.:Google APIs:19" {
		t.Errorf("ID = %q, want Google Inc.:Google APIs:19", a.ID)
	}
	if a.BasedOn != "android-19" {
		t.Errorf("BasedOn = %q, want android-19", a.BasedOn)
	}
	if got, want := a.ABIs["default"], []string{"armeabi-v7a"}; !slices.Equal(got, want) {
		t.Errorf("inherited ABIs[default] = %v, want %v", got, want)
	}
	if got, want := a.Skins, []string{"WVGA800"}; !slices.Equal(got, want) {
		t.Errorf("inherited Skins = %v, want %v", got, want)
	}
	if a.MinToolsRev != 18 {
		t.Errorf("inherited MinToolsRev = %d, want 18", a.MinToolsRev)
	}
	if a.AndroidJar == "" || a.FrameworkAIDL == "" {
		t.Error("inherited AndroidJar/FrameworkAIDL should be set")
	}

	// Inherited collections are copies: mutating the platform afterwards
	// must not leak into the add-on.
	p := result.Root.Platforms[0]
	p.Skins[0] = "mutated"
	p.ABIs["default"][0] = "mutated"
	if a.Skins[0] == "mutated" || a.ABIs["default"][0] == "mutated" {
		t.Error("add-on shares collections with its base platform, want copies")
	}
}

func TestScan_AddonWithoutBasePlatform(t *testing.T) {
	tree := testutil.NewSDKTree(t)
	tree.WithTools("25.2.5")
	// Only a preview platform exists at this level: previews never serve as base.
	tree.WithPlatform("android-N", "23", "N")
	tree.WithAddon("addon-acme-23", "Acme", "Acme APIs", "23")

	result, err := Scan(tree.Root)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}
	if len(result.Root.Addons) != 1 {
		t.Fatalf("len(Addons) = %d, want 1", len(result.Root.Addons))
	}

	a := result.Root.Addons[0]
	if a.BasedOn != "" {
		t.Errorf("BasedOn = %q, want empty", a.BasedOn)
	}
	if a.ABIs != nil || a.Skins != nil || a.AndroidJar != "" {
		t.Error("unresolved add-on should carry no inherited fields")
	}
	if !hasDiagnostic(result.Diagnostics, CodeAddonBaseUnresolved) {
		t.Error("expected an addon_base_unresolved diagnostic")
	}
}

func TestScan_AddonCompleteness(t *testing.T) {
	tree := testutil.NewSDKTree(t)
	tree.WithTools("25.2.5")
	tree.WriteFile("add-ons/no-vendor/source.properties",
		"Addon.NameDisplay=Some APIs\nAndroidVersion.ApiLevel=19\n")
	tree.WriteFile("add-ons/bad-api/source.properties",
		"Addon.VendorDisplay=Acme\nAddon.NameDisplay=Acme APIs\nAndroidVersion.ApiLevel=unknown\n")

	result, err := Scan(tree.Root)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}
	if len(result.Root.Addons) != 0 {
		t.Errorf("len(Addons) = %d, want 0", len(result.Root.Addons))
	}
	if !hasDiagnostic(result.Diagnostics, CodeAddonSkipped) {
		t.Error("expected addon_skipped diagnostics")
	}
}

func TestScan_SortsPlatformsAndAddons(t *testing.T) {
	tree := testutil.NewSDKTree(t)
	tree.WithTools("25.2.5")
	// Created in an order that differs from the expected output order.
	tree.WithPlatform("android-N", "23", "N")
	tree.WithPlatform("android-19", "19", "")
	tree.WithPlatform("android-23", "23", "")
	tree.WithAddon("addon-b", "Acme", "B APIs", "23")
	tree.WithAddon("addon-a", "Acme", "A APIs", "19")

	result, err := Scan(tree.Root)
	if err != nil {
		t.Fatalf("Scan() returned error: %v", err)
	}

	if got, want := platformIDs(result.Root.Platforms), []string{"android-19", "android-23", "android-N"}; !slices.Equal(got, want) {
		t.Errorf("platform order = %v, want %v", got, want)
	}
	if len(result.Root.Addons) != 2 || result.Root.Addons[0].APILevel != 19 {
		t.Errorf("addon order = %v, want API level 19 first", result.Root.Addons)
	}
}

func TestDefaultSkin(t *testing.T) {
	tests := []struct {
		name      string
		preferred string
		skins     []string
		want      string
	}{
		{"configured preference wins", "QVGA", []string{"HVGA", "QVGA"}, "QVGA"},
		{"unknown preference falls back to WVGA800", "Nope", []string{"HVGA", "WVGA800"}, "WVGA800"},
		{"no WVGA800 falls back to last skin", "Nope", []string{"HVGA", "QVGA"}, "QVGA"},
		{"empty list yields empty", "Nope", nil, ""},
		{"no preference with WVGA800 present", "", []string{"WVGA800", "HVGA"}, "WVGA800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := defaultSkin(tt.preferred, tt.skins); got != tt.want {
				t.Errorf("defaultSkin(%q, %v) = %q, want %q", tt.preferred, tt.skins, got, tt.want)
			}
		})
	}
}
