// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// The main helper is SDKTree, a builder for temporary directory trees shaped
// like an installed Android SDK.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// MustSetenv sets the environment variable key to value.
// It returns a cleanup function that restores the original value (or unsets it).
// The test fails immediately if the operation fails.
func MustSetenv(t testing.TB, key, value string) func() {
	t.Helper()
	originalValue, hadValue := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set env %s: %v", key, err)
	}
	return func() {
		if hadValue {
			if err := os.Setenv(key, originalValue); err != nil {
				t.Errorf("failed to restore env %s: %v", key, err)
			}
		} else {
			if err := os.Unsetenv(key); err != nil {
				t.Errorf("failed to unset env %s: %v", key, err)
			}
		}
	}
}

// MustUnsetenv unsets the environment variable key.
// It returns a cleanup function that restores the original value (if any).
// The test fails immediately if the operation fails.
func MustUnsetenv(t testing.TB, key string) func() {
	t.Helper()
	originalValue, hadValue := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset env %s: %v", key, err)
	}
	return func() {
		if hadValue {
			if err := os.Setenv(key, originalValue); err != nil {
				t.Errorf("failed to restore env %s: %v", key, err)
			}
		}
	}
}

// SDKTree builds a temporary directory tree shaped like an installed
// Android SDK. All paths are relative to Root and use forward slashes.
type SDKTree struct {
	t testing.TB
	// Root is the absolute path of the fixture SDK root.
	Root string
}

// NewSDKTree creates an empty fixture tree under t.TempDir().
func NewSDKTree(t testing.TB) *SDKTree {
	t.Helper()
	return &SDKTree{t: t, Root: t.TempDir()}
}

// Mkdir creates rel (and parents) under the root.
func (s *SDKTree) Mkdir(rel string) *SDKTree {
	s.t.Helper()
	if err := os.MkdirAll(filepath.Join(s.Root, filepath.FromSlash(rel)), 0o755); err != nil {
		s.t.Fatalf("failed to create directory %s: %v", rel, err)
	}
	return s
}

// WriteFile writes content to rel under the root, creating parent
// directories as needed.
func (s *SDKTree) WriteFile(rel, content string) *SDKTree {
	s.t.Helper()
	path := filepath.Join(s.Root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		s.t.Fatalf("failed to create parent of %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		s.t.Fatalf("failed to write %s: %v", rel, err)
	}
	return s
}

// WithTools creates a structurally valid tools/ subdirectory: descriptor
// with the given revision plus android, emulator and bin/sdkmanager files.
// Suffixless names match non-Windows hosts, which is where tests run.
func (s *SDKTree) WithTools(revision string) *SDKTree {
	s.t.Helper()
	s.WriteFile("tools/source.properties", "Pkg.Revision="+revision+"\n")
	s.WriteFile("tools/android", "")
	s.WriteFile("tools/emulator", "")
	s.WriteFile("tools/bin/sdkmanager", "")
	return s
}

// WithSkin creates a skin directory gated by hardware.ini under the given
// component directory.
func (s *SDKTree) WithSkin(componentRel, name string) *SDKTree {
	s.t.Helper()
	return s.WriteFile(componentRel+"/skins/"+name+"/hardware.ini", "hw.lcd.density=240\n")
}

// WithPlatform creates a complete platforms/<name> package: descriptor,
// build.prop, android.jar and framework.aidl. Extra descriptor lines can be
// appended through extraProps.
func (s *SDKTree) WithPlatform(name, apiLevel, codename string, extraProps ...string) *SDKTree {
	s.t.Helper()
	desc := "AndroidVersion.ApiLevel=" + apiLevel + "\n"
	if codename != "" {
		desc += "AndroidVersion.CodeName=" + codename + "\n"
	}
	for _, line := range extraProps {
		desc += line + "\n"
	}
	s.WriteFile("platforms/"+name+"/source.properties", desc)
	s.WriteFile("platforms/"+name+"/build.prop", "ro.build.version.sdk="+apiLevel+"\n")
	s.WriteFile("platforms/"+name+"/android.jar", "")
	s.WriteFile("platforms/"+name+"/framework.aidl", "")
	return s
}

// WithSystemImage creates a system-images/<platform>/<tag>/<abi> leaf with a
// complete descriptor.
func (s *SDKTree) WithSystemImage(platDir, tag, abi, apiLevel string) *SDKTree {
	s.t.Helper()
	rel := "system-images/" + platDir + "/" + tag + "/" + abi
	s.WriteFile(rel+"/source.properties",
		"AndroidVersion.ApiLevel="+apiLevel+"\nSystemImage.TagId="+tag+"\nSystemImage.Abi="+abi+"\n")
	return s
}

// WithAddon creates an add-ons/<name> package with a complete descriptor.
func (s *SDKTree) WithAddon(name, vendor, display, apiLevel string) *SDKTree {
	s.t.Helper()
	s.WriteFile("add-ons/"+name+"/source.properties",
		"Addon.VendorDisplay="+vendor+"\nAddon.NameDisplay="+display+"\nAndroidVersion.ApiLevel="+apiLevel+"\n")
	return s
}

// WithBuildTools creates a build-tools/<version> package with descriptor and
// the standard executables.
func (s *SDKTree) WithBuildTools(version string) *SDKTree {
	s.t.Helper()
	rel := "build-tools/" + version
	s.WriteFile(rel+"/source.properties", "Pkg.Revision="+version+"\n")
	for _, exe := range []string{"aapt", "aapt2", "aidl", "zipalign"} {
		s.WriteFile(rel+"/"+exe, "")
	}
	return s
}
