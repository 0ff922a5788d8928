// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"testing"

	"sdkscan/internal/sdk"
)

func testCatalog() *sdk.Root {
	return &sdk.Root{
		Path: "/sdk",
		Tools: sdk.Tools{
			Executables: map[string]string{
				"android":    "",
				"emulator":   "/sdk/tools/emulator",
				"sdkmanager": "/sdk/tools/bin/sdkmanager",
			},
		},
		PlatformTools: sdk.PlatformTools{
			Executables: map[string]string{"adb": "/sdk/platform-tools/adb"},
		},
		BuildTools: []sdk.BuildTool{
			{
				Version:     "27.0.0",
				Executables: map[string]string{"aapt2": "/sdk/build-tools/27.0.0/aapt2"},
				Dx:          "/sdk/build-tools/27.0.0/lib/dx.jar",
			},
			{
				Version:     "28.0.3",
				Executables: map[string]string{"aapt2": "/sdk/build-tools/28.0.3/aapt2"},
			},
		},
		SystemImages: sdk.NewImageIndex(),
	}
}

func TestFindExecutable(t *testing.T) {
	root := testCatalog()

	tests := []struct {
		name    string
		exe     string
		version string
		want    string
		wantErr bool
	}{
		{name: "tools executable", exe: "emulator", want: "/sdk/tools/emulator"},
		{name: "platform-tools executable", exe: "adb", want: "/sdk/platform-tools/adb"},
		{name: "newest build-tools wins", exe: "aapt2", want: "/sdk/build-tools/28.0.3/aapt2"},
		{name: "pinned build-tools version", exe: "aapt2", version: "27.0.0", want: "/sdk/build-tools/27.0.0/aapt2"},
		{name: "dx resolves through the jar", exe: "dx", version: "27.0.0", want: "/sdk/build-tools/27.0.0/lib/dx.jar"},
		{name: "unresolved tools executable is not a hit", exe: "android", wantErr: true},
		{name: "unknown executable", exe: "nothere", wantErr: true},
		{name: "pinned version without the executable", exe: "dx", version: "28.0.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := findExecutable(root, tt.exe, tt.version)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("findExecutable(%q, %q) = %q, want error", tt.exe, tt.version, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("findExecutable(%q, %q) returned error: %v", tt.exe, tt.version, err)
			}
			if got != tt.want {
				t.Errorf("findExecutable(%q, %q) = %q, want %q", tt.exe, tt.version, got, tt.want)
			}
		})
	}
}
