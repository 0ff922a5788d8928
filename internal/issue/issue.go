// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies one known failure condition with a dedicated help page.
type Id int

const (
	InvalidRootId Id = iota + 1
	MissingToolsDirId
	MissingToolsDescriptorId
	MissingVersionId
	MissingEmulatorId
	NoSDKRootId
	ConfigLoadFailedId
)

type (
	// MarkdownMsg is markdown text rendered to the terminal via glamour.
	MarkdownMsg string

	// HttpLink is a documentation URL shown under an issue page.
	HttpLink string

	// Issue bundles the help page for one known failure condition.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render produces the terminal-ready help page for this issue.
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.docLinks {
			extraMd += "- " + string(link) + "\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

// Lookup returns the issue registered for id, or nil.
func Lookup(id Id) *Issue {
	return registry[id]
}

// Ids returns all registered issue ids in ascending order.
func Ids() []Id {
	ids := maps.Keys(registry)
	slices.Sort(ids)
	return ids
}

// render is swappable in tests to avoid terminal detection.
var render = glamour.Render

var registry = map[Id]*Issue{
	InvalidRootId: {
		id: InvalidRootId,
		mdMsg: `
# SDK root not found

The directory you pointed sdkscan at does not exist.

## Things you can try
- Double-check the path passed via the positional argument or ` + "`--sdk-root`" + `
- Run without arguments to probe the standard installation locations`,
		docLinks: []HttpLink{"https://developer.android.com/tools"},
	},
	MissingToolsDirId: {
		id: MissingToolsDirId,
		mdMsg: `
# No tools/ directory

The SDK root exists but has no ` + "`tools/`" + ` subdirectory, so this does not
look like a complete SDK installation.

## Things you can try
- Install the SDK command-line tools:
~~~
$ sdkmanager "tools"
~~~
- Verify you pointed sdkscan at the SDK root, not a subdirectory`,
		docLinks: []HttpLink{"https://developer.android.com/tools"},
	},
	MissingToolsDescriptorId: {
		id: MissingToolsDescriptorId,
		mdMsg: `
# Missing tools descriptor

` + "`tools/source.properties`" + ` is absent, so the tools package version
cannot be determined. The installation is likely corrupt or incomplete.

## Things you can try
- Reinstall the SDK command-line tools with sdkmanager or Android Studio`,
		docLinks: []HttpLink{"https://developer.android.com/tools"},
	},
	MissingVersionId: {
		id: MissingVersionId,
		mdMsg: `
# Tools descriptor has no version

` + "`tools/source.properties`" + ` exists but carries no ` + "`Pkg.Revision`" + ` key.

## Things you can try
- Reinstall the SDK command-line tools; the descriptor should be regenerated`,
		docLinks: []HttpLink{"https://developer.android.com/tools"},
	},
	MissingEmulatorId: {
		id: MissingEmulatorId,
		mdMsg: `
# Emulator executable not found

The emulator binary is missing from ` + "`tools/`" + `. sdkscan treats this as
fatal because emulator launchers cannot work without it.

## Things you can try
- Install the emulator package:
~~~
$ sdkmanager emulator
~~~`,
		docLinks: []HttpLink{"https://developer.android.com/studio/run/emulator-commandline"},
	},
	NoSDKRootId: {
		id: NoSDKRootId,
		mdMsg: `
# No Android SDK installation found

None of the candidate directories exist: ` + "`$ANDROID_HOME`" + `,
` + "`$ANDROID_SDK_ROOT`" + `, the configured ` + "`sdk_root`" + `, or the standard
per-OS install locations.

## Things you can try
- Pass the SDK location explicitly:
~~~
$ sdkscan scan /path/to/android-sdk
~~~
- Set ` + "`ANDROID_HOME`" + ` in your environment
- Set ` + "`sdk_root`" + ` in your sdkscan config file`,
		docLinks: []HttpLink{"https://developer.android.com/tools/variables"},
	},
	ConfigLoadFailedId: {
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded

The sdkscan config file exists but could not be read or parsed.

## Things you can try
- Check the file for YAML syntax errors
- Run ` + "`sdkscan config path`" + ` to see which file is being read`,
	},
}
