// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"sdkscan/internal/config"
	"sdkscan/internal/sdk"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [sdk-root]",
	Short: "Serialize the catalog as JSON or TOML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := loadCatalog(args)
		if err != nil {
			return err
		}

		format := exportFormat
		if format == "" {
			if cfg, err := config.Load(); err == nil {
				format = cfg.Export.Format
			} else {
				format = "json"
			}
		}
		return writeCatalog(cmd.OutOrStdout(), result.Root, format)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "output format: json or toml (default from config)")
}

type (
	// exportModel is the serialization view of the catalog. System images
	// are flattened into records so both encoders emit them in index order.
	exportModel struct {
		Path          string            `json:"path" toml:"path"`
		Tools         exportTools       `json:"tools" toml:"tools"`
		PlatformTools *exportTools      `json:"platform_tools,omitempty" toml:"platform_tools,omitempty"`
		BuildTools    []exportBuildTool `json:"build_tools,omitempty" toml:"build_tools,omitempty"`
		Platforms     []exportPlatform  `json:"platforms,omitempty" toml:"platforms,omitempty"`
		Addons        []exportAddon     `json:"addons,omitempty" toml:"addons,omitempty"`
		SystemImages  []exportImage     `json:"system_images,omitempty" toml:"system_images,omitempty"`
	}

	exportTools struct {
		Path        string            `json:"path" toml:"path"`
		Version     string            `json:"version" toml:"version"`
		Executables map[string]string `json:"executables,omitempty" toml:"executables,omitempty"`
	}

	exportBuildTool struct {
		Version     string            `json:"version" toml:"version"`
		Path        string            `json:"path" toml:"path"`
		Executables map[string]string `json:"executables,omitempty" toml:"executables,omitempty"`
		Dx          string            `json:"dx,omitempty" toml:"dx,omitempty"`
	}

	exportPlatform struct {
		ID            string              `json:"id" toml:"id"`
		Name          string              `json:"name" toml:"name"`
		APILevel      int                 `json:"api_level" toml:"api_level"`
		Codename      string              `json:"codename,omitempty" toml:"codename,omitempty"`
		Revision      int                 `json:"revision,omitempty" toml:"revision,omitempty"`
		Path          string              `json:"path" toml:"path"`
		Version       string              `json:"version,omitempty" toml:"version,omitempty"`
		ABIs          map[string][]string `json:"abis,omitempty" toml:"abis,omitempty"`
		Skins         []string            `json:"skins,omitempty" toml:"skins,omitempty"`
		DefaultSkin   string              `json:"default_skin,omitempty" toml:"default_skin,omitempty"`
		MinToolsRev   int                 `json:"min_tools_rev,omitempty" toml:"min_tools_rev,omitempty"`
		AndroidJar    string              `json:"android_jar,omitempty" toml:"android_jar,omitempty"`
		FrameworkAIDL string              `json:"framework_aidl,omitempty" toml:"framework_aidl,omitempty"`
	}

	exportAddon struct {
		ID       string `json:"id" toml:"id"`
		Name     string `json:"name" toml:"name"`
		Vendor   string `json:"vendor" toml:"vendor"`
		APILevel int    `json:"api_level" toml:"api_level"`
		Revision int    `json:"revision,omitempty" toml:"revision,omitempty"`
		Path     string `json:"path" toml:"path"`
		BasedOn  string `json:"based_on,omitempty" toml:"based_on,omitempty"`
	}

	exportImage struct {
		Platform string   `json:"platform" toml:"platform"`
		Tag      string   `json:"tag" toml:"tag"`
		ABI      string   `json:"abi" toml:"abi"`
		Skins    []string `json:"skins,omitempty" toml:"skins,omitempty"`
	}
)

func writeCatalog(w io.Writer, root *sdk.Root, format string) error {
	model := buildExportModel(root)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(model)
	case "toml":
		return toml.NewEncoder(w).Encode(model)
	default:
		return fmt.Errorf("unsupported export format %q (want json or toml)", format)
	}
}

func buildExportModel(root *sdk.Root) exportModel {
	model := exportModel{
		Path: root.Path,
		Tools: exportTools{
			Path:        root.Tools.Path,
			Version:     root.Tools.Version,
			Executables: root.Tools.Executables,
		},
	}

	if root.PlatformTools.Path != "" {
		model.PlatformTools = &exportTools{
			Path:        root.PlatformTools.Path,
			Version:     root.PlatformTools.Version,
			Executables: root.PlatformTools.Executables,
		}
	}
	for _, bt := range root.BuildTools {
		model.BuildTools = append(model.BuildTools, exportBuildTool(bt))
	}
	for _, p := range root.Platforms {
		model.Platforms = append(model.Platforms, exportPlatform{
			ID:            p.ID,
			Name:          p.Name,
			APILevel:      p.APILevel,
			Codename:      p.Codename,
			Revision:      p.Revision,
			Path:          p.Path,
			Version:       p.Version,
			ABIs:          p.ABIs,
			Skins:         p.Skins,
			DefaultSkin:   p.DefaultSkin,
			MinToolsRev:   p.MinToolsRev,
			AndroidJar:    p.AndroidJar,
			FrameworkAIDL: p.FrameworkAIDL,
		})
	}
	for _, a := range root.Addons {
		model.Addons = append(model.Addons, exportAddon{
			ID:       a.ID,
			Name:     a.Name,
			Vendor:   a.Vendor,
			APILevel: a.APILevel,
			Revision: a.Revision,
			Path:     a.Path,
			BasedOn:  a.BasedOn,
		})
	}
	for _, id := range root.SystemImages.PlatformIDs() {
		for _, tag := range root.SystemImages.Tags(id) {
			for _, img := range root.SystemImages.Images(id, tag) {
				model.SystemImages = append(model.SystemImages, exportImage{
					Platform: id,
					Tag:      tag,
					ABI:      img.ABI,
					Skins:    img.Skins,
				})
			}
		}
	}
	return model
}
