// seehuhn.de/go/appicon - an application icon generator
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package appicon

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest is the Contents.json document of an .appiconset directory.
type Manifest struct {
	Images []ManifestImage `json:"images"`
	Info   ManifestInfo    `json:"info"`
}

// ManifestImage describes one icon file in the manifest.
type ManifestImage struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

// ManifestInfo is the fixed trailer block Xcode expects.
type ManifestInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// manifestSizes lists the logical sizes the macOS icon set convention
// expects. 64 and 1024 are written as files but are deliberately not
// part of the manifest; the 1024px artwork only enters the set as the
// 512pt @2x variant.
var manifestSizes = []int{16, 32, 128, 256, 512}

// NewManifest returns the manifest for the icon set. The contents are
// a fixed table, not derived from the render loop, so the builder must
// keep the filenames in sync by construction.
func NewManifest() *Manifest {
	m := &Manifest{
		Info: ManifestInfo{Author: "xcode", Version: 1},
	}
	for _, size := range manifestSizes {
		dim := fmt.Sprintf("%dx%d", size, size)
		m.Images = append(m.Images,
			ManifestImage{
				Filename: fmt.Sprintf("icon_%s.png", dim),
				Idiom:    "mac",
				Scale:    "1x",
				Size:     dim,
			},
			ManifestImage{
				Filename: fmt.Sprintf("icon_%s@2x.png", dim),
				Idiom:    "mac",
				Scale:    "2x",
				Size:     dim,
			},
		)
	}
	return m
}

// WriteManifest writes Contents.json to path. The output is
// deterministic, so re-running the build leaves the manifest
// byte-for-byte unchanged.
func WriteManifest(path string) error {
	data, err := json.MarshalIndent(NewManifest(), "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
