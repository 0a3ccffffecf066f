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
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"os/exec"
	"path/filepath"
)

// Builder writes the complete .appiconset directory and, optionally,
// packs it into an .icns container.
type Builder struct {
	// Dir is the icon set directory. It is created if missing;
	// existing files are overwritten.
	Dir string

	// Icns is the output path of the packed container. Empty disables
	// the packing step.
	Icns string
}

// Build renders every size, writes the manifest, and packs the set.
// Each render and write completes before the next begins; a failure
// at any step aborts the run.
func (b *Builder) Build() error {
	if err := os.MkdirAll(b.Dir, 0o755); err != nil {
		return fmt.Errorf("create icon set directory: %w", err)
	}

	for _, size := range Sizes {
		name := fmt.Sprintf("icon_%dx%d.png", size, size)
		if err := writePNG(Render(size), filepath.Join(b.Dir, name)); err != nil {
			return err
		}
		log.Printf("created %s", name)

		if size > maxDoubleDensity {
			continue
		}
		name = fmt.Sprintf("icon_%dx%d@2x.png", size, size)
		if err := writePNG(Render(2*size), filepath.Join(b.Dir, name)); err != nil {
			return err
		}
		log.Printf("created %s", name)
	}

	if err := WriteManifest(filepath.Join(b.Dir, "Contents.json")); err != nil {
		return err
	}
	log.Printf("created Contents.json")

	if b.Icns == "" {
		return nil
	}
	return b.pack()
}

// pack invokes the platform icon packaging utility against the icon
// set directory. The utility's output goes straight to the terminal.
func (b *Builder) pack() error {
	log.Printf("packing %s", b.Icns)
	cmd := exec.Command("iconutil", "-c", "icns", b.Dir, "-o", b.Icns)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("iconutil: %w", err)
	}
	return nil
}

func writePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
