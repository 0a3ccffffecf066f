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
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// helveticaPath is where macOS keeps the face the icons were designed
// with.
const helveticaPath = "/System/Library/Fonts/Helvetica.ttc"

// systemFont parses the system font collection once per process.
// It returns nil when the font is unavailable.
var systemFont = sync.OnceValue(func() *opentype.Font {
	data, err := os.ReadFile(helveticaPath)
	if err != nil {
		return nil
	}
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil
	}
	f, err := coll.Font(0)
	if err != nil {
		return nil
	}
	return f
})

// loadFace returns a font face at the given pixel size. When the
// system font cannot be loaded the builtin bitmap face is used
// instead; this degrades rendering quality but never fails.
func loadFace(px int) font.Face {
	f := systemFont()
	if f == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
