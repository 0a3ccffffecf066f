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
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// drawLabels overlays the lettering according to the size thresholds:
// primary and secondary labels with shadows from 256px, the primary
// alone with a shadow from 128px, the primary without a shadow from
// 32px, and nothing below that (illegible).
func drawLabels(img *image.NRGBA, size int) {
	switch {
	case size >= 128:
		face := loadFace(size / 8)
		defer face.Close()

		top := fixed.I(size / 3)
		b, _ := font.BoundString(face, primaryLabel)
		x := (fixed.I(size)-(b.Max.X-b.Min.X))/2 - b.Min.X
		y := top - b.Min.Y

		drawString(img, face, primaryLabel, x+fixed.I(1), y+fixed.I(1), shadowColor)
		drawString(img, face, primaryLabel, x, y, Yellow)

		if size >= 256 {
			small := loadFace(size / 16)
			defer small.Close()

			b2, _ := font.BoundString(small, secondaryLabel)
			x2 := (fixed.I(size)-(b2.Max.X-b2.Min.X))/2 - b2.Min.X
			y2 := top + (b.Max.Y - b.Min.Y) + fixed.I(size/20) - b2.Min.Y

			drawString(img, small, secondaryLabel, x2+fixed.I(1), y2+fixed.I(1), shadowColor)
			drawString(img, small, secondaryLabel, x2, y2, Yellow)
		}

	case size >= 32:
		face := loadFace(size / 4)
		defer face.Close()

		b, _ := font.BoundString(face, primaryLabel)
		x := (fixed.I(size)-(b.Max.X-b.Min.X))/2 - b.Min.X
		y := (fixed.I(size)-(b.Max.Y-b.Min.Y))/2 - b.Min.Y

		drawString(img, face, primaryLabel, x, y, Yellow)
	}
}

// drawString draws s with its baseline origin at (x, y).
func drawString(dst *image.NRGBA, face font.Face, s string, x, y fixed.Int26_6, c color.NRGBA) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: y},
	}
	d.DrawString(s)
}
