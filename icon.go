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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Render draws the ticket icon at the given edge length in pixels.
// Every proportion derives from size by integer division, so very
// small sizes can produce degenerate decorative shapes (for example
// zero-height punches at 16px); this is accepted behavior.
func Render(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	p := NewPainter(img)

	// Blue ticket body.
	p.FillRect(rect.Rect{URx: float64(size), URy: float64(size)}, Blue)

	bw := max(2, size/64)
	indent := size / 8
	punchH := size / 16

	// Ticket punches on the left and right edges.
	p.FillRect(rect.Rect{
		LLy: float64(indent),
		URx: float64(3 * bw),
		URy: float64(indent + punchH),
	}, Yellow)
	p.FillRect(rect.Rect{
		LLx: float64(size - 3*bw),
		LLy: float64(indent),
		URx: float64(size),
		URy: float64(indent + punchH),
	}, Yellow)

	// Torn edges along the top and bottom. Below 64px the teeth are
	// not legible, so plain bars stand in.
	if size >= 64 {
		p.FillPolygon(toothStrip(size, bw, false), Yellow)
		p.FillPolygon(toothStrip(size, bw, true), Yellow)
	} else {
		p.FillRect(rect.Rect{
			URx: float64(size),
			URy: float64(bw),
		}, Yellow)
		p.FillRect(rect.Rect{
			LLy: float64(size - bw),
			URx: float64(size),
			URy: float64(size),
		}, Yellow)
	}

	// Solid left and right borders.
	p.FillRect(rect.Rect{
		URx: float64(2 * bw),
		URy: float64(size),
	}, Yellow)
	p.FillRect(rect.Rect{
		LLx: float64(size - 2*bw),
		URx: float64(size),
		URy: float64(size),
	}, Yellow)

	drawLabels(img, size)

	if size >= 64 {
		RoundCorners(img, size/8)
	}

	return img
}

// toothStrip builds the crenellated polygon for one torn edge. The
// strip runs along the full width; tooth depths alternate between bw
// and 2*bw, with at least 8 teeth.
func toothStrip(size, bw int, bottom bool) []vec.Vec2 {
	n := max(8, size/32)
	tw := float64(size) / float64(n)

	pts := make([]vec.Vec2, 0, 2*n+2)
	pts = append(pts,
		vec.Vec2{X: 0, Y: 0},
		vec.Vec2{X: float64(size), Y: 0},
	)
	// Walk back right to left along the jagged inner edge.
	for i := n - 1; i >= 0; i-- {
		depth := float64(bw)
		if i%2 == 1 {
			depth = float64(2 * bw)
		}
		pts = append(pts,
			vec.Vec2{X: float64(i+1) * tw, Y: depth},
			vec.Vec2{X: float64(i) * tw, Y: depth},
		)
	}

	if bottom {
		for i := range pts {
			pts[i].Y = float64(size) - pts[i].Y
		}
	}
	return pts
}
