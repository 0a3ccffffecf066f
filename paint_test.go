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
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var red = color.NRGBA{R: 255, A: 255}

func TestFillRect(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	p := NewPainter(img)
	p.FillRect(rect.Rect{LLx: 2, LLy: 2, URx: 6, URy: 6}, red)

	for y := range 8 {
		for x := range 8 {
			got := img.NRGBAAt(x, y)
			inside := x >= 2 && x < 6 && y >= 2 && y < 6
			if inside && got != red {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, red)
			}
			if !inside && got.A != 0 {
				t.Errorf("pixel (%d,%d): got alpha %d outside rect", x, y, got.A)
			}
		}
	}
}

func TestFillRectClipped(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	p := NewPainter(img)

	// Extends past all four canvas edges.
	p.FillRect(rect.Rect{LLx: -5, LLy: -5, URx: 20, URy: 20}, red)

	if got := img.NRGBAAt(0, 0); got != red {
		t.Errorf("pixel (0,0): got %v, want %v", got, red)
	}
	if got := img.NRGBAAt(7, 7); got != red {
		t.Errorf("pixel (7,7): got %v, want %v", got, red)
	}
}

func TestFillRectEmpty(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	p := NewPainter(img)

	// Degenerate and fully-clipped rectangles must be no-ops.
	p.FillRect(rect.Rect{LLx: 3, LLy: 3, URx: 3, URy: 6}, red)
	p.FillRect(rect.Rect{LLx: 100, LLy: 100, URx: 200, URy: 200}, red)

	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			t.Fatalf("expected untouched canvas, found alpha %d", img.Pix[i])
		}
	}
}

func TestFillPolygon(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	p := NewPainter(img)
	p.FillPolygon([]vec.Vec2{
		{X: 0, Y: 0},
		{X: 8, Y: 0},
		{X: 8, Y: 8},
		{X: 0, Y: 8},
	}, red)

	for y := range 8 {
		for x := range 8 {
			if got := img.NRGBAAt(x, y); got != red {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, red)
			}
		}
	}
}

func TestFillPolygonDegenerate(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	p := NewPainter(img)
	p.FillPolygon([]vec.Vec2{{X: 1, Y: 1}, {X: 7, Y: 7}}, red)

	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			t.Fatal("two-point polygon must not paint anything")
		}
	}
}

func TestFillDisc(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	p := NewPainter(img)
	p.FillDisc(vec.Vec2{X: 16, Y: 16}, 10, red)

	// Curved edges accumulate float coverage, so allow a one-step
	// tolerance on interior pixels.
	if got := img.NRGBAAt(16, 16); got.A < 254 || got.R < 254 {
		t.Errorf("center: got %v, want %v", got, red)
	}
	if got := img.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("far corner: got alpha %d, want 0", got.A)
	}
	// Well inside the radius along the axis.
	if got := img.NRGBAAt(16, 8); got.A < 254 || got.R < 254 {
		t.Errorf("(16,8): got %v, want %v", got, red)
	}
}

func TestRoundCorners(t *testing.T) {
	const size = 64
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	p := NewPainter(img)
	p.FillRect(rect.Rect{URx: size, URy: size}, Blue)

	RoundCorners(img, size/8)

	corners := []image.Point{
		{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1},
	}
	for _, pt := range corners {
		got := img.NRGBAAt(pt.X, pt.Y)
		if got.A != 0 {
			t.Errorf("corner %v: got alpha %d, want 0", pt, got.A)
		}
		// Color channels stay untouched; only alpha is replaced.
		if got.R != Blue.R || got.G != Blue.G || got.B != Blue.B {
			t.Errorf("corner %v: color channels changed: %v", pt, got)
		}
	}

	if got := img.NRGBAAt(size/2, size/2); got.A != 255 {
		t.Errorf("center: got alpha %d, want 255", got.A)
	}
	midpoints := []image.Point{
		{size / 2, 0},
		{0, size / 2},
		{size / 2, size - 1},
		{size - 1, size / 2},
	}
	for _, pt := range midpoints {
		if got := img.NRGBAAt(pt.X, pt.Y); got.A < 254 {
			t.Errorf("edge midpoint %v: got alpha %d, want opaque", pt, got.A)
		}
	}
}
