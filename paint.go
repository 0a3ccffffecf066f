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
	"image/draw"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// kappa is the cubic Bézier approximation constant for a quarter
// circle: four cubics with this control distance stay within 0.03% of
// the true arc.
const kappa = 0.5522847498307936

// Painter fills vector shapes into a pixel buffer with anti-aliased
// coverage. Create one instance per destination image and reuse it for
// multiple fills; the internal rasteriser is reset between shapes.
//
// A Painter is not safe for concurrent use.
type Painter struct {
	dst *image.NRGBA
	ras *vector.Rasterizer

	// Clip bounds rectangle fills, in device coordinates. All shapes
	// are additionally limited to the destination bounds.
	Clip rect.Rect
}

// NewPainter returns a Painter drawing into dst, clipped to its bounds.
func NewPainter(dst *image.NRGBA) *Painter {
	b := dst.Bounds()
	return &Painter{
		dst: dst,
		ras: vector.NewRasterizer(b.Dx(), b.Dy()),
		Clip: rect.Rect{
			LLx: float64(b.Min.X),
			LLy: float64(b.Min.Y),
			URx: float64(b.Max.X),
			URy: float64(b.Max.Y),
		},
	}
}

// FillRect fills an axis-aligned rectangle. Regions outside the clip
// rectangle are discarded.
func (p *Painter) FillRect(r rect.Rect, c color.NRGBA) {
	r = clipRect(r, p.Clip)
	if r.LLx >= r.URx || r.LLy >= r.URy {
		return
	}
	p.reset()
	p.ras.MoveTo(float32(r.LLx), float32(r.LLy))
	p.ras.LineTo(float32(r.URx), float32(r.LLy))
	p.ras.LineTo(float32(r.URx), float32(r.URy))
	p.ras.LineTo(float32(r.LLx), float32(r.URy))
	p.fill(c)
}

// FillPolygon fills the closed polygon with the given vertices.
// Degenerate polygons (fewer than three vertices) are ignored.
func (p *Painter) FillPolygon(pts []vec.Vec2, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	p.reset()
	p.ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		p.ras.LineTo(float32(pt.X), float32(pt.Y))
	}
	p.fill(c)
}

// FillDisc fills a circular disc.
func (p *Painter) FillDisc(center vec.Vec2, radius float64, c color.NRGBA) {
	if radius <= 0 {
		return
	}
	p.reset()
	appendDisc(p.ras, center, radius)
	p.fill(c)
}

func (p *Painter) reset() {
	b := p.dst.Bounds()
	p.ras.Reset(b.Dx(), b.Dy())
}

func (p *Painter) fill(c color.NRGBA) {
	p.ras.ClosePath()
	p.ras.Draw(p.dst, p.dst.Bounds(), image.NewUniform(c), image.Point{})
}

// clipRect intersects two rectangles.
func clipRect(r, clip rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: max(r.LLx, clip.LLx),
		LLy: max(r.LLy, clip.LLy),
		URx: min(r.URx, clip.URx),
		URy: min(r.URy, clip.URy),
	}
}

// appendDisc adds a full circle to the rasteriser path, built from
// four cubic Bézier quarter arcs.
func appendDisc(z *vector.Rasterizer, c vec.Vec2, r float64) {
	k := kappa * r
	x, y := c.X, c.Y
	z.MoveTo(float32(x+r), float32(y))
	z.CubeTo(float32(x+r), float32(y+k), float32(x+k), float32(y+r), float32(x), float32(y+r))
	z.CubeTo(float32(x-k), float32(y+r), float32(x-r), float32(y+k), float32(x-r), float32(y))
	z.CubeTo(float32(x-r), float32(y-k), float32(x-k), float32(y-r), float32(x), float32(y-r))
	z.CubeTo(float32(x+k), float32(y-r), float32(x+r), float32(y-k), float32(x+r), float32(y))
	z.ClosePath()
}

// appendRoundedRect adds a rectangle with quarter-circle corners of
// radius r to the rasteriser path.
func appendRoundedRect(z *vector.Rasterizer, x0, y0, x1, y1, r float64) {
	k := kappa * r
	z.MoveTo(float32(x0+r), float32(y0))
	z.LineTo(float32(x1-r), float32(y0))
	z.CubeTo(float32(x1-r+k), float32(y0), float32(x1), float32(y0+r-k), float32(x1), float32(y0+r))
	z.LineTo(float32(x1), float32(y1-r))
	z.CubeTo(float32(x1), float32(y1-r+k), float32(x1-r+k), float32(y1), float32(x1-r), float32(y1))
	z.LineTo(float32(x0+r), float32(y1))
	z.CubeTo(float32(x0+r-k), float32(y1), float32(x0), float32(y1-r+k), float32(x0), float32(y1-r))
	z.LineTo(float32(x0), float32(y0+r))
	z.CubeTo(float32(x0), float32(y0+r-k), float32(x0+r-k), float32(y0), float32(x0+r), float32(y0))
	z.ClosePath()
}

// RoundCorners replaces the alpha channel of img with a rounded
// rectangle mask: fully opaque inside, fading to fully transparent in
// the four corner regions outside the quarter discs. The color
// channels are left untouched.
func RoundCorners(img *image.NRGBA, radius int) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if radius <= 0 || w == 0 || h == 0 {
		return
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	appendRoundedRect(z, 0, 0, float64(w), float64(h), float64(radius))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := range h {
		row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := range w {
			row[4*x+3] = mask.Pix[y*mask.Stride+x]
		}
	}
}
