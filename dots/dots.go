// seehuhn.de/go/pcf - convert PCF bitmap fonts to OpenType fonts
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

// Package dots converts glyph bitmaps to outline glyphs.  Every set
// pixel becomes one closed sub-path, slightly inset within its pixel
// cell so that neighbouring dots stay visually separate.
package dots

import (
	"fmt"

	"seehuhn.de/go/sfnt/cff"

	"seehuhn.de/go/pcf"
)

// Shape selects the outline drawn for a single pixel.
type Shape int

// The supported dot shapes.
const (
	Square Shape = iota
	Diamond
	Circle
)

// Parse returns the shape with the given name.
func Parse(name string) (Shape, error) {
	switch name {
	case "square":
		return Square, nil
	case "diamond":
		return Diamond, nil
	case "circle":
		return Circle, nil
	}
	return 0, fmt.Errorf("unknown dot shape %q", name)
}

func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case Diamond:
		return "diamond"
	case Circle:
		return "circle"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// control point offset for the cubic Bezier approximation of a circle
const circleK = 0.551915

// Geometry maps the pixel grid of a bitmap font to font design units.
//
// Pixel coordinates have their origin in the top left corner of the
// glyph image, with y growing downwards.  Font coordinates have their
// origin on the baseline, with y growing upwards.
type Geometry struct {
	// PixelHeight is the height of the bitmap font, in pixels.
	PixelHeight int

	// UnitsPerEm is the design-space resolution of the generated
	// outlines.
	UnitsPerEm float64

	// PixelSize is the side length of one pixel cell, in design units.
	PixelSize float64

	// Padding is the gap between a dot and the edge of its pixel
	// cell, on each of the four sides.
	Padding float64

	// DescenderHeight is the part of the glyph image below the
	// baseline, in design units.
	DescenderHeight float64

	// GlyphTop is the design-space y coordinate of the top edge of
	// the glyph image.
	GlyphTop float64
}

// NewGeometry computes the design-space constants for a bitmap font of
// the given pixel height.
func NewGeometry(pixelHeight int) *Geometry {
	const unitsPerEm = 1000.0
	pixelSize := unitsPerEm / float64(pixelHeight)
	descenderHeight := 3 * pixelSize
	return &Geometry{
		PixelHeight:     pixelHeight,
		UnitsPerEm:      unitsPerEm,
		PixelSize:       pixelSize,
		Padding:         pixelSize / 9,
		DescenderHeight: descenderHeight,
		GlyphTop:        float64(pixelHeight)*pixelSize - descenderHeight,
	}
}

// Notdef returns the glyph shown for characters not present in the
// font: an empty outline with a fixed advance width.
func (geom *Geometry) Notdef() *cff.Glyph {
	return cff.NewGlyph(".notdef", 8*geom.PixelSize)
}

// Trace converts one glyph bitmap to an outline glyph, drawing every
// set pixel as a dot of the given shape.
func (geom *Geometry) Trace(g *pcf.Glyph, shape Shape) *cff.Glyph {
	out := cff.NewGlyph(g.Name, float64(g.Metrics.Width)*geom.PixelSize)

	xOffset := float64(g.Metrics.LeftSideBearing) * geom.PixelSize

	// The glyph image is placed so that a glyph of default ascent
	// starts two pixel rows below the top of the em square.
	defaultAscent := geom.PixelHeight - 2
	yOffset := float64(defaultAscent-int(g.Metrics.Ascent)) * geom.PixelSize

	width := int(g.Metrics.Width)
	if width > 32 {
		// Rows are stored with a fixed four-byte stride; glyphs wider
		// than the stride lose their rightmost pixels.
		width = 32
	}

	rows := g.Rows()
	for y := 0; y < rows; y++ {
		for x := 0; x < width; x++ {
			if !g.Pixel(x, y) {
				continue
			}

			// pixel cell edges in design space
			left := xOffset + float64(x)*geom.PixelSize + geom.Padding
			right := xOffset + float64(x+1)*geom.PixelSize - geom.Padding
			top := geom.GlyphTop - (yOffset + float64(y)*geom.PixelSize + geom.Padding)
			bottom := geom.GlyphTop - (yOffset + float64(y+1)*geom.PixelSize - geom.Padding)

			geom.dot(out, shape, left, right, bottom, top)
		}
	}
	return out
}

// dot appends one closed sub-path for a single pixel.  CFF charstrings
// close each sub-path implicitly, so no explicit closing segment is
// needed.
func (geom *Geometry) dot(out *cff.Glyph, shape Shape, left, right, bottom, top float64) {
	xMid := (left + right) / 2
	yMid := (bottom + top) / 2

	switch shape {
	case Square:
		out.MoveTo(left, top)
		out.LineTo(left, bottom)
		out.LineTo(right, bottom)
		out.LineTo(right, top)
	case Diamond:
		out.MoveTo(xMid, top)
		out.LineTo(left, yMid)
		out.LineTo(xMid, bottom)
		out.LineTo(right, yMid)
	case Circle:
		r := (right - left) / 2
		k := circleK * r
		out.MoveTo(xMid, yMid+r)
		out.CurveTo(xMid-k, yMid+r, xMid-r, yMid+k, xMid-r, yMid)
		out.CurveTo(xMid-r, yMid-k, xMid-k, yMid-r, xMid, yMid-r)
		out.CurveTo(xMid+k, yMid-r, xMid+r, yMid-k, xMid+r, yMid)
		out.CurveTo(xMid+r, yMid+k, xMid+k, yMid+r, xMid, yMid+r)
	default:
		panic("unexpected dot shape")
	}
}
