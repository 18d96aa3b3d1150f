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

package pcf

import (
	"errors"
	"fmt"
	"io"
)

// rowStride is the number of bytes per bitmap row.  The fonts supported
// here pad every row to a 32-bit boundary, so glyphs can be at most 32
// pixels wide.  Wider glyphs are silently cut off at the right edge.
const rowStride = 4

var (
	errMissingTable = errors.New("required table missing")
	errTableClash   = errors.New("metrics and bitmap counts differ")
)

// Font is a decoded PCF font.
type Font struct {
	names   []string
	enc     *encodingTable
	metrics []Metrics
	bitmaps *bitmapTable
}

// Read reads a PCF font file.
func Read(r io.Reader) (*Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

func parse(data []byte) (*Font, error) {
	toc, err := readDirectory(data)
	if err != nil {
		return nil, err
	}

	font := &Font{}
	for _, entry := range toc {
		switch entry.Type {
		case tableGlyphNames:
			font.names, err = readNames(data, int(entry.Offset))
		case tableBDFEncodings:
			font.enc, err = readEncoding(data, int(entry.Offset))
		case tableMetrics:
			font.metrics, err = readMetrics(data, int(entry.Offset))
		case tableBitmaps:
			font.bitmaps, err = readBitmaps(data, int(entry.Offset))
		default:
			// properties, accelerators, ink metrics, scalable
			// widths: not needed for conversion
		}
		if err != nil {
			return nil, err
		}
	}

	if font.enc == nil || font.metrics == nil || font.bitmaps == nil {
		return nil, &InvalidFontError{Err: errMissingTable}
	}
	if len(font.metrics) != len(font.bitmaps.offsets) {
		return nil, &InvalidFontError{Err: errTableClash}
	}
	if font.names != nil && len(font.names) != len(font.metrics) {
		return nil, &InvalidFontError{Err: errTableClash}
	}
	return font, nil
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return len(f.metrics)
}

// Codes returns all character codes for which the font has a glyph, in
// increasing order.
func (f *Font) Codes() []rune {
	var res []rune
	for _, r := range f.enc.codes() {
		gid, ok := f.enc.lookup(r)
		if !ok || int(gid) >= len(f.metrics) {
			continue
		}
		res = append(res, r)
	}
	return res
}

// Glyph is one glyph of a PCF font, together with the character code it
// was looked up under.
type Glyph struct {
	Code    rune
	Name    string
	Metrics Metrics

	// Bitmap contains the packed glyph image, one row of rowStride
	// bytes per scanline, leftmost pixel in the most significant bit.
	Bitmap []byte
}

// Glyph looks up the glyph for a character code.  The second return
// value is false if the font has no glyph for the code.
func (f *Font) Glyph(r rune) (*Glyph, bool) {
	gid, ok := f.enc.lookup(r)
	if !ok || int(gid) >= len(f.metrics) {
		return nil, false
	}

	var name string
	if f.names != nil {
		name = f.names[gid]
	} else {
		name = fmt.Sprintf("uni%04X", r)
	}

	return &Glyph{
		Code:    r,
		Name:    name,
		Metrics: f.metrics[gid],
		Bitmap:  f.bitmaps.glyph(int(gid)),
	}, true
}

// Rows returns the number of bitmap rows of the glyph.
func (g *Glyph) Rows() int {
	return len(g.Bitmap) / rowStride
}

// Pixel reports whether the pixel at column x of row y is set.  Row 0
// is the topmost row, column 0 the leftmost pixel.
func (g *Glyph) Pixel(x, y int) bool {
	if x < 0 || x >= 8*rowStride || y < 0 || y >= g.Rows() {
		return false
	}
	return g.Bitmap[y*rowStride+x/8]&(0x80>>(x%8)) != 0
}
