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

// Package convert assembles OpenType fonts from decoded PCF fonts.
package convert

import (
	"errors"
	"math"
	"time"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/pcf"
	"seehuhn.de/go/pcf/charset"
	"seehuhn.de/go/pcf/dots"
)

// Options controls the conversion of a PCF font to OpenType.
type Options struct {
	// PixelHeight is the height of the bitmap font in pixels.
	// This must be positive.
	PixelHeight int

	// Shape is the outline drawn for each set pixel.
	Shape dots.Shape

	// Charset restricts the set of characters included in the
	// generated font.  The zero value includes all characters.
	Charset charset.Policy

	// FamilyName is the family name of the generated font.
	FamilyName string

	// Copyright and Trademark are copied into the generated font
	// without interpretation.
	Copyright string
	Trademark string
}

var errPixelHeight = errors.New("invalid pixel height")

// ToOpenType converts a PCF font to an OpenType font with CFF outlines.
//
// Characters are processed in increasing code order.  Characters
// outside the selected charset, and character codes the font cannot
// resolve, are skipped.  The first glyph of the generated font is
// always an empty .notdef glyph.
func ToOpenType(font *pcf.Font, opt *Options) (*sfnt.Font, error) {
	if opt == nil || opt.PixelHeight <= 0 {
		return nil, errPixelHeight
	}

	geom := dots.NewGeometry(opt.PixelHeight)

	glyphs := []*cff.Glyph{geom.Notdef()}
	cmapSubtable := cmap.Format4{}
	encoding := make([]glyph.ID, 256)
	for _, code := range font.Codes() {
		if !opt.Charset.Contains(code) {
			continue
		}
		g, ok := font.Glyph(code)
		if !ok {
			continue
		}

		gid := glyph.ID(len(glyphs))
		glyphs = append(glyphs, geom.Trace(g, opt.Shape))
		cmapSubtable[uint16(code)] = gid
		if code < 256 {
			encoding[code] = gid
		}
	}

	outlines := &cff.Outlines{
		Glyphs:   glyphs,
		Private:  []*type1.PrivateDict{{}},
		FDSelect: func(glyph.ID) int { return 0 },
		Encoding: encoding,
	}

	cmapTable := cmap.Table{
		{PlatformID: 0, EncodingID: 3}: cmapSubtable.Encode(0),
	}

	ascent := funit.Int16(math.Round(geom.GlyphTop))
	descent := funit.Int16(-math.Round(geom.DescenderHeight))

	q := 1 / geom.UnitsPerEm
	now := time.Now()
	res := &sfnt.Font{
		FamilyName: opt.FamilyName,
		Copyright:  opt.Copyright,
		Trademark:  opt.Trademark,

		CreationTime:     now,
		ModificationTime: now,

		UnitsPerEm: uint16(geom.UnitsPerEm),
		FontMatrix: matrix.Matrix{q, 0, 0, q, 0, 0},

		Ascent:    ascent,
		Descent:   descent,
		CapHeight: ascent,

		Width:     os2.WidthNormal,
		Weight:    os2.WeightNormal,
		IsRegular: true,
		PermUse:   os2.PermInstall,

		CMapTable: cmapTable,
		Outlines:  outlines,
	}
	return res, nil
}
