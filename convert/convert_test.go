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

package convert

import (
	"bytes"
	"math"
	"testing"

	"seehuhn.de/go/sfnt/cff"

	"seehuhn.de/go/pcf"
	"seehuhn.de/go/pcf/charset"
	"seehuhn.de/go/pcf/dots"
	"seehuhn.de/go/pcf/internal/fakepcf"
)

func testFont(t *testing.T) *pcf.Font {
	t.Helper()

	glyphs := []*fakepcf.Glyph{
		{
			Code:   0,
			Name:   "space",
			Width:  5,
			Ascent: 8,
			Bitmap: []string{
				".....", ".....", ".....", ".....",
				".....", ".....", ".....", ".....",
			},
		},
		{
			Code:             'A',
			Name:             "A",
			RightSideBearing: 5,
			Width:            5,
			Ascent:           11,
			Descent:          -3,
			Bitmap: []string{
				"#.#.#",
				".#.#.",
				"#.#.#",
				".#.#.",
				"#.#.#",
				".#.#.",
				"#.#.#",
				".#.#.",
			},
		},
	}
	data := fakepcf.New(glyphs, nil)
	font, err := pcf.Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return font
}

func TestToOpenType(t *testing.T) {
	font := testFont(t)

	otf, err := ToOpenType(font, &Options{
		PixelHeight: 13,
		Shape:       dots.Square,
		Charset:     charset.ASCII,
		FamilyName:  "Test",
	})
	if err != nil {
		t.Fatal(err)
	}

	outlines, ok := otf.Outlines.(*cff.Outlines)
	if !ok {
		t.Fatal("no CFF outlines")
	}

	// .notdef and A; the ASCII policy drops the glyph at code 0
	if len(outlines.Glyphs) != 2 {
		t.Fatalf("got %d glyphs, want 2", len(outlines.Glyphs))
	}
	if outlines.Glyphs[0].Name != ".notdef" {
		t.Errorf("first glyph is %q, not .notdef", outlines.Glyphs[0].Name)
	}

	g := outlines.Glyphs[1]
	if g.Name != "A" {
		t.Fatalf("got glyph %q, want A", g.Name)
	}

	// one closed rectangle per set pixel of the checkerboard
	moves, lines := 0, 0
	for _, cmd := range g.Cmds {
		switch cmd.Op {
		case cff.OpMoveTo:
			moves++
		case cff.OpLineTo:
			lines++
		}
	}
	if moves != 20 || lines != 60 {
		t.Errorf("got %d moves and %d lines, want 20 and 60", moves, lines)
	}

	pixelSize := 1000.0 / 13
	if math.Abs(g.Width-5*pixelSize) > 1e-9 {
		t.Errorf("got advance width %g, want %g", g.Width, 5*pixelSize)
	}

	if outlines.Encoding['A'] != 1 {
		t.Errorf("got encoding %d for A, want 1", outlines.Encoding['A'])
	}

	if otf.UnitsPerEm != 1000 {
		t.Errorf("got %d units per em, want 1000", otf.UnitsPerEm)
	}
	descender := int(math.Round(3 * pixelSize))
	if int(otf.Descent) != -descender {
		t.Errorf("got descent %d, want %d", otf.Descent, -descender)
	}
	if int(otf.Ascent) != 1000-descender {
		t.Errorf("got ascent %d, want %d", otf.Ascent, 1000-descender)
	}
}

// TestAdvanceRoundTrip checks that the advance width of every
// generated glyph matches the pixel width from the font metrics.
func TestAdvanceRoundTrip(t *testing.T) {
	font := testFont(t)

	otf, err := ToOpenType(font, &Options{
		PixelHeight: 13,
		Shape:       dots.Diamond,
	})
	if err != nil {
		t.Fatal(err)
	}
	outlines := otf.Outlines.(*cff.Outlines)

	pixelSize := 1000.0 / 13
	gid := 1
	for _, code := range font.Codes() {
		g, _ := font.Glyph(code)
		expected := float64(g.Metrics.Width) * pixelSize
		if w := outlines.Glyphs[gid].Width; math.Abs(w-expected) > 1e-9 {
			t.Errorf("glyph %q: got advance width %g, want %g",
				g.Name, w, expected)
		}
		gid++
	}
}

func TestBadOptions(t *testing.T) {
	font := testFont(t)
	if _, err := ToOpenType(font, nil); err == nil {
		t.Error("nil options accepted")
	}
	if _, err := ToOpenType(font, &Options{PixelHeight: 0}); err == nil {
		t.Error("zero pixel height accepted")
	}
}
