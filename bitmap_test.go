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
	"testing"
)

// TestBitmapExtents checks how the shared bitmap blob is divided
// between the glyphs: each glyph extends to the offset of the next
// glyph, and the last glyph extends to the blob size selected by the
// row padding bits.
func TestBitmapExtents(t *testing.T) {
	data := le32Bytes(0xA, // format: 4-byte rows, MSBit first
		3, // glyph count
		0, 8, 20, // offsets
		64, 128, 32, 256) // candidate blob sizes
	blob := make([]byte, 32)
	for i := range blob {
		blob[i] = byte(i)
	}
	data = append(data, blob...)

	bitmaps, err := readBitmaps(data, 0)
	if err != nil {
		t.Fatal(err)
	}

	ranges := [][2]int{{0, 8}, {8, 20}, {20, 32}}
	for i, expected := range ranges {
		g := bitmaps.glyph(i)
		if len(g) != expected[1]-expected[0] || g[0] != byte(expected[0]) {
			t.Errorf("glyph %d: got bytes [%d,%d), want [%d,%d)",
				i, g[0], int(g[0])+len(g), expected[0], expected[1])
		}
	}
}

func TestBitmapSizeSelection(t *testing.T) {
	// row padding bits select the third candidate size
	data := le32Bytes(0xA, 1, 0, 8, 16, 4, 2)
	data = append(data, make([]byte, 4)...)

	bitmaps, err := readBitmaps(data, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(bitmaps.data) != 4 {
		t.Errorf("got blob size %d, want 4", len(bitmaps.data))
	}
}

// TestBitmapFormatRejected checks that bitmap tables using a row layout
// other than 4-byte rows with MSBit-first pixels are rejected.  Such
// tables would otherwise decode to empty or garbled glyphs.
func TestBitmapFormatRejected(t *testing.T) {
	cases := []struct {
		name   string
		format uint32
	}{
		{"1-byte rows, LSBit first", 0},
		{"4-byte rows, LSBit first", 2},
		{"2-byte scan units", 0xA | 1<<4},
	}
	for _, c := range cases {
		// one glyph with two rows, stored with the declared layout
		data := le32Bytes(c.format, 1, 0, 2, 2, 8, 4)
		data = append(data, 0xAA, 0x55, 0, 0, 0, 0, 0, 0)

		_, err := readBitmaps(data, 0)
		if !errors.Is(err, errBitmapFormat) {
			t.Errorf("%s: got %v, want unsupported bitmap format",
				c.name, err)
		}
	}
}

func TestBitmapOffsetsMonotonic(t *testing.T) {
	data := le32Bytes(0xA, 2, 8, 0, 0, 0, 16, 0)
	data = append(data, make([]byte, 16)...)

	_, err := readBitmaps(data, 0)
	if !errors.Is(err, errBadOffsets) {
		t.Errorf("got %v, want bitmap offsets not monotonic", err)
	}
}

func TestBitmapBounds(t *testing.T) {
	// selected blob size larger than the file
	data := le32Bytes(0xA, 1, 0, 0, 0, 999, 0)

	_, err := readBitmaps(data, 0)
	var fontErr *InvalidFontError
	if !errors.As(err, &fontErr) {
		t.Errorf("got %v, want *InvalidFontError", err)
	}
}
