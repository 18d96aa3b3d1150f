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

import "errors"

var (
	errBadOffsets   = errors.New("bitmap offsets not monotonic")
	errBitmapFormat = errors.New("unsupported bitmap format")
)

// bitmapTable gives access to the raw glyph bitmaps.
//
// The table stores one offset per glyph into a shared blob of bitmap
// data.  A glyph's bitmap extends from its own offset to the offset of
// the following glyph; the last glyph extends to the total blob size.
type bitmapTable struct {
	offsets []uint32

	// data is the bitmap blob.  Its length equals the blob size
	// selected by the glyph padding bits of the table format.
	data []byte
}

// readBitmaps reads a PCF_BITMAPS table.
func readBitmaps(data []byte, offset int) (*bitmapTable, error) {
	r, f, err := newReader(data, offset)
	if err != nil {
		return nil, err
	}

	// Glyph rows are decoded assuming 4-byte row padding, byte-sized
	// scan units and the leftmost pixel in the most significant bit.
	// A table using any other layout cannot be decoded correctly.
	if f.glyphPad != 2 || !f.msbitFirst || f.scanUnit != 0 {
		return nil, &InvalidFontError{Pos: offset, Err: errBitmapFormat}
	}

	glyphCount, err := r.uint32()
	if err != nil {
		return nil, err
	}
	offsets, err := r.uint32Slice(int(glyphCount))
	if err != nil {
		return nil, err
	}

	// There is one candidate blob size for each of the four possible
	// row paddings.  The glyph padding bits select the active one.
	sizes, err := r.uint32Slice(4)
	if err != nil {
		return nil, err
	}
	size := sizes[f.glyphPad]

	// 8 bytes for the format word and the glyph count, 4 bytes per
	// offset, 16 bytes for the candidate sizes.
	base := offset + 8 + 4*int(glyphCount) + 16
	if int64(base)+int64(size) > int64(len(data)) {
		return nil, &InvalidFontError{Pos: base, Err: errUnexpectedEOF}
	}

	for i, o := range offsets {
		next := size
		if i+1 < len(offsets) {
			next = offsets[i+1]
		}
		if o > next {
			return nil, &InvalidFontError{Pos: offset, Err: errBadOffsets}
		}
	}

	return &bitmapTable{
		offsets: offsets,
		data:    data[base : base+int(size)],
	}, nil
}

// glyph returns the raw bitmap bytes for one glyph.
func (t *bitmapTable) glyph(i int) []byte {
	start := t.offsets[i]
	end := uint32(len(t.data))
	if i+1 < len(t.offsets) {
		end = t.offsets[i+1]
	}
	return t.data[start:end]
}
