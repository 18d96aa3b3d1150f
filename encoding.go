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

var errBadRange = errors.New("inconsistent encoding ranges")

// encodingTable maps character codes to glyph indices.
//
// The table is a matrix with one row per lead byte and one column per
// trail byte, stored row-major.  For fonts with single-byte codes both
// minByte1 and maxByte1 are zero and the matrix has a single row,
// indexed by the code itself.
type encodingTable struct {
	minCharOrByte2 uint16
	maxCharOrByte2 uint16
	minByte1       uint16
	maxByte1       uint16
	defaultChar    uint16
	glyphIndex     []uint16
}

// readEncoding reads a PCF_BDF_ENCODINGS table.
func readEncoding(data []byte, offset int) (*encodingTable, error) {
	r, _, err := newReader(data, offset)
	if err != nil {
		return nil, err
	}

	enc := &encodingTable{}
	for _, field := range []*uint16{
		&enc.minCharOrByte2,
		&enc.maxCharOrByte2,
		&enc.minByte1,
		&enc.maxByte1,
		&enc.defaultChar,
	} {
		*field, err = r.uint16()
		if err != nil {
			return nil, err
		}
	}
	if enc.maxCharOrByte2 < enc.minCharOrByte2 || enc.maxByte1 < enc.minByte1 {
		return nil, &InvalidFontError{Pos: offset, Err: errBadRange}
	}

	n := (int(enc.maxCharOrByte2) - int(enc.minCharOrByte2) + 1) *
		(int(enc.maxByte1) - int(enc.minByte1) + 1)
	enc.glyphIndex = make([]uint16, n)
	for i := range enc.glyphIndex {
		enc.glyphIndex[i], err = r.uint16()
		if err != nil {
			return nil, err
		}
	}
	return enc, nil
}

// lookup returns the glyph index for a character code.  The second
// return value is false if the code is not covered by the table or is
// mapped to the "no glyph" marker.
func (enc *encodingTable) lookup(r rune) (uint16, bool) {
	if r < 0 || r > 0xFFFF {
		return 0, false
	}
	code := uint16(r)

	var idx int
	if enc.minByte1 == 0 && enc.maxByte1 == 0 {
		if code < enc.minCharOrByte2 || code > enc.maxCharOrByte2 {
			return 0, false
		}
		idx = int(code - enc.minCharOrByte2)
	} else {
		b1 := code >> 8
		b2 := code & 0xFF
		if b1 < enc.minByte1 || b1 > enc.maxByte1 ||
			b2 < enc.minCharOrByte2 || b2 > enc.maxCharOrByte2 {
			return 0, false
		}
		ncols := int(enc.maxCharOrByte2) - int(enc.minCharOrByte2) + 1
		idx = int(b1-enc.minByte1)*ncols + int(b2-enc.minCharOrByte2)
	}

	gid := enc.glyphIndex[idx]
	if gid == noGlyph {
		return 0, false
	}
	return gid, true
}

// codes returns all character codes covered by the table which map to a
// glyph, in increasing order.
func (enc *encodingTable) codes() []rune {
	var res []rune
	if enc.minByte1 == 0 && enc.maxByte1 == 0 {
		for c := int(enc.minCharOrByte2); c <= int(enc.maxCharOrByte2); c++ {
			if enc.glyphIndex[c-int(enc.minCharOrByte2)] != noGlyph {
				res = append(res, rune(c))
			}
		}
		return res
	}

	ncols := int(enc.maxCharOrByte2) - int(enc.minCharOrByte2) + 1
	for b1 := int(enc.minByte1); b1 <= int(enc.maxByte1); b1++ {
		for b2 := int(enc.minCharOrByte2); b2 <= int(enc.maxCharOrByte2); b2++ {
			idx := (b1-int(enc.minByte1))*ncols + b2 - int(enc.minCharOrByte2)
			if enc.glyphIndex[idx] != noGlyph {
				res = append(res, rune(b1<<8|b2))
			}
		}
	}
	return res
}
