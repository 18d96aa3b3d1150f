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

var errBadString = errors.New("glyph name outside string data")

// readNames reads a PCF_GLYPH_NAMES table.  The result has one name per
// glyph, in glyph index order.
//
// The table consists of a glyph count, one offset per glyph, the length
// of the string data, and the string data itself.  Each offset points
// to a NUL-terminated string.
func readNames(data []byte, offset int) ([]string, error) {
	r, _, err := newReader(data, offset)
	if err != nil {
		return nil, err
	}

	glyphCount, err := r.uint32()
	if err != nil {
		return nil, err
	}
	offsets, err := r.uint32Slice(int(glyphCount))
	if err != nil {
		return nil, err
	}
	stringSize, err := r.uint32()
	if err != nil {
		return nil, err
	}

	// 8 bytes for the format word and the glyph count, 4 bytes per
	// offset, 4 bytes for the string size.
	stringBase := offset + 8 + 4*int(glyphCount) + 4
	if int64(stringBase)+int64(stringSize) > int64(len(data)) {
		return nil, &InvalidFontError{Pos: stringBase, Err: errUnexpectedEOF}
	}
	strings := data[stringBase : stringBase+int(stringSize)]

	names := make([]string, glyphCount)
	for i, o := range offsets {
		if int64(o) >= int64(len(strings)) {
			return nil, &InvalidFontError{Pos: stringBase, Err: errBadString}
		}
		s := strings[o:]
		k := 0
		for k < len(s) && s[k] != 0 {
			k++
		}
		if k == len(s) {
			return nil, &InvalidFontError{Pos: stringBase, Err: errBadString}
		}
		names[i] = string(s[:k])
	}
	return names, nil
}
