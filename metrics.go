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

// Metrics describes the size and position of one glyph, in pixels.
type Metrics struct {
	LeftSideBearing  int16
	RightSideBearing int16

	// Width is the advance width of the glyph.
	Width int16

	// Ascent gives the number of bitmap rows above the baseline,
	// Descent the number of rows below.
	Ascent  int16
	Descent int16

	Attributes uint16
}

// readMetrics reads a PCF_METRICS table.
//
// Metrics come in two representations, selected by the high byte of the
// format word.  Compressed metrics store each field as a single byte,
// biased by 128, and have no attributes.  Uncompressed metrics store
// each field as a 16-bit value.
func readMetrics(data []byte, offset int) ([]Metrics, error) {
	r, f, err := newReader(data, offset)
	if err != nil {
		return nil, err
	}

	if f.compressed {
		count, err := r.uint16()
		if err != nil {
			return nil, err
		}
		res := make([]Metrics, count)
		for i := range res {
			var fields [5]int16
			for k := range fields {
				b, err := r.uint8()
				if err != nil {
					return nil, err
				}
				fields[k] = int16(b) - 128
			}
			res[i] = Metrics{
				LeftSideBearing:  fields[0],
				RightSideBearing: fields[1],
				Width:            fields[2],
				Ascent:           fields[3],
				Descent:          fields[4],
			}
		}
		return res, nil
	}

	count, err := r.uint32()
	if err != nil {
		return nil, err
	}
	if int64(r.pos)+12*int64(count) > int64(len(data)) {
		return nil, r.error(errUnexpectedEOF)
	}
	res := make([]Metrics, count)
	for i := range res {
		m := Metrics{}
		for _, field := range []*int16{
			&m.LeftSideBearing,
			&m.RightSideBearing,
			&m.Width,
			&m.Ascent,
			&m.Descent,
		} {
			*field, err = r.int16()
			if err != nil {
				return nil, err
			}
		}
		m.Attributes, err = r.uint16()
		if err != nil {
			return nil, err
		}
		res[i] = m
	}
	return res, nil
}
