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

// Package fakepcf constructs small PCF font files for use in unit
// tests.
package fakepcf

import "slices"

// Glyph describes one glyph of a synthetic font.  Bitmap rows are
// given as strings, using '#' for set pixels and '.' for unset ones.
// The number of rows must equal Ascent+Descent.
type Glyph struct {
	Code rune
	Name string

	LeftSideBearing  int
	RightSideBearing int
	Width            int
	Ascent           int
	Descent          int

	Bitmap []string
}

// Options selects the on-disk representation of the synthetic font.
type Options struct {
	// BigEndian stores all table fields after the format word in
	// big-endian byte order.
	BigEndian bool

	// CompressedMetrics stores metrics in the one-byte-per-field
	// representation.
	CompressedMetrics bool

	// OmitNames leaves out the glyph names table.
	OmitNames bool
}

// table type bits, as in the PCF format
const (
	typeMetrics   = 1 << 2
	typeBitmaps   = 1 << 3
	typeEncodings = 1 << 5
	typeNames     = 1 << 7
)

// rows in the bitmap table are padded to four bytes
const glyphPadBits = 2

// New creates a PCF file containing the given glyphs.  Glyph indices
// follow the order of the arguments.
func New(glyphs []*Glyph, opt *Options) []byte {
	if opt == nil {
		opt = &Options{}
	}
	w := &writer{bigEndian: opt.BigEndian}

	type table struct {
		typ  uint32
		data []byte
	}
	tables := []table{
		{typeMetrics, w.metricsTable(glyphs, opt.CompressedMetrics)},
		{typeBitmaps, w.bitmapTable(glyphs)},
		{typeEncodings, w.encodingTable(glyphs)},
	}
	if !opt.OmitNames {
		tables = append(tables, table{typeNames, w.namesTable(glyphs)})
	}

	// file header and table of contents, always little-endian
	var buf []byte
	buf = append(buf, 1, 'f', 'c', 'p')
	buf = le32(buf, uint32(len(tables)))
	offset := 8 + 16*len(tables)
	for _, t := range tables {
		format := w.format()
		if t.typ == typeMetrics && opt.CompressedMetrics {
			format |= 0x100
		}
		buf = le32(buf, t.typ)
		buf = le32(buf, format)
		buf = le32(buf, uint32(len(t.data)))
		buf = le32(buf, uint32(offset))
		offset += len(t.data)
	}
	for _, t := range tables {
		buf = append(buf, t.data...)
	}
	return buf
}

type writer struct {
	bigEndian bool
}

// format returns the table format word: four-byte row padding, most
// significant bit first, and the selected byte order.
func (w *writer) format() uint32 {
	format := uint32(glyphPadBits) | 1<<3
	if w.bigEndian {
		format |= 1 << 2
	}
	return format
}

func le32(buf []byte, v uint32) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func (w *writer) put16(buf []byte, v uint16) []byte {
	if w.bigEndian {
		return append(buf, byte(v>>8), byte(v))
	}
	return append(buf, byte(v), byte(v>>8))
}

func (w *writer) put32(buf []byte, v uint32) []byte {
	if w.bigEndian {
		return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
	return le32(buf, v)
}

func (w *writer) metricsTable(glyphs []*Glyph, compressed bool) []byte {
	format := w.format()
	if compressed {
		format |= 0x100
	}
	buf := le32(nil, format)
	if compressed {
		buf = w.put16(buf, uint16(len(glyphs)))
		for _, g := range glyphs {
			for _, v := range []int{g.LeftSideBearing, g.RightSideBearing, g.Width, g.Ascent, g.Descent} {
				buf = append(buf, byte(v+128))
			}
		}
		return buf
	}
	buf = w.put32(buf, uint32(len(glyphs)))
	for _, g := range glyphs {
		for _, v := range []int{g.LeftSideBearing, g.RightSideBearing, g.Width, g.Ascent, g.Descent} {
			buf = w.put16(buf, uint16(int16(v)))
		}
		buf = w.put16(buf, 0) // attributes
	}
	return buf
}

func (w *writer) bitmapTable(glyphs []*Glyph) []byte {
	var blob []byte
	offsets := make([]uint32, len(glyphs))
	var sizes [4]uint32
	for i, g := range glyphs {
		offsets[i] = uint32(len(blob))
		for _, row := range g.Bitmap {
			var rowBytes [4]byte
			for x, c := range row {
				if c != '#' {
					continue
				}
				rowBytes[x/8] |= 0x80 >> (x % 8)
			}
			blob = append(blob, rowBytes[:]...)
		}

		// candidate blob sizes for the four row paddings
		unpadded := (g.Width + 7) / 8
		for pad := range sizes {
			rowLen := (unpadded + 1<<pad - 1) &^ (1<<pad - 1)
			sizes[pad] += uint32(len(g.Bitmap) * rowLen)
		}
	}

	buf := le32(nil, w.format())
	buf = w.put32(buf, uint32(len(glyphs)))
	for _, o := range offsets {
		buf = w.put32(buf, o)
	}
	for _, s := range sizes {
		buf = w.put32(buf, s)
	}
	return append(buf, blob...)
}

func (w *writer) encodingTable(glyphs []*Glyph) []byte {
	codes := make([]rune, len(glyphs))
	for i, g := range glyphs {
		codes[i] = g.Code
	}
	singleByte := slices.Max(codes) <= 0xFF

	var min2, max2, minB1, maxB1 int
	if singleByte {
		min2, max2 = 0xFF, 0
		for _, c := range codes {
			min2 = min(min2, int(c))
			max2 = max(max2, int(c))
		}
	} else {
		min2, max2 = 0xFF, 0
		minB1, maxB1 = 0xFF, 0
		for _, c := range codes {
			min2 = min(min2, int(c)&0xFF)
			max2 = max(max2, int(c)&0xFF)
			minB1 = min(minB1, int(c)>>8)
			maxB1 = max(maxB1, int(c)>>8)
		}
	}

	ncols := max2 - min2 + 1
	nrows := maxB1 - minB1 + 1
	index := make([]uint16, ncols*nrows)
	for i := range index {
		index[i] = 0xFFFF
	}
	for gid, c := range codes {
		var pos int
		if singleByte {
			pos = int(c) - min2
		} else {
			pos = (int(c)>>8-minB1)*ncols + int(c)&0xFF - min2
		}
		index[pos] = uint16(gid)
	}

	buf := le32(nil, w.format())
	for _, v := range []int{min2, max2, minB1, maxB1, 0} {
		buf = w.put16(buf, uint16(v))
	}
	for _, v := range index {
		buf = w.put16(buf, v)
	}
	return buf
}

func (w *writer) namesTable(glyphs []*Glyph) []byte {
	var blob []byte
	offsets := make([]uint32, len(glyphs))
	for i, g := range glyphs {
		offsets[i] = uint32(len(blob))
		blob = append(blob, g.Name...)
		blob = append(blob, 0)
	}

	buf := le32(nil, w.format())
	buf = w.put32(buf, uint32(len(glyphs)))
	for _, o := range offsets {
		buf = w.put32(buf, o)
	}
	buf = w.put32(buf, uint32(len(blob)))
	return append(buf, blob...)
}
