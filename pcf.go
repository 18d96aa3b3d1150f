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

// Package pcf reads bitmap fonts in the X11 "Portable Compiled Format"
// and converts them to OpenType fonts with CFF outlines.
// https://fontforge.org/docs/techref/pcf-format.html
//
// Only the table types needed for conversion are decoded: glyph names,
// encodings, metrics and bitmaps.  All other tables are listed in the
// table of contents but otherwise ignored.
package pcf

import (
	"errors"
	"strconv"
)

// The first four bytes of every PCF file.
var magic = []byte{1, 'f', 'c', 'p'}

// Table types, used as bit values in the table of contents.
const (
	tableProperties      = 1 << 0
	tableAccelerators    = 1 << 1
	tableMetrics         = 1 << 2
	tableBitmaps         = 1 << 3
	tableInkMetrics      = 1 << 4
	tableBDFEncodings    = 1 << 5
	tableSWidths         = 1 << 6
	tableGlyphNames      = 1 << 7
	tableBDFAccelerators = 1 << 8
)

// noGlyph marks unmapped character codes in the encoding table.
const noGlyph = 0xFFFF

var (
	errMagic         = errors.New("wrong magic number")
	errShortHeader   = errors.New("file header truncated")
	errTableBounds   = errors.New("table extends beyond end of file")
	errUnexpectedEOF = errors.New("unexpected end of table")
)

// InvalidFontError indicates that the font file could not be parsed.
type InvalidFontError struct {
	Pos int
	Err error
}

func (err *InvalidFontError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.Itoa(err.Pos) + ")"
	}
	return "not a valid PCF file" + middle + tail
}

func (err *InvalidFontError) Unwrap() error {
	return err.Err
}

// format describes the layout of one table, decoded from the 32-bit
// format word in the table of contents.
type format struct {
	// glyphPad gives the row padding of glyph bitmaps as a power of
	// two, i.e. rows are padded to multiples of 1<<glyphPad bytes.
	glyphPad int

	// bigEndian selects the byte order for all fields after a table's
	// leading format word.
	bigEndian bool

	// msbitFirst indicates that the leftmost pixel of a bitmap row is
	// stored in the most significant bit of its byte.
	msbitFirst bool

	// scanUnit gives the bitmap scan unit as a power of two.
	scanUnit int

	// compressed indicates that metrics entries use the compressed
	// one-byte representation.
	compressed bool
}

func parseFormat(raw uint32) format {
	return format{
		glyphPad:   int(raw & 3),
		bigEndian:  raw&(1<<2) != 0,
		msbitFirst: raw&(1<<3) != 0,
		scanUnit:   int(raw >> 4 & 3),
		compressed: raw>>8&0xFF == 1,
	}
}

// tocEntry is one entry in the table of contents.
type tocEntry struct {
	Type   uint32
	Format format
	Size   uint32
	Offset uint32
}

// readDirectory reads the file header and the table of contents.
// The header is always little-endian, regardless of the per-table
// byte order flags.
func readDirectory(data []byte) ([]tocEntry, error) {
	if len(data) < len(magic) {
		return nil, &InvalidFontError{Err: errMagic}
	}
	for i, c := range magic {
		if data[i] != c {
			return nil, &InvalidFontError{Err: errMagic}
		}
	}
	if len(data) < 8 {
		return nil, &InvalidFontError{Pos: len(data), Err: errShortHeader}
	}
	numTables := uint32(data[4]) | uint32(data[5])<<8 | uint32(data[6])<<16 | uint32(data[7])<<24

	endOfHeader := 8 + 16*int64(numTables)
	if endOfHeader > int64(len(data)) {
		return nil, &InvalidFontError{Pos: 4, Err: errTableBounds}
	}

	toc := make([]tocEntry, numTables)
	for i := range toc {
		base := 8 + 16*i
		get := func(k int) uint32 {
			return uint32(data[base+k]) |
				uint32(data[base+k+1])<<8 |
				uint32(data[base+k+2])<<16 |
				uint32(data[base+k+3])<<24
		}
		entry := tocEntry{
			Type:   get(0),
			Format: parseFormat(get(4)),
			Size:   get(8),
			Offset: get(12),
		}
		if int64(entry.Offset)+int64(entry.Size) > int64(len(data)) {
			return nil, &InvalidFontError{Pos: base, Err: errTableBounds}
		}
		toc[i] = entry
	}
	return toc, nil
}

// reader decodes the fields of one table.  The byte order is fixed when
// the reader is created, from the table's format word.
type reader struct {
	data      []byte
	pos       int
	bigEndian bool
}

// newReader positions a reader at the start of a table and consumes the
// leading format word.  The format word itself is always stored
// little-endian; the returned reader uses the byte order it selects.
func newReader(data []byte, offset int) (*reader, format, error) {
	r := &reader{data: data, pos: offset}
	raw, err := r.uint32()
	if err != nil {
		return nil, format{}, err
	}
	f := parseFormat(raw)
	r.bigEndian = f.bigEndian
	return r, f, nil
}

func (r *reader) error(err error) error {
	return &InvalidFontError{Pos: r.pos, Err: err}
}

func (r *reader) uint8() (uint8, error) {
	if r.pos >= len(r.data) {
		return 0, r.error(errUnexpectedEOF)
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *reader) uint16() (uint16, error) {
	if r.pos+2 > len(r.data) {
		return 0, r.error(errUnexpectedEOF)
	}
	b0, b1 := r.data[r.pos], r.data[r.pos+1]
	r.pos += 2
	if r.bigEndian {
		return uint16(b0)<<8 | uint16(b1), nil
	}
	return uint16(b1)<<8 | uint16(b0), nil
}

func (r *reader) int16() (int16, error) {
	val, err := r.uint16()
	return int16(val), err
}

func (r *reader) uint32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, r.error(errUnexpectedEOF)
	}
	b0, b1, b2, b3 := r.data[r.pos], r.data[r.pos+1], r.data[r.pos+2], r.data[r.pos+3]
	r.pos += 4
	if r.bigEndian {
		return uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3), nil
	}
	return uint32(b3)<<24 | uint32(b2)<<16 | uint32(b1)<<8 | uint32(b0), nil
}

// uint32Slice reads n uint32 values.
func (r *reader) uint32Slice(n int) ([]uint32, error) {
	if n < 0 || r.pos+4*n > len(r.data) {
		return nil, r.error(errUnexpectedEOF)
	}
	res := make([]uint32, n)
	for i := range res {
		val, err := r.uint32()
		if err != nil {
			return nil, err
		}
		res[i] = val
	}
	return res, nil
}
