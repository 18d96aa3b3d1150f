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

	"github.com/google/go-cmp/cmp"
)

func TestCompressedMetrics(t *testing.T) {
	data := le32Bytes(0x100) // compressed metrics format
	data = append(data, 3, 0) // count, little-endian
	data = append(data,
		0x80, 0x80, 0x80, 0x80, 0x80, // all fields zero
		0x00, 0x00, 0x00, 0x00, 0x00, // all fields -128
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF) // all fields 127

	metrics, err := readMetrics(data, 0)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Metrics{
		{},
		{LeftSideBearing: -128, RightSideBearing: -128, Width: -128, Ascent: -128, Descent: -128},
		{LeftSideBearing: 127, RightSideBearing: 127, Width: 127, Ascent: 127, Descent: 127},
	}
	if d := cmp.Diff(metrics, expected); d != "" {
		t.Errorf("wrong metrics: %s", d)
	}
}

func TestUncompressedMetrics(t *testing.T) {
	// big-endian table
	data := le32Bytes(1 << 2)
	data = append(data,
		0, 0, 0, 1, // count
		0xFF, 0xFF, // left side bearing -1
		0, 6, // right side bearing
		0, 5, // width
		0, 11, // ascent
		0, 2, // descent
		0, 3) // attributes

	metrics, err := readMetrics(data, 0)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Metrics{
		{
			LeftSideBearing:  -1,
			RightSideBearing: 6,
			Width:            5,
			Ascent:           11,
			Descent:          2,
			Attributes:       3,
		},
	}
	if d := cmp.Diff(metrics, expected); d != "" {
		t.Errorf("wrong metrics: %s", d)
	}
}

func TestMetricsTooShort(t *testing.T) {
	data := le32Bytes(0)
	data = append(data, 0, 0, 0, 2) // count 0x02000000, little-endian
	_, err := readMetrics(data, 0)
	if !errors.Is(err, errUnexpectedEOF) {
		t.Errorf("got %v, want unexpected end of table", err)
	}
}
