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

// Package charset selects which character codes of a font are converted.
package charset

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// Policy describes a subset of the characters in a font.
type Policy int

// The supported character subsets.
const (
	// Full selects every character the font covers.
	Full Policy = iota

	// ASCII selects the characters in the range U+0020 to U+00FF.
	ASCII

	// GB2312 selects the ASCII range together with all characters of
	// the GB2312 character set.
	GB2312
)

// Parse returns the policy with the given name.
func Parse(name string) (Policy, error) {
	switch name {
	case "full":
		return Full, nil
	case "ascii":
		return ASCII, nil
	case "gb2312":
		return GB2312, nil
	}
	return 0, fmt.Errorf("unknown charset %q", name)
}

func (p Policy) String() string {
	switch p {
	case Full:
		return "full"
	case ASCII:
		return "ascii"
	case GB2312:
		return "gb2312"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// Contains reports whether the character is part of the subset.
func (p Policy) Contains(r rune) bool {
	switch p {
	case ASCII:
		return r >= 0x20 && r <= 0xFF
	case GB2312:
		if r >= 0x20 && r <= 0xFF {
			return true
		}
		_, ok := gb2312Set()[r]
		return ok
	default:
		return true
	}
}

// gb2312Set returns the set of Unicode characters reachable from valid
// two-byte GB2312 sequences.  Lead bytes 0xA1 to 0xA9 cover symbols,
// lead bytes 0xB0 to 0xF7 the hanzi; trail bytes run from 0xA1 to
// 0xFE.  The set is computed once and never modified afterwards.
var gb2312Set = sync.OnceValue(func() map[rune]struct{} {
	dec := simplifiedchinese.GBK.NewDecoder()
	set := make(map[rune]struct{})
	add := func(loByte1, hiByte1 byte) {
		for b1 := loByte1; b1 <= hiByte1; b1++ {
			for b2 := byte(0xA1); b2 <= 0xFE; b2++ {
				buf, err := dec.Bytes([]byte{b1, b2})
				if err != nil {
					continue
				}
				r, _ := utf8.DecodeRune(buf)
				if r != utf8.RuneError {
					set[r] = struct{}{}
				}
			}
		}
	}
	add(0xA1, 0xA9)
	add(0xB0, 0xF7)
	return set
})
