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

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"seehuhn.de/go/pcf"
	"seehuhn.de/go/pcf/charset"
	"seehuhn.de/go/pcf/convert"
	"seehuhn.de/go/pcf/dots"
)

var (
	outArg       = flag.String("o", "", "output file name (default: input with .otf suffix)")
	shapeArg     = flag.String("shape", "square", "dot shape (square, diamond or circle)")
	heightArg    = flag.Int("height", 16, "pixel height of the bitmap font")
	charsetArg   = flag.String("charset", "full", "character subset (full, ascii or gb2312)")
	familyArg    = flag.String("family", "", "family name of the generated font")
	copyrightArg = flag.String("copyright", "", "copyright notice for the generated font")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pcf2otf — convert a PCF bitmap font to OpenType\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pcf2otf [options] <file.pcf>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pcf2otf -height 12 -shape circle -charset gb2312 zpix.pcf\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fname string) error {
	shape, err := dots.Parse(*shapeArg)
	if err != nil {
		return err
	}
	policy, err := charset.Parse(*charsetArg)
	if err != nil {
		return err
	}

	fd, err := os.Open(fname)
	if err != nil {
		return err
	}
	font, err := pcf.Read(fd)
	fd.Close()
	if err != nil {
		return err
	}

	family := *familyArg
	if family == "" {
		family = strings.TrimSuffix(fname, ".pcf")
	}
	otf, err := convert.ToOpenType(font, &convert.Options{
		PixelHeight: *heightArg,
		Shape:       shape,
		Charset:     policy,
		FamilyName:  family,
		Copyright:   *copyrightArg,
	})
	if err != nil {
		return err
	}

	outName := *outArg
	if outName == "" {
		outName = strings.TrimSuffix(fname, ".pcf") + ".otf"
	}
	out, err := os.Create(outName)
	if err != nil {
		return err
	}
	_, err = otf.Write(out)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
