// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package glyphs stores pre-rendered monochrome glyphs addressed by glyph
// index, as referenced by phrase tables.
//
// The packing is the one used by the Arduino sketches: glyphs are stored one
// after the other, each glyph is Height rows of ceil(Width/8) bytes, most
// significant bit first, a set bit is ink. Trailing bits of a row are zero.
package glyphs

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
)

var (
	// ErrGlyphIndex is returned for a glyph index not present in the sheet.
	ErrGlyphIndex = errors.New("glyphs: glyph index out of range")
	// ErrSize is returned for invalid or mismatched dimensions.
	ErrSize = errors.New("glyphs: invalid size")
)

// Sheet is a set of same sized packed glyphs.
type Sheet struct {
	Width  int
	Height int
	Bits   []byte
}

// NewSheet returns an empty sheet of w x h pixel glyphs.
func NewSheet(w, h int) (*Sheet, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, w, h)
	}
	return &Sheet{Width: w, Height: h}, nil
}

func (s *Sheet) rowBytes() int {
	return (s.Width + 7) / 8
}

// Stride returns the number of bytes of one glyph.
func (s *Sheet) Stride() int {
	return s.rowBytes() * s.Height
}

// Count returns the number of complete glyphs in the sheet.
func (s *Sheet) Count() int {
	if st := s.Stride(); st > 0 {
		return len(s.Bits) / st
	}
	return 0
}

// Glyph returns glyph i as an alpha mask.
func (s *Sheet) Glyph(i int) (*Glyph, error) {
	if i < 0 || i >= s.Count() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrGlyphIndex, i, s.Count())
	}
	st := s.Stride()
	return &Glyph{w: s.Width, h: s.Height, rowBytes: s.rowBytes(), bits: s.Bits[i*st : (i+1)*st]}, nil
}

// Append packs img as a new glyph. Pixels darker than mid gray are ink.
//
// img must be exactly Width x Height.
func (s *Sheet) Append(img image.Image) error {
	r := img.Bounds()
	if r.Dx() != s.Width || r.Dy() != s.Height {
		return fmt.Errorf("%w: image is %dx%d, sheet is %dx%d", ErrSize, r.Dx(), r.Dy(), s.Width, s.Height)
	}
	rb := s.rowBytes()
	out := make([]byte, s.Stride())
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			g := color.GrayModel.Convert(img.At(r.Min.X+x, r.Min.Y+y)).(color.Gray)
			if g.Y < 0x80 {
				out[y*rb+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	s.Bits = append(s.Bits, out...)
	return nil
}

// Draw paints the glyphs idx left to right with src, the first one with its
// top left corner at pt. It returns the position following the last glyph.
//
// Nothing is drawn if one of the indices is invalid.
func (s *Sheet) Draw(dst draw.Image, pt image.Point, src image.Image, idx []uint8) (image.Point, error) {
	gl := make([]*Glyph, len(idx))
	for i, n := range idx {
		g, err := s.Glyph(int(n))
		if err != nil {
			return pt, err
		}
		gl[i] = g
	}
	for _, g := range gl {
		r := image.Rectangle{Min: pt, Max: pt.Add(image.Pt(s.Width, s.Height))}
		draw.DrawMask(dst, r, src, image.Point{}, g, image.Point{}, draw.Over)
		pt.X += s.Width
	}
	return pt, nil
}

// WriteCHeader writes s as the glyph_bitmaps.h header used by the Arduino
// sketches.
func WriteCHeader(w io.Writer, s *Sheet) error {
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "#ifndef GLYPH_BITMAPS_H\n#define GLYPH_BITMAPS_H\n\n")
	fmt.Fprintf(b, "#define GLYPH_WIDTH %d\n#define GLYPH_HEIGHT %d\n\n", s.Width, s.Height)
	fmt.Fprintf(b, "#include <avr/pgmspace.h>\n\n")
	fmt.Fprintf(b, "static const uint8_t glyph_bitmaps[] PROGMEM = {\n")
	for i := 0; i < len(s.Bits); i += 16 {
		line := s.Bits[i:min(i+16, len(s.Bits))]
		for j, v := range line {
			if j != 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "0x%02X", v)
		}
		b.WriteString(",\n")
	}
	fmt.Fprintf(b, "};\n\n#endif // GLYPH_BITMAPS_H\n")
	return b.Flush()
}

// Glyph is a single glyph of a Sheet. It implements image.Image with
// color.Alpha pixels, opaque where there is ink.
type Glyph struct {
	w, h     int
	rowBytes int
	bits     []byte
}

// Bit reports whether the pixel at x, y is ink.
func (g *Glyph) Bit(x, y int) bool {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return false
	}
	return g.bits[y*g.rowBytes+x/8]&(0x80>>uint(x%8)) != 0
}

// ColorModel implements image.Image.
func (g *Glyph) ColorModel() color.Model {
	return color.AlphaModel
}

// Bounds implements image.Image.
func (g *Glyph) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.w, g.h)
}

// At implements image.Image.
func (g *Glyph) At(x, y int) color.Color {
	if g.Bit(x, y) {
		return color.Alpha{A: 0xFF}
	}
	return color.Alpha{}
}

var _ image.Image = &Glyph{}
