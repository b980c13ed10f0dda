// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package canvas

import (
	"errors"
	"fmt"
	"image"
	"os"
	"unicode/utf8"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/GermanBionicSystems/phrasedisplay/glyphs"
	"github.com/GermanBionicSystems/phrasedisplay/show"
)

var (
	// ErrUnknownFont is returned by SetFont for an unregistered font.
	ErrUnknownFont = errors.New("canvas: unknown font")
	// ErrNoSheet is returned by DrawGlyphs when no glyph sheet was given.
	ErrNoSheet = errors.New("canvas: no glyph sheet")
	// ErrInvalidText is returned by DrawText for malformed UTF-8.
	ErrInvalidText = errors.New("canvas: invalid UTF-8 text")
)

// Opts defines the options for the canvas.
type Opts struct {
	// UnicodeSize is the size in points of the FontUnicode face.
	UnicodeSize float64
	// Fonts registers additional faces, usually from FontUser upward. They
	// may also replace the built in ones.
	Fonts map[show.FontID]font.Face
	// Sheet holds the glyphs drawn by DrawGlyphs.
	Sheet *glyphs.Sheet
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	UnicodeSize: 13,
}

// Dev draws on a display.Drawer.
type Dev struct {
	dev   display.Drawer
	img   *image1bit.VerticalLSB
	faces map[show.FontID]font.Face
	face  font.Face
	sheet *glyphs.Sheet
}

// New returns a Dev drawing on dev with FontDefault selected.
func New(dev display.Drawer, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	size := opts.UnicodeSize
	if size <= 0 {
		size = DefaultOpts.UnicodeSize
	}
	uni, err := LoadTTF(goregular.TTF, size)
	if err != nil {
		return nil, err
	}
	d := &Dev{
		dev: dev,
		img: image1bit.NewVerticalLSB(dev.Bounds()),
		faces: map[show.FontID]font.Face{
			show.FontDefault: basicfont.Face7x13,
			show.FontUnicode: uni,
		},
		sheet: opts.Sheet,
	}
	for id, f := range opts.Fonts {
		if f == nil {
			return nil, fmt.Errorf("canvas: nil face for font %d", id)
		}
		d.faces[id] = f
	}
	d.face = d.faces[show.FontDefault]
	return d, nil
}

// LoadTTF parses a TrueType font and returns a face of the given size in
// points, at 72 DPI so that a point is a pixel.
func LoadTTF(data []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("canvas: parsing font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// LoadTTFFile is LoadTTF on the content of a file.
func LoadTTFFile(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	return LoadTTF(data, size)
}

func (d *Dev) String() string {
	return fmt.Sprintf("canvas.Dev{%s}", d.dev)
}

// Bounds returns the size of the frame.
func (d *Dev) Bounds() image.Rectangle {
	return d.img.Bounds()
}

// Clear implements show.Display. It blanks the frame, the device is only
// updated by Present.
func (d *Dev) Clear() error {
	clear(d.img.Pix)
	return nil
}

// SetFont implements show.Display.
func (d *Dev) SetFont(id show.FontID) error {
	f, ok := d.faces[id]
	if !ok {
		return fmt.Errorf("%w %d", ErrUnknownFont, id)
	}
	d.face = f
	return nil
}

// DrawText implements show.Display.
//
// Text running past the edges is clipped.
func (d *Dev) DrawText(x, y int, b []byte) error {
	if !utf8.Valid(b) {
		return ErrInvalidText
	}
	dr := font.Drawer{
		Dst:  d.img,
		Src:  &image.Uniform{C: image1bit.On},
		Face: d.face,
		Dot:  fixed.P(x, y),
	}
	dr.DrawBytes(b)
	return nil
}

// DrawGlyphs implements show.GlyphDisplay using Opts.Sheet.
func (d *Dev) DrawGlyphs(x, y int, g []uint8) error {
	if d.sheet == nil {
		return ErrNoSheet
	}
	_, err := d.sheet.Draw(d.img, image.Pt(x, y), &image.Uniform{C: image1bit.On}, g)
	return err
}

// Present implements show.Display.
func (d *Dev) Present() error {
	return d.dev.Draw(d.dev.Bounds(), d.img, d.img.Bounds().Min)
}

// Halt halts the underlying device.
func (d *Dev) Halt() error {
	return d.dev.Halt()
}

var _ show.GlyphDisplay = &Dev{}
