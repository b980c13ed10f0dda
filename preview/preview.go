// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package preview implements a monochrome display.Drawer that outputs to the
// terminal using ANSI color codes, and can save what it shows as PNG.
//
// Useful to lay out phrases while the OLED is still in the mail.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/fogleman/gg"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Opts represents the options available for this display.
type Opts struct {
	W, H    int
	Palette *ansi256.Palette
	// Out receives the frames. Defaults to stdout.
	Out io.Writer
	// InPlace redraws each frame over the previous one.
	InPlace bool

	_ struct{}
}

// DefaultOpts is the size of the common SSD1306 module.
var DefaultOpts = Opts{
	W: 128,
	H: 64,
}

var (
	on  = color.NRGBA{255, 255, 255, 255}
	off = color.NRGBA{0, 0, 0, 255}
)

// Dev is a monochrome screen emulator.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette
	inPlace bool
	frame   *image1bit.VerticalLSB
	frames  int

	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	if opts == nil {
		opts = &DefaultOpts
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Out
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	width, height := opts.W, opts.H
	if width <= 0 {
		width = DefaultOpts.W
	}
	if height <= 0 {
		height = DefaultOpts.H
	}
	return &Dev{
		w:       w,
		palette: *p,
		inPlace: opts.InPlace,
		frame:   image1bit.NewVerticalLSB(image.Rect(0, 0, width, height)),
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("Preview{%dx%d}", d.frame.Rect.Dx(), d.frame.Rect.Dy())
}

// Halt implements conn.Resource.
//
// It resets the terminal colors.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.frame.Rect
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	clipped := r.Intersect(d.Bounds())
	sp = sp.Add(clipped.Min.Sub(r.Min))
	draw.Src.Draw(d.frame, clipped, src, sp)
	return d.refresh()
}

// Frame returns the last frame drawn.
func (d *Dev) Frame() image.Image {
	return d.frame
}

// WritePNG encodes the frame as PNG, each pixel drawn as a scale x scale
// square.
func (d *Dev) WritePNG(w io.Writer, scale int) error {
	if scale < 1 {
		return fmt.Errorf("preview: invalid scale %d", scale)
	}
	r := d.frame.Rect
	dc := gg.NewContext(r.Dx()*scale, r.Dy()*scale)
	dc.SetColor(off)
	dc.Clear()
	s := float64(scale)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if d.frame.BitAt(x, y) == image1bit.On {
				dc.DrawRectangle(float64(x-r.Min.X)*s, float64(y-r.Min.Y)*s, s, s)
			}
		}
	}
	dc.SetColor(on)
	dc.Fill()
	return dc.EncodePNG(w)
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	r := d.frame.Rect
	if d.inPlace && d.frames != 0 {
		fmt.Fprintf(&d.buf, "\033[%dA", r.Dy())
	}
	lit, dark := d.palette.Block(on), d.palette.Block(off)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		for x := r.Min.X; x < r.Max.X; x++ {
			if d.frame.BitAt(x, y) == image1bit.On {
				_, _ = d.buf.WriteString(lit)
			} else {
				_, _ = d.buf.WriteString(dark)
			}
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.frames++
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
