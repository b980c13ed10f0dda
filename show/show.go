// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package show puts code points and phrases on a Display.
//
// Every call follows the same sequence: validate and encode first, then
// clear, draw and present. An invalid code point or phrase number never
// reaches the display.
package show

import (
	"fmt"

	"github.com/GermanBionicSystems/phrasedisplay/codepoint"
	"github.com/GermanBionicSystems/phrasedisplay/phrase"
)

// FontID selects one of the fonts known to a Display.
type FontID int

// Fonts understood by the back ends of this module.
const (
	// FontDefault is the display's built in font.
	FontDefault FontID = iota
	// FontUnicode is a font with wide Unicode coverage.
	FontUnicode
	// FontUser is the first ID available for fonts loaded by the program.
	FontUser
)

// Display is the drawing surface used by this package.
//
// Nothing is visible before Present.
type Display interface {
	Clear() error
	SetFont(id FontID) error
	// DrawText draws UTF-8 text with its baseline starting at x, y.
	DrawText(x, y int, utf8 []byte) error
	Present() error
}

// GlyphDisplay is a Display that can also draw glyphs by glyph index.
type GlyphDisplay interface {
	Display
	// DrawGlyphs draws the glyphs left to right, the first one with its top
	// left corner at x, y.
	DrawGlyphs(x, y int, glyphs []uint8) error
}

// Opts is the placement of the drawn content.
type Opts struct {
	Font FontID
	X    int
	Y    int
}

// DefaultOpts is the placement used by the OLED sketches.
var DefaultOpts = Opts{
	Font: FontUnicode,
	X:    10,
	Y:    30,
}

// CodePoint shows the single character cp.
//
// It returns an error wrapping codepoint.ErrInvalidCodePoint, without touching
// d, when cp is not a Unicode scalar value.
func CodePoint(d Display, cp uint32, opts *Opts) error {
	if opts == nil {
		opts = &DefaultOpts
	}
	b, err := codepoint.Append(make([]byte, 0, codepoint.UTFMax), cp)
	if err != nil {
		return err
	}
	if err := d.Clear(); err != nil {
		return err
	}
	if err := d.SetFont(opts.Font); err != nil {
		return err
	}
	if err := d.DrawText(opts.X, opts.Y, b); err != nil {
		return err
	}
	return d.Present()
}

// Range shows every code point from first to last inclusive, skipping the ones
// that are not scalar values. The range is clipped to codepoint.MaxCodePoint.
//
// next is called after each presented code point; it is where the caller
// waits before the following one. Returning an error stops the iteration and
// is returned as is. Range returns the number of code points shown.
func Range(d Display, first, last uint32, opts *Opts, next func(cp uint32) error) (int, error) {
	if first > last {
		return 0, fmt.Errorf("show: empty range U+%04X..U+%04X", first, last)
	}
	last = min(last, codepoint.MaxCodePoint)
	n := 0
	for cp := first; cp <= last; cp++ {
		if !codepoint.IsScalar(cp) {
			continue
		}
		if err := CodePoint(d, cp, opts); err != nil {
			return n, err
		}
		n++
		if next != nil {
			if err := next(cp); err != nil {
				return n, err
			}
		}
	}
	return n, nil
}

// Phrase shows phrase i of t.
//
// Lookup errors, phrase.ErrIndexOutOfRange in particular, are returned before
// touching d.
func Phrase(d GlyphDisplay, t *phrase.Table, i int, opts *Opts) error {
	if opts == nil {
		opts = &DefaultOpts
	}
	g, err := t.Phrase(i)
	if err != nil {
		return err
	}
	if err := d.Clear(); err != nil {
		return err
	}
	if err := d.DrawGlyphs(opts.X, opts.Y, g); err != nil {
		return err
	}
	return d.Present()
}
