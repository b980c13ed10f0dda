// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package charlcd implements show.Display on any periph display.TextDisplay,
// such as the HD44780 and SparkFun SerLCD drivers.
//
// Coordinates are in characters: x is the column and y the row, both
// starting at 0. The controller's character ROM is the only font, so
// SetFont only accepts show.FontDefault. Text is sent as is; the LCD decides
// how to show bytes outside of ASCII.
package charlcd

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"periph.io/x/conn/v3/display"

	"github.com/GermanBionicSystems/phrasedisplay/show"
)

var (
	// ErrFontUnsupported is returned by SetFont for any font but the built in.
	ErrFontUnsupported = errors.New("charlcd: font not supported")
	// ErrOutOfScreen is returned when text starts outside of the screen.
	ErrOutOfScreen = errors.New("charlcd: position out of screen")
)

// Dev adapts a display.TextDisplay.
type Dev struct {
	lcd display.TextDisplay
}

// New returns a Dev writing to lcd.
func New(lcd display.TextDisplay) *Dev {
	return &Dev{lcd: lcd}
}

func (d *Dev) String() string {
	return fmt.Sprintf("charlcd.Dev{%dx%d}", d.lcd.Cols(), d.lcd.Rows())
}

// Clear implements show.Display. Unlike a frame buffer, the screen is cleared
// immediately.
func (d *Dev) Clear() error {
	return d.lcd.Clear()
}

// SetFont implements show.Display.
func (d *Dev) SetFont(id show.FontID) error {
	if id != show.FontDefault {
		return fmt.Errorf("%w: %d", ErrFontUnsupported, id)
	}
	return nil
}

// DrawText implements show.Display. Text past the end of the row is
// truncated, one character per cell.
func (d *Dev) DrawText(x, y int, b []byte) error {
	if x < 0 || y < 0 || x >= d.lcd.Cols() || y >= d.lcd.Rows() {
		return fmt.Errorf("%w: column %d row %d", ErrOutOfScreen, x, y)
	}
	if err := d.lcd.MoveTo(d.lcd.MinRow()+y, d.lcd.MinCol()+x); err != nil {
		return err
	}
	_, err := d.lcd.Write(truncate(b, d.lcd.Cols()-x))
	return err
}

// truncate returns the first cells characters of b.
func truncate(b []byte, cells int) []byte {
	n := 0
	for i := 0; i < len(b); n++ {
		if n == cells {
			return b[:i]
		}
		_, size := utf8.DecodeRune(b[i:])
		i += size
	}
	return b
}

// Present implements show.Display. Writes are immediate on a character LCD.
func (d *Dev) Present() error {
	return nil
}

var _ show.Display = &Dev{}
