// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package charlcd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/display/displaytest"

	"github.com/GermanBionicSystems/phrasedisplay/show"
)

// fakeLCD is a 16x2 display with 1 based rows and columns, like the periph
// HD44780 driver. It logs Clear, MoveTo and Write and keeps the screen
// content.
type fakeLCD struct {
	ops      []string
	screen   [2][16]byte
	row, col int
	on       bool
}

func (f *fakeLCD) String() string { return "fakeLCD" }

func (f *fakeLCD) Write(p []byte) (int, error) {
	f.ops = append(f.ops, fmt.Sprintf("write %q", p))
	for _, c := range p {
		if f.col < len(f.screen[f.row]) {
			f.screen[f.row][f.col] = c
		}
		f.col++
	}
	return len(p), nil
}

func (f *fakeLCD) WriteString(s string) (int, error) {
	return f.Write([]byte(s))
}

func (f *fakeLCD) Clear() error {
	f.ops = append(f.ops, "clear")
	f.screen = [2][16]byte{}
	f.row, f.col = 0, 0
	return nil
}

func (f *fakeLCD) Home() error {
	f.row, f.col = 0, 0
	return nil
}

func (f *fakeLCD) MoveTo(row, col int) error {
	if row < f.MinRow() || row > f.Rows() || col < f.MinCol() || col > f.Cols() {
		return fmt.Errorf("fakeLCD: invalid position %d,%d", row, col)
	}
	f.ops = append(f.ops, fmt.Sprintf("move %d,%d", row, col))
	f.row, f.col = row-f.MinRow(), col-f.MinCol()
	return nil
}

func (f *fakeLCD) Move(dir display.CursorDirection) error {
	switch dir {
	case display.Forward:
		f.col++
	case display.Backward:
		f.col = max(f.col-1, 0)
	case display.Up, display.Down:
		return display.ErrNotImplemented
	default:
		return display.ErrInvalidCommand
	}
	return nil
}

func (f *fakeLCD) Cursor(modes ...display.CursorMode) error {
	for _, m := range modes {
		if m < display.CursorOff || m > display.CursorBlink {
			return display.ErrInvalidCommand
		}
	}
	return nil
}

func (f *fakeLCD) AutoScroll(bool) error { return display.ErrNotImplemented }

func (f *fakeLCD) Display(on bool) error {
	f.on = on
	return nil
}

func (f *fakeLCD) MinRow() int { return 1 }
func (f *fakeLCD) MinCol() int { return 1 }
func (f *fakeLCD) Rows() int { return 2 }
func (f *fakeLCD) Cols() int { return 16 }

// line returns row r of the screen with cleared cells as spaces.
func (f *fakeLCD) line(r int) string {
	b := f.screen[r]
	for i, c := range b {
		if c == 0 {
			b[i] = ' '
		}
	}
	return string(b[:])
}

func TestFakeLCD(t *testing.T) {
	errs := displaytest.TestTextDisplay(&fakeLCD{}, false)
	for _, err := range errs {
		if !errors.Is(err, display.ErrNotImplemented) {
			t.Error(err)
		}
	}
}

func TestCodePoint(t *testing.T) {
	lcd := &fakeLCD{}
	d := New(lcd)
	if err := show.CodePoint(d, 'A', &show.Opts{Font: show.FontDefault, X: 3, Y: 1}); err != nil {
		t.Fatal(err)
	}
	want := []string{"clear", "move 2,4", `write "A"`}
	if diff := cmp.Diff(want, lcd.ops); diff != "" {
		t.Errorf("ops (-want +got):\n%s", diff)
	}
	if got := lcd.line(1); got != "   A            " {
		t.Errorf("row 1 = %q", got)
	}
}

func TestSetFont(t *testing.T) {
	d := New(&fakeLCD{})
	if err := d.SetFont(show.FontDefault); err != nil {
		t.Error(err)
	}
	if err := d.SetFont(show.FontUnicode); !errors.Is(err, ErrFontUnsupported) {
		t.Errorf("SetFont(FontUnicode) = %v", err)
	}
}

func TestDrawText(t *testing.T) {
	for _, tc := range []struct {
		name string
		x, y int
		in   string
		want string
		err  error
	}{
		{name: "fits", x: 0, y: 0, in: "hello", want: `write "hello"`},
		{name: "truncated", x: 12, y: 1, in: "abcdefgh", want: `write "abcd"`},
		{name: "multibyte truncated", x: 14, y: 0, in: "ΩΩΩ", want: `write "ΩΩ"`},
		{name: "column past end", x: 16, y: 0, in: "a", err: ErrOutOfScreen},
		{name: "row past end", x: 0, y: 2, in: "a", err: ErrOutOfScreen},
		{name: "negative", x: -1, y: 0, in: "a", err: ErrOutOfScreen},
	} {
		t.Run(tc.name, func(t *testing.T) {
			lcd := &fakeLCD{}
			err := New(lcd).DrawText(tc.x, tc.y, []byte(tc.in))
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Errorf("DrawText() = %v, want %v", err, tc.err)
				}
				if len(lcd.ops) != 0 {
					t.Errorf("ops = %v", lcd.ops)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := lcd.ops[len(lcd.ops)-1]; got != tc.want {
				t.Errorf("DrawText() wrote %s, want %s", got, tc.want)
			}
		})
	}
}

func TestTruncatedScreen(t *testing.T) {
	lcd := &fakeLCD{}
	d := New(lcd)
	if err := d.DrawText(10, 0, []byte("overflowing")); err != nil {
		t.Fatal(err)
	}
	if got := lcd.line(0); got != "          overfl" {
		t.Errorf("row 0 = %q", got)
	}
}

func TestString(t *testing.T) {
	if s := New(&fakeLCD{}).String(); s != "charlcd.Dev{16x2}" {
		t.Errorf("String() = %q", s)
	}
}

var _ display.TextDisplay = &fakeLCD{}
