// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package glyphs

import (
	"errors"
	"image"
	"testing"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func ink(img *image.Gray) int {
	n := 0
	for _, v := range img.Pix {
		if v < 0x80 {
			n++
		}
	}
	return n
}

func goRegular(t *testing.T, size float64) font.Face {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
}

func TestRender(t *testing.T) {
	img, err := Render(goRegular(t, 24), 30, 30, "W")
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 30, 30) {
		t.Errorf("Bounds() = %v", got)
	}
	if ink(img) == 0 {
		t.Error("rendered cluster has no ink")
	}
	// Centered: ink on both halves.
	left, right := 0, 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			if img.GrayAt(x, y).Y < 0x80 {
				if x < 15 {
					left++
				} else {
					right++
				}
			}
		}
	}
	if left == 0 || right == 0 {
		t.Errorf("ink not centered: left %d right %d", left, right)
	}
}

func TestRenderBlank(t *testing.T) {
	for _, c := range []string{"", " "} {
		img, err := Render(basicfont.Face7x13, 8, 13, c)
		if err != nil {
			t.Fatal(err)
		}
		if n := ink(img); n != 0 {
			t.Errorf("Render(%q) has %d ink pixels", c, n)
		}
	}
}

func TestRenderSize(t *testing.T) {
	if _, err := Render(basicfont.Face7x13, 0, 13, "a"); !errors.Is(err, ErrSize) {
		t.Errorf("Render(0x13) error = %v", err)
	}
}

func TestRenderAll(t *testing.T) {
	s, err := NewSheet(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	clusters := []string{"ສ", "ະ", "A", " "}
	if err := s.RenderAll(goRegular(t, 14), clusters); err != nil {
		t.Fatal(err)
	}
	if s.Count() != len(clusters) {
		t.Fatalf("Count() = %d, want %d", s.Count(), len(clusters))
	}
	g, err := s.Glyph(2)
	if err != nil {
		t.Fatal(err)
	}
	lit := 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if g.Bit(x, y) {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("glyph for \"A\" has no ink")
	}
}
