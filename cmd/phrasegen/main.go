// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// phrasegen turns a CSV file of phrases, one per row, into a phrase table.
//
// The glyph list, one grapheme cluster per glyph index, is printed on stderr.
// With -bitmaps or -bin, every cluster is also rendered with -font into a
// -glyph pixel square and the packed bitmaps are written in glyph index order.
//
//	phrasegen -in input_strings.csv -format c -out phrases_to_display.h
//	phrasegen -in input_strings.csv -format go -pkg tables -name Lao -out lao.go
//	phrasegen -in input_strings.csv -font NotoSansLao-Regular.ttf -glyph 30 -bitmaps glyph_bitmaps.h -bin glyphs.bin
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/GermanBionicSystems/phrasedisplay/glyphs"
	"github.com/GermanBionicSystems/phrasedisplay/phrase"
)

type config struct {
	in     string
	out    string
	format string
	pkg    string
	name   string

	font    string
	glyph   int
	bitmaps string
	bin     string
}

// loadFace returns the TrueType face at path, Go Regular if path is empty,
// sized so a line fits in a glyph of px pixels.
func loadFace(path string, px int) (font.Face, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, err
		}
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: float64(px) * 3 / 4, DPI: 72, Hinting: font.HintingFull}), nil
}

// writeBitmaps renders clusters and writes the sheet as a C header and as raw
// bytes, skipping the outputs with an empty path.
func writeBitmaps(cfg *config, clusters []string) (*glyphs.Sheet, error) {
	s, err := glyphs.NewSheet(cfg.glyph, cfg.glyph)
	if err != nil {
		return nil, err
	}
	face, err := loadFace(cfg.font, cfg.glyph)
	if err != nil {
		return nil, err
	}
	defer face.Close()
	if err := s.RenderAll(face, clusters); err != nil {
		return nil, err
	}
	if cfg.bitmaps != "" {
		var buf bytes.Buffer
		if err := glyphs.WriteCHeader(&buf, s); err != nil {
			return nil, err
		}
		if err := os.WriteFile(cfg.bitmaps, buf.Bytes(), 0o644); err != nil {
			return nil, err
		}
	}
	if cfg.bin != "" {
		if err := os.WriteFile(cfg.bin, s.Bits, 0o644); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func run(cfg *config, stdin io.Reader, stdout, stderr io.Writer) error {
	r := stdin
	if cfg.in != "-" {
		f, err := os.Open(cfg.in)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	phrases, err := phrase.ReadCSV(r)
	if err != nil {
		return err
	}
	if len(phrases) == 0 {
		return errors.New("no phrase found")
	}
	t, clusters, err := phrase.Build(phrases...)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch cfg.format {
	case "c":
		err = phrase.WriteCHeader(&buf, t)
	case "go":
		err = phrase.WriteGo(&buf, cfg.pkg, cfg.name, t)
	default:
		err = fmt.Errorf("unknown format %q", cfg.format)
	}
	if err != nil {
		return err
	}

	if cfg.bitmaps != "" || cfg.bin != "" {
		sheet, err := writeBitmaps(cfg, clusters)
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "%d glyphs of %dx%d, %d bytes\n", sheet.Count(), sheet.Width, sheet.Height, len(sheet.Bits))
	}

	for i, c := range clusters {
		fmt.Fprintf(stderr, "%3d %q\n", i, c)
	}
	fmt.Fprintf(stderr, "%d phrases, %d glyph indices, %d distinct glyphs\n", t.Count(), len(t.Glyphs), len(clusters))

	if cfg.out == "" {
		_, err = buf.WriteTo(stdout)
		return err
	}
	return os.WriteFile(cfg.out, buf.Bytes(), 0o644)
}

func main() {
	cfg := config{}
	flag.StringVar(&cfg.in, "in", "input_strings.csv", "CSV file of phrases, - for stdin")
	flag.StringVar(&cfg.out, "out", "", "output file, stdout if empty")
	flag.StringVar(&cfg.format, "format", "c", "output format: c or go")
	flag.StringVar(&cfg.pkg, "pkg", "phrases", "package name for -format go")
	flag.StringVar(&cfg.name, "name", "Table", "variable name for -format go")
	flag.StringVar(&cfg.font, "font", "", "TrueType font used to render glyphs, Go Regular if empty")
	flag.IntVar(&cfg.glyph, "glyph", 30, "glyph width and height in pixels")
	flag.StringVar(&cfg.bitmaps, "bitmaps", "", "write rendered glyphs as a C header to this file")
	flag.StringVar(&cfg.bin, "bin", "", "write rendered glyphs as raw packed bytes to this file")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("phrasegen: ")
	if err := run(&cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}
