// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// unishow shows Unicode code points or phrases on an SSD1306 OLED, or on the
// terminal with -preview.
//
// Examples:
//
//	unishow -cp U+03A9
//	unishow -from 41 -to 5A -delay 1s
//	unishow -preview -phrase 1 -sheet glyphs.bin -gw 30 -gh 30
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/font"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/phrasedisplay/canvas"
	"github.com/GermanBionicSystems/phrasedisplay/glyphs"
	"github.com/GermanBionicSystems/phrasedisplay/phrase"
	"github.com/GermanBionicSystems/phrasedisplay/preview"
	"github.com/GermanBionicSystems/phrasedisplay/show"
)

// parseCodePoint accepts "U+03A9", "0x3A9" or "3A9".
func parseCodePoint(s string) (uint32, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	t = strings.TrimPrefix(t, "U+")
	t = strings.TrimPrefix(t, "0X")
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q", s)
	}
	return uint32(v), nil
}

func openDrawer(usePreview bool, bus string, w, h int) (display.Drawer, func() error, error) {
	if usePreview {
		return preview.New(&preview.Opts{W: w, H: h, InPlace: true}), func() error { return nil }, nil
	}
	if _, err := host.Init(); err != nil {
		return nil, nil, err
	}
	b, err := i2creg.Open(bus)
	if err != nil {
		return nil, nil, err
	}
	opts := ssd1306.DefaultOpts
	opts.W = w
	opts.H = h
	if opts.H == 32 {
		opts.Sequential = true
	}
	dev, err := ssd1306.NewI2C(b, &opts)
	if err != nil {
		b.Close()
		return nil, nil, fmt.Errorf("failed to initialize display: %w", err)
	}
	return dev, b.Close, nil
}

func loadSheet(path string, w, h int) (*glyphs.Sheet, error) {
	if path == "" {
		return nil, nil
	}
	s, err := glyphs.NewSheet(w, h)
	if err != nil {
		return nil, err
	}
	if s.Bits, err = os.ReadFile(path); err != nil {
		return nil, err
	}
	if len(s.Bits)%s.Stride() != 0 {
		return nil, fmt.Errorf("%s: %d bytes is not a multiple of %d byte glyphs", path, len(s.Bits), s.Stride())
	}
	return s, nil
}

func mainImpl() error {
	bus := flag.String("bus", "", "I²C bus to use")
	width := flag.Int("width", 128, "display width")
	height := flag.Int("height", 64, "display height")
	usePreview := flag.Bool("preview", false, "draw on the terminal instead of the OLED")
	pngPath := flag.String("png", "", "with -preview, save the last frame as PNG")
	scale := flag.Int("scale", 4, "PNG pixel size")
	cp := flag.String("cp", "", "single code point to show")
	from := flag.String("from", "", "first code point of a range")
	to := flag.String("to", "", "last code point of a range")
	phraseNum := flag.Int("phrase", -1, "phrase to show from the built in table")
	delay := flag.Duration("delay", time.Second, "time each frame stays on screen before the next one or before the display turns off")
	ttf := flag.String("font", "", "TrueType font used for code points")
	size := flag.Float64("size", 16, "size of -font in pixels")
	sheetPath := flag.String("sheet", "", "packed glyph bitmaps for -phrase")
	gw := flag.Int("gw", 30, "glyph width in -sheet")
	gh := flag.Int("gh", 30, "glyph height in -sheet")
	x := flag.Int("x", show.DefaultOpts.X, "text left position")
	y := flag.Int("y", show.DefaultOpts.Y, "text baseline, or glyph top for -phrase")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	copts := canvas.DefaultOpts
	opts := show.Opts{Font: show.FontUnicode, X: *x, Y: *y}
	if *ttf != "" {
		face, err := canvas.LoadTTFFile(*ttf, *size)
		if err != nil {
			return err
		}
		copts.Fonts = map[show.FontID]font.Face{show.FontUser: face}
		opts.Font = show.FontUser
	}
	sheet, err := loadSheet(*sheetPath, *gw, *gh)
	if err != nil {
		return err
	}
	copts.Sheet = sheet

	drawer, closeBus, err := openDrawer(*usePreview, *bus, *width, *height)
	if err != nil {
		return err
	}
	defer closeBus()
	d, err := canvas.New(drawer, &copts)
	if err != nil {
		return err
	}
	defer d.Halt()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cfg := config{cp: *cp, from: *from, to: *to, phrase: *phraseNum, table: phrase.Default, opts: opts}
	n, err := run(d, &cfg, func() error { return hold(ctx, *delay) })
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		return err
	}
	if cfg.phrase < 0 && cfg.cp == "" {
		log.Printf("showed %d code points", n)
	}

	if p, ok := drawer.(*preview.Dev); ok && *pngPath != "" {
		return savePNG(p, *pngPath, *scale)
	}
	return nil
}

// config selects what run shows.
type config struct {
	cp       string
	from, to string
	phrase   int
	table    *phrase.Table
	opts     show.Opts
}

// run draws what cfg selects on d. wait is called after every frame so the
// frame stays visible; an error from wait stops run. It returns the number of
// frames shown.
func run(d show.GlyphDisplay, cfg *config, wait func() error) (int, error) {
	switch {
	case cfg.phrase >= 0:
		if err := show.Phrase(d, cfg.table, cfg.phrase, &cfg.opts); err != nil {
			return 0, err
		}
		return 1, wait()
	case cfg.cp != "":
		v, err := parseCodePoint(cfg.cp)
		if err != nil {
			return 0, err
		}
		if err := show.CodePoint(d, v, &cfg.opts); err != nil {
			return 0, err
		}
		return 1, wait()
	case cfg.from != "" && cfg.to != "":
		first, err := parseCodePoint(cfg.from)
		if err != nil {
			return 0, err
		}
		last, err := parseCodePoint(cfg.to)
		if err != nil {
			return 0, err
		}
		return show.Range(d, first, last, &cfg.opts, func(uint32) error {
			return wait()
		})
	default:
		return 0, errors.New("specify -cp, -from and -to, or -phrase")
	}
}

// hold waits for delay or until ctx is done.
func hold(ctx context.Context, delay time.Duration) error {
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func savePNG(p *preview.Dev, path string, scale int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err2 := f.Close(); err == nil {
			err = err2
		}
	}()
	return p.WritePNG(f, scale)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("unishow: ")
	if err := mainImpl(); err != nil {
		log.Fatal(err)
	}
}
