// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package glyphs

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Render rasterizes cluster with face into a w x h gray image, black ink on
// white, ready for Sheet.Append.
//
// The cluster is centered horizontally and its line box vertically. Ink that
// does not fit is clipped. An empty cluster renders as a blank glyph.
func Render(face font.Face, w, h int, cluster string) (*image.Gray, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, w, h)
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	if cluster == "" {
		return img, nil
	}
	m := face.Metrics()
	adv := font.MeasureString(face, cluster)
	x := (fixed.I(w) - adv) / 2
	y := (fixed.I(h)-m.Ascent-m.Descent)/2 + m.Ascent
	d := font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.Point26_6{X: max(x, 0), Y: y},
	}
	d.DrawString(cluster)
	return img, nil
}

// RenderAll renders every cluster with face and appends it to s, in order, so
// glyph index i is clusters[i].
func (s *Sheet) RenderAll(face font.Face, clusters []string) error {
	for i, c := range clusters {
		img, err := Render(face, s.Width, s.Height, c)
		if err != nil {
			return err
		}
		if err := s.Append(img); err != nil {
			return fmt.Errorf("glyphs: cluster %d %q: %w", i, c, err)
		}
	}
	return nil
}
