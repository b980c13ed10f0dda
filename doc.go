// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package phrasedisplay puts short phrases and single Unicode code points on
// character LCDs and monochrome OLED displays.
//
// The building blocks live in sub packages: codepoint encodes code points to
// UTF-8, phrase holds the glyph index tables, glyphs holds packed glyph
// bitmaps and show drives a display with them. canvas, charlcd and preview
// are the display back ends.
package phrasedisplay
