// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package canvas implements show.Display on top of any periph
// display.Drawer, like an SSD1306 OLED.
//
// Drawing happens in a one bit frame buffer the size of the device. Present
// sends the whole frame in one Draw call; the drivers only transmit what
// changed.
//
// Text is rendered with golang.org/x/image/font faces. FontDefault is the 7x13
// basic font, FontUnicode is Go Regular which covers Latin, Greek, Cyrillic
// and common symbols. Any TrueType font, for example Noto Sans Lao, can be
// registered with LoadTTF.
package canvas
