// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package phrase maps phrase numbers to runs of glyph indices.
//
// A Table concatenates every phrase into a single Glyphs array. Starts and
// Lengths locate each phrase in it. Glyph indices refer to a font or glyph
// sheet chosen by the caller, they are not Unicode code points.
//
// Two tables ship with the package: HelloLao and Greetings. Default is
// HelloLao unless the program is built with the "greetings" tag.
//
// Tables are generated from a list of phrases with Builder, usually through
// cmd/phrasegen, and compiled in as read only data.
package phrase
