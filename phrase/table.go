// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package phrase

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned for a phrase number outside [0, Count()).
	ErrIndexOutOfRange = errors.New("phrase: index out of range")
	// ErrCorruptTable is returned when a table breaks its invariants.
	ErrCorruptTable = errors.New("phrase: corrupt table")
)

// Table is a static phrase table.
//
// It must not be modified once in use.
type Table struct {
	// Glyphs is every phrase concatenated.
	Glyphs []uint8
	// Starts is the offset of each phrase in Glyphs.
	Starts []uint8
	// Lengths is the number of glyphs of each phrase.
	Lengths []uint8
}

// Count returns the number of phrases.
func (t *Table) Count() int {
	return len(t.Starts)
}

// Phrase returns the glyph indices of phrase i.
//
// The returned slice aliases Glyphs; its capacity ends with the phrase so an
// append cannot overwrite the following one.
func (t *Table) Phrase(i int) ([]uint8, error) {
	if i < 0 || i >= len(t.Starts) || i >= len(t.Lengths) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, t.Count())
	}
	s := int(t.Starts[i])
	e := s + int(t.Lengths[i])
	if e > len(t.Glyphs) {
		return nil, fmt.Errorf("%w: phrase %d ends at %d past %d glyphs", ErrCorruptTable, i, e, len(t.Glyphs))
	}
	return t.Glyphs[s:e:e], nil
}

// Validate checks the table invariants.
func (t *Table) Validate() error {
	if len(t.Starts) != len(t.Lengths) {
		return fmt.Errorf("%w: %d starts but %d lengths", ErrCorruptTable, len(t.Starts), len(t.Lengths))
	}
	next := 0
	for i, s := range t.Starts {
		if int(s) != next {
			return fmt.Errorf("%w: phrase %d starts at %d, want %d", ErrCorruptTable, i, s, next)
		}
		next += int(t.Lengths[i])
	}
	if next != len(t.Glyphs) {
		return fmt.Errorf("%w: lengths sum to %d but there are %d glyphs", ErrCorruptTable, next, len(t.Glyphs))
	}
	return nil
}

// Each calls fn for every phrase in order, stopping at the first error.
func (t *Table) Each(fn func(i int, glyphs []uint8) error) error {
	for i := range t.Starts {
		g, err := t.Phrase(i)
		if err != nil {
			return err
		}
		if err := fn(i, g); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) String() string {
	return fmt.Sprintf("phrase.Table{%d phrases, %d glyphs}", t.Count(), len(t.Glyphs))
}
