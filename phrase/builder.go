// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package phrase

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/rivo/uniseg"
)

// MaxGlyphs is the number of distinct glyphs a table can reference.
const MaxGlyphs = math.MaxUint8 + 1

// ErrTableFull is returned when a phrase does not fit in a uint8 table.
var ErrTableFull = errors.New("phrase: table full")

// Builder assembles a Table from text.
//
// Each phrase is split in extended grapheme clusters, what a reader sees as
// one character: a Lao consonant with its vowel and tone marks is a single
// glyph. Clusters get glyph indices in the order they are first seen.
//
// The zero value is ready to use.
type Builder struct {
	clusters []string
	index    map[string]uint8
	t        Table
}

// Add appends a phrase.
//
// On error the builder is left as it was before the call.
func (b *Builder) Add(s string) error {
	if b.index == nil {
		b.index = map[string]uint8{}
	}
	var run []uint8
	var fresh []string
	pending := map[string]uint8{}
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		c := g.Str()
		idx, ok := b.index[c]
		if !ok {
			if idx, ok = pending[c]; !ok {
				n := len(b.clusters) + len(fresh)
				if n >= MaxGlyphs {
					return fmt.Errorf("%w: %q needs more than %d distinct glyphs", ErrTableFull, s, MaxGlyphs)
				}
				idx = uint8(n)
				pending[c] = idx
				fresh = append(fresh, c)
			}
		}
		run = append(run, idx)
	}
	start := len(b.t.Glyphs)
	if start > math.MaxUint8 {
		return fmt.Errorf("%w: phrase %d would start at offset %d", ErrTableFull, b.t.Count(), start)
	}
	if len(run) > math.MaxUint8 {
		return fmt.Errorf("%w: %q is %d glyphs long", ErrTableFull, s, len(run))
	}
	for c, idx := range pending {
		b.index[c] = idx
	}
	b.clusters = append(b.clusters, fresh...)
	b.t.Glyphs = append(b.t.Glyphs, run...)
	b.t.Starts = append(b.t.Starts, uint8(start))
	b.t.Lengths = append(b.t.Lengths, uint8(len(run)))
	return nil
}

// Table returns a copy of the table built so far.
func (b *Builder) Table() *Table {
	return &Table{
		Glyphs:  append([]uint8{}, b.t.Glyphs...),
		Starts:  append([]uint8{}, b.t.Starts...),
		Lengths: append([]uint8{}, b.t.Lengths...),
	}
}

// Clusters returns the text of each glyph, indexed by glyph index.
func (b *Builder) Clusters() []string {
	return append([]string{}, b.clusters...)
}

// Build is a shortcut to add every phrase to a new Builder.
func Build(phrases ...string) (*Table, []string, error) {
	var b Builder
	for _, p := range phrases {
		if err := b.Add(p); err != nil {
			return nil, nil, err
		}
	}
	return b.Table(), b.Clusters(), nil
}

// ReadCSV reads one phrase per row.
//
// Columns of a row are joined with a space, surrounding white space is
// trimmed and empty rows are skipped.
func ReadCSV(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	var out []string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("phrase: reading csv: %w", err)
		}
		if s := strings.TrimSpace(strings.Join(rec, " ")); s != "" {
			out = append(out, s)
		}
	}
}
