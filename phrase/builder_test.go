// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package phrase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tbl, clusters, err := Build("héllo", "world")
	require.NoError(t, err)
	require.NoError(t, tbl.Validate())
	assert.Equal(t, []string{"h", "é", "l", "o", "w", "r", "d"}, clusters)
	assert.Equal(t, []uint8{0, 1, 2, 2, 3, 4, 3, 5, 2, 6}, tbl.Glyphs)
	assert.Equal(t, []uint8{0, 5}, tbl.Starts)
	assert.Equal(t, []uint8{5, 5}, tbl.Lengths)
}

func TestBuildCombiningMarks(t *testing.T) {
	// e + combining acute and Lao DO + vowel sign II are single glyphs.
	tbl, clusters, err := Build("ée", "ດີດ")
	require.NoError(t, err)
	assert.Equal(t, []string{"é", "e", "ດີ", "ດ"}, clusters)
	assert.Equal(t, []uint8{0, 1, 2, 3}, tbl.Glyphs)
	assert.Equal(t, []uint8{2, 2}, tbl.Lengths)
}

func TestBuildEmptyPhrase(t *testing.T) {
	tbl, clusters, err := Build("ab", "", "ba")
	require.NoError(t, err)
	require.NoError(t, tbl.Validate())
	assert.Len(t, clusters, 2)
	g, err := tbl.Phrase(1)
	require.NoError(t, err)
	assert.Empty(t, g)
}

func TestBuilderTooManyGlyphs(t *testing.T) {
	var b Builder
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteRune(rune(0x4E00 + i))
	}
	require.NoError(t, b.Add(sb.String()))

	sb.Reset()
	for i := 200; i < 257; i++ {
		sb.WriteRune(rune(0x4E00 + i))
	}
	err := b.Add(sb.String())
	assert.ErrorIs(t, err, ErrTableFull)

	// The failed phrase left no trace.
	assert.Len(t, b.Clusters(), 200)
	assert.Equal(t, 1, b.Table().Count())
	require.NoError(t, b.Add("一"))
	assert.Len(t, b.Clusters(), 200)
}

func TestBuilderOffsetOverflow(t *testing.T) {
	var b Builder
	require.NoError(t, b.Add(strings.Repeat("a", 255)))
	require.NoError(t, b.Add("b"))
	err := b.Add("c")
	assert.ErrorIs(t, err, ErrTableFull)
	assert.Len(t, b.Clusters(), 2)
}

func TestBuilderPhraseTooLong(t *testing.T) {
	var b Builder
	assert.ErrorIs(t, b.Add(strings.Repeat("a", 256)), ErrTableFull)
	assert.Empty(t, b.Clusters())
}

func TestBuilderTableIsCopy(t *testing.T) {
	var b Builder
	require.NoError(t, b.Add("abc"))
	tbl := b.Table()
	tbl.Glyphs[0] = 42
	assert.Equal(t, uint8(0), b.Table().Glyphs[0])
}

func TestReadCSV(t *testing.T) {
	in := "hello,world\n\n  spaced  \n\"quoted, comma\"\n,\nລາວ\n"
	got, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"hello world", "spaced", "quoted, comma", "ລາວ"}, got)
}

func TestReadCSVBareQuote(t *testing.T) {
	got, err := ReadCSV(strings.NewReader("say \"hi\"\nok\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{`say "hi"`, "ok"}, got)
}

func TestReadCSVError(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("\"unterminated\n"))
	assert.Error(t, err)
}
