// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package phrase

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strconv"
	"strings"
	"text/template"
)

var genFuncs = template.FuncMap{
	"join": func(v []uint8) string {
		s := make([]string, len(v))
		for i, b := range v {
			s[i] = strconv.Itoa(int(b))
		}
		return strings.Join(s, ", ")
	},
	"inc": func(i int) int { return i + 1 },
}

var cHeader = template.Must(template.New("c").Funcs(genFuncs).Parse(`#ifndef PHRASES_TO_DISPLAY_H
#define PHRASES_TO_DISPLAY_H

const uint8_t all_phrases[] = {
{{- range $i, $p := .Phrases}}
    {{if $p}}{{join $p}},    {{end}}// phrase {{inc $i}}
{{- end}}
};

const uint8_t phrase_starts[] = {{"{"}}{{join .Starts}}{{"}"}};     // starting index of each phrase
const uint8_t phrase_lengths[] = {{"{"}}{{join .Lengths}}{{"}"}};    // length of each phrase
const uint8_t num_phrases = {{.Count}};

#endif
`))

var goSource = template.Must(template.New("go").Funcs(genFuncs).Parse(`// Code generated by phrasegen. DO NOT EDIT.

package {{.Pkg}}
{{if .Qualifier}}
import "github.com/GermanBionicSystems/phrasedisplay/phrase"
{{end}}
// {{.Name}} holds {{.Count}} phrases.
var {{.Name}} = {{.Qualifier}}Table{
	Glyphs: []uint8{
{{- range $i, $p := .Phrases}}
		{{if $p}}{{join $p}}, {{end}}// phrase {{$i}}
{{- end}}
	},
	Starts: []uint8{ {{- join .Starts -}} },
	Lengths: []uint8{ {{- join .Lengths -}} },
}
`))

type genData struct {
	Pkg       string
	Name      string
	Qualifier string
	Count     int
	Phrases   [][]uint8
	Starts    []uint8
	Lengths   []uint8
}

func newGenData(t *Table) (*genData, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	d := &genData{Count: t.Count(), Starts: t.Starts, Lengths: t.Lengths}
	err := t.Each(func(_ int, g []uint8) error {
		d.Phrases = append(d.Phrases, g)
		return nil
	})
	return d, err
}

// WriteCHeader writes t as the phrases_to_display.h header used by the
// Arduino sketches.
func WriteCHeader(w io.Writer, t *Table) error {
	d, err := newGenData(t)
	if err != nil {
		return err
	}
	return cHeader.Execute(w, d)
}

// WriteGo writes t as gofmt'ed Go source declaring a variable name in
// package pkg.
func WriteGo(w io.Writer, pkg, name string, t *Table) error {
	if !token.IsIdentifier(pkg) || !token.IsIdentifier(name) {
		return fmt.Errorf("phrase: invalid package %q or variable %q", pkg, name)
	}
	d, err := newGenData(t)
	if err != nil {
		return err
	}
	d.Pkg = pkg
	d.Name = name
	if pkg != "phrase" {
		d.Qualifier = "phrase."
	}
	var buf bytes.Buffer
	if err := goSource.Execute(&buf, d); err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("phrase: formatting generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}
