// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

var unicodeTextTests = []struct {
	args, out string
}{
	{"0xA9", "©"},
	{"169", "©"},
	{"0x41 0x42 0x43", "ABC"},
	{"copy", "copy"},
	{"0x41 and 0x42", "AandB"},
	{"0x110000", ""},
	{"", ""},
}

func TestUnicodeText(t *testing.T) {
	for _, tt := range unicodeTextTests {
		if got := unicodeText(tt.args); got != tt.out {
			t.Errorf("unicodeText(%#q) = %#q, want %#q", tt.args, got, tt.out)
		}
	}
}

func TestMetadataLevel(t *testing.T) {
	m := newMetadata()
	if got := m.level('='); got != 1 {
		t.Errorf("level('=') = %d, want 1", got)
	}
	if got := m.level('-'); got != 2 {
		t.Errorf("level('-') = %d, want 2", got)
	}
	if got := m.level('='); got != 1 {
		t.Errorf("level('=') second time = %d, want 1", got)
	}
	if got := m.level('~'); got != 3 {
		t.Errorf("level('~') = %d, want 3", got)
	}
}

func TestAnalyzeSections(t *testing.T) {
	lines := splitLines("Intro\n=====\n\ntext\n\nSub\n----")
	m := newMetadata()
	analyze(lines, m)
	want := []section{{1, "Intro"}, {2, "Sub"}}
	if len(m.sections) != len(want) {
		t.Fatalf("analyze: %d sections, want %d", len(m.sections), len(want))
	}
	for i, s := range m.sections {
		if s != want[i] {
			t.Errorf("section %d = %v, want %v", i, s, want[i])
		}
	}
}

func TestAnalyzeDirectiveNotTitle(t *testing.T) {
	lines := splitLines(".. contents::\n=============\n\nReal\n=====")
	m := newMetadata()
	analyze(lines, m)
	want := []section{{1, "Real"}}
	if len(m.sections) != len(want) || m.sections[0] != want[0] {
		t.Fatalf("analyze: sections = %v, want %v", m.sections, want)
	}
}

func TestSubstitutionChain(t *testing.T) {
	got := Convert(".. |a| replace:: x |b| y\n.. |b| replace:: B\n\n|a|\n")
	want := "<p>x B y</p>\n"
	if got != want {
		t.Errorf("Convert:\n have %#q\n want %#q", got, want)
	}
}

func TestAnalyzeSubstitutions(t *testing.T) {
	lines := splitLines(".. |x| replace:: one\n.. |x| replace:: two\n.. |img| image:: a.png")
	m := newMetadata()
	analyze(lines, m)
	if got := m.subs["x"]; got != "two" {
		t.Errorf("subs[x] = %#q, want %#q (last definition wins)", got, "two")
	}
	if got := m.subs["img"]; got != `<img src="a.png" alt="">` {
		t.Errorf("subs[img] = %#q", got)
	}
}

func TestAnalyzeTargets(t *testing.T) {
	lines := splitLines(".. _Go: https://go.dev\n.. _anchor:\n.. _Py: https://python.org")
	m := newMetadata()
	analyze(lines, m)
	want := []target{{"Go", "https://go.dev"}, {"Py", "https://python.org"}}
	if len(m.targets) != len(want) {
		t.Fatalf("analyze: %d targets, want %d", len(m.targets), len(want))
	}
	for i, tg := range m.targets {
		if tg != want[i] {
			t.Errorf("target %d = %v, want %v", i, tg, want[i])
		}
	}
}

func TestAnalyzeHeaderFirstWins(t *testing.T) {
	lines := splitLines(".. header::\n\n   First\n\n.. header::\n\n   Second")
	m := newMetadata()
	analyze(lines, m)
	if !m.hasHeader || m.header != "First" {
		t.Errorf("header = %#q, %v, want %#q, true", m.header, m.hasHeader, "First")
	}
}

func TestCollectFragment(t *testing.T) {
	lines := []string{"", "   One", "   Two", "", "next"}
	if got := collectFragment(lines, 0); got != "One\nTwo" {
		t.Errorf("collectFragment = %#q, want %#q", got, "One\nTwo")
	}
}

func TestFormatDate(t *testing.T) {
	got := formatDate("")
	if _, err := time.Parse("2006-01-02", got); err != nil {
		t.Errorf("formatDate(\"\") = %#q, not an ISO date", got)
	}
	year := strconv.Itoa(time.Now().Year())
	if got := formatDate("%Y"); got != year {
		t.Errorf("formatDate(%%Y) = %#q, want %#q", got, year)
	}
}

func TestSubstitutionHTML(t *testing.T) {
	if got := substitutionHTML("replace", "*G*"); got != "<em>G</em>" {
		t.Errorf("substitutionHTML(replace) = %#q", got)
	}
	if got := substitutionHTML("image", "x.png"); got != `<img src="x.png" alt="">` {
		t.Errorf("substitutionHTML(image) = %#q", got)
	}
	if !strings.Contains(substitutionHTML("date", ""), "-") {
		t.Errorf("substitutionHTML(date) has no date separator")
	}
}
