// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import "testing"

var adornmentTests = []struct {
	line string
	ok   bool
}{
	{"====", true},
	{"===", false},
	{"=-=-", false},
	{"~~~~", true},
	{"####", true},
	{"....", false},
	{"", false},
	{"    ", false},
}

func TestIsAdornment(t *testing.T) {
	for _, tt := range adornmentTests {
		if ok := isAdornment(tt.line); ok != tt.ok {
			t.Errorf("isAdornment(%#q) = %v, want %v", tt.line, ok, tt.ok)
		}
	}
}

var enumItemTests = []struct {
	line string
	ok   bool
}{
	{"1. item", true},
	{"12) item", true},
	{"(3) item", true},
	{"a. item", true},
	{"A) item", true},
	{"iv. item", true},
	{"#. item", true},
	{"1.item", false},
	{"hello item", false},
	{"1.", false},
	{"", false},
}

func TestIsEnumItem(t *testing.T) {
	for _, tt := range enumItemTests {
		if ok := isEnumItem(tt.line); ok != tt.ok {
			t.Errorf("isEnumItem(%#q) = %v, want %v", tt.line, ok, tt.ok)
		}
	}
}

var validEnumeratorTests = []struct {
	s  string
	ok bool
}{
	{"#", true},
	{"42", true},
	{"z", true},
	{"XIV", true},
	{"ab", false},
	{"", false},
}

func TestValidEnumerator(t *testing.T) {
	for _, tt := range validEnumeratorTests {
		if ok := validEnumerator(tt.s); ok != tt.ok {
			t.Errorf("validEnumerator(%#q) = %v, want %v", tt.s, ok, tt.ok)
		}
	}
}

func TestStripMarkers(t *testing.T) {
	if got := stripBullet("- a"); got != "a" {
		t.Errorf("stripBullet(%#q) = %#q, want %#q", "- a", got, "a")
	}
	if got := stripEnumMarker("1. first"); got != "first" {
		t.Errorf("stripEnumMarker(%#q) = %#q, want %#q", "1. first", got, "first")
	}
	if got := stripEnumMarker("(2) x"); got != "x" {
		t.Errorf("stripEnumMarker(%#q) = %#q, want %#q", "(2) x", got, "x")
	}
}

var classifyTests = []struct {
	line string
	kind lineKind
}{
	{"", blankLine},
	{"   ", blankLine},
	{">>> x", doctestLine},
	{"| a line", lineBlockLine},
	{"::", literalMarkerLine},
	{"+---+---+", gridLine},
	{"|cell|", gridLine},
	{"=====  =====", simpleBorderLine},
	{"=====", adornmentLine},
	{".. note:: watch out", directiveLine},
	{".. _name: url", targetLine},
	{".. |x| replace:: y", substitutionLine},
	{".. just a comment", commentLine},
	{":field: value", fieldLine},
	{"- item", bulletLine},
	{"2. item", enumLine},
	{"   indented", indentedLine},
	{"plain text", textLine},
}

func TestClassify(t *testing.T) {
	for _, tt := range classifyTests {
		if info := classify(tt.line); info.kind != tt.kind {
			t.Errorf("classify(%#q).kind = %d, want %d", tt.line, info.kind, tt.kind)
		}
	}
}

func TestClassifyAdornmentChar(t *testing.T) {
	tests := []struct {
		line string
		ch   rune
	}{
		{"=====", '='},
		{"~~~~~", '~'},
		{"#####", '#'},
	}
	for _, tt := range tests {
		info := classify(tt.line)
		if info.kind != adornmentLine || info.ch != tt.ch {
			t.Errorf("classify(%#q) = %+v, want adornment %q", tt.line, info, tt.ch)
		}
	}
}

func TestClassifyDirectiveParts(t *testing.T) {
	info := classify(".. code-block:: python")
	if info.kind != directiveLine || info.name != "code-block" || info.value != "python" {
		t.Errorf("classify(directive) = %+v", info)
	}
	info = classify(".. |date| date:: %Y")
	if info.kind != substitutionLine || info.name != "date" || info.sub != "date" || info.value != "%Y" {
		t.Errorf("classify(substitution) = %+v", info)
	}
	info = classify(".. _target: https://example.com")
	if info.kind != targetLine || info.name != "target" || info.value != "https://example.com" {
		t.Errorf("classify(target) = %+v", info)
	}
}
