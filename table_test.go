// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import (
	"reflect"
	"testing"
)

var simpleBorderTests = []struct {
	line string
	ok   bool
}{
	{"=====  =====", true},
	{"  ==  ==  ", true},
	{"=====", false},
	{"---  ---", false},
	{"", false},
}

func TestIsSimpleBorder(t *testing.T) {
	for _, tt := range simpleBorderTests {
		if ok := isSimpleBorder(tt.line); ok != tt.ok {
			t.Errorf("isSimpleBorder(%#q) = %v, want %v", tt.line, ok, tt.ok)
		}
	}
}

func TestIsSimpleTable(t *testing.T) {
	tests := []struct {
		text string
		ok   bool
	}{
		{"==  ==\na   b\n==  ==", true},
		{"====\na\n====", true},
		{"==  ==\na   b", false},
		{"x\ny\nz", false},
	}
	for _, tt := range tests {
		if ok := isSimpleTable(tt.text); ok != tt.ok {
			t.Errorf("isSimpleTable(%#q) = %v, want %v", tt.text, ok, tt.ok)
		}
	}
}

var simpleColumnsTests = []struct {
	border string
	cols   []columnSpan
}{
	{"=====  =====", []columnSpan{{0, 5}, {7, 12}}},
	{"==  ===", []columnSpan{{0, 2}, {4, 7}}},
	{"====", []columnSpan{{0, 4}}},
}

func TestSimpleColumns(t *testing.T) {
	for _, tt := range simpleColumnsTests {
		if cols := simpleColumns(tt.border); !reflect.DeepEqual(cols, tt.cols) {
			t.Errorf("simpleColumns(%#q) = %v, want %v", tt.border, cols, tt.cols)
		}
	}
}

func TestSliceCells(t *testing.T) {
	cols := []columnSpan{{0, 5}, {7, 12}}
	tests := []struct {
		line  string
		cells []string
	}{
		{"Ada    36", []string{"Ada", "36"}},
		{"a", []string{"a", ""}},
		{"héllo  wörld", []string{"héllo", "wörld"}},
	}
	for _, tt := range tests {
		if cells := sliceCells(tt.line, cols); !reflect.DeepEqual(cells, tt.cells) {
			t.Errorf("sliceCells(%#q) = %q, want %q", tt.line, cells, tt.cells)
		}
	}
}

func TestGridColumns(t *testing.T) {
	tests := []struct {
		border string
		pos    []int
	}{
		{"+--+---+", []int{0, 3, 7}},
		{"+------+", []int{0, 7}},
	}
	for _, tt := range tests {
		if pos := gridColumns(tt.border); !reflect.DeepEqual(pos, tt.pos) {
			t.Errorf("gridColumns(%#q) = %v, want %v", tt.border, pos, tt.pos)
		}
	}
}

var parseCSVLineTests = []struct {
	line  string
	cells []string
}{
	{`"Alice", 28, "New York"`, []string{"Alice", " 28", " New York"}},
	{"a,b", []string{"a", "b"}},
	{`"x,y",z`, []string{"x,y", "z"}},
	{"single", []string{"single"}},
}

func TestParseCSVLine(t *testing.T) {
	for _, tt := range parseCSVLineTests {
		if cells := parseCSVLine(tt.line); !reflect.DeepEqual(cells, tt.cells) {
			t.Errorf("parseCSVLine(%#q) = %q, want %q", tt.line, cells, tt.cells)
		}
	}
}

func TestParseListTableRows(t *testing.T) {
	tests := []struct {
		content string
		rows    [][]string
	}{
		{"* - a\n  - b\n* - c\n  - d", [][]string{{"a", "b"}, {"c", "d"}}},
		{"* - a\n    cont\n  - b", [][]string{{"a cont", "b"}}},
	}
	for _, tt := range tests {
		if rows := parseListTableRows(tt.content); !reflect.DeepEqual(rows, tt.rows) {
			t.Errorf("parseListTableRows(%#q) = %q, want %q", tt.content, rows, tt.rows)
		}
	}
}

func TestCellInline(t *testing.T) {
	tests := []struct {
		cell, out string
	}{
		{`\*lit`, "*lit"},
		{"**b**", "<strong>b</strong>"},
		{`a \< b`, "a &lt; b"},
	}
	for _, tt := range tests {
		if got := cellInline(tt.cell); got != tt.out {
			t.Errorf("cellInline(%#q) = %#q, want %#q", tt.cell, got, tt.out)
		}
	}
}

func TestGridCellHTML(t *testing.T) {
	tests := []struct {
		content, out string
	}{
		{"one\ntwo", "one two"},
		{"- a\n- b", "<ul><li>a</li><li>b</li></ul>"},
		{"plain *i*", "plain <em>i</em>"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := gridCellHTML(tt.content); got != tt.out {
			t.Errorf("gridCellHTML(%#q) = %#q, want %#q", tt.content, got, tt.out)
		}
	}
}
