// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import "testing"

var inlineHTMLTests = []struct {
	in, out string
}{
	{"plain", "plain"},
	{"**b**", "<strong>b</strong>"},
	{"*i*", "<em>i</em>"},
	{"***x***", "<strong><em>x</em></strong>"},
	{"``c``", "<code>c</code>"},
	{"``a < b``", "<code>a &lt; b</code>"},
	{"a&b", "a&amp;b"},
	{"5 > 4 < 6", "5 &gt; 4 &lt; 6"},
	{"x*y*z", "x*y*z"},
	{"(*note*)", "(<em>note</em>)"},
	{":kbd:`C`", "<kbd>C</kbd>"},
	{":kbd:`x", ":kbd:`x"},
	{"``x", "``x"},
	{"`T <u>`_", `<a href="u">T</a>`},
	{"|sub| text", "|sub| text"},
	{`\*x`, "*x"},
	{"H\\ :sub:`2`\\ O", "H<sub>2</sub>O"},
	{"**outer *inner***", "<strong>outer <em>inner</em></strong>"},
	{"**bold", "**bold"},
	{"*x", "*x"},
}

func TestInlineHTML(t *testing.T) {
	for _, tt := range inlineHTMLTests {
		if got := inlineHTML(tt.in); got != tt.out {
			t.Errorf("inlineHTML(%#q):\n have %#q\n want %#q", tt.in, got, tt.out)
		}
	}
}

var inlineKeepEntitiesTests = []struct {
	in, out string
}{
	{"a &lt; b", "a &lt; b"},
	{"**b** & c", "<strong>b</strong> &amp; c"},
	{"*i* <x>", "<em>i</em> &lt;x&gt;"},
	{"``raw``", "<code>raw</code>"},
}

func TestInlineKeepEntities(t *testing.T) {
	for _, tt := range inlineKeepEntitiesTests {
		if got := inlineKeepEntities(tt.in); got != tt.out {
			t.Errorf("inlineKeepEntities(%#q):\n have %#q\n want %#q", tt.in, got, tt.out)
		}
	}
}

func TestInlineStart(t *testing.T) {
	tests := []struct {
		s  string
		i  int
		ok bool
	}{
		{"*a", 0, true},
		{" *a", 1, true},
		{"(*a", 1, true},
		{"x*a", 1, false},
	}
	for _, tt := range tests {
		if ok := inlineStart([]rune(tt.s), tt.i); ok != tt.ok {
			t.Errorf("inlineStart(%#q, %d) = %v, want %v", tt.s, tt.i, ok, tt.ok)
		}
	}
}
