// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import "testing"

var slugifyTests = []struct {
	in, out string
}{
	{"Hello World", "hello-world"},
	{"Go 1.22", "go-122"},
	{"already-slugged", "already-slugged"},
	{"Spaces   and---runs", "spaces-and-runs"},
	{"  Trim Me  ", "trim-me"},
	{"Ünïcödé Titles", "ünïcödé-titles"},
	{"!!!", ""},
}

func TestSlugify(t *testing.T) {
	for _, tt := range slugifyTests {
		if got := slugify(tt.in); got != tt.out {
			t.Errorf("slugify(%#q) = %#q, want %#q", tt.in, got, tt.out)
		}
	}
}

var unescapeRSTTests = []struct {
	in, out string
}{
	{"no escapes", "no escapes"},
	{`\*star`, "*star"},
	{"\\`tick", "`tick"},
	{`a\ b`, "ab"},
	{`\<tag\>`, "&lt;tag&gt;"},
	{`\\double`, `\double`},
	{`\_target`, "_target"},
	{`\qkept`, `\qkept`},
	{`end\`, `end\`},
}

func TestUnescapeRST(t *testing.T) {
	for _, tt := range unescapeRSTTests {
		if got := unescapeRST(tt.in); got != tt.out {
			t.Errorf("unescapeRST(%#q) = %#q, want %#q", tt.in, got, tt.out)
		}
	}
}

var dedentTests = []struct {
	in, out string
}{
	{"  a\n    b", "a\n  b"},
	{"    only", "only"},
	{"flush\n  deep", "flush\n  deep"},
	{"  a\n\n  b", "a\n\nb"},
	{"", ""},
}

func TestDedent(t *testing.T) {
	for _, tt := range dedentTests {
		if got := dedent(tt.in); got != tt.out {
			t.Errorf("dedent(%#q) = %#q, want %#q", tt.in, got, tt.out)
		}
	}
}

func TestEscapeHTML(t *testing.T) {
	in := `a < b & c > "d"`
	want := "a &lt; b &amp; c &gt; &quot;d&quot;"
	if got := escapeHTML(in); got != want {
		t.Errorf("escapeHTML(%#q) = %#q, want %#q", in, got, want)
	}
}
