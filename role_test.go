// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import "testing"

var renderRoleTests = []struct {
	role, content string
	out           string
}{
	{"emphasis", "x", "<em>x</em>"},
	{"strong", "x", "<strong>x</strong>"},
	{"kbd", "Ctrl-C", "<kbd>Ctrl-C</kbd>"},
	{"sub", "2", "<sub>2</sub>"},
	{"title-reference", "Design", "<cite>Design</cite>"},
	{"func", "os.Open", `<code class="xref">os.Open</code>`},
	{"file", "/etc/hosts", `<code class="file">/etc/hosts</code>`},
	{"ref", "usage", `<a href="#usage" class="reference internal">usage</a>`},
	{"ref", "See Here <usage>", `<a href="#usage" class="reference internal">See Here</a>`},
	{"doc", "guide", `<a href="guide.html" class="reference internal">guide</a>`},
	{"doc", "Guide <intro>", `<a href="intro.html" class="reference internal">Guide</a>`},
	{"term", "Big Term", `<a href="#term-big-term" class="reference internal">Big Term</a>`},
	{"abbr", "HTML (HyperText Markup Language)", `<abbr title="HyperText Markup Language">HTML</abbr>`},
	{"abbr", "TLA", "<abbr>TLA</abbr>"},
	{"pep", "8", `<a href="https://peps.python.org/pep-8/">PEP 8</a>`},
	{"rfc", "2324", `<a href="https://datatracker.ietf.org/doc/html/rfc2324">RFC 2324</a>`},
	{"mystery", "x", `<span class="role-mystery">x</span>`},
	{"literal", "a<b", "<code>a&lt;b</code>"},
}

func TestRenderRole(t *testing.T) {
	for _, tt := range renderRoleTests {
		if got := renderRole(tt.role, tt.content); got != tt.out {
			t.Errorf("renderRole(%q, %#q) = %#q, want %#q", tt.role, tt.content, got, tt.out)
		}
	}
}

var splitTargetTests = []struct {
	content         string
	display, target string
	ok              bool
}{
	{"Text <dest>", "Text", "dest", true},
	{"a <b <c>", "a <b", "c", true},
	{"plain", "", "", false},
	{"<only>", "", "", false},
	{"Text <open", "", "", false},
}

func TestSplitTarget(t *testing.T) {
	for _, tt := range splitTargetTests {
		display, target, ok := splitTarget(tt.content)
		if display != tt.display || target != tt.target || ok != tt.ok {
			t.Errorf("splitTarget(%#q) = %q, %q, %v, want %q, %q, %v",
				tt.content, display, target, ok, tt.display, tt.target, tt.ok)
		}
	}
}
