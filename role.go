// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import "strings"

// roleTag is the HTML wrapper pair for a simple text role.
type roleTag struct {
	open, close string
}

// roleTags maps role names whose rendering is a plain wrapper around
// the escaped content. Computed roles (ref, doc, term, abbr, pep, rfc)
// are handled separately in renderRole.
var roleTags = map[string]roleTag{
	"emphasis":        {"<em>", "</em>"},
	"strong":          {"<strong>", "</strong>"},
	"literal":         {"<code>", "</code>"},
	"code":            {"<code>", "</code>"},
	"subscript":       {"<sub>", "</sub>"},
	"sub":             {"<sub>", "</sub>"},
	"superscript":     {"<sup>", "</sup>"},
	"sup":             {"<sup>", "</sup>"},
	"title-reference": {"<cite>", "</cite>"},
	"title":           {"<cite>", "</cite>"},
	"t":               {"<cite>", "</cite>"},
	"kbd":             {"<kbd>", "</kbd>"},
	"dfn":             {"<dfn>", "</dfn>"},
	"samp":            {"<samp>", "</samp>"},
	"guilabel":        {`<span class="guilabel">`, "</span>"},
	"menuselection":   {`<span class="menuselection">`, "</span>"},
	"file":            {`<code class="file">`, "</code>"},
	"command":         {`<strong class="command">`, "</strong>"},
	"program":         {`<strong class="program">`, "</strong>"},
	"option":          {`<code class="option">`, "</code>"},
	"envvar":          {`<code class="envvar">`, "</code>"},
	"makevar":         {`<code class="makevar">`, "</code>"},
	"math":            {`<span class="math-inline">`, "</span>"},

	// Sphinx cross-reference roles.
	"class": {`<code class="xref">`, "</code>"},
	"func":  {`<code class="xref">`, "</code>"},
	"meth":  {`<code class="xref">`, "</code>"},
	"mod":   {`<code class="xref">`, "</code>"},
	"attr":  {`<code class="xref">`, "</code>"},
	"exc":   {`<code class="xref">`, "</code>"},
	"obj":   {`<code class="xref">`, "</code>"},
	"data":  {`<code class="xref">`, "</code>"},
	"const": {`<code class="xref">`, "</code>"},
	"type":  {`<code class="xref">`, "</code>"},
}

// renderRole renders one :role:`content` occurrence.
// Unknown roles degrade to a classed span, never an error.
func renderRole(role, content string) string {
	if t, ok := roleTags[role]; ok {
		return t.open + escapeHTML(content) + t.close
	}
	switch role {
	case "ref":
		return refRole(content)
	case "doc":
		return docRole(content)
	case "term":
		return termRole(content)
	case "abbr", "abbreviation":
		return abbrRole(content)
	case "pep":
		return `<a href="https://peps.python.org/pep-` + content + `/">PEP ` + content + `</a>`
	case "rfc":
		return `<a href="https://datatracker.ietf.org/doc/html/rfc` + content + `">RFC ` + content + `</a>`
	}
	return `<span class="role-` + escapeHTML(role) + `">` + escapeHTML(content) + `</span>`
}

// splitTarget splits "Display Text <target>" content.
func splitTarget(content string) (display, target string, ok bool) {
	open := strings.LastIndex(content, "<")
	if open < 0 || !strings.HasSuffix(content, ">") {
		return "", "", false
	}
	display = strings.TrimSpace(content[:open])
	if display == "" {
		return "", "", false
	}
	return display, content[open+1 : len(content)-1], true
}

func refRole(content string) string {
	display, target, ok := splitTarget(content)
	if !ok {
		display, target = content, content
	}
	return `<a href="#` + escapeHTML(target) + `" class="reference internal">` + escapeHTML(display) + `</a>`
}

func docRole(content string) string {
	display, target, ok := splitTarget(content)
	if !ok {
		display, target = content, content
	}
	href := target
	if !strings.HasSuffix(href, ".html") {
		href += ".html"
	}
	return `<a href="` + escapeHTML(href) + `" class="reference internal">` + escapeHTML(display) + `</a>`
}

func termRole(content string) string {
	display, target, ok := splitTarget(content)
	if !ok {
		display, target = content, content
	}
	return `<a href="#term-` + slugify(target) + `" class="reference internal">` + escapeHTML(display) + `</a>`
}

func abbrRole(content string) string {
	if open := strings.Index(content, "("); open >= 0 && strings.HasSuffix(content, ")") {
		abbr := strings.TrimSpace(content[:open])
		expansion := content[open+1 : len(content)-1]
		return `<abbr title="` + escapeHTML(expansion) + `">` + escapeHTML(abbr) + `</abbr>`
	}
	return "<abbr>" + escapeHTML(content) + "</abbr>"
}
