// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import (
	"strings"
	"unicode"
)

// An inlineParser attempts to parse one inline construct starting at
// r[i]. It returns the rendered HTML and the index just past the
// construct, or ok=false when the construct does not match and the
// scan should fall through to the next candidate.
type inlineParser func(r []rune, i int) (html string, next int, ok bool)

// inlineHTML renders the inline markup of one text run.
// A single left-to-right scan, one construct at a time; unterminated
// spans fall through to literal text with entity escaping.
func inlineHTML(s string) string {
	r := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for i := 0; i < len(r); {
		var parsers []inlineParser
		switch r[i] {
		case '\\':
			parsers = []inlineParser{parseEscape}
		case '`':
			parsers = []inlineParser{parseCode, parseLink}
		case ':':
			parsers = []inlineParser{parseRole}
		case '*':
			parsers = []inlineParser{parseStrongEm, parseStrong, parseEm}
		case '|':
			parsers = []inlineParser{parseSubstitutionRef}
		}
		parsed := false
		for _, p := range parsers {
			if html, next, ok := p(r, i); ok {
				b.WriteString(html)
				i = next
				parsed = true
				break
			}
		}
		if parsed {
			continue
		}
		switch r[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r[i])
		}
		i++
	}
	return b.String()
}

// parseEscape handles a backslash escape. Backslash-space deletes
// both characters, joining adjacent markup; escaped punctuation
// becomes the literal character; an unknown escape keeps the
// backslash and consumes only it.
func parseEscape(r []rune, i int) (string, int, bool) {
	if i+1 >= len(r) {
		return "", 0, false
	}
	switch c := r[i+1]; {
	case c == ' ':
		return "", i + 2, true
	case c == '\\':
		return `\`, i + 2, true
	case c == '*':
		return "*", i + 2, true
	case c == '`':
		return "`", i + 2, true
	case c == '<':
		return "&lt;", i + 2, true
	case c == '>':
		return "&gt;", i + 2, true
	case rstEscapable(c):
		return string(c), i + 2, true
	}
	return `\`, i + 1, true
}

// parseCode handles ``literal code``. Content is escaped, never
// reprocessed.
func parseCode(r []rune, i int) (string, int, bool) {
	if i+1 >= len(r) || r[i] != '`' || r[i+1] != '`' {
		return "", 0, false
	}
	end := findCodeEnd(r, i+2)
	if end < 0 {
		return "", 0, false
	}
	return "<code>" + escapeHTML(string(r[i+2:end])) + "</code>", end + 2, true
}

// parseRole handles :name:`content`. The name may not contain
// whitespace, colons, or backticks.
func parseRole(r []rune, i int) (string, int, bool) {
	j := i + 1
	for j < len(r) && r[j] != ':' && r[j] != '`' && !unicode.IsSpace(r[j]) {
		j++
	}
	if j >= len(r) || r[j] != ':' || j == i+1 {
		return "", 0, false
	}
	name := string(r[i+1 : j])
	j++
	if j >= len(r) || r[j] != '`' {
		return "", 0, false
	}
	j++
	start := j
	for j < len(r) && r[j] != '`' {
		j++
	}
	if j >= len(r) {
		return "", 0, false
	}
	return renderRole(name, string(r[start:j])), j + 1, true
}

// parseStrongEm handles ***bold italic***. The inner text is escaped
// only, not recursively scanned.
func parseStrongEm(r []rune, i int) (string, int, bool) {
	if i+2 >= len(r) || r[i+1] != '*' || r[i+2] != '*' || !inlineStart(r, i) {
		return "", 0, false
	}
	end := findTripleStarEnd(r, i+3)
	if end < 0 {
		return "", 0, false
	}
	return "<strong><em>" + escapeHTML(string(r[i+3:end])) + "</em></strong>", end + 3, true
}

// parseStrong handles **bold**; the inner text is rescanned so nested
// markup works.
func parseStrong(r []rune, i int) (string, int, bool) {
	if i+1 >= len(r) || r[i+1] != '*' || !inlineStart(r, i) {
		return "", 0, false
	}
	end := findDoubleStarEnd(r, i+2)
	if end < 0 {
		return "", 0, false
	}
	return "<strong>" + inlineHTML(string(r[i+2:end])) + "</strong>", end + 2, true
}

// parseEm handles *italic*; the inner text is rescanned. Empty
// emphasis is refused, so the leading stars of an unterminated **run
// stay literal.
func parseEm(r []rune, i int) (string, int, bool) {
	if !inlineStart(r, i) {
		return "", 0, false
	}
	end := findSingleStarEnd(r, i+1)
	if end <= i+1 {
		return "", 0, false
	}
	return "<em>" + inlineHTML(string(r[i+1:end])) + "</em>", end + 1, true
}

// parseLink handles `text <url>`_ and the anonymous `text <url>`__.
func parseLink(r []rune, i int) (string, int, bool) {
	for j := i + 1; j < len(r); j++ {
		if r[j] != '`' {
			continue
		}
		if j+1 >= len(r) || r[j+1] != '_' {
			continue
		}
		text := string(r[i+1 : j])
		end := j + 2
		if end < len(r) && r[end] == '_' {
			end++
		}
		open := strings.LastIndex(text, "<")
		if open < 0 || !strings.HasSuffix(text, ">") {
			return "", 0, false
		}
		display := strings.TrimSpace(text[:open])
		url := text[open+1 : len(text)-1]
		return `<a href="` + escapeHTML(url) + `">` + escapeHTML(display) + `</a>`, end, true
	}
	return "", 0, false
}

// parseSubstitutionRef recognizes |name| and re-emits it untouched;
// the converter resolves substitutions in a final pass over the
// rendered document.
func parseSubstitutionRef(r []rune, i int) (string, int, bool) {
	j := i + 1
	for j < len(r) && r[j] != '|' && r[j] != '\n' {
		j++
	}
	if j >= len(r) || r[j] != '|' || j == i+1 {
		return "", 0, false
	}
	return "|" + string(r[i+1:j]) + "|", j + 1, true
}

// inlineStart reports whether position i is a valid opening boundary
// for emphasis: start of text, or preceded by whitespace or opening
// punctuation.
func inlineStart(r []rune, i int) bool {
	if i == 0 {
		return true
	}
	prev := r[i-1]
	if unicode.IsSpace(prev) {
		return true
	}
	switch prev {
	case '(', '[', '{', '<', '/', '\'', '"', '-':
		return true
	}
	return false
}

func findCodeEnd(r []rune, start int) int {
	for i := start; i+1 < len(r); i++ {
		if r[i] == '`' && r[i+1] == '`' {
			return i
		}
	}
	return -1
}

func findTripleStarEnd(r []rune, start int) int {
	for i := start; i+2 < len(r); i++ {
		if r[i] == '*' && r[i+1] == '*' && r[i+2] == '*' {
			return i
		}
	}
	return -1
}

// findDoubleStarEnd locates the closing **, refusing a match that is
// the start of a *** run.
func findDoubleStarEnd(r []rune, start int) int {
	for i := start; i+1 < len(r); i++ {
		if r[i] == '*' && r[i+1] == '*' && (i+2 >= len(r) || r[i+2] != '*') {
			return i
		}
	}
	return -1
}

// findSingleStarEnd locates the closing *, refusing a match that is
// the start of a ** run.
func findSingleStarEnd(r []rune, start int) int {
	for i := start; i < len(r); i++ {
		if r[i] == '*' && (i+1 >= len(r) || r[i+1] != '*') {
			return i
		}
	}
	return -1
}

// inlineKeepEntities is the inline scan used for table cells whose
// text was already run through unescapeRST: existing &...; entities
// are preserved instead of re-escaped, and only code, bold, and
// italic spans are recognized.
func inlineKeepEntities(s string) string {
	r := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for i := 0; i < len(r); {
		if r[i] == '&' {
			j := i + 1
			for j < len(r) && j < i+10 && r[j] != ';' && !unicode.IsSpace(r[j]) {
				j++
			}
			if j < len(r) && r[j] == ';' {
				b.WriteString(string(r[i : j+1]))
				i = j + 1
				continue
			}
			b.WriteString("&amp;")
			i++
			continue
		}

		if i+1 < len(r) && r[i] == '`' && r[i+1] == '`' {
			if end := findCodeEnd(r, i+2); end >= 0 {
				b.WriteString("<code>" + escapeHTML(string(r[i+2:end])) + "</code>")
				i = end + 2
				continue
			}
		}

		if i+1 < len(r) && r[i] == '*' && r[i+1] == '*' {
			if end := findStarPairEnd(r, i+2); end >= 0 {
				b.WriteString("<strong>" + escapeHTML(string(r[i+2:end])) + "</strong>")
				i = end + 2
				continue
			}
		}

		if r[i] == '*' {
			if end := findSingleStarEnd(r, i+1); end > i+1 {
				b.WriteString("<em>" + escapeHTML(string(r[i+1:end])) + "</em>")
				i = end + 1
				continue
			}
		}

		switch r[i] {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r[i])
		}
		i++
	}
	return b.String()
}

// findStarPairEnd locates a closing ** with no longer-run check.
func findStarPairEnd(r []rune, start int) int {
	for i := start; i+1 < len(r); i++ {
		if r[i] == '*' && r[i+1] == '*' {
			return i
		}
	}
	return -1
}
