// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
)

// escapeHTML escapes &, <, >, and " for safe inclusion in HTML text
// and attribute values.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// rstEscapable reports whether c may follow a backslash as an escaped
// literal punctuation character.
func rstEscapable(c rune) bool {
	switch c {
	case '_', '{', '}', '[', ']', '(', ')', '#', '+', '-', '.', '!', '~', '|':
		return true
	}
	return false
}

// unescapeRST resolves backslash escapes:
// backslash-space removes both characters, escaped punctuation becomes
// the literal character, and \< \> become HTML entities so a later
// entity-preserving pass will not re-escape them.
func unescapeRST(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	r := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(r); i++ {
		if r[i] != '\\' || i+1 >= len(r) {
			b.WriteRune(r[i])
			continue
		}
		switch c := r[i+1]; {
		case c == ' ':
			i++
		case c == '\\' || c == '*' || c == '`':
			b.WriteRune(c)
			i++
		case c == '<':
			b.WriteString("&lt;")
			i++
		case c == '>':
			b.WriteString("&gt;")
			i++
		case rstEscapable(c):
			b.WriteRune(c)
			i++
		default:
			b.WriteRune('\\')
		}
	}
	return b.String()
}

// slugify derives a URL-safe anchor from heading or term text:
// lowercased, alphanumerics kept, space/hyphen/underscore runs
// collapsed to single hyphens, everything else dropped.
func slugify(text string) string {
	lower := cases.Lower(language.Und).String(text)
	var b strings.Builder
	b.Grow(len(lower))
	for _, c := range lower {
		switch {
		case isAlnum(c):
			b.WriteRune(c)
		case c == ' ' || c == '-' || c == '_':
			s := b.String()
			if !strings.HasSuffix(s, "-") {
				b.WriteRune('-')
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func isAlnum(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c)
}

// dedent strips the common leading space count of the non-blank lines.
func dedent(text string) string {
	lines := strings.Split(text, "\n")
	min := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := indentOf(line)
		if min < 0 || n < min {
			min = n
		}
	}
	if min <= 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if len(line) >= min {
			b.WriteString(line[min:])
		} else {
			b.WriteString(line)
		}
	}
	return b.String()
}
