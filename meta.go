// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lestrrat-go/strftime"
)

// A section is one collected section title with its assigned level.
type section struct {
	level int
	title string
}

// A target is one hyperlink target definition. Duplicate names are
// kept in document order.
type target struct {
	name string
	url  string
}

// metadata is the document state collected by the analysis pass and
// consulted while rendering. Nested renders always get a fresh, empty
// metadata, so fragments never observe the enclosing document.
type metadata struct {
	sections []section
	adorn    []rune // adornment characters in first-seen order
	subs     map[string]string
	targets  []target

	header    string
	hasHeader bool
	footer    string
	hasFooter bool

	sectnum       bool
	sectnumDepth  int
	sectnumPrefix string
	sectnumSuffix string
}

func newMetadata() *metadata {
	return &metadata{
		subs:         make(map[string]string),
		sectnumDepth: 6,
	}
}

// level returns the heading level for an adornment character,
// assigning the next free level on first sight.
func (m *metadata) level(ch rune) int {
	for i, c := range m.adorn {
		if c == ch {
			return i + 1
		}
	}
	m.adorn = append(m.adorn, ch)
	return len(m.adorn)
}

// analyze is the first pass: it scans the whole document once and
// collects section titles, substitution definitions (resolved to HTML
// immediately), hyperlink targets, header/footer fragments, and
// section numbering options.
func analyze(lines []string, m *metadata) {
	for i := 0; i < len(lines); {
		trimmed := strings.TrimSpace(lines[i])

		// Section title: text followed by an adornment at least as
		// long. Explicit-markup lines are excluded, matching pass 2.
		if i+1 < len(lines) && trimmed != "" && !strings.HasPrefix(trimmed, "..") {
			next := strings.TrimSpace(lines[i+1])
			if isAdornment(next) && runeLen(next) >= runeLen(trimmed) {
				level := m.level([]rune(next)[0])
				m.sections = append(m.sections, section{level, trimmed})
				i += 2
				continue
			}
		}

		// Overlined section: adornment, text, adornment of the same character.
		if i+2 < len(lines) && isAdornment(trimmed) {
			text := strings.TrimSpace(lines[i+1])
			under := strings.TrimSpace(lines[i+2])
			if text != "" && isAdornment(under) && under[0] == trimmed[0] {
				level := m.level([]rune(trimmed)[0])
				m.sections = append(m.sections, section{level, text})
				i += 3
				continue
			}
		}

		if rest, ok := strings.CutPrefix(trimmed, ".. "); ok {
			switch info := classifyDots(rest); info.kind {
			case substitutionLine:
				// Last definition of a name wins.
				m.subs[info.name] = substitutionHTML(info.sub, info.value)
			case targetLine:
				if info.value != "" {
					m.targets = append(m.targets, target{info.name, info.value})
				}
			}

			// The body lines of these directives are left in place;
			// nothing in them matches another analysis rule.
			switch {
			case strings.HasPrefix(rest, "sectnum::"):
				m.sectnum = true
				parseSectnumOptions(lines, i+1, m)
			case strings.HasPrefix(rest, "header::"):
				if content := collectFragment(lines, i+1); !m.hasHeader {
					m.header = content
					m.hasHeader = true
				}
			case strings.HasPrefix(rest, "footer::"):
				if content := collectFragment(lines, i+1); !m.hasFooter {
					m.footer = content
					m.hasFooter = true
				}
			}
		}

		i++
	}
}

func parseSectnumOptions(lines []string, start int, m *metadata) {
	j := start
	for j < len(lines) {
		opt := strings.TrimSpace(lines[j])
		if !strings.HasPrefix(opt, ":") {
			break
		}
		if end := strings.Index(opt[1:], ":"); end >= 0 {
			name := opt[1 : end+1]
			value := strings.TrimSpace(opt[end+2:])
			switch name {
			case "depth":
				d, err := strconv.Atoi(value)
				if err != nil {
					d = 6
				}
				m.sectnumDepth = d
			case "prefix":
				m.sectnumPrefix = value
			case "suffix":
				m.sectnumSuffix = value
			}
		}
		j++
	}
}

// collectFragment gathers the indented body of a header or footer
// directive, one trimmed line per input line.
func collectFragment(lines []string, start int) string {
	var content strings.Builder
	j := start
	for j < len(lines) {
		cl := lines[j]
		if isBlank(cl) && j > start {
			break
		}
		if indentOf(cl) > 0 || isBlank(cl) {
			if content.Len() > 0 {
				content.WriteByte('\n')
			}
			content.WriteString(strings.TrimSpace(cl))
			j++
		} else if j > start {
			break
		} else {
			j++
		}
	}
	return content.String()
}

// substitutionHTML resolves one substitution definition into its
// replacement HTML from the directive type and arguments alone.
func substitutionHTML(dirType, args string) string {
	switch dirType {
	case "image":
		return `<img src="` + escapeHTML(args) + `" alt="">`
	case "replace":
		return inlineHTML(args)
	case "date":
		return formatDate(args)
	case "unicode":
		return unicodeText(args)
	}
	return args
}

// formatDate renders the current time using a strftime format string,
// ISO date by default.
func formatDate(format string) string {
	now := time.Now()
	if format == "" {
		return now.Format("2006-01-02")
	}
	s, err := strftime.Format(format, now)
	if err != nil {
		return now.Format("2006-01-02")
	}
	return s
}

// unicodeText decodes a unicode directive argument list: 0x-prefixed
// hex or decimal code points become the characters; anything else is
// kept as literal text.
func unicodeText(args string) string {
	var b strings.Builder
	for _, part := range strings.Fields(args) {
		var n uint64
		var err error
		if len(part) > 2 && (strings.HasPrefix(part, "0x") || strings.HasPrefix(part, "0X")) {
			n, err = strconv.ParseUint(part[2:], 16, 32)
		} else {
			n, err = strconv.ParseUint(part, 10, 32)
		}
		if err != nil {
			b.WriteString(part)
			continue
		}
		if utf8.ValidRune(rune(n)) {
			b.WriteRune(rune(n))
		}
	}
	return b.String()
}

func runeLen(s string) int {
	return len([]rune(s))
}
