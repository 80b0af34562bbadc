// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import "strings"

// A lineKind is the block-level classification of a single input line.
// Classification is context-free; context-sensitive constructs such as
// section titles and definition lists are resolved by the converter,
// which looks at neighboring lines.
type lineKind int

const (
	blankLine lineKind = iota
	doctestLine
	lineBlockLine
	literalMarkerLine // standalone ::
	gridLine          // grid table border or row
	simpleBorderLine  // = and space border of a simple table
	adornmentLine     // 4+ repeats of one adornment character
	substitutionLine  // .. |name| type:: args
	targetLine        // .. _name: url
	directiveLine     // .. name:: args
	commentLine       // any other .. line
	fieldLine         // :name: value
	bulletLine
	enumLine
	optionLine // indented :name: value (directive option)
	indentedLine
	textLine
)

// lineInfo carries a line's kind plus the pieces the classifier
// already had to split out: the adornment character, the marker or
// name, and the trailing value or argument text.
type lineInfo struct {
	kind  lineKind
	ch    rune   // adornment character
	name  string // field/target/directive/substitution name, enum marker
	value string // field value, target URL, directive args
	sub   string // substitution directive type
}

const adornmentChars = `=-~` + "`" + `:'"^_*+#<>`

func isAdornmentChar(c rune) bool {
	return strings.ContainsRune(adornmentChars, c)
}

// isAdornment reports whether the line can serve as a section
// underline or overline: at least 4 repeats of one adornment
// character and nothing else.
func isAdornment(s string) bool {
	if len(s) < 4 {
		return false
	}
	first := []rune(s)[0]
	if !isAdornmentChar(first) {
		return false
	}
	for _, c := range s {
		if c != first {
			return false
		}
	}
	return true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// indentOf counts the leading space and tab bytes.
func indentOf(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}

func isBulletItem(s string) bool {
	return len(s) > 2 &&
		(strings.HasPrefix(s, "- ") || strings.HasPrefix(s, "* ") || strings.HasPrefix(s, "+ "))
}

// classify determines the kind of a single line. The order of the
// tests is the fixed classification priority; the first match wins.
func classify(s string) lineInfo {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return lineInfo{kind: blankLine}
	}

	if strings.HasPrefix(trimmed, ">>>") {
		return lineInfo{kind: doctestLine}
	}

	if strings.HasPrefix(trimmed, "| ") || trimmed == "|" {
		return lineInfo{kind: lineBlockLine}
	}

	if trimmed == "::" {
		return lineInfo{kind: literalMarkerLine}
	}

	if strings.HasPrefix(trimmed, "+") && strings.HasSuffix(trimmed, "+") &&
		(strings.Contains(trimmed, "-") || strings.Contains(trimmed, "=")) {
		return lineInfo{kind: gridLine}
	}
	if strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|") {
		return lineInfo{kind: gridLine}
	}

	if isSimpleBorder(trimmed) {
		return lineInfo{kind: simpleBorderLine}
	}

	if isAdornment(trimmed) {
		return lineInfo{kind: adornmentLine, ch: []rune(trimmed)[0]}
	}

	if rest, ok := strings.CutPrefix(trimmed, ".. "); ok {
		return classifyDots(rest)
	}

	if strings.HasPrefix(trimmed, ":") && !strings.HasPrefix(trimmed, "::") {
		if j := strings.Index(trimmed[1:], ":"); j >= 0 {
			name := trimmed[1 : j+1]
			if name != "" {
				return lineInfo{kind: fieldLine, name: name, value: strings.TrimSpace(trimmed[j+2:])}
			}
		}
	}

	if isBulletItem(trimmed) {
		return lineInfo{kind: bulletLine}
	}

	if isEnumItem(trimmed) {
		return lineInfo{kind: enumLine, name: enumMarker(trimmed)}
	}

	indent := indentOf(s)
	if indent > 0 && strings.HasPrefix(trimmed, ":") {
		if j := strings.Index(trimmed[1:], ":"); j >= 0 {
			name := trimmed[1 : j+1]
			if !strings.Contains(name, " ") || len(name) < 30 {
				return lineInfo{kind: optionLine, name: name, value: strings.TrimSpace(trimmed[j+2:])}
			}
		}
	}

	if indent > 0 {
		return lineInfo{kind: indentedLine}
	}

	return lineInfo{kind: textLine}
}

// classifyDots splits the explicit-markup family: substitution
// definition, hyperlink target, directive, or comment. rest is the
// text after the ".. " prefix.
func classifyDots(rest string) lineInfo {
	if strings.HasPrefix(rest, "|") {
		if j := strings.Index(rest[1:], "|"); j >= 0 {
			name := rest[1 : j+1]
			after := strings.TrimSpace(rest[j+2:])
			if k := strings.Index(after, "::"); k >= 0 {
				return lineInfo{
					kind:  substitutionLine,
					name:  name,
					sub:   strings.TrimSpace(after[:k]),
					value: strings.TrimSpace(after[k+2:]),
				}
			}
		}
	}

	if tr, ok := strings.CutPrefix(rest, "_"); ok {
		if j := strings.Index(tr, ": "); j >= 0 {
			return lineInfo{kind: targetLine, name: strings.TrimSpace(tr[:j]), value: strings.TrimSpace(tr[j+2:])}
		}
		if strings.HasSuffix(tr, ":") {
			return lineInfo{kind: targetLine, name: strings.TrimSpace(tr[:len(tr)-1])}
		}
	}

	if j := strings.Index(rest, "::"); j >= 0 {
		name := strings.TrimSpace(rest[:j])
		if name != "" && !strings.Contains(name, " ") {
			return lineInfo{kind: directiveLine, name: name, value: strings.TrimSpace(rest[j+2:])}
		}
	}

	return lineInfo{kind: commentLine}
}

// isEnumItem reports whether the line opens an enumerated list item:
// a valid enumerator in "1.", "1)", or "(1)" form followed by a space.
func isEnumItem(s string) bool {
	if strings.HasPrefix(s, "(") {
		if close := strings.Index(s, ")"); close >= 0 {
			marker := s[1:close]
			return validEnumerator(marker) && close+2 <= len(s) && s[close+1] == ' '
		}
		return false
	}
	for i, c := range s {
		switch c {
		case '.', ')':
			if i > 0 && validEnumerator(s[:i]) && i+2 <= len(s) && s[i+1] == ' ' {
				return true
			}
			return false
		case ' ':
			return false
		}
	}
	return false
}

// validEnumerator accepts "#", decimal numbers, single letters, and
// roman numerals.
func validEnumerator(s string) bool {
	if s == "" {
		return false
	}
	if s == "#" {
		return true
	}
	digits := true
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			digits = false
			break
		}
	}
	if digits {
		return true
	}
	if len(s) == 1 && ('a' <= s[0] && s[0] <= 'z' || 'A' <= s[0] && s[0] <= 'Z') {
		return true
	}
	for _, c := range strings.ToLower(s) {
		if !strings.ContainsRune("ivxlcdm", c) {
			return false
		}
	}
	return true
}

// enumMarker returns the marker text, including its punctuation.
func enumMarker(s string) string {
	if strings.HasPrefix(s, "(") {
		if close := strings.Index(s, ")"); close >= 0 {
			return s[:close+1]
		}
	}
	for i, c := range s {
		if c == '.' || c == ')' {
			return s[:i+1]
		}
	}
	return ""
}

// stripBullet removes the leading bullet marker.
func stripBullet(s string) string {
	t := strings.TrimLeft(s, " \t")
	if isBulletItem(t) {
		return t[2:]
	}
	if t != "" && (t[0] == '-' || t[0] == '*' || t[0] == '+') {
		if len(t) > 1 {
			return strings.TrimLeft(t[1:], " \t")
		}
		return ""
	}
	return s
}

// stripEnumMarker removes the leading enumerator.
func stripEnumMarker(s string) string {
	t := strings.TrimLeft(s, " \t")
	if strings.HasPrefix(t, "(") {
		if close := strings.Index(t, ")"); close >= 0 && validEnumerator(t[1:close]) {
			return strings.TrimLeft(t[close+1:], " \t")
		}
	}
	if dot := strings.Index(t, ". "); dot >= 0 && validEnumerator(t[:dot]) {
		return t[dot+2:]
	}
	if paren := strings.Index(t, ") "); paren >= 0 && validEnumerator(t[:paren]) {
		return t[paren+2:]
	}
	return s
}
