// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import (
	"fmt"
	"strings"
)

// Nested structures found inside a list item are tagged with these
// markers while the item's lines are flattened into one blob, then
// split back out and rendered recursively.
const (
	nestedBulletMark    = "\x00bullet\x00"
	nestedDirectiveMark = "\x00directive\x00"
)

// bulletListHTML renders a run of bullet items as one <ul>.
func (c *converter) bulletListHTML(lines []string, start int) (string, int) {
	var b strings.Builder
	b.WriteString("<ul>\n")
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])

		if trimmed == "" {
			// A blank line ends the list unless another item or a
			// continuation follows.
			if i+1 < len(lines) {
				next := strings.TrimSpace(lines[i+1])
				if isBulletItem(next) {
					i++
					continue
				}
				if indentOf(lines[i+1]) > 0 && next != "" {
					i++
					continue
				}
			}
			break
		}

		if !isBulletItem(trimmed) {
			break
		}
		content, end := collectListItem(lines, i, stripBullet(trimmed))
		fmt.Fprintf(&b, "<li>%s</li>\n", c.renderListItem(content))
		i = end
	}
	b.WriteString("</ul>")
	return b.String(), i
}

// enumListHTML renders a run of enumerated items as one <ol>.
func (c *converter) enumListHTML(lines []string, start int) (string, int) {
	var b strings.Builder
	b.WriteString("<ol>\n")
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])

		if trimmed == "" {
			if i+1 < len(lines) && isEnumItem(strings.TrimSpace(lines[i+1])) {
				i++
				continue
			}
			if i+1 < len(lines) && indentOf(lines[i+1]) > 0 && !isBlank(lines[i+1]) {
				i++
				continue
			}
			break
		}

		if isEnumItem(trimmed) {
			content, end := collectListItem(lines, i, stripEnumMarker(trimmed))
			fmt.Fprintf(&b, "<li>%s</li>\n", c.renderListItem(content))
			i = end
		} else if indentOf(lines[i]) > 0 {
			// Leftover continuation of the previous item.
			i++
		} else {
			break
		}
	}
	b.WriteString("</ol>")
	return b.String(), i
}

// collectListItem flattens one list item: the first line's content
// plus indented continuation lines joined with spaces. Nested bullet
// items and directives are kept on their own marker-tagged lines for
// renderListItem to recurse on.
func collectListItem(lines []string, start int, firstLine string) (string, int) {
	var content strings.Builder
	content.WriteString(firstLine)
	i := start + 1
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			if i+1 < len(lines) && indentOf(lines[i+1]) > 0 && !isBlank(lines[i+1]) {
				content.WriteByte('\n')
				i++
				continue
			}
			break
		}
		if indentOf(line) == 0 {
			break
		}

		if isBulletItem(trimmed) {
			content.WriteString("\n" + nestedBulletMark + trimmed)
			i++
			continue
		}

		if strings.HasPrefix(trimmed, ".. ") {
			content.WriteString("\n" + nestedDirectiveMark + trimmed)
			i++
			for i < len(lines) {
				dl := lines[i]
				if isBlank(dl) {
					if i+1 < len(lines) && indentOf(lines[i+1]) > 0 {
						content.WriteByte('\n')
						content.WriteString(dl)
						i++
						continue
					}
					break
				}
				if indentOf(dl) == 0 {
					break
				}
				content.WriteByte('\n')
				content.WriteString(dl)
				i++
			}
			continue
		}

		content.WriteByte(' ')
		content.WriteString(trimmed)
		i++
	}
	return content.String(), i
}

// renderListItem renders one flattened item: inline text, plus any
// tagged nested content rendered as a fresh block fragment. An item
// may mix nested lists and directives; every marker line has its tag
// stripped before the nested slice is re-rendered, so the markers
// never reach the output.
func (c *converter) renderListItem(content string) string {
	if !strings.Contains(content, nestedBulletMark) && !strings.Contains(content, nestedDirectiveMark) {
		return inlineHTML(strings.TrimSpace(content))
	}
	var main, nested []string
	inNested := false
	for _, l := range strings.Split(content, "\n") {
		switch {
		case strings.HasPrefix(l, nestedBulletMark):
			inNested = true
			nested = append(nested, strings.TrimPrefix(l, nestedBulletMark))
		case strings.HasPrefix(l, nestedDirectiveMark):
			inNested = true
			nested = append(nested, strings.TrimPrefix(l, nestedDirectiveMark))
		case inNested:
			nested = append(nested, l)
		default:
			main = append(main, l)
		}
	}
	return inlineHTML(strings.TrimSpace(strings.Join(main, "\n"))) + "\n" +
		c.renderContent(strings.Join(nested, "\n"))
}

// fieldListHTML renders a :name: value field list as definition-list
// markup. Values may continue on indented lines and are rendered as
// nested block content.
func (c *converter) fieldListHTML(lines []string, start int) (string, int) {
	var b strings.Builder
	b.WriteString("<dl>\n")
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])

		if trimmed == "" {
			if i+1 < len(lines) {
				next := strings.TrimSpace(lines[i+1])
				if strings.HasPrefix(next, ":") && !strings.HasPrefix(next, "::") {
					i++
					continue
				}
				if indentOf(lines[i+1]) > 0 {
					i++
					continue
				}
			}
			break
		}

		if !strings.HasPrefix(trimmed, ":") || strings.HasPrefix(trimmed, "::") {
			break
		}
		j := strings.Index(trimmed[1:], ":")
		if j < 0 {
			break
		}
		name := trimmed[1 : j+1]
		value := strings.TrimSpace(trimmed[j+2:])

		fmt.Fprintf(&b, "<dt>%s</dt>\n", escapeHTML(name))

		// Merge indented continuation lines into the value; a blank
		// line followed by more indented content becomes a paragraph
		// break.
		var full strings.Builder
		full.WriteString(value)
		k := i + 1
		for k < len(lines) {
			vl := lines[k]
			if isBlank(vl) {
				if k+1 < len(lines) && indentOf(lines[k+1]) > 0 && !isBlank(lines[k+1]) {
					full.WriteByte('\n')
					k++
					continue
				}
				break
			}
			if indentOf(vl) == 0 {
				break
			}
			full.WriteByte(' ')
			full.WriteString(strings.TrimSpace(vl))
			k++
		}

		if full.Len() == 0 {
			b.WriteString("<dd></dd>\n")
		} else {
			fmt.Fprintf(&b, "<dd>%s</dd>\n", c.renderContent(strings.TrimSpace(full.String())))
		}
		i = k
	}
	b.WriteString("</dl>")
	return b.String(), i
}

// definitionListHTML renders term lines with indented definitions.
// Classifiers after " : " on the term line become classifier spans.
func (c *converter) definitionListHTML(lines []string, start int) (string, int) {
	var b strings.Builder
	b.WriteString("<dl>\n")
	i := start
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			// Another term/definition pair may follow the blank line.
			if i+1 < len(lines) && !isBlank(lines[i+1]) &&
				indentOf(lines[i+1]) == 0 && i+2 < len(lines) {
				after := lines[i+2]
				if indentOf(after) > 0 && !isBlank(after) && !isAdornment(strings.TrimSpace(after)) {
					i++
					continue
				}
			}
			break
		}

		if indentOf(line) > 0 {
			i++
			continue
		}

		term, classifiers, _ := strings.Cut(trimmed, " : ")
		fmt.Fprintf(&b, "<dt>%s", inlineHTML(term))
		if classifiers != "" {
			for _, cl := range strings.Split(classifiers, " : ") {
				fmt.Fprintf(&b, " <span class=\"classifier\">%s</span>", inlineHTML(strings.TrimSpace(cl)))
			}
		}
		b.WriteString("</dt>\n")

		i++
		var def []string
		for i < len(lines) {
			dl := lines[i]
			if isBlank(dl) {
				if i+1 < len(lines) && indentOf(lines[i+1]) > 0 {
					def = append(def, "")
					i++
					continue
				}
				break
			}
			if indentOf(dl) == 0 {
				break
			}
			def = append(def, strings.TrimSpace(dl))
			i++
		}
		fmt.Fprintf(&b, "<dd>%s</dd>\n", inlineHTML(strings.TrimSpace(strings.Join(def, " "))))
	}
	b.WriteString("</dl>")
	return b.String(), i
}

// isOptionLine reports whether the line looks like a CLI option:
// -x, --long, or DOS-style /X.
func isOptionLine(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" {
		return false
	}
	switch t[0] {
	case '-':
		if len(t) >= 2 && t[1] == '-' {
			return len(t) >= 3 && isASCIIAlnum(t[2])
		}
		return len(t) >= 2 && isASCIIAlnum(t[1])
	case '/':
		return len(t) >= 2 && isASCIIAlnum(t[1])
	}
	return false
}

func isASCIIAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// isOptionList applies the block heuristic: at least half of the
// non-blank lines must be option lines.
func isOptionList(text string) bool {
	var total, options int
	for _, l := range strings.Split(text, "\n") {
		if isBlank(l) {
			continue
		}
		total++
		if isOptionLine(l) {
			options++
		}
	}
	return options > 0 && options*2 >= total
}

// parseOptionLine splits an option line at the first run of two or
// more spaces into the option and its description.
func parseOptionLine(line string) (option, desc string) {
	t := strings.TrimSpace(line)
	seen := false
	for i := 0; i < len(t); i++ {
		if t[i] != ' ' {
			seen = true
		} else if seen && i+1 < len(t) && t[i+1] == ' ' {
			return strings.TrimSpace(t[:i]), strings.TrimSpace(t[i:])
		}
	}
	return t, ""
}

func collectOptionList(lines []string, start int) (string, int) {
	var text []string
	end := start
	for end < len(lines) && !isBlank(lines[end]) {
		text = append(text, strings.TrimSpace(lines[end]))
		end++
	}
	return strings.Join(text, "\n"), end
}

// optionListHTML renders an option list block. When addDataLine is
// set, the list records its source line for debugging tools.
func optionListHTML(text string, lineNum int, addDataLine bool) string {
	var b strings.Builder
	if addDataLine {
		fmt.Fprintf(&b, "<dl class=\"option-list\" data-line=\"%d\">\n", lineNum)
	} else {
		b.WriteString("<dl class=\"option-list\">\n")
	}

	flush := func(option, desc string) {
		if option == "" {
			return
		}
		fmt.Fprintf(&b, "<dt><code>%s</code></dt>\n<dd>%s</dd>\n",
			escapeHTML(option), inlineHTML(strings.TrimSpace(desc)))
	}

	var option, desc string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isOptionLine(trimmed) {
			flush(option, desc)
			option, desc = parseOptionLine(trimmed)
		} else {
			if desc != "" {
				desc += " "
			}
			desc += trimmed
		}
	}
	flush(option, desc)

	b.WriteString("</dl>")
	return b.String()
}
