// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import (
	"fmt"
	"strings"
)

// render is the second pass: walk the lines with a cursor, testing
// block kinds in priority order, emit HTML, and advance past the
// consumed block. Context-sensitive constructs (section titles,
// transitions, definition lists) peek at neighboring lines; the rest
// dispatch on the classification of the current line.
func (c *converter) render(lines []string) string {
	var b strings.Builder
	b.Grow(len(lines) * 80)

	if c.meta.hasHeader {
		fmt.Fprintf(&b, "<header>%s</header>\n", inlineHTML(c.meta.header))
	}

	var counters sectionCounters

	for i := 0; i < len(lines); {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			i++
			continue
		}

		// Section title: text followed by an adornment at least as long.
		if i+1 < len(lines) && !strings.HasPrefix(trimmed, "..") {
			next := strings.TrimSpace(lines[i+1])
			if ni := classify(next); ni.kind == adornmentLine && runeLen(next) >= runeLen(trimmed) {
				level := c.meta.level(ni.ch)
				prefix := counters.prefix(level, c.meta)
				writeHeading(&b, level, slugify(trimmed), prefix, inlineHTML(trimmed))
				i += 2
				continue
			}
		}

		if li := classify(trimmed); li.kind == adornmentLine {
			// Overlined section: adornment, text, matching adornment.
			// Overlined titles are not numbered.
			if i+2 < len(lines) {
				text := strings.TrimSpace(lines[i+1])
				under := classify(strings.TrimSpace(lines[i+2]))
				if text != "" && under.kind == adornmentLine && under.ch == li.ch {
					level := c.meta.level(li.ch)
					writeHeading(&b, level, slugify(text), "", inlineHTML(text))
					i += 3
					continue
				}
			}

			// Transition: an adornment run with blank (or boundary) neighbors.
			prevBlank := i == 0 || isBlank(lines[i-1])
			nextBlank := i+1 >= len(lines) || isBlank(lines[i+1])
			if prevBlank && nextBlank {
				b.WriteString("<hr>\n")
				i++
				continue
			}
		}

		if isSimpleBorder(trimmed) {
			if text, end := collectSimpleTable(lines, i); text != "" {
				b.WriteString(simpleTableHTML(text))
				b.WriteByte('\n')
				i = end
				continue
			}
		}

		if strings.HasPrefix(trimmed, "+") && strings.HasSuffix(trimmed, "+") &&
			(strings.Contains(trimmed, "-") || strings.Contains(trimmed, "=")) {
			text, end := collectGridTable(lines, i)
			if isGridTable(text) {
				b.WriteString(gridTableHTML(text))
				b.WriteByte('\n')
				i = end
				continue
			}
		}

		// Explicit markup: substitution definitions and targets were
		// consumed in the analysis pass, directives dispatch, the rest
		// is comment.
		if rest, ok := strings.CutPrefix(trimmed, ".. "); ok {
			switch {
			case strings.HasPrefix(rest, "|") && strings.Contains(rest[1:], "|"):
				i = skipIndented(lines, i)
			case strings.HasPrefix(rest, "_"):
				i++
			default:
				info := classifyDots(rest)
				if info.kind != directiveLine {
					i = skipIndented(lines, i)
					break
				}
				opts, content, end := collectDirective(lines, i+1)
				d := &directive{name: info.name, args: info.value, options: opts, content: content}
				if html := c.directiveHTML(d); html != "" {
					b.WriteString(html)
					b.WriteByte('\n')
				}
				i = end
			}
			continue
		}

		// Standalone :: literal marker.
		if trimmed == "::" {
			content, end := collectIndented(lines, i+1)
			if content != "" {
				writeLiteral(&b, content)
			}
			i = end
			continue
		}

		if strings.HasPrefix(trimmed, ">>>") {
			block, end := collectDoctest(lines, i)
			fmt.Fprintf(&b, "<pre class=\"doctest\"><code class=\"language-python\">%s</code></pre>\n", escapeHTML(block))
			i = end
			continue
		}

		if strings.HasPrefix(trimmed, "| ") || trimmed == "|" {
			html, end := lineBlockHTML(lines, i)
			b.WriteString(html)
			b.WriteByte('\n')
			i = end
			continue
		}

		if isBulletItem(trimmed) {
			html, end := c.bulletListHTML(lines, i)
			b.WriteString(html)
			b.WriteByte('\n')
			i = end
			continue
		}

		if isEnumItem(trimmed) {
			html, end := c.enumListHTML(lines, i)
			b.WriteString(html)
			b.WriteByte('\n')
			i = end
			continue
		}

		// Field list. The character after the second colon must not be
		// a backtick; that form is an inline role, not a field.
		if strings.HasPrefix(trimmed, ":") && !strings.HasPrefix(trimmed, "::") {
			if j := strings.Index(trimmed[1:], ":"); j >= 0 {
				name := trimmed[1 : j+1]
				isRole := strings.HasPrefix(trimmed[j+2:], "`")
				if name != "" && !isRole {
					html, end := c.fieldListHTML(lines, i)
					b.WriteString(html)
					b.WriteByte('\n')
					i = end
					continue
				}
			}
		}

		// Definition list: an unindented term line directly followed by
		// an indented body that is not explicit markup or an adornment.
		if indentOf(line) == 0 && i+1 < len(lines) {
			next := lines[i+1]
			nextTrimmed := strings.TrimSpace(next)
			if indentOf(next) > 0 && nextTrimmed != "" &&
				!strings.HasPrefix(nextTrimmed, "..") && !isAdornment(nextTrimmed) {
				html, end := c.definitionListHTML(lines, i)
				b.WriteString(html)
				b.WriteByte('\n')
				i = end
				continue
			}
		}

		if isOptionLine(trimmed) {
			text, end := collectOptionList(lines, i)
			if isOptionList(text) {
				b.WriteString(optionListHTML(text, i, c.opts.AddDataLines))
				b.WriteByte('\n')
				i = end
				continue
			}
		}

		// Paragraph.
		para, end := collectParagraph(lines, i)
		if para == "" {
			if end == i {
				// A lone line followed by an adornment that cannot be
				// its underline. Emit it as a paragraph so the cursor
				// always advances.
				fmt.Fprintf(&b, "<p>%s</p>\n", inlineHTML(trimmed))
				i++
			} else {
				i = end
			}
			continue
		}
		if strings.HasSuffix(para, "::") {
			// Literal block follows: collapse the trailing colon run to
			// one and absorb the indented block verbatim.
			if para != "::" {
				fmt.Fprintf(&b, "<p>%s:</p>\n", inlineHTML(strings.TrimRight(para, ":")))
			}
			content, literalEnd := collectIndented(lines, end)
			if content != "" {
				writeLiteral(&b, content)
			}
			i = literalEnd
		} else {
			fmt.Fprintf(&b, "<p>%s</p>\n", inlineHTML(para))
			i = end
		}
	}

	if c.meta.hasFooter {
		fmt.Fprintf(&b, "<footer>%s</footer>\n", inlineHTML(c.meta.footer))
	}

	return b.String()
}

// collectParagraph joins consecutive plain text lines with single
// spaces, stopping at blanks, indentation, and the start of any other
// block kind. If the last collected line turns out to be a section
// title (the next line is an adornment), it is handed back for the
// section rules to consume.
func collectParagraph(lines []string, start int) (string, int) {
	var para []string
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			break
		}
		if indentOf(lines[i]) > 0 && len(para) > 0 {
			break
		}
		if len(para) > 0 &&
			(strings.HasPrefix(trimmed, ".. ") ||
				strings.HasPrefix(trimmed, "- ") ||
				strings.HasPrefix(trimmed, "* ") ||
				isEnumItem(trimmed) ||
				isSimpleBorder(trimmed) ||
				(strings.HasPrefix(trimmed, "+") && strings.Contains(trimmed, "-"))) {
			break
		}
		if isAdornment(trimmed) && len(para) > 0 {
			// The previous line is an underlined title, not paragraph
			// text; back up so the section rules see it.
			para = para[:len(para)-1]
			i--
			if len(para) == 0 {
				return "", start
			}
			break
		}
		para = append(para, trimmed)
		i++
	}
	return strings.Join(para, " "), i
}

// skipIndented advances past the indented block following line start,
// tolerating interior blank lines while deeper content continues.
func skipIndented(lines []string, start int) int {
	i := start + 1
	for i < len(lines) {
		if isBlank(lines[i]) {
			i++
			if i < len(lines) && !isBlank(lines[i]) && indentOf(lines[i]) > 0 {
				continue
			}
			break
		}
		if indentOf(lines[i]) == 0 {
			break
		}
		i++
	}
	return i
}

// collectIndented gathers an indented block, skipping leading blank
// lines and keeping interior blanks while indented content follows.
func collectIndented(lines []string, start int) (string, int) {
	i := start
	for i < len(lines) && isBlank(lines[i]) {
		i++
	}
	var content []string
	for i < len(lines) {
		line := lines[i]
		if isBlank(line) {
			if i+1 < len(lines) && !isBlank(lines[i+1]) && indentOf(lines[i+1]) > 0 {
				content = append(content, "")
				i++
				continue
			}
			break
		}
		if indentOf(line) == 0 {
			break
		}
		content = append(content, line)
		i++
	}
	return strings.Join(content, "\n"), i
}
