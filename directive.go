// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A directive is one parsed explicit-markup block:
// .. name:: args, followed by indented :option: lines and an indented
// content block.
type directive struct {
	name    string
	args    string
	options map[string]string
	content string
}

// collectDirective parses the options and content following the
// directive line. start is the line after the directive itself. The
// content is dedented; interior blank lines survive while indented
// content continues.
func collectDirective(lines []string, start int) (map[string]string, string, int) {
	options := make(map[string]string)
	i := start

	if i < len(lines) && isBlank(lines[i]) {
		i++
	}

	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			break
		}
		if indentOf(lines[i]) > 0 && strings.HasPrefix(trimmed, ":") {
			if j := strings.Index(trimmed[1:], ":"); j >= 0 {
				options[trimmed[1:j+1]] = strings.TrimSpace(trimmed[j+2:])
				i++
				continue
			}
		}
		break
	}

	if i < len(lines) && isBlank(lines[i]) {
		i++
	}

	var content []string
	for i < len(lines) {
		line := lines[i]
		if isBlank(line) {
			if i+1 < len(lines) && indentOf(lines[i+1]) > 0 && !isBlank(lines[i+1]) {
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

	text := ""
	if len(content) > 0 {
		text = dedent(strings.Join(content, "\n"))
	}
	return options, text, i
}

// directiveHTML dispatches a directive by name. Unrecognized names
// fall through to a generic wrapper that preserves the arguments and
// content.
func (c *converter) directiveHTML(d *directive) string {
	switch d.name {
	case "code-block", "code", "sourcecode", "highlight":
		return codeBlockHTML(d)
	case "parsed-literal":
		return fmt.Sprintf("<pre class=\"parsed-literal\">%s</pre>", inlineHTML(d.content))

	case "note", "warning", "tip", "caution", "danger", "attention", "error", "hint", "important":
		return fmt.Sprintf(
			"<div class=\"admonition %s\">\n<p class=\"admonition-title\">%s</p>\n%s\n</div>",
			d.name, capitalize(d.name), c.renderContent(d.content))
	case "admonition":
		return fmt.Sprintf(
			"<div class=\"admonition\">\n<p class=\"admonition-title\">%s</p>\n%s\n</div>",
			escapeHTML(strings.TrimSpace(d.args)), c.renderContent(d.content))
	case "seealso":
		return fmt.Sprintf(
			"<div class=\"admonition seealso\">\n<p class=\"admonition-title\">See Also</p>\n%s\n</div>",
			c.renderContent(d.content))

	case "image":
		return imageHTML(d)
	case "figure":
		return c.figureHTML(d)

	case "topic":
		return fmt.Sprintf("<div class=\"topic\">\n<p class=\"topic-title\">%s</p>\n%s\n</div>",
			escapeHTML(strings.TrimSpace(d.args)), c.renderContent(d.content))
	case "sidebar":
		return c.sidebarHTML(d)
	case "rubric":
		return fmt.Sprintf("<p class=\"rubric\">%s</p>", inlineHTML(strings.TrimSpace(d.args)))
	case "centered":
		return fmt.Sprintf("<p class=\"centered\" style=\"text-align: center\">%s</p>",
			inlineHTML(strings.TrimSpace(d.args)))
	case "epigraph", "highlights", "pull-quote":
		return fmt.Sprintf("<blockquote class=\"%s\">\n%s\n</blockquote>",
			d.name, c.renderContent(d.content))
	case "compound":
		return fmt.Sprintf("<div class=\"compound\">\n%s\n</div>", c.renderContent(d.content))
	case "container", "class":
		return fmt.Sprintf("<div class=\"%s\">\n%s\n</div>",
			escapeHTML(strings.TrimSpace(d.args)), c.renderContent(d.content))
	case "contents":
		return c.contentsHTML(d)

	case "table":
		return tableDirectiveHTML(d)
	case "csv-table":
		return csvTableHTML(strings.TrimSpace(d.args), d.options, d.content)
	case "list-table":
		return listTableHTML(strings.TrimSpace(d.args), d.options, d.content)

	case "raw":
		if strings.TrimSpace(d.args) == "html" {
			return d.content
		}
		return fmt.Sprintf("<!-- %s: %s -->", capitalize(strings.TrimSpace(d.args)), escapeHTML(d.content))
	case "include":
		return fmt.Sprintf("<p class=\"include\">Include: %s</p>", escapeHTML(strings.TrimSpace(d.args)))
	case "meta":
		return fmt.Sprintf("<!-- meta: %s -->", escapeHTML(d.content))
	case "math":
		return mathHTML(d)

	case "toctree":
		return toctreeHTML(d)
	case "versionadded":
		return c.versionHTML(d, "New in version")
	case "versionchanged":
		return c.versionHTML(d, "Changed in version")
	case "deprecated":
		return fmt.Sprintf(
			"<div class=\"deprecated\">\n<span class=\"versionmodified\">Deprecated since version %s: </span>%s\n</div>",
			escapeHTML(strings.TrimSpace(d.args)), c.renderContent(d.content))
	case "glossary":
		return glossaryHTML(d)
	case "productionlist":
		return productionListHTML(d)

	case "doctest":
		if strings.TrimSpace(d.args) != "" {
			return ""
		}
		return fmt.Sprintf("<pre class=\"doctest\"><code class=\"language-python\">%s</code></pre>",
			escapeHTML(strings.TrimSpace(dedent(d.content))))
	case "testcode":
		return fmt.Sprintf("<pre class=\"testcode\"><code>%s</code></pre>",
			escapeHTML(strings.TrimSpace(dedent(d.content))))
	case "testoutput":
		return fmt.Sprintf("<pre class=\"testoutput\"><samp>%s</samp></pre>",
			escapeHTML(strings.TrimSpace(dedent(d.content))))

	case "unicode":
		return unicodeText(d.args)
	case "date":
		return formatDate(strings.TrimSpace(d.args))
	case "replace":
		return inlineHTML(strings.TrimSpace(d.args))

	// role definitions and document parts are consumed during
	// analysis.
	case "role", "sectnum", "header", "footer":
		return ""

	case "target-notes":
		return c.targetNotesHTML()
	}

	return c.unknownDirectiveHTML(d)
}

func codeBlockHTML(d *directive) string {
	lang := strings.TrimSpace(d.args)
	langClass := ""
	if lang != "" {
		langClass = fmt.Sprintf(" class=\"language-%s\"", escapeHTML(lang))
	}

	var b strings.Builder
	if caption, ok := d.options["caption"]; ok {
		fmt.Fprintf(&b, "<div class=\"code-block-caption\">%s</div>", escapeHTML(caption))
	}
	linenos := ""
	if _, ok := d.options["linenos"]; ok {
		linenos = " linenos"
	}
	fmt.Fprintf(&b, "<pre class=\"code-block%s\"><code%s>%s</code></pre>",
		linenos, langClass, escapeHTML(strings.TrimRight(dedent(d.content), " \t\n")))
	return b.String()
}

func imageHTML(d *directive) string {
	attrs := fmt.Sprintf("src=\"%s\"", escapeHTML(strings.TrimSpace(d.args)))
	if alt, ok := d.options["alt"]; ok {
		attrs += fmt.Sprintf(" alt=\"%s\"", escapeHTML(alt))
	}
	style := ""
	if width, ok := d.options["width"]; ok {
		style += fmt.Sprintf("width: %s;", width)
	}
	if height, ok := d.options["height"]; ok {
		style += fmt.Sprintf("height: %s;", height)
	}
	if style != "" {
		attrs += fmt.Sprintf(" style=\"%s\"", style)
	}

	img := fmt.Sprintf("<img %s>", attrs)
	if target, ok := d.options["target"]; ok {
		return fmt.Sprintf("<a href=\"%s\">%s</a>", escapeHTML(target), img)
	}
	return img
}

// figureHTML renders an image with a caption (the first paragraph of
// the content) and an optional legend (the rest).
func (c *converter) figureHTML(d *directive) string {
	attrs := fmt.Sprintf("src=\"%s\"", escapeHTML(strings.TrimSpace(d.args)))
	if alt, ok := d.options["alt"]; ok {
		attrs += fmt.Sprintf(" alt=\"%s\"", escapeHTML(alt))
	}
	if width, ok := d.options["width"]; ok {
		attrs += fmt.Sprintf(" style=\"width: %s;\"", width)
	}

	figClass := "figure"
	if fc, ok := d.options["figclass"]; ok {
		figClass += " " + fc
	}
	if align, ok := d.options["align"]; ok {
		figClass += " align-" + align
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<figure class=\"%s\">\n<img %s>\n", figClass, attrs)

	if d.content != "" {
		caption, legend, hasLegend := strings.Cut(strings.TrimSpace(d.content), "\n\n")
		fmt.Fprintf(&b, "<figcaption>%s</figcaption>\n", inlineHTML(caption))
		if hasLegend {
			fmt.Fprintf(&b, "<div class=\"legend\">%s</div>\n", c.renderContent(legend))
		}
	}

	b.WriteString("</figure>")
	return b.String()
}

func (c *converter) sidebarHTML(d *directive) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<aside class=\"sidebar\">\n<p class=\"sidebar-title\">%s</p>\n",
		escapeHTML(strings.TrimSpace(d.args)))
	if subtitle, ok := d.options["subtitle"]; ok {
		fmt.Fprintf(&b, "<p class=\"sidebar-subtitle\">%s</p>\n", escapeHTML(subtitle))
	}
	b.WriteString(c.renderContent(d.content))
	b.WriteString("\n</aside>")
	return b.String()
}

// contentsHTML renders a table of contents from the section titles
// collected during analysis. The document title (level 1) is left out.
func (c *converter) contentsHTML(d *directive) string {
	title := strings.TrimSpace(d.args)
	if title == "" {
		title = "Contents"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<div class=\"contents\">\n<p class=\"topic-title\">%s</p>\n", escapeHTML(title))

	if len(c.meta.sections) > 0 {
		b.WriteString("<ul class=\"toc\">\n")
		for _, s := range c.meta.sections {
			if s.level > 1 {
				indent := strings.Repeat("  ", s.level-2)
				fmt.Fprintf(&b, "%s<li><a href=\"#%s\">%s</a></li>\n",
					indent, slugify(s.title), escapeHTML(s.title))
			}
		}
		b.WriteString("</ul>\n")
	}

	b.WriteString("</div>")
	return b.String()
}

// tableDirectiveHTML handles the table directive, which only carries
// a caption; the table body is consumed as directive content but not
// reconstructed.
func tableDirectiveHTML(d *directive) string {
	title := strings.TrimSpace(d.args)
	if d.content != "" && isSimpleTable(strings.TrimSpace(d.content)) {
		return fmt.Sprintf("<table>\n<caption>%s</caption>\n</table>", escapeHTML(title))
	}
	var b strings.Builder
	b.WriteString("<table>\n")
	if title != "" {
		fmt.Fprintf(&b, "<caption>%s</caption>\n", escapeHTML(title))
	}
	b.WriteString("</table>")
	return b.String()
}

func mathHTML(d *directive) string {
	var b strings.Builder
	if label, ok := d.options["label"]; ok {
		fmt.Fprintf(&b, "<div class=\"math-block\" id=\"equation-%s\">\n", escapeHTML(label))
	} else {
		b.WriteString("<div class=\"math-block\">\n")
	}
	b.WriteString(escapeHTML(strings.TrimSpace(d.content)))
	b.WriteString("\n</div>")
	return b.String()
}

func toctreeHTML(d *directive) string {
	var b strings.Builder
	b.WriteString("<nav class=\"toctree-wrapper\">\n")
	if caption, ok := d.options["caption"]; ok {
		fmt.Fprintf(&b, "<p class=\"caption\">%s</p>\n", escapeHTML(caption))
	}
	b.WriteString("<ul>\n")
	for _, line := range strings.Split(d.content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, ":") {
			e := escapeHTML(trimmed)
			fmt.Fprintf(&b, "<li><a href=\"%s.html\">%s</a></li>\n", e, e)
		}
	}
	b.WriteString("</ul>\n</nav>")
	return b.String()
}

func (c *converter) versionHTML(d *directive, prefix string) string {
	return fmt.Sprintf(
		"<div class=\"%s\">\n<span class=\"versionmodified\">%s %s: </span>%s\n</div>",
		d.name, prefix, escapeHTML(strings.TrimSpace(d.args)), c.renderContent(d.content))
}

// A glossaryEntry is one or more terms sharing a definition.
type glossaryEntry struct {
	terms []string
	def   string
}

// glossaryHTML renders a glossary: term lines at the left margin,
// definitions indented below them. The sorted option orders entries
// by their first term, case-insensitively.
func glossaryHTML(d *directive) string {
	var entries []glossaryEntry
	var terms []string
	var def string

	flush := func() {
		if len(terms) > 0 {
			entries = append(entries, glossaryEntry{terms, strings.TrimSpace(def)})
			terms, def = nil, ""
		}
	}

	for _, line := range strings.Split(d.content, "\n") {
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == "" {
			if len(terms) > 0 && def != "" {
				flush()
			}
			continue
		}
		if strings.HasPrefix(trimmed, "   ") || strings.HasPrefix(trimmed, "\t") {
			if def != "" {
				def += " "
			}
			def += strings.TrimSpace(trimmed)
		} else {
			if def != "" {
				flush()
			}
			terms = append(terms, trimmed)
		}
	}
	flush()

	if _, ok := d.options["sorted"]; ok {
		lower := cases.Lower(language.Und)
		sort.SliceStable(entries, func(i, j int) bool {
			return lower.String(entries[i].terms[0]) < lower.String(entries[j].terms[0])
		})
	}

	var b strings.Builder
	b.WriteString("<dl class=\"glossary\">\n")
	for _, e := range entries {
		for _, term := range e.terms {
			fmt.Fprintf(&b, "<dt id=\"term-%s\">%s</dt>\n", slugify(term), escapeHTML(term))
		}
		if e.def != "" {
			fmt.Fprintf(&b, "<dd>%s</dd>\n", inlineHTML(e.def))
		}
	}
	b.WriteString("</dl>")
	return b.String()
}

// productionListHTML renders grammar productions. Backtick references
// inside a rule link to the named production.
func productionListHTML(d *directive) string {
	var b strings.Builder
	b.WriteString("<pre class=\"productionlist\">\n")
	for _, line := range strings.Split(d.content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		name, rule, ok := strings.Cut(trimmed, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		fmt.Fprintf(&b, "<strong id=\"grammar-token-%s\">%s</strong> ::= %s\n",
			escapeHTML(name), escapeHTML(name), productionRefs(strings.TrimSpace(rule)))
	}
	b.WriteString("</pre>")
	return b.String()
}

func productionRefs(rule string) string {
	var b strings.Builder
	r := []rune(rule)
	for i := 0; i < len(r); {
		if r[i] != '`' {
			b.WriteRune(r[i])
			i++
			continue
		}
		j := i + 1
		for j < len(r) && r[j] != '`' {
			j++
		}
		if j < len(r) {
			name := escapeHTML(string(r[i+1 : j]))
			fmt.Fprintf(&b, "<a href=\"#grammar-token-%s\" class=\"production-ref\">%s</a>", name, name)
			i = j + 1
		} else {
			b.WriteRune(r[i])
			i++
		}
	}
	return b.String()
}

// targetNotesHTML lists every hyperlink target collected during
// analysis as a numbered reference list.
func (c *converter) targetNotesHTML() string {
	if len(c.meta.targets) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<div class=\"target-notes\">\n<ol>\n")
	for _, t := range c.meta.targets {
		fmt.Fprintf(&b, "<li><a href=\"%s\">%s</a></li>\n", escapeHTML(t.url), escapeHTML(t.name))
	}
	b.WriteString("</ol>\n</div>")
	return b.String()
}

func (c *converter) unknownDirectiveHTML(d *directive) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<div class=\"directive-%s\">\n", escapeHTML(d.name))
	if d.args != "" {
		fmt.Fprintf(&b, "<div class=\"directive-arguments\">%s</div>\n", escapeHTML(strings.TrimSpace(d.args)))
	}
	if d.content != "" {
		fmt.Fprintf(&b, "<div class=\"directive-content\">%s</div>\n", c.renderContent(d.content))
	}
	b.WriteString("</div>")
	return b.String()
}

func capitalize(s string) string {
	for _, c := range s {
		return strings.ToUpper(string(c)) + s[len(string(c)):]
	}
	return ""
}
