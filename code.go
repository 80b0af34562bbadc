// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import (
	"fmt"
	"strings"
)

// writeLiteral emits an indented literal block: dedented, escaped
// verbatim, no inline processing.
func writeLiteral(b *strings.Builder, content string) {
	code := dedent(content)
	fmt.Fprintf(b, "<pre class=\"nohighlight\"><code>%s</code></pre>\n", escapeHTML(strings.TrimSpace(code)))
}

// collectDoctest gathers the consecutive non-blank lines of a doctest
// block starting at the >>> line.
func collectDoctest(lines []string, start int) (string, int) {
	end := start
	for end < len(lines) && !isBlank(lines[end]) {
		end++
	}
	return strings.Join(lines[start:end], "\n"), end
}

// lineBlockHTML renders a run of | lines. Leading spaces after the
// marker become a left margin in em units; a bare | is a forced
// break.
func lineBlockHTML(lines []string, start int) (string, int) {
	var b strings.Builder
	b.WriteString("<div class=\"line-block\">\n")
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "|" {
			b.WriteString("<div class=\"line\"><br></div>\n")
			i++
			continue
		}
		content, ok := strings.CutPrefix(trimmed, "| ")
		if !ok {
			break
		}
		if spaces := indentOf(content); spaces > 0 {
			fmt.Fprintf(&b, "<div class=\"line\" style=\"margin-left: %dem\">%s</div>\n",
				spaces, inlineHTML(strings.TrimSpace(content)))
		} else {
			fmt.Fprintf(&b, "<div class=\"line\">%s</div>\n", inlineHTML(content))
		}
		i++
	}
	b.WriteString("</div>")
	return b.String(), i
}
