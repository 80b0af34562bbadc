// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import (
	"sort"
	"strings"
)

// Options configures conversion.
type Options struct {
	// AddDataLines emits data-line attributes recording the source
	// line of option lists, for debugging tools that map rendered
	// output back to input positions.
	AddDataLines bool
}

// maxDepth bounds nested rendering (list items inside directives
// inside list items, and so on). Content past the ceiling degrades to
// an escaped paragraph instead of recursing further.
const maxDepth = 100

// A converter renders one document or fragment. It is single use and
// single goroutine; Convert creates one per call.
type converter struct {
	opts  Options
	meta  *metadata
	depth int
}

// Convert converts a reStructuredText document to HTML with default
// options.
func Convert(text string) string {
	return ConvertWithOptions(text, Options{})
}

// ConvertWithOptions converts a reStructuredText document to HTML.
// Conversion cannot fail; malformed input degrades to literal text.
func ConvertWithOptions(text string, opts Options) string {
	lines := splitLines(text)
	c := &converter{opts: opts, meta: newMetadata()}
	analyze(lines, c.meta)
	html := c.render(lines)
	return c.resolveSubstitutions(html)
}

// ConvertContent renders block content as an HTML fragment with
// fresh, empty metadata: no analysis pass, no header/footer, no
// substitution resolution. It returns "" for blank input. The
// converter itself uses this entry point for all nested rendering.
func ConvertContent(text string) string {
	c := &converter{meta: newMetadata()}
	return c.renderContent(text)
}

// renderContent renders nested block content with isolated metadata,
// honoring the recursion ceiling.
func (c *converter) renderContent(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if c.depth >= maxDepth {
		return "<p>" + escapeHTML(strings.TrimSpace(content)) + "</p>\n"
	}
	nested := &converter{opts: c.opts, meta: newMetadata(), depth: c.depth + 1}
	return nested.render(splitLines(content))
}

// resolveSubstitutions replaces every |name| occurrence in the
// rendered document with the replacement collected in the analysis
// pass. Only the top-level document gets this pass. Names are applied
// in sorted order so that a replacement containing another |name|
// reference resolves the same way on every run.
func (c *converter) resolveSubstitutions(html string) string {
	if len(c.meta.subs) == 0 {
		return html
	}
	names := make([]string, 0, len(c.meta.subs))
	for name := range c.meta.subs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		html = strings.ReplaceAll(html, "|"+name+"|", c.meta.subs[name])
	}
	return html
}

// splitLines splits on newlines, dropping the trailing empty line of
// newline-terminated text and any carriage returns.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
