// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rst converts reStructuredText to HTML.

The converter is line-based: instead of building a document tree, it
classifies each input line and renders blocks directly, in two passes.
The first pass collects document metadata (section titles, substitution
definitions, hyperlink targets, header/footer fragments, section
numbering options). The second pass walks the lines again with a cursor
and emits HTML for each block it recognizes. Substitution references
|name| are replaced in the emitted HTML at the very end.

[Convert] converts a whole document. [ConvertContent] renders a block
fragment with empty metadata and is what the converter itself uses for
nested content (list items, directive bodies, field values), so a
nested fragment never sees the enclosing document's sections, targets,
or substitutions.

Conversion is total: malformed markup degrades to literal text or a
best-effort fragment, never an error.
*/
package rst
