// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import (
	"fmt"
	"strconv"
	"strings"
)

// Table geometry is measured in runes, not bytes, so that multibyte
// cell text lines up with the ASCII borders above it.

// isSimpleBorder reports whether the line starts a simple table at the
// block level: only = and space, with at least one of each. A border
// without spaces would be a plain adornment line.
func isSimpleBorder(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" {
		return false
	}
	for _, c := range t {
		if c != '=' && c != ' ' {
			return false
		}
	}
	return strings.ContainsRune(t, '=') && strings.ContainsRune(t, ' ')
}

// isBorderRun is the looser test used inside a collected table, where
// a single-column border has no spaces.
func isBorderRun(line string) bool {
	if line == "" {
		return false
	}
	for _, c := range line {
		if c != '=' && c != ' ' {
			return false
		}
	}
	return strings.ContainsRune(line, '=')
}

// isDashRun matches the -------- separator rows that appear under
// spanned headers.
func isDashRun(line string) bool {
	if line == "" {
		return false
	}
	for _, c := range line {
		if c != '-' && c != '=' && c != ' ' {
			return false
		}
	}
	return strings.ContainsRune(line, '-')
}

// isSimpleTable reports whether the text is a complete simple table:
// at least three lines with borders first and last.
func isSimpleTable(text string) bool {
	lines := strings.Split(text, "\n")
	if len(lines) < 3 {
		return false
	}
	return isBorderRun(strings.TrimSpace(lines[0])) &&
		isBorderRun(strings.TrimSpace(lines[len(lines)-1]))
}

// collectSimpleTable gathers the lines of a simple table starting at
// the border line at start. After the second border it peeks ahead for
// a third before the next blank line, which would make the second
// border the header separator.
func collectSimpleTable(lines []string, start int) (string, int) {
	end := start + 1
	borders := 1
	for end < len(lines) {
		trimmed := strings.TrimSpace(lines[end])
		if isSimpleBorder(trimmed) {
			borders++
			if borders >= 2 {
				for j := end + 1; j < len(lines); j++ {
					jt := strings.TrimSpace(lines[j])
					if jt == "" {
						break
					}
					if isSimpleBorder(jt) {
						end = j + 1
						return strings.Join(lines[start:end], "\n"), end
					}
				}
				end++
				return strings.Join(lines[start:end], "\n"), end
			}
		} else if trimmed == "" {
			break
		}
		end++
	}
	return strings.Join(lines[start:end], "\n"), end
}

// columnSpan is a [start, end) rune range of one column in a border.
type columnSpan struct {
	start, end int
}

// simpleColumns finds the = runs of a border line.
func simpleColumns(border string) []columnSpan {
	var cols []columnSpan
	r := []rune(border)
	i := 0
	for i < len(r) {
		for i < len(r) && r[i] == ' ' {
			i++
		}
		start := i
		for i < len(r) && r[i] == '=' {
			i++
		}
		if i > start {
			cols = append(cols, columnSpan{start, i})
		}
	}
	return cols
}

// sliceCells cuts one content line at the column boundaries.
func sliceCells(line string, cols []columnSpan) []string {
	cells := make([]string, 0, len(cols))
	r := []rune(line)
	for _, col := range cols {
		s := min(col.start, len(r))
		e := min(col.end, len(r))
		if s < len(r) {
			cells = append(cells, strings.TrimSpace(string(r[s:e])))
		} else {
			cells = append(cells, "")
		}
	}
	return cells
}

// simpleTableHTML renders a collected simple table. Three or more
// borders mean the rows before the second border are the header.
func simpleTableHTML(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) < 3 {
		return "<p>" + escapeHTML(text) + "</p>"
	}

	cols := simpleColumns(strings.TrimSpace(lines[0]))
	if len(cols) == 0 {
		return "<p>" + escapeHTML(text) + "</p>"
	}

	var b strings.Builder
	b.Grow(len(text) * 3)
	b.WriteString("<table class=\"simple-table\">\n")

	var borderPositions []int
	for i, line := range lines {
		if isBorderRun(strings.TrimSpace(line)) {
			borderPositions = append(borderPositions, i)
		}
	}

	hasHeader := len(borderPositions) >= 3
	inHeader := hasHeader
	headerRows := 0

	if hasHeader {
		b.WriteString("<thead>\n")
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if isBorderRun(trimmed) {
			if hasHeader && i == borderPositions[1] && headerRows > 0 {
				b.WriteString("</thead>\n<tbody>\n")
				inHeader = false
			}
			continue
		}
		if isDashRun(trimmed) && !containsAlnum(trimmed) {
			continue
		}

		tag := "td"
		if inHeader {
			tag = "th"
		}
		b.WriteString("<tr>")
		for _, cell := range sliceCells(line, cols) {
			var processed string
			if strings.HasPrefix(cell, "http://") || strings.HasPrefix(cell, "https://") {
				url := escapeHTML(cell)
				processed = fmt.Sprintf("<a href=\"%s\">%s</a>", url, url)
			} else {
				processed = cellInline(cell)
			}
			fmt.Fprintf(&b, "<%s>%s</%s>", tag, processed, tag)
		}
		b.WriteString("</tr>\n")

		if inHeader {
			headerRows++
		}
	}

	if hasHeader {
		b.WriteString("</tbody>\n")
	}
	b.WriteString("</table>")
	return b.String()
}

func containsAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		if isASCIIAlnum(s[i]) {
			return true
		}
	}
	return false
}

// cellInline processes cell text: backslash escapes are resolved
// first, and the resulting entities must survive the restricted
// inline pass.
func cellInline(cell string) string {
	if strings.ContainsRune(cell, '\\') {
		return inlineKeepEntities(unescapeRST(cell))
	}
	return inlineHTML(cell)
}

// collectGridTable gathers consecutive + and | lines starting at the
// border line at start.
func collectGridTable(lines []string, start int) (string, int) {
	end := start + 1
	for end < len(lines) {
		trimmed := strings.TrimSpace(lines[end])
		if trimmed == "" {
			break
		}
		if !strings.HasPrefix(trimmed, "+") && !strings.HasPrefix(trimmed, "|") {
			break
		}
		end++
	}
	return strings.Join(lines[start:end], "\n"), end
}

func isGridTable(text string) bool {
	lines := strings.Split(text, "\n")
	if len(lines) < 3 {
		return false
	}
	first := strings.TrimSpace(lines[0])
	return strings.HasPrefix(first, "+") && strings.HasSuffix(first, "+") &&
		(strings.Contains(first, "-") || strings.Contains(first, "="))
}

func isGridBorder(line string) bool {
	if line == "" || !strings.HasPrefix(line, "+") || !strings.HasSuffix(line, "+") {
		return false
	}
	for _, c := range line {
		switch c {
		case '+', '-', '=', ' ':
		default:
			return false
		}
	}
	return true
}

// gridColumns finds the rune offsets of the + junctions in the first
// border line. Every row is sliced at these offsets.
func gridColumns(border string) []int {
	var positions []int
	for i, c := range []rune(border) {
		if c == '+' {
			positions = append(positions, i)
		}
	}
	return positions
}

// A gridCell is one rendered cell of a grid table. Cells covered by a
// rowspan above them are marked skip and not emitted.
type gridCell struct {
	content string
	colspan int
	rowspan int
	skip    bool
}

// gridTableHTML renders a collected grid table. A border containing =
// instead of - separates the header rows from the body.
func gridTableHTML(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) < 3 {
		return "<p>" + escapeHTML(text) + "</p>"
	}

	cols := gridColumns(lines[0])
	if len(cols) == 0 {
		return "<p>" + escapeHTML(text) + "</p>"
	}

	headerEnd := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "+") && strings.Contains(trimmed, "=") && !strings.Contains(trimmed, "-") {
			headerEnd = i
			break
		}
	}

	rows := detectSpans(lines, cols)

	var b strings.Builder
	b.Grow(len(text) * 3)
	b.WriteString("<table class=\"grid-table\">\n")

	inHeader := headerEnd >= 0
	if inHeader {
		b.WriteString("<thead>\n")
	}

	// Rows are delimited by borders, so the header holds as many rows
	// as there are borders above the = separator.
	headerEndRow := 0
	if headerEnd >= 0 {
		for i := 0; i < headerEnd; i++ {
			if isGridBorder(strings.TrimSpace(lines[i])) {
				headerEndRow++
			}
		}
	}

	for rowIdx, row := range rows {
		if inHeader && rowIdx >= headerEndRow {
			b.WriteString("</thead>\n<tbody>\n")
			inHeader = false
		}

		b.WriteString("<tr>")
		tag := "td"
		if rowIdx < headerEndRow {
			tag = "th"
		}
		for _, cell := range row {
			if cell.skip {
				continue
			}
			var attrs string
			if cell.colspan > 1 {
				attrs += fmt.Sprintf(" colspan=\"%d\"", cell.colspan)
			}
			if cell.rowspan > 1 {
				attrs += fmt.Sprintf(" rowspan=\"%d\"", cell.rowspan)
			}
			fmt.Fprintf(&b, "<%s%s>%s</%s>", tag, attrs, gridCellHTML(cell.content), tag)
		}
		b.WriteString("</tr>\n")
	}

	if !inHeader && headerEnd >= 0 {
		b.WriteString("</tbody>\n")
	}
	b.WriteString("</table>")
	return b.String()
}

// detectSpans extracts the rows between consecutive borders and works
// out column and row spans from the junction characters. A missing +
// at a column boundary in the border above a row means the cell spans
// into the next column; a missing separator below means it spans into
// the next row.
func detectSpans(lines []string, cols []int) [][]gridCell {
	if len(cols) < 2 {
		return nil
	}
	numCols := len(cols) - 1

	var borderIdx []int
	for i, line := range lines {
		if isGridBorder(strings.TrimSpace(line)) {
			borderIdx = append(borderIdx, i)
		}
	}
	if len(borderIdx) < 2 {
		return nil
	}

	var rows [][]gridCell

	for bi := 0; bi < len(borderIdx)-1; bi++ {
		start, end := borderIdx[bi], borderIdx[bi+1]

		var contentLines [][]rune
		for _, line := range lines[start+1 : end] {
			if strings.HasPrefix(strings.TrimSpace(line), "|") {
				contentLines = append(contentLines, []rune(line))
			}
		}
		if len(contentLines) == 0 {
			continue
		}

		border := []rune(lines[start])
		nextBorder := []rune(lines[end])
		var row []gridCell

		for col := 0; col < numCols; {
			span := 1
			if pos := cols[col+1]; pos < len(border) && border[pos] != '+' {
				for check := col + 1; check < numCols; check++ {
					if cp := cols[check+1]; cp < len(border) && border[cp] == '+' {
						span = check - col + 1
						break
					}
				}
				if span == 1 {
					span = numCols - col
				}
			}

			cellStart := cols[col] + 1
			cellEnd := cols[col+span]

			var cellLines []string
			for _, r := range contentLines {
				s := min(cellStart, len(r))
				e := min(cellEnd, len(r))
				if s < e {
					cellLines = append(cellLines,
						strings.TrimSpace(strings.TrimRight(string(r[s:e]), "|")))
				}
			}
			content := strings.TrimSpace(strings.Join(cellLines, "\n"))

			// Rowspans deeper than 2 are not detected; the junction scan
			// only looks one border ahead.
			rowspan := 1
			if left := cols[col]; left < len(nextBorder) && nextBorder[left] == '+' {
				hasSeparator := cellStart < len(nextBorder) &&
					(nextBorder[cellStart] == '-' || nextBorder[cellStart] == '=')
				if !hasSeparator {
					rowspan = 2
				}
			}

			row = append(row, gridCell{content: content, colspan: span, rowspan: rowspan})
			col += span
		}

		rows = append(rows, row)
	}

	for rowIdx := range rows {
		for colIdx := range rows[rowIdx] {
			for r := 1; r < rows[rowIdx][colIdx].rowspan; r++ {
				if t := rowIdx + r; t < len(rows) && colIdx < len(rows[t]) {
					rows[t][colIdx].skip = true
				}
			}
		}
	}

	return rows
}

// gridCellHTML renders one cell's collected text: a code-block
// directive, a bullet list, joined multi-line text, or plain inline
// text.
func gridCellHTML(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, ".. code-block::") || strings.HasPrefix(trimmed, ".. code::") {
		return cellCodeBlockHTML(trimmed)
	}
	if strings.HasPrefix(trimmed, "- ") {
		return cellListHTML(trimmed)
	}

	if strings.Contains(trimmed, "\n") {
		lines := strings.Split(trimmed, "\n")
		allBullets := true
		for _, l := range lines {
			if !strings.HasPrefix(strings.TrimSpace(l), "- ") {
				allBullets = false
				break
			}
		}
		if allBullets {
			return cellListHTML(trimmed)
		}
		for i, l := range lines {
			lines[i] = strings.TrimSpace(l)
		}
		return inlineHTML(strings.Join(lines, " "))
	}

	return inlineHTML(trimmed)
}

func cellCodeBlockHTML(content string) string {
	lines := strings.Split(content, "\n")

	first := strings.TrimSpace(lines[0])
	lang := ""
	if pos := strings.LastIndex(first, "::"); pos >= 0 {
		lang = strings.TrimSpace(first[pos+2:])
	}

	rest := lines[1:]
	for len(rest) > 0 && isBlank(rest[0]) {
		rest = rest[1:]
	}
	code := dedent(strings.Join(rest, "\n"))

	langClass := ""
	if lang != "" {
		langClass = fmt.Sprintf(" class=\"language-%s\"", escapeHTML(lang))
	}
	return fmt.Sprintf("<pre><code%s>%s</code></pre>", langClass, escapeHTML(code))
}

func cellListHTML(content string) string {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(trimmed, "- "); ok {
			fmt.Fprintf(&b, "<li>%s</li>", inlineHTML(rest))
		}
	}
	b.WriteString("</ul>")
	return b.String()
}

// alignStyle maps the align option to a table style attribute.
func alignStyle(align string) string {
	switch align {
	case "center":
		return " style=\"margin-left: auto; margin-right: auto;\""
	case "left":
		return " style=\"margin-right: auto;\""
	case "right":
		return " style=\"margin-left: auto;\""
	}
	return ""
}

// csvTableHTML renders the csv-table directive: caption from the
// arguments, optional header row and proportional column widths from
// the options, one body row per content line.
func csvTableHTML(title string, options map[string]string, content string) string {
	var b strings.Builder
	b.Grow(len(content) * 3)
	fmt.Fprintf(&b, "<table class=\"csv-table\"%s>\n", alignStyle(options["align"]))

	if title != "" {
		fmt.Fprintf(&b, "<caption>%s</caption>\n", escapeHTML(title))
	}

	if widths, ok := options["widths"]; ok {
		b.WriteString("<colgroup>\n")
		parts := strings.Split(widths, ",")
		var total float64
		for _, p := range parts {
			if n, err := strconv.ParseFloat(strings.TrimSpace(p), 64); err == nil {
				total += n
			}
		}
		for _, p := range parts {
			if n, err := strconv.ParseFloat(strings.TrimSpace(p), 64); err == nil {
				fmt.Fprintf(&b, "<col style=\"width: %.1f%%\">\n", n/total*100)
			}
		}
		b.WriteString("</colgroup>\n")
	}

	if header, ok := options["header"]; ok {
		b.WriteString("<thead>\n<tr>")
		for _, cell := range parseCSVLine(header) {
			fmt.Fprintf(&b, "<th>%s</th>", inlineHTML(strings.TrimSpace(cell)))
		}
		b.WriteString("</tr>\n</thead>\n")
	}

	b.WriteString("<tbody>\n")
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		b.WriteString("<tr>")
		for _, cell := range parseCSVLine(trimmed) {
			fmt.Fprintf(&b, "<td>%s</td>", inlineHTML(strings.TrimSpace(cell)))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>")
	return b.String()
}

// parseCSVLine splits on commas outside double quotes; the quotes
// themselves are dropped.
func parseCSVLine(line string) []string {
	var cells []string
	var current strings.Builder
	inQuotes := false
	for _, c := range line {
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			cells = append(cells, current.String())
			current.Reset()
		default:
			current.WriteRune(c)
		}
	}
	return append(cells, current.String())
}

// listTableHTML renders the list-table directive: a two-level bullet
// list where each top-level item is a row and each nested item a cell.
func listTableHTML(title string, options map[string]string, content string) string {
	headerRows, _ := strconv.Atoi(options["header-rows"])
	stubColumns, _ := strconv.Atoi(options["stub-columns"])

	var b strings.Builder
	b.Grow(len(content) * 3)
	fmt.Fprintf(&b, "<table class=\"list-table\"%s>\n", alignStyle(options["align"]))

	if title != "" {
		fmt.Fprintf(&b, "<caption>%s</caption>\n", escapeHTML(title))
	}

	if widths, ok := options["widths"]; ok {
		b.WriteString("<colgroup>\n")
		parts := strings.Fields(widths)
		var total float64
		for _, p := range parts {
			if n, err := strconv.ParseFloat(p, 64); err == nil {
				total += n
			}
		}
		for _, p := range parts {
			if n, err := strconv.ParseFloat(p, 64); err == nil {
				fmt.Fprintf(&b, "<col style=\"width: %.1f%%\">\n", n/total*100)
			}
		}
		b.WriteString("</colgroup>\n")
	}

	rows := parseListTableRows(content)

	for rowIdx, row := range rows {
		if rowIdx == 0 && headerRows > 0 {
			b.WriteString("<thead>\n")
		}
		if rowIdx == headerRows && headerRows > 0 {
			b.WriteString("</thead>\n<tbody>\n")
		}

		b.WriteString("<tr>")
		for colIdx, cell := range row {
			isHeader := rowIdx < headerRows
			isStub := colIdx < stubColumns
			tag := "td"
			if isHeader || isStub {
				tag = "th"
			}
			class := ""
			if isStub {
				class = " class=\"stub\""
			}
			fmt.Fprintf(&b, "<%s%s>%s</%s>", tag, class, inlineHTML(strings.TrimSpace(cell)), tag)
		}
		b.WriteString("</tr>\n")
	}

	if headerRows > 0 && len(rows) > 0 {
		b.WriteString("</tbody>\n")
	}
	b.WriteString("</table>")
	return b.String()
}

// parseListTableRows splits list-table content into rows and cells.
// "* -" opens a row with its first cell, "- " opens another cell, and
// other non-blank lines continue the current cell.
func parseListTableRows(content string) [][]string {
	var rows [][]string
	var row []string
	var cell string
	inRow := false

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "* -"):
			if inRow {
				if cell != "" {
					row = append(row, cell)
				}
				rows = append(rows, row)
				row = nil
			}
			inRow = true
			cell = strings.TrimSpace(strings.TrimPrefix(trimmed, "* -"))
		case strings.HasPrefix(trimmed, "- ") && inRow:
			if cell != "" {
				row = append(row, cell)
			}
			cell = strings.TrimSpace(trimmed[2:])
		case inRow && trimmed != "":
			if cell != "" {
				cell += " "
			}
			cell += trimmed
		}
	}

	if inRow {
		if cell != "" {
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	return rows
}
