// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import (
	"fmt"
	"strconv"
	"strings"
)

// sectionCounters tracks the per-level numbering state used when the
// sectnum directive is active. Index 0 is unused; levels index
// directly.
type sectionCounters []int

// prefix returns the "1.2.3 " numbering prefix for a heading at the
// given level, advancing this level's counter and zeroing all deeper
// ones. It returns "" when numbering is off or the level is deeper
// than the configured depth.
func (s *sectionCounters) prefix(level int, m *metadata) string {
	if !m.sectnum || level > m.sectnumDepth {
		return ""
	}
	for len(*s) <= level {
		*s = append(*s, 0)
	}
	(*s)[level]++
	for j := level + 1; j < len(*s); j++ {
		(*s)[j] = 0
	}
	parts := make([]string, 0, level)
	for j := 1; j <= level; j++ {
		parts = append(parts, strconv.Itoa((*s)[j]))
	}
	return m.sectnumPrefix + strings.Join(parts, ".") + m.sectnumSuffix + " "
}

func writeHeading(b *strings.Builder, level int, slug, prefix, title string) {
	fmt.Fprintf(b, `<h%d id="%s">%s%s</h%d>`+"\n", level, slug, prefix, title, level)
}
