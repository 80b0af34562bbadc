// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rst

import "testing"

func TestSectionCountersPrefix(t *testing.T) {
	m := newMetadata()
	m.sectnum = true
	var s sectionCounters

	steps := []struct {
		level int
		want  string
	}{
		{1, "1 "},
		{2, "1.1 "},
		{2, "1.2 "},
		{3, "1.2.1 "},
		{1, "2 "},
		{2, "2.1 "},
	}
	for i, st := range steps {
		if got := s.prefix(st.level, m); got != st.want {
			t.Errorf("step %d: prefix(%d) = %#q, want %#q", i, st.level, got, st.want)
		}
	}
}

func TestSectionCountersDepth(t *testing.T) {
	m := newMetadata()
	m.sectnum = true
	m.sectnumDepth = 1
	var s sectionCounters
	if got := s.prefix(1, m); got != "1 " {
		t.Errorf("prefix(1) = %#q, want %#q", got, "1 ")
	}
	if got := s.prefix(2, m); got != "" {
		t.Errorf("prefix(2) beyond depth = %#q, want empty", got)
	}
}

func TestSectionCountersOff(t *testing.T) {
	m := newMetadata()
	var s sectionCounters
	if got := s.prefix(1, m); got != "" {
		t.Errorf("prefix with numbering off = %#q, want empty", got)
	}
}

func TestSectionCountersAffixes(t *testing.T) {
	m := newMetadata()
	m.sectnum = true
	m.sectnumPrefix = "§"
	m.sectnumSuffix = "."
	var s sectionCounters
	if got := s.prefix(1, m); got != "§1. " {
		t.Errorf("prefix(1) = %#q, want %#q", got, "§1. ")
	}
}
