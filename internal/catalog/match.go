// Package catalog implements the case study filter engine, the relation
// resolver and the local recommender.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// TagMatcher reports whether a requested impact tag matches one of a case
// study's own tags. Both tags are already case-folded.
type TagMatcher func(requested, own string) bool

// folder case-folds strings. Not safe for concurrent use.
type folder struct {
	c cases.Caser
}

func newFolder() *folder {
	return &folder{c: cases.Fold()}
}

func (f *folder) fold(s string) string {
	return f.c.String(s)
}

func (f *folder) foldAll(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = f.fold(v)
	}
	return out
}

// SubstringMatch matches when either folded tag contains the other.
//
// "it" matches "digital transformation".
func SubstringMatch(requested, own string) bool {
	return strings.Contains(own, requested) || strings.Contains(requested, own)
}

// ExactMatch matches when both folded tags are equal.
func ExactMatch(requested, own string) bool {
	return requested == own
}
