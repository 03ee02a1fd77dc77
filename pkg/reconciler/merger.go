package reconciler

import (
	"unicode"
	"unicode/utf8"

	"github.com/agentstation/toolshelf/pkg/catalogs"
	"github.com/agentstation/toolshelf/pkg/constants"
)

// Merger folds one record into an accumulator sharing its name key.
type Merger interface {
	Merge(acc *catalogs.Record, in catalogs.Record)
}

// defaultMerger implements the union and tie-break rules.
//
//   - links, tags, notes and platforms are unioned; links compare by label and URL
//   - the strictly longer description wins, ties keep the accumulator
//   - a mixed-case name replaces an all-lower one and never the reverse;
//     between names of the same kind the record with the longer description wins
//   - a default category is replaced by any explicit one
type defaultMerger struct{}

// NewMerger returns the default merger.
func NewMerger() Merger {
	return defaultMerger{}
}

// Merge implements Merger.
func (defaultMerger) Merge(acc *catalogs.Record, in catalogs.Record) {
	// Evaluated against the accumulator before either field changes.
	longer := utf8.RuneCountInString(in.Description) > utf8.RuneCountInString(acc.Description)

	accLower, inLower := isLower(acc.Name), isLower(in.Name)
	switch {
	case accLower && !inLower:
		acc.Name = in.Name
	case !accLower && inLower:
	case longer:
		acc.Name = in.Name
	}

	if longer {
		acc.Description = in.Description
	}

	if acc.Category == constants.DefaultCategory && in.Category != "" {
		acc.Category = in.Category
	}

	acc.Links = union(acc.Links, in.Links)
	acc.Tags = union(acc.Tags, in.Tags)
	acc.Notes = union(acc.Notes, in.Notes)
	acc.Platforms = union(acc.Platforms, in.Platforms)
}

// isLower reports whether s has at least one cased letter and no upper-case
// letters. Names without letters are not lower-case.
func isLower(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			return false
		case unicode.IsLower(r):
			cased = true
		}
	}
	return cased
}

// union appends the elements of src missing from dst. dst is never aliased
// with src.
func union[T comparable](dst, src []T) []T {
	seen := make(map[T]struct{}, len(dst)+len(src))
	for _, v := range dst {
		seen[v] = struct{}{}
	}
	for _, v := range src {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		dst = append(dst, v)
	}
	return dst
}
