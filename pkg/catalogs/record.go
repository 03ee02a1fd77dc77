package catalogs

import (
	"strings"

	"github.com/agentstation/toolshelf/pkg/constants"
)

// Record is one catalog entry describing a named tool.
// Field order matches the persisted JSON layout.
type Record struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Platforms   []Platform `json:"platforms"`
	Tags        []string   `json:"tags"`
	Notes       []string   `json:"notes"`
	Links       []Link     `json:"urls"`
}

// Link is a labeled URL attached to a record.
type Link struct {
	Label string `json:"name"`
	URL   string `json:"url"`
}

// String renders the link as label(url), or the bare URL when unlabeled.
func (l Link) String() string {
	if l.Label == "" {
		return l.URL
	}
	return l.Label + "(" + l.URL + ")"
}

// IsHome reports whether the link carries the reserved home label.
func (l Link) IsHome() bool {
	return l.Label == constants.HomeLinkLabel
}

// Key returns the case-insensitive identity used for merging and sorting.
func (r Record) Key() string {
	return strings.ToLower(r.Name)
}

// Home returns the first link labeled "home".
func (r Record) Home() (Link, bool) {
	for _, link := range r.Links {
		if link.IsHome() {
			return link, true
		}
	}
	return Link{}, false
}

// HomeCount returns how many links carry the home label.
func (r Record) HomeCount() int {
	n := 0
	for _, link := range r.Links {
		if link.IsHome() {
			n++
		}
	}
	return n
}

// OtherLinks returns every link that is not a home link, in order.
func (r Record) OtherLinks() []Link {
	var others []Link
	for _, link := range r.Links {
		if !link.IsHome() {
			others = append(others, link)
		}
	}
	return others
}

// Clone returns a deep copy of the record. Empty slices stay empty (not nil)
// so the persisted shape is preserved.
func (r Record) Clone() Record {
	c := r
	c.Platforms = cloneSlice(r.Platforms)
	c.Tags = cloneSlice(r.Tags)
	c.Notes = cloneSlice(r.Notes)
	c.Links = cloneSlice(r.Links)
	return c
}

// CloneAll deep-copies a slice of records.
func CloneAll(records []Record) []Record {
	if records == nil {
		return nil
	}
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
