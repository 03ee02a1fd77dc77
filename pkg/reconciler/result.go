package reconciler

import (
	"fmt"
	"time"

	"github.com/agentstation/toolshelf/pkg/catalogs"
)

// Result represents the outcome of a reconciliation.
type Result struct {
	// Records holds one record per name key, in first-seen order.
	Records []catalogs.Record

	// Groups describes each output record, index-aligned with Records.
	Groups []Group

	// Metadata about the run
	Metadata ResultMetadata
}

// Group lists the input names folded into one output record.
type Group struct {
	Key   string   `json:"key" yaml:"key"`     // lower-cased name shared by the group
	Name  string   `json:"name" yaml:"name"`   // display name after merging
	Names []string `json:"names" yaml:"names"` // input names in encounter order
}

// Merged reports whether more than one input record formed the group.
func (g Group) Merged() bool {
	return len(g.Names) > 1
}

// ResultMetadata contains metadata about the reconciliation process.
type ResultMetadata struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Stats     ResultStatistics
}

// ResultStatistics contains statistics about the reconciliation.
type ResultStatistics struct {
	RecordsIn    int
	RecordsOut   int
	GroupsMerged int
}

// Changed reports whether any records were merged away.
func (r *Result) Changed() bool {
	return r.Metadata.Stats.RecordsOut != r.Metadata.Stats.RecordsIn
}

// MergedGroups returns only the groups built from duplicates.
func (r *Result) MergedGroups() []Group {
	var out []Group
	for _, g := range r.Groups {
		if g.Merged() {
			out = append(out, g)
		}
	}
	return out
}

// Summary returns a one-line description of the result.
func (r *Result) Summary() string {
	s := r.Metadata.Stats
	return fmt.Sprintf("%d records in, %d out, %d merged groups", s.RecordsIn, s.RecordsOut, s.GroupsMerged)
}
