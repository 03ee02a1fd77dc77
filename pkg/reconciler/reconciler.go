// Package reconciler merges catalog records that describe the same tool.
// Records are grouped by their case-insensitive name and each group is
// folded into a single record: links, tags, notes and platforms are unioned
// while the display name and description follow deterministic tie-breaks.
package reconciler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/toolshelf/pkg/catalogs"
	"github.com/agentstation/toolshelf/pkg/logging"
)

// Reconciler deduplicates catalog records.
type Reconciler interface {
	// Records merges records sharing a name key. Output order is the order in
	// which each key was first seen. The input is never modified.
	Records(ctx context.Context, records []catalogs.Record) *Result
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	merger Merger
	logger *zerolog.Logger
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &reconciler{
		merger: options.merger,
		logger: options.logger,
	}, nil
}

// Reconcile merges records with the default merger.
func Reconcile(records []catalogs.Record) []catalogs.Record {
	r := &reconciler{merger: NewMerger(), logger: logging.Default()}
	return r.Records(context.Background(), records).Records
}

// Records performs reconciliation in a single pass over records.
func (r *reconciler) Records(ctx context.Context, records []catalogs.Record) *Result {
	logger := r.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}

	start := time.Now()
	index := make(map[string]int, len(records))
	merged := make([]catalogs.Record, 0, len(records))
	groups := make([]Group, 0, len(records))

	for _, rec := range records {
		key := rec.Key()
		i, seen := index[key]
		if !seen {
			index[key] = len(merged)
			merged = append(merged, rec.Clone())
			groups = append(groups, Group{Key: key, Names: []string{rec.Name}})
			continue
		}

		r.merger.Merge(&merged[i], rec)
		groups[i].Names = append(groups[i].Names, rec.Name)
	}

	for i := range groups {
		groups[i].Name = merged[i].Name
		if groups[i].Merged() {
			logger.Debug().
				Str("key", groups[i].Key).
				Str("name", groups[i].Name).
				Int("count", len(groups[i].Names)).
				Msg("Merged duplicate records")
		}
	}

	end := time.Now()
	result := &Result{
		Records: merged,
		Groups:  groups,
		Metadata: ResultMetadata{
			StartTime: start,
			EndTime:   end,
			Duration:  end.Sub(start),
			Stats: ResultStatistics{
				RecordsIn:  len(records),
				RecordsOut: len(merged),
			},
		},
	}
	for _, g := range groups {
		if g.Merged() {
			result.Metadata.Stats.GroupsMerged++
		}
	}

	logger.Debug().
		Int("in", result.Metadata.Stats.RecordsIn).
		Int("out", result.Metadata.Stats.RecordsOut).
		Dur("duration", result.Metadata.Duration).
		Msg("Reconciled records")

	return result
}
