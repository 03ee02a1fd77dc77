package toolshelf

import (
	"context"
	"fmt"

	"github.com/agentstation/toolshelf/pkg/catalogs"
	"github.com/agentstation/toolshelf/pkg/reconciler"
)

// Report describes what an operation changed.
type Report struct {
	Operation string `json:"operation" yaml:"operation"`
	Catalog   string `json:"catalog" yaml:"catalog"`
	Records   int    `json:"records" yaml:"records"`
	DryRun    bool   `json:"dry_run" yaml:"dry_run"`

	// Merged lists the groups of duplicates folded together, if any
	Merged []reconciler.Group `json:"merged,omitempty" yaml:"merged,omitempty"`

	CatalogChanged bool `json:"catalog_changed" yaml:"catalog_changed"`
	CatalogWritten bool `json:"catalog_written" yaml:"catalog_written"`

	Document        string `json:"document,omitempty" yaml:"document,omitempty"`
	DocumentChanged bool   `json:"document_changed" yaml:"document_changed"`
	DocumentWritten bool   `json:"document_written" yaml:"document_written"`

	// Section is the rendered markdown placed between the markers
	Section string `json:"-" yaml:"-"`
	// Output is the full regenerated document
	Output string `json:"-" yaml:"-"`
}

// Summary returns a one-line description of the report.
func (r *Report) Summary() string {
	s := fmt.Sprintf("%s: %d records", r.Operation, r.Records)
	if len(r.Merged) > 0 {
		s += fmt.Sprintf(", %d merged", len(r.Merged))
	}
	switch {
	case r.CatalogWritten:
		s += ", catalog saved"
	case r.CatalogChanged:
		s += ", catalog changed"
	default:
		s += ", catalog unchanged"
	}
	if r.Document != "" {
		switch {
		case r.DocumentWritten:
			s += ", document updated"
		case r.DocumentChanged:
			s += ", document changed"
		default:
			s += ", document unchanged"
		}
	}
	if r.DryRun {
		s += " (dry run)"
	}
	return s
}

func (t *toolshelf) newReport(operation string) *Report {
	return &Report{
		Operation: operation,
		Catalog:   t.config.catalogPath,
		DryRun:    t.config.dryRun,
	}
}

// update runs fn against the catalog as one scoped change. In dry-run mode
// the catalog is opened and modified in memory only.
func (t *toolshelf) update(ctx context.Context, report *Report, fn func(*catalogs.Store) error, extra ...catalogs.StoreOption) (*catalogs.Store, error) {
	opts := t.storeOptions(ctx, extra...)

	if t.config.dryRun {
		store, err := catalogs.Open(t.config.catalogPath, opts...)
		if err != nil {
			return nil, err
		}
		if err := fn(store); err != nil {
			return nil, err
		}
		report.Records = store.Len()
		report.CatalogChanged = store.Dirty()
		return store, nil
	}

	store, written, err := catalogs.Update(t.config.catalogPath, fn, opts...)
	if err != nil {
		return nil, err
	}
	t.finishCatalog(ctx, report, store, written)
	return store, nil
}

// finishCatalog records a successful catalog write and fires hooks.
func (t *toolshelf) finishCatalog(ctx context.Context, report *Report, store *catalogs.Store, written bool) {
	report.Catalog = store.Path()
	report.Records = store.Len()
	report.CatalogChanged = written
	report.CatalogWritten = written

	for _, g := range report.Merged {
		t.hooks.recordsMerged(g.Name, len(g.Names))
	}
	if written {
		t.logger(ctx).Info().
			Str("catalog", store.Path()).
			Int("records", store.Len()).
			Msg("Catalog saved")
		t.hooks.catalogSaved(store.Path())
	}
}
