package toolshelf

import (
	"context"

	"github.com/agentstation/toolshelf/pkg/catalogs"
	"github.com/agentstation/toolshelf/pkg/reconciler"
	"github.com/agentstation/toolshelf/pkg/save"
)

// dedupe returns a store transformation that merges duplicate records and
// notes the merged groups on report.
func (t *toolshelf) dedupe(ctx context.Context, report *Report) func(*catalogs.Store) error {
	return func(s *catalogs.Store) error {
		r, err := reconciler.New(reconciler.WithLogger(t.logger(ctx)))
		if err != nil {
			return err
		}
		s.Transform("dedupe", func(records []catalogs.Record) []catalogs.Record {
			result := r.Records(ctx, records)
			report.Merged = result.MergedGroups()
			return result.Records
		})
		return nil
	}
}

// Dedupe merges records sharing a case-insensitive name.
func (t *toolshelf) Dedupe(ctx context.Context) (*Report, error) {
	ctx = t.context(ctx, "dedupe")
	report := t.newReport("dedupe")

	if _, err := t.update(ctx, report, t.dedupe(ctx, report)); err != nil {
		return nil, err
	}
	return report, nil
}

// Sort orders the catalog. Unknown keys and orders fail before the catalog
// is read.
func (t *toolshelf) Sort(ctx context.Context, key, order string) (*Report, error) {
	sortKey, err := catalogs.ParseSortKey(key)
	if err != nil {
		return nil, err
	}
	sortOrder, err := catalogs.ParseSortOrder(order)
	if err != nil {
		return nil, err
	}

	ctx = t.context(ctx, "sort")
	report := t.newReport("sort")
	_, err = t.update(ctx, report, func(s *catalogs.Store) error {
		return s.Sort(sortKey, sortOrder)
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Migrate upgrades a catalog from the flat-tag schema. The result is written
// to the migrate output when one is configured, otherwise over the source.
func (t *toolshelf) Migrate(ctx context.Context) (*Report, error) {
	ctx = t.context(ctx, "migrate")
	report := t.newReport("migrate")

	store, err := catalogs.Open(t.config.catalogPath, t.storeOptions(ctx, catalogs.WithUpgrade())...)
	if err != nil {
		return nil, err
	}

	if target := t.config.migratePath; target != "" && target != t.config.catalogPath {
		store = catalogs.NewStore(target, store.Records(), t.storeOptions(ctx)...)
	} else {
		store.MarkDirty()
	}

	if t.config.dryRun {
		report.Catalog = store.Path()
		report.Records = store.Len()
		report.CatalogChanged = true
		if t.config.dryRunOut != nil {
			data, err := catalogs.Marshal(store.Records())
			if err != nil {
				return nil, err
			}
			if err := save.Write(data, save.WithWriter(t.config.dryRunOut)); err != nil {
				return nil, err
			}
		}
		return report, nil
	}

	written, err := store.Save()
	if err != nil {
		return nil, err
	}
	t.finishCatalog(ctx, report, store, written)
	return report, nil
}
