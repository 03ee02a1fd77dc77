package toolshelf

import (
	"context"
	"os"

	"github.com/agentstation/toolshelf/internal/tools/docs"
	"github.com/agentstation/toolshelf/pkg/catalogs"
	"github.com/agentstation/toolshelf/pkg/errors"
	"github.com/agentstation/toolshelf/pkg/logging"
	"github.com/agentstation/toolshelf/pkg/save"
)

// Render dedupes and sorts the catalog, persists it, then regenerates the
// document section. The catalog is written before rendering starts, so a
// render failure leaves the updated catalog in place and the document
// untouched. The document is only rewritten when its content changes, and
// keeps its mode and any symlink pointing at it. In dry-run mode the
// regenerated document goes to the dry-run writer instead.
func (t *toolshelf) Render(ctx context.Context) (*Report, error) {
	ctx = logging.WithDocument(t.context(ctx, "render"), t.config.documentPath)
	logger := t.logger(ctx)
	report := t.newReport("render")
	report.Document = t.config.documentPath

	store, err := t.update(ctx, report, func(s *catalogs.Store) error {
		if err := t.dedupe(ctx, report)(s); err != nil {
			return err
		}
		return s.Sort(t.config.sortKey, t.config.sortOrder)
	})
	if err != nil {
		return nil, err
	}

	if store.Len() == 0 {
		logger.Warn().Msg("Catalog is empty, nothing to render")
		return report, nil
	}

	info, err := os.Stat(t.config.documentPath)
	if err != nil {
		return nil, errors.WrapIO("stat", t.config.documentPath, err)
	}
	original, err := os.ReadFile(t.config.documentPath)
	if err != nil {
		return nil, errors.WrapIO("read", t.config.documentPath, err)
	}

	gen := t.generator()
	section, err := gen.Render(store.Records())
	if err != nil {
		return nil, err
	}
	start, end := gen.Markers()
	updated, err := docs.Project(string(original), section, start, end)
	if err != nil {
		return nil, err
	}

	report.Section = section
	report.Output = updated
	report.DocumentChanged = updated != string(original)

	if t.config.dryRun {
		if t.config.dryRunOut != nil {
			if err := save.Write([]byte(updated), save.WithWriter(t.config.dryRunOut)); err != nil {
				return nil, err
			}
		}
		return report, nil
	}

	if !report.DocumentChanged {
		logger.Debug().Msg("Document unchanged, skipping write")
		return report, nil
	}

	err = save.Write([]byte(updated),
		save.WithPath(t.config.documentPath),
		save.WithPermissions(info.Mode().Perm()),
	)
	if err != nil {
		return nil, err
	}
	report.DocumentWritten = true
	logger.Info().Int("records", store.Len()).Msg("Document updated")
	t.hooks.documentWritten(t.config.documentPath)

	return report, nil
}
