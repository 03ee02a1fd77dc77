// Package toolshelf maintains a curated catalog of tools stored as a JSON
// array and projects it into the marker-bounded section of a markdown
// document.
//
// A Toolshelf sequences the building blocks in pkg/catalogs, pkg/reconciler
// and internal/tools/docs: load and normalize the catalog, merge duplicate
// records, sort, render, splice into the document, and persist whatever
// changed.
package toolshelf

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/toolshelf/internal/tools/docs"
	"github.com/agentstation/toolshelf/pkg/catalogs"
	"github.com/agentstation/toolshelf/pkg/errors"
	"github.com/agentstation/toolshelf/pkg/logging"
)

// Toolshelf runs catalog maintenance operations against one catalog file
// and one target document.
type Toolshelf interface {
	// Records returns the normalized catalog
	Records(ctx context.Context) ([]catalogs.Record, error)

	// Dedupe merges records sharing a case-insensitive name and persists the result
	Dedupe(ctx context.Context) (*Report, error)

	// Sort orders the catalog by key and order and persists the result
	Sort(ctx context.Context, key, order string) (*Report, error)

	// Migrate upgrades a flat-tag catalog so platforms live in their own field
	Migrate(ctx context.Context) (*Report, error)

	// Render dedupes and sorts the catalog, then regenerates the document section
	Render(ctx context.Context) (*Report, error)

	// Validate reports records and documents that would fail to render
	Validate(ctx context.Context) ([]Issue, error)

	// Add appends a new record to the catalog
	Add(ctx context.Context, raw catalogs.RawRecord) (*Report, error)

	// OnRecordsMerged registers a callback for each group of merged duplicates
	OnRecordsMerged(RecordsMergedHook)

	// OnCatalogSaved registers a callback for when the catalog file is written
	OnCatalogSaved(CatalogSavedHook)

	// OnDocumentWritten registers a callback for when the document is written
	OnDocumentWritten(DocumentWrittenHook)
}

// toolshelf is the internal implementation of the Toolshelf interface
type toolshelf struct {
	config *config
	hooks  *hooks
}

// New creates a new Toolshelf with the given options.
func New(opts ...Option) (Toolshelf, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &toolshelf{
		config: cfg,
		hooks:  newHooks(),
	}, nil
}

// context prepares ctx for an operation: the configured logger, when set,
// replaces the one carried by ctx, and the catalog and operation are added
// as fields.
func (t *toolshelf) context(ctx context.Context, operation string) context.Context {
	if t.config.logger != nil {
		ctx = logging.WithLogger(ctx, t.config.logger)
	}
	ctx = logging.WithCatalog(ctx, t.config.catalogPath)
	return logging.WithOperation(ctx, operation)
}

func (t *toolshelf) logger(ctx context.Context) *zerolog.Logger {
	return logging.FromContext(ctx)
}

// storeOptions returns the catalog store options shared by every operation.
func (t *toolshelf) storeOptions(ctx context.Context, extra ...catalogs.StoreOption) []catalogs.StoreOption {
	return append([]catalogs.StoreOption{catalogs.WithLogger(t.logger(ctx))}, extra...)
}

// generator builds the document generator from the configuration.
func (t *toolshelf) generator() *docs.Generator {
	return docs.New(
		docs.WithMode(t.config.mode),
		docs.WithTags(t.config.tags),
		docs.WithNotes(t.config.notes),
		docs.WithMarkers(t.config.startMarker, t.config.endMarker),
	)
}

// Records returns the normalized catalog.
func (t *toolshelf) Records(ctx context.Context) ([]catalogs.Record, error) {
	ctx = t.context(ctx, "records")
	store, err := catalogs.Open(t.config.catalogPath, t.storeOptions(ctx)...)
	if err != nil {
		return nil, err
	}
	return store.Records(), nil
}

// Add appends a record. A record whose name matches an existing one
// (ignoring case) is rejected; run Dedupe to merge instead.
func (t *toolshelf) Add(ctx context.Context, raw catalogs.RawRecord) (*Report, error) {
	record := catalogs.Normalize(raw)
	if record.Name == "" {
		return nil, errors.NewValidationError("name", raw.Name, "cannot be empty")
	}

	ctx = t.context(ctx, "add")
	report := t.newReport("add")
	_, err := t.update(ctx, report, func(s *catalogs.Store) error {
		for _, existing := range s.Records() {
			if existing.Key() == record.Key() {
				return errors.NewValidationError("name", record.Name, "already exists as "+existing.Name)
			}
		}
		s.Add(record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
