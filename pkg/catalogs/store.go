package catalogs

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/toolshelf/pkg/constants"
	"github.com/agentstation/toolshelf/pkg/errors"
	"github.com/agentstation/toolshelf/pkg/logging"
	"github.com/agentstation/toolshelf/pkg/save"
)

// Store owns the in-memory catalog loaded from one file. Every mutating
// operation sets the dirty flag; Save writes only when the flag is set.
//
// A Store is not safe for concurrent use.
type Store struct {
	path    string
	records []Record
	dirty   bool
	logger  *zerolog.Logger
}

type storeOptions struct {
	upgrade bool
	logger  *zerolog.Logger
}

// StoreOption configures how a Store is opened.
type StoreOption func(*storeOptions)

// WithUpgrade migrates records from the flat-tag schema while loading.
func WithUpgrade() StoreOption {
	return func(o *storeOptions) {
		o.upgrade = true
	}
}

// WithLogger sets the logger used for store diagnostics.
func WithLogger(logger *zerolog.Logger) StoreOption {
	return func(o *storeOptions) {
		o.logger = logger
	}
}

func newStoreOptions(opts ...StoreOption) *storeOptions {
	o := &storeOptions{logger: logging.Default()}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logging.Default()
	}
	return o
}

// Open reads, parses and normalizes the catalog at path.
func Open(path string, opts ...StoreOption) (*Store, error) {
	o := newStoreOptions(opts...)

	raws, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []Record
	if o.upgrade {
		records = UpgradeAll(raws)
	} else {
		records = NormalizeAll(raws)
	}

	o.logger.Debug().
		Str("catalog", path).
		Int("records", len(records)).
		Bool("upgrade", o.upgrade).
		Msg("Loaded catalog")

	return &Store{path: path, records: records, logger: o.logger}, nil
}

// NewStore creates a store for path holding records, without reading the file.
// The store starts dirty so the first Save creates the file.
func NewStore(path string, records []Record, opts ...StoreOption) *Store {
	o := newStoreOptions(opts...)
	return &Store{path: path, records: CloneAll(records), dirty: true, logger: o.logger}
}

// Path returns the file the store persists to.
func (s *Store) Path() string {
	return s.path
}

// Records returns a deep copy of the current records.
func (s *Store) Records() []Record {
	return CloneAll(s.records)
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Dirty reports whether the records changed since they were loaded or last saved.
func (s *Store) Dirty() bool {
	return s.dirty
}

// MarkDirty forces the next Save to write.
func (s *Store) MarkDirty() {
	s.setDirty("mark")
}

// Transform applies fn to a copy of the records and keeps the result.
func (s *Store) Transform(reason string, fn func([]Record) []Record) {
	s.records = fn(s.Records())
	s.setDirty(reason)
}

// Add appends a record.
func (s *Store) Add(record Record) {
	s.records = append(s.records, record.Clone())
	s.setDirty("add")
}

// Sort orders the records by key and order and marks the store dirty.
func (s *Store) Sort(key SortKey, order SortOrder) error {
	sorted, err := Sort(s.records, key, order)
	if err != nil {
		return err
	}
	s.records = sorted
	s.setDirty("sort")
	return nil
}

// Save writes the catalog when dirty. It reports whether the file was written.
func (s *Store) Save() (bool, error) {
	if !s.dirty {
		s.logger.Debug().Str("catalog", s.path).Msg("Catalog unchanged, skipping write")
		return false, nil
	}

	data, err := Marshal(s.records)
	if err != nil {
		return false, errors.WrapResource("encode", "catalog", s.path, err)
	}
	if err := save.Write(data, save.WithPath(s.path), save.WithPermissions(constants.FilePermissions)); err != nil {
		return false, err
	}

	s.dirty = false
	s.logger.Debug().Str("catalog", s.path).Int("records", len(s.records)).Msg("Saved catalog")
	return true, nil
}

func (s *Store) setDirty(reason string) {
	if !s.dirty {
		s.logger.Debug().Str("catalog", s.path).Str("reason", reason).Msg("Catalog marked dirty")
	}
	s.dirty = true
}

// Update opens the catalog at path, runs fn, and saves the result if fn
// succeeded and changed anything. When fn fails the in-memory changes are
// discarded and nothing is written.
func Update(path string, fn func(*Store) error, opts ...StoreOption) (store *Store, written bool, err error) {
	store, err = Open(path, opts...)
	if err != nil {
		return nil, false, err
	}

	if err := fn(store); err != nil {
		store.logger.Debug().Err(err).Str("catalog", path).Msg("Discarding catalog changes")
		return nil, false, err
	}

	written, err = store.Save()
	if err != nil {
		return nil, false, err
	}
	return store, written, nil
}
