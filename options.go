package toolshelf

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/toolshelf/internal/tools/docs"
	"github.com/agentstation/toolshelf/pkg/catalogs"
	"github.com/agentstation/toolshelf/pkg/constants"
	"github.com/agentstation/toolshelf/pkg/errors"
)

// config holds the settings of a Toolshelf instance
type config struct {
	catalogPath  string
	documentPath string
	migratePath  string

	startMarker string
	endMarker   string

	mode  docs.Mode
	tags  bool
	notes bool

	sortKey   catalogs.SortKey
	sortOrder catalogs.SortOrder

	dryRun    bool
	dryRunOut io.Writer

	logger *zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		catalogPath:  constants.DefaultCatalogPath,
		documentPath: constants.DefaultDocumentPath,
		startMarker:  constants.StartMarker,
		endMarker:    constants.EndMarker,
		mode:         docs.ModeTable,
		sortKey:      catalogs.SortKeyName,
		sortOrder:    catalogs.SortAsc,
	}
}

func (c *config) validate() error {
	if c.catalogPath == "" {
		return errors.NewConfigError("catalog", "path cannot be empty", nil)
	}
	if c.startMarker == "" || c.endMarker == "" {
		return errors.NewConfigError("markers", "start and end markers cannot be empty", nil)
	}
	if c.startMarker == c.endMarker {
		return errors.NewConfigError("markers", "start and end markers must differ", nil)
	}
	return nil
}

// Option is a function that configures a Toolshelf instance
type Option func(*config) error

// WithCatalogPath sets the catalog file.
func WithCatalogPath(path string) Option {
	return func(c *config) error {
		c.catalogPath = path
		return nil
	}
}

// WithDocumentPath sets the document rendered into.
func WithDocumentPath(path string) Option {
	return func(c *config) error {
		c.documentPath = path
		return nil
	}
}

// WithMigrateOutput writes migrated catalogs to path instead of overwriting
// the source catalog.
func WithMigrateOutput(path string) Option {
	return func(c *config) error {
		c.migratePath = path
		return nil
	}
}

// WithMarkers overrides the delimiters of the generated document section.
func WithMarkers(start, end string) Option {
	return func(c *config) error {
		c.startMarker = start
		c.endMarker = end
		return nil
	}
}

// WithRenderMode selects table or list rendering.
func WithRenderMode(mode string) Option {
	return func(c *config) error {
		m, err := docs.ParseMode(mode)
		if err != nil {
			return err
		}
		c.mode = m
		return nil
	}
}

// WithRenderTags includes tags in the rendered section.
func WithRenderTags(enabled bool) Option {
	return func(c *config) error {
		c.tags = enabled
		return nil
	}
}

// WithRenderNotes includes notes in the rendered section.
func WithRenderNotes(enabled bool) Option {
	return func(c *config) error {
		c.notes = enabled
		return nil
	}
}

// WithSortOrder sets the order used when rendering sorts the catalog.
func WithSortOrder(order string) Option {
	return func(c *config) error {
		o, err := catalogs.ParseSortOrder(order)
		if err != nil {
			return err
		}
		c.sortOrder = o
		return nil
	}
}

// WithDryRun computes every change without writing files. Generated
// documents are written to w instead, when w is non-nil.
func WithDryRun(w io.Writer) Option {
	return func(c *config) error {
		c.dryRun = true
		c.dryRunOut = w
		return nil
	}
}

// WithLogger sets the logger. When unset the logger is taken from the context.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
