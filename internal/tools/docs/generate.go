package docs

import (
	"fmt"
	"strings"

	"github.com/agentstation/toolshelf/pkg/catalogs"
	"github.com/agentstation/toolshelf/pkg/constants"
	"github.com/agentstation/toolshelf/pkg/errors"
)

// Mode selects the rendered form of the catalog.
type Mode string

// Render modes.
const (
	ModeTable Mode = constants.RenderModeTable
	ModeList  Mode = constants.RenderModeList
)

// ParseMode validates a render mode name.
func ParseMode(s string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ModeTable, ModeList:
		return mode, nil
	default:
		return "", errors.NewConfigError("render", fmt.Sprintf("unknown render mode %q: must be table or list", s), nil)
	}
}

// Generator renders records and projects them into documents.
type Generator struct {
	mode    Mode
	options Options
	start   string
	end     string
}

// Option is a functional option for configuring the Generator.
type Option func(*Generator)

// WithMode sets the render mode.
func WithMode(mode Mode) Option {
	return func(g *Generator) {
		g.mode = mode
	}
}

// WithTags enables the tags column or line.
func WithTags(enabled bool) Option {
	return func(g *Generator) {
		g.options.Tags = enabled
	}
}

// WithNotes enables the notes column or line.
func WithNotes(enabled bool) Option {
	return func(g *Generator) {
		g.options.Notes = enabled
	}
}

// WithMarkers overrides the section delimiters.
func WithMarkers(start, end string) Option {
	return func(g *Generator) {
		g.start = start
		g.end = end
	}
}

// New creates a new documentation generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		mode:  ModeTable,
		start: constants.StartMarker,
		end:   constants.EndMarker,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Mode returns the configured render mode.
func (g *Generator) Mode() Mode {
	return g.mode
}

// Markers returns the configured start and end markers.
func (g *Generator) Markers() (start, end string) {
	return g.start, g.end
}

// Render renders records in the configured mode.
func (g *Generator) Render(records []catalogs.Record) (string, error) {
	switch g.mode {
	case ModeTable:
		return RenderTable(records, g.options)
	case ModeList:
		return RenderList(records, g.options)
	default:
		return "", errors.NewConfigError("render", fmt.Sprintf("unknown render mode %q", g.mode), nil)
	}
}

// Generate renders records and splices them into document. On failure the
// returned text is empty and document should be left as it was.
func (g *Generator) Generate(records []catalogs.Record, document string) (string, error) {
	section, err := g.Render(records)
	if err != nil {
		return "", err
	}
	return Project(document, section, g.start, g.end)
}
