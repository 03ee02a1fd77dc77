// Package save writes generated artifacts, either to a file or to a writer.
// File writes go through a temporary file and a rename so a crash never
// leaves a truncated catalog or document behind.
package save

import (
	"io"
	"os"

	"github.com/agentstation/toolshelf/pkg/constants"
)

// Options is the configuration for save.
type Options struct {
	path   string
	writer io.Writer
	perm   os.FileMode
}

// Path returns the path for the save options.
func (s *Options) Path() string {
	return s.path
}

// Writer returns the writer for the save options.
func (s *Options) Writer() io.Writer {
	return s.writer
}

// Permissions returns the mode given to newly written files.
func (s *Options) Permissions() os.FileMode {
	return s.perm
}

// Defaults returns the default save options.
func Defaults() *Options {
	return &Options{
		perm: constants.FilePermissions,
	}
}

// Apply applies the given options to the save options.
func (s *Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// Option is a function that configures save options.
type Option func(*Options)

// WithPath for filesystem saves.
func WithPath(path string) Option {
	return func(s *Options) {
		s.path = path
	}
}

// WithWriter for custom outputs. A writer takes precedence over a path.
func WithWriter(w io.Writer) Option {
	return func(s *Options) {
		s.writer = w
	}
}

// WithPermissions sets the file mode for filesystem saves.
func WithPermissions(perm os.FileMode) Option {
	return func(s *Options) {
		s.perm = perm
	}
}
