// Package context provides the application context interface for toolshelf
// commands.
//
// The Context interface is the contract between the application layer and
// command implementations. Commands accept it rather than the concrete App,
// so tests can drive them with a MockContext.
//
// Usage in Commands:
//
//	func NewCommand(appCtx context.Context) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            shelf, err := appCtx.Toolshelf()
//	            if err != nil {
//	                return err
//	            }
//	            _, err = shelf.Dedupe(cmd.Context())
//	            return err
//	        },
//	    }
//	}
package context

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/toolshelf"
)

// Context provides what commands need from the application.
//
// Thread Safety: All methods must be safe for concurrent access.
type Context interface {
	// Toolshelf returns a toolshelf configured from the application config.
	// Without options the cached default instance is returned; with options
	// a new instance is built from the config plus the given overrides.
	Toolshelf(opts ...toolshelf.Option) (toolshelf.Toolshelf, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, etc).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
