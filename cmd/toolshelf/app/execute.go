package app

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/toolshelf/internal/cmd/globals"
	"github.com/agentstation/toolshelf/internal/cmd/notify"
	"github.com/agentstation/toolshelf/internal/cmd/output"
	"github.com/agentstation/toolshelf/pkg/errors"
)

// Execute runs the toolshelf CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "toolshelf",
		Short:   "Curated tool catalog maintenance",
		Version: a.version,
		Long: `Toolshelf maintains a curated catalog of tools stored as a JSON array.

It normalizes records, merges case-insensitive duplicates, sorts the
catalog and renders it as markdown into the marker-bounded section of a
document such as a README.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	globals.AddGroups(rootCmd)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.config.ConfigFile, "config", "", "config file (default is ./.toolshelf.yaml or $HOME/.toolshelf.yaml)")
	flags.StringVar(&a.config.CatalogPath, "catalog", a.config.CatalogPath, "catalog JSON file")
	flags.StringVar(&a.config.DocumentPath, "document", a.config.DocumentPath, "markdown document to render into")
	flags.BoolVarP(&a.config.Verbose, "verbose", "v", a.config.Verbose, "verbose output (shortcut for --log-level=debug)")
	flags.BoolVarP(&a.config.Quiet, "quiet", "q", a.config.Quiet, "minimal output (shortcut for --log-level=warn)")
	flags.BoolVar(&a.config.NoColor, "no-color", a.config.NoColor, "disable colored output")
	flags.StringVarP(&a.config.Format, "format", "o", a.config.Format, "output format: table, json, yaml, wide")
	flags.StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("toolshelf {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. An explicit --config
// file is loaded here, after which flags set on the command line are
// applied over it.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if path := mustGetString(cmd, "config"); path != "" {
		config, err := LoadConfigFile(path)
		if err != nil {
			return errors.WrapResource("load", "config", path, err)
		}
		a.applyFlags(cmd, config)
		a.config = config
	}

	a.reset()
	return nil
}

// applyFlags copies the global flags that were set on the command line
// onto config.
func (a *App) applyFlags(cmd *cobra.Command, config *Config) {
	changed := cmd.Flags().Changed

	if changed("catalog") {
		config.CatalogPath = mustGetString(cmd, "catalog")
	}
	if changed("document") {
		config.DocumentPath = mustGetString(cmd, "document")
	}
	if changed("verbose") {
		config.Verbose = mustGetBool(cmd, "verbose")
	}
	if changed("quiet") {
		config.Quiet = mustGetBool(cmd, "quiet")
	}
	if changed("no-color") {
		config.NoColor = mustGetBool(cmd, "no-color")
	}
	if changed("format") {
		config.Format = mustGetString(cmd, "format")
	}
	config.LogLevel = mustGetString(cmd, "log-level")
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_ = writeError(os.Stderr, err)
		os.Exit(1)
	}
}

// writeError prints err as an error alert with a fix-up hint when the
// failure came from the catalog or document.
func writeError(w io.Writer, err error) error {
	n := notify.New(notify.Config{
		OutputFormat: string(output.FormatTable),
		ShowAlerts:   true,
		AlertWriter:  w,
		UseColor:     true,
	})
	return n.Failure(err)
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
