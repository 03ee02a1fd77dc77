// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import "github.com/spf13/cobra"

// Flags holds the global flags shared by all commands.
type Flags struct {
	Format  string
	Quiet   bool
	Verbose bool
	NoColor bool
}

// Command group IDs shared by the root command and its subcommands.
const (
	GroupCore       = "core"
	GroupManagement = "management"
)

// AddGroups registers the command groups on the root command.
func AddGroups(root *cobra.Command) {
	root.AddGroup(&cobra.Group{ID: GroupCore, Title: "Core Commands:"})
	root.AddGroup(&cobra.Group{ID: GroupManagement, Title: "Management Commands:"})
}

// AddFlags adds the global flags to cmd as persistent flags.
func AddFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}
	cmd.PersistentFlags().StringVarP(&flags.Format, "format", "o", "", "output format: table, json, yaml, wide")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "minimal output")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "disable colored output")
	return flags
}

// Parse extracts global flags from the command hierarchy.
// Subcommands use it to read root persistent flags they were not handed.
func Parse(cmd *cobra.Command) (*Flags, error) {
	root := cmd.Root()

	format, err := root.PersistentFlags().GetString("format")
	if err != nil {
		return nil, err
	}
	quiet, err := root.PersistentFlags().GetBool("quiet")
	if err != nil {
		return nil, err
	}
	verbose, err := root.PersistentFlags().GetBool("verbose")
	if err != nil {
		return nil, err
	}
	noColor, err := root.PersistentFlags().GetBool("no-color")
	if err != nil {
		return nil, err
	}

	return &Flags{
		Format:  format,
		Quiet:   quiet,
		Verbose: verbose,
		NoColor: noColor,
	}, nil
}
