package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/toolshelf/cmd/toolshelf/cmd/add"
	"github.com/agentstation/toolshelf/cmd/toolshelf/cmd/dedupe"
	"github.com/agentstation/toolshelf/cmd/toolshelf/cmd/list"
	"github.com/agentstation/toolshelf/cmd/toolshelf/cmd/migrate"
	"github.com/agentstation/toolshelf/cmd/toolshelf/cmd/render"
	sortcmd "github.com/agentstation/toolshelf/cmd/toolshelf/cmd/sort"
	"github.com/agentstation/toolshelf/cmd/toolshelf/cmd/validate"
	"github.com/agentstation/toolshelf/cmd/toolshelf/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(render.NewCommand(a))
	rootCmd.AddCommand(dedupe.NewCommand(a))
	rootCmd.AddCommand(sortcmd.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(add.NewCommand(a))
	rootCmd.AddCommand(migrate.NewCommand(a))
	rootCmd.AddCommand(validate.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
}
