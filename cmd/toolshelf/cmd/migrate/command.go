// Package migrate implements the migrate command.
package migrate

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/toolshelf"
	appcontext "github.com/agentstation/toolshelf/cmd/toolshelf/context"
	"github.com/agentstation/toolshelf/internal/cmd/globals"
	"github.com/agentstation/toolshelf/internal/cmd/report"
)

// NewCommand creates the migrate command.
func NewCommand(app appcontext.Context) *cobra.Command {
	var (
		out    string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:     "migrate",
		GroupID: globals.GroupManagement,
		Short:   "Upgrade a catalog that keeps platforms in its tags",
		Long: `Migrate moves platform names (linux, mac, windows, android, ios) out of
each record's tags and into its platforms. Records with no platform tag
are marked as available on every platform.`,
		Example: `  toolshelf migrate                            # Upgrade tools.json in place
  toolshelf migrate --output tools_migrated.json
  toolshelf migrate --dry-run                  # Print the upgraded catalog`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []toolshelf.Option
			if out != "" {
				opts = append(opts, toolshelf.WithMigrateOutput(out))
			}
			if dryRun {
				opts = append(opts, toolshelf.WithDryRun(cmd.OutOrStdout()))
			}

			shelf, err := app.Toolshelf(opts...)
			if err != nil {
				return err
			}

			r, err := shelf.Migrate(cmd.Context())
			if err != nil {
				return err
			}
			if dryRun {
				return nil
			}
			return report.Print(cmd, r)
		},
	}

	cmd.Flags().StringVar(&out, "output", "", "write the upgraded catalog here instead of over the source")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the upgraded catalog without writing")

	return cmd
}
