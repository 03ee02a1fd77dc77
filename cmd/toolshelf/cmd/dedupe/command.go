// Package dedupe implements the dedupe command.
package dedupe

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/toolshelf"
	appcontext "github.com/agentstation/toolshelf/cmd/toolshelf/context"
	"github.com/agentstation/toolshelf/internal/cmd/globals"
	"github.com/agentstation/toolshelf/internal/cmd/report"
)

// NewCommand creates the dedupe command.
func NewCommand(app appcontext.Context) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "dedupe",
		GroupID: globals.GroupCore,
		Short:   "Merge records that share a name",
		Long: `Dedupe merges catalog records whose names match ignoring case.

Links, tags, notes and platforms are unioned. The longer description wins,
a mixed-case name is preferred over an all-lowercase one, and the first
occurrence keeps its position in the catalog.`,
		Example: `  toolshelf dedupe                 # Merge duplicates in tools.json
  toolshelf dedupe --dry-run       # Show what would be merged
  toolshelf dedupe -o json         # Print the report as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []toolshelf.Option
			if dryRun {
				opts = append(opts, toolshelf.WithDryRun(nil))
			}

			shelf, err := app.Toolshelf(opts...)
			if err != nil {
				return err
			}

			r, err := shelf.Dedupe(cmd.Context())
			if err != nil {
				return err
			}
			return report.Print(cmd, r)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report merges without writing the catalog")

	return cmd
}
