// Package sort implements the sort command.
package sort

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/toolshelf"
	appcontext "github.com/agentstation/toolshelf/cmd/toolshelf/context"
	"github.com/agentstation/toolshelf/internal/cmd/globals"
	"github.com/agentstation/toolshelf/internal/cmd/output"
	"github.com/agentstation/toolshelf/internal/cmd/report"
	"github.com/agentstation/toolshelf/pkg/catalogs"
)

// previewLimit is how many records a dry run prints.
const previewLimit = 10

// NewCommand creates the sort command.
func NewCommand(app appcontext.Context) *cobra.Command {
	var (
		by     string
		order  string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:     "sort",
		GroupID: globals.GroupCore,
		Short:   "Sort the catalog",
		Long: `Sort orders catalog records by name, ignoring case. The sort is stable,
so records with equal keys keep their relative order.`,
		Example: `  toolshelf sort                   # Sort by name, ascending
  toolshelf sort --order desc      # Sort by name, descending
  toolshelf sort --dry-run         # Preview the first records`,
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

			r, err := shelf.Sort(cmd.Context(), by, order)
			if err != nil {
				return err
			}

			if dryRun {
				if err := preview(cmd, app, shelf, by, order); err != nil {
					return err
				}
			}
			return report.Print(cmd, r)
		},
	}

	cmd.Flags().StringVar(&by, "by", string(catalogs.SortKeyName), "sort key")
	cmd.Flags().StringVar(&order, "order", "asc", "sort order: asc or desc")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the first records in sorted order without writing")

	return cmd
}

// preview prints the first records as they would be ordered.
func preview(cmd *cobra.Command, app appcontext.Context, shelf toolshelf.Toolshelf, by, order string) error {
	records, err := shelf.Records(cmd.Context())
	if err != nil {
		return err
	}
	key, err := catalogs.ParseSortKey(by)
	if err != nil {
		return err
	}
	o, err := catalogs.ParseSortOrder(order)
	if err != nil {
		return err
	}
	sorted, err := catalogs.Sort(records, key, o)
	if err != nil {
		return err
	}
	if len(sorted) > previewLimit {
		sorted = sorted[:previewLimit]
	}

	format := output.DetectFormat(app.OutputFormat())
	var data any = sorted
	if format == output.FormatTable || format == output.FormatWide {
		data = output.RecordsToData(sorted)
	}
	return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
}
