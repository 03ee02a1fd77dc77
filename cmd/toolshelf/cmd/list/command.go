// Package list implements the list command.
package list

import (
	"strings"

	"github.com/spf13/cobra"

	appcontext "github.com/agentstation/toolshelf/cmd/toolshelf/context"
	"github.com/agentstation/toolshelf/internal/cmd/globals"
	"github.com/agentstation/toolshelf/internal/cmd/output"
	"github.com/agentstation/toolshelf/pkg/catalogs"
)

// Flags holds the list command flags.
type Flags struct {
	Search   string
	Category string
	Platform string
	Tag      string
	Limit    int
}

// NewCommand creates the list command.
func NewCommand(app appcontext.Context) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: globals.GroupCore,
		Short:   "List catalog records",
		Aliases: []string{"ls"},
		Example: `  toolshelf list                      # List every record
  toolshelf list --search git         # Records whose name contains "git"
  toolshelf list --platform windows   # Records available on Windows
  toolshelf list -o wide              # Include platforms, tags and links`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shelf, err := app.Toolshelf()
			if err != nil {
				return err
			}

			records, err := shelf.Records(cmd.Context())
			if err != nil {
				return err
			}
			records = Filter(records, flags)

			app.Logger().Debug().Int("records", len(records)).Msg("Listing records")

			format := output.DetectFormat(app.OutputFormat())
			var data any = records
			if format == output.FormatTable || format == output.FormatWide {
				data = output.RecordsToData(records)
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}

	cmd.Flags().StringVarP(&flags.Search, "search", "s", "", "filter by name (case-insensitive substring)")
	cmd.Flags().StringVar(&flags.Category, "category", "", "filter by category")
	cmd.Flags().StringVar(&flags.Platform, "platform", "", "filter by platform; records without platforms match every platform")
	cmd.Flags().StringVar(&flags.Tag, "tag", "", "filter by tag")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0, "maximum number of records to show")

	return cmd
}

// Filter returns the records matching every set filter, in catalog order.
func Filter(records []catalogs.Record, flags *Flags) []catalogs.Record {
	search := strings.ToLower(flags.Search)

	var out []catalogs.Record
	for _, rec := range records {
		if search != "" && !strings.Contains(rec.Key(), search) {
			continue
		}
		if flags.Category != "" && !strings.EqualFold(rec.Category, flags.Category) {
			continue
		}
		if flags.Platform != "" && !onPlatform(rec, flags.Platform) {
			continue
		}
		if flags.Tag != "" && !hasTag(rec, flags.Tag) {
			continue
		}
		out = append(out, rec)
		if flags.Limit > 0 && len(out) == flags.Limit {
			break
		}
	}
	return out
}

// onPlatform treats an empty platform list as available everywhere.
func onPlatform(rec catalogs.Record, platform string) bool {
	if len(rec.Platforms) == 0 {
		return true
	}
	p, ok := catalogs.ParsePlatform(platform)
	if !ok {
		return false
	}
	for _, rp := range rec.Platforms {
		if rp == p {
			return true
		}
	}
	return false
}

func hasTag(rec catalogs.Record, tag string) bool {
	for _, t := range rec.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
