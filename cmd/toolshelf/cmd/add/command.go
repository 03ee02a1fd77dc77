// Package add implements the add command.
package add

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	appcontext "github.com/agentstation/toolshelf/cmd/toolshelf/context"
	"github.com/agentstation/toolshelf/internal/cmd/globals"
	"github.com/agentstation/toolshelf/internal/cmd/report"
	"github.com/agentstation/toolshelf/pkg/catalogs"
	"github.com/agentstation/toolshelf/pkg/constants"
	"github.com/agentstation/toolshelf/pkg/errors"
)

// Flags holds the add command flags.
type Flags struct {
	Description string
	Category    string
	Home        string
	URLs        []string
	Platforms   []string
	Tags        []string
	Notes       []string
}

// Record builds the raw record for name from the flags.
func (f *Flags) Record(name string) (catalogs.RawRecord, error) {
	raw := catalogs.RawRecord{
		Name:        name,
		Description: f.Description,
		Category:    f.Category,
		Platforms:   f.Platforms,
		Tags:        f.Tags,
		Notes:       f.Notes,
	}
	if f.Home != "" {
		raw.Links = append(raw.Links, catalogs.Link{Label: constants.HomeLinkLabel, URL: f.Home})
	}
	for _, u := range f.URLs {
		link, err := parseLink(u)
		if err != nil {
			return catalogs.RawRecord{}, err
		}
		raw.Links = append(raw.Links, link)
	}
	return raw, nil
}

// parseLink accepts "label=url" or a bare URL. An "=" inside a URL's
// query string does not start a label.
func parseLink(s string) (catalogs.Link, error) {
	label, url, found := strings.Cut(s, "=")
	if !found || strings.Contains(label, "://") {
		return catalogs.Link{URL: s}, nil
	}
	if url == "" {
		return catalogs.Link{}, errors.NewValidationError("url", s, "expected label=url")
	}
	return catalogs.Link{Label: label, URL: url}, nil
}

// NewCommand creates the add command.
func NewCommand(app appcontext.Context) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "add NAME",
		GroupID: globals.GroupManagement,
		Short:   "Add a record to the catalog",
		Example: `  toolshelf add jq --home https://jqlang.org --tag json --platform linux
  toolshelf add ripgrep --home https://github.com/BurntSushi/ripgrep \
      --url docs=https://github.com/BurntSushi/ripgrep/blob/master/GUIDE.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := flags.Record(args[0])
			if err != nil {
				return err
			}
			if flags.Home == "" {
				app.Logger().Warn().Str("record", args[0]).Msg("Record has no home link and will fail to render")
			}

			shelf, err := app.Toolshelf()
			if err != nil {
				return err
			}

			r, err := shelf.Add(cmd.Context(), raw)
			if err != nil {
				return fmt.Errorf("adding %s: %w", args[0], err)
			}
			return report.Print(cmd, r)
		},
	}

	cmd.Flags().StringVarP(&flags.Description, "description", "d", "", "description")
	cmd.Flags().StringVarP(&flags.Category, "category", "c", "", "category (default uncategorized)")
	cmd.Flags().StringVar(&flags.Home, "home", "", "home page URL")
	cmd.Flags().StringArrayVar(&flags.URLs, "url", nil, "additional link as label=url (repeatable)")
	cmd.Flags().StringSliceVarP(&flags.Platforms, "platform", "p", nil, "platforms: linux, mac, windows, android, ios")
	cmd.Flags().StringSliceVarP(&flags.Tags, "tag", "t", nil, "tags (repeatable)")
	cmd.Flags().StringArrayVar(&flags.Notes, "note", nil, "notes (repeatable)")

	return cmd
}
