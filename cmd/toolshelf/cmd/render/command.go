// Package render implements the render command.
package render

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/toolshelf"
	appcontext "github.com/agentstation/toolshelf/cmd/toolshelf/context"
	"github.com/agentstation/toolshelf/internal/cmd/globals"
	"github.com/agentstation/toolshelf/internal/cmd/report"
	"github.com/agentstation/toolshelf/internal/tools/docs"
)

// Flags holds the render command flags.
type Flags struct {
	Mode    string
	Tags    bool
	Notes   bool
	Preview bool
	DryRun  bool
}

// options converts the flags that were set into toolshelf options.
func (f *Flags) options(cmd *cobra.Command) []toolshelf.Option {
	var opts []toolshelf.Option
	if cmd.Flags().Changed("mode") {
		opts = append(opts, toolshelf.WithRenderMode(f.Mode))
	}
	if cmd.Flags().Changed("tags") {
		opts = append(opts, toolshelf.WithRenderTags(f.Tags))
	}
	if cmd.Flags().Changed("notes") {
		opts = append(opts, toolshelf.WithRenderNotes(f.Notes))
	}
	switch {
	case f.Preview:
		opts = append(opts, toolshelf.WithDryRun(nil))
	case f.DryRun:
		opts = append(opts, toolshelf.WithDryRun(cmd.OutOrStdout()))
	}
	return opts
}

// NewCommand creates the render command.
func NewCommand(app appcontext.Context) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "render",
		GroupID: globals.GroupCore,
		Short:   "Render the catalog into the document",
		Long: `Render merges duplicates, sorts the catalog by name and saves it, then
replaces the text between the toolshelf markers in the document with the
rendered catalog:

  <!-- toolshelf:start -->
  ...
  <!-- toolshelf:end -->

Everything outside the markers is left byte-for-byte unchanged. Every
record needs a link named "home"; the name links to it.`,
		Example: `  toolshelf render                         # Update README.md from tools.json
  toolshelf render --mode list --tags      # One section per tool, with tags
  toolshelf render --preview               # Show the rendered section in the terminal
  toolshelf render --dry-run > README.new  # Print the regenerated document`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shelf, err := app.Toolshelf(flags.options(cmd)...)
			if err != nil {
				return err
			}

			r, err := shelf.Render(cmd.Context())
			if err != nil {
				return err
			}

			if flags.Preview {
				_, err := fmt.Fprint(cmd.OutOrStdout(), docs.Preview(r.Section))
				return err
			}
			if flags.DryRun {
				return nil
			}
			return report.Print(cmd, r)
		},
	}

	cmd.Flags().StringVar(&flags.Mode, "mode", "table", "render mode: table or list")
	cmd.Flags().BoolVar(&flags.Tags, "tags", false, "include tags")
	cmd.Flags().BoolVar(&flags.Notes, "notes", false, "include notes")
	cmd.Flags().BoolVar(&flags.Preview, "preview", false, "render the section to the terminal without writing")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "print the regenerated document without writing")
	cmd.MarkFlagsMutuallyExclusive("preview", "dry-run")

	return cmd
}
