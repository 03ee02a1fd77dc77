// Package validate implements the validate command.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	appcontext "github.com/agentstation/toolshelf/cmd/toolshelf/context"
	"github.com/agentstation/toolshelf/internal/cmd/globals"
	"github.com/agentstation/toolshelf/internal/cmd/notify"
	"github.com/agentstation/toolshelf/internal/cmd/output"
)

// NewCommand creates the validate command. It exits non-zero when any
// issue is found.
func NewCommand(app appcontext.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: globals.GroupManagement,
		Short:   "Check the catalog and document for problems",
		Long: `Validate reports records that would fail to render or would render
unexpectedly: blank names, missing or repeated home links, names that
differ only in case, and unknown platform values. It also checks that
the document contains the toolshelf markers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shelf, err := app.Toolshelf()
			if err != nil {
				return err
			}

			issues, err := shelf.Validate(cmd.Context())
			if err != nil {
				return err
			}

			n, err := notify.NewFromCommand(cmd)
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				return n.Success("Catalog is valid")
			}

			format := output.DetectFormat(app.OutputFormat())
			if err := output.NewFormatter(format).Format(cmd.OutOrStdout(), issues); err != nil {
				return err
			}
			return fmt.Errorf("found %d issue(s)", len(issues))
		},
	}

	return cmd
}
