// Package report prints operation reports for CLI commands.
package report

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/toolshelf"
	"github.com/agentstation/toolshelf/internal/cmd/alerts"
	"github.com/agentstation/toolshelf/internal/cmd/globals"
	"github.com/agentstation/toolshelf/internal/cmd/notify"
	"github.com/agentstation/toolshelf/internal/cmd/output"
)

// Print writes r for the user. Structured formats go to stdout so they can
// be piped; otherwise a one-line summary alert about the catalog is written
// to stderr with each merged group as a detail line.
func Print(cmd *cobra.Command, r *toolshelf.Report) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	switch format := output.Format(strings.ToLower(flags.Format)); format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(cmd.OutOrStdout(), r)
	}

	n, err := notify.NewFromCommand(cmd)
	if err != nil {
		return err
	}
	return n.Alert(alerts.NewSuccess(r.Summary()).WithSubject(r.Catalog).WithDetails(Details(r)...))
}

// Details describes each merged group as "Name <- a, b".
func Details(r *toolshelf.Report) []string {
	details := make([]string, 0, len(r.Merged))
	for _, g := range r.Merged {
		details = append(details, fmt.Sprintf("%s <- %s", g.Name, strings.Join(g.Names, ", ")))
	}
	return details
}
