// Package cmdtest provides helpers for testing toolshelf commands against
// a temporary catalog and document.
package cmdtest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/toolshelf"
	appcontext "github.com/agentstation/toolshelf/cmd/toolshelf/context"
	"github.com/agentstation/toolshelf/internal/cmd/globals"
	"github.com/agentstation/toolshelf/pkg/logging"
)

// Document is a minimal document holding an empty toolshelf section.
const Document = "# Tools\n\n<!-- toolshelf:start -->\n<!-- toolshelf:end -->\n"

// Workspace is a temporary catalog and document pair.
type Workspace struct {
	Dir      string
	Catalog  string
	Document string
	// Format is returned by the mock context's OutputFormat
	Format string
}

// NewWorkspace writes catalog and, when non-empty, document to a temporary
// directory.
func NewWorkspace(t testing.TB, catalog, document string) *Workspace {
	t.Helper()
	dir := t.TempDir()
	w := &Workspace{
		Dir:      dir,
		Catalog:  filepath.Join(dir, "tools.json"),
		Document: filepath.Join(dir, "README.md"),
		Format:   "table",
	}
	require.NoError(t, os.WriteFile(w.Catalog, []byte(catalog), 0o644))
	if document != "" {
		require.NoError(t, os.WriteFile(w.Document, []byte(document), 0o644))
	}
	return w
}

// Read returns the content of a file in the workspace.
func (w *Workspace) Read(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// Context returns a mock application context whose toolshelf operates on
// the workspace files.
func (w *Workspace) Context() *appcontext.MockContext {
	return &appcontext.MockContext{
		ToolshelfFunc: func(opts ...toolshelf.Option) (toolshelf.Toolshelf, error) {
			base := []toolshelf.Option{
				toolshelf.WithCatalogPath(w.Catalog),
				toolshelf.WithDocumentPath(w.Document),
				toolshelf.WithLogger(logging.NewNopLogger()),
			}
			return toolshelf.New(append(base, opts...)...)
		},
		OutputFormatFunc: func() string { return w.Format },
	}
}

// Result holds the output of a command run.
type Result struct {
	Stdout string
	Stderr string
}

// Run executes cmd under a root command carrying the global flags. Output
// defaults to uncolored table format; args may override it.
func Run(t testing.TB, cmd *cobra.Command, args ...string) (Result, error) {
	t.Helper()

	root := &cobra.Command{Use: "toolshelf", SilenceUsage: true, SilenceErrors: true}
	globals.AddGroups(root)
	globals.AddFlags(root)
	root.AddCommand(cmd)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{cmd.Name(), "--no-color", "--format", "table"}, args...))

	err := root.Execute()
	return Result{Stdout: stdout.String(), Stderr: stderr.String()}, err
}
