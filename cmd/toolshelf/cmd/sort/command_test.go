package sort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/toolshelf/cmd/toolshelf/cmd/cmdtest"
	"github.com/agentstation/toolshelf/pkg/errors"
)

const catalog = `[{"name":"zoxide"},{"name":"Bat"},{"name":"atuin"}]`

func TestSortCommand(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		first string
	}{
		{name: "default ascending", first: "atuin"},
		{name: "descending", args: []string{"--order", "desc"}, first: "zoxide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := cmdtest.NewWorkspace(t, catalog, "")
			_, err := cmdtest.Run(t, NewCommand(w.Context()), tt.args...)
			require.NoError(t, err)
			assert.Regexp(t, `^\[\s+\{\s+"name": "`+tt.first+`"`, w.Read(t, w.Catalog))
		})
	}
}

func TestSortCommandErrors(t *testing.T) {
	w := cmdtest.NewWorkspace(t, catalog, "")

	_, err := cmdtest.Run(t, NewCommand(w.Context()), "--by", "stars")
	assert.ErrorIs(t, err, errors.ErrUnsupportedSortKey)

	_, err = cmdtest.Run(t, NewCommand(w.Context()), "--order", "up")
	assert.ErrorIs(t, err, errors.ErrInvalidSortOrder)

	assert.Equal(t, catalog, w.Read(t, w.Catalog))
}

func TestSortCommandDryRun(t *testing.T) {
	w := cmdtest.NewWorkspace(t, catalog, "")
	w.Format = "json"

	res, err := cmdtest.Run(t, NewCommand(w.Context()), "--dry-run")
	require.NoError(t, err)
	assert.Regexp(t, `(?s)"atuin".*"Bat".*"zoxide"`, res.Stdout)
	assert.Equal(t, catalog, w.Read(t, w.Catalog))
}
