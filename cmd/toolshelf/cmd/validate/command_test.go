package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/toolshelf/cmd/toolshelf/cmd/cmdtest"
)

func TestValidateCommandClean(t *testing.T) {
	w := cmdtest.NewWorkspace(t, `[{"name":"curl","urls":[{"name":"home","url":"https://curl.se"}]}]`, cmdtest.Document)

	res, err := cmdtest.Run(t, NewCommand(w.Context()))
	require.NoError(t, err)
	assert.Contains(t, res.Stderr, "Catalog is valid")
	assert.Empty(t, res.Stdout)
}

func TestValidateCommandIssues(t *testing.T) {
	w := cmdtest.NewWorkspace(t, `[{"name":"curl"},{"name":"CURL","urls":[{"name":"home","url":"https://curl.se"}]}]`, "# no markers\n")
	w.Format = "json"

	res, err := cmdtest.Run(t, NewCommand(w.Context()))
	require.Error(t, err)
	assert.Equal(t, "found 3 issue(s)", err.Error())
	assert.Contains(t, res.Stdout, `"message": "has no home link"`)
	assert.Contains(t, res.Stdout, `"message": "duplicates record 0 (curl)"`)
	assert.Contains(t, res.Stdout, `"field": "document"`)
}

func TestValidateCommandMalformed(t *testing.T) {
	w := cmdtest.NewWorkspace(t, `{}`, cmdtest.Document)
	_, err := cmdtest.Run(t, NewCommand(w.Context()))
	assert.Error(t, err)
}
