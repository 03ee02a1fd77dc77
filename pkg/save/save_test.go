package save_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/toolshelf/pkg/errors"
	"github.com/agentstation/toolshelf/pkg/save"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, save.Write([]byte("new"), save.WithPath(path)))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file cleaned up")
}

func TestWritePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.json")
	require.NoError(t, save.Write([]byte("[]\n"), save.WithPath(path), save.WithPermissions(0o600)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteThroughSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "docs", "TOOLS.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))
	link := filepath.Join(dir, "README.md")
	require.NoError(t, os.Symlink(target, link))

	require.NoError(t, save.Write([]byte("new"), save.WithPath(link)))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "link survives the write")

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestWriteToWriter(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "README.md")

	require.NoError(t, save.Write([]byte("preview"), save.WithPath(path), save.WithWriter(&buf)))
	assert.Equal(t, "preview", buf.String())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "writer takes precedence over path")
}

func TestWriteErrors(t *testing.T) {
	err := save.Write([]byte("x"))
	assert.True(t, errors.IsValidationError(err))

	err = save.Write([]byte("x"), save.WithPath(filepath.Join(t.TempDir(), "missing", "file")))
	var ioErr *errors.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "create", ioErr.Operation)
}

func TestOptions(t *testing.T) {
	var buf bytes.Buffer
	o := save.Defaults().Apply(save.WithPath("a.json"), save.WithWriter(&buf))
	assert.Equal(t, "a.json", o.Path())
	assert.Equal(t, &buf, o.Writer())
	assert.Equal(t, os.FileMode(0o644), o.Permissions())
}
