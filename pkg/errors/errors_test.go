package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/toolshelf/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("name", "", "cannot be empty")
		assert.Equal(t, "validation failed for field name: cannot be empty", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "bad catalog"}
		assert.Equal(t, "validation failed: bad catalog", err.Error())
	})
}

func TestMissingHomeLinkError(t *testing.T) {
	err := pkgerrors.NewMissingHomeLinkError("curl")
	assert.Contains(t, err.Error(), `"curl"`)
	assert.True(t, pkgerrors.IsMissingField(err))

	wrapped := fmt.Errorf("rendering: %w", err)
	var target *pkgerrors.MissingHomeLinkError
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "curl", target.Record)
}

func TestSortErrors(t *testing.T) {
	keyErr := pkgerrors.NewUnsupportedSortKeyError("stars", "name")
	assert.True(t, errors.Is(keyErr, pkgerrors.ErrUnsupportedSortKey))
	assert.False(t, errors.Is(keyErr, pkgerrors.ErrInvalidSortOrder))
	assert.Contains(t, keyErr.Error(), "stars")

	orderErr := pkgerrors.NewInvalidSortOrderError("up")
	assert.True(t, errors.Is(orderErr, pkgerrors.ErrInvalidSortOrder))
	assert.Equal(t, `invalid sort order "up": must be asc or desc`, orderErr.Error())
}

func TestMarkersNotFoundError(t *testing.T) {
	t.Run("missing marker named", func(t *testing.T) {
		err := pkgerrors.NewMarkersNotFoundError("<!--S-->", "<!--E-->", "<!--E-->")
		assert.True(t, pkgerrors.IsMarkersNotFound(err))
		assert.Contains(t, err.Error(), `missing "<!--E-->"`)
	})

	t.Run("no missing marker", func(t *testing.T) {
		err := pkgerrors.NewMarkersNotFoundError("a", "b", "")
		assert.Equal(t, `markers not found: expected "a" ... "b"`, err.Error())
	})
}

func TestParseError(t *testing.T) {
	base := errors.New("unexpected token")

	err := pkgerrors.NewParseError("json", "tools.json", "unexpected token", base)
	assert.Equal(t, "parse error in json file tools.json: unexpected token", err.Error())
	assert.True(t, pkgerrors.IsMalformedInput(err))
	assert.Equal(t, base, errors.Unwrap(err))

	noFile := pkgerrors.NewParseError("json", "", "bad", nil)
	assert.Equal(t, "json parse error: bad", noFile.Error())
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.NewIOError("write", "/tmp/tools.json", base)
	assert.Equal(t, "IO error during write of /tmp/tools.json: permission denied", err.Error())
	assert.True(t, errors.Is(err, base))
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("render", "unknown mode", nil)
	assert.Equal(t, "configuration error in render: unknown mode", err.Error())
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
	assert.NoError(t, pkgerrors.WrapResource("load", "catalog", "", nil))
	assert.NoError(t, pkgerrors.WrapParse("json", "x", nil))

	base := errors.New("boom")
	err := pkgerrors.WrapResource("load", "catalog", "tools.json", base)
	assert.Equal(t, "failed to load catalog tools.json: boom", err.Error())
	assert.True(t, errors.Is(err, base))

	parseErr := pkgerrors.WrapParse("json", "tools.json", base)
	assert.True(t, pkgerrors.IsMalformedInput(parseErr))
}
