package docs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/toolshelf/pkg/catalogs"
	"github.com/agentstation/toolshelf/pkg/errors"
)

func testRecords() []catalogs.Record {
	return []catalogs.Record{
		{
			Name:        "curl",
			Description: "transfer data with URLs",
			Tags:        []string{"cli", "http"},
			Notes:       []string{"ships with most systems"},
			Links: []catalogs.Link{
				{Label: "home", URL: "https://curl.se"},
				{Label: "docs", URL: "https://curl.se/docs"},
				{URL: "https://github.com/curl/curl"},
			},
		},
		{
			Name:        "jq",
			Description: "filter | transform JSON",
			Links:       []catalogs.Link{{Label: "home", URL: "https://jqlang.org"}},
		},
	}
}

func TestRenderTable(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "base columns",
			want: "| Name | Description | URLs |\n" +
				"| --- | --- | --- |\n" +
				"| [curl](https://curl.se) | transfer data with URLs | docs(https://curl.se/docs), https://github.com/curl/curl |\n" +
				`| [jq](https://jqlang.org) | filter \| transform JSON |  |`,
		},
		{
			name: "tags and notes",
			opts: Options{Tags: true, Notes: true},
			want: "| Name | Description | URLs | Tags | Notes |\n" +
				"| --- | --- | --- | --- | --- |\n" +
				"| [curl](https://curl.se) | transfer data with URLs | docs(https://curl.se/docs), https://github.com/curl/curl | cli, http | ships with most systems |\n" +
				`| [jq](https://jqlang.org) | filter \| transform JSON |  |  |  |`,
		},
		{
			name: "notes only",
			opts: Options{Notes: true},
			want: "| Name | Description | URLs | Notes |\n" +
				"| --- | --- | --- | --- |\n" +
				"| [curl](https://curl.se) | transfer data with URLs | docs(https://curl.se/docs), https://github.com/curl/curl | ships with most systems |\n" +
				`| [jq](https://jqlang.org) | filter \| transform JSON |  |  |`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderTable(testRecords(), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderTableEscapesCells(t *testing.T) {
	got, err := RenderTable([]catalogs.Record{{
		Name:        "a|b",
		Description: "line one\nline two",
		Tags:        []string{"x|y"},
		Links:       []catalogs.Link{{Label: "home", URL: "https://example.com/?q=a|b"}},
	}}, Options{Tags: true})
	require.NoError(t, err)
	assert.Contains(t, got, `| [a\|b](https://example.com/?q=a\|b) | line one line two |  | x\|y |`)
}

func TestRenderTableEmpty(t *testing.T) {
	got, err := RenderTable(nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "| Name | Description | URLs |\n| --- | --- | --- |", got)
}

func TestRenderMissingHomeLink(t *testing.T) {
	records := append(testRecords(), catalogs.Record{
		Name:  "orphan",
		Links: []catalogs.Link{{Label: "docs", URL: "https://example.com"}},
	})

	for name, render := range map[string]func([]catalogs.Record, Options) (string, error){
		"table": RenderTable,
		"list":  RenderList,
	} {
		t.Run(name, func(t *testing.T) {
			out, err := render(records, Options{})
			require.Error(t, err)
			assert.Empty(t, out)
			assert.True(t, errors.IsMissingField(err))

			var missing *errors.MissingHomeLinkError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, "orphan", missing.Record)
		})
	}
}

func TestRenderList(t *testing.T) {
	got, err := RenderList(testRecords(), Options{Tags: true, Notes: true})
	require.NoError(t, err)

	assert.Contains(t, got, "### [curl](https://curl.se)")
	assert.Contains(t, got, "transfer data with URLs")
	assert.Contains(t, got, "**URLs:**")
	assert.Contains(t, got, "docs(https://curl.se/docs)")
	assert.Contains(t, got, "https://github.com/curl/curl")
	assert.Contains(t, got, "**Tags:** cli, http")
	assert.Contains(t, got, "**Notes:** ships with most systems")
	assert.Contains(t, got, "### [jq](https://jqlang.org)")
	assert.Less(t, strings.Index(got, "[curl]"), strings.Index(got, "[jq]"), "records keep their order")
	assert.NotRegexp(t, `\n$`, got)
}

func TestRenderListOmitsDisabledAndEmptyParts(t *testing.T) {
	got, err := RenderList(testRecords(), Options{})
	require.NoError(t, err)
	assert.NotContains(t, got, "**Tags:**")
	assert.NotContains(t, got, "**Notes:**")

	got, err = RenderList(testRecords()[1:], Options{Tags: true, Notes: true})
	require.NoError(t, err)
	assert.NotContains(t, got, "**URLs:**", "jq has only a home link")
	assert.NotContains(t, got, "**Tags:**", "jq has no tags")
}
