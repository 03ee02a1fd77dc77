package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/toolshelf/pkg/catalogs"
)

func testRecords() []catalogs.Record {
	return []catalogs.Record{
		{
			Name:      "curl",
			Category:  "network",
			Platforms: []catalogs.Platform{catalogs.PlatformLinux, catalogs.PlatformMac},
			Tags:      []string{"cli", "http"},
			Links: []catalogs.Link{
				{Label: "home", URL: "https://curl.se"},
				{Label: "docs", URL: "https://curl.se/docs"},
			},
		},
		{Name: "bat", Category: "uncategorized"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "table", want: FormatTable},
		{in: "JSON", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "wide", want: FormatWide},
		{in: "", want: ""},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestRecordsToData(t *testing.T) {
	data := RecordsToData(testRecords())

	assert.Equal(t, []string{"Name", "Category", "Home", "Platforms", "Tags", "Links"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"curl", "network", "https://curl.se", "linux, mac", "cli, http", "docs(https://curl.se/docs)"}, data.Rows[0])
	assert.Equal(t, []string{"bat", "uncategorized", "", "", "", ""}, data.Rows[1])
}

func TestTableFormatter(t *testing.T) {
	data := RecordsToData(testRecords())

	t.Run("narrow", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(FormatTable).Format(&buf, data))
		out := buf.String()
		assert.Contains(t, out, "curl")
		assert.Contains(t, out, "https://curl.se")
		assert.NotContains(t, out, "cli, http")
	})

	t.Run("wide", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(FormatWide).Format(&buf, data))
		assert.Contains(t, buf.String(), "cli, http")
	})

	t.Run("struct slice", func(t *testing.T) {
		type row struct {
			Index   int      `json:"index"`
			Field   string   `json:"field_name"`
			Items   []string `json:"items"`
			skipped string
			Hidden  string `json:"-"`
		}
		var buf bytes.Buffer
		rows := []row{{Index: 1, Field: "urls", Items: []string{"a", "b"}, skipped: "x", Hidden: "secret"}}
		require.NoError(t, NewFormatter(FormatTable).Format(&buf, rows))
		out := buf.String()
		assert.Contains(t, out, "a, b")
		assert.NotContains(t, out, "secret")
	})

	t.Run("non tabular data falls back to json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"records": 2}))
		assert.JSONEq(t, `{"records": 2}`, buf.String())
	})
}

func TestStructuredFormatters(t *testing.T) {
	records := testRecords()[:1]

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(FormatJSON).Format(&buf, records))
		assert.Contains(t, buf.String(), `"name": "curl"`)
		assert.Contains(t, buf.String(), `"platforms": [`)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(FormatYAML).Format(&buf, records))
		assert.Contains(t, buf.String(), "name: curl")
		assert.Contains(t, buf.String(), "url: https://curl.se")
	})
}
