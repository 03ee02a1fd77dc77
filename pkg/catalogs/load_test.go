package catalogs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/toolshelf/pkg/errors"
)

func TestParse(t *testing.T) {
	data := []byte(`[
		{"name": "curl", "urls": [{"name": "home", "url": "https://curl.se"}], "tags": ["cli"]},
		{"name": "jq", "platforms": "Linux", "tags": "json", "category": 7}
	]`)

	raws, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, raws, 2)

	assert.Equal(t, "curl", raws[0].Name)
	assert.Equal(t, []Link{{Label: "home", URL: "https://curl.se"}}, raws[0].Links)
	assert.Equal(t, []string{"cli"}, raws[0].Tags)

	assert.Equal(t, []string{"Linux"}, raws[1].Platforms, "single string accepted")
	assert.Equal(t, []string{"json"}, raws[1].Tags)
	assert.Empty(t, raws[1].Category, "wrong type decodes as empty")
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{{`},
		{name: "object instead of array", data: `{"name": "curl"}`},
		{name: "array of strings", data: `["curl", "jq"]`},
		{name: "missing name", data: `[{"description": "no name"}]`},
		{name: "empty name", data: `[{"name": ""}]`},
		{name: "blank name", data: `[{"name": "   "}]`},
		{name: "no-break space name", data: `[{"name": "\u00a0\u3000"}]`},
		{name: "blank name after a valid record", data: `[{"name": "jq"}, {"name": "\t\n"}]`},
		{name: "numeric name", data: `[{"name": 42}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.IsMalformedInput(err), "got %v", err)
		})
	}
}

func TestParseEmptyArray(t *testing.T) {
	raws, err := Parse([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, raws)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(filepath.Join(dir, "missing.json"))
	var ioErr *errors.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Operation)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"name":"x"}`), 0o644))
	_, err = ReadFile(bad)
	var parseErr *errors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, bad, parseErr.File)
}

func TestMarshal(t *testing.T) {
	records := []Record{Normalize(RawRecord{
		Name:  "curl",
		Tags:  []string{"cli"},
		Links: []Link{{Label: "home", URL: "https://curl.se"}},
	})}

	data, err := Marshal(records)
	require.NoError(t, err)

	want := `[
    {
        "name": "curl",
        "description": "",
        "category": "uncategorized",
        "platforms": [],
        "tags": [
            "cli"
        ],
        "notes": [],
        "urls": [
            {
                "name": "home",
                "url": "https://curl.se"
            }
        ]
    }
]
`
	assert.Equal(t, want, string(data))

	empty, err := Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(empty))
}

func TestMarshalKeepsURLCharacters(t *testing.T) {
	url := "https://example.com/search?a=1&b=<2>"
	data, err := Marshal([]Record{{Name: "Tom & Jerry", Links: []Link{{Label: "home", URL: url}}}})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"url": "`+url+`"`)
	assert.Contains(t, string(data), `"name": "Tom & Jerry"`)
	assert.NotContains(t, string(data), `\u0026`)

	raws, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, url, raws[0].Links[0].URL)
}
