package catalogs

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/agentstation/toolshelf/pkg/constants"
	"github.com/agentstation/toolshelf/pkg/errors"
)

// Parse decodes a catalog document. The document must be a JSON array of
// objects, each with a string name holding at least one non-space character; anything else is reported as
// a *errors.ParseError (malformed input). Optional fields are decoded leniently.
func Parse(data []byte) ([]RawRecord, error) {
	return parse(data, "")
}

// ReadFile reads and parses the catalog at path.
func ReadFile(path string) ([]RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return parse(data, path)
}

func parse(data []byte, file string) ([]RawRecord, error) {
	if err := validateShape(data); err != nil {
		return nil, errors.NewParseError("json", file, err.Error(), err)
	}

	var raws []RawRecord
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, errors.WrapParse("json", file, err)
	}
	return raws, nil
}

// Marshal encodes records in the persisted layout: four-space indentation,
// struct field order, trailing newline. Characters such as & < > are kept
// literal so URLs stay readable.
func Marshal(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", constants.JSONIndent)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
