package docs

import (
	"strings"

	"github.com/agentstation/toolshelf/pkg/errors"
)

// Project replaces the text between the first start marker and the first end
// marker after it with section, surrounded by one blank line on each side.
// The markers and every byte outside them are kept verbatim.
//
// When either marker is missing Project returns a *errors.MarkersNotFoundError
// naming it and an empty string; the caller's document is never modified.
func Project(document, section, start, end string) (string, error) {
	if start == "" || end == "" {
		return "", &errors.ValidationError{Field: "markers", Message: "start and end markers must be non-empty"}
	}

	i := strings.Index(document, start)
	if i < 0 {
		return "", errors.NewMarkersNotFoundError(start, end, start)
	}
	interior := i + len(start)

	j := strings.Index(document[interior:], end)
	if j < 0 {
		return "", errors.NewMarkersNotFoundError(start, end, end)
	}
	j += interior

	var b strings.Builder
	b.Grow(len(document) + len(section))
	b.WriteString(document[:interior])
	b.WriteString("\n\n")
	b.WriteString(section)
	b.WriteString("\n\n")
	b.WriteString(document[j:])
	return b.String(), nil
}

// Section returns the text currently between the markers, or false when the
// document has no complete marker pair.
func Section(document, start, end string) (string, bool) {
	i := strings.Index(document, start)
	if i < 0 {
		return "", false
	}
	rest := document[i+len(start):]
	j := strings.Index(rest, end)
	if j < 0 {
		return "", false
	}
	return rest[:j], true
}
