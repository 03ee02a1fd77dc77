package toolshelf

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/agentstation/toolshelf/internal/tools/docs"
	"github.com/agentstation/toolshelf/pkg/catalogs"
)

// Issue is a problem found by Validate. Index is the record's position in
// the catalog, or -1 for problems with the document.
type Issue struct {
	Index   int    `json:"index" yaml:"index"`
	Record  string `json:"record,omitempty" yaml:"record,omitempty"`
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

// String implements fmt.Stringer.
func (i Issue) String() string {
	if i.Index < 0 {
		return fmt.Sprintf("%s: %s", i.Field, i.Message)
	}
	return fmt.Sprintf("record %d (%s) %s: %s", i.Index, i.Record, i.Field, i.Message)
}

// Validate checks the catalog and document for problems that would make a
// render fail or silently drop data. A malformed catalog is an error; every
// other problem is reported as an Issue.
func (t *toolshelf) Validate(ctx context.Context) ([]Issue, error) {
	ctx = t.context(ctx, "validate")

	raws, err := catalogs.ReadFile(t.config.catalogPath)
	if err != nil {
		return nil, err
	}

	issues := []Issue{}
	firstSeen := make(map[string]int, len(raws))

	for i, raw := range raws {
		rec := catalogs.Normalize(raw)
		issue := func(field, format string, args ...any) {
			issues = append(issues, Issue{Index: i, Record: rec.Name, Field: field, Message: fmt.Sprintf(format, args...)})
		}

		for _, p := range raw.Platforms {
			if strings.TrimSpace(p) == "" {
				continue
			}
			if _, ok := catalogs.ParsePlatform(p); !ok {
				issue("platforms", "unknown platform %q is treated as a tag", p)
			}
		}
		switch n := rec.HomeCount(); {
		case n == 0:
			issue("urls", "has no home link")
		case n > 1:
			issue("urls", "has %d home links, only the first is rendered", n)
		}
		if j, dup := firstSeen[rec.Key()]; dup {
			issue("name", "duplicates record %d (%s)", j, raws[j].Name)
		} else {
			firstSeen[rec.Key()] = i
		}
	}

	issues = append(issues, t.validateDocument()...)

	t.logger(ctx).Debug().Int("records", len(raws)).Int("issues", len(issues)).Msg("Validated catalog")
	return issues, nil
}

func (t *toolshelf) validateDocument() []Issue {
	if t.config.documentPath == "" {
		return nil
	}
	data, err := os.ReadFile(t.config.documentPath)
	if err != nil {
		return []Issue{{Index: -1, Field: "document", Message: err.Error()}}
	}
	if _, ok := docs.Section(string(data), t.config.startMarker, t.config.endMarker); !ok {
		return []Issue{{
			Index:   -1,
			Field:   "document",
			Message: fmt.Sprintf("%s lacks a %s ... %s section", t.config.documentPath, t.config.startMarker, t.config.endMarker),
		}}
	}
	return nil
}
