// Package docs renders the tool catalog as markdown and splices it into the
// marker-bounded section of a document.
package docs

import (
	"fmt"
	"strings"

	"github.com/agentstation/toolshelf/pkg/catalogs"
	"github.com/agentstation/toolshelf/pkg/errors"
)

// Options selects the optional columns or lines of the rendered section.
type Options struct {
	Tags  bool
	Notes bool
}

// cellEscaper keeps cell content on one line and inside its column.
var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}

// homeLink returns the record's home URL or a *errors.MissingHomeLinkError.
func homeLink(rec catalogs.Record) (string, error) {
	home, ok := rec.Home()
	if !ok {
		return "", errors.NewMissingHomeLinkError(rec.Name)
	}
	return home.URL, nil
}

func linkStrings(links []catalogs.Link) []string {
	out := make([]string, len(links))
	for i, l := range links {
		out[i] = l.String()
	}
	return out
}

// RenderTable renders records as a markdown table with Name, Description and
// URLs columns, plus Tags and Notes when enabled. The name links to the home
// URL; a record without one fails the whole render.
func RenderTable(records []catalogs.Record, opts Options) (string, error) {
	headers := []string{"Name", "Description", "URLs"}
	if opts.Tags {
		headers = append(headers, "Tags")
	}
	if opts.Notes {
		headers = append(headers, "Notes")
	}

	var b strings.Builder
	writeRow(&b, headers)
	separators := make([]string, len(headers))
	for i := range separators {
		separators[i] = "---"
	}
	writeRow(&b, separators)

	for _, rec := range records {
		home, err := homeLink(rec)
		if err != nil {
			return "", err
		}

		row := []string{
			fmt.Sprintf("[%s](%s)", rec.Name, home),
			rec.Description,
			strings.Join(linkStrings(rec.OtherLinks()), ", "),
		}
		if opts.Tags {
			row = append(row, strings.Join(rec.Tags, ", "))
		}
		if opts.Notes {
			row = append(row, strings.Join(rec.Notes, ", "))
		}
		for i := range row {
			row[i] = escapeCell(row[i])
		}
		writeRow(&b, row)
	}

	return strings.TrimSuffix(b.String(), "\n"), nil
}

func writeRow(b *strings.Builder, cells []string) {
	fmt.Fprintf(b, "| %s |\n", strings.Join(cells, " | "))
}

// RenderList renders one section per record: a heading linked to the home
// URL, the description, the other links, and the tag and note lines when
// enabled and non-empty.
func RenderList(records []catalogs.Record, opts Options) (string, error) {
	b := NewMarkdownBuilder()

	for _, rec := range records {
		home, err := homeLink(rec)
		if err != nil {
			return "", err
		}

		b.LinkedHeading(rec.Name, home)
		if rec.Description != "" {
			b.Paragraph(rec.Description)
		}
		if others := rec.OtherLinks(); len(others) > 0 {
			b.LabeledList("URLs:", linkStrings(others)...)
		}
		if opts.Tags && len(rec.Tags) > 0 {
			b.LabeledLine("Tags:", strings.Join(rec.Tags, ", "))
		}
		if opts.Notes && len(rec.Notes) > 0 {
			b.LabeledLine("Notes:", strings.Join(rec.Notes, ", "))
		}
	}

	out, err := b.Build()
	if err != nil {
		return "", errors.WrapResource("render", "document", "list", err)
	}
	return out, nil
}
