package output

import (
	"strings"

	"github.com/agentstation/toolshelf/pkg/catalogs"
)

// RecordsToData converts catalog records to table data. The narrow table
// shows name, category and home link; the wide table adds platforms, tags
// and the remaining links.
func RecordsToData(records []catalogs.Record) Data {
	data := Data{
		Headers: []string{"Name", "Category", "Home", "Platforms", "Tags", "Links"},
		Rows:    make([][]string, 0, len(records)),
		Narrow:  3,
	}

	for _, rec := range records {
		home := ""
		if link, ok := rec.Home(); ok {
			home = link.URL
		}

		platforms := make([]string, len(rec.Platforms))
		for i, p := range rec.Platforms {
			platforms[i] = p.String()
		}

		others := rec.OtherLinks()
		links := make([]string, len(others))
		for i, l := range others {
			links[i] = l.String()
		}

		data.Rows = append(data.Rows, []string{
			rec.Name,
			rec.Category,
			home,
			strings.Join(platforms, ", "),
			strings.Join(rec.Tags, ", "),
			strings.Join(links, ", "),
		})
	}

	return data
}
