package catalogs

import "encoding/json"

// RawRecord is a catalog entry as found on disk, before normalization.
// Decoding is lenient: fields of the wrong type decode as empty values
// rather than failing, and platforms/tags/notes accept a single string
// or an array of strings.
type RawRecord struct {
	Name        string
	Description string
	Category    string
	Platforms   []string
	Tags        []string
	Notes       []string
	Links       []Link
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *RawRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*r = rawFromMap(fields)
	return nil
}

func rawFromMap(m map[string]any) RawRecord {
	return RawRecord{
		Name:        asString(m["name"]),
		Description: asString(m["description"]),
		Category:    asString(m["category"]),
		Platforms:   asStrings(m["platforms"]),
		Tags:        asStrings(m["tags"]),
		Notes:       asStrings(m["notes"]),
		Links:       asLinks(m["urls"]),
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asStrings(v any) []string {
	switch val := v.(type) {
	case string:
		return []string{val}
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func asLinks(v any) []Link {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	links := make([]Link, 0, len(items))
	for _, item := range items {
		switch val := item.(type) {
		case map[string]any:
			links = append(links, Link{Label: asString(val["name"]), URL: asString(val["url"])})
		case string:
			links = append(links, Link{URL: val})
		}
	}
	return links
}

// Raw converts a normalized record back to its raw form.
func (r Record) Raw() RawRecord {
	platforms := make([]string, len(r.Platforms))
	for i, p := range r.Platforms {
		platforms[i] = string(p)
	}
	return RawRecord{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Platforms:   platforms,
		Tags:        cloneSlice(r.Tags),
		Notes:       cloneSlice(r.Notes),
		Links:       cloneSlice(r.Links),
	}
}
