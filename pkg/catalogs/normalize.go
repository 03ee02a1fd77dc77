package catalogs

import (
	"strings"

	"github.com/agentstation/toolshelf/pkg/constants"
)

// Normalize canonicalizes a raw record. It never fails: missing or malformed
// optional fields fall back to safe defaults.
//
// Platform values outside the supported enumeration are kept as tags so that
// Platforms only ever holds known identifiers.
func Normalize(raw RawRecord) Record {
	rec := Record{
		Name:        strings.TrimSpace(raw.Name),
		Description: raw.Description,
		Category:    strings.TrimSpace(raw.Category),
		Platforms:   []Platform{},
		Tags:        []string{},
		Notes:       []string{},
		Links:       []Link{},
	}
	if rec.Category == "" {
		rec.Category = constants.DefaultCategory
	}

	var unknown []string
	for _, value := range raw.Platforms {
		if strings.TrimSpace(value) == "" {
			continue
		}
		p, ok := ParsePlatform(value)
		if !ok {
			unknown = append(unknown, string(p))
			continue
		}
		rec.Platforms = appendUnique(rec.Platforms, p)
	}

	for _, tag := range append(cloneSlice(raw.Tags), unknown...) {
		if tag = strings.TrimSpace(tag); tag != "" {
			rec.Tags = appendUnique(rec.Tags, tag)
		}
	}
	for _, note := range raw.Notes {
		if note = strings.TrimSpace(note); note != "" {
			rec.Notes = appendUnique(rec.Notes, note)
		}
	}
	for _, link := range raw.Links {
		link = Link{Label: strings.TrimSpace(link.Label), URL: strings.TrimSpace(link.URL)}
		if link.URL != "" {
			rec.Links = appendUnique(rec.Links, link)
		}
	}

	return rec
}

// NormalizeAll normalizes each raw record in order.
func NormalizeAll(raws []RawRecord) []Record {
	out := make([]Record, len(raws))
	for i, raw := range raws {
		out[i] = Normalize(raw)
	}
	return out
}

// Upgrade migrates a record from the flat-tag schema, where platforms were
// stored among the tags. Tags naming a supported platform move to Platforms.
// A record that ends up with no platform is treated as available everywhere.
func Upgrade(raw RawRecord) Record {
	upgraded := raw
	upgraded.Tags = nil
	upgraded.Platforms = cloneSlice(raw.Platforms)

	for _, tag := range raw.Tags {
		if p, ok := ParsePlatform(tag); ok {
			upgraded.Platforms = append(upgraded.Platforms, string(p))
			continue
		}
		upgraded.Tags = append(upgraded.Tags, tag)
	}

	rec := Normalize(upgraded)
	if len(rec.Platforms) == 0 {
		rec.Platforms = cloneSlice(AllPlatforms)
	}
	return rec
}

// UpgradeAll upgrades each raw record in order.
func UpgradeAll(raws []RawRecord) []Record {
	out := make([]Record, len(raws))
	for i, raw := range raws {
		out[i] = Upgrade(raw)
	}
	return out
}

func appendUnique[T comparable](s []T, v T) []T {
	for _, existing := range s {
		if existing == v {
			return s
		}
	}
	return append(s, v)
}
