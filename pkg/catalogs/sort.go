package catalogs

import (
	"sort"
	"strings"

	"github.com/agentstation/toolshelf/pkg/errors"
)

// SortKey selects the field records are ordered by.
type SortKey string

// Supported sort keys.
const (
	SortKeyName SortKey = "name"
)

// SortKeys lists every supported sort key.
var SortKeys = []SortKey{SortKeyName}

// SortOrder is the direction of a sort.
type SortOrder string

// Sort orders.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortKey validates a sort key name.
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := sortKeyFuncs[key]; !ok {
		return "", unsupportedKey(s)
	}
	return key, nil
}

// ParseSortOrder accepts "asc" or "desc" in any letter case.
func ParseSortOrder(s string) (SortOrder, error) {
	switch order := SortOrder(strings.ToLower(s)); order {
	case SortAsc, SortDesc:
		return order, nil
	default:
		return "", errors.NewInvalidSortOrderError(s)
	}
}

// sortKeyFuncs maps each supported key to its extractor.
var sortKeyFuncs = map[SortKey]func(Record) string{
	SortKeyName: func(r Record) string { return r.Key() },
}

// Sort returns a stably sorted copy of records. The input is left untouched.
func Sort(records []Record, key SortKey, order SortOrder) ([]Record, error) {
	extract, ok := sortKeyFuncs[key]
	if !ok {
		return nil, unsupportedKey(string(key))
	}
	if order != SortAsc && order != SortDesc {
		return nil, errors.NewInvalidSortOrderError(string(order))
	}

	sorted := CloneAll(records)
	keys := make([]string, len(sorted))
	idx := make([]int, len(sorted))
	for i := range sorted {
		idx[i] = i
		keys[i] = extract(sorted[i])
	}

	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		if order == SortDesc {
			return ka > kb
		}
		return ka < kb
	})

	out := make([]Record, len(sorted))
	for i, j := range idx {
		out[i] = sorted[j]
	}
	return out, nil
}

func unsupportedKey(key string) error {
	supported := make([]string, len(SortKeys))
	for i, k := range SortKeys {
		supported[i] = string(k)
	}
	return errors.NewUnsupportedSortKeyError(key, supported...)
}
