package profile

import "github.com/sahilm/fuzzy"

// itemNames adapts a slice of items to fuzzy.Source.
type itemNames []Item

func (s itemNames) String(i int) string { return s[i].Name }
func (s itemNames) Len() int            { return len(s) }

// Search returns the items whose names fuzzily match query, best match
// first. An empty query returns items unchanged. At most limit results are
// returned when limit is positive.
func Search(items []Item, query string, limit int) []Item {
	if query == "" {
		if limit > 0 && len(items) > limit {
			return items[:limit]
		}
		return items
	}

	matches := fuzzy.FindFrom(query, itemNames(items))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Item, len(matches))
	for i, m := range matches {
		out[i] = items[m.Index]
	}
	return out
}
