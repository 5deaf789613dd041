// Package query implements the filter-then-sort pipeline shared by every
// list view: free-text search, categorical filters, and named stable sorts
// over a copy of a collection.
package query

import (
	"sort"
	"strings"
)

// Params carries the list-view query parameters.
type Params struct {
	Search  string
	Filters map[string]string
	SortBy  string
}

// Config binds a resource to the pipeline through field accessors.
type Config[T any] struct {
	// SearchFields are matched case-insensitively; a record matches when
	// any field contains the search term as a substring.
	SearchFields []func(T) string
	// Filters are exact-match predicates keyed by query-param name.
	Filters map[string]func(record T, value string) bool
	// Sorts maps sort keys to less functions, applied stably.
	Sorts map[string]func(a, b T) bool
	// DefaultSort is used when Params.SortBy is empty. An unknown or empty
	// resolved key leaves the filtered order untouched.
	DefaultSort string
}

// Apply filters then sorts items. The input slice is never mutated; the
// result shares no backing array with it.
func Apply[T any](items []T, p Params, cfg Config[T]) []T {
	out := make([]T, len(items))
	copy(out, items)

	if term := strings.TrimSpace(p.Search); term != "" {
		term = strings.ToLower(term)
		matched := make([]T, 0, len(out))
		for _, record := range out {
			for _, field := range cfg.SearchFields {
				if strings.Contains(strings.ToLower(field(record)), term) {
					matched = append(matched, record)
					break
				}
			}
		}
		out = matched
	}

	// Filters combine conjunctively with search and with each other.
	for key, value := range p.Filters {
		if value == "" || value == "all" {
			continue
		}
		predicate, ok := cfg.Filters[key]
		if !ok {
			continue
		}
		matched := make([]T, 0, len(out))
		for _, record := range out {
			if predicate(record, value) {
				matched = append(matched, record)
			}
		}
		out = matched
	}

	sortKey := p.SortBy
	if sortKey == "" {
		sortKey = cfg.DefaultSort
	}
	if less, ok := cfg.Sorts[sortKey]; ok {
		// Stable so ties keep their pre-sort relative order.
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}

	return out
}
