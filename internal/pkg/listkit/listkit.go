// Package listkit provides the generic in-memory search/filter/sort/paginate
// pipeline shared by every list endpoint. It never mutates its input and
// recomputes the full result on each call, which keeps list state impossible
// to get stale at the record counts this system handles.
package listkit

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// FilterAll disables a filter.
const FilterAll = "all"

const DefaultPageSize = 10

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// Options configures a single Apply pass over a slice of T.
type Options[T any] struct {
	// Search is matched case-insensitively as a substring against every
	// SearchFields accessor; an item matches if any field matches. An empty
	// term matches everything.
	Search       string
	SearchFields []func(T) string

	// Filters maps filter names to wanted values; FilterAll or "" disables
	// a filter. Active filters are exact-match and ANDed together.
	Filters      map[string]string
	FilterFields map[string]func(T) string

	// SortKey returns the comparable value for an item. Supported types:
	// string, int, int64, float64, time.Time. Anything else is compared by
	// its fmt.Sprint representation.
	SortKey func(T) any
	SortDir SortDir

	Page     int
	PageSize int
}

// Result is one page of the filtered and sorted view.
type Result[T any] struct {
	Page       []T
	Total      int
	TotalPages int
}

// Apply filters, sorts and paginates items. Out-of-range pages are clamped,
// never rejected.
func Apply[T any](items []T, opts Options[T]) Result[T] {
	filtered := make([]T, 0, len(items))
	term := strings.ToLower(strings.TrimSpace(opts.Search))

	for _, item := range items {
		if term != "" && len(opts.SearchFields) > 0 {
			matched := false
			for _, field := range opts.SearchFields {
				if strings.Contains(strings.ToLower(field(item)), term) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}

		if !matchesFilters(item, opts.Filters, opts.FilterFields) {
			continue
		}

		filtered = append(filtered, item)
	}

	if opts.SortKey != nil {
		sort.SliceStable(filtered, func(i, j int) bool {
			c := compareValues(opts.SortKey(filtered[i]), opts.SortKey(filtered[j]))
			if opts.SortDir == SortDesc {
				return c > 0
			}
			return c < 0
		})
	}

	total := len(filtered)

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	page := opts.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Result[T]{
		Page:       filtered[start:end],
		Total:      total,
		TotalPages: totalPages,
	}
}

func matchesFilters[T any](item T, filters map[string]string, fields map[string]func(T) string) bool {
	for name, want := range filters {
		if want == "" || want == FilterAll {
			continue
		}
		field, ok := fields[name]
		if !ok {
			continue
		}
		if field(item) != want {
			return false
		}
	}
	return true
}

// compareValues coerces both sides to a common comparable form before
// comparing, so numeric and date keys are never compared as raw strings.
func compareValues(a, b any) int {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(strings.ToLower(av), strings.ToLower(bv))
		}
	case int:
		if bv, ok := b.(int); ok {
			return compareOrdered(av, bv)
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return compareOrdered(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return compareOrdered(av, bv)
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func compareOrdered[T int | int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// NextSort implements the column-header toggle rule: requesting the key that
// is already active flips the direction, a new key resets to ascending.
func NextSort(currentKey string, currentDir SortDir, requestedKey string) (string, SortDir) {
	if requestedKey == currentKey {
		if currentDir == SortAsc {
			return currentKey, SortDesc
		}
		return currentKey, SortAsc
	}
	return requestedKey, SortAsc
}
