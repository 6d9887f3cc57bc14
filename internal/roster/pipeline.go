package roster

import (
	"sort"
	"strings"
	"time"
)

// Filters apply conjunctively; each is optional and a no-op when unset.
type Filters struct {
	// Status matches the record's workflow status exactly.
	Status string
	// Category matches the record's category key exactly.
	Category string
	// Search is a case-insensitive substring match on the display name.
	Search string
}

func (f Filters) Match(r Record) bool {
	if f.Status != "" && r.StatusKey() != f.Status {
		return false
	}
	if f.Category != "" && r.CategoryKey() != f.Category {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(r.DisplayName()), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// Comparator is a two-valued ordering: After reports whether a sorts after b.
// Equal elements have undefined relative order; the sort is not stable.
type Comparator[T Record] struct {
	After func(a, b T) bool
}

// ByString orders on a string key using native string ordering.
func ByString[T Record](key func(T) string, desc bool) Comparator[T] {
	return Comparator[T]{After: func(a, b T) bool {
		if desc {
			return key(a) < key(b)
		}
		return key(a) > key(b)
	}}
}

// ByInt orders on an integer key.
func ByInt[T Record](key func(T) int, desc bool) Comparator[T] {
	return Comparator[T]{After: func(a, b T) bool {
		if desc {
			return key(a) < key(b)
		}
		return key(a) > key(b)
	}}
}

// ByTime orders on an instant key.
func ByTime[T Record](key func(T) time.Time, desc bool) Comparator[T] {
	return Comparator[T]{After: func(a, b T) bool {
		if desc {
			return key(a).Before(key(b))
		}
		return key(a).After(key(b))
	}}
}

// Project is the pure filter/sort pipeline: it recomputes the full view from
// the raw collection on every call. A zero Comparator leaves the input order.
func Project[T Record](raw []T, filters Filters, cmp Comparator[T]) []T {
	view := make([]T, 0, len(raw))
	for _, r := range raw {
		if filters.Match(r) {
			view = append(view, r)
		}
	}
	if cmp.After != nil {
		// i sorts before j exactly when j is after i; ties are unordered.
		sort.Slice(view, func(i, j int) bool {
			return cmp.After(view[j], view[i])
		})
	}
	return view
}
