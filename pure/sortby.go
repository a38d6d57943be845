package pure

import "slices"

type keyed[T any] struct {
	item T
	keys []any
}

// SortBy returns a sorted copy of items; items itself is never reordered.
//
// Each criterion is resolved once and evaluated once per item. Two items are
// compared criterion by criterion, left to right, and the first unequal
// comparison decides. Items equal under every criterion keep their original
// relative order. Without criteria the copy is returned as is.
func SortBy[T any](items []T, criteria ...Selector[T]) []T {
	getters := resolveAll(criteria)

	decorated := make([]keyed[T], len(items))
	for i, item := range items {
		keys := make([]any, len(getters))
		for j, get := range getters {
			keys[j] = get(item)
		}
		decorated[i] = keyed[T]{item: item, keys: keys}
	}

	slices.SortStableFunc(decorated, func(a, b keyed[T]) int {
		for j := range getters {
			if c := compareValues(a.keys[j], b.keys[j]); c != 0 {
				return c
			}
		}
		return 0
	})

	out := make([]T, len(decorated))
	for i, d := range decorated {
		out[i] = d.item
	}
	return out
}
