package pure

import (
	"cmp"
	"maps"
	"slices"
)

// Values returns the values of r in enumeration order.
// A nil record yields an empty slice.
func Values[V any](r *Record[V]) []V {
	out := make([]V, 0, r.Len())
	for _, v := range r.All() {
		out = append(out, v)
	}
	return out
}

// ValuesOf returns the values of m ordered by ascending key.
// A nil map yields an empty slice.
func ValuesOf[K cmp.Ordered, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		out = append(out, m[k])
	}
	return out
}
