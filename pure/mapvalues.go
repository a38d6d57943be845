package pure

// MapValues builds a record with the same keys, in the same order, where each
// value is fn(value, key, r). r itself is left untouched.
func MapValues[V, U any](r *Record[V], fn func(V, string, *Record[V]) U) *Record[U] {
	out := NewRecord[U]()
	for k, v := range r.All() {
		out.Set(k, fn(v, k, r))
	}
	return out
}

// MapValuesOf is MapValues for plain maps.
func MapValuesOf[V, U any](m map[string]V, fn func(V, string, map[string]V) U) map[string]U {
	out := make(map[string]U, len(m))
	for k, v := range m {
		out[k] = fn(v, k, m)
	}
	return out
}
