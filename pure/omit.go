package pure

import (
	"reflect"
	"slices"
)

// Omit returns a shallow copy of r without the listed keys.
// Keys that r does not hold are ignored.
func Omit[V any](r *Record[V], keys ...string) *Record[V] {
	out := NewRecord[V]()
	for k, v := range r.All() {
		if slices.Contains(keys, k) {
			continue
		}
		out.Set(k, v)
	}
	return out
}

// OmitOf is Omit for plain maps.
func OmitOf[V any](m map[string]V, keys ...string) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		if slices.Contains(keys, k) {
			continue
		}
		out[k] = v
	}
	return out
}

// OmitFields lists the enumerable keys of obj, minus the listed ones.
//
// obj may be a struct, a pointer to one, or a map with string keys. Struct
// fields are exported fields in declaration order, named by their json or yaml
// tag when present. Any other value yields an empty record.
func OmitFields[T any](obj T, keys ...string) *Record[any] {
	return Omit(entriesOf(reflect.ValueOf(obj)), keys...)
}
