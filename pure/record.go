package pure

import (
	"iter"
	"maps"
	"slices"
)

// Record is a string-keyed association that remembers insertion order.
// A nil *Record reads as empty.
type Record[V any] struct {
	keys   []string
	values map[string]V
}

// NewRecord returns an empty record.
func NewRecord[V any]() *Record[V] {
	return &Record[V]{values: map[string]V{}}
}

// RecordOf copies m into a record ordered by ascending key.
func RecordOf[V any](m map[string]V) *Record[V] {
	r := &Record[V]{
		keys:   slices.Sorted(maps.Keys(m)),
		values: make(map[string]V, len(m)),
	}
	maps.Copy(r.values, m)
	return r
}

// Set stores v under key. A key that is already present keeps its position.
func (r *Record[V]) Set(key string, v V) {
	if r.values == nil {
		r.values = map[string]V{}
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

func (r *Record[V]) Get(key string) (V, bool) {
	if r == nil {
		var zero V
		return zero, false
	}
	v, ok := r.values[key]
	return v, ok
}

// Field makes records usable with Field selectors.
func (r *Record[V]) Field(name string) (any, bool) {
	v, ok := r.Get(name)
	if !ok {
		return nil, false
	}
	return v, true
}

func (r *Record[V]) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (r *Record[V]) Delete(key string) bool {
	if !r.Has(key) {
		return false
	}
	delete(r.values, key)
	r.keys = slices.DeleteFunc(r.keys, func(k string) bool { return k == key })
	return true
}

func (r *Record[V]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Keys returns a copy of the keys in enumeration order.
func (r *Record[V]) Keys() []string {
	if r == nil {
		return []string{}
	}
	return append([]string{}, r.keys...)
}

// All iterates key/value pairs in enumeration order.
func (r *Record[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if r == nil {
			return
		}
		for _, k := range r.keys {
			if !yield(k, r.values[k]) {
				return
			}
		}
	}
}

// Map copies the record into a plain map, dropping the order.
func (r *Record[V]) Map() map[string]V {
	if r == nil {
		return map[string]V{}
	}
	return maps.Clone(r.values)
}

// Clone returns a shallow copy.
func (r *Record[V]) Clone() *Record[V] {
	if r == nil {
		return NewRecord[V]()
	}
	return &Record[V]{
		keys:   slices.Clone(r.keys),
		values: maps.Clone(r.values),
	}
}
