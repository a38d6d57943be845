package pure

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNonStringKey is returned by KeyBy when a selector yields a non-string key.
var ErrNonStringKey = errors.New("keyBy: selector must produce a string key")

// KeyBy indexes items by the key sel computes for each of them.
//
// Items are visited in order and a later item replaces an earlier one with the
// same key. Every key must be a string (or a type whose underlying type is
// string); otherwise ErrNonStringKey is returned together with the offending
// index, and no partial result.
func KeyBy[T any](items []T, sel Selector[T]) (map[string]T, error) {
	get := resolve(sel)
	result := make(map[string]T, len(items))
	for i, item := range items {
		raw := get(item)
		key, ok := asString(raw)
		if !ok {
			return nil, fmt.Errorf("%w: item %d produced %T", ErrNonStringKey, i, raw)
		}
		result[key] = item
	}
	return result, nil
}

// KeyByFunc is KeyBy for a statically string-typed key function. It cannot fail.
func KeyByFunc[T any](items []T, fn func(T) string) map[string]T {
	result := make(map[string]T, len(items))
	for _, item := range items {
		result[fn(item)] = item
	}
	return result
}

func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
