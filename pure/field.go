package pure

import (
	"reflect"
	"slices"
	"strings"
	"sync"
)

// Fielder is implemented by types that expose named fields without reflection.
type Fielder interface {
	Field(name string) (any, bool)
}

var fielderType = reflect.TypeFor[Fielder]()

type valueGetter func(reflect.Value) any

func nilGetter(reflect.Value) any { return nil }

// fieldGetter compiles the lookup of name for items of type T.
// Interface-typed items are compiled per dynamic type and cached.
func fieldGetter[T any](name string) func(T) any {
	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Interface {
		get := compileField(typ, name)
		return func(item T) any {
			return get(reflect.ValueOf(item))
		}
	}

	var compiled sync.Map // reflect.Type -> valueGetter
	return func(item T) any {
		v := reflect.ValueOf(item)
		if !v.IsValid() {
			return nil
		}
		get, ok := compiled.Load(v.Type())
		if !ok {
			get, _ = compiled.LoadOrStore(v.Type(), compileField(v.Type(), name))
		}
		return get.(valueGetter)(v)
	}
}

func compileField(typ reflect.Type, name string) valueGetter {
	if typ.Implements(fielderType) {
		return func(v reflect.Value) any {
			if v.Kind() == reflect.Pointer && v.IsNil() {
				return nil
			}
			val, ok := v.Interface().(Fielder).Field(name)
			if !ok {
				return nil
			}
			return val
		}
	}

	switch typ.Kind() {
	case reflect.Pointer:
		elem := compileField(typ.Elem(), name)
		return func(v reflect.Value) any {
			if v.IsNil() {
				return nil
			}
			return elem(v.Elem())
		}

	case reflect.Struct:
		idx, ok := structFieldIndex(typ, name)
		if !ok {
			return nilGetter
		}
		return func(v reflect.Value) any {
			f, err := v.FieldByIndexErr(idx)
			if err != nil {
				return nil
			}
			return f.Interface()
		}

	case reflect.Map:
		if typ.Key().Kind() != reflect.String {
			return nilGetter
		}
		key := reflect.ValueOf(name).Convert(typ.Key())
		return func(v reflect.Value) any {
			found := v.MapIndex(key)
			if !found.IsValid() {
				return nil
			}
			return found.Interface()
		}

	case reflect.Interface:
		return func(v reflect.Value) any {
			if v.IsNil() {
				return nil
			}
			elem := v.Elem()
			return compileField(elem.Type(), name)(elem)
		}

	default:
		return nilGetter
	}
}

// structFieldIndex finds an exported field by Go name first, then by tag name.
func structFieldIndex(typ reflect.Type, name string) ([]int, bool) {
	fields := exportedFields(typ)
	for _, f := range fields {
		if f.Name == name {
			return f.Index, true
		}
	}
	for _, f := range fields {
		if tag, ok := tagName(f); ok && tag == name {
			return f.Index, true
		}
	}
	return nil, false
}

func exportedFields(typ reflect.Type) []reflect.StructField {
	var out []reflect.StructField
	for _, f := range reflect.VisibleFields(typ) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		out = append(out, f)
	}
	return out
}

func tagName(f reflect.StructField) (string, bool) {
	for _, key := range []string{"json", "yaml"} {
		tag, ok := f.Tag.Lookup(key)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name != "" {
			return name, true
		}
	}
	return "", false
}

// entriesOf lists the enumerable keys of a struct or string-keyed map.
// Struct fields keep declaration order and are named by tag, else Go name.
// Map entries come in ascending key order.
func entriesOf(v reflect.Value) *Record[any] {
	out := NewRecord[any]()
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return out
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return out
	}

	switch v.Kind() {
	case reflect.Struct:
		for _, f := range exportedFields(v.Type()) {
			name := f.Name
			if tag, ok := tagName(f); ok {
				if tag == "-" {
					continue
				}
				name = tag
			}
			fv, err := v.FieldByIndexErr(f.Index)
			if err != nil {
				continue
			}
			out.Set(name, fv.Interface())
		}

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return out
		}
		keys := v.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		for _, k := range keys {
			out.Set(k.String(), v.MapIndex(k).Interface())
		}
	}
	return out
}
