package pure

import "fmt"

// Selector extracts a grouping or ordering key from an item of type T.
// It is sealed: the only implementations are FieldSelector and FuncSelector.
type Selector[T any] interface {
	// sealedSelector prevents external packages from implementing Selector.
	sealedSelector(T)
}

var (
	_ Selector[any] = FieldSelector[any]{}
	_ Selector[any] = FuncSelector[any]{}
)

// FieldSelector reads the field called Name from each item.
// See Field for the lookup rules.
type FieldSelector[T any] struct {
	Name string
}

func (FieldSelector[T]) sealedSelector(T) {}

// FuncSelector derives the key by calling Fn on each item.
type FuncSelector[T any] struct {
	Fn func(T) any
}

func (FuncSelector[T]) sealedSelector(T) {}

// Field selects the field called name.
//
// For structs (or pointers to structs) the exported field with that Go name is
// used, falling back to the field whose json or yaml tag carries the name.
// For maps with string keys the entry under name is used. Types implementing
// Fielder answer for themselves. Anything that has no such field yields nil.
func Field[T any](name string) Selector[T] {
	return FieldSelector[T]{Name: name}
}

// By selects the value returned by fn.
func By[T, K any](fn func(T) K) Selector[T] {
	if fn == nil {
		return FuncSelector[T]{}
	}
	return FuncSelector[T]{Fn: func(item T) any {
		return fn(item)
	}}
}

func matchSelector[T, R any](
	sel Selector[T],
	fieldCallback func(FieldSelector[T]) R,
	funcCallback func(FuncSelector[T]) R,
) R {
	switch sel := sel.(type) {
	case FieldSelector[T]:
		return fieldCallback(sel)
	case FuncSelector[T]:
		return funcCallback(sel)
	}
	panic(fmt.Sprintf("exhaustive match fallback, selector type: %T", sel))
}

// resolve turns a selector into a plain getter.
func resolve[T any](sel Selector[T]) func(T) any {
	return matchSelector(sel,
		func(s FieldSelector[T]) func(T) any {
			return fieldGetter[T](s.Name)
		},
		func(s FuncSelector[T]) func(T) any {
			if s.Fn == nil {
				return func(T) any { return nil }
			}
			return s.Fn
		},
	)
}

func resolveAll[T any](criteria []Selector[T]) []func(T) any {
	getters := make([]func(T) any, len(criteria))
	for i, c := range criteria {
		getters[i] = resolve(c)
	}
	return getters
}
