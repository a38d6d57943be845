// Package pure provides generic, non-mutating collection utilities.
//
// Every function in this package takes its input by reference and returns a
// new collection. Nothing here sorts, deletes or rewrites in place, so callers
// can hand over slices and maps they still hold.
//
// The centerpiece is the Selector, a sealed two-case variant:
//
//	→ Field[T]("name")       reads a named field of each item
//	→ By(func(T) K { ... })  derives a value from each item
//
// A selector is resolved once into a getter before iteration starts, so the
// inner loops of KeyBy and SortBy never branch on the selector kind.
//
// Features:
//   - KeyBy / KeyByFunc: index a slice by a string key, last write wins.
//   - MapValues / MapValuesOf: transform values, keep keys.
//   - Omit / OmitOf / OmitFields: shallow copy without the listed keys.
//   - Values / ValuesOf: values in enumeration order, nil-safe.
//   - SortBy: stable multi-criteria sort, first unequal criterion decides.
//   - Record: an ordered string-keyed association for deterministic output.
//   - Constant: a function that always returns the same value.
//
// Permissive by contract: omitting an absent key is a no-op, and values that
// cannot be ordered against each other (nil, NaN, mismatched kinds) compare as
// equal in SortBy instead of failing. Only KeyBy reports an error, when a
// selector yields something other than a string.
package pure
