package pure

import (
	"cmp"
	"math"
	"reflect"
	"time"
)

type kindClass int

const (
	classNone kindClass = iota
	classBool
	classInt
	classUint
	classFloat
	classString
)

func (c kindClass) numeric() bool {
	return c == classInt || c == classUint || c == classFloat
}

func classOf(k reflect.Kind) kindClass {
	switch k {
	case reflect.Bool:
		return classBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUint
	case reflect.Float32, reflect.Float64:
		return classFloat
	case reflect.String:
		return classString
	default:
		return classNone
	}
}

// compareValues orders two derived keys by their native ordering.
// Pairs that have no common ordering compare as equal.
func compareValues(a, b any) int {
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
		return 0
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return 0
	}

	ca, cb := classOf(va.Kind()), classOf(vb.Kind())
	switch {
	case ca == classString && cb == classString:
		return cmp.Compare(va.String(), vb.String())
	case ca == classBool && cb == classBool:
		return compareBools(va.Bool(), vb.Bool())
	case ca == classInt && cb == classInt:
		return cmp.Compare(va.Int(), vb.Int())
	case ca == classUint && cb == classUint:
		return cmp.Compare(va.Uint(), vb.Uint())
	case ca.numeric() && cb.numeric():
		fa, fb := asFloat(va, ca), asFloat(vb, cb)
		if math.IsNaN(fa) || math.IsNaN(fb) {
			return 0
		}
		return cmp.Compare(fa, fb)
	}
	return 0
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func asFloat(v reflect.Value, c kindClass) float64 {
	switch c {
	case classInt:
		return float64(v.Int())
	case classUint:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}
