package table

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// compareSortValues orders two accessor values for a sort in direction dir.
// Absent values always sort after present ones; only the comparison of two
// present values is inverted for a descending sort.
func compareSortValues(a, b any, dir SortDirection) int {
	a, b = normalize(a), normalize(b)
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	c := compareValues(a, b)
	if dir == SortDesc {
		return -c
	}
	return c
}

// compareValues orders two present values. Strings compare case-insensitively,
// numbers numerically across integer and float kinds, times chronologically and
// bools false before true. Anything else, including mixed kinds, falls back to
// comparing the formatted values.
func compareValues(a, b any) int {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt)
		}
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case ra.Kind() == reflect.String && rb.Kind() == reflect.String:
		return cmp.Compare(strings.ToLower(ra.String()), strings.ToLower(rb.String()))
	case isNumber(ra) && isNumber(rb):
		return compareNumbers(ra, rb)
	case ra.Kind() == reflect.Bool && rb.Kind() == reflect.Bool:
		return compareBools(ra.Bool(), rb.Bool())
	default:
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isFloat(v reflect.Value) bool {
	return v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func isNumber(v reflect.Value) bool {
	return isInt(v) || isUint(v) || isFloat(v)
}

func compareNumbers(a, b reflect.Value) int {
	switch {
	case isInt(a) && isInt(b):
		return cmp.Compare(a.Int(), b.Int())
	case isUint(a) && isUint(b):
		return cmp.Compare(a.Uint(), b.Uint())
	default:
		return cmp.Compare(toFloat(a), toFloat(b))
	}
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v):
		return float64(v.Int())
	case isUint(v):
		return float64(v.Uint())
	default:
		return v.Float()
	}
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
