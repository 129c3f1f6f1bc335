package fixedarray

import (
	"math"
	"reflect"

	"github.com/samber/lo"
)

// Predicate is the callback shape shared by the search helpers. array is the
// Array being searched.
type Predicate[T any] func(value T, index int, array *Array[T]) bool

// ascending adapts fn to lo's index-less predicates for a front-to-back scan.
func (a *Array[T]) ascending(fn Predicate[T]) func(T) bool {
	i := -1
	return func(v T) bool {
		i++
		return fn(v, i, a)
	}
}

func (a *Array[T]) descending(fn Predicate[T]) func(T) bool {
	i := len(a.data)
	return func(v T) bool {
		i--
		return fn(v, i, a)
	}
}

// searchStart normalises a forward fromIndex: negative values count back
// from the end. It returns len(a) when nothing is left to search.
func searchStart(from, n int) int {
	if from < 0 {
		return max(from+n, 0)
	}
	return min(from, n)
}

// IndexOf returns the first index holding v, or -1.
func IndexOf[T comparable](a *Array[T], v T) int {
	return lo.IndexOf(a.data, v)
}

// IndexOfFrom is IndexOf starting at from.
func IndexOfFrom[T comparable](a *Array[T], v T, from int) int {
	start := searchStart(from, len(a.data))
	i := lo.IndexOf(a.data[start:], v)
	if i < 0 {
		return -1
	}
	return start + i
}

// LastIndexOf returns the last index holding v, or -1.
func LastIndexOf[T comparable](a *Array[T], v T) int {
	return lo.LastIndexOf(a.data, v)
}

// LastIndexOfFrom searches backwards starting at from.
func LastIndexOfFrom[T comparable](a *Array[T], v T, from int) int {
	n := len(a.data)
	if from < 0 {
		from += n
	}
	if from < 0 || n == 0 {
		return -1
	}
	return lo.LastIndexOf(a.data[:min(from, n-1)+1], v)
}

// Includes reports whether v is present. Unlike IndexOf, NaN matches NaN.
func Includes[T comparable](a *Array[T], v T) bool {
	return IncludesFrom(a, v, 0)
}

func IncludesFrom[T comparable](a *Array[T], v T, from int) bool {
	start := searchStart(from, len(a.data))
	return lo.ContainsBy(a.data[start:], func(x T) bool {
		return sameValueZero(x, v)
	})
}

func sameValueZero[T comparable](x, y T) bool {
	return x == y || (isNaN(x) && isNaN(y))
}

// isNaN only looks at float kinds. A struct or array holding a NaN field is
// unequal to itself but is not NaN.
func isNaN(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}

// Find returns the first element satisfying fn.
func (a *Array[T]) Find(fn Predicate[T]) (T, bool) {
	v, _, ok := lo.FindIndexOf(a.data, a.ascending(fn))
	return v, ok
}

// FindIndex returns the index of the first element satisfying fn, or -1.
func (a *Array[T]) FindIndex(fn Predicate[T]) int {
	_, i, _ := lo.FindIndexOf(a.data, a.ascending(fn))
	return i
}

func (a *Array[T]) FindLast(fn Predicate[T]) (T, bool) {
	v, _, ok := lo.FindLastIndexOf(a.data, a.descending(fn))
	return v, ok
}

func (a *Array[T]) FindLastIndex(fn Predicate[T]) int {
	_, i, _ := lo.FindLastIndexOf(a.data, a.descending(fn))
	return i
}

// Every reports whether fn holds for all elements. It stops at the first
// failure and is true for an empty array.
func (a *Array[T]) Every(fn Predicate[T]) bool {
	return lo.EveryBy(a.data, a.ascending(fn))
}

// Some reports whether fn holds for any element, stopping at the first match.
func (a *Array[T]) Some(fn Predicate[T]) bool {
	return lo.SomeBy(a.data, a.ascending(fn))
}
