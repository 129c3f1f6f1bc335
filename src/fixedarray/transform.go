package fixedarray

import (
	"reflect"

	"github.com/samber/lo"
)

// Map returns fn applied to every element, in index order.
func Map[T, U any](a *Array[T], fn func(value T, index int, array *Array[T]) U) []U {
	return lo.Map(a.data, func(v T, i int) U {
		return fn(v, i, a)
	})
}

// Filter returns the elements satisfying fn.
func (a *Array[T]) Filter(fn Predicate[T]) []T {
	return lo.Filter(a.data, func(v T, i int) bool {
		return fn(v, i, a)
	})
}

func (a *Array[T]) ForEach(fn func(value T, index int, array *Array[T])) {
	lo.ForEach(a.data, func(v T, i int) {
		fn(v, i, a)
	})
}

// relativeIndex resolves a slice bound: negative values count back from n,
// and the result is clamped to [0, n].
func relativeIndex(i, n int) int {
	if i < 0 {
		return max(i+n, 0)
	}
	return min(i, n)
}

// Slice returns a copy of the elements in [start, end). Negative bounds
// count back from the end and out-of-range bounds are clamped, so Slice
// never panics.
func (a *Array[T]) Slice(start, end int) []T {
	n := len(a.data)
	s, e := relativeIndex(start, n), relativeIndex(end, n)
	if e < s {
		e = s
	}
	out := make([]T, e-s)
	copy(out, a.data[s:e])
	return out
}

// SliceFrom is Slice(start, Len()).
func (a *Array[T]) SliceFrom(start int) []T {
	return a.Slice(start, len(a.data))
}

// Concat returns the elements followed by the contents of items. Single
// values must be wrapped, as in a.Concat([]T{v}).
func (a *Array[T]) Concat(items ...[]T) []T {
	return lo.Flatten(append([][]T{a.data}, items...))
}

// FlatMap maps every element to a slice and concatenates the results.
func FlatMap[T, U any](a *Array[T], fn func(value T, index int, array *Array[T]) []U) []U {
	return lo.FlatMap(a.data, func(v T, i int) []U {
		return fn(v, i, a)
	})
}

// Flat concatenates the slices held by a.
func Flat[T any](a *Array[[]T]) []T {
	return lo.Flatten(a.data)
}

// FlatDepth flattens nested slices and arrays up to depth levels. Pass
// math.MaxInt to flatten completely; depth <= 0 copies the elements as is.
func FlatDepth[T any](a *Array[T], depth int) []any {
	out := make([]any, 0, len(a.data))
	for _, v := range a.data {
		out = flatten(out, v, depth)
	}
	return out
}

func flatten(out []any, v any, depth int) []any {
	if depth > 0 {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				out = flatten(out, rv.Index(i).Interface(), depth-1)
			}
			return out
		}
	}
	return append(out, v)
}

// Reduce folds the elements left to right, seeded with the first element.
// It returns false for an empty array.
func (a *Array[T]) Reduce(fn func(acc, value T, index int, array *Array[T]) T) (T, bool) {
	var zero T
	if len(a.data) == 0 {
		return zero, false
	}
	return lo.Reduce(a.data[1:], func(acc, v T, i int) T {
		return fn(acc, v, i+1, a)
	}, a.data[0]), true
}

// ReduceRight folds right to left, seeded with the last element.
func (a *Array[T]) ReduceRight(fn func(acc, value T, index int, array *Array[T]) T) (T, bool) {
	var zero T
	n := len(a.data)
	if n == 0 {
		return zero, false
	}
	return lo.ReduceRight(a.data[:n-1], func(acc, v T, i int) T {
		return fn(acc, v, i, a)
	}, a.data[n-1]), true
}

// Fold folds the elements left to right starting from initial.
func Fold[T, U any](a *Array[T], fn func(acc U, value T, index int, array *Array[T]) U, initial U) U {
	return lo.Reduce(a.data, func(acc U, v T, i int) U {
		return fn(acc, v, i, a)
	}, initial)
}

func FoldRight[T, U any](a *Array[T], fn func(acc U, value T, index int, array *Array[T]) U, initial U) U {
	return lo.ReduceRight(a.data, func(acc U, v T, i int) U {
		return fn(acc, v, i, a)
	}, initial)
}
