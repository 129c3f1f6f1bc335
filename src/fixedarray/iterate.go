package fixedarray

import (
	"iter"
	"slices"
)

// Entries yields index/element pairs in index order. Each call starts a new
// pass from index 0.
func (a *Array[T]) Entries() iter.Seq2[int, T] {
	return slices.All(a.data)
}

func (a *Array[T]) Keys() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range a.data {
			if !yield(i) {
				return
			}
		}
	}
}

func (a *Array[T]) Values() iter.Seq[T] {
	return slices.Values(a.data)
}

// Iterator walks an Array once, front to back.
//
//	it := arr.Iterator()
//	for it.Next() {
//		use(it.Index(), it.Value())
//	}
type Iterator[T any] struct {
	array *Array[T]
	index int
}

func (a *Array[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{array: a, index: -1}
}

// Next advances to the next element and reports whether there is one.
func (it *Iterator[T]) Next() bool {
	if it.index+1 >= it.array.Len() {
		it.index = it.array.Len()
		return false
	}
	it.index++
	return true
}

func (it *Iterator[T]) Index() int {
	return it.index
}

// Value returns the current element, or the zero value once exhausted.
func (it *Iterator[T]) Value() T {
	return it.array.Get(it.index)
}
