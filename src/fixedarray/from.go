package fixedarray

import (
	"cmp"
	"iter"
	"slices"

	"github.com/samber/lo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/exp/constraints"
)

// From returns an array holding every element of seq, in the order seq
// yields them. seq is consumed once and must be finite.
func From[T any](seq iter.Seq[T], opts ...Option) *Array[T] {
	return newArray(slices.Collect(seq), opts)
}

// FromMapped is like From but stores fn(element, index) instead of each element.
func FromMapped[S, T any](seq iter.Seq[S], fn func(S, int) T, opts ...Option) *Array[T] {
	var data []T
	for v := range seq {
		data = append(data, fn(v, len(data)))
	}
	return newArray(data, opts)
}

func FromSlice[T any](s []T, opts ...Option) *Array[T] {
	return newArray(slices.Clone(s), opts)
}

// FromString returns one element per code point of s. Each byte of s that is
// not valid UTF-8 becomes "\uFFFD", so the result does not round-trip such
// input.
func FromString(s string, opts ...Option) *Array[string] {
	var data []string
	for _, r := range s {
		data = append(data, string(r))
	}
	return newArray(data, opts)
}

// FromUnique treats items as a set: later duplicates are dropped and the
// order of first insertion is kept.
func FromUnique[T comparable](items []T, opts ...Option) *Array[T] {
	return newArray(lo.Uniq(items), opts)
}

// FromOrderedMap returns the key/value pairs of m in insertion order.
func FromOrderedMap[K comparable, V any](m *orderedmap.OrderedMap[K, V], opts ...Option) *Array[lo.Entry[K, V]] {
	entries := make([]lo.Entry[K, V], 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, lo.Entry[K, V]{Key: pair.Key, Value: pair.Value})
	}
	return newArray(entries, opts)
}

// FromMap returns the key/value pairs of m sorted by key. Built-in maps do
// not remember insertion order; use FromOrderedMap when it matters.
func FromMap[K constraints.Ordered, V any](m map[K]V, opts ...Option) *Array[lo.Entry[K, V]] {
	entries := lo.Entries(m)
	slices.SortFunc(entries, func(x, y lo.Entry[K, V]) int {
		return cmp.Compare(x.Key, y.Key)
	})
	return newArray(entries, opts)
}
