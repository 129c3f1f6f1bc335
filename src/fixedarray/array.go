// Package fixedarray provides Array, a sequence whose length is fixed when it
// is created. Reads, iteration and the usual transformation helpers behave
// like they do on a plain slice; writes are bounds checked so the length can
// never change.
package fixedarray

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Array is a fixed-length sequence of T. The zero value is an empty array.
//
// Array is not safe for concurrent writes. Callers that share one between
// goroutines must serialise calls to Set themselves.
type Array[T any] struct {
	data []T
	log  *zap.Logger
}

// New returns an array of length slots, each holding fill.
// It panics if length is negative, as make does.
func New[T any](length int, fill T, opts ...Option) *Array[T] {
	if length < 0 {
		panic(fmt.Sprintf("fixedarray: negative length %d", length))
	}
	return newArray(lo.Times(length, func(int) T { return fill }), opts)
}

// NewZeroed returns an array of length slots holding the zero value of T.
func NewZeroed[T any](length int, opts ...Option) *Array[T] {
	var zero T
	return New(length, zero, opts...)
}

func newArray[T any](data []T, opts []Option) *Array[T] {
	cfg := newConfig(opts)
	return &Array[T]{data: data, log: cfg.logger}
}

func (a *Array[T]) Len() int {
	return len(a.data)
}

func (a *Array[T]) IsEmpty() bool {
	return len(a.data) == 0
}

func (a *Array[T]) inRange(index int) bool {
	return index >= 0 && index < len(a.data)
}

// At returns the element at index and true. Out-of-range reads are not an
// error: they return the zero value and false.
func (a *Array[T]) At(index int) (T, bool) {
	var zero T
	if !a.inRange(index) {
		return zero, false
	}
	return a.data[index], true
}

// Get is At without the presence flag.
func (a *Array[T]) Get(index int) T {
	v, _ := a.At(index)
	return v
}

// Lookup reads a with an index of any integer type. Indexes that do not fit
// in int are out of range rather than truncated.
func Lookup[T any, I constraints.Integer](a *Array[T], index I) (T, bool) {
	var zero T
	if index < 0 || uint64(index) >= uint64(len(a.data)) {
		return zero, false
	}
	return a.data[int(index)], true
}

// Set stores value at index. If index is outside [0, Len()) it returns a
// *RangeError and leaves the array unchanged.
func (a *Array[T]) Set(index int, value T) error {
	if !a.inRange(index) {
		a.logger().Debug("rejected out-of-range write",
			zap.Int("index", index),
			zap.Int("length", len(a.data)),
		)
		return &RangeError{Index: index, Length: len(a.data)}
	}
	a.data[index] = value
	return nil
}

// MustSet is like Set but panics with the *RangeError.
func (a *Array[T]) MustSet(index int, value T) {
	if err := a.Set(index, value); err != nil {
		panic(err)
	}
}

// ToSlice returns a copy of the elements. Changes to the copy never reach
// the array.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)
	return out
}

func (a *Array[T]) logger() *zap.Logger {
	if a.log == nil {
		return zap.NewNop()
	}
	return a.log
}
