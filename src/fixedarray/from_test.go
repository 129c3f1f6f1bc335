package fixedarray_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/hyperbolic-timechamber/fixedarray-go/src/fixedarray"
)

func TestFromString(t *testing.T) {
	arr := fixedarray.FromString("foo")
	assert.Equal(t, []string{"f", "o", "o"}, arr.ToSlice())
	assert.Equal(t, 3, arr.Len())
}

func TestFromStringCountsCodePoints(t *testing.T) {
	arr := fixedarray.FromString("añ日")
	assert.Equal(t, []string{"a", "ñ", "日"}, arr.ToSlice())

	assert.Equal(t, 0, fixedarray.FromString("").Len())
}

func TestFromMappedDoubles(t *testing.T) {
	arr := fixedarray.FromMapped(slices.Values([]int{1, 2, 3, 4, 5}), func(x, _ int) int {
		return x * 2
	})
	assert.Equal(t, []int{2, 4, 6, 8, 10}, arr.ToSlice())
}

func TestFromMappedReceivesIndex(t *testing.T) {
	src := []string{"a", "b", "c"}
	arr := fixedarray.FromMapped(slices.Values(src), func(s string, i int) string {
		return s + strconv.Itoa(i)
	})
	assert.Equal(t, []string{"a0", "b1", "c2"}, arr.ToSlice())
	for k := range src {
		assert.Equal(t, src[k]+strconv.Itoa(k), arr.Get(k))
	}
}

func TestFromSequence(t *testing.T) {
	arr := fixedarray.From(slices.Values([]int{3, 1, 2}))
	assert.Equal(t, []int{3, 1, 2}, arr.ToSlice())

	empty := fixedarray.From(slices.Values([]int(nil)))
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, []int{}, empty.ToSlice())
}

func TestFromSliceDoesNotAlias(t *testing.T) {
	src := []int{1, 2, 3}
	arr := fixedarray.FromSlice(src)
	src[0] = 100
	assert.Equal(t, 1, arr.Get(0))

	require.NoError(t, arr.Set(1, 50))
	assert.Equal(t, 2, src[1])
}

func TestFromSliceLengthIsFixed(t *testing.T) {
	arr := fixedarray.FromSlice([]int{1, 2, 3})
	assert.ErrorIs(t, arr.Set(3, 4), fixedarray.ErrOutOfRange)
	assert.Equal(t, 3, arr.Len())
}

func TestFromUniqueKeepsInsertionOrder(t *testing.T) {
	arr := fixedarray.FromUnique([]string{"foo", "bar", "baz", "foo"})
	assert.Equal(t, []string{"foo", "bar", "baz"}, arr.ToSlice())
}

func TestFromOrderedMap(t *testing.T) {
	m := orderedmap.New[string, string]()
	m.Set("2", "b")
	m.Set("1", "a")

	arr := fixedarray.FromOrderedMap(m)
	assert.Equal(t, []lo.Entry[string, string]{
		{Key: "2", Value: "b"},
		{Key: "1", Value: "a"},
	}, arr.ToSlice())
}

func TestFromMapSortsByKey(t *testing.T) {
	arr := fixedarray.FromMap(map[string]string{"2": "b", "1": "a", "3": "c"})
	assert.Equal(t, []lo.Entry[string, string]{
		{Key: "1", Value: "a"},
		{Key: "2", Value: "b"},
		{Key: "3", Value: "c"},
	}, arr.ToSlice())
}

func TestFromStringReplacesInvalidBytes(t *testing.T) {
	arr := fixedarray.FromString("a\xffb")
	assert.Equal(t, []string{"a", "\uFFFD", "b"}, arr.ToSlice())
	assert.NotEqual(t, "a,\xff,b", arr.String())
}
