package fixedarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperbolic-timechamber/fixed-array-go/src/fixedarray"
)

func TestAll(t *testing.T) {
	arr := fixedarray.Of(10, 20, 30)
	var indexes []int
	var values []int
	for i, v := range arr.All() {
		indexes = append(indexes, i)
		values = append(values, v)
	}
	assert.Equal(t, []int{0, 1, 2}, indexes)
	assert.Equal(t, []int{10, 20, 30}, values)
}

func TestValues(t *testing.T) {
	arr := fixedarray.New[int](5)
	arr.Fill(3)
	sum := 0
	for v := range arr.Values() {
		sum += v
	}
	assert.Equal(t, 15, sum)
}

func TestBackward(t *testing.T) {
	arr := fixedarray.Of(10, 20, 30)
	var indexes []int
	var values []int
	for i, v := range arr.Backward() {
		indexes = append(indexes, i)
		values = append(values, v)
	}
	assert.Equal(t, []int{2, 1, 0}, indexes)
	assert.Equal(t, []int{30, 20, 10}, values)
}

func TestIterationEarlyBreak(t *testing.T) {
	arr := fixedarray.Of(1, 2, 3, 4)
	count := 0
	for range arr.Values() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestIterationRestarts(t *testing.T) {
	arr := fixedarray.Of(1, 2)
	seq := arr.Values()
	for round := 0; round < 2; round++ {
		var got []int
		for v := range seq {
			got = append(got, v)
		}
		assert.Equal(t, []int{1, 2}, got)
	}
}

func TestZeroSizeIteration(t *testing.T) {
	arr := fixedarray.New[int](0)
	count := 0
	for range arr.Values() {
		count++
	}
	for range arr.Backward() {
		count++
	}
	assert.Equal(t, 0, count)
}

func TestIteratorForward(t *testing.T) {
	arr := fixedarray.Of(10, 20, 30)
	it := arr.Iter()
	var got []int
	for it.Valid() {
		got = append(got, it.MustValue())
		it.Next()
	}
	assert.Equal(t, []int{10, 20, 30}, got)

	_, err := it.Value()
	assert.ErrorIs(t, err, fixedarray.ErrOutOfRange)
}

func TestIteratorBackward(t *testing.T) {
	arr := fixedarray.Of(10, 20, 30)
	it := arr.IterAt(arr.Size() - 1)
	var got []int
	for it.Valid() {
		got = append(got, it.MustValue())
		it.Prev()
	}
	assert.Equal(t, []int{30, 20, 10}, got)
	assert.Equal(t, -1, it.Index())
}

func TestIteratorSeekAndPeek(t *testing.T) {
	arr := fixedarray.Of(10, 20, 30, 40, 50)
	it := arr.Iter()
	it.Seek(3)
	require.Equal(t, 3, it.Index())
	assert.Equal(t, 40, it.MustValue())

	v, err := it.Peek(-2)
	require.NoError(t, err)
	assert.Equal(t, 20, v)
	assert.Equal(t, 3, it.Index())

	_, err = it.Peek(2)
	assert.ErrorIs(t, err, fixedarray.ErrOutOfRange)
}

func TestIteratorDistance(t *testing.T) {
	arr := fixedarray.Of(1, 2, 3, 4)
	first := arr.Iter()
	last := arr.IterAt(arr.Size())
	assert.Equal(t, 4, first.Distance(last))
	assert.Equal(t, -4, last.Distance(first))
}

func TestIteratorRestart(t *testing.T) {
	arr := fixedarray.Of(7, 8)
	it := arr.Iter()
	it.Next()
	it.Next()
	assert.False(t, it.Valid())

	it = arr.Iter()
	assert.Equal(t, 0, it.Index())
	assert.Equal(t, 7, it.MustValue())
}

func TestIteratorObservesMutation(t *testing.T) {
	arr := fixedarray.Of(1, 2, 3)
	it := arr.IterAt(1)
	arr.Set(1, 99)
	assert.Equal(t, 99, it.MustValue())
}

func TestIteratorZeroSize(t *testing.T) {
	arr := fixedarray.New[int](0)
	it := arr.Iter()
	assert.False(t, it.Valid())
	_, err := it.Value()
	assert.ErrorIs(t, err, fixedarray.ErrOutOfRange)
}
