package fixedarray

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange   = errors.New("FixedArray: index out of range")
	ErrSizeMismatch = errors.New("FixedArray: size mismatch")
)

// Array is a fixed-length container: the element count is set at
// construction and never changes for the lifetime of the value.
type Array[T any] struct {
	data []T
}

func New[T any](size int) *Array[T] {
	if size < 0 {
		panic("FixedArray: negative size")
	}
	return &Array[T]{data: make([]T, size)}
}

// Of builds an array holding exactly the given values. Values not
// supplied do not exist: the length is len(values). Callers holding a
// native Go array pass it as Of(arr[:]...); constant indexing of the
// native array itself stays compile-time bounds checked.
func Of[T any](values ...T) *Array[T] {
	a := &Array[T]{data: make([]T, len(values))}
	copy(a.data, values)
	return a
}

func FromSlice[T any](values []T) *Array[T] {
	return Of(values...)
}

func (a *Array[T]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(a.data) {
		return zero, ErrOutOfRange
	}
	return a.data[index], nil
}

func (a *Array[T]) SetAt(index int, value T) error {
	if index < 0 || index >= len(a.data) {
		return ErrOutOfRange
	}
	a.data[index] = value
	return nil
}

// Ref borrows the address of element index, valid for the lifetime of
// the array.
func (a *Array[T]) Ref(index int) (*T, error) {
	if index < 0 || index >= len(a.data) {
		return nil, ErrOutOfRange
	}
	return &a.data[index], nil
}

// Get and Set skip the range check; an invalid index panics.
func (a *Array[T]) Get(index int) T {
	return a.data[index]
}

func (a *Array[T]) Set(index int, value T) {
	a.data[index] = value
}

func (a *Array[T]) Front() (T, error) {
	var zero T
	if len(a.data) == 0 {
		return zero, ErrOutOfRange
	}
	return a.data[0], nil
}

func (a *Array[T]) Back() (T, error) {
	var zero T
	if len(a.data) == 0 {
		return zero, ErrOutOfRange
	}
	return a.data[len(a.data)-1], nil
}

// Data returns a slice sharing the array's storage. nil when the
// length is zero.
func (a *Array[T]) Data() []T {
	if len(a.data) == 0 {
		return nil
	}
	return a.data
}

// Slice returns an independent copy of the elements.
func (a *Array[T]) Slice() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)
	return out
}

func (a *Array[T]) Size() int {
	return len(a.data)
}

// MaxSize equals Size: a fixed array is always full.
func (a *Array[T]) MaxSize() int {
	return len(a.data)
}

func (a *Array[T]) IsEmpty() bool {
	return len(a.data) == 0
}

func (a *Array[T]) Fill(value T) {
	for i := range a.data {
		a.data[i] = value
	}
}

// Assign is the historical synonym for Fill.
func (a *Array[T]) Assign(value T) {
	a.Fill(value)
}

func (a *Array[T]) Clone() *Array[T] {
	clone := &Array[T]{data: make([]T, len(a.data))}
	copy(clone.data, a.data)
	return clone
}

func (a *Array[T]) CopyFrom(src *Array[T]) error {
	if len(a.data) != len(src.data) {
		return ErrSizeMismatch
	}
	copy(a.data, src.data)
	return nil
}

// Swap exchanges all elements pairwise with other, index by index.
// Both containers keep their identity: slices borrowed via Data before
// the swap observe the other array's original values afterwards.
func (a *Array[T]) Swap(other *Array[T]) error {
	if len(a.data) != len(other.data) {
		return ErrSizeMismatch
	}
	for i := range a.data {
		a.data[i], other.data[i] = other.data[i], a.data[i]
	}
	return nil
}

// Convert overwrites dst element-wise with fn applied to the
// corresponding element of src, in index order.
func Convert[T, T2 any](dst *Array[T], src *Array[T2], fn func(T2) T) error {
	if len(dst.data) != len(src.data) {
		return ErrSizeMismatch
	}
	for i := range src.data {
		dst.data[i] = fn(src.data[i])
	}
	return nil
}

func (a *Array[T]) String() string {
	return fmt.Sprint(a.data)
}
