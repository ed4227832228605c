package fixedarray

import "iter"

// All yields index/value pairs from index 0 upward. Each call starts a
// fresh pass.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields the same pairs as All in reverse index order.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(a.data) - 1; i >= 0; i-- {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Iterator is a random-access cursor over an array. The zero position
// is index 0; moving past either end is allowed and reported by Value.
// A cursor stays valid as long as the array it borrows from.
type Iterator[T any] struct {
	arr *Array[T]
	pos int
}

func (a *Array[T]) Iter() *Iterator[T] {
	return &Iterator[T]{arr: a}
}

func (a *Array[T]) IterAt(index int) *Iterator[T] {
	return &Iterator[T]{arr: a, pos: index}
}

func (it *Iterator[T]) Index() int {
	return it.pos
}

func (it *Iterator[T]) Valid() bool {
	return it.pos >= 0 && it.pos < len(it.arr.data)
}

func (it *Iterator[T]) Next() {
	it.pos++
}

func (it *Iterator[T]) Prev() {
	it.pos--
}

// Seek moves the cursor by offset positions in constant time.
func (it *Iterator[T]) Seek(offset int) {
	it.pos += offset
}

func (it *Iterator[T]) Value() (T, error) {
	var zero T
	if !it.Valid() {
		return zero, ErrOutOfRange
	}
	return it.arr.data[it.pos], nil
}

func (it *Iterator[T]) MustValue() T {
	return it.arr.data[it.pos]
}

// Peek dereferences the element offset positions away without moving
// the cursor.
func (it *Iterator[T]) Peek(offset int) (T, error) {
	var zero T
	i := it.pos + offset
	if i < 0 || i >= len(it.arr.data) {
		return zero, ErrOutOfRange
	}
	return it.arr.data[i], nil
}

// Distance returns how many positions ahead other is.
func (it *Iterator[T]) Distance(other *Iterator[T]) int {
	return other.pos - it.pos
}
