package fixedarray

import "cmp"

// Equal reports whether a and b hold the same elements at every index.
// Arrays of different length are never equal.
func Equal[T comparable](a, b *Array[T]) bool {
	if len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

func EqualFunc[T1, T2 any](a *Array[T1], b *Array[T2], eq func(T1, T2) bool) bool {
	if len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if !eq(a.data[i], b.data[i]) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically: the first differing index
// decides. When one array is a prefix of the other, the shorter one
// orders first.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	for i := 0; i < len(a.data) && i < len(b.data); i++ {
		if c := cmp.Compare(a.data[i], b.data[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.data), len(b.data))
}

func CompareFunc[T1, T2 any](a *Array[T1], b *Array[T2], compare func(T1, T2) int) int {
	for i := 0; i < len(a.data) && i < len(b.data); i++ {
		if c := compare(a.data[i], b.data[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.data), len(b.data))
}

func Less[T cmp.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) < 0
}
