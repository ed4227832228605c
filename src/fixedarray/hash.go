package fixedarray

import "fmt"

const (
	fnvOffsetBasis = 14695981039346656037
	fnvPrime       = 1099511628211
)

// fnvHash implements FNV-1a hash algorithm
func fnvHash(s string) uint64 {
	h := uint64(fnvOffsetBasis)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime
	}
	return h
}

// Sum combines the hashes of all elements in index order into one
// value. Equal arrays hash identically; the combine step depends on
// element order.
func Sum[T any](a *Array[T]) uint64 {
	return SumFunc(a, func(v T) uint64 {
		return fnvHash(fmt.Sprintf("%v", v))
	})
}

// SumFunc is Sum with a caller-supplied per-element hash.
func SumFunc[T any](a *Array[T], fn func(T) uint64) uint64 {
	h := uint64(fnvOffsetBasis)
	for _, v := range a.data {
		h ^= fn(v)
		h *= fnvPrime
	}
	return h
}
