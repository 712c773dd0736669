package util

import (
	"cmp"
	"slices"
)

// IndexOf returns the first index of needle in haystack, or -1.
func IndexOf[T comparable](needle T, haystack []T) int {
	for i, item := range haystack {
		if item == needle {
			return i
		}
	}
	return -1
}

// Contains checks if a slice contains a value.
func Contains[T comparable](slice []T, val T) bool {
	return IndexOf(val, slice) >= 0
}

// Keys returns the keys of a map.
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of a map in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := Keys(m)
	slices.Sort(keys)
	return keys
}

// Coalesce returns the first non-zero value, or the zero value if all are zero.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
