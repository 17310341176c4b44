package search

import "cmp"

// LinearContains reports whether key occurs in items, scanning front to back.
// O(n).
func LinearContains[T comparable](items []T, key T) bool {
	for _, item := range items {
		if item == key {
			return true
		}
	}

	return false
}

// BinaryContains reports whether key occurs in sorted, which must be in
// ascending order. O(log n).
func BinaryContains[T cmp.Ordered](sorted []T, key T) bool {
	low, high := 0, len(sorted)-1
	for low <= high {
		mid := int(uint(low+high) >> 1)
		switch c := cmp.Compare(sorted[mid], key); {
		case c < 0:
			low = mid + 1
		case c > 0:
			high = mid - 1
		default:
			return true
		}
	}

	return false
}
