package serial

// Ordering mirrors the spec's {less, equal, greater} three-way result
// for Order, as an unexported-friendly exported type so dispatch and
// kernel/accel share one vocabulary.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// EqualBytes reports whether a and b hold identical bytes. Named
// EqualBytes (rather than Equal) to avoid colliding with the Ordering
// constant Equal in this package's exported surface.
//
// Example:
//
//	serial.EqualBytes([]byte("abc"), []byte("abc")) // true
func EqualBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Order performs lexicographic comparison over unsigned bytes; a
// shorter span that is a prefix of the other compares Less.
func Order(a, b []byte) Ordering {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return Less
			}
			return Greater
		}
	}
	switch {
	case len(a) < len(b):
		return Less
	case len(a) > len(b):
		return Greater
	default:
		return Equal
	}
}

// FindByte returns the index of the first occurrence of needle in
// haystack, or -1.
func FindByte(haystack []byte, needle byte) int {
	for i, b := range haystack {
		if b == needle {
			return i
		}
	}
	return -1
}

// RFindByte returns the index of the last occurrence of needle in
// haystack, or -1.
func RFindByte(haystack []byte, needle byte) int {
	for i := len(haystack) - 1; i >= 0; i-- {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// Find returns the index of the first occurrence of needle in haystack,
// or -1. An empty needle matches at index 0 (spec §4.2); a needle
// longer than haystack never matches.
func Find(haystack, needle []byte) int {
	n, h := len(needle), len(haystack)
	if n == 0 {
		return 0
	}
	if n > h {
		return -1
	}
	first := needle[0]
	for i := 0; i+n <= h; i++ {
		if haystack[i] != first {
			continue
		}
		if EqualBytes(haystack[i:i+n], needle) {
			return i
		}
	}
	return -1
}

// RFind returns the index of the last occurrence of needle in haystack,
// or -1. An empty needle matches at the end of haystack (index
// len(haystack)).
func RFind(haystack, needle []byte) int {
	n, h := len(needle), len(haystack)
	if n == 0 {
		return h
	}
	if n > h {
		return -1
	}
	first := needle[0]
	for i := h - n; i >= 0; i-- {
		if haystack[i] != first {
			continue
		}
		if EqualBytes(haystack[i:i+n], needle) {
			return i
		}
	}
	return -1
}
