package accel

import (
	"encoding/binary"
	"math/bits"

	"github.com/coregx/corestr/kernel/serial"
)

// wideThreshold is the minimum haystack length at which the wide-word
// path amortizes its setup cost, matching the teacher's own
// `len(haystack) >= 32` cutoff for its AVX2 path.
const wideThreshold = 32

const lo8 = 0x0101010101010101
const hi8 = 0x8080808080808080

// hasZeroByte returns a word whose lowest set high bit marks the lowest
// zero byte in v, via the classic "Hacker's Delight" trick the teacher's
// memchrGeneric uses. A non-zero result means some byte in v was 0x00.
// Bits above the lowest one are not exact: the borrow also flags a 0x01
// byte that sits above a zero byte.
func hasZeroByte(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// FindByte returns the index of the first occurrence of needle in
// haystack, or -1. For inputs at or above wideThreshold on a capable
// host it scans 8 bytes per iteration via SWAR; otherwise it falls
// back to the byte-at-a-time serial kernel.
func FindByte(haystack []byte, needle byte) int {
	if !enabled || len(haystack) < wideThreshold {
		return serial.FindByte(haystack, needle)
	}
	mask := uint64(needle) * lo8
	i := 0
	for i+8 <= len(haystack) {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if z := hasZeroByte(chunk ^ mask); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
		i += 8
	}
	if rest := serial.FindByte(haystack[i:], needle); rest != -1 {
		return i + rest
	}
	return -1
}

// RFindByte returns the index of the last occurrence of needle in
// haystack, or -1.
func RFindByte(haystack []byte, needle byte) int {
	if !enabled || len(haystack) < wideThreshold {
		return serial.RFindByte(haystack, needle)
	}
	mask := uint64(needle) * lo8
	end := len(haystack)
	for end >= 8 {
		chunk := binary.LittleEndian.Uint64(haystack[end-8 : end])
		if hasZeroByte(chunk^mask) != 0 {
			return end - 8 + serial.RFindByte(haystack[end-8:end], needle)
		}
		end -= 8
	}
	if rest := serial.RFindByte(haystack[:end], needle); rest != -1 {
		return rest
	}
	return -1
}

// Find returns the index of the first occurrence of needle in
// haystack, or -1; empty needle matches at 0, too-long needle never
// matches (spec §4.2). It uses the rare-byte heuristic (see
// byte_frequencies.go) to pick a selective anchor byte before falling
// back to FindByte + full verification, the same strategy as the
// teacher's simd.Memmem.
func Find(haystack, needle []byte) int {
	n, h := len(needle), len(haystack)
	if n == 0 {
		return 0
	}
	if n > h {
		return -1
	}
	if n == 1 {
		return FindByte(haystack, needle[0])
	}
	if !enabled || h < wideThreshold {
		return serial.Find(haystack, needle)
	}

	anchor, anchorIdx := selectRareByte(needle)
	searchFrom := 0
	for {
		cand := FindByte(haystack[searchFrom:], anchor)
		if cand == -1 {
			return -1
		}
		cand += searchFrom

		start := cand - anchorIdx
		if start < 0 || start+n > h {
			searchFrom = cand + 1
			if searchFrom >= h {
				return -1
			}
			continue
		}
		if serial.EqualBytes(haystack[start:start+n], needle) {
			return start
		}
		searchFrom = cand + 1
		if searchFrom >= h {
			return -1
		}
	}
}

// RFind returns the index of the last occurrence of needle in
// haystack, or -1; empty needle matches at len(haystack).
func RFind(haystack, needle []byte) int {
	n, h := len(needle), len(haystack)
	if n == 0 {
		return h
	}
	if n > h {
		return -1
	}
	if n == 1 {
		return RFindByte(haystack, needle[0])
	}
	if !enabled || h < wideThreshold {
		return serial.RFind(haystack, needle)
	}

	anchor, anchorIdx := selectRareByte(needle)
	searchEnd := h
	for searchEnd > 0 {
		cand := RFindByte(haystack[:searchEnd], anchor)
		if cand == -1 {
			return -1
		}

		start := cand - anchorIdx
		if start >= 0 && start+n <= h && serial.EqualBytes(haystack[start:start+n], needle) {
			return start
		}
		searchEnd = cand
	}
	return -1
}

// Equal reports whether a and b hold identical bytes, comparing 8 bytes
// per iteration via SWAR on capable hosts.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if !enabled || len(a) < wideThreshold {
		return serial.EqualBytes(a, b)
	}
	i := 0
	for i+8 <= len(a) {
		if binary.LittleEndian.Uint64(a[i:]) != binary.LittleEndian.Uint64(b[i:]) {
			return false
		}
		i += 8
	}
	return serial.EqualBytes(a[i:], b[i:])
}

// Order performs the same lexicographic comparison as serial.Order, but
// skips over equal 8-byte chunks via SWAR before falling back to a
// byte-wise scan to locate the exact differing position.
func Order(a, b []byte) serial.Ordering {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if !enabled || n < wideThreshold {
		return serial.Order(a, b)
	}
	i := 0
	for i+8 <= n {
		if binary.LittleEndian.Uint64(a[i:]) == binary.LittleEndian.Uint64(b[i:]) {
			i += 8
			continue
		}
		break
	}
	return serial.Order(a[i:], b[i:])
}
