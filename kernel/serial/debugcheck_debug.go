//go:build corestr_debug

package serial

import "unsafe"

// checkLookupOverlap panics if dst and src partially overlap: share some
// but not all of their backing bytes. Lookup's contract (spec §9) allows
// dst and src to be identical and requires no overlap otherwise; this
// check only runs under the corestr_debug build tag, the Go analog of
// the original's SZ_DEBUG-gated assertions, since the bounds math below
// is too costly to pay on every call in a release build.
func checkLookupOverlap(dst, src []byte) {
	if len(dst) == 0 || len(src) == 0 {
		return
	}
	dstStart := uintptr(unsafe.Pointer(&dst[0]))
	dstEnd := dstStart + uintptr(len(dst))
	srcStart := uintptr(unsafe.Pointer(&src[0]))
	srcEnd := srcStart + uintptr(len(src))

	if dstStart == srcStart && len(dst) == len(src) {
		return // identical span: allowed
	}
	if dstStart < srcEnd && srcStart < dstEnd {
		panic("serial: Lookup: dst and src partially overlap")
	}
}
