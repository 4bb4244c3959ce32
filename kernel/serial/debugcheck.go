//go:build !corestr_debug

package serial

// checkLookupOverlap is a no-op in production builds. Build with the
// corestr_debug tag to enable the partial-overlap assertion (mirrors
// the SZ_DEBUG-gated checks in the original sort/search kernels).
func checkLookupOverlap(dst, src []byte) {}
