// Package capability detects which instruction-set tiers the host CPU
// supports and renders them as a stable bitmask and string.
//
// The detector is invoked once at process startup by the dispatch table
// (see package dispatch) and the result threaded through to pick, for
// every kernel, the fastest variant the host can actually run.
package capability

import "golang.org/x/sys/cpu"

// Tier is a bitmask of supported instruction-set tiers. A host reports
// the scalar baseline plus every tier it can run; tiers are not
// mutually exclusive (e.g. a Zen4 host reports X86Tier1 and X86Tier2).
type Tier uint32

const (
	// ScalarBaseline is always set; every host can run the scalar kernels.
	ScalarBaseline Tier = 1 << iota

	// ARMNEON is set on any arm64 host (NEON is mandatory in AArch64).
	ARMNEON
	// ARMNEONAES is set when the host additionally has AES/PMULL instructions.
	ARMNEONAES
	// ARMSVE is set when the Scalable Vector Extension is available.
	ARMSVE
	// ARMSVE2 is set when SVE2 is available.
	ARMSVE2
	// ARMSVE2AES is set when SVE2 is available together with AES instructions.
	ARMSVE2AES

	// X86Tier1 bundles AVX2 + BMI1/BMI2, the Haswell-class baseline for
	// accelerated kernels.
	X86Tier1
	// X86Tier2 bundles AVX-512F/BW/VL + VBMI2 + VPCLMULQDQ, the
	// Ice-Lake-class tier. Kernel selection does not distinguish it
	// from X86Tier1.
	X86Tier2
	// X86Tier3 adds VNNI/BF16/VPOPCNTDQ class features on top of X86Tier2.
	X86Tier3
)

// Has reports whether every bit in want is set in t.
func (t Tier) Has(want Tier) bool { return t&want == want }

// names lists tiers in the stable order used by String (and so by
// corestr.CapabilitiesString), lowest tier first within each
// architecture family.
var names = []struct {
	bit  Tier
	name string
}{
	{ScalarBaseline, "scalar"},
	{ARMNEON, "neon"},
	{ARMNEONAES, "neon_aes"},
	{ARMSVE, "sve"},
	{ARMSVE2, "sve2"},
	{ARMSVE2AES, "sve2_aes"},
	{X86Tier1, "x86_tier1_avx2_bmi"},
	{X86Tier2, "x86_tier2_avx512_vbmi2_vpclmul"},
	{X86Tier3, "x86_tier3_vnni_bf16_vpopcntdq"},
}

// String renders t as a stable, human-readable, '|'-joined list of tier
// names. This is the Go analog of the spec's capabilities_to_string.
func (t Tier) String() string {
	if t == 0 {
		return "none"
	}
	out := make([]byte, 0, 64)
	first := true
	for _, n := range names {
		if t&n.bit == 0 {
			continue
		}
		if !first {
			out = append(out, '|')
		}
		out = append(out, n.name...)
		first = false
	}
	return string(out)
}

// Detect probes the host CPU via golang.org/x/sys/cpu and returns the
// highest supported tier plus every lower tier, per architecture
// family. It is safe to call repeatedly; the probe itself is cheap and
// has no side effects on process-global state (unlike dispatch.Init,
// which is meant to run exactly once).
func Detect() Tier {
	t := ScalarBaseline
	t |= detectARM()
	t |= detectX86()
	return t
}
