//go:build arm64

package capability

import "golang.org/x/sys/cpu"

func detectARM() Tier {
	// NEON is mandatory in AArch64, but golang.org/x/sys/cpu still reports
	// ASIMD explicitly for symmetry with the optional extensions below.
	var t Tier
	if cpu.ARM64.HasASIMD {
		t |= ARMNEON
	}
	if t.Has(ARMNEON) && cpu.ARM64.HasAES && cpu.ARM64.HasPMULL {
		t |= ARMNEONAES
	}
	if cpu.ARM64.HasSVE {
		t |= ARMSVE
	}
	// golang.org/x/sys/cpu does not distinguish SVE2 from SVE1, so the
	// ARMSVE2 and ARMSVE2AES bits are never set here.
	return t
}

func detectX86() Tier { return 0 }
