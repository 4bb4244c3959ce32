//go:build amd64

package capability

import "golang.org/x/sys/cpu"

func detectX86() Tier {
	var t Tier
	if cpu.X86.HasAVX2 && cpu.X86.HasBMI1 && cpu.X86.HasBMI2 {
		t |= X86Tier1
	}
	if t.Has(X86Tier1) && cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL &&
		cpu.X86.HasAVX512VBMI2 && cpu.X86.HasAVX512VPCLMULQDQ {
		t |= X86Tier2
	}
	if t.Has(X86Tier2) && cpu.X86.HasAVX512VNNI && cpu.X86.HasAVX512BF16 && cpu.X86.HasAVX512VPOPCNTDQ {
		t |= X86Tier3
	}
	return t
}

func detectARM() Tier { return 0 }
