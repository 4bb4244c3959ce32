//go:build amd64

package accel

import "github.com/coregx/corestr/capability"

// enabled gates every wide-word kernel in this package behind the x86
// tier-1 capability bit (AVX2 + BMI), mirroring the teacher's
// package-level hasAVX2 flag in simd/ascii_amd64.go.
var enabled = capability.Detect().Has(capability.X86Tier1)
