//go:build amd64

package hashing

import "golang.org/x/sys/cpu"

// aesTierAvailable reports whether the host's AES-NI instruction is
// present (golang.org/x/sys/cpu.X86.HasAES), mirroring the teacher's
// capability-gated package-level booleans in simd/ascii_amd64.go.
func aesTierAvailable() bool { return cpu.X86.HasAES }
