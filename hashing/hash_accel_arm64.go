//go:build arm64

package hashing

import "golang.org/x/sys/cpu"

// aesTierAvailable reports whether the host's ARMv8 AES instructions
// are present.
func aesTierAvailable() bool { return cpu.ARM64.HasAES }
