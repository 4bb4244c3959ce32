//go:build !amd64 && !arm64

package hashing

// aesTierAvailable is always false on architectures with no known AES
// instruction; hashing falls back to the scalar xxhash-only digest.
func aesTierAvailable() bool { return false }
