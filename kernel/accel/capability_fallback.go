//go:build !amd64 && !arm64

package accel

// enabled is always false on architectures without a dedicated tier;
// every function in this package degrades to its kernel/serial
// equivalent.
var enabled = false
