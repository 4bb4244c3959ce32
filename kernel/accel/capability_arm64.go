//go:build arm64

package accel

import "github.com/coregx/corestr/capability"

// enabled gates every wide-word kernel in this package behind the ARM
// NEON capability bit, which is mandatory on AArch64 but is still
// probed explicitly for symmetry with the amd64 build.
var enabled = capability.Detect().Has(capability.ARMNEON)
