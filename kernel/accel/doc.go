// Package accel provides accelerated kernel variants selected by the
// dispatch table when the host reports a capability tier beyond the
// scalar baseline (capability.ScalarBaseline).
//
// Every function here must agree bit-for-bit with its kernel/serial
// counterpart for identical inputs (spec §8) — accel only changes how
// fast the answer arrives, never what the answer is.
//
// The corpus snapshot this module was grown from ships accelerated
// kernels as //go:noescape declarations backed by hand-written
// assembly (see kernel/accel's grounding, the teacher's simd package);
// the .s files themselves were not part of the retrieved pack. Rather
// than author unverifiable amd64/arm64 assembly from scratch, this
// package expresses the same "wide load, branch-free candidate
// detection, verify" strategy as portable, word-at-a-time (SWAR) Go —
// correct on every architecture, gated behind the same capability
// checks the assembly would have used. See DESIGN.md.
package accel
