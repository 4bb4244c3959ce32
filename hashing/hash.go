// Package hashing implements the core's keyed, non-cryptographic hash
// (spec §4.6): a one-shot Hash function and an incremental State with
// Init/Update/Digest semantics, scalar and AES-accelerated.
//
// The streaming core is github.com/cespare/xxhash/v2's *xxhash.Digest
// (grounded on its use in
// rpcpool-yellowstone-faithful/compactindexsized/compactindex.go, where
// an xxhash.Digest is Reset, Write-accumulated, and Sum64'd exactly as
// State does here). Seeding is layered on top by absorbing the seed as
// the first eight bytes written to the digest, which keeps the
// incremental contract — update is associative over concatenation —
// intact: that property is xxhash.Digest's own invariant, and prefixing
// a fixed seed block doesn't disturb it.
//
// Hash and NewState pick their tier from the host's actual capability;
// HashScalar/HashAccelerated and NewStateScalar/NewStateAccelerated pin
// a tier explicitly, which is what corestr/dispatch wires into its
// Table so tests can force either path regardless of host CPU.
package hashing

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// State is the incremental hash state (spec §3 "hash state"): a
// seeded, absorbed-length-tracking accumulator. The zero value is not
// usable; construct one with NewState.
type State struct {
	digest *xxhash.Digest
	seed   uint64
	accel  bool
}

// NewState returns a State seeded with seed, equivalent to the spec's
// hash_state_init. It picks the AES-mix tier based on what the host CPU
// actually reports; callers that go through corestr/dispatch get
// NewStateScalar or NewStateAccelerated instead, so the tier is whatever
// the dispatch table was built (or forced) for.
func NewState(seed uint64) *State {
	return newState(seed, aesTierAvailable())
}

// NewStateScalar returns a State that never uses the AES-mix tier,
// regardless of host capability.
func NewStateScalar(seed uint64) *State {
	return newState(seed, false)
}

// NewStateAccelerated returns a State that always finalizes through the
// AES-mix tier. crypto/aes runs correctly (falling back to a
// constant-time software implementation) even on hosts without AES-NI
// or ARM crypto extensions, so this is safe to force unconditionally —
// which is what lets dispatch.Update exercise this path deterministically
// in tests regardless of the machine running them.
func NewStateAccelerated(seed uint64) *State {
	return newState(seed, true)
}

func newState(seed uint64, accel bool) *State {
	s := &State{digest: xxhash.New(), seed: seed, accel: accel}
	var seedBlock [8]byte
	binary.LittleEndian.PutUint64(seedBlock[:], seed)
	s.digest.Write(seedBlock[:])
	return s
}

// Write absorbs more data into the state (hash_state_update). It never
// fails — hash_state_update is one of the pure byte-level kernels the
// spec says cannot fail by construction — but keeps the io.Writer
// signature since xxhash.Digest does and callers may want to use
// io.Copy into a State.
func (s *State) Write(p []byte) (int, error) { return s.digest.Write(p) }

// Sum64 returns the current digest without mutating the state
// (hash_state_digest is non-destructive per spec §4.1).
func (s *State) Sum64() uint64 {
	sum := s.digest.Sum64()
	if s.accel {
		return aesFinalize(sum, s.seed)
	}
	return sum
}

// Hash is the one-shot entry point: Hash(text, seed) must equal
// NewState(seed) -> Write(text) -> Sum64() bit-for-bit (spec §4.6, §8),
// which holds here by construction since Hash simply performs that
// exact sequence.
func Hash(text []byte, seed uint64) uint64 {
	s := NewState(seed)
	s.Write(text)
	return s.Sum64()
}

// HashScalar is Hash, pinned to the non-accelerated tier.
func HashScalar(text []byte, seed uint64) uint64 {
	s := NewStateScalar(seed)
	s.Write(text)
	return s.Sum64()
}

// HashAccelerated is Hash, pinned to the AES-mix tier.
func HashAccelerated(text []byte, seed uint64) uint64 {
	s := NewStateAccelerated(seed)
	s.Write(text)
	return s.Sum64()
}
