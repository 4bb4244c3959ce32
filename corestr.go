// Package corestr provides a capability-dispatched set of string and
// byte-buffer primitives: search (forward/reverse, single byte,
// substring, byte-set), equality and lexicographic ordering, bulk
// copy/move/fill/lookup-table transforms, byte-summing, a keyed
// non-cryptographic hash (one-shot and incremental), a deterministic
// pseudo-random fill, stable permutation sorts over 64-bit "p-grams"
// and over variable-length string sequences, and multiset intersection
// of string sequences.
//
// The search, comparison, bulk, hash and random-fill operations below
// are thin wrappers over the process-wide dispatch table (see
// corestr/dispatch): the table is populated once, at load time, by
// probing host CPU capability, and every call here simply reads the
// currently-installed function pointer. The accelerated kernels still
// test a capability flag computed once at package load, falling back to
// the scalar kernels when it is unset or the input is short.
// PgramsSort, SequenceArgsort and SequenceIntersect are not in the
// table; they call corestr/sortkernel and corestr/intersect directly.
package corestr

import (
	"github.com/coregx/corestr/alloc"
	"github.com/coregx/corestr/capability"
	"github.com/coregx/corestr/dispatch"
	"github.com/coregx/corestr/hashing"
	"github.com/coregx/corestr/intersect"
	"github.com/coregx/corestr/kernel/serial"
	"github.com/coregx/corestr/sequence"
	"github.com/coregx/corestr/sortkernel"
)

func init() {
	// The Go analog of c/stringzilla.c's __attribute__((constructor))
	// trick: populate the dispatch table once, before any exported
	// function here can be called.
	dispatch.Init()
}

// Ordering is the three-way result of Order; re-exported so callers
// never need to import kernel/serial directly.
type Ordering = serial.Ordering

// ByteSet is a 256-bit membership bitmap; re-exported from
// kernel/serial for the same reason.
type ByteSet = serial.ByteSet

// The three possible Ordering results, re-exported from kernel/serial.
const (
	OrderLess    = serial.Less
	OrderEqual   = serial.Equal
	OrderGreater = serial.Greater
)

// ByteSetFromBytes builds a ByteSet containing exactly the given
// bytes.
func ByteSetFromBytes(members []byte) ByteSet { return serial.FromBytes(members) }

// Equal reports whether a and b hold identical bytes.
func Equal(a, b []byte) bool { return dispatch.Current().Equal(a, b) }

// Order returns the lexicographic ordering of a relative to b.
func Order(a, b []byte) Ordering { return dispatch.Current().Order(a, b) }

// Copy copies src into dst. dst and src must not overlap; use Move if
// they might.
func Copy(dst, src []byte) { dispatch.Current().Copy(dst, src) }

// Move copies src into dst, safe for any overlap.
func Move(dst, src []byte) { dispatch.Current().Move(dst, src) }

// Fill sets every byte of dst to v.
func Fill(dst []byte, v byte) { dispatch.Current().Fill(dst, v) }

// Lookup sets dst[i] = lut[src[i]] for every i.
func Lookup(dst, src []byte, lut *[256]byte) { dispatch.Current().Lookup(dst, src, lut) }

// ByteSum returns the unsigned, wrapping sum of every byte in p.
func ByteSum(p []byte) uint64 { return dispatch.Current().ByteSum(p) }

// FindByte returns the index of the first occurrence of needle in
// haystack, or -1.
func FindByte(haystack []byte, needle byte) int { return dispatch.Current().FindByte(haystack, needle) }

// RFindByte returns the index of the last occurrence of needle in
// haystack, or -1.
func RFindByte(haystack []byte, needle byte) int {
	return dispatch.Current().RFindByte(haystack, needle)
}

// Find returns the index of the first occurrence of needle in
// haystack, or -1. An empty needle matches at index 0.
func Find(haystack, needle []byte) int { return dispatch.Current().Find(haystack, needle) }

// RFind returns the index of the last occurrence of needle in
// haystack, or -1. An empty needle matches at len(haystack).
func RFind(haystack, needle []byte) int { return dispatch.Current().RFind(haystack, needle) }

// FindByteSet returns the index of the first byte in text that
// belongs to set, or -1.
func FindByteSet(text []byte, set *ByteSet) int { return dispatch.Current().FindByteSet(text, set) }

// RFindByteSet returns the index of the last byte in text that
// belongs to set, or -1.
func RFindByteSet(text []byte, set *ByteSet) int {
	return dispatch.Current().RFindByteSet(text, set)
}

// Hash returns the keyed, non-cryptographic hash of text under seed,
// using the tier the live dispatch table was built for.
func Hash(text []byte, seed uint64) uint64 { return dispatch.Current().Hash(text, seed) }

// HashState is the incremental counterpart of Hash.
type HashState = hashing.State

// NewHashState returns a HashState seeded with seed, using the tier the
// live dispatch table was built for.
func NewHashState(seed uint64) *HashState { return dispatch.Current().NewHashState(seed) }

// FillRandom writes a deterministic pseudo-random byte stream into
// dst, keyed by nonce; it is a pure function of (nonce, position). Uses
// the tier the live dispatch table was built for.
func FillRandom(dst []byte, nonce uint64) { dispatch.Current().FillRandom(dst, nonce) }

// PgramsSort returns a stable permutation of 0..len(keys)-1 ordering
// keys ascending. alloc supplies the sort's scratch memory.
func PgramsSort(keys []uint64, alc alloc.Allocator) ([]uint64, error) {
	order, err := sortkernel.PgramsSort(keys, alc)
	if err != nil {
		return nil, &Error{Kind: BadAlloc, Op: "PgramsSort", Cause: err}
	}
	return order, nil
}

// SequenceArgsort returns a stable permutation of 0..seq.Len()-1
// ordering seq's elements ascending under lexicographic byte order.
func SequenceArgsort(seq sequence.Sequence, alc alloc.Allocator) ([]uint64, error) {
	order, err := sortkernel.SequenceArgsort(seq, alc)
	if err != nil {
		return nil, &Error{Kind: BadAlloc, Op: "SequenceArgsort", Cause: err}
	}
	return order, nil
}

// SequenceIntersect matches elements of a against elements of b
// (honoring multiplicity) and returns parallel position arrays,
// ascending in a's positions.
func SequenceIntersect(a, b sequence.Sequence, alc alloc.Allocator, seed uint64) (aPos, bPos []uint64, err error) {
	aPos, bPos, err = intersect.SequenceIntersect(a, b, alc, seed)
	if err != nil {
		return nil, nil, &Error{Kind: BadAlloc, Op: "SequenceIntersect", Cause: err}
	}
	return aPos, bPos, nil
}

// Capabilities returns the capability tier the live dispatch table was
// built for.
func Capabilities() capability.Tier { return dispatch.CurrentTier() }

// CapabilitiesString renders Capabilities() as a stable, human-readable
// string.
func CapabilitiesString() string { return Capabilities().String() }

// DispatchTableInit populates the dispatch table if it has not been
// populated yet; callers never need to call this directly since the
// package init does so, but it is exported for parity with the spec's
// explicit init entry point.
func DispatchTableInit() { dispatch.Init() }

// DispatchTableUpdate forces the dispatch table to the given
// capability tier, bypassing host detection. Intended for tests; the
// caller must ensure no other goroutine is calling into this package
// concurrently while the table is swapped.
func DispatchTableUpdate(tier capability.Tier) { dispatch.Update(tier) }
