// Package sortkernel implements the core's permutation sorts (spec
// §4.5): PgramsSort stably argsorts a flat array of 64-bit "p-grams",
// and SequenceArgsort stably argsorts a sequence of variable-length
// byte strings.
//
// PgramsSort is an LSB radix sort — eight passes over the key's eight
// bytes, each pass a counting sort into 256 buckets — which is stable
// by construction since within a pass equal-bucket elements are placed
// in the order they were visited. The pass structure mirrors the
// histogram/prefix-sum/scatter loop in
// original_source/drafts/sort.h's sz_sequence_argsort_ice_recursively_,
// adapted from a single fixed-width pgram pass into a full byte-by-byte
// radix sort since Go has no portable access to the AVX-512
// compare-exchange network (cswap_argsort_avx512) that code uses for
// its small-n fast path.
//
// SequenceArgsort ports that same source function's structure more
// directly: it windows each string into an 8-byte "p-gram" starting at
// a given byte offset, sorts the current range by that p-gram, and
// recurses into any tie run with the window advanced by 8 bytes — the
// same "extract next pgram, then recursively partition" shape, with an
// exact byte comparison as the terminating case once every member of a
// tie run has been fully consumed.
package sortkernel

import (
	"encoding/binary"
	"sort"

	"github.com/coregx/corestr/alloc"
	"github.com/coregx/corestr/kernel/serial"
	"github.com/coregx/corestr/sequence"
)

// PgramsSort returns a stable permutation of 0..len(keys)-1 such that
// keys[order[i]] is non-decreasing in i. alloc supplies the scratch
// buffer used as radix-sort ping-pong space; a failing allocator
// surfaces as a returned error rather than a panic, per the core's
// bad_alloc convention.
func PgramsSort(keys []uint64, a alloc.Allocator) ([]uint64, error) {
	n := len(keys)
	order := make([]uint64, n)
	for i := range order {
		order[i] = uint64(i)
	}
	if n < 2 {
		return order, nil
	}

	scratch, err := a.Alloc(n * 8)
	if err != nil {
		return nil, err
	}
	defer a.Free(scratch)

	var counts [256]int
	var starts [256]int
	for pass := 0; pass < 8; pass++ {
		shift := uint(pass * 8)
		for i := range counts {
			counts[i] = 0
		}
		for _, o := range order {
			b := byte(keys[o] >> shift)
			counts[b]++
		}
		offset := 0
		for b := 0; b < 256; b++ {
			starts[b] = offset
			offset += counts[b]
		}
		for _, o := range order {
			b := byte(keys[o] >> shift)
			binary.LittleEndian.PutUint64(scratch[starts[b]*8:], o)
			starts[b]++
		}
		for i := 0; i < n; i++ {
			order[i] = binary.LittleEndian.Uint64(scratch[i*8:])
		}
	}
	return order, nil
}

// pgramWindowBytes is the width, in bytes, of the p-gram window used to
// partition a sequence sort; it matches the 8-byte sz_pgram_t window
// in the grounding source.
const pgramWindowBytes = 8

func extractPgram(s []byte, start int) uint64 {
	var window [pgramWindowBytes]byte
	if start < len(s) {
		copy(window[:], s[start:])
	}
	return binary.BigEndian.Uint64(window[:])
}

// SequenceArgsort returns a stable permutation of 0..seq.Len()-1 such
// that the strings, taken in that order, are non-decreasing under
// lexicographic byte order.
func SequenceArgsort(seq sequence.Sequence, a alloc.Allocator) ([]uint64, error) {
	n := seq.Len()
	order := make([]uint64, n)
	for i := range order {
		order[i] = uint64(i)
	}
	if n < 2 {
		return order, nil
	}
	sortRange(seq, order, 0, n, 0)
	return order, nil
}

func sortRange(seq sequence.Sequence, order []uint64, lo, hi, startChar int) {
	if hi-lo < 2 {
		return
	}
	if allExhausted(seq, order, lo, hi, startChar) {
		sortExact(seq, order, lo, hi)
		return
	}

	window := order[lo:hi]
	pgrams := make([]uint64, len(window))
	for i, o := range window {
		pgrams[i] = extractPgram(seq.At(int(o)), startChar)
	}
	sort.Stable(&pgramOrderSort{order: window, pgrams: pgrams})

	// Recurse into each maximal run of equal p-grams; singletons are
	// already fully resolved relative to their neighbors.
	runStart := 0
	for i := 1; i <= len(pgrams); i++ {
		if i < len(pgrams) && pgrams[i] == pgrams[runStart] {
			continue
		}
		if i-runStart > 1 {
			sortRange(seq, order, lo+runStart, lo+i, startChar+pgramWindowBytes)
		}
		runStart = i
	}
}

func allExhausted(seq sequence.Sequence, order []uint64, lo, hi, startChar int) bool {
	for i := lo; i < hi; i++ {
		if len(seq.At(int(order[i]))) > startChar {
			return false
		}
	}
	return true
}

func sortExact(seq sequence.Sequence, order []uint64, lo, hi int) {
	sub := order[lo:hi]
	sort.SliceStable(sub, func(i, j int) bool {
		return serial.Order(seq.At(int(sub[i])), seq.At(int(sub[j]))) == serial.Less
	})
}

// pgramOrderSort sorts order and pgrams in lockstep by pgram value,
// keeping the permutation consistent with the key it was derived from.
type pgramOrderSort struct {
	order  []uint64
	pgrams []uint64
}

func (s *pgramOrderSort) Len() int      { return len(s.order) }
func (s *pgramOrderSort) Swap(i, j int) {
	s.order[i], s.order[j] = s.order[j], s.order[i]
	s.pgrams[i], s.pgrams[j] = s.pgrams[j], s.pgrams[i]
}
func (s *pgramOrderSort) Less(i, j int) bool { return s.pgrams[i] < s.pgrams[j] }
