// Package intersect implements the core's multiset intersection of
// string sequences (spec §4.1 "sequence_intersect", §9 design notes):
// given two sequences A and B, find every pairing of equal elements,
// respecting multiplicity (a string repeated twice in A can match at
// most two occurrences in B), and report the matched positions as two
// parallel arrays ordered by ascending position in A. Where a string
// in A has more eligible matches in B than copies of itself, the
// assignment a fixed scan order (lowest available B position first)
// resolves ties deterministically (spec §9 Open Question, resolved:
// ascending-A-position canonical ordering, first-available match).
//
// The smaller of the two sequences is loaded into an open-addressed
// hash table, keyed by corestr/hashing.Hash(element, seed) with linear
// probing — the same family of structure as the open, linearly probed
// hash table rpcpool-yellowstone-faithful/compactindexsized builds over
// xxhash-keyed buckets — sized so its load factor never exceeds one
// half, guaranteeing every probe sequence terminates at an empty slot.
// The other sequence is then scanned in its natural order, looking up
// each element and, on a hash hit, verifying the exact bytes match and
// consuming the first still-unused equal entry.
package intersect

import (
	"sort"

	"github.com/coregx/corestr/alloc"
	"github.com/coregx/corestr/hashing"
	"github.com/coregx/corestr/kernel/serial"
	"github.com/coregx/corestr/sequence"
)

// openTable is an open-addressed, linearly probed hash table over the
// positions of one sequence, keyed by hashing.Hash(element, seed).
type openTable struct {
	seq   sequence.Sequence
	seed  uint64
	mask  uint64
	key   []uint64
	pos   []int32 // -1 marks an empty slot
	used  []byte  // allocator-backed; used[i] != 0 once position i is consumed
}

func buildOpenTable(seq sequence.Sequence, seed uint64, used []byte) *openTable {
	n := seq.Len()
	capacity := uint64(4)
	for capacity < uint64(n)*2 {
		capacity *= 2
	}
	t := &openTable{
		seq:  seq,
		seed: seed,
		mask: capacity - 1,
		key:  make([]uint64, capacity),
		pos:  make([]int32, capacity),
		used: used,
	}
	for i := range t.pos {
		t.pos[i] = -1
	}
	for i := 0; i < n; i++ {
		t.insert(hashing.Hash(seq.At(i), seed), int32(i))
	}
	return t
}

func (t *openTable) insert(h uint64, idx int32) {
	i := h & t.mask
	for t.pos[i] != -1 {
		i = (i + 1) & t.mask
	}
	t.key[i] = h
	t.pos[i] = idx
}

// consume finds the first unused element equal to needle, marks it
// used, and returns its position in the hashed sequence.
func (t *openTable) consume(needle []byte) (int, bool) {
	h := hashing.Hash(needle, t.seed)
	i := h & t.mask
	for t.pos[i] != -1 {
		idx := t.pos[i]
		if t.key[i] == h && t.used[idx] == 0 && serial.EqualBytes(t.seq.At(int(idx)), needle) {
			t.used[idx] = 1
			return int(idx), true
		}
		i = (i + 1) & t.mask
	}
	return 0, false
}

// SequenceIntersect matches elements of a against elements of b under
// a seeded hash, honoring multiplicity, and returns parallel position
// arrays aPos/bPos — aPos is strictly ascending, and aPos[i]/bPos[i]
// name one matched pair.
func SequenceIntersect(a, b sequence.Sequence, alc alloc.Allocator, seed uint64) (aPos, bPos []uint64, err error) {
	type pair struct{ a, b uint64 }
	var pairs []pair

	scan := func(hashed, scanned sequence.Sequence, hashedIsA bool) error {
		used, allocErr := alc.Alloc(hashed.Len())
		if allocErr != nil {
			return allocErr
		}
		defer alc.Free(used)
		table := buildOpenTable(hashed, seed, used)
		for i := 0; i < scanned.Len(); i++ {
			idx, ok := table.consume(scanned.At(i))
			if !ok {
				continue
			}
			if hashedIsA {
				pairs = append(pairs, pair{uint64(idx), uint64(i)})
			} else {
				pairs = append(pairs, pair{uint64(i), uint64(idx)})
			}
		}
		return nil
	}

	var scanErr error
	if a.Len() <= b.Len() {
		scanErr = scan(a, b, true)
	} else {
		scanErr = scan(b, a, false)
	}
	if scanErr != nil {
		return nil, nil, scanErr
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].a < pairs[j].a })
	aPos = make([]uint64, len(pairs))
	bPos = make([]uint64, len(pairs))
	for i, p := range pairs {
		aPos[i] = p.a
		bPos[i] = p.b
	}
	return aPos, bPos, nil
}
