// Package sequence implements the spec's abstract indexed collection of
// byte spans ({count, get-ith-length, get-ith-data, opaque handle}) and
// its two concrete "tape" flavors: a shared data buffer plus a parallel
// array of 32-bit or 64-bit lengths, with offsets computed by prefix
// sum.
package sequence

import "github.com/coregx/corestr/internal/conv"

// Sequence is the abstract indexed collection of byte spans consumed by
// sortkernel.SequenceArgsort and intersect.SequenceIntersect. Unlike the
// spec's C-level {count, get-ith-length, get-ith-data, handle} record,
// Go's slices already carry their own length, so the interface collapses
// to two methods.
type Sequence interface {
	// Len returns the number of elements.
	Len() int
	// At returns the i-th element. The returned slice aliases the
	// sequence's backing storage and must not be retained past the
	// sequence's lifetime or mutated.
	At(i int) []byte
}

// Slice adapts a plain [][]byte to Sequence. It is the simplest
// concrete Sequence and the one most callers reach for directly.
type Slice [][]byte

// Len implements Sequence.
func (s Slice) Len() int { return len(s) }

// At implements Sequence.
func (s Slice) At(i int) []byte { return s[i] }

// Tape32 is the "tape" flavor of Sequence with 32-bit lengths: a single
// shared data buffer plus a parallel length array, with per-element
// offsets computed by prefix sum rather than stored. This is the layout
// callers crossing an FFI boundary or reading from a columnar format
// tend to already have on hand.
type Tape32 struct {
	Data    []byte
	Lengths []uint32

	offsets []uint32 // lazily computed prefix sums, offsets[i] = start of element i
}

// Len implements Sequence.
func (t *Tape32) Len() int { return len(t.Lengths) }

// At implements Sequence. It computes the prefix-sum offset table on
// first use and caches it; callers that mutate Lengths after the first
// At/Len call must construct a new Tape32.
func (t *Tape32) At(i int) []byte {
	t.ensureOffsets()
	start := t.offsets[i]
	return t.Data[start : start+uint32(t.Lengths[i])]
}

func (t *Tape32) ensureOffsets() {
	if t.offsets != nil || len(t.Lengths) == 0 {
		return
	}
	t.offsets = make([]uint32, len(t.Lengths))
	var running uint32
	for i, l := range t.Lengths {
		t.offsets[i] = running
		running += l
	}
}

// Tape64 is Tape32's 64-bit-length twin, for sequences whose total data
// size can exceed 4 GiB.
type Tape64 struct {
	Data    []byte
	Lengths []uint64

	offsets []uint64
}

// Len implements Sequence.
func (t *Tape64) Len() int { return len(t.Lengths) }

// At implements Sequence.
func (t *Tape64) At(i int) []byte {
	t.ensureOffsets()
	start := t.offsets[i]
	return t.Data[start : start+t.Lengths[i]]
}

func (t *Tape64) ensureOffsets() {
	if t.offsets != nil || len(t.Lengths) == 0 {
		return
	}
	t.offsets = make([]uint64, len(t.Lengths))
	var running uint64
	for i, l := range t.Lengths {
		t.offsets[i] = running
		running += l
	}
}

// NewTape32FromTape64 narrows a Tape64 into a Tape32, for callers that
// know a 64-bit-lengthed tape actually fits the 32-bit flavor (e.g. a
// columnar source that always emits uint64 lengths, feeding a sort or
// intersect call that only needs Tape32's smaller footprint). It
// panics via conv.Uint64ToUint32 if any individual length, or the
// tape's total size, overflows uint32 — a genuine bug in the caller's
// assumption, not a recoverable condition.
func NewTape32FromTape64(src *Tape64) *Tape32 {
	lengths := make([]uint32, len(src.Lengths))
	var total uint64
	for i, l := range src.Lengths {
		lengths[i] = conv.Uint64ToUint32(l)
		total += l
	}
	return &Tape32{
		Data:    src.Data[:conv.Uint64ToUint32(total)],
		Lengths: lengths,
	}
}
