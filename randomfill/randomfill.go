// Package randomfill implements the core's deterministic pseudo-random
// fill (spec §4.7): Fill(dst, nonce) writes bytes that are a pure
// function of (nonce, byte position) — not the output of a seeded,
// mutable generator advanced call-to-call. Two Fill calls with the
// same nonce and length always produce the same bytes, and a byte at
// position p depends only on (nonce, block index), never on what
// surrounds it — which lets Byte compute the byte at any position
// without generating the bytes before it. Fill always writes the stream
// from position 0 into dst; it takes no starting offset.
//
// The keystream is built from corestr/hashing run in counter mode:
// block i of the stream is hash(encode(i), nonce), an idiom directly
// analogous to a CTR-mode stream cipher, substituting the project's own
// keyed hash for a block cipher.
//
// Fill/Byte hash with whatever tier the host actually supports;
// FillScalar/FillAccelerated pin a tier explicitly, which is what
// corestr/dispatch wires into its Table so dispatch.Update can force
// either keystream deterministically in tests.
package randomfill

import (
	"encoding/binary"

	"github.com/coregx/corestr/hashing"
)

type hashFunc func(data []byte, seed uint64) uint64

// Fill writes deterministic pseudo-random bytes into dst, keyed by
// nonce, starting at position 0 of the stream. It is safe to call
// concurrently for disjoint dst slices.
func Fill(dst []byte, nonce uint64) { fill(dst, nonce, hashing.Hash) }

// FillScalar is Fill, pinned to hashing's non-accelerated tier.
func FillScalar(dst []byte, nonce uint64) { fill(dst, nonce, hashing.HashScalar) }

// FillAccelerated is Fill, pinned to hashing's AES-mix tier.
func FillAccelerated(dst []byte, nonce uint64) { fill(dst, nonce, hashing.HashAccelerated) }

func fill(dst []byte, nonce uint64, h hashFunc) {
	var counter [8]byte
	var block uint64
	for i := 0; i < len(dst); {
		binary.LittleEndian.PutUint64(counter[:], block)
		word := h(counter[:], nonce)
		var wordBytes [8]byte
		binary.LittleEndian.PutUint64(wordBytes[:], word)
		n := copy(dst[i:], wordBytes[:])
		i += n
		block++
	}
}

// Byte returns the single deterministic pseudo-random byte at position
// pos of the (nonce) stream, without materializing any prefix of it —
// the direct expression of "a function of (nonce, position)".
func Byte(nonce uint64, pos uint64) byte { return byteAt(nonce, pos, hashing.Hash) }

func byteAt(nonce, pos uint64, h hashFunc) byte {
	block := pos / 8
	offset := pos % 8
	var counter [8]byte
	binary.LittleEndian.PutUint64(counter[:], block)
	word := h(counter[:], nonce)
	var wordBytes [8]byte
	binary.LittleEndian.PutUint64(wordBytes[:], word)
	return wordBytes[offset]
}
