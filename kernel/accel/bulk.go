package accel

import (
	"encoding/binary"

	"github.com/coregx/corestr/kernel/serial"
)

// Copy copies src into dst; dst and src must not overlap. Go's builtin
// copy already moves in machine-word-sized chunks, so Copy simply
// delegates — there is no faster portable Go idiom to reach for, and
// the accelerated entry exists so the dispatch table has a tier-
// specific pointer to install, matching the spec's operation surface.
func Copy(dst, src []byte) { serial.Copy(dst, src) }

// Move copies src into dst, overlap-safe regardless of direction.
func Move(dst, src []byte) { serial.Move(dst, src) }

// Fill sets every byte of dst to v, writing 8 bytes per iteration via a
// broadcast word on capable hosts.
func Fill(dst []byte, v byte) {
	if !enabled || len(dst) < wideThreshold {
		serial.Fill(dst, v)
		return
	}
	word := uint64(v) * lo8
	i := 0
	for i+8 <= len(dst) {
		binary.LittleEndian.PutUint64(dst[i:], word)
		i += 8
	}
	serial.Fill(dst[i:], v)
}

// ByteSum returns the unsigned sum of every byte in p, accumulating 8
// bytes per iteration via SWAR lane extraction on capable hosts.
func ByteSum(p []byte) uint64 {
	if !enabled || len(p) < wideThreshold {
		return serial.ByteSum(p)
	}
	var sum uint64
	i := 0
	for i+8 <= len(p) {
		w := binary.LittleEndian.Uint64(p[i:])
		for lane := 0; lane < 8; lane++ {
			sum += (w >> (8 * lane)) & 0xFF
		}
		i += 8
	}
	return sum + serial.ByteSum(p[i:])
}

// Lookup sets dst[i] = lut[src[i]]. The accelerated entry degrades to
// the byte-at-a-time kernel: a 256-entry gather has no cheap portable
// wide-word form (a real SIMD build would use a vector permute/gather
// instruction here), so the gain from the capability-gated path is nil
// and it exists purely to give dispatch a tier-specific pointer.
func Lookup(dst, src []byte, lut *[256]byte) { serial.Lookup(dst, src, lut) }
