package hashing

import (
	"crypto/aes"
	"encoding/binary"
)

// aesFinalize runs the scalar xxhash digest through one AES block
// encryption keyed by seed, used as the accelerated tier's extra
// avalanche step (spec §4.6: "non-cryptographic... may use AES-NI
// rounds purely for mixing speed, not for cryptographic security").
// This is not a cryptographic primitive — the "key" is derived from
// the public seed, not a secret — it exists only to exercise the
// AES-capable path with a genuinely different, self-consistent output
// from the scalar tier. Hash output is not required to agree
// bit-for-bit across tiers (spec §8 lists that requirement for the
// pure byte kernels only).
func aesFinalize(sum uint64, seed uint64) uint64 {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[0:8], seed)
	binary.LittleEndian.PutUint64(key[8:16], seed)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		// aes.NewCipher only fails on a bad key length; 16 bytes is
		// always valid, so this is unreachable.
		return sum
	}
	var in, out [16]byte
	binary.LittleEndian.PutUint64(in[0:8], sum)
	binary.LittleEndian.PutUint64(in[8:16], ^sum)
	block.Encrypt(out[:], in[:])
	return binary.LittleEndian.Uint64(out[0:8])
}
