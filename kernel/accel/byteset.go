package accel

import "github.com/coregx/corestr/kernel/serial"

// nibbleTables compresses a 256-bit ByteSet into two 16-entry lookup
// tables of 8-bit masks, indexed by low/high nibble (spec §4.2: "compress the
// 256-bit set into byte-parallel lookups, e.g. two-nibble
// table-lookup per byte"). low[l] always has exactly bit (l&7)
// set; high[h] ORs in bit (l&7) for every low nibble l such that
// byte (h<<4|l) is a member. A byte is then a *candidate* iff
// low[b&0x0F]&high[b>>4] != 0 — true for every real member (no
// false negatives), with rare false positives from low nibbles that
// alias onto the same bit (l and l+8). The candidate set must still be
// confirmed against the exact ByteSet, which FindByteSet/RFindByteSet
// below do.
type nibbleTables struct {
	low  [16]byte
	high [16]byte
}

func buildNibbleTables(set *serial.ByteSet) nibbleTables {
	var t nibbleTables
	for l := 0; l < 16; l++ {
		t.low[l] = 1 << uint(l&7)
	}
	for h := 0; h < 16; h++ {
		var mask byte
		for l := 0; l < 16; l++ {
			if set.Test(byte(h<<4 | l)) {
				mask |= 1 << uint(l&7)
			}
		}
		t.high[h] = mask
	}
	return t
}

func (t *nibbleTables) candidate(b byte) bool {
	return t.low[b&0x0F]&t.high[b>>4] != 0
}

// FindByteSet returns the index of the first byte in text whose value
// is a member of set, or -1. On capable hosts it uses the nibble-table
// candidate filter to skip most non-members before paying for the
// exact bitmap test.
func FindByteSet(text []byte, set *serial.ByteSet) int {
	if !enabled || len(text) < wideThreshold {
		return serial.FindByteSet(text, set)
	}
	tables := buildNibbleTables(set)
	for i, b := range text {
		if tables.candidate(b) && set.Test(b) {
			return i
		}
	}
	return -1
}

// RFindByteSet returns the index of the last byte in text whose value
// is a member of set, or -1.
func RFindByteSet(text []byte, set *serial.ByteSet) int {
	if !enabled || len(text) < wideThreshold {
		return serial.RFindByteSet(text, set)
	}
	tables := buildNibbleTables(set)
	for i := len(text) - 1; i >= 0; i-- {
		if tables.candidate(text[i]) && set.Test(text[i]) {
			return i
		}
	}
	return -1
}
