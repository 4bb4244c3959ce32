// Package dispatch holds the process-wide table of function pointers
// the root corestr package calls through (spec §4.1's dispatch model:
// "detect host capability once, pick an implementation per operation,
// never branch on capability again on the hot path"). It is the Go
// analog of c/stringzilla.c's sz_implementations_t: a flat struct of
// function fields populated once at process start and re-populated
// only for tests that want to force a different tier.
package dispatch

import (
	"sync"

	"github.com/coregx/corestr/capability"
	"github.com/coregx/corestr/hashing"
	"github.com/coregx/corestr/kernel/accel"
	"github.com/coregx/corestr/kernel/serial"
	"github.com/coregx/corestr/randomfill"
)

// Table is the flat set of operation entry points corestr calls
// through. Every field has the same signature the serial and accel
// packages already expose, so populating a Table is purely a matter of
// picking which package's function to store.
//
// The table is read on every call from potentially many goroutines;
// keeping it to plain function values (rather than an interface or a
// map) keeps it small, read-mostly, and cheap to copy out of Current.
type Table struct {
	Equal         func(a, b []byte) bool
	Order         func(a, b []byte) serial.Ordering
	Copy          func(dst, src []byte)
	Move          func(dst, src []byte)
	Fill          func(dst []byte, v byte)
	Lookup        func(dst, src []byte, lut *[256]byte)
	ByteSum       func(p []byte) uint64
	FindByte      func(haystack []byte, needle byte) int
	RFindByte     func(haystack []byte, needle byte) int
	Find          func(haystack, needle []byte) int
	RFind         func(haystack, needle []byte) int
	FindByteSet   func(text []byte, set *serial.ByteSet) int
	RFindByteSet  func(text []byte, set *serial.ByteSet) int

	Hash         func(text []byte, seed uint64) uint64
	NewHashState func(seed uint64) *hashing.State
	FillRandom   func(dst []byte, nonce uint64)
}

func scalarTable() Table {
	return Table{
		Equal:        serial.EqualBytes,
		Order:        serial.Order,
		Copy:         serial.Copy,
		Move:         serial.Move,
		Fill:         serial.Fill,
		Lookup:       serial.Lookup,
		ByteSum:      serial.ByteSum,
		FindByte:     serial.FindByte,
		RFindByte:    serial.RFindByte,
		Find:         serial.Find,
		RFind:        serial.RFind,
		FindByteSet:  serial.FindByteSet,
		RFindByteSet: serial.RFindByteSet,

		Hash:         hashing.HashScalar,
		NewHashState: hashing.NewStateScalar,
		FillRandom:   randomfill.FillScalar,
	}
}

func acceleratedTable() Table {
	return Table{
		Equal:        accel.Equal,
		Order:        accel.Order,
		Copy:         accel.Copy,
		Move:         accel.Move,
		Fill:         accel.Fill,
		Lookup:       accel.Lookup,
		ByteSum:      accel.ByteSum,
		FindByte:     accel.FindByte,
		RFindByte:    accel.RFindByte,
		Find:         accel.Find,
		RFind:        accel.RFind,
		FindByteSet:  accel.FindByteSet,
		RFindByteSet: accel.RFindByteSet,

		Hash:         hashing.HashAccelerated,
		NewHashState: hashing.NewStateAccelerated,
		FillRandom:   randomfill.FillAccelerated,
	}
}

var (
	once    sync.Once
	mu      sync.RWMutex
	current Table
	tier    capability.Tier
)

// tableFor picks the table for a detected tier. accel's own kernels
// already fall back to serial internally below their size threshold or
// when the build's capability flags are unset, so the choice here is
// simply "did we detect anything beyond the scalar baseline".
func tableFor(t capability.Tier) Table {
	if t&^capability.ScalarBaseline == 0 {
		return scalarTable()
	}
	return acceleratedTable()
}

// Init populates the dispatch table exactly once, detecting the host's
// capability tier. Subsequent calls are no-ops; use Update to force a
// different tier (tests only).
func Init() {
	once.Do(func() {
		t := capability.Detect()
		mu.Lock()
		tier = t
		current = tableFor(t)
		mu.Unlock()
	})
}

// Update re-populates the dispatch table for the given tier, bypassing
// the Init guard. It exists for tests that need to exercise a specific
// tier's kernels regardless of the host's real capabilities; the
// caller is responsible for quiescing any concurrent operation calls
// while Update runs (spec §5: table swaps are not linearized against
// in-flight calls).
func Update(t capability.Tier) {
	mu.Lock()
	tier = t
	current = tableFor(t)
	mu.Unlock()
}

// Current returns a copy of the live dispatch table.
func Current() Table {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// CurrentTier returns the capability tier the live table was built
// for, mainly so corestr.Capabilities() has something to report.
func CurrentTier() capability.Tier {
	mu.RLock()
	defer mu.RUnlock()
	return tier
}
