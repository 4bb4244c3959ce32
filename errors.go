package corestr

import "fmt"

// Kind classifies the runtime failures the core can report (spec §6,
// §7). Pure byte-level kernels (Equal, Order, Copy, ...) cannot fail by
// construction and never produce a Kind at all; only operations that
// allocate scratch memory (sortkernel, intersect) surface one.
type Kind uint8

const (
	// BadAlloc indicates scratch-memory allocation failed. No partial
	// result is observable; the caller must discard any output buffers.
	BadAlloc Kind = iota
	// InvalidArgument indicates a caller-supplied argument violates a
	// documented precondition that the implementation chooses to check
	// at runtime (most contract violations are left undefined per spec
	// §7.1). No operation in this package reports it; a negative
	// allocation size surfaces as BadAlloc.
	InvalidArgument
	// Unexpected indicates an internal invariant was violated; it
	// should never occur in a correct build.
	Unexpected
)

// String renders k using the same switch-based idiom as
// dfa/lazy.ErrorKind.String() in the teacher engine.
func (k Kind) String() string {
	switch k {
	case BadAlloc:
		return "BadAlloc"
	case InvalidArgument:
		return "InvalidArgument"
	case Unexpected:
		return "Unexpected"
	default:
		return fmt.Sprintf("UnknownKind(%d)", uint8(k))
	}
}

// Error wraps a Kind with the operation that failed and, where
// available, an underlying cause.
type Error struct {
	Kind  Kind
	Op    string
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corestr: %s: %s: %v", e.Op, e.Kind, e.Cause)
	}
	return fmt.Sprintf("corestr: %s: %s", e.Op, e.Kind)
}

// Unwrap returns the underlying cause, if any, for errors.Is/As.
func (e *Error) Unwrap() error { return e.Cause }

// Is supports errors.Is comparisons against a *Error with the same Kind,
// regardless of Op/Cause — mirroring DFAError.Is in dfa/lazy/error.go.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// ErrBadAlloc is a sentinel usable with errors.Is to test for a
// BadAlloc failure regardless of which operation raised it.
var ErrBadAlloc = &Error{Kind: BadAlloc}
