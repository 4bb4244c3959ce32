package alloc

import (
	"errors"
	"testing"
)

func TestDefaultAlloc(t *testing.T) {
	a := Default()
	buf, err := a.Alloc(16)
	if err != nil {
		t.Fatalf("Alloc(16) returned error: %v", err)
	}
	if len(buf) != 16 {
		t.Fatalf("Alloc(16) returned buffer of length %d", len(buf))
	}
	for _, b := range buf {
		if b != 0 {
			t.Fatalf("Alloc buffer is not zeroed")
		}
	}
	a.Free(buf) // must not panic
}

func TestDefaultAllocZero(t *testing.T) {
	buf, err := Default().Alloc(0)
	if err != nil || len(buf) != 0 {
		t.Fatalf("Alloc(0) = (%v, %v), want (empty, nil)", buf, err)
	}
}

func TestDefaultAllocNegative(t *testing.T) {
	_, err := Default().Alloc(-1)
	if !errors.Is(err, ErrBadAlloc) {
		t.Fatalf("Alloc(-1) err = %v, want ErrBadAlloc", err)
	}
}

func TestFailingAllocator(t *testing.T) {
	f := Failing(2)
	if _, err := f.Alloc(8); err != nil {
		t.Fatalf("first Alloc: unexpected error %v", err)
	}
	if _, err := f.Alloc(8); !errors.Is(err, ErrBadAlloc) {
		t.Fatalf("second Alloc: err = %v, want ErrBadAlloc", err)
	}
	if _, err := f.Alloc(8); err != nil {
		t.Fatalf("third Alloc: unexpected error %v", err)
	}
}

func TestFailingAllocatorNeverFails(t *testing.T) {
	f := Failing(0)
	for i := 0; i < 5; i++ {
		if _, err := f.Alloc(4); err != nil {
			t.Fatalf("Alloc call %d: unexpected error %v", i, err)
		}
	}
}
