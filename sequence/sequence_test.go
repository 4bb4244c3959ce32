package sequence

import (
	"bytes"
	"testing"
)

func TestSliceSequence(t *testing.T) {
	s := Slice{[]byte("ban"), []byte("banana"), []byte("band")}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if !bytes.Equal(s.At(1), []byte("banana")) {
		t.Fatalf("At(1) = %q", s.At(1))
	}
}

func TestTape32(t *testing.T) {
	tape := &Tape32{
		Data:    []byte("banbananaband"),
		Lengths: []uint32{3, 6, 4},
	}
	if tape.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tape.Len())
	}
	want := []string{"ban", "banana", "band"}
	for i, w := range want {
		if got := string(tape.At(i)); got != w {
			t.Errorf("At(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestTape64Empty(t *testing.T) {
	tape := &Tape64{}
	if tape.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", tape.Len())
	}
}

func TestTape64(t *testing.T) {
	tape := &Tape64{
		Data:    []byte("abcdef"),
		Lengths: []uint64{2, 2, 2},
	}
	want := []string{"ab", "cd", "ef"}
	for i, w := range want {
		if got := string(tape.At(i)); got != w {
			t.Errorf("At(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestNewTape32FromTape64(t *testing.T) {
	src := &Tape64{
		Data:    []byte("banbananaband"),
		Lengths: []uint64{3, 6, 4},
	}
	tape := NewTape32FromTape64(src)
	want := []string{"ban", "banana", "band"}
	for i, w := range want {
		if got := string(tape.At(i)); got != w {
			t.Errorf("At(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestNewTape32FromTape64PanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic narrowing an oversized length")
		}
	}()
	src := &Tape64{
		Data:    make([]byte, 1),
		Lengths: []uint64{uint64(1) << 40},
	}
	NewTape32FromTape64(src)
}
