package serial

import (
	"bytes"
	"testing"
)

func TestCopy(t *testing.T) {
	src := []byte("hello world")
	dst := make([]byte, len(src))
	Copy(dst, src)
	if !bytes.Equal(dst, src) {
		t.Errorf("Copy result = %q, want %q", dst, src)
	}
}

func TestMoveOverlapForward(t *testing.T) {
	buf := []byte("abcdefgh")
	Move(buf[2:6], buf[0:4]) // shift "abcd" onto "cdef"
	if got := string(buf); got != "ababcdgh" {
		t.Errorf("Move overlap forward = %q, want %q", got, "ababcdgh")
	}
}

func TestMoveOverlapBackward(t *testing.T) {
	buf := []byte("abcdefgh")
	Move(buf[0:4], buf[2:6]) // shift "cdef" onto "abcd"
	if got := string(buf); got != "cdefefgh" {
		t.Errorf("Move overlap backward = %q, want %q", got, "cdefefgh")
	}
}

func TestFill(t *testing.T) {
	buf := make([]byte, 5)
	Fill(buf, 'x')
	if string(buf) != "xxxxx" {
		t.Errorf("Fill result = %q", buf)
	}
}

func TestLookup(t *testing.T) {
	var lut [256]byte
	for i := range lut {
		lut[i] = byte(255 - i) // byte complement, a non-identity transform
	}
	src := []byte("ABC")
	dst := make([]byte, len(src))
	Lookup(dst, src, &lut)
	for i, b := range src {
		if dst[i] != lut[b] {
			t.Errorf("Lookup[%d] = %d, want %d", i, dst[i], lut[b])
		}
	}
}

func TestLookupIdenticalOverlapAllowed(t *testing.T) {
	var lut [256]byte
	for i := range lut {
		lut[i] = byte(i) // identity
	}
	buf := []byte("hello")
	Lookup(buf, buf, &lut)
	if string(buf) != "hello" {
		t.Errorf("Lookup in place with identity lut = %q", buf)
	}
}

func TestByteSum(t *testing.T) {
	if got := ByteSum([]byte{1, 2, 3}); got != 6 {
		t.Errorf("ByteSum = %d, want 6", got)
	}
	if got := ByteSum(nil); got != 0 {
		t.Errorf("ByteSum(nil) = %d, want 0", got)
	}
}
