package accel

import (
	"math/rand"
	"testing"

	"github.com/coregx/corestr/kernel/serial"
)

// randBytes returns a deterministic pseudo-random byte slice; accel
// and serial agreement tests don't need cryptographic randomness, just
// reproducibility across runs.
func randBytes(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	r.Read(b)
	return b
}

func TestFindByteAgreesWithSerial(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 7, 8, 31, 32, 33, 100, 1000} {
		hay := randBytes(r, n)
		for _, needle := range []byte{0x00, 'a', 0xFF} {
			want := serial.FindByte(hay, needle)
			got := FindByte(hay, needle)
			if got != want {
				t.Fatalf("n=%d needle=%x: FindByte = %d, want %d", n, needle, got, want)
			}
		}
	}
}

func TestRFindByteAgreesWithSerial(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for _, n := range []int{0, 1, 7, 8, 31, 32, 33, 100, 1000} {
		hay := randBytes(r, n)
		for _, needle := range []byte{0x00, 'a', 0xFF} {
			want := serial.RFindByte(hay, needle)
			got := RFindByte(hay, needle)
			if got != want {
				t.Fatalf("n=%d needle=%x: RFindByte = %d, want %d", n, needle, got, want)
			}
		}
	}
}

func TestFindByteInjectedMatch(t *testing.T) {
	hay := make([]byte, 200)
	for i := range hay {
		hay[i] = 'x'
	}
	hay[150] = 'Q'
	if got := FindByte(hay, 'Q'); got != 150 {
		t.Fatalf("FindByte = %d, want 150", got)
	}
	if got := RFindByte(hay, 'Q'); got != 150 {
		t.Fatalf("RFindByte = %d, want 150", got)
	}
}

func TestFindAgreesWithSerial(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	haystacks := [][]byte{
		[]byte(""),
		[]byte("abcabcabc"),
		randBytes(r, 500),
	}
	needles := [][]byte{nil, []byte("a"), []byte("cab"), []byte("zzz"), []byte("abcabcabcabcabcabcabcabcabcabcabc")}
	for _, h := range haystacks {
		for _, n := range needles {
			want := serial.Find(h, n)
			got := Find(h, n)
			if got != want {
				t.Fatalf("Find(%q, %q) = %d, want %d", h, n, got, want)
			}
			wantR := serial.RFind(h, n)
			gotR := RFind(h, n)
			if gotR != wantR {
				t.Fatalf("RFind(%q, %q) = %d, want %d", h, n, gotR, wantR)
			}
		}
	}
}

func TestFindScenarioLargeHaystack(t *testing.T) {
	hay := make([]byte, 300)
	for i := range hay {
		hay[i] = byte('a' + i%3)
	}
	copy(hay[280:], "needle-here")
	if got := Find(hay, []byte("needle-here")); got != 280 {
		t.Fatalf("Find = %d, want 280", got)
	}
}

func TestEqualAndOrderAgreeWithSerial(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for _, n := range []int{0, 8, 31, 32, 64, 1000} {
		a := randBytes(r, n)
		b := make([]byte, n)
		copy(b, a)
		if n > 0 {
			b[n-1] ^= 0xFF
		}
		if Equal(a, a) != true {
			t.Fatalf("Equal(a, a) = false for n=%d", n)
		}
		if got, want := Equal(a, b), serial.EqualBytes(a, b); got != want {
			t.Fatalf("Equal mismatch n=%d: got %v want %v", n, got, want)
		}
		if got, want := Order(a, b), serial.Order(a, b); got != want {
			t.Fatalf("Order mismatch n=%d: got %v want %v", n, got, want)
		}
	}
}

func TestByteSumAgreesWithSerial(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for _, n := range []int{0, 1, 8, 31, 32, 1000} {
		p := randBytes(r, n)
		if got, want := ByteSum(p), serial.ByteSum(p); got != want {
			t.Fatalf("ByteSum mismatch n=%d: got %d want %d", n, got, want)
		}
	}
}

func TestFillAgreesWithSerial(t *testing.T) {
	for _, n := range []int{0, 1, 8, 31, 32, 1000} {
		got := make([]byte, n)
		want := make([]byte, n)
		Fill(got, 0x5A)
		serial.Fill(want, 0x5A)
		if string(got) != string(want) {
			t.Fatalf("Fill mismatch n=%d", n)
		}
	}
}

func TestFindByteSetAgreesWithSerial(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	set := serial.FromBytes([]byte{',', ' ', '\t', '\n'})
	for _, n := range []int{0, 1, 31, 32, 500} {
		text := randBytes(r, n)
		want := serial.FindByteSet(text, &set)
		got := FindByteSet(text, &set)
		if got != want {
			t.Fatalf("FindByteSet mismatch n=%d: got %d want %d", n, got, want)
		}
		wantR := serial.RFindByteSet(text, &set)
		gotR := RFindByteSet(text, &set)
		if gotR != wantR {
			t.Fatalf("RFindByteSet mismatch n=%d: got %d want %d", n, gotR, wantR)
		}
	}
}
