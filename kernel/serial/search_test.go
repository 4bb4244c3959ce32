package serial

import "testing"

func TestFindByteScenario(t *testing.T) {
	// Spec §8 scenario 1.
	h := []byte("abracadabra")
	if got := FindByte(h, 'a'); got != 0 {
		t.Errorf("FindByte = %d, want 0", got)
	}
	if got := RFindByte(h, 'a'); got != 10 {
		t.Errorf("RFindByte = %d, want 10", got)
	}
}

func TestFindByteNotFound(t *testing.T) {
	if got := FindByte([]byte("abc"), 'z'); got != -1 {
		t.Errorf("FindByte = %d, want -1", got)
	}
	if got := RFindByte(nil, 'z'); got != -1 {
		t.Errorf("RFindByte(nil) = %d, want -1", got)
	}
}

func TestFindScenario(t *testing.T) {
	// Spec §8 scenario 2.
	h := []byte("abcabcabc")
	if got := Find(h, []byte("cab")); got != 2 {
		t.Errorf("Find = %d, want 2", got)
	}
	if got := RFind(h, []byte("cab")); got != 5 {
		t.Errorf("RFind = %d, want 5", got)
	}
}

func TestFindEmptyNeedle(t *testing.T) {
	h := []byte("hello")
	if got := Find(h, nil); got != 0 {
		t.Errorf("Find(h, \"\") = %d, want 0", got)
	}
	if got := RFind(h, nil); got != len(h) {
		t.Errorf("RFind(h, \"\") = %d, want %d", got, len(h))
	}
}

func TestFindNeedleLongerThanHaystack(t *testing.T) {
	if got := Find([]byte("ab"), []byte("abc")); got != -1 {
		t.Errorf("Find = %d, want -1", got)
	}
	if got := RFind([]byte("ab"), []byte("abc")); got != -1 {
		t.Errorf("RFind = %d, want -1", got)
	}
}

func TestEqualReflexive(t *testing.T) {
	a := []byte("the quick brown fox")
	if !EqualBytes(a, a) {
		t.Error("EqualBytes(a, a) = false, want true")
	}
	if Order(a, a) != Equal {
		t.Error("Order(a, a) != Equal")
	}
}

func TestOrderShorterPrefixIsLess(t *testing.T) {
	if got := Order([]byte("ban"), []byte("banana")); got != Less {
		t.Errorf("Order(ban, banana) = %v, want Less", got)
	}
	if got := Order([]byte("banana"), []byte("ban")); got != Greater {
		t.Errorf("Order(banana, ban) = %v, want Greater", got)
	}
}

func TestOrderLexicographic(t *testing.T) {
	cases := []struct {
		a, b string
		want Ordering
	}{
		{"abc", "abd", Less},
		{"abd", "abc", Greater},
		{"", "", Equal},
		{"", "a", Less},
	}
	for _, c := range cases {
		if got := Order([]byte(c.a), []byte(c.b)); got != c.want {
			t.Errorf("Order(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
