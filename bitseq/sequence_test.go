package bitseq

import "testing"

func TestFromBinaryStringLength(t *testing.T) {
	s, err := FromBinaryString("1101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 4 {
		t.Fatalf("expected length 4, got %d", s.Len())
	}
	want := []bool{true, true, false, true}
	for i, w := range want {
		got, err := s.Bit(i)
		if err != nil {
			t.Fatalf("Bit(%d): %v", i, err)
		}
		if got != w {
			t.Fatalf("Bit(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestFromBinaryStringRejectsNonBinary(t *testing.T) {
	if _, err := FromBinaryString("102"); err == nil {
		t.Fatal("expected an error for a non-binary string")
	}
}

func TestNegativeIndex(t *testing.T) {
	s, _ := FromBinaryString("1101")
	got, err := s.Bit(-1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatalf("Bit(-1) = %v, want true (last bit)", got)
	}
}

func TestFromIntMinimumWidth(t *testing.T) {
	if FromInt(0).Len() != 0 {
		t.Fatalf("FromInt(0) should be empty, got length %d", FromInt(0).Len())
	}
	s := FromInt(5) // 101
	if s.Len() != 3 {
		t.Fatalf("FromInt(5) length = %d, want 3", s.Len())
	}
	v, err := s.ToInt()
	if err != nil || v != 5 {
		t.Fatalf("round trip failed: v=%d err=%v", v, err)
	}
}

// P9: integer round trip for 0 < v < 2^32.
func TestIntRoundTripProperty(t *testing.T) {
	for _, v := range []uint32{1, 2, 3, 127, 128, 255, 256, 1 << 20, 1<<32 - 1} {
		s := FromInt(v)
		got, err := s.ToInt()
		if err != nil {
			t.Fatalf("ToInt(%d): %v", v, err)
		}
		if got != v {
			t.Fatalf("round trip for %d produced %d", v, got)
		}
	}
}

func TestAppendSuffixAlwaysEightBits(t *testing.T) {
	s := Empty().AppendSuffix(0x00)
	if s.Len() != 8 {
		t.Fatalf("AppendSuffix(0x00) length = %d, want 8", s.Len())
	}
	v, err := s.ToInt()
	if err != nil || v != 0 {
		t.Fatalf("AppendSuffix(0x00) should decode to 0, got %d err=%v", v, err)
	}

	full := Empty().AppendSuffix(0xff)
	if full.Len() != 8 {
		t.Fatalf("AppendSuffix(0xff) length = %d, want 8", full.Len())
	}
	v, err = full.ToInt()
	if err != nil || v != 0xff {
		t.Fatalf("AppendSuffix(0xff) should decode to 255, got %d err=%v", v, err)
	}
}

// P6: slice homomorphism.
func TestSliceHomomorphism(t *testing.T) {
	s, _ := FromBinaryString("110100111010")
	full, err := s.Slice(0, s.Len())
	if err != nil || !full.Equal(s) {
		t.Fatalf("s.Slice(0, len) should equal s")
	}
	part, err := s.Slice(2, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if part.Len() != 5 {
		t.Fatalf("slice length = %d, want 5", part.Len())
	}
	other, _ := FromBinaryString("0011")
	concatenated := s.Concatenate(other)
	prefix, err := concatenated.Slice(0, s.Len())
	if err != nil || !prefix.Equal(s) {
		t.Fatalf("(s++t).Slice(0, s.Len()) should equal s")
	}
}

// P7: common-prefix bound.
func TestCommonPrefixBound(t *testing.T) {
	a, _ := FromBinaryString("110100111010")
	b, _ := FromBinaryString("110100100000")
	prefix := a.CommonPrefix(b)
	if prefix.Len() > a.Len() || prefix.Len() > b.Len() {
		t.Fatalf("common prefix longer than an input")
	}
	aPrefix, _ := a.Slice(0, prefix.Len())
	bPrefix, _ := b.Slice(0, prefix.Len())
	if !prefix.Equal(aPrefix) || !prefix.Equal(bPrefix) {
		t.Fatalf("common prefix does not match both inputs")
	}
	if prefix.Len() != 7 {
		t.Fatalf("expected common prefix of length 7, got %d", prefix.Len())
	}
}

// P8: lexicographic totality.
func TestCompareTotalOrder(t *testing.T) {
	a, _ := FromBinaryString("01")
	b, _ := FromBinaryString("10")
	c, _ := FromBinaryString("011")

	if a.Compare(b) >= 0 {
		t.Fatalf("expected a < b")
	}
	if b.Compare(a) <= 0 {
		t.Fatalf("expected b > a, Compare should be antisymmetric")
	}
	if a.Compare(c) >= 0 {
		t.Fatalf("a should be a proper prefix of c and sort first")
	}
	if a.Compare(a) != 0 {
		t.Fatalf("a should equal itself")
	}
}

func TestFromBytesAndToBytesRoundTrip(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef}
	s, err := FromBytes(data, 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 32 {
		t.Fatalf("length = %d, want 32", s.Len())
	}
	back := s.ToBytes()
	if len(back) != len(data) {
		t.Fatalf("ToBytes length mismatch: %d vs %d", len(back), len(data))
	}
	for i := range data {
		if back[i] != data[i] {
			t.Fatalf("byte %d: got %02x, want %02x", i, back[i], data[i])
		}
	}
}

func TestSetReturnsNewSequence(t *testing.T) {
	s, _ := FromBinaryString("0000")
	updated, err := s.Set(1, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := s.Bit(1); got {
		t.Fatalf("original sequence must not be mutated by Set")
	}
	if got, _ := updated.Bit(1); !got {
		t.Fatalf("Set should produce a sequence with the new bit")
	}
}
