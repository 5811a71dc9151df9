package bitseq

import (
	"bytes"
	"testing"
)

func TestCodecFixtures(t *testing.T) {
	cases := []struct {
		bits string
		want []byte
	}{
		{"1101", []byte{0xD1}},
		{"1101001001", []byte{0xD5, 0x22}},
		{"11111110000000", []byte{0xFE, 0x07}},
	}
	for _, c := range cases {
		s, err := FromBinaryString(c.bits)
		if err != nil {
			t.Fatalf("FromBinaryString(%q): %v", c.bits, err)
		}
		got := s.Encode()
		if !bytes.Equal(got, c.want) {
			t.Fatalf("Encode(%q) = %x, want %x", c.bits, got, c.want)
		}
		decoded := Decode(got)
		if !decoded.Equal(s) {
			t.Fatalf("Decode(Encode(%q)) = %q, want %q", c.bits, decoded.String(), c.bits)
		}
	}
}

// P2: codec round trip.
func TestCodecRoundTripProperty(t *testing.T) {
	inputs := []string{
		"",
		"0",
		"1",
		"0000000",
		"1111111",
		"10101010101",
		"0000000100000001000000010000000100000001",
	}
	for _, bits := range inputs {
		s, err := FromBinaryString(bits)
		if err != nil {
			t.Fatalf("FromBinaryString(%q): %v", bits, err)
		}
		decoded := Decode(s.Encode())
		if !decoded.Equal(s) {
			t.Fatalf("round trip failed for %q: got %q", bits, decoded.String())
		}
	}
}

// P3: codec order preservation, scenario 6 of spec.md §8 — encoding is
// monotonic across the big-endian integers 0..127.
func TestCodecOrderPreservingOverSmallInts(t *testing.T) {
	var prev byte
	for v := uint32(0); v < 128; v++ {
		enc := FromInt(v).Encode()
		if len(enc) == 0 {
			continue // FromInt(0) is empty; nothing to compare.
		}
		if v > 1 && enc[0] <= prev {
			t.Fatalf("encode(from_int(%d))[0] = %#x is not greater than encode(from_int(%d))[0] = %#x", v, enc[0], v-1, prev)
		}
		prev = enc[0]
	}
}

// P3, general form: byte-lexicographic order of encoded sequences
// agrees with bit-lexicographic order of the sequences themselves.
func TestCodecOrderPreservingGeneral(t *testing.T) {
	pairs := [][2]string{
		{"0", "1"},
		{"01", "10"},
		{"1100", "1101"},
		{"101", "1011"},
		{"0000000", "0000001"},
		{"11111111", "111111110"},
	}
	for _, p := range pairs {
		a, _ := FromBinaryString(p[0])
		b, _ := FromBinaryString(p[1])
		bitOrder := a.Compare(b)
		byteOrder := bytes.Compare(a.Encode(), b.Encode())
		if sign(bitOrder) != sign(byteOrder) {
			t.Fatalf("order mismatch for %q vs %q: bit order %d, byte order %d", p[0], p[1], bitOrder, byteOrder)
		}
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
