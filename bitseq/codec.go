package bitseq

import "math/bits"

// Encode serializes s into its order-preserving wire form: one byte per
// backing byte, where a zero payload bit in the interior of the byte is
// folded into a one-valued low-order tag contribution. Byte-lexicographic
// comparison of two encoded sequences agrees with bit-lexicographic
// comparison of the sequences themselves (see codec_test.go's order
// property).
func (s Sequence) Encode() []byte {
	n := len(s.data)
	out := make([]byte, n)
	if n == 0 {
		return out
	}
	for i := 0; i < n-1; i++ {
		d := s.data[i]
		out[i] = d + (bitsPerByte - uint8(bits.OnesCount8(d)))
	}
	b := uint8(s.length % bitsPerByte)
	if b == 0 {
		b = bitsPerByte
	}
	d := s.data[n-1]
	out[n-1] = d + (b - uint8(bits.OnesCount8(d)))
	return out
}

// Decode is the inverse of Encode. It is tolerant of any byte slice
// produced by Encode, including the empty slice (decoding to the empty
// sequence).
func Decode(encoded []byte) Sequence {
	data := make([]byte, len(encoded))
	length := 0
	for i, e := range encoded {
		rem := int(e)
		power := 128
		var decoded int
		for rem != 0 {
			length++
			if rem >= power {
				rem -= power
				decoded += power
			} else {
				rem--
			}
			power >>= 1
		}
		data[i] = byte(decoded)
	}
	return Sequence{data: data, length: length}
}
