package bitseq

import "fmt"

// bitsPerByte is the number of payload bits packed into each backing byte.
// The low-order bit of every backing byte is reserved for the codec's
// continuation tag and stays zero while a Sequence is being built.
const bitsPerByte = 7

// Sequence is an immutable-valued sequence of bits, most-significant bit
// first. The zero value is the empty sequence. Every exported method
// that looks like a mutation (AppendBit, Set, Slice, Concatenate) returns
// a new Sequence; the receiver is left untouched.
type Sequence struct {
	data   []byte
	length int
}

// Empty returns the zero-length sequence.
func Empty() Sequence {
	return Sequence{}
}

func byteLength(bitLength int) int {
	return (bitLength + bitsPerByte - 1) / bitsPerByte
}

// FromBinaryString builds a Sequence from a string of '0'/'1' characters.
// The sequence's length equals len(s).
func FromBinaryString(s string) (Sequence, error) {
	seq := Sequence{data: make([]byte, byteLength(len(s))), length: len(s)}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			seq.setBit(i, false)
		case '1':
			seq.setBit(i, true)
		default:
			return Sequence{}, fmt.Errorf("%w: character %q at offset %d is not '0' or '1'", ErrInvalidInput, s[i], i)
		}
	}
	return seq, nil
}

// FromInt returns the minimum-width big-endian representation of v: the
// leading 1 bit is retained and v == 0 yields the empty sequence.
func FromInt(v uint32) Sequence {
	if v == 0 {
		return Empty()
	}
	width := 0
	for n := v; n != 0; n >>= 1 {
		width++
	}
	seq := Sequence{data: make([]byte, byteLength(width)), length: width}
	for i := 0; i < width; i++ {
		bit := (v >> (width - 1 - i)) & 1
		seq.setBit(i, bit != 0)
	}
	return seq
}

// AppendSuffix returns a new sequence with the full 8-bit, zero-padded
// big-endian encoding of n appended. Unlike AppendInt, the result always
// carries exactly 8 bits, which is what stem descent needs when the
// suffix is 0x00.
func (s Sequence) AppendSuffix(n uint8) Sequence {
	result := s.grow(8)
	for i := 0; i < 8; i++ {
		bit := (n >> (7 - i)) & 1
		result.setBit(s.length+i, bit != 0)
	}
	return result
}

// AppendInt concatenates the minimum-width representation of n (see
// FromInt) onto s.
func (s Sequence) AppendInt(n uint32) Sequence {
	return s.Concatenate(FromInt(n))
}

// AppendBit returns a new sequence of length s.Len()+1 with b appended.
func (s Sequence) AppendBit(b bool) Sequence {
	result := s.grow(1)
	result.setBit(s.length, b)
	return result
}

// grow returns a copy of s with room for extra more bits appended, with
// s's own length unchanged (callers set the new bits themselves).
func (s Sequence) grow(extra int) Sequence {
	newLength := s.length + extra
	result := Sequence{data: make([]byte, byteLength(newLength)), length: newLength}
	copy(result.data, s.data)
	return result
}

// Len returns the number of bits in s.
func (s Sequence) Len() int {
	return s.length
}

func (s Sequence) resolveIndex(i int) (int, error) {
	if i < 0 {
		i += s.length
	}
	if i < 0 || i >= s.length {
		return 0, fmt.Errorf("%w: index %d for sequence of length %d", ErrIndexOutOfRange, i, s.length)
	}
	return i, nil
}

// Bit returns the bit at index i; negative indices count from the end.
func (s Sequence) Bit(i int) (bool, error) {
	idx, err := s.resolveIndex(i)
	if err != nil {
		return false, err
	}
	return s.bitAt(idx), nil
}

func (s Sequence) bitAt(i int) bool {
	byteIdx := i / bitsPerByte
	bitPos := bitsPerByte - (i % bitsPerByte)
	return s.data[byteIdx]&(1<<uint(bitPos)) != 0
}

func (s Sequence) setBit(i int, value bool) {
	byteIdx := i / bitsPerByte
	bitPos := bitsPerByte - (i % bitsPerByte)
	if value {
		s.data[byteIdx] |= 1 << uint(bitPos)
	} else {
		s.data[byteIdx] &^= 1 << uint(bitPos)
	}
}

// Set returns a new sequence equal to s except that bit i is set to
// value; negative indices count from the end.
func (s Sequence) Set(i int, value bool) (Sequence, error) {
	idx, err := s.resolveIndex(i)
	if err != nil {
		return Sequence{}, err
	}
	result := Sequence{data: make([]byte, len(s.data)), length: s.length}
	copy(result.data, s.data)
	result.setBit(idx, value)
	return result, nil
}

// Slice returns the half-open range s[from:to) as a new sequence.
func (s Sequence) Slice(from, to int) (Sequence, error) {
	if from < 0 || to > s.length || from > to {
		return Sequence{}, fmt.Errorf("%w: slice [%d,%d) of sequence of length %d", ErrIndexOutOfRange, from, to, s.length)
	}
	length := to - from
	result := Sequence{data: make([]byte, byteLength(length)), length: length}
	for i := 0; i < length; i++ {
		result.setBit(i, s.bitAt(from+i))
	}
	return result, nil
}

// Concatenate returns a new sequence of length s.Len()+other.Len()
// holding s's bits followed by other's bits. Implemented as a plain
// bit-at-a-time loop rather than the masked-shift fast path the original
// source used for this operation — that fast path looks buggy (see
// design notes) and the loop is simple enough not to need optimizing.
func (s Sequence) Concatenate(other Sequence) Sequence {
	result := s.grow(other.length)
	for i := 0; i < other.length; i++ {
		result.setBit(s.length+i, other.bitAt(i))
	}
	return result
}

// CommonPrefix returns the longest prefix shared by s and other.
func (s Sequence) CommonPrefix(other Sequence) Sequence {
	limit := s.length
	if other.length < limit {
		limit = other.length
	}
	i := 0
	for i < limit && s.bitAt(i) == other.bitAt(i) {
		i++
	}
	prefix, _ := s.Slice(0, i)
	return prefix
}

// ToInt returns the big-endian integer value of s. It fails with
// ErrInvalidInput on an empty sequence and ErrOverflow when s is longer
// than 32 bits.
func (s Sequence) ToInt() (uint32, error) {
	if s.length == 0 {
		return 0, fmt.Errorf("%w: cannot convert empty sequence to int", ErrInvalidInput)
	}
	if s.length > 32 {
		return 0, fmt.Errorf("%w: sequence of length %d exceeds 32 bits", ErrOverflow, s.length)
	}
	var v uint32
	for i := 0; i < s.length; i++ {
		v <<= 1
		if s.bitAt(i) {
			v |= 1
		}
	}
	return v, nil
}

// Compare orders sequences bit-by-bit from index 0: on the first
// differing bit, 0 sorts before 1; if one sequence is a proper prefix of
// the other, the shorter one sorts first. Returns a negative, zero, or
// positive value as s is less than, equal to, or greater than other.
func (s Sequence) Compare(other Sequence) int {
	limit := s.length
	if other.length < limit {
		limit = other.length
	}
	for i := 0; i < limit; i++ {
		a, b := s.bitAt(i), other.bitAt(i)
		if a != b {
			if !a {
				return -1
			}
			return 1
		}
	}
	switch {
	case s.length < other.length:
		return -1
	case s.length > other.length:
		return 1
	default:
		return 0
	}
}

// Equal reports whether s and other have the same length and the same
// bit at every position.
func (s Sequence) Equal(other Sequence) bool {
	return s.length == other.length && s.Compare(other) == 0
}

// FromBytes builds a Sequence from the first bitLength bits of data,
// read most-significant-bit first in the ordinary 8-bits-per-byte sense
// (unlike the codec's 7-bits-per-byte wire form; this is how external
// byte arrays such as a 256-bit key are interpreted, not how Sequence
// encodes itself on the wire).
func FromBytes(data []byte, bitLength int) (Sequence, error) {
	if bitLength < 0 || bitLength > len(data)*8 {
		return Sequence{}, fmt.Errorf("%w: bit length %d does not fit in %d bytes", ErrIndexOutOfRange, bitLength, len(data))
	}
	seq := Sequence{data: make([]byte, byteLength(bitLength)), length: bitLength}
	for i := 0; i < bitLength; i++ {
		byteIdx := i / 8
		bitPos := 7 - (i % 8)
		bit := data[byteIdx]&(1<<uint(bitPos)) != 0
		seq.setBit(i, bit)
	}
	return seq, nil
}

// ToBytes renders s as a big-endian byte slice in the ordinary
// 8-bits-per-byte sense, zero-padding the final byte if s.Len() is not
// a multiple of 8. It is the inverse of FromBytes when s.Len() is a
// multiple of 8.
func (s Sequence) ToBytes() []byte {
	out := make([]byte, (s.length+7)/8)
	for i := 0; i < s.length; i++ {
		if !s.bitAt(i) {
			continue
		}
		byteIdx := i / 8
		bitPos := 7 - (i % 8)
		out[byteIdx] |= 1 << uint(bitPos)
	}
	return out
}

// String renders s as a string of '0'/'1' characters, for debugging and
// log output.
func (s Sequence) String() string {
	buf := make([]byte, s.length)
	for i := 0; i < s.length; i++ {
		if s.bitAt(i) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}
