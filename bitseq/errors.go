// Package bitseq implements an immutable-valued, length-prefixed sequence
// of bits with an order-preserving byte codec, used throughout the trie
// package to address keys, stems and suffixes.
package bitseq

import "errors"

// Sentinel errors, wrapped with fmt.Errorf("...: %w", ...) at call sites
// the way the rest of this module reports precondition violations.
var (
	// ErrInvalidInput is returned for malformed binary strings and for
	// to-int conversions of an empty sequence.
	ErrInvalidInput = errors.New("bitseq: invalid input")

	// ErrIndexOutOfRange is returned by Bit, Set and Slice for an index
	// or range outside the sequence's bounds.
	ErrIndexOutOfRange = errors.New("bitseq: index out of range")

	// ErrOverflow is returned by ToInt when the sequence is longer than
	// 32 bits.
	ErrOverflow = errors.New("bitseq: overflow")
)
