package trie

import (
	"fmt"

	"github.com/aleksraiden/verkle-witness-trie/bitseq"
	"github.com/aleksraiden/verkle-witness-trie/node"
)

// put returns a new root equal to n except that the key addressed by
// path now holds value. depth is the number of bits of path already
// consumed on the way to n, starting at -1 for the trie's root.
//
// The Stem case increments depth only when the node's stem matches the
// key's top 248 bits; on divergence it recurses into a synthetic
// Internal with depth unchanged, so the next call's Internal case does
// the increment instead. This asymmetry is not a bug: the divergence
// branch picks its child by the *old* stem's bit at depth+1, the same
// index the synthetic Internal's own depth++ will use to route the key,
// so both agree on which side the relocated stem lands.
func put(n node.Node, path bitseq.Sequence, depth int, value []byte) node.Node {
	switch t := n.(type) {
	case *node.Internal:
		d := depth + 1
		if mustBit(path, d) {
			return node.NewInternal(t.Left, put(t.Right, path, d, value))
		}
		return node.NewInternal(put(t.Left, path, d, value), t.Right)

	case *node.Stem:
		newStem := mustSlice(path, 0, node.StemBits)
		if t.StemBitsSeq.Equal(newStem) {
			d := depth + 1
			suffix := stemSuffix(path)
			return t.ReplaceChild(suffix, put(t.Child(suffix), path, d, value))
		}
		// Divergent stems: push this Stem one level further down a
		// synthetic Internal and recurse, without advancing depth.
		// Repeat layers accumulate through ordinary Go recursion, one
		// bit at a time, until the routing bit finally disagrees with
		// the stem's bit and the stem lands on its own side.
		var synthetic *node.Internal
		if mustBit(t.StemBitsSeq, depth+1) {
			synthetic = node.NewInternal(node.NullBranchSingleton, t)
		} else {
			synthetic = node.NewInternal(t, node.NullBranchSingleton)
		}
		return put(synthetic, path, depth, value)

	case *node.Leaf:
		return node.NewLeaf(value)

	case *node.NullBranch:
		stem := node.NewStem(mustSlice(path, 0, node.StemBits))
		return put(stem, path, depth+1, value)

	case *node.NullLeaf:
		return node.NewLeaf(value)

	default:
		panic(fmt.Sprintf("trie: unreachable node type %T", n))
	}
}

// stemSuffix returns the 8-bit suffix (path's bottom 8 bits) as an
// index into a Stem's 256 child slots.
func stemSuffix(path bitseq.Sequence) uint8 {
	suffix := mustToInt(mustSlice(path, node.StemBits, node.KeyBits))
	return uint8(suffix)
}

func mustBit(s bitseq.Sequence, i int) bool {
	b, err := s.Bit(i)
	if err != nil {
		panic(fmt.Sprintf("trie: %v", err))
	}
	return b
}

func mustSlice(s bitseq.Sequence, from, to int) bitseq.Sequence {
	out, err := s.Slice(from, to)
	if err != nil {
		panic(fmt.Sprintf("trie: %v", err))
	}
	return out
}

func mustToInt(s bitseq.Sequence) uint32 {
	v, err := s.ToInt()
	if err != nil {
		panic(fmt.Sprintf("trie: %v", err))
	}
	return v
}
