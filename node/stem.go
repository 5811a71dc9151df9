package node

import "github.com/aleksraiden/verkle-witness-trie/bitseq"

// Stem is the aggregation unit: a 248-bit stem bit sequence plus 256
// suffix-indexed child slots, each either a Leaf or the NullLeaf
// sentinel (invariants I1/I2).
type Stem struct {
	StemBitsSeq bitseq.Sequence

	commitment       [32]byte
	valuesCommitment [32]byte
	dirty            bool

	Children [StemFanout]Node
}

// NewStem builds a Stem over the given 248-bit stem value with every
// child slot initialized to NullLeaf, marked dirty.
func NewStem(stem bitseq.Sequence) *Stem {
	s := &Stem{StemBitsSeq: stem, dirty: true}
	for i := range s.Children {
		s.Children[i] = NullLeafSingleton
	}
	return s
}

// Child returns the node occupying suffix slot i.
func (n *Stem) Child(i uint8) Node {
	return n.Children[i]
}

// ReplaceChild returns a new Stem equal to n except that slot i now
// holds child, marked dirty. The other 255 slots are shared by value
// (the array is copied, but unchanged child Node references are not
// re-allocated).
func (n *Stem) ReplaceChild(i uint8, child Node) *Stem {
	out := &Stem{
		StemBitsSeq:      n.StemBitsSeq,
		commitment:       n.commitment,
		valuesCommitment: n.valuesCommitment,
		dirty:            true,
	}
	out.Children = n.Children
	out.Children[i] = child
	return out
}

func (n *Stem) Encode() []byte {
	return concatAll(n.StemBitsSeq.Encode(), encodeCommitment(n.commitment), encodeCommitment(n.valuesCommitment))
}

func (n *Stem) Dirty() bool          { return n.dirty }
func (n *Stem) SetDirty(dirty bool)  { n.dirty = dirty }
func (n *Stem) Commitment() [32]byte { return n.commitment }
func (n *Stem) SetCommitment(c [32]byte) {
	n.commitment = c
	n.dirty = false
}

// ValuesCommitment returns the stem's cached commitment to its 256
// values, maintained alongside Commitment by the commitment layer.
func (n *Stem) ValuesCommitment() [32]byte { return n.valuesCommitment }

// SetValuesCommitment installs a freshly computed values commitment.
func (n *Stem) SetValuesCommitment(c [32]byte) { n.valuesCommitment = c }
