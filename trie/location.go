package trie

import (
	"github.com/aleksraiden/verkle-witness-trie/bitseq"
	"github.com/aleksraiden/verkle-witness-trie/node"
)

// Locate computes the bit path from the root to the leaf slot addressed
// by key, the way the source's replace_location would have labelled it,
// without ever storing a location on a node. It is tooling-side
// convenience (visualization, debugging) and is never consulted by Get
// or Put.
//
// The second return value reports whether a value is actually present
// at that location. When it is not, the location where the walk stopped
// is still returned: the reached Stem's location plus the key's 8-bit
// suffix (whether or not the stem matches the key), or the path to the
// NullBranch the walk ended on. Only for an empty slot of a matching
// stem is that where an insert would put the value.
func (t *Trie) Locate(key [32]byte) (bitseq.Sequence, bool) {
	path, err := bitseq.FromBytes(key[:], node.KeyBits)
	if err != nil {
		return bitseq.Empty(), false
	}
	return locate(t.root, path, bitseq.Empty(), -1)
}

func locate(n node.Node, path, loc bitseq.Sequence, depth int) (bitseq.Sequence, bool) {
	switch t := n.(type) {
	case *node.Internal:
		d := depth + 1
		bit := mustBit(path, d)
		next := loc.AppendBit(bit)
		if bit {
			return locate(t.Right, path, next, d)
		}
		return locate(t.Left, path, next, d)

	case *node.Stem:
		prefix := path.CommonPrefix(t.StemBitsSeq)
		suffix := stemSuffix(path)
		leafLoc := loc.AppendSuffix(suffix)
		if prefix.Len() < t.StemBitsSeq.Len() {
			return leafLoc, false
		}
		leaf, ok := t.Child(suffix).(*node.Leaf)
		return leafLoc, ok && leaf.Value != nil

	default:
		return loc, false
	}
}
