package trie

import (
	"fmt"

	"github.com/aleksraiden/verkle-witness-trie/bitseq"
	"github.com/aleksraiden/verkle-witness-trie/node"
)

// get returns the Leaf, NullBranch or NullLeaf reached by following
// path from n. Unlike put, depth is incremented unconditionally on
// every visited node — get never performs a stem split, so there is no
// asymmetry to reproduce.
func get(n node.Node, path bitseq.Sequence, depth int) node.Node {
	switch t := n.(type) {
	case *node.Internal:
		d := depth + 1
		if mustBit(path, d) {
			return get(t.Right, path, d)
		}
		return get(t.Left, path, d)

	case *node.Stem:
		d := depth + 1
		prefix := path.CommonPrefix(t.StemBitsSeq)
		if prefix.Len() < t.StemBitsSeq.Len() {
			return node.NullBranchSingleton
		}
		return get(t.Child(stemSuffix(path)), path, d)

	case *node.Leaf:
		return t

	case *node.NullBranch:
		return t

	case *node.NullLeaf:
		return t

	default:
		panic(fmt.Sprintf("trie: unreachable node type %T", n))
	}
}
