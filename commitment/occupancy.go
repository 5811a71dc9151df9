package commitment

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/aleksraiden/verkle-witness-trie/node"
)

// OccupancyIndex tracks which of a Stem's 256 suffix slots hold a Leaf,
// as opposed to NullLeaf, without walking all 256 children every time
// the committer needs to know how full a stem is. It supplements the
// commitment layer's batching heuristic (RecomputeAsync decides whether
// a dirty stem is worth handing to the worker pool); it has no
// bearing on Put/Get correctness.
type OccupancyIndex struct {
	bits *bitset.BitSet
}

// NewOccupancyIndex scans stem's children once and builds the bitmap.
func NewOccupancyIndex(stem *node.Stem) *OccupancyIndex {
	idx := &OccupancyIndex{bits: bitset.New(node.StemFanout)}
	for i := 0; i < node.StemFanout; i++ {
		if leaf, ok := stem.Child(uint8(i)).(*node.Leaf); ok && leaf.Value != nil {
			idx.bits.Set(uint(i))
		}
	}
	return idx
}

// IsOccupied reports whether suffix i holds a value.
func (idx *OccupancyIndex) IsOccupied(i uint8) bool {
	return idx.bits.Test(uint(i))
}

// Count returns the number of occupied suffix slots.
func (idx *OccupancyIndex) Count() uint {
	return idx.bits.Count()
}

// WorthParallelizing reports whether this stem holds enough occupied
// slots that fanning its commit work out to workers pays for itself.
// Mirrors the source's ExpansionThreshold-shaped heuristic, repurposed:
// the source used a fullness threshold to decide when to split a flat
// node, this package reuses the same shape to decide when to
// parallelize a recompute.
func (idx *OccupancyIndex) WorthParallelizing() bool {
	return idx.Count() >= MinNodesForParallel
}
