package node

import (
	"testing"

	"github.com/aleksraiden/verkle-witness-trie/bitseq"
)

func TestNullSingletonsShared(t *testing.T) {
	if NullBranchSingleton != NullBranchSingleton {
		t.Fatal("NullBranchSingleton should be a single shared instance")
	}
	if NullLeafSingleton.Dirty() {
		t.Fatal("sentinels are never dirty")
	}
	if NullBranchSingleton.Commitment() != EmptyCommitment {
		t.Fatal("sentinels carry the empty commitment")
	}
}

func TestStemReplaceChildIsCopyOnWrite(t *testing.T) {
	original := NewStem(allZeroStem())
	for i := 0; i < StemFanout; i++ {
		if original.Child(uint8(i)) != NullLeafSingleton {
			t.Fatalf("slot %d should start as NullLeaf", i)
		}
	}

	leaf := NewLeaf([]byte("value"))
	updated := original.ReplaceChild(5, leaf)

	if original.Child(5) != NullLeafSingleton {
		t.Fatal("ReplaceChild must not mutate the receiver")
	}
	if updated.Child(5) != leaf {
		t.Fatal("ReplaceChild should install the new child at the given slot")
	}
	if updated.Child(6) != NullLeafSingleton {
		t.Fatal("other slots must be unaffected")
	}
}

func allZeroStem() bitseq.Sequence {
	bits := make([]byte, StemBits)
	for i := range bits {
		bits[i] = '0'
	}
	s, err := bitseq.FromBinaryString(string(bits))
	if err != nil {
		panic(err)
	}
	return s
}

func TestLeafEncodeAbsentValue(t *testing.T) {
	leaf := NewLeaf(nil)
	if leaf.Encode() != nil {
		t.Fatal("a leaf with no value should encode to nil")
	}
}

func TestInternalDirtyByDefault(t *testing.T) {
	n := NewInternal(NullBranchSingleton, NullBranchSingleton)
	if !n.Dirty() {
		t.Fatal("a freshly constructed Internal should start dirty")
	}
	n.SetCommitment([32]byte{1})
	if n.Dirty() {
		t.Fatal("SetCommitment should clear the dirty flag")
	}
}
