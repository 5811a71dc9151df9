package node

// Leaf carries a single value, or no value at all (a Leaf with an
// absent value is treated as if the slot were absent; see trie.Get).
// A Leaf carries no serializer: the commitment.Committer hashes Value's
// raw bytes as they are, and offers no way to configure a different
// serialization.
type Leaf struct {
	Value []byte // nil means "no value held"

	commitment [32]byte
	dirty      bool
}

// NewLeaf builds a Leaf holding value, marked dirty.
func NewLeaf(value []byte) *Leaf {
	return &Leaf{Value: value, dirty: true}
}

func (n *Leaf) Encode() []byte {
	if n.Value == nil {
		return nil
	}
	return n.Value
}

func (n *Leaf) Dirty() bool              { return n.dirty }
func (n *Leaf) SetDirty(dirty bool)      { n.dirty = dirty }
func (n *Leaf) Commitment() [32]byte     { return n.commitment }
func (n *Leaf) SetCommitment(c [32]byte) { n.commitment = c; n.dirty = false }
