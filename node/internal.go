package node

// Internal is a branch node: it owns a left and a right child and
// carries no payload of its own beyond its commitment.
type Internal struct {
	commitment [32]byte
	dirty      bool

	Left  Node
	Right Node
}

// NewInternal builds an Internal node over the given children, marked
// dirty: every node freshly constructed by a Put starts dirty (see the
// commitment package).
func NewInternal(left, right Node) *Internal {
	return &Internal{Left: left, Right: right, dirty: true}
}

func (n *Internal) Encode() []byte           { return encodeCommitment(n.commitment) }
func (n *Internal) Dirty() bool              { return n.dirty }
func (n *Internal) SetDirty(dirty bool)      { n.dirty = dirty }
func (n *Internal) Commitment() [32]byte     { return n.commitment }
func (n *Internal) SetCommitment(c [32]byte) { n.commitment = c; n.dirty = false }
