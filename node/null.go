package node

// NullBranch is the sentinel standing for an absent subtree at an
// internal position. There is exactly one instance, NullBranchSingleton;
// it is immutable and safe to share across every trie and every root.
type NullBranch struct{}

// NullLeaf is the sentinel standing for an absent suffix slot inside a
// stem. There is exactly one instance, NullLeafSingleton.
type NullLeaf struct{}

// NullBranchSingleton is the process-wide NullBranch instance.
var NullBranchSingleton = &NullBranch{}

// NullLeafSingleton is the process-wide NullLeaf instance.
var NullLeafSingleton = &NullLeaf{}

func (n *NullBranch) Encode() []byte           { return nil }
func (n *NullBranch) Dirty() bool              { return false }
func (n *NullBranch) SetDirty(dirty bool)      {}
func (n *NullBranch) Commitment() [32]byte     { return EmptyCommitment }
func (n *NullBranch) SetCommitment(c [32]byte) {}

func (n *NullLeaf) Encode() []byte           { return nil }
func (n *NullLeaf) Dirty() bool              { return false }
func (n *NullLeaf) SetDirty(dirty bool)      {}
func (n *NullLeaf) Commitment() [32]byte     { return EmptyCommitment }
func (n *NullLeaf) SetCommitment(c [32]byte) {}
