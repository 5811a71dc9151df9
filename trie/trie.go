// Package trie implements the path-insert and path-lookup transformers
// over the node algebra and the thin facade around them: a binary prefix
// trie keyed by 256-bit identifiers, aggregated in 256-wide stems, built
// to back a stateless execution witness.
package trie

import (
	"fmt"

	"github.com/aleksraiden/verkle-witness-trie/bitseq"
	"github.com/aleksraiden/verkle-witness-trie/node"
)

// Trie is a single-writer, purely functional binary prefix trie. The
// zero value is not usable; construct one with New.
type Trie struct {
	root node.Node
}

// New returns an empty Trie, rooted at the NullBranch sentinel.
func New() *Trie {
	return &Trie{root: node.NullBranchSingleton}
}

// Root returns the trie's current root, for handing to a
// commitment.Committer.
func (t *Trie) Root() node.Node {
	return t.root
}

// Get returns the value stored at key, if any. A nil, false result with
// a nil error means the key is absent; a non-nil error means key was
// not a well-formed 256-bit identifier.
func (t *Trie) Get(key [32]byte) ([]byte, bool, error) {
	path, err := bitseq.FromBytes(key[:], node.KeyBits)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	result := get(t.root, path, -1)
	leaf, ok := result.(*node.Leaf)
	if !ok || leaf.Value == nil {
		return nil, false, nil
	}
	return leaf.Value, true, nil
}

// Put installs value at key, replacing the trie's root with the
// transformer's result. Unaffected subtrees of the previous root are
// shared, not copied.
func (t *Trie) Put(key [32]byte, value []byte) error {
	path, err := bitseq.FromBytes(key[:], node.KeyBits)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	t.root = put(t.root, path, -1, value)
	return nil
}

// GetPath and PutPath expose the same operations over an explicit
// 256-bit bitseq.Sequence, for callers assembling paths directly (e.g.
// witness tooling walking a trie whose keys are not naturally
// byte-aligned integers). They fail with ErrInvalidKey if path is not
// exactly node.KeyBits long.
func (t *Trie) GetPath(path bitseq.Sequence) ([]byte, bool, error) {
	if path.Len() != node.KeyBits {
		return nil, false, ErrInvalidKey
	}
	result := get(t.root, path, -1)
	leaf, ok := result.(*node.Leaf)
	if !ok || leaf.Value == nil {
		return nil, false, nil
	}
	return leaf.Value, true, nil
}

func (t *Trie) PutPath(path bitseq.Sequence, value []byte) error {
	if path.Len() != node.KeyBits {
		return ErrInvalidKey
	}
	t.root = put(t.root, path, -1, value)
	return nil
}
