package trie

import "errors"

// ErrInvalidKey is returned by Get and Put when the supplied key does
// not carry exactly node.KeyBits bits — in practice this cannot happen
// through the [32]byte facade, but Put and Get are also exposed at the
// bitseq.Sequence level for callers assembling witness paths directly.
var ErrInvalidKey = errors.New("trie: key must be exactly 256 bits")
