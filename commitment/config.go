// Package commitment supplies the external collaborator the core trie
// declares but deliberately does not implement: a concrete recomputation
// of the opaque 32-byte commitment and valuesCommitment fields carried by
// node.Internal and node.Stem. The core never imports this package; it
// is always the other way around.
package commitment

import (
	"runtime"

	kzg "github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
)

// DefaultWorkers is the default Config.Workers value, zero, with which
// RecomputeAsync uses runtime.GOMAXPROCS(0) workers.
const DefaultWorkers = 0

// MinNodesForParallel is the minimum number of occupied suffix slots a
// dirty Stem must hold before RecomputeAsync hands that whole stem to the
// worker pool rather than committing it inline.
const MinNodesForParallel = 4

// Config configures a Committer.
type Config struct {
	// SRS is the KZG structured reference string. When nil, Committer
	// falls back to a BLAKE3 hash chain instead of a real polynomial
	// commitment — useful for tests and for trust-setup-free embeddings.
	SRS *kzg.SRS

	// Workers is the number of goroutines RecomputeAsync may use. Zero
	// means runtime.GOMAXPROCS(0).
	Workers int
}

// NewConfig returns a Config defaulted the way the rest of this module
// defaults its configuration structs: explicit fields where the caller
// cares, sane fallbacks everywhere else.
func NewConfig(srs *kzg.SRS) *Config {
	return &Config{
		SRS:     srs,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// HashOnly reports whether this Config has no SRS configured, and will
// therefore fall back to hashing instead of a real KZG commitment.
func (c *Config) HashOnly() bool {
	return c == nil || c.SRS == nil
}

// RequireSRS returns ErrNoSRS if c has no SRS configured. Callers that
// want to forbid silently falling back to the hash chain — e.g. a
// production witness exporter that should fail loudly on a
// misconfigured trusted setup rather than emit hash-based commitments —
// check this before calling Recompute.
func (c *Config) RequireSRS() error {
	if c.HashOnly() {
		return ErrNoSRS
	}
	return nil
}

func (c *Config) workers() int {
	if c == nil || c.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}
