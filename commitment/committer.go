package commitment

import (
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/google/uuid"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/aleksraiden/verkle-witness-trie/node"
)

// Committer is the default concrete implementation of the commitment
// liaison the core trie only declares an interface for: it walks a
// root's dirty nodes and fills in commitment and valuesCommitment,
// clearing the dirty flag as it goes, and never does anything the
// core's Put/Get correctness depends on.
type Committer struct {
	cfg *Config
	log *log.Logger
}

// NewCommitter builds a Committer. A nil cfg runs in hash-only mode.
func NewCommitter(cfg *Config) *Committer {
	if cfg == nil {
		cfg = NewConfig(nil)
	}
	return &Committer{cfg: cfg, log: log.StandardLogger()}
}

// CommitResult is delivered on the channel RecomputeAsync returns.
type CommitResult struct {
	Commitment [32]byte
	Err        error
}

// Recompute walks root bottom-up, recomputing the commitment of every
// dirty node and clearing its dirty flag, and returns the root's
// resulting commitment. It does nothing to nodes that are already
// clean — calling it twice in a row without an intervening Put is a
// no-op on the second call.
func (c *Committer) Recompute(root node.Node) ([32]byte, error) {
	return c.recompute(root)
}

func (c *Committer) recompute(n node.Node) ([32]byte, error) {
	switch t := n.(type) {
	case *node.Internal:
		if !t.Dirty() {
			return t.Commitment(), nil
		}
		left, err := c.recompute(t.Left)
		if err != nil {
			return node.EmptyCommitment, err
		}
		right, err := c.recompute(t.Right)
		if err != nil {
			return node.EmptyCommitment, err
		}
		// Internal nodes are never KZG-committed: there are at most
		// StemBits of them on any path, and sizing an SRS around one
		// degree per branch would be wasteful for no benefit over a
		// plain hash of the two child commitments.
		raw := append(append([]byte{}, left[:]...), right[:]...)
		commitment := toNodeCommitment(raw)
		t.SetCommitment(commitment)
		return commitment, nil

	case *node.Stem:
		if !t.Dirty() {
			return t.Commitment(), nil
		}
		values := getValuesSlice()
		defer putValuesSlice(values)
		for i := 0; i < node.StemFanout; i++ {
			leaf, ok := t.Child(uint8(i)).(*node.Leaf)
			if !ok {
				values[i] = fr.Element{}
				continue
			}
			// Recompute (rather than hash leaf.Value directly) so the
			// leaf's own Commitment/Dirty state is cleared too, the same
			// way a Stem's Internal ancestors get cleared by recursing
			// into recompute instead of peeking at their children.
			leafCommitment, err := c.recompute(leaf)
			if err != nil {
				return node.EmptyCommitment, err
			}
			values[i] = hashToFieldElement(leafCommitment[:])
		}
		rawValues, err := commitPolynomial(c.cfg, values)
		if err != nil {
			return node.EmptyCommitment, err
		}
		valuesCommitment := toNodeCommitment(rawValues)
		putCommitmentBuffer(rawValues)
		t.SetValuesCommitment(valuesCommitment)

		combined := append(append([]byte{}, t.StemBitsSeq.Encode()...), valuesCommitment[:]...)
		rawCommitment, err := commitPolynomial(c.cfg, []fr.Element{hashToFieldElement(combined)})
		if err != nil {
			return node.EmptyCommitment, err
		}
		commitment := toNodeCommitment(rawCommitment)
		putCommitmentBuffer(rawCommitment)
		t.SetCommitment(commitment)
		return commitment, nil

	case *node.Leaf:
		if !t.Dirty() {
			return t.Commitment(), nil
		}
		raw, err := commitPolynomial(c.cfg, []fr.Element{hashToFieldElement(t.Value)})
		if err != nil {
			return node.EmptyCommitment, err
		}
		commitment := toNodeCommitment(raw)
		putCommitmentBuffer(raw)
		t.SetCommitment(commitment)
		return commitment, nil

	case *node.NullBranch, *node.NullLeaf:
		return node.EmptyCommitment, nil

	default:
		return node.EmptyCommitment, fmt.Errorf("commitment: unreachable node type %T", n)
	}
}

// RecomputeAsync recomputes root's commitments in the background. Dirty
// Stem nodes are partitioned by occupancy: stems with enough live leaves
// to be worth the fan-out go to a worker pool, the rest are committed
// inline, and the Internal spine above all of them is finished
// sequentially last (cheap: a blake3 hash per level, nothing worth
// parallelizing). The returned channel receives exactly one CommitResult.
func (c *Committer) RecomputeAsync(root node.Node) <-chan CommitResult {
	out := make(chan CommitResult, 1)
	go func() {
		traceID, err := uuid.NewV7()
		if err != nil {
			traceID = uuid.Nil
		}
		c.log.WithField("trace_id", traceID).Debug("commitment: async recompute started")

		stems := collectDirtyStems(root)
		parallelStems, sequentialStems := partitionByOccupancy(stems)
		if len(parallelStems) > 0 {
			err = c.parallelCommitStems(parallelStems)
		}
		if err == nil {
			for _, s := range sequentialStems {
				if _, cerr := c.recompute(s); cerr != nil {
					err = cerr
					break
				}
			}
		}
		if err != nil {
			c.log.WithField("trace_id", traceID).WithError(err).Warn("commitment: async recompute failed")
			out <- CommitResult{Err: err}
			return
		}

		commitment, err := c.recompute(root)
		c.log.WithField("trace_id", traceID).Debug("commitment: async recompute finished")
		out <- CommitResult{Commitment: commitment, Err: err}
	}()
	return out
}

// partitionByOccupancy splits stems into those worth handing off to the
// worker pool and those cheap enough to commit inline, per stem, using
// an OccupancyIndex built fresh for each stem (occupancy is not tracked
// incrementally anywhere in the core — trie never imports commitment).
func partitionByOccupancy(stems []*node.Stem) (parallel, sequential []*node.Stem) {
	for _, s := range stems {
		if NewOccupancyIndex(s).WorthParallelizing() {
			parallel = append(parallel, s)
		} else {
			sequential = append(sequential, s)
		}
	}
	return parallel, sequential
}

func collectDirtyStems(n node.Node) []*node.Stem {
	switch t := n.(type) {
	case *node.Internal:
		stems := collectDirtyStems(t.Left)
		return append(stems, collectDirtyStems(t.Right)...)
	case *node.Stem:
		if t.Dirty() {
			return []*node.Stem{t}
		}
		return nil
	default:
		return nil
	}
}

func (c *Committer) parallelCommitStems(stems []*node.Stem) error {
	if len(stems) == 0 {
		return nil
	}
	workers := c.cfg.workers()
	if workers > len(stems) {
		workers = len(stems)
	}
	chunkSize := (len(stems) + workers - 1) / workers
	chunks := lo.Chunk(stems, chunkSize)

	errCh := make(chan error, len(chunks))
	var wg sync.WaitGroup
	for _, chunk := range chunks {
		wg.Add(1)
		go func(chunk []*node.Stem) {
			defer wg.Done()
			for _, s := range chunk {
				if _, err := c.recompute(s); err != nil {
					errCh <- err
					return
				}
			}
		}(chunk)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			return err
		}
	}
	return nil
}
