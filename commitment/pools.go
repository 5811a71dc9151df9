package commitment

import (
	"sync"
	"sync/atomic"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/aleksraiden/verkle-witness-trie/node"
)

// frElementPool256 reuses the 256-wide fr.Element slice a Stem's
// values-commitment needs (one field element per suffix slot), avoiding
// an allocation on every Stem recompute.
var frElementPool256 = sync.Pool{
	New: func() any {
		slice := make([]fr.Element, node.StemFanout)
		return &slice
	},
}

var poolStats PoolStats

func getValuesSlice() []fr.Element {
	atomic.AddInt64(&poolStats.ValuesSliceGets, 1)
	slice := *frElementPool256.Get().(*[]fr.Element)
	for i := range slice {
		slice[i] = fr.Element{}
	}
	return slice
}

func putValuesSlice(slice []fr.Element) {
	if cap(slice) != node.StemFanout {
		return
	}
	atomic.AddInt64(&poolStats.ValuesSlicePuts, 1)
	full := slice[:node.StemFanout]
	frElementPool256.Put(&full)
}

// commitmentBufferPool reuses 48-byte buffers for serialized BLS12-381
// G1 points (a KZG digest's compressed size), the form this package
// folds down into the core's fixed 32-byte commitment field via BLAKE3
// (see toNodeCommitment in kzg.go).
var commitmentBufferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 48)
		return &buf
	},
}

func getCommitmentBuffer() []byte {
	return (*commitmentBufferPool.Get().(*[]byte))[:0]
}

func putCommitmentBuffer(buf []byte) {
	if cap(buf) != 48 {
		return
	}
	full := buf[:48]
	commitmentBufferPool.Put(&full)
}

// PoolStats reports cumulative pool activity, for diagnostics.
type PoolStats struct {
	ValuesSliceGets int64
	ValuesSlicePuts int64
}

// GetPoolStats returns a snapshot of the package-wide pool counters.
func GetPoolStats() PoolStats {
	return PoolStats{
		ValuesSliceGets: atomic.LoadInt64(&poolStats.ValuesSliceGets),
		ValuesSlicePuts: atomic.LoadInt64(&poolStats.ValuesSlicePuts),
	}
}
