package commitment

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/polynomial"
	kzg "github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
	"github.com/zeebo/blake3"
)

// commitPolynomial computes a KZG commitment over values when cfg
// carries an SRS, falling back to a BLAKE3 hash chain otherwise. The
// raw result (a 48-byte compressed G1 point, or a 32-byte hash) is
// always folded down to the core's fixed 32-byte commitment slot by
// toNodeCommitment before it is stored on a node.
func commitPolynomial(cfg *Config, values []fr.Element) ([]byte, error) {
	if cfg.HashOnly() {
		return hashValues(values), nil
	}
	poly := polynomial.Polynomial(values)
	digest, err := kzg.Commit(poly, cfg.SRS.Pk)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCommitFailed, err)
	}
	raw := digest.Bytes()
	out := getCommitmentBuffer()
	out = append(out, raw[:]...)
	return out, nil
}

// hashValues is the SRS-free fallback: a BLAKE3 digest over the
// big-endian byte form of every field element.
func hashValues(values []fr.Element) []byte {
	hasher := blake3.New()
	for i := range values {
		b := values[i].Bytes()
		hasher.Write(b[:])
	}
	return hasher.Sum(nil)
}

// hashToFieldElement maps arbitrary bytes (a leaf's raw value) into a
// BLS12-381 scalar field element via BLAKE3, so that leaf values can be
// committed with the same KZG machinery as a Stem's 256 slots.
func hashToFieldElement(data []byte) fr.Element {
	hasher := blake3.New()
	hasher.Write(data)
	digest := hasher.Sum(nil)

	var elem fr.Element
	elem.SetBytes(digest)
	return elem
}

// toNodeCommitment folds a raw commitment (KZG digest or hash-chain
// output, of whatever length) down to the fixed 32-byte word node.Node
// stores, by hashing it with BLAKE3. A direct field assignment would
// only work for the hash-fallback path, since a compressed BLS12-381
// G1 point is 48 bytes; hashing makes both paths uniform.
func toNodeCommitment(raw []byte) [32]byte {
	hasher := blake3.New()
	hasher.Write(raw)
	digest := hasher.Sum(nil)
	var out [32]byte
	copy(out[:], digest)
	return out
}
