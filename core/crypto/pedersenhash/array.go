package pedersenhash

import "github.com/NethermindEth/pedersen/core/felt"

// Array implements [Pedersen array hashing]:
//
//	h(h(...h(h(0, e1), e2)..., en), n)
//
// The empty array hashes to h(0, 0).
//
// [Pedersen array hashing]: https://docs.starknet.io/documentation/develop/Hashing/hash-functions/#array_hashing
func Array(elems ...felt.Felt) (felt.Felt, error) {
	var d Digest
	if err := d.Update(elems...); err != nil {
		return felt.Zero, err
	}
	return d.Finish()
}

// Digest computes an array hash incrementally. The zero value is ready to use.
type Digest struct {
	digest felt.Felt
	count  uint64
}

// Update folds elems into the digest. On error the digest is left unchanged.
func (d *Digest) Update(elems ...felt.Felt) error {
	acc := d.digest
	for _, e := range elems {
		var err error
		if acc, err = HashFelts(acc, e); err != nil {
			return err
		}
	}
	d.digest = acc
	d.count += uint64(len(elems))
	return nil
}

// Finish returns the array hash of everything passed to Update so far. It does
// not modify the digest.
func (d *Digest) Finish() (felt.Felt, error) {
	return HashFelts(d.digest, felt.FromUint64(d.count))
}
