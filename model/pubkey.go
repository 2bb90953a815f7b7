package model

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// PubKey is a provisioner's BLS12-381 public key, rendered on the wire
// as base58 (§4.2: "BLS public keys are base58"). It round-trips through
// a raw 48-byte compressed G1 point so a malformed key is rejected at
// the model boundary rather than surfacing as an opaque VM error.
type PubKey string

// NewPubKey validates raw as a compressed BLS12-381 G1 point and
// base58-encodes it. The point-on-curve check is the model layer's
// contribution to adapter→DTO conversion being total: a Provisioner
// record with an invalid key can never reach the wire.
func NewPubKey(raw []byte) (PubKey, error) {
	var p bls12381.G1Affine
	if _, err := p.SetBytes(raw); err != nil {
		return "", errors.Wrap(err, "invalid BLS12-381 public key")
	}
	return PubKey(base58.Encode(raw)), nil
}
