package ecdsa

import (
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// RecoverPublicKey recovers the public key of the signer for the given message
// hash.
//
// The binary form of the signature matches btcec compact signature format
// for a compressed public key: `27 + 4 + recoveryID || r || s`.
func (s *Signature) RecoverPublicKey(hash []byte) (*PublicKey, error) {
	compact := s.SerializeCompact()

	publicKey, _, err := btcecdsa.RecoverCompact(compact[:], hash)
	if err != nil {
		return nil, &CurveError{Err: err}
	}

	return (*PublicKey)(publicKey.ToECDSA()), nil
}
