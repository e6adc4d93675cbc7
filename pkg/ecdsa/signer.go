package ecdsa

import (
	cecdsa "crypto/ecdsa"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/keep-network/keep-eos/pkg/utils/byteutils"
)

// Signer is used to calculate a signature. It holds an ECDSA private key.
type Signer struct {
	privateKey *cecdsa.PrivateKey
}

// PublicKey holds a public key in a form of X and Y coordinates of a point on
// an elliptic curve.
type PublicKey cecdsa.PublicKey

// NewSigner creates a new Signer and initializes it with a provided ECDSA
// private key.
func NewSigner(privateKey *cecdsa.PrivateKey) *Signer {
	return &Signer{privateKey: privateKey}
}

// GenerateKey generates an ECDSA private key. It utilizes go-ethereum's secp256k1
// elliptic curve implementation.
func GenerateKey(rand io.Reader) (*cecdsa.PrivateKey, error) {
	return cecdsa.GenerateKey(crypto.S256(), rand)
}

// PublicKey returns Signer's ECDSA public key.
func (s *Signer) PublicKey() *PublicKey {
	return (*PublicKey)(&s.privateKey.PublicKey)
}

// Marshal serializes Public Key to bytes in uncompressed form as described in
// [SEC 1] section 2.3.3: `04 + <x coordinate> + <y coordinate>`
func (pk *PublicKey) Marshal() []byte {
	return crypto.FromECDSAPub((*cecdsa.PublicKey)(pk))
}

// MarshalCompressed serializes Public Key to 33 bytes in compressed form as
// described in [SEC 1] section 2.3.3.
func (pk *PublicKey) MarshalCompressed() []byte {
	return crypto.CompressPubkey((*cecdsa.PublicKey)(pk))
}

// CalculateSignature returns a canonical recoverable signature over provided
// hash, calculated with Signer's private key. The nonce is derived as in
// RFC 6979, so the same key and hash always give the same signature.
func (s *Signer) CalculateSignature(hash []byte) (*Signature, error) {
	keyBytes, err := byteutils.LeftPadTo32Bytes(s.privateKey.D.Bytes())
	if err != nil {
		return nil, fmt.Errorf("invalid private key: [%v]", err)
	}

	privateKey, _ := btcec.PrivKeyFromBytes(keyBytes)
	defer privateKey.Zero()

	// The header byte of a compact signature for a compressed public key is
	// `27 + 4 + recoveryID`, the same as the legacy byte.
	compact, err := btcecdsa.SignCompact(privateKey, hash, true)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate ECDSA signature: [%v]", err)
	}

	signature, err := FromCompactBytes(compact)
	if err != nil {
		return nil, fmt.Errorf("unexpected compact signature: [%w]", err)
	}

	logger.Debugf(
		"calculated signature with recovery ID [%d]",
		signature.RecoveryID(),
	)

	return signature, nil
}
