package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/keep-network/keep-eos/pkg/utils/byteutils"
)

// Signature holds a recoverable secp256k1 signature: a compact 64-byte
// `r || s` signature and a recovery ID value in {0, 1, 2, 3}.
//
// Signature is immutable. It can be constructed from the binary form with
// FromCompact, from the textual form with ParseSignature or from integer
// components with NewSignature.
type Signature struct {
	recoveryID byte
	compact    [signatureSize]byte
}

// NewSignature creates a signature from `r` and `s` values and a recovery ID.
// Both values are left-padded to 32 bytes.
func NewSignature(r, s *big.Int, recoveryID int) (*Signature, error) {
	if recoveryID < 0 || recoveryID > maxRecoveryID {
		return nil, fmt.Errorf("%w: [%d]", ErrInvalidRecoveryID, recoveryID)
	}

	rBytes, err := byteutils.LeftPadTo32Bytes(r.Bytes())
	if err != nil {
		return nil, &CurveError{
			Err: fmt.Errorf("%w: r: [%v]", ErrInvalidSignatureBytes, err),
		}
	}

	sBytes, err := byteutils.LeftPadTo32Bytes(s.Bytes())
	if err != nil {
		return nil, &CurveError{
			Err: fmt.Errorf("%w: s: [%v]", ErrInvalidSignatureBytes, err),
		}
	}

	var compact [signatureSize]byte
	copy(compact[:32], rBytes)
	copy(compact[32:], sBytes)

	return newSignature(byte(recoveryID), compact)
}

// FromCompact creates a signature from its 65-byte binary form.
//
// The leading byte is interpreted as a legacy byte (recovery ID + 31) when it
// is 31 or more, and as a raw recovery ID otherwise. Values from 4 to 30,
// including 27-30 used by uncompressed encodings, are rejected.
func FromCompact(data [CompactSize]byte) (*Signature, error) {
	header := data[0]

	recoveryID := header
	if header >= legacyOffset {
		recoveryID = header - legacyOffset
	}

	if recoveryID > maxRecoveryID {
		return nil, &RecoveryIDError{Header: header}
	}

	var compact [signatureSize]byte
	copy(compact[:], data[1:])

	return newSignature(recoveryID, compact)
}

// FromCompactBytes is like FromCompact but accepts a slice which has to be
// exactly CompactSize bytes long.
func FromCompactBytes(data []byte) (*Signature, error) {
	if len(data) != CompactSize {
		return nil, &LengthError{Expected: CompactSize, Actual: len(data)}
	}

	var compact [CompactSize]byte
	copy(compact[:], data)

	return FromCompact(compact)
}

// newSignature validates the compact signature is made of two scalars that
// do not overflow the curve order.
func newSignature(recoveryID byte, compact [signatureSize]byte) (*Signature, error) {
	var r, s btcec.ModNScalar
	if overflow := r.SetByteSlice(compact[:32]); overflow {
		return nil, &CurveError{
			Err: fmt.Errorf("%w: r overflows curve order", ErrInvalidSignatureBytes),
		}
	}
	if overflow := s.SetByteSlice(compact[32:]); overflow {
		return nil, &CurveError{
			Err: fmt.Errorf("%w: s overflows curve order", ErrInvalidSignatureBytes),
		}
	}

	return &Signature{
		recoveryID: recoveryID,
		compact:    compact,
	}, nil
}

// SerializeCompact returns the 65-byte binary form of the signature: the
// legacy byte (recovery ID + 31) followed by the compact signature.
func (s *Signature) SerializeCompact() [CompactSize]byte {
	var data [CompactSize]byte
	data[0] = s.recoveryID + legacyOffset
	copy(data[1:], s.compact[:])
	return data
}

// RecoveryID returns the recovery ID in {0, 1, 2, 3}.
func (s *Signature) RecoveryID() int {
	return int(s.recoveryID)
}

// Compact returns a copy of the 64-byte `r || s` signature.
func (s *Signature) Compact() [signatureSize]byte {
	return s.compact
}

// R returns the `r` value of the signature.
func (s *Signature) R() *big.Int {
	return new(big.Int).SetBytes(s.compact[:32])
}

// S returns the `s` value of the signature.
func (s *Signature) S() *big.Int {
	return new(big.Int).SetBytes(s.compact[32:])
}

// IsCanonical checks if the `s` value lies in the lower half of the curve
// order. It checks the low-s rule only.
func (s *Signature) IsCanonical() bool {
	var sScalar btcec.ModNScalar
	sScalar.SetByteSlice(s.compact[32:])

	return !sScalar.IsOverHalfOrder()
}

// ToStandard strips the recovery ID and returns a plain ECDSA signature.
func (s *Signature) ToStandard() *btcecdsa.Signature {
	var r, sScalar btcec.ModNScalar
	r.SetByteSlice(s.compact[:32])
	sScalar.SetByteSlice(s.compact[32:])

	return btcecdsa.NewSignature(&r, &sScalar)
}

// Equal reports whether both signatures have the same recovery ID and
// compact bytes.
func (s *Signature) Equal(other *Signature) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.recoveryID == other.recoveryID && s.compact == other.compact
}
