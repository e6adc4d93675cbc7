// Package ecdsa implements recoverable secp256k1 signatures in the form used
// across the EOS key ecosystem. It uses standards described in [SEC 1].
//
// A signature has two representations. The binary one is a 65-byte array
// holding a legacy byte (recovery ID + 31) followed by the 64-byte compact
// `r || s` signature. The textual one is `SIG_K1_` followed by the base58
// encoding of the binary form with a 4-byte RIPEMD-160 checksum appended.
//
//   [SEC 1]: Standards for Efficient Cryptography, SEC 1: Elliptic Curve
//     Cryptography, Certicom Research, https://www.secg.org/sec1-v2.pdf
package ecdsa

import (
	log "github.com/ipfs/go-log/v2"
)

var logger = log.Logger("keep-eos-ecdsa")

const (
	// Prefix starts every textual signature.
	Prefix = "SIG_K1_"

	// CurveTag identifies the secp256k1 curve family. It is appended to the
	// checksummed payload so checksums never collide across curves.
	CurveTag = "K1"

	// CompactSize is the length of the binary signature form: one legacy byte
	// and the 64-byte compact signature.
	CompactSize = 1 + signatureSize

	signatureSize = 64
	checksumSize  = 4
	encodedSize   = CompactSize + checksumSize

	// legacyOffset is added to the recovery ID in the leading byte. It is
	// 27 plus 4 for the compressed public key flag, the same header btcec
	// uses for compact signatures.
	legacyOffset = 27 + 4

	maxRecoveryID = 3
)
