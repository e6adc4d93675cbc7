package ecdsa

import (
	"encoding/binary"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// ParseSignature parses a signature from its textual form:
// `SIG_K1_<base58(legacy byte || r || s || checksum)>`.
//
// The checksum is verified before the recovery ID is looked at, so any change
// in the 65 checksummed bytes is reported as a ChecksumError.
func ParseSignature(text string) (*Signature, error) {
	if !strings.HasPrefix(text, Prefix) {
		return nil, ErrInvalidPrefix
	}

	encoded := text[len(Prefix):]

	// base58.Decode reports an invalid character with an empty result.
	decoded := base58.Decode(encoded)
	if len(decoded) == 0 && len(encoded) > 0 {
		return nil, ErrBadBase58
	}

	if len(decoded) != encodedSize {
		return nil, &LengthError{Expected: encodedSize, Actual: len(decoded)}
	}

	payload := decoded[:CompactSize]

	expectedChecksum := checksum(payload)
	actualChecksum := binary.LittleEndian.Uint32(decoded[CompactSize:])
	if expectedChecksum != actualChecksum {
		return nil, &ChecksumError{
			Expected: expectedChecksum,
			Actual:   actualChecksum,
		}
	}

	// Textual signatures always carry the offset, a raw recovery ID is not
	// accepted here.
	header := payload[0]
	if header < legacyOffset || header-legacyOffset > maxRecoveryID {
		return nil, &RecoveryIDError{Header: header}
	}

	var compact [signatureSize]byte
	copy(compact[:], payload[1:])

	return newSignature(header-legacyOffset, compact)
}

// String returns the textual form of the signature.
func (s *Signature) String() string {
	compact := s.SerializeCompact()

	encoded := make([]byte, encodedSize)
	copy(encoded, compact[:])
	binary.LittleEndian.PutUint32(encoded[CompactSize:], checksum(compact[:]))

	return Prefix + base58.Encode(encoded)
}

// MarshalText implements encoding.TextMarshaler.
func (s *Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Signature) UnmarshalText(text []byte) error {
	parsed, err := ParseSignature(string(text))
	if err != nil {
		return err
	}

	*s = *parsed

	return nil
}
