package ecdsa

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPrefix is returned when a textual signature does not start
	// with Prefix.
	ErrInvalidPrefix = errors.New("invalid signature prefix")

	// ErrBadBase58 is returned when the textual payload is not valid base58.
	ErrBadBase58 = errors.New("invalid base58 payload")

	// ErrInvalidLength is returned when a decoded payload or a binary
	// signature has an unexpected length.
	ErrInvalidLength = errors.New("invalid signature length")

	// ErrBadChecksum is returned when the checksum of a textual signature
	// does not match its content.
	ErrBadChecksum = errors.New("bad signature checksum")

	// ErrInvalidRecoveryID is returned when the recovery ID is outside of
	// {0, 1, 2, 3}.
	ErrInvalidRecoveryID = errors.New("invalid signature recovery id")

	// ErrInvalidSignatureBytes is returned when the curve library rejects the
	// 64-byte compact signature.
	ErrInvalidSignatureBytes = errors.New("invalid signature bytes")
)

// LengthError describes a payload of unexpected length.
type LengthError struct {
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf(
		"%v: expected [%d] bytes, actual [%d] bytes",
		ErrInvalidLength,
		e.Expected,
		e.Actual,
	)
}

func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}

// ChecksumError carries both checksums of a mismatch as little-endian
// 32-bit integers.
type ChecksumError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf(
		"%v: expected [%#08x], actual [%#08x]",
		ErrBadChecksum,
		e.Expected,
		e.Actual,
	)
}

func (e *ChecksumError) Unwrap() error {
	return ErrBadChecksum
}

// RecoveryIDError holds the leading byte a recovery ID could not be derived
// from.
type RecoveryIDError struct {
	Header byte
}

func (e *RecoveryIDError) Error() string {
	return fmt.Sprintf("%v: header byte [%d]", ErrInvalidRecoveryID, e.Header)
}

func (e *RecoveryIDError) Unwrap() error {
	return ErrInvalidRecoveryID
}

// CurveError wraps a failure reported by the elliptic curve library.
type CurveError struct {
	Err error
}

func (e *CurveError) Error() string {
	return fmt.Sprintf("curve error: [%v]", e.Err)
}

func (e *CurveError) Unwrap() error {
	return e.Err
}
