package ecdsa

import (
	"encoding/binary"

	"golang.org/x/crypto/ripemd160" // #nosec G507
)

// checksum calculates a checksum of the binary signature form. It is the
// first 4 bytes of RIPEMD-160 over the payload followed by CurveTag, read as
// a little-endian integer.
func checksum(payload []byte) uint32 {
	hash := ripemd160.New()
	_, _ = hash.Write(payload)
	_, _ = hash.Write([]byte(CurveTag))

	return binary.LittleEndian.Uint32(hash.Sum(nil)[:checksumSize])
}
