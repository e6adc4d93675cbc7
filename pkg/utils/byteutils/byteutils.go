// Package byteutils provides helper utilities for working with bytes
package byteutils

import (
	"fmt"
)

// LeftPad prepends zeros to bytes slice to make it exactly size bytes long.
// It fails when the slice is already longer than size.
func LeftPad(bytes []byte, size int) ([]byte, error) {
	if len(bytes) > size {
		return nil, fmt.Errorf(
			"cannot pad %v byte array to %v bytes", len(bytes), size,
		)
	}

	result := make([]byte, size-len(bytes), size)
	result = append(result, bytes...)

	return result, nil
}

// LeftPadTo32Bytes prepends zeros to bytes slice to make it exactly 32 bytes
// long, the size of a secp256k1 scalar.
func LeftPadTo32Bytes(bytes []byte) ([]byte, error) {
	return LeftPad(bytes, 32)
}
