// Package codec holds the byte-level helpers shared by the key, wallet and
// tx packages: Base58Check with a caller-chosen checksum width, hex
// byte-order reversal, and the signed little-endian integer codec used by
// child-key derivation.
package codec

import (
	"encoding/hex"
	"fmt"
)

// ReverseByteOrder reverses the byte order of a hex string. Display-form
// transaction ids are the byte-reversed form of the serialized hash.
func ReverseByteOrder(s string) (string, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}

	for i, j := 0, len(raw)-1; i < j; i, j = i+1, j-1 {
		raw[i], raw[j] = raw[j], raw[i]
	}

	return hex.EncodeToString(raw), nil
}
